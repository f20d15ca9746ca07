package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridlab/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gridlab SSH server",
	Long: `Start an SSH server that streams the simulation viewer.

The SSH command names the pattern to show; without one the glider is shown.
Runs are recorded in the server's database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.gridlab/host_key

Examples:
  gridlab serve                           # Listen on the configured address
  gridlab serve --ssh :2222               # Listen on port 2222
  gridlab serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh -t localhost -p 23235 waiting_area`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (default from config)")
}

func runServe(_ *cobra.Command, _ []string) error {
	srvCfg := tui.SSHServerConfig{
		Address:     cfg.Server.Address,
		HostKeyPath: cfg.Server.HostKeyPath,
		DBPath:      cfg.Storage.Path,
		PatternsDir: cfg.Patterns.Dir,
		IdleTimeout: cfg.Server.IdleTimeout(),
		TickRate:    cfg.Simulation.TickRate,
		MaxSteps:    cfg.Simulation.MaxSteps,
		Palette:     tui.NewPalette(cfg.Palette),
		Logger:      logger.WithPrefix("gridlab-ssh"),
	}
	if flagSSHAddr != "" {
		srvCfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		srvCfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	server, err := tui.NewSSHServer(srvCfg)
	if err != nil {
		return err
	}

	logger.Info("connect with ssh -t", "address", server.Addr())
	return server.ListenAndServe()
}
