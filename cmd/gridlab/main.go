// gridlab runs cellular automata on text grids in the terminal.
//
// Usage:
//
//	gridlab list                 - List rules and patterns
//	gridlab run <pattern>        - Step a pattern to a fixed point and print it
//	gridlab watch <pattern>      - Animate a pattern in the terminal
//	gridlab inspect <pattern>    - Show neighbors and sight lines around a cell
//	gridlab history [pattern]    - Browse recorded runs
//	gridlab serve                - Start SSH server for remote viewing
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.gridlab/config.yaml)
//	--db <path>         - Run database (default from config)
//	--patterns <dir>    - Extra pattern directory (default from config)
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridlab/internal/config"

	// Import rules to register them
	_ "github.com/vovakirdan/gridlab/internal/rules/life"
	_ "github.com/vovakirdan/gridlab/internal/rules/seating"
)

var (
	// Global flags
	flagConfigPath  string
	flagDBPath      string
	flagPatternsDir string
	flagLogLevel    string

	// Resolved in PersistentPreRunE
	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridlab",
	Short: "gridlab - cellular automata on text grids",
	Long: `gridlab loads boards from text patterns and steps cellular-automaton
rules over them until they settle or hit a step limit.

Available commands:
  list     - Show rules and patterns
  run      - Run a pattern headless and print the result
  watch    - Animate a pattern in the terminal
  inspect  - Query neighbors, boxes and sight lines around a cell
  history  - Browse recorded runs
  serve    - Start SSH server for remote viewing

Examples:
  gridlab list
  gridlab run waiting_area
  gridlab watch glider
  gridlab inspect waiting_area --at 3,4
  gridlab serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagPatternsDir, "patterns", "", "Extra pattern directory (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup loads the config, applies flag overrides and builds the logger.
func setup(_ *cobra.Command, _ []string) error {
	loaded, err := config.Load(flagConfigPath)
	if err != nil {
		return err
	}
	cfg = loaded

	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagPatternsDir != "" {
		cfg.Patterns.Dir = flagPatternsDir
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if cfg.Patterns.Dir, err = config.ExpandHome(cfg.Patterns.Dir); err != nil {
		return err
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "gridlab",
	})
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	logger.SetLevel(level)
	return nil
}
