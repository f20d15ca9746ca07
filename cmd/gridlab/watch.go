package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridlab/internal/automaton"
	"github.com/vovakirdan/gridlab/internal/platform/tui"
	"github.com/vovakirdan/gridlab/internal/storage"
)

var flagTickRate int

var watchCmd = &cobra.Command{
	Use:   "watch [pattern]",
	Short: "Animate a pattern in the terminal",
	Long: `Animate a pattern generation by generation.

Controls:
  Space/P    - Pause
  N          - Single step
  R          - Reset
  +/-        - Faster/slower
  ?          - More help
  Q/Ctrl+C   - Quit

Examples:
  gridlab watch glider
  gridlab watch waiting_area --rule seating_visible --fps 2`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().IntVar(&flagTickRate, "fps", 0, "Generations per second (0 = config default)")
}

func runWatch(_ *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("watch needs a terminal; use 'gridlab run' instead")
	}

	s, err := openSession(args)
	if err != nil {
		return err
	}
	if v, ok := s.rule.(automaton.Validator); ok {
		if err := v.Validate(s.board); err != nil {
			return fmt.Errorf("%s: %w", s.pattern.ID, err)
		}
	}

	tickRate := cfg.Simulation.TickRate
	if flagTickRate > 0 {
		tickRate = flagTickRate
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Warn("runs will not be recorded", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	model := tui.NewSimModel(s.pattern, s.rule, s.board, tui.SimOptions{
		TickRate: tickRate,
		MaxSteps: stepLimit(s.pattern),
		Palette:  tui.NewPalette(cfg.Palette),
		Store:    store,
		Logger:   logger,
	})
	return tui.RunSim(model)
}
