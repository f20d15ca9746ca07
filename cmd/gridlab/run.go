package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridlab/internal/automaton"
	"github.com/vovakirdan/gridlab/internal/patterns"
	"github.com/vovakirdan/gridlab/internal/registry"
	"github.com/vovakirdan/gridlab/internal/storage"
)

var (
	flagRule     string
	flagFile     string
	flagMaxSteps int
	flagNoSave   bool
)

var runCmd = &cobra.Command{
	Use:   "run [pattern]",
	Short: "Run a pattern to a fixed point",
	Long: `Step a pattern with its rule until the board stops changing or the step
limit is reached, then print the final board and record the run.

The step limit comes from --max-steps, then the pattern file, then the config.

Examples:
  gridlab run waiting_area
  gridlab run waiting_area --rule seating_visible
  gridlab run blinker --max-steps 5
  gridlab run --file ./my-pattern.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	for _, cmd := range []*cobra.Command{runCmd, watchCmd, inspectCmd} {
		cmd.Flags().StringVar(&flagFile, "file", "", "Load the pattern from a YAML file instead of by ID")
		cmd.Flags().StringVar(&flagRule, "rule", "", "Override the pattern's rule")
	}
	runCmd.Flags().IntVar(&flagMaxSteps, "max-steps", 0, "Step limit (0 = pattern or config default)")
	runCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the run")
}

// session is a pattern resolved into something runnable.
type session struct {
	pattern patterns.Pattern
	rule    automaton.Rule
	board   *automaton.Board
}

// openSession resolves the pattern named by args or --file, its rule and its board.
func openSession(args []string) (session, error) {
	var (
		p   patterns.Pattern
		err error
	)
	switch {
	case flagFile != "":
		p, err = patterns.NewLoader(".").LoadFile(flagFile)
	case len(args) == 1:
		p, err = patterns.Lookup(cfg.Patterns.Dir, args[0])
	default:
		return session{}, fmt.Errorf("name a pattern or pass --file (see 'gridlab list')")
	}
	if err != nil {
		return session{}, err
	}

	ruleID := p.Rule
	if flagRule != "" {
		ruleID = flagRule
	}
	rule, err := registry.Create(ruleID)
	if err != nil {
		return session{}, err
	}

	board, err := p.NewBoard()
	if err != nil {
		return session{}, err
	}
	return session{pattern: p, rule: rule, board: board}, nil
}

// stepLimit picks the first positive limit from the flag, the pattern and the config.
func stepLimit(p patterns.Pattern) int {
	switch {
	case flagMaxSteps > 0:
		return flagMaxSteps
	case p.MaxSteps > 0:
		return p.MaxSteps
	default:
		return cfg.Simulation.MaxSteps
	}
}

func runRun(_ *cobra.Command, args []string) error {
	s, err := openSession(args)
	if err != nil {
		return err
	}

	limit := stepLimit(s.pattern)
	logger.Debug("starting run", "pattern", s.pattern.ID, "rule", s.rule.ID(), "limit", limit)

	res, err := automaton.NewRunner(limit, logger).Run(s.rule, s.board)
	if err != nil {
		return err
	}

	fmt.Println(res.Final.String())
	fmt.Println()
	state := "settled"
	if !res.Converged {
		state = "step limit reached"
	}
	fmt.Printf("%s / %s: %d steps, %d live, %s\n", s.pattern.ID, s.rule.ID(), res.Steps, res.Live, state)

	if flagNoSave {
		return nil
	}
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Warn("run not recorded", "error", err)
		return nil
	}
	defer store.Close()

	id, err := store.SaveRun(storage.Run{
		PatternID: s.pattern.ID,
		RuleID:    s.rule.ID(),
		Steps:     res.Steps,
		Converged: res.Converged,
		Live:      res.Live,
		Width:     res.Final.Width(),
		Height:    res.Final.Height(),
		Board:     res.Final.String(),
	})
	if err != nil {
		logger.Warn("run not recorded", "error", err)
		return nil
	}
	logger.Debug("run recorded", "id", id)
	return nil
}
