package automaton

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridlab/internal/grid"
)

// ErrNoRule is returned when a runner is asked to run without a rule.
var ErrNoRule = errors.New("automaton: no rule")

// Rule is a cellular-automaton transition.
// Rules contain pure logic: Next must not modify its input.
type Rule interface {
	// ID returns a unique identifier (e.g., "life", "seating").
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Next computes the following generation.
	Next(b *Board) *Board
}

// Validator is implemented by rules that only work on some boards,
// e.g. rules that need a dense board for wrapped lookups.
type Validator interface {
	Validate(b *Board) error
}

// Result summarizes a finished run.
type Result struct {
	Steps     int
	Converged bool
	Live      int
	Final     *Board
}

// Runner drives a rule until the board stops changing.
type Runner struct {
	// MaxSteps bounds the run; zero or less means run until convergence.
	MaxSteps int

	// Logger receives one debug line per generation. Nil discards.
	Logger *log.Logger
}

// NewRunner creates a runner with the given step limit.
func NewRunner(maxSteps int, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{MaxSteps: maxSteps, Logger: logger}
}

// Run steps a copy of board with rule and reports the outcome.
// The input board is not modified.
func (r *Runner) Run(rule Rule, board *Board) (Result, error) {
	if rule == nil {
		return Result{}, ErrNoRule
	}
	if v, ok := rule.(Validator); ok {
		if err := v.Validate(board); err != nil {
			return Result{}, fmt.Errorf("automaton: %s: %w", rule.ID(), err)
		}
	}

	logger := r.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	b := board.Clone()
	gen := 0
	step := func(g *Board) *Board {
		next := rule.Next(g)
		gen++
		logger.Debug("generation", "rule", rule.ID(), "gen", gen, "live", next.CountData(Full))
		return next
	}
	steps := b.ApplyStepsUntil(step, r.MaxSteps)

	converged := r.MaxSteps <= 0 || steps < r.MaxSteps
	if !converged {
		// The limit may coincide with the last changing step.
		converged = !b.Clone().ApplyStep(grid.StepFunc[Tile](rule.Next))
	}

	res := Result{
		Steps:     steps,
		Converged: converged,
		Live:      b.CountData(Full),
		Final:     b,
	}
	logger.Info("run finished",
		"rule", rule.ID(),
		"steps", res.Steps,
		"converged", res.Converged,
		"live", res.Live,
	)
	return res, nil
}
