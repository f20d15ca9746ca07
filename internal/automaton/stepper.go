package automaton

// Stepper advances a board one generation at a time.
// It backs the interactive viewer, which needs to render between steps.
type Stepper struct {
	rule       Rule
	initial    *Board
	board      *Board
	generation int
	settled    bool
}

// NewStepper creates a stepper starting from a copy of board.
func NewStepper(rule Rule, board *Board) *Stepper {
	return &Stepper{
		rule:    rule,
		initial: board.Clone(),
		board:   board.Clone(),
	}
}

// Step advances one generation and reports whether the board changed.
// Once the board has settled, Step is a no-op.
func (s *Stepper) Step() bool {
	if s.settled {
		return false
	}
	if !s.board.ApplyStep(s.rule.Next) {
		s.settled = true
		return false
	}
	s.generation++
	return true
}

// Reset restores the initial board.
func (s *Stepper) Reset() {
	s.board = s.initial.Clone()
	s.generation = 0
	s.settled = false
}

// Board returns the current board. Callers must not modify it.
func (s *Stepper) Board() *Board {
	return s.board
}

// Generation returns the number of changing steps taken so far.
func (s *Stepper) Generation() int {
	return s.generation
}

// Settled returns true once a step left the board unchanged.
func (s *Stepper) Settled() bool {
	return s.settled
}

// Rule returns the rule being stepped.
func (s *Stepper) Rule() Rule {
	return s.rule
}
