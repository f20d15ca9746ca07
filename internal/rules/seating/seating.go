// Package seating implements the waiting-area seating automaton.
// Empty seats (L) fill when no occupied seat (#) is seen; occupied seats
// empty once too many occupied seats are seen. Floor (.) never changes.
package seating

import (
	"github.com/vovakirdan/gridlab/internal/automaton"
	"github.com/vovakirdan/gridlab/internal/grid"
	"github.com/vovakirdan/gridlab/internal/registry"
)

func init() {
	registry.Register("seating", func() automaton.Rule { return Adjacent{} })
	registry.Register("seating_visible", func() automaton.Rule { return Visible{} })
}

const (
	adjacentTolerance = 4
	visibleTolerance  = 5
)

func next(b *automaton.Board, occupied func(c *grid.Cell[automaton.Tile]) int, tolerance int) *automaton.Board {
	out := b.Clone()
	for p, c := range b.All() {
		switch c.Data {
		case automaton.Seat:
			if occupied(c) == 0 {
				out.Set(p, automaton.Full)
			}
		case automaton.Full:
			if occupied(c) >= tolerance {
				out.Set(p, automaton.Seat)
			}
		}
	}
	return out
}

// Adjacent looks at the eight surrounding cells.
type Adjacent struct{}

func (Adjacent) ID() string    { return "seating" }
func (Adjacent) Title() string { return "Seating (adjacent)" }

// Next computes the following generation.
func (Adjacent) Next(b *automaton.Board) *automaton.Board {
	return next(b, func(c *grid.Cell[automaton.Tile]) int {
		return b.CountNeighbors(c.Point, automaton.Full)
	}, adjacentTolerance)
}

// Visible looks along the eight sight lines, past floor, to the first seat.
type Visible struct{}

func (Visible) ID() string    { return "seating_visible" }
func (Visible) Title() string { return "Seating (line of sight)" }

// Next computes the following generation.
func (Visible) Next(b *automaton.Board) *automaton.Board {
	return next(b, func(c *grid.Cell[automaton.Tile]) int {
		count := 0
		for _, edge := range b.SightLinesEdges(c.Point, automaton.Seat, automaton.Full) {
			if edge.Data == automaton.Full {
				count++
			}
		}
		return count
	}, visibleTolerance)
}
