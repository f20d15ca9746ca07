// Package life implements Conway's Game of Life (B3/S23) in three
// topologies: a bounded board, a board that grows whenever live cells reach
// its border, and a torus whose opposite edges are joined.
package life

import (
	"fmt"

	"github.com/vovakirdan/gridlab/internal/automaton"
	"github.com/vovakirdan/gridlab/internal/geom"
	"github.com/vovakirdan/gridlab/internal/grid"
	"github.com/vovakirdan/gridlab/internal/registry"
)

func init() {
	registry.Register("life", func() automaton.Rule { return Bounded{} })
	registry.Register("life_infinite", func() automaton.Rule { return Infinite{} })
	registry.Register("life_torus", func() automaton.Rule { return Torus{} })
}

// alive applies B3/S23.
func alive(current automaton.Tile, neighbors int) bool {
	if current == automaton.Full {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// evolve computes the next generation of src, counting neighbors with count.
// Only Floor and Full tiles take part; anything else is copied unchanged.
func evolve(src *automaton.Board, count func(p geom.Point) int) *automaton.Board {
	next := src.Clone()
	for p, c := range src.All() {
		if c.Data != automaton.Floor && c.Data != automaton.Full {
			continue
		}
		if alive(c.Data, count(p)) {
			next.Set(p, automaton.Full)
		} else {
			next.Set(p, automaton.Floor)
		}
	}
	return next
}

// Bounded treats everything outside the board as dead.
type Bounded struct{}

func (Bounded) ID() string    { return "life" }
func (Bounded) Title() string { return "Game of Life" }

// Next computes the following generation.
func (Bounded) Next(b *automaton.Board) *automaton.Board {
	return evolve(b, func(p geom.Point) int {
		return b.CountNeighbors(p, automaton.Full)
	})
}

// Infinite grows the board by one ring before a generation in which a live
// cell touches the border, so patterns are never clipped.
type Infinite struct{}

func (Infinite) ID() string    { return "life_infinite" }
func (Infinite) Title() string { return "Game of Life (unbounded)" }

// Next computes the following generation.
func (Infinite) Next(b *automaton.Board) *automaton.Board {
	src := b
	if touchesBorder(b) {
		src = b.Clone()
		src.Expand()
	}
	return evolve(src, func(p geom.Point) int {
		return src.CountNeighbors(p, automaton.Full)
	})
}

func touchesBorder(b *automaton.Board) bool {
	xr, yr := b.XRange(), b.YRange()
	for _, c := range b.FindAll(automaton.Full) {
		if c.X == xr.Start || c.X == xr.End-1 || c.Y == yr.Start || c.Y == yr.End-1 {
			return true
		}
	}
	return false
}

// Torus joins opposite edges. It needs a dense board.
type Torus struct{}

func (Torus) ID() string    { return "life_torus" }
func (Torus) Title() string { return "Game of Life (torus)" }

// Validate rejects boards with holes, which wrapped lookups cannot handle.
func (Torus) Validate(b *automaton.Board) error {
	if b.Width() == 0 || b.Height() == 0 {
		return grid.ErrEmptyGrid
	}
	if !b.IsDense() {
		return fmt.Errorf("%w: torus needs a rectangular board", grid.ErrSparseWrap)
	}
	return nil
}

// Next computes the following generation.
func (Torus) Next(b *automaton.Board) *automaton.Board {
	return evolve(b, func(p geom.Point) int {
		count := 0
		for _, q := range p.Neighbors() {
			if b.MustGetWrapped(q).Data == automaton.Full {
				count++
			}
		}
		return count
	})
}
