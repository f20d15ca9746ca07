package grid

import (
	"iter"

	"github.com/zyedidia/generic/avl"

	"github.com/vovakirdan/gridlab/internal/geom"
)

// Grid is an ordered, possibly sparse mapping from Point to Cell with
// tracked rectangular bounds. Every stored cell's Point equals its key.
type Grid[T comparable] struct {
	xRange geom.Range
	yRange geom.Range
	cells  *avl.Tree[geom.Point, *Cell[T]]
}

func newTree[T comparable]() *avl.Tree[geom.Point, *Cell[T]] {
	return avl.New[geom.Point, *Cell[T]](geom.Point.Less)
}

// NewSparse creates a grid with the given bounds and no cells.
func NewSparse[T comparable](xRange, yRange geom.Range) *Grid[T] {
	return &Grid[T]{
		xRange: xRange,
		yRange: yRange,
		cells:  newTree[T](),
	}
}

// New creates a dense width x height grid with every cell set to value.
func New[T comparable](width, height int, value T) *Grid[T] {
	g := NewSparse[T](geom.NewRange(0, max(width, 0)), geom.NewRange(0, max(height, 0)))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.Set(geom.P(x, y), value)
		}
	}
	return g
}

// NewDefault creates a dense width x height grid of zero values.
func NewDefault[T comparable](width, height int) *Grid[T] {
	var zero T
	return New(width, height, zero)
}

// XRange returns the nominal horizontal extent.
func (g *Grid[T]) XRange() geom.Range {
	return g.xRange
}

// YRange returns the nominal vertical extent.
func (g *Grid[T]) YRange() geom.Range {
	return g.yRange
}

// Width returns the nominal width. It does not depend on the cell count.
func (g *Grid[T]) Width() int {
	return g.xRange.Len()
}

// Height returns the nominal height. It does not depend on the cell count.
func (g *Grid[T]) Height() int {
	return g.yRange.Len()
}

// Len returns the number of stored cells.
func (g *Grid[T]) Len() int {
	return g.cells.Size()
}

// InBounds returns true if p lies inside the nominal bounds.
func (g *Grid[T]) InBounds(p geom.Point) bool {
	return g.xRange.Contains(p.X) && g.yRange.Contains(p.Y)
}

// IsDense returns true if every coordinate inside the bounds has a cell.
func (g *Grid[T]) IsDense() bool {
	if g.Len() < g.Width()*g.Height() {
		return false
	}
	for y := g.yRange.Start; y < g.yRange.End; y++ {
		for x := g.xRange.Start; x < g.xRange.End; x++ {
			if _, ok := g.cells.Get(geom.P(x, y)); !ok {
				return false
			}
		}
	}
	return true
}

// Get returns the cell at p. The returned pointer may be used to modify the
// cell's Data in place; its Point must not be changed.
func (g *Grid[T]) Get(p geom.Point) (*Cell[T], bool) {
	return g.cells.Get(p)
}

// Data returns the payload stored at p.
func (g *Grid[T]) Data(p geom.Point) (T, bool) {
	if c, ok := g.cells.Get(p); ok {
		return c.Data, true
	}
	var zero T
	return zero, false
}

// Set stores value at p, inserting a cell if none exists.
// Set never changes the nominal bounds.
func (g *Grid[T]) Set(p geom.Point, value T) {
	if c, ok := g.cells.Get(p); ok {
		c.Data = value
		return
	}
	g.cells.Put(p, NewCell(p, value))
}

// Delete removes the cell at p. It returns false if there was none.
func (g *Grid[T]) Delete(p geom.Point) bool {
	if _, ok := g.cells.Get(p); !ok {
		return false
	}
	g.cells.Remove(p)
	return true
}

// Retain keeps only the cells for which keep returns true.
func (g *Grid[T]) Retain(keep func(c *Cell[T]) bool) {
	var drop []geom.Point
	g.cells.Each(func(p geom.Point, c *Cell[T]) {
		if !keep(c) {
			drop = append(drop, p)
		}
	})
	for _, p := range drop {
		g.cells.Remove(p)
	}
}

// Crop sets new bounds and drops every cell that falls outside them.
func (g *Grid[T]) Crop(xRange, yRange geom.Range) {
	g.xRange = xRange
	g.yRange = yRange
	g.Retain(func(c *Cell[T]) bool {
		return g.InBounds(c.Point)
	})
}

// All iterates over stored cells in row-major order.
// The grid must not be modified structurally during iteration.
func (g *Grid[T]) All() iter.Seq2[geom.Point, *Cell[T]] {
	return func(yield func(geom.Point, *Cell[T]) bool) {
		done := false
		g.cells.Each(func(p geom.Point, c *Cell[T]) {
			if done {
				return
			}
			if !yield(p, c) {
				done = true
			}
		})
	}
}

// Cells returns all stored cells in row-major order.
func (g *Grid[T]) Cells() []*Cell[T] {
	out := make([]*Cell[T], 0, g.Len())
	for _, c := range g.All() {
		out = append(out, c)
	}
	return out
}

// Points returns the coordinates of all stored cells in row-major order.
func (g *Grid[T]) Points() []geom.Point {
	out := make([]geom.Point, 0, g.Len())
	for p := range g.All() {
		out = append(out, p)
	}
	return out
}

// CountData returns how many cells hold value.
func (g *Grid[T]) CountData(value T) int {
	count := 0
	for _, c := range g.All() {
		if c.Data == value {
			count++
		}
	}
	return count
}

// Find returns the first cell in row-major order holding value.
func (g *Grid[T]) Find(value T) (*Cell[T], bool) {
	for _, c := range g.All() {
		if c.Data == value {
			return c, true
		}
	}
	return nil, false
}

// FindAll returns every cell holding value, in row-major order.
func (g *Grid[T]) FindAll(value T) []*Cell[T] {
	var out []*Cell[T]
	for _, c := range g.All() {
		if c.Data == value {
			out = append(out, c)
		}
	}
	return out
}

// Clone returns a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	clone := NewSparse[T](g.xRange, g.yRange)
	for p, c := range g.All() {
		clone.cells.Put(p, NewCell(p, c.Data))
	}
	return clone
}

// Equal returns true if both grids have the same bounds and the same cells
// holding equal payloads.
func (g *Grid[T]) Equal(other *Grid[T]) bool {
	if g.xRange != other.xRange || g.yRange != other.yRange || g.Len() != other.Len() {
		return false
	}
	for p, c := range g.All() {
		oc, ok := other.cells.Get(p)
		if !ok || oc.Data != c.Data {
			return false
		}
	}
	return true
}
