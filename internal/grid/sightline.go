package grid

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/gridlab/internal/geom"
)

func blockSet[T comparable](blocking []T) mapset.Set[T] {
	set := mapset.New[T]()
	for _, b := range blocking {
		set.Put(b)
	}
	return set
}

// SightLine walks from origin in direction d, starting one step away, and
// collects cells nearest first. The walk stops right after a cell whose
// payload is one of blocking, or before the first coordinate with no cell.
// Directions without a unit step, such as None, yield nothing.
func (g *Grid[T]) SightLine(origin geom.Point, d geom.Direction, blocking ...T) []*Cell[T] {
	return g.sightLine(origin, d, blockSet(blocking))
}

func (g *Grid[T]) sightLine(origin geom.Point, d geom.Direction, blocks mapset.Set[T]) []*Cell[T] {
	if dx, dy := d.Delta(); dx == 0 && dy == 0 {
		return nil
	}
	var out []*Cell[T]
	for p := origin.NeighborAt(d); ; p = p.NeighborAt(d) {
		c, ok := g.cells.Get(p)
		if !ok {
			return out
		}
		out = append(out, c)
		if blocks.Has(c.Data) {
			return out
		}
	}
}

// SightLinesAll casts a sight line in each of the eight directions, in
// geom.All order.
func (g *Grid[T]) SightLinesAll(origin geom.Point, blocking ...T) [8][]*Cell[T] {
	blocks := blockSet(blocking)
	var out [8][]*Cell[T]
	for i, d := range geom.All() {
		out[i] = g.sightLine(origin, d, blocks)
	}
	return out
}

// SightLinesEdges returns the farthest cell of each sight line in geom.All
// order. Rays that produced no cells are omitted.
func (g *Grid[T]) SightLinesEdges(origin geom.Point, blocking ...T) []*Cell[T] {
	var out []*Cell[T]
	for _, line := range g.SightLinesAll(origin, blocking...) {
		if len(line) > 0 {
			out = append(out, line[len(line)-1])
		}
	}
	return out
}

// SightLineN collects up to n cells starting at origin itself and stepping in
// direction d. It ignores payloads and stops early only at a missing cell.
func (g *Grid[T]) SightLineN(origin geom.Point, d geom.Direction, n int) []*Cell[T] {
	out := make([]*Cell[T], 0, max(n, 0))
	p := origin
	for range n {
		c, ok := g.cells.Get(p)
		if !ok {
			break
		}
		out = append(out, c)
		p = p.NeighborAt(d)
	}
	return out
}
