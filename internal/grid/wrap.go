package grid

import (
	"fmt"

	"github.com/vovakirdan/gridlab/internal/geom"
)

// WrapPoint reduces p modulo the grid's bounds so that it lands inside
// XRange x YRange. The grid must have non-zero width and height.
func (g *Grid[T]) WrapPoint(p geom.Point) (geom.Point, error) {
	w, h := g.Width(), g.Height()
	if w == 0 || h == 0 {
		return geom.Point{}, ErrEmptyGrid
	}
	return geom.P(
		g.xRange.Start+geom.Mod(p.X-g.xRange.Start, w),
		g.yRange.Start+geom.Mod(p.Y-g.yRange.Start, h),
	), nil
}

// GetWrapped looks up p on the torus formed by joining opposite edges.
// It returns ErrSparseWrap when the wrapped coordinate has no cell, which
// happens only on grids that are not dense over their bounds.
func (g *Grid[T]) GetWrapped(p geom.Point) (*Cell[T], error) {
	q, err := g.WrapPoint(p)
	if err != nil {
		return nil, err
	}
	c, ok := g.cells.Get(q)
	if !ok {
		return nil, fmt.Errorf("%w: %v wraps to %v", ErrSparseWrap, p, q)
	}
	return c, nil
}

// MustGetWrapped is GetWrapped for grids known to be dense.
// It panics if the wrapped coordinate has no cell.
func (g *Grid[T]) MustGetWrapped(p geom.Point) *Cell[T] {
	c, err := g.GetWrapped(p)
	if err != nil {
		panic(err)
	}
	return c
}

// SightLineWrapped collects n cells starting at origin and stepping in
// direction d, wrapping around the edges.
func (g *Grid[T]) SightLineWrapped(origin geom.Point, d geom.Direction, n int) ([]*Cell[T], error) {
	out := make([]*Cell[T], 0, max(n, 0))
	p := origin
	for range n {
		c, err := g.GetWrapped(p)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
		// Stay on the wrapped coordinate so p never drifts far from the bounds.
		p = c.NeighborAt(d)
	}
	return out, nil
}
