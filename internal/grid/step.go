package grid

import "github.com/vovakirdan/gridlab/internal/geom"

// Expand grows the bounds by one in every direction and fills the new
// border ring with zero-valued cells. Existing cells are left untouched.
func (g *Grid[T]) Expand() {
	var zero T
	g.xRange = g.xRange.Grow(1)
	g.yRange = g.yRange.Grow(1)

	fill := func(p geom.Point) {
		if _, ok := g.cells.Get(p); !ok {
			g.cells.Put(p, NewCell(p, zero))
		}
	}
	top, bottom := g.yRange.Start, g.yRange.End-1
	left, right := g.xRange.Start, g.xRange.End-1
	for x := left; x <= right; x++ {
		fill(geom.P(x, top))
		fill(geom.P(x, bottom))
	}
	for y := top + 1; y < bottom; y++ {
		fill(geom.P(left, y))
		fill(geom.P(right, y))
	}
}

// StepFunc computes the next state of a grid. It must not modify its input
// and must return a new grid; ApplyStep panics if it returns its input.
type StepFunc[T comparable] func(g *Grid[T]) *Grid[T]

// ApplyStep replaces the grid's contents with f(g) and reports whether
// anything changed: bounds, the set of cells, or any payload.
func (g *Grid[T]) ApplyStep(f StepFunc[T]) bool {
	next := f(g)
	if next == g {
		panic("grid: step function returned its input grid")
	}
	changed := !g.Equal(next)
	*g = *next
	return changed
}

// ApplyStepsUntil applies f until the grid stops changing or limit changing
// steps have been taken, and returns the number of changing steps.
// A limit of zero or less means no limit; f must then converge.
func (g *Grid[T]) ApplyStepsUntil(f StepFunc[T], limit int) int {
	steps := 0
	for limit <= 0 || steps < limit {
		if !g.ApplyStep(f) {
			break
		}
		steps++
	}
	return steps
}
