package grid

import "github.com/vovakirdan/gridlab/internal/geom"

// Neighbor queries return nil in every position whose coordinate has no
// stored cell. A nil neighbor is how callers detect the edge of the grid.

// NeighborAt returns the cell one step from p in direction d.
func (g *Grid[T]) NeighborAt(p geom.Point, d geom.Direction) (*Cell[T], bool) {
	return g.Get(p.NeighborAt(d))
}

// NeighborAtN returns the cell n steps from p in direction d.
func (g *Grid[T]) NeighborAtN(p geom.Point, d geom.Direction, n int) (*Cell[T], bool) {
	return g.Get(p.NeighborAtN(d, n))
}

func (g *Grid[T]) lookup(p geom.Point) *Cell[T] {
	c, _ := g.cells.Get(p)
	return c
}

// NeighborsOrthogonal returns the North, East, South and West neighbors.
func (g *Grid[T]) NeighborsOrthogonal(p geom.Point) [4]*Cell[T] {
	return g.NeighborsOrthogonalN(p, 1)
}

// NeighborsOrthogonalN returns the cells n steps away in each cardinal direction.
func (g *Grid[T]) NeighborsOrthogonalN(p geom.Point, n int) [4]*Cell[T] {
	var out [4]*Cell[T]
	for i, d := range geom.Orthogonal() {
		out[i] = g.lookup(p.NeighborAtN(d, n))
	}
	return out
}

// NeighborsDiagonal returns the NorthEast, SouthEast, SouthWest and NorthWest neighbors.
func (g *Grid[T]) NeighborsDiagonal(p geom.Point) [4]*Cell[T] {
	return g.NeighborsDiagonalN(p, 1)
}

// NeighborsDiagonalN returns the cells n steps away in each diagonal direction.
func (g *Grid[T]) NeighborsDiagonalN(p geom.Point, n int) [4]*Cell[T] {
	var out [4]*Cell[T]
	for i, d := range geom.Diagonal() {
		out[i] = g.lookup(p.NeighborAtN(d, n))
	}
	return out
}

// Neighbors returns the eight surrounding cells clockwise from North.
func (g *Grid[T]) Neighbors(p geom.Point) [8]*Cell[T] {
	return g.NeighborsN(p, 1)
}

// NeighborsN returns the cells n steps away in each of the eight directions.
func (g *Grid[T]) NeighborsN(p geom.Point, n int) [8]*Cell[T] {
	var out [8]*Cell[T]
	for i, d := range geom.All() {
		out[i] = g.lookup(p.NeighborAtN(d, n))
	}
	return out
}

// NeighborsBox returns the 3x3 block around p, row-major, with p's own cell
// at index 4.
func (g *Grid[T]) NeighborsBox(p geom.Point) [9]*Cell[T] {
	var out [9]*Cell[T]
	for i, q := range p.NeighborsBox() {
		out[i] = g.lookup(q)
	}
	return out
}

// NeighborsBoxN returns the (2n+1)^2 block around p, row-major.
func (g *Grid[T]) NeighborsBoxN(p geom.Point, n int) []*Cell[T] {
	pts := p.NeighborsBoxN(n)
	out := make([]*Cell[T], len(pts))
	for i, q := range pts {
		out[i] = g.lookup(q)
	}
	return out
}

// CountNeighbors counts how many of the eight surrounding cells hold value.
func (g *Grid[T]) CountNeighbors(p geom.Point, value T) int {
	count := 0
	for _, c := range g.Neighbors(p) {
		if c != nil && c.Data == value {
			count++
		}
	}
	return count
}
