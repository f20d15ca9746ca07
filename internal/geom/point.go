package geom

import (
	"cmp"
	"fmt"
	"math"
)

// Point is a 2D integer coordinate.
// X increases eastward, Y increases southward (screen coordinates).
type Point struct {
	X int
	Y int
}

// P is a convenience constructor for Point.
func P(x, y int) Point {
	return Point{X: x, Y: y}
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Coords returns the point's components.
func (p Point) Coords() (x, y int) {
	return p.X, p.Y
}

// AsPoint returns the point itself. It lets Point satisfy Coords.
func (p Point) AsPoint() Point {
	return p
}

// Compare orders points row-major: by Y first, then by X.
func (p Point) Compare(other Point) int {
	if c := cmp.Compare(p.Y, other.Y); c != 0 {
		return c
	}
	return cmp.Compare(p.X, other.X)
}

// Less reports whether p sorts before other in row-major order.
func (p Point) Less(other Point) bool {
	return p.Compare(other) < 0
}

// Add returns a new Point offset by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// AddPoint returns the component-wise sum of two points.
func (p Point) AddPoint(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the component-wise difference p - other.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// ManhattanDistance returns |dx| + |dy|.
func (p Point) ManhattanDistance(other Point) int {
	return Abs(p.X-other.X) + Abs(p.Y-other.Y)
}

// Distance returns the Euclidean distance to other.
// Components are converted to float64 first, so magnitudes beyond 2^53
// lose precision.
func (p Point) Distance(other Point) float64 {
	dx := float64(other.X - p.X)
	dy := float64(other.Y - p.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// DirectionTo returns the direction whose unit vector has the same signs as
// the offset from p to other. Equal points yield None.
func (p Point) DirectionTo(other Point) Direction {
	return FromDelta(other.X-p.X, other.Y-p.Y)
}

// NeighborAt returns the point one step away in direction d.
func (p Point) NeighborAt(d Direction) Point {
	dx, dy := d.Delta()
	return p.Add(dx, dy)
}

// NeighborAtN returns the point n steps away in direction d.
func (p Point) NeighborAtN(d Direction, n int) Point {
	dx, dy := d.Delta()
	return p.Add(dx*n, dy*n)
}

// NeighborsOrthogonal returns the four cardinal neighbors in Orthogonal order.
func (p Point) NeighborsOrthogonal() [4]Point {
	var out [4]Point
	for i, d := range Orthogonal() {
		out[i] = p.NeighborAt(d)
	}
	return out
}

// NeighborsDiagonal returns the four diagonal neighbors in Diagonal order.
func (p Point) NeighborsDiagonal() [4]Point {
	var out [4]Point
	for i, d := range Diagonal() {
		out[i] = p.NeighborAt(d)
	}
	return out
}

// Neighbors returns all eight neighbors in All order.
func (p Point) Neighbors() [8]Point {
	var out [8]Point
	for i, d := range All() {
		out[i] = p.NeighborAt(d)
	}
	return out
}

// NeighborsBox returns the 3x3 square around p, row-major from the
// north-west corner. The center (p itself) is at index 4.
func (p Point) NeighborsBox() [9]Point {
	var out [9]Point
	copy(out[:], p.NeighborsBoxN(1))
	return out
}

// NeighborsBoxN returns the (2n+1)^2 points within Chebyshev distance n of p,
// row-major from the north-west corner to the south-east corner.
// A negative n yields no points.
func (p Point) NeighborsBoxN(n int) []Point {
	if n < 0 {
		return nil
	}
	side := 2*n + 1
	out := make([]Point, 0, side*side)
	for dy := -n; dy <= n; dy++ {
		for dx := -n; dx <= n; dx++ {
			out = append(out, p.Add(dx, dy))
		}
	}
	return out
}
