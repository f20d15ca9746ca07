package grid

import (
	"fmt"

	"github.com/vovakirdan/gridlab/internal/geom"
)

// Cell is a coordinate paired with a payload value.
// Embedding geom.Point gives cells every coordinate operation
// (ManhattanDistance, DirectionTo, Neighbors, ...) and makes them geom.Coords.
type Cell[T comparable] struct {
	geom.Point
	Data T
}

// NewCell creates a cell at p holding data.
func NewCell[T comparable](p geom.Point, data T) *Cell[T] {
	return &Cell[T]{Point: p, Data: data}
}

// String returns a string representation of the cell.
func (c *Cell[T]) String() string {
	return fmt.Sprintf("%v=%s", c.Point, FormatValue(c.Data))
}
