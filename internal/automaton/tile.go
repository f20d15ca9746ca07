// Package automaton provides the shared payload type and the runner used by
// every cellular-automaton rule. Rules supply a transition over a Board;
// the runner drives it to a fixed point or a step limit.
package automaton

import (
	"fmt"

	"github.com/vovakirdan/gridlab/internal/grid"
)

// Tile is the payload stored in every board cell.
// The zero value is Floor, so grown borders start empty.
type Tile uint8

const (
	Floor Tile = iota // '.'
	Full              // '#'
	Seat              // 'L'
)

// Glyph returns the character a tile is written as.
func (t Tile) Glyph() rune {
	switch t {
	case Full:
		return '#'
	case Seat:
		return 'L'
	default:
		return '.'
	}
}

// String returns the tile glyph.
func (t Tile) String() string {
	return string(t.Glyph())
}

// ParseTile converts a board character to a Tile.
func ParseTile(r rune) (Tile, error) {
	switch r {
	case '.':
		return Floor, nil
	case '#':
		return Full, nil
	case 'L':
		return Seat, nil
	}
	return Floor, fmt.Errorf("%w: %q is not a tile", grid.ErrInvalidChar, r)
}

// Board is a grid of tiles.
type Board = grid.Grid[Tile]

// ParseBoard parses a block of tile characters.
func ParseBoard(text string) (*Board, error) {
	return grid.Parse(text, ParseTile)
}
