package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid indicates an operation that needs a non-zero width and height.
	ErrEmptyGrid = errors.New("grid: grid has zero width or height")
	// ErrSparseWrap indicates a wrapped lookup landed on a coordinate with no cell.
	ErrSparseWrap = errors.New("grid: wrapped coordinate has no cell")
	// ErrInvalidChar is returned by converters that reject a character.
	ErrInvalidChar = errors.New("grid: invalid character")
)

// ParseError describes the first character that could not be converted
// while parsing a text grid. Line and Column are zero-based.
type ParseError struct {
	Line   int
	Column int
	Char   rune
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("grid: line %d column %d: cannot convert %q: %v", e.Line, e.Column, e.Char, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
