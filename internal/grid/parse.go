package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/gridlab/internal/geom"
)

// Parse builds a grid from newline-separated text. Each rune of each line is
// converted with conv; the first failure is returned as a *ParseError.
// The grid spans 0..longest line and 0..line count; shorter lines leave their
// trailing coordinates without cells.
func Parse[T comparable](text string, conv func(rune) (T, error)) (*Grid[T], error) {
	return Read(strings.NewReader(text), conv)
}

// Read is like Parse but consumes lines from r.
func Read[T comparable](r io.Reader, conv func(rune) (T, error)) (*Grid[T], error) {
	g := NewSparse[T](geom.Range{}, geom.Range{})

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	y, width := 0, 0
	for scanner.Scan() {
		x := 0
		for _, ch := range scanner.Text() {
			value, err := conv(ch)
			if err != nil {
				return nil, &ParseError{Line: y, Column: x, Char: ch, Err: err}
			}
			g.cells.Put(geom.P(x, y), NewCell(geom.P(x, y), value))
			x++
		}
		width = max(width, x)
		y++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("grid: reading input: %w", err)
	}

	g.xRange = geom.NewRange(0, width)
	g.yRange = geom.NewRange(0, y)
	return g, nil
}

// RuneConverter accepts every character as-is.
func RuneConverter(r rune) (rune, error) {
	return r, nil
}

// DigitConverter accepts '0'..'9' and returns their numeric value.
func DigitConverter(r rune) (int, error) {
	if r < '0' || r > '9' {
		return 0, ErrInvalidChar
	}
	return int(r - '0'), nil
}

// AlphabetConverter returns a converter that accepts only the runes in
// alphabet, mapping each to itself.
func AlphabetConverter(alphabet string) func(rune) (rune, error) {
	return func(r rune) (rune, error) {
		if !strings.ContainsRune(alphabet, r) {
			return 0, ErrInvalidChar
		}
		return r, nil
	}
}
