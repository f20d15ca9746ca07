package grid

import (
	"fmt"
	"strings"
)

// Render writes stored cells in row-major order using format for each
// payload. A newline is written whenever the row index increases; there is
// no trailing newline. Absent cells are skipped, so sparse rows render short.
func (g *Grid[T]) Render(format func(T) string) string {
	var sb strings.Builder
	sb.Grow(g.Len() + g.Height())

	first := true
	lastY := 0
	for p, c := range g.All() {
		if !first && p.Y > lastY {
			sb.WriteByte('\n')
		}
		first = false
		lastY = p.Y
		sb.WriteString(format(c.Data))
	}
	return sb.String()
}

// String renders the grid with FormatValue.
func (g *Grid[T]) String() string {
	return g.Render(FormatValue[T])
}

// FormatValue renders a payload for display: fmt.Stringer values use
// String, runes render as the character itself, everything else goes
// through fmt.Sprint. Because rune is an alias for int32, int32 payloads
// also render as characters.
func FormatValue[T any](v T) string {
	switch x := any(v).(type) {
	case fmt.Stringer:
		return x.String()
	case rune:
		return string(x)
	default:
		return fmt.Sprint(x)
	}
}
