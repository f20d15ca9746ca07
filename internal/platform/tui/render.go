package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridlab/internal/automaton"
	"github.com/vovakirdan/gridlab/internal/geom"
)

// Palette maps tile glyphs to lipgloss styles.
type Palette map[rune]lipgloss.Style

// NewPalette builds a palette from glyph -> color entries, as found in the
// config file. Keys longer than one character are ignored.
func NewPalette(colors map[string]string) Palette {
	p := make(Palette, len(colors))
	for glyph, color := range colors {
		runes := []rune(glyph)
		if len(runes) != 1 {
			continue
		}
		p[runes[0]] = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}
	return p
}

func (p Palette) style(glyph rune) lipgloss.Style {
	if s, ok := p[glyph]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// RenderBoard draws every row of the board's bounds. Coordinates without a
// cell render as spaces so sparse rows keep their alignment.
// Runs of the same glyph are styled together to minimize ANSI escape sequences.
func RenderBoard(b *automaton.Board, p Palette) string {
	xr, yr := b.XRange(), b.YRange()

	var sb strings.Builder
	sb.Grow(b.Width()*b.Height()*2 + b.Height())

	for y := yr.Start; y < yr.End; y++ {
		if y > yr.Start {
			sb.WriteRune('\n')
		}

		x := xr.Start
		for x < xr.End {
			start := glyphAt(b, x, y)

			var run strings.Builder
			for x < xr.End && glyphAt(b, x, y) == start {
				run.WriteRune(start)
				x++
			}
			sb.WriteString(p.style(start).Render(run.String()))
		}
	}
	return sb.String()
}

func glyphAt(b *automaton.Board, x, y int) rune {
	c, ok := b.Get(geom.P(x, y))
	if !ok {
		return ' '
	}
	return c.Data.Glyph()
}
