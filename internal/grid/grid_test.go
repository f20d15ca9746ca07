package grid_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/gridlab/internal/geom"
	"github.com/vovakirdan/gridlab/internal/grid"
)

func mustParse(t *testing.T, text string) *grid.Grid[rune] {
	t.Helper()
	g, err := grid.Parse(text, grid.RuneConverter)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	return g
}

func dataOf[T comparable](cells []*grid.Cell[T]) []T {
	out := make([]T, len(cells))
	for i, c := range cells {
		out[i] = c.Data
	}
	return out
}

func TestNewDense(t *testing.T) {
	g := grid.New(4, 3, 'x')
	if g.Width() != 4 || g.Height() != 3 {
		t.Errorf("expected 4x3 grid, got %dx%d", g.Width(), g.Height())
	}
	if g.Len() != 12 {
		t.Errorf("expected 12 cells, got %d", g.Len())
	}
	if !g.IsDense() {
		t.Error("New should build a dense grid")
	}
	if g.CountData('x') != 12 {
		t.Errorf("expected every cell to hold 'x', got %d", g.CountData('x'))
	}

	d := grid.NewDefault[int](2, 2)
	if v, ok := d.Data(geom.P(1, 1)); !ok || v != 0 {
		t.Errorf("NewDefault cell = (%v, %v), expected (0, true)", v, ok)
	}
}

func TestSparseGrid(t *testing.T) {
	g := grid.NewSparse[int](geom.NewRange(0, 10), geom.NewRange(0, 5))
	if g.Width() != 10 || g.Height() != 5 {
		t.Errorf("sparse grid should report nominal size, got %dx%d", g.Width(), g.Height())
	}
	if g.Len() != 0 || g.IsDense() {
		t.Error("sparse grid should start without cells")
	}
	if _, ok := g.Get(geom.P(1, 1)); ok {
		t.Error("Get on an absent cell should report false")
	}
}

func TestGridSetAndGet(t *testing.T) {
	g := grid.NewDefault[int](3, 3)

	g.Set(geom.P(1, 1), 7)
	c, ok := g.Get(geom.P(1, 1))
	if !ok || c.Data != 7 {
		t.Fatalf("expected 7 at (1,1), got %v", c)
	}
	if c.Point != geom.P(1, 1) {
		t.Errorf("cell point = %v, expected (1,1)", c.Point)
	}

	// In-place mutation through the returned pointer.
	c.Data = 9
	if v, _ := g.Data(geom.P(1, 1)); v != 9 {
		t.Errorf("expected 9 after in-place update, got %d", v)
	}

	// Set outside the bounds stores a cell but leaves the bounds alone.
	g.Set(geom.P(10, 10), 1)
	if _, ok := g.Get(geom.P(10, 10)); !ok {
		t.Error("Set should insert absent cells")
	}
	if g.Width() != 3 || g.Height() != 3 {
		t.Error("Set must not change the bounds")
	}
	if g.InBounds(geom.P(10, 10)) {
		t.Error("(10,10) should be outside the nominal bounds")
	}

	if !g.Delete(geom.P(10, 10)) || g.Delete(geom.P(10, 10)) {
		t.Error("Delete should remove once and then report absence")
	}
}

func TestGridIterationOrder(t *testing.T) {
	g := grid.NewSparse[int](geom.NewRange(0, 3), geom.NewRange(0, 3))
	for _, p := range []geom.Point{geom.P(2, 2), geom.P(0, 1), geom.P(1, 0), geom.P(2, 0), geom.P(0, 2)} {
		g.Set(p, p.X+p.Y)
	}
	expected := []geom.Point{geom.P(1, 0), geom.P(2, 0), geom.P(0, 1), geom.P(0, 2), geom.P(2, 2)}
	if diff := cmp.Diff(expected, g.Points()); diff != "" {
		t.Errorf("Points() mismatch (-want +got):\n%s", diff)
	}

	// Early break from the iterator.
	var seen []geom.Point
	for p := range g.All() {
		seen = append(seen, p)
		if len(seen) == 2 {
			break
		}
	}
	if len(seen) != 2 {
		t.Errorf("expected to stop after 2 cells, saw %d", len(seen))
	}
}

func TestGridFindAndRetain(t *testing.T) {
	g := mustParse(t, "ab.\n.b.\nbba")
	c, ok := g.Find('b')
	if !ok || c.Point != geom.P(1, 0) {
		t.Errorf("Find('b') = %v, expected (1,0)", c)
	}
	if n := len(g.FindAll('b')); n != 4 {
		t.Errorf("FindAll('b') returned %d cells, expected 4", n)
	}
	if _, ok := g.Find('z'); ok {
		t.Error("Find should fail for a missing value")
	}

	g.Retain(func(c *grid.Cell[rune]) bool { return c.Data != '.' })
	if g.Len() != 6 {
		t.Errorf("expected 6 cells after Retain, got %d", g.Len())
	}
	if g.Width() != 3 || g.Height() != 3 {
		t.Error("Retain must not change the bounds")
	}
}

func TestGridCrop(t *testing.T) {
	g := mustParse(t, "123\n456\n789")
	g.Expand()
	g.Crop(geom.NewRange(0, 2), geom.NewRange(1, 3))
	if g.Width() != 2 || g.Height() != 2 {
		t.Fatalf("expected 2x2 after Crop, got %dx%d", g.Width(), g.Height())
	}
	if got := g.String(); got != "45\n78" {
		t.Errorf("cropped grid = %q, expected %q", got, "45\n78")
	}
	if _, ok := g.Get(geom.P(-1, -1)); ok {
		t.Error("cells outside the new bounds should be dropped")
	}
}

func TestGridCloneAndEqual(t *testing.T) {
	g := mustParse(t, "12\n34")
	clone := g.Clone()
	if !g.Equal(clone) {
		t.Fatal("clone should be equal to original")
	}

	g.Set(geom.P(0, 0), '9')
	if v, _ := clone.Data(geom.P(0, 0)); v != '1' {
		t.Error("clone should not be affected by original modification")
	}
	if g.Equal(clone) {
		t.Error("grids with different payloads should not be equal")
	}

	bigger := clone.Clone()
	bigger.Expand()
	if bigger.Equal(clone) {
		t.Error("grids with different bounds should not be equal")
	}
}

func TestParse(t *testing.T) {
	g := mustParse(t, "123\n456\n789")
	if g.Width() != 3 || g.Height() != 3 || g.Len() != 9 {
		t.Fatalf("expected dense 3x3, got %dx%d with %d cells", g.Width(), g.Height(), g.Len())
	}
	if v, _ := g.Data(geom.P(2, 1)); v != '6' {
		t.Errorf("(2,1) = %q, expected '6'", v)
	}
}

func TestParseRagged(t *testing.T) {
	g := mustParse(t, "abcd\nab\nabc\n")
	if g.Width() != 4 || g.Height() != 3 {
		t.Errorf("expected bounds 4x3, got %dx%d", g.Width(), g.Height())
	}
	if g.Len() != 9 {
		t.Errorf("expected 9 cells, got %d", g.Len())
	}
	if _, ok := g.Get(geom.P(3, 1)); ok {
		t.Error("short lines should leave trailing coordinates empty")
	}
	if g.IsDense() {
		t.Error("ragged grid should not be dense")
	}
}

func TestParseError(t *testing.T) {
	_, err := grid.Parse("12\n3x", grid.DigitConverter)
	if err == nil {
		t.Fatal("expected an error for a non-digit")
	}
	var perr *grid.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if perr.Line != 1 || perr.Column != 1 || perr.Char != 'x' {
		t.Errorf("ParseError = %+v, expected line 1 column 1 char 'x'", perr)
	}
	if !errors.Is(err, grid.ErrInvalidChar) {
		t.Error("ParseError should unwrap to the converter error")
	}
	if !strings.Contains(err.Error(), "line 1 column 1") {
		t.Errorf("error message %q lacks position", err.Error())
	}
}

func TestParseAlphabet(t *testing.T) {
	conv := grid.AlphabetConverter(".#")
	if _, err := grid.Parse("#.#\n.#.", conv); err != nil {
		t.Errorf("valid alphabet rejected: %v", err)
	}
	if _, err := grid.Parse("#.?", conv); err == nil {
		t.Error("character outside alphabet accepted")
	}
}

func TestRenderRoundTrip(t *testing.T) {
	tests := []string{
		"123\n456\n789",
		"#",
		"..##\n#..#",
	}
	for _, text := range tests {
		if got := mustParse(t, text).String(); got != text {
			t.Errorf("round trip of %q gave %q", text, got)
		}
	}

	digits, err := grid.Parse("12\n34", grid.DigitConverter)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if got := digits.String(); got != "12\n34" {
		t.Errorf("integer render = %q", got)
	}
	if got := digits.Render(func(v int) string { return strings.Repeat("*", v) }); got != "***\n*******" {
		t.Errorf("custom render = %q", got)
	}
}

func TestRenderSparse(t *testing.T) {
	g := mustParse(t, "abc\nd\nefg")
	if got := g.String(); got != "abc\nd\nefg" {
		t.Errorf("sparse render = %q", got)
	}
	if got := grid.NewSparse[rune](geom.Range{}, geom.Range{}).String(); got != "" {
		t.Errorf("empty grid should render empty, got %q", got)
	}
}

func TestCellCoords(t *testing.T) {
	g := mustParse(t, "ab\ncd")
	a, _ := g.Get(geom.P(0, 0))
	d, _ := g.Get(geom.P(1, 1))
	if geom.Manhattan(a, d) != 2 {
		t.Errorf("Manhattan(a, d) = %d, expected 2", geom.Manhattan(a, d))
	}
	if a.DirectionTo(d.Point) != geom.SouthEast {
		t.Errorf("DirectionTo = %v, expected SouthEast", a.DirectionTo(d.Point))
	}
	if geom.DirectionBetween(d, geom.P(1, -5)) != geom.North {
		t.Error("cells and points should mix in generic helpers")
	}
	if a.String() != "(0,0)=a" {
		t.Errorf("cell String() = %q", a.String())
	}
}
