package grid_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/gridlab/internal/geom"
	"github.com/vovakirdan/gridlab/internal/grid"
)

func TestGetWrapped(t *testing.T) {
	g := mustParse(t, "123\n456\n789")
	tests := []struct {
		p        geom.Point
		expected rune
	}{
		{geom.P(-1, -1), '9'},
		{geom.P(3, 1), '4'},
		{geom.P(0, 0), '1'},
		{geom.P(-4, 7), '6'},
		{geom.P(300, -300), '1'},
	}
	for _, tc := range tests {
		c, err := g.GetWrapped(tc.p)
		if err != nil {
			t.Fatalf("GetWrapped(%v) failed: %v", tc.p, err)
		}
		if c.Data != tc.expected {
			t.Errorf("GetWrapped(%v) = %q, expected %q", tc.p, c.Data, tc.expected)
		}
	}

	direct, _ := g.Get(geom.P(2, 2))
	if g.MustGetWrapped(geom.P(-1, -1)) != direct {
		t.Error("wrapped lookup should return the stored cell itself")
	}
}

func TestGetWrappedSparse(t *testing.T) {
	g := mustParse(t, "123\n4\n789")
	if _, err := g.GetWrapped(geom.P(-1, 1)); !errors.Is(err, grid.ErrSparseWrap) {
		t.Errorf("expected ErrSparseWrap, got %v", err)
	}

	empty := grid.NewSparse[rune](geom.Range{}, geom.Range{})
	if _, err := empty.GetWrapped(geom.P(0, 0)); !errors.Is(err, grid.ErrEmptyGrid) {
		t.Errorf("expected ErrEmptyGrid, got %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustGetWrapped should panic on a sparse grid")
		}
	}()
	g.MustGetWrapped(geom.P(2, 1))
}

func TestWrappedAfterExpand(t *testing.T) {
	g := mustParse(t, "12\n34")
	g.Expand()
	// Bounds are now [-1,3) x [-1,3); wrapping follows the bounds.
	p, err := g.WrapPoint(geom.P(3, 0))
	if err != nil {
		t.Fatalf("WrapPoint failed: %v", err)
	}
	if p != geom.P(-1, 0) {
		t.Errorf("WrapPoint((3,0)) = %v, expected (-1,0)", p)
	}
}

func TestSightLineWrapped(t *testing.T) {
	g := mustParse(t, "abc\ndef\nghi")

	line, err := g.SightLineWrapped(geom.P(1, 1), geom.East, 5)
	if err != nil {
		t.Fatalf("SightLineWrapped failed: %v", err)
	}
	if got := string(dataOf(line)); got != "efdef" {
		t.Errorf("wrapped east = %q, expected %q", got, "efdef")
	}

	line, err = g.SightLineWrapped(geom.P(0, 0), geom.NorthWest, 4)
	if err != nil {
		t.Fatalf("SightLineWrapped failed: %v", err)
	}
	if got := string(dataOf(line)); got != "aiea" {
		t.Errorf("wrapped north-west = %q, expected %q", got, "aiea")
	}

	sparse := mustParse(t, "abc\nd\nghi")
	if _, err := sparse.SightLineWrapped(geom.P(0, 1), geom.East, 3); !errors.Is(err, grid.ErrSparseWrap) {
		t.Errorf("expected ErrSparseWrap, got %v", err)
	}
}

func TestExpand(t *testing.T) {
	g, err := grid.Parse("12\n34", grid.DigitConverter)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	w, h := g.Width(), g.Height()
	g.Expand()

	if g.Width() != w+2 || g.Height() != h+2 {
		t.Errorf("expected %dx%d after Expand, got %dx%d", w+2, h+2, g.Width(), g.Height())
	}
	if g.XRange() != geom.NewRange(-1, 3) || g.YRange() != geom.NewRange(-1, 3) {
		t.Errorf("bounds = %v x %v", g.XRange(), g.YRange())
	}
	if g.Len() != 16 || !g.IsDense() {
		t.Errorf("expected a dense 4x4 grid, got %d cells", g.Len())
	}
	for _, c := range g.Cells() {
		border := c.X == -1 || c.X == 2 || c.Y == -1 || c.Y == 2
		if border && c.Data != 0 {
			t.Errorf("border cell %v holds %d, expected 0", c.Point, c.Data)
		}
	}
	if v, _ := g.Data(geom.P(1, 1)); v != 4 {
		t.Errorf("interior cell changed: %d", v)
	}

	g.Expand()
	if g.Width() != w+4 || g.Len() != 36 {
		t.Errorf("second Expand: width %d, %d cells", g.Width(), g.Len())
	}
}

func TestExpandEmpty(t *testing.T) {
	g := grid.NewSparse[int](geom.Range{}, geom.Range{})
	g.Expand()
	if g.Width() != 2 || g.Height() != 2 || g.Len() != 4 {
		t.Errorf("expected 2x2 after expanding empty grid, got %dx%d with %d cells", g.Width(), g.Height(), g.Len())
	}
}

// decrement lowers every positive cell by one; it reaches a fixed point once
// all cells are zero.
func decrement(g *grid.Grid[int]) *grid.Grid[int] {
	next := g.Clone()
	for _, c := range next.Cells() {
		if c.Data > 0 {
			c.Data--
		}
	}
	return next
}

// flip toggles every cell and never converges.
func flip(g *grid.Grid[int]) *grid.Grid[int] {
	next := g.Clone()
	for _, c := range next.Cells() {
		c.Data = 1 - c.Data
	}
	return next
}

func TestApplyStep(t *testing.T) {
	g := grid.New(2, 2, 1)
	if !g.ApplyStep(decrement) {
		t.Error("first step should change the grid")
	}
	if g.CountData(0) != 4 {
		t.Error("ApplyStep should replace the contents")
	}
	if g.ApplyStep(decrement) {
		t.Error("second step should be a fixed point")
	}
}

func TestApplyStepRejectsInPlaceStep(t *testing.T) {
	g := grid.New(2, 2, 1)
	inPlace := func(g *grid.Grid[int]) *grid.Grid[int] {
		for _, c := range g.Cells() {
			c.Data = 0
		}
		return g
	}
	defer func() {
		if recover() == nil {
			t.Error("ApplyStep should panic when the step returns its input")
		}
	}()
	g.ApplyStep(inPlace)
}

func TestApplyStepsUntil(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		f        grid.StepFunc[int]
		limit    int
		expected int
	}{
		{"converges after k", 5, decrement, 0, 5},
		{"already stable", 0, decrement, 0, 0},
		{"limit below k", 5, decrement, 3, 3},
		{"limit above k", 2, decrement, 10, 2},
		{"never converges", 0, flip, 7, 7},
		{"never converges, limit 1", 0, flip, 1, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := grid.New(3, 3, tc.start)
			if got := g.ApplyStepsUntil(tc.f, tc.limit); got != tc.expected {
				t.Errorf("ApplyStepsUntil = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestApplyStepsUntilDetectsGrowth(t *testing.T) {
	g := grid.New(1, 1, 0)
	grow := func(g *grid.Grid[int]) *grid.Grid[int] {
		next := g.Clone()
		if next.Width() < 5 {
			next.Expand()
		}
		return next
	}
	// Growth from width 1 to 3 to 5 counts as change even though payloads stay zero.
	if got := g.ApplyStepsUntil(grow, 0); got != 2 {
		t.Errorf("ApplyStepsUntil = %d, expected 2", got)
	}
}
