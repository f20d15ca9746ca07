package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridlab/internal/automaton"
	"github.com/vovakirdan/gridlab/internal/geom"
	"github.com/vovakirdan/gridlab/internal/grid"
)

var (
	flagAt     string
	flagTo     string
	flagDir    string
	flagRadius int
	flagLength int
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [pattern]",
	Short: "Show what the rules see around a cell",
	Long: `Print the neighbors, box neighborhood, sight lines and wrapped lookups
around one cell of a pattern's starting board.

Sight lines stop after the first seat (L or #) they reach.

Examples:
  gridlab inspect waiting_area --at 3,4
  gridlab inspect glider --at 0,0 --dir se --length 3
  gridlab inspect block --at 1,1 --to 3,3 --radius 2`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&flagAt, "at", "0,0", "Cell to inspect as x,y")
	inspectCmd.Flags().StringVar(&flagTo, "to", "", "Second cell for distance and direction, as x,y")
	inspectCmd.Flags().StringVar(&flagDir, "dir", "east", "Direction for the bounded and wrapped sight lines")
	inspectCmd.Flags().IntVar(&flagRadius, "radius", 1, "Box neighborhood radius")
	inspectCmd.Flags().IntVar(&flagLength, "length", 4, "Cells in the bounded and wrapped sight lines")
}

func parsePoint(s string) (geom.Point, error) {
	var x, y int
	if _, err := fmt.Sscanf(strings.TrimSpace(s), "%d,%d", &x, &y); err != nil {
		return geom.Point{}, fmt.Errorf("invalid point %q: want x,y", s)
	}
	return geom.P(x, y), nil
}

func describe(c *grid.Cell[automaton.Tile]) string {
	if c == nil {
		return "-"
	}
	return c.String()
}

func runInspect(_ *cobra.Command, args []string) error {
	s, err := openSession(args)
	if err != nil {
		return err
	}
	at, err := parsePoint(flagAt)
	if err != nil {
		return err
	}
	dir, err := geom.ParseDirection(flagDir)
	if err != nil {
		return err
	}
	b := s.board

	fmt.Printf("%s: %dx%d, %d cells, dense=%v\n", s.pattern.ID, b.Width(), b.Height(), b.Len(), b.IsDense())
	if c, ok := b.Get(at); ok {
		fmt.Printf("cell %s\n", c)
	} else {
		fmt.Printf("cell %v has no tile\n", at)
	}

	fmt.Println()
	fmt.Println("Neighbors:")
	for i, c := range b.Neighbors(at) {
		fmt.Printf("  %-10s %s\n", geom.All()[i], describe(c))
	}
	fmt.Printf("  occupied: %d\n", b.CountNeighbors(at, automaton.Full))

	fmt.Println()
	fmt.Printf("Box (radius %d):\n", flagRadius)
	side := 2*flagRadius + 1
	var row strings.Builder
	for i, c := range b.NeighborsBoxN(at, flagRadius) {
		if c == nil {
			row.WriteRune(' ')
		} else {
			row.WriteRune(c.Data.Glyph())
		}
		if (i+1)%side == 0 {
			fmt.Printf("  |%s|\n", row.String())
			row.Reset()
		}
	}

	fmt.Println()
	fmt.Println("Sight lines:")
	for i, line := range b.SightLinesAll(at, automaton.Seat, automaton.Full) {
		last := "-"
		if len(line) > 0 {
			last = line[len(line)-1].String()
		}
		fmt.Printf("  %-10s %d cells, ends at %s\n", geom.All()[i], len(line), last)
	}

	fmt.Println()
	fmt.Printf("%d cells %s from %v:\n", flagLength, dir, at)
	fmt.Printf("  bounded: %s\n", glyphs(b.SightLineN(at, dir, flagLength)))
	wrapped, err := b.SightLineWrapped(at, dir, flagLength)
	switch {
	case errors.Is(err, grid.ErrSparseWrap), errors.Is(err, grid.ErrEmptyGrid):
		fmt.Printf("  wrapped: unavailable (%v)\n", err)
	case err != nil:
		return err
	default:
		fmt.Printf("  wrapped: %s\n", glyphs(wrapped))
	}

	if flagTo != "" {
		to, err := parsePoint(flagTo)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Printf("%v -> %v: direction %s, manhattan %d, distance %.3f\n",
			at, to,
			geom.DirectionBetween(at, to),
			geom.Manhattan(at, to),
			geom.Distance(at, to),
		)
	}
	return nil
}

func glyphs(cells []*grid.Cell[automaton.Tile]) string {
	var sb strings.Builder
	for _, c := range cells {
		sb.WriteRune(c.Data.Glyph())
	}
	return sb.String()
}
