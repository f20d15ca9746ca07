// Package grid implements a sparse 2D container keyed by geom.Point.
//
// A Grid tracks a nominal rectangular extent (XRange x YRange) and an
// ordered set of cells. Cells are kept sorted row-major, so iteration,
// rendering and every query that walks the grid see cells top-to-bottom,
// left-to-right. The set may be sparse: a coordinate inside the bounds
// without a stored cell is simply absent, and that absence is how edges are
// detected by neighbor and sight-line queries.
//
// Construction:
//
//   - New / NewDefault build a dense grid of the given size.
//   - NewSparse builds an empty grid with explicit bounds.
//   - Parse / Read build a grid from text through a rune converter.
//
// Queries:
//
//   - Get, Data, Neighbors*, CountNeighbors: lookups that return nil/false
//     for absent cells.
//   - SightLine*, SightLineN: rays cast from an origin.
//   - GetWrapped, SightLineWrapped: toroidal access. These require the grid
//     to be dense over its bounds and report ErrSparseWrap otherwise.
//
// Mutation:
//
//   - Set, Delete, Retain change cells but never the bounds.
//   - Expand grows the bounds by one ring of zero-valued cells.
//   - ApplyStep, ApplyStepsUntil run a transition function to a fixed point.
//
// A Grid is not safe for concurrent mutation.
package grid
