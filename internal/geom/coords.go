package geom

// Coords is implemented by anything that sits at a grid coordinate.
// Point implements it directly; grid cells get it by embedding Point.
type Coords interface {
	AsPoint() Point
}

// Manhattan returns the Manhattan distance between two coordinate-bearing values.
func Manhattan[A, B Coords](a A, b B) int {
	return a.AsPoint().ManhattanDistance(b.AsPoint())
}

// Distance returns the Euclidean distance between two coordinate-bearing values.
func Distance[A, B Coords](a A, b B) float64 {
	return a.AsPoint().Distance(b.AsPoint())
}

// DirectionBetween returns the normalized direction from a to b.
func DirectionBetween[A, B Coords](a A, b B) Direction {
	return a.AsPoint().DirectionTo(b.AsPoint())
}

// ComparePoints orders two coordinate-bearing values row-major.
// It has the shape slices.SortFunc expects.
func ComparePoints[C Coords](a, b C) int {
	return a.AsPoint().Compare(b.AsPoint())
}
