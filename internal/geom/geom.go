// Package geom provides the integer 2D primitives shared by every grid
// consumer: points, compass directions and half-open ranges.
// It has no dependencies outside the standard library so that callers can
// use it without pulling in the grid container.
package geom

// Range is a half-open integer interval [Start, End).
type Range struct {
	Start, End int
}

// NewRange creates a range covering [start, end).
func NewRange(start, end int) Range {
	return Range{Start: start, End: end}
}

// Len returns the number of integers in the range, or 0 if it is inverted.
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start
}

// Contains returns true if v lies inside the range.
func (r Range) Contains(v int) bool {
	return v >= r.Start && v < r.End
}

// Grow returns the range extended by n on both sides.
func (r Range) Grow(n int) Range {
	return Range{Start: r.Start - n, End: r.End + n}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0 or 1 depending on the sign of x.
func Sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

// Mod returns x modulo m in [0, m). m must be positive.
func Mod(x, m int) int {
	return (m + x%m) % m
}
