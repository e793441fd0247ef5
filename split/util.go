package split

import "math"

const Tolerance = 1e-6

// To compensate for imprecision in floats, equality is tolerance based. If we
// don't account for this, noding a ring at its self-intersections would fail
// to recognize the same crossing computed from two different edges.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

func samePoint(a, b Point) bool {
	return Equal(a.X, b.X) && Equal(a.Y, b.Y)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
