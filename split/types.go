package split

import "math"

type Point struct {
	X float64
	Y float64
}

// Vec is a 2D vector, used for sweep directions and offsets between points.
type Vec struct {
	X float64
	Y float64
}

// Ring is an ordered polygon boundary. It is implicitly closed: an edge is
// assumed between the last point and the first, whether or not the caller
// duplicated the first point at the end.
type Ring []Point

// Slice is one part carved out of the source ring by a sweep cut. A cut
// through a concave polygon can sever it into disconnected pieces, so a slice
// holds one or more disjoint simple rings.
type Slice struct {
	Rings []Ring
}

// SliceKind tags the outcome of validity repair on a clipped ring.
type SliceKind int

const (
	EmptySlice SliceKind = iota
	SingleRing
	MultiRing
)

func (s Slice) Kind() SliceKind {
	switch len(s.Rings) {
	case 0:
		return EmptySlice
	case 1:
		return SingleRing
	default:
		return MultiRing
	}
}

func (s Slice) IsEmpty() bool {
	return len(s.Rings) == 0
}

// Area is the total enclosed area over all rings of the slice.
func (s Slice) Area() float64 {
	var total float64
	for _, r := range s.Rings {
		total += r.Area()
	}
	return total
}

// Result is the ordered sequence of slices produced by a split, from the low
// end of the sweep axis to the high end.
type Result []Slice

func (res Result) Area() float64 {
	var total float64
	for _, s := range res {
		total += s.Area()
	}
	return total
}

func (p Point) Add(v Vec) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

func (p Point) Sub(o Point) Vec {
	return Vec{X: p.X - o.X, Y: p.Y - o.Y}
}

func (v Vec) Dot(o Vec) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross is the z component of the 3D cross product. Positive when o is a left
// turn from v.
func (v Vec) Cross(o Vec) float64 {
	return v.X*o.Y - v.Y*o.X
}

func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

func (v Vec) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec) Normalize() Vec {
	length := v.Length()
	if length == 0 {
		return Vec{}
	}
	return Vec{X: v.X / length, Y: v.Y / length}
}

// Perp is the counterclockwise perpendicular of v.
func (v Vec) Perp() Vec {
	return Vec{X: -v.Y, Y: v.X}
}
