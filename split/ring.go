package split

import "math"

// SignedArea is the shoelace sum over the ring's edges, including the implicit
// closing edge. Positive for counterclockwise rings.
func (r Ring) SignedArea() float64 {
	n := len(r)
	if n < 3 {
		return 0
	}
	var sum float64
	for i, p := range r {
		q := r[CircularIndex(i+1, n)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

func (r Ring) Area() float64 {
	return math.Abs(r.SignedArea())
}

func (r Ring) IsClockwise() bool {
	return r.SignedArea() < 0
}

// Centroid is the arithmetic mean of the ring's points. This is the origin
// used for sweep projections; it is not the area centroid, and it shifts if
// the caller duplicates the closing point, which is why rings are deduped
// before splitting.
func (r Ring) Centroid() Point {
	var c Point
	for _, p := range r {
		c.X += p.X
		c.Y += p.Y
	}
	n := float64(len(r))
	c.X /= n
	c.Y /= n
	return c
}

// Bounds returns the corners of the ring's axis-aligned bounding box.
func (r Ring) Bounds() (min, max Point) {
	min = Point{X: math.Inf(1), Y: math.Inf(1)}
	max = Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, p := range r {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}

func (r Ring) Reverse() Ring {
	reversed := make(Ring, 0, len(r))
	for i := len(r) - 1; i >= 0; i-- {
		reversed = append(reversed, r[i])
	}
	return reversed
}

// ContainsPointByEvenOdd is winding rule point-in-polygon, counting crossings
// of a leftward ray from p. Points on the boundary may land on either side.
func (r Ring) ContainsPointByEvenOdd(p Point) bool {
	inside := false
	n := len(r)
	for i, a := range r {
		b := r[CircularIndex(i+1, n)]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

func (s Slice) ContainsPointByEvenOdd(p Point) bool {
	for _, r := range s.Rings {
		if r.ContainsPointByEvenOdd(p) {
			return true
		}
	}
	return false
}

// dedupe collapses consecutive points that coincide within tolerance, and
// drops an explicit closing point if the input duplicated its first point at
// the end.
func (r Ring) dedupe() Ring {
	if len(r) == 0 {
		return nil
	}
	out := make(Ring, 0, len(r))
	for _, p := range r {
		if len(out) > 0 && samePoint(out[len(out)-1], p) {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && samePoint(out[0], out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	return out
}
