package split

import "math"

// clipRect builds an oversized rectangle spanning the sweep axis between the
// start and end projection offsets. The rectangle extends halfWidth to either
// side of the axis, so with halfWidth beyond the ring's maximum perpendicular
// extent the rectangle's long sides never cut the ring. Corners are returned
// in counterclockwise order, which the clipper's inside test relies on.
func clipRect(centroid Point, dir Vec, start, end, halfWidth float64) Ring {
	normal := dir.Perp().Scale(halfWidth)
	c1 := centroid.Add(dir.Scale(start))
	c2 := centroid.Add(dir.Scale(end))
	return Ring{
		c1.Add(normal),
		c1.Add(normal.Scale(-1)),
		c2.Add(normal.Scale(-1)),
		c2.Add(normal),
	}
}

// clipHalfWidth derives the rectangle half-width from the ring's bounding box
// diagonal. No vertex can be farther than the diagonal from the centroid, so
// twice the diagonal always clears the ring regardless of whether the caller
// works in degrees or meters.
func clipHalfWidth(r Ring) float64 {
	min, max := r.Bounds()
	return 2 * math.Hypot(max.X-min.X, max.Y-min.Y)
}
