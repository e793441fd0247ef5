package split

import "math"

// projectionExtent projects every vertex of the ring onto the sweep axis,
// relative to the ring's centroid, and returns the centroid together with the
// projection range. A zero-length range means the ring has no extent along
// the axis; callers treat that as a degenerate input, not an error.
func projectionExtent(r Ring, dir Vec) (centroid Point, minProj, maxProj float64) {
	centroid = r.Centroid()
	minProj = math.Inf(1)
	maxProj = math.Inf(-1)
	for _, p := range r {
		proj := p.Sub(centroid).Dot(dir)
		minProj = math.Min(minProj, proj)
		maxProj = math.Max(maxProj, proj)
	}
	return centroid, minProj, maxProj
}
