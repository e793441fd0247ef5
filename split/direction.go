package split

import "math"

// estimateDirection computes the sweep axis for a ring as the direction of a
// least-squares line fit (y = a*x + b) through its vertices. Sweeping along
// the polygon's dominant elongation keeps slices compact strips instead of
// arbitrary axis-aligned cuts.
//
// Degenerate fits never surface as errors. A singular system (the vertices
// cluster on a vertical line) falls back to sweeping along the y axis, and a
// fit that produces a non-finite slope falls back to the x axis.
func estimateDirection(r Ring) Vec {
	n := float64(len(r))
	var sx, sy, sxx, sxy float64
	for _, p := range r {
		sx += p.X
		sy += p.Y
		sxx += p.X * p.X
		sxy += p.X * p.Y
	}

	// The normal-equation denominator is n times the variance of x. Compare it
	// against the magnitude of its terms so the singularity test is independent
	// of the coordinate scale.
	denom := n*sxx - sx*sx
	scale := n*sxx + sx*sx
	if scale == 0 || math.Abs(denom) <= 1e-12*scale {
		return Vec{X: 0, Y: 1}
	}

	a := (n*sxy - sx*sy) / denom
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return Vec{X: 1, Y: 0}
	}
	return Vec{X: 1, Y: a}.Normalize()
}
