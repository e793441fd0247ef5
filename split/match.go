package split

import "math"

// Options tunes the area matcher's binary search.
type Options struct {
	// Tolerance is the relative area error at which a slice boundary is
	// accepted: |area - target| / target < Tolerance.
	Tolerance float64
	// MaxIterations caps the number of clip-and-measure probes per slice, so
	// each slice costs at most MaxIterations clipper runs.
	MaxIterations int
}

func DefaultOptions() Options {
	return Options{Tolerance: 0.02, MaxIterations: 50}
}

// PreciseOptions trades roughly four times the clipping work for slice areas
// accurate to 0.005%.
func PreciseOptions() Options {
	return Options{Tolerance: 5e-5, MaxIterations: 200}
}

func (opt Options) withDefaults() Options {
	def := DefaultOptions()
	if opt.Tolerance <= 0 {
		opt.Tolerance = def.Tolerance
	}
	if opt.MaxIterations <= 0 {
		opt.MaxIterations = def.MaxIterations
	}
	return opt
}

// matchArea binary-searches an end offset in [start, limit] such that the
// region of the ring between the start offset and the returned offset has the
// target area within the relative tolerance. An empty clip measures as zero
// area, which simply steers the search toward the far end; it is a "below
// target" signal, not an error.
//
// If the search exhausts its iterations the best known lower bound is
// returned with found = false. The caller still gets a usable boundary, so a
// split never stalls on a slice it cannot match exactly.
func matchArea(r Ring, centroid Point, dir Vec, start, limit, halfWidth, target float64, opt Options) (offset float64, found bool) {
	low, high := start, limit
	for i := 0; i < opt.MaxIterations; i++ {
		mid := (low + high) / 2
		clipped := clipToConvex(r, clipRect(centroid, dir, start, mid, halfWidth))
		area := repairRing(clipped).Area()
		if math.Abs(area-target)/target < opt.Tolerance {
			return mid, true
		}
		if area > target {
			high = mid
		} else {
			low = mid
		}
	}
	return low, false
}
