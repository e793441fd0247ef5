// Package split partitions a single simple polygon into an ordered sequence
// of sub-polygons whose areas match either an exact count of equal parts or a
// fixed target area per part with a final remainder.
//
// The engine estimates a sweep axis along the polygon's dominant elongation,
// then repeatedly carves off strips perpendicular to that axis, binary
// searching each strip's far boundary until its area hits the target. All
// state lives on the stack of one call; concurrent splits need no
// coordination.
//
// Coordinates must be in a planar, equal-area-consistent projected system.
// Callers holding geographic coordinates reproject before splitting and
// reproject the slices back afterward.
package split

import "math"

// SplitByCount partitions the ring into exactly n slices of equal area.
//
// Degenerate input (fewer than 4 points, zero area, zero projection span)
// yields an empty result, never an error. Otherwise the result has exactly n
// slices unless validity repair discards a slice entirely, and their areas
// sum to the ring's area within the matcher tolerance: the n-th slice is
// everything left past the last matched boundary, so accumulated search error
// lands in the final slice instead of leaking coverage.
func SplitByCount(r Ring, n int) Result {
	return SplitByCountOpt(r, n, DefaultOptions())
}

func SplitByCountOpt(r Ring, n int, opt Options) Result {
	if n < 1 || len(r) < 4 {
		return nil
	}
	ring := r.dedupe()
	total := ring.Area()
	if total <= 0 {
		return nil
	}
	return splitSlices(ring, n, total/float64(n), opt.withDefaults())
}

// SplitByArea partitions the ring into ceil(area/targetArea) slices, each of
// area targetArea except the last, which absorbs the remainder along with any
// rounding error. Degenerate input yields an empty result, as does a
// non-positive targetArea.
func SplitByArea(r Ring, targetArea float64) Result {
	return SplitByAreaOpt(r, targetArea, DefaultOptions())
}

func SplitByAreaOpt(r Ring, targetArea float64, opt Options) Result {
	if targetArea <= 0 || len(r) < 4 {
		return nil
	}
	ring := r.dedupe()
	total := ring.Area()
	if total <= 0 || math.IsInf(total, 0) {
		return nil
	}
	// Back the quotient off by an epsilon so a target that divides the area
	// evenly doesn't round up to an extra sliver slice.
	n := int(math.Ceil(total/targetArea - 1e-9))
	if n < 1 {
		n = 1
	}
	return splitSlices(ring, n, targetArea, opt.withDefaults())
}

// splitSlices is the core loop shared by both entry points: n-1 matched cuts
// advancing along the sweep axis, then one explicit remainder slice from the
// last boundary to the end of the projection range.
func splitSlices(ring Ring, n int, target float64, opt Options) Result {
	dir := estimateDirection(ring)
	centroid, minProj, maxProj := projectionExtent(ring, dir)
	if maxProj-minProj <= 0 {
		return nil
	}
	halfWidth := clipHalfWidth(ring)

	result := make(Result, 0, n)
	cur := minProj
	for i := 0; i < n-1; i++ {
		offset, _ := matchArea(ring, centroid, dir, cur, maxProj, halfWidth, target, opt)
		slice := repairRing(clipToConvex(ring, clipRect(centroid, dir, cur, offset, halfWidth)))
		if !slice.IsEmpty() {
			result = append(result, slice)
		}
		cur = offset
	}

	// The last slice is taken without a search so the result always covers
	// the rest of the polygon.
	last := repairRing(clipToConvex(ring, clipRect(centroid, dir, cur, maxProj, halfWidth)))
	if !last.IsEmpty() {
		result = append(result, last)
	}
	return result
}
