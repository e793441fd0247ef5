package split

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchArea_Converges(t *testing.T) {
	square := unitSquare()
	dir := estimateDirection(square)
	centroid, minProj, maxProj := projectionExtent(square, dir)
	halfWidth := clipHalfWidth(square)

	offset, found := matchArea(square, centroid, dir, minProj, maxProj, halfWidth, 0.25, DefaultOptions())
	assert.True(t, found)

	clipped := clipToConvex(square, clipRect(centroid, dir, minProj, offset, halfWidth))
	area := repairRing(clipped).Area()
	assert.InDelta(t, 0.25, area, 0.25*DefaultOptions().Tolerance)
}

func TestMatchArea_PreciseOptions(t *testing.T) {
	square := unitSquare()
	dir := estimateDirection(square)
	centroid, minProj, maxProj := projectionExtent(square, dir)
	halfWidth := clipHalfWidth(square)

	target := 1.0 / 3.0
	offset, found := matchArea(square, centroid, dir, minProj, maxProj, halfWidth, target, PreciseOptions())
	assert.True(t, found)

	clipped := clipToConvex(square, clipRect(centroid, dir, minProj, offset, halfWidth))
	area := repairRing(clipped).Area()
	assert.InDelta(t, target, area, target*PreciseOptions().Tolerance)
}

func TestMatchArea_UnreachableTargetFallsBack(t *testing.T) {
	// A target larger than the whole polygon can never match; the search must
	// terminate within its iteration cap and return its best lower bound.
	square := unitSquare()
	dir := estimateDirection(square)
	centroid, minProj, maxProj := projectionExtent(square, dir)
	halfWidth := clipHalfWidth(square)

	offset, found := matchArea(square, centroid, dir, minProj, maxProj, halfWidth, 5.0, DefaultOptions())
	assert.False(t, found)
	assert.GreaterOrEqual(t, offset, minProj)
	assert.LessOrEqual(t, offset, maxProj)
}

func TestClipRectWindingAndCoverage(t *testing.T) {
	rect := clipRect(Point{0, 0}, Vec{X: 1, Y: 0}, -1, 1, 100)
	assert.False(t, rect.IsClockwise())
	assert.InDelta(t, 2*200, rect.Area(), 1e-9)

	// Full-span rectangle always contains the source polygon
	square := unitSquare()
	dir := estimateDirection(square)
	centroid, minProj, maxProj := projectionExtent(square, dir)
	full := clipRect(centroid, dir, minProj-1e-9, maxProj+1e-9, clipHalfWidth(square))
	for _, p := range square {
		assert.True(t, full.ContainsPointByEvenOdd(p))
	}
}
