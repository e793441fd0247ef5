package split

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func unitSquare() Ring {
	return Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
}

func TestRingArea(t *testing.T) {
	square := unitSquare()
	assert.InDelta(t, 1.0, square.SignedArea(), 1e-12)
	assert.InDelta(t, 1.0, square.Area(), 1e-12)
	assert.False(t, square.IsClockwise())

	// Winding flips the sign but not the area
	reversed := square.Reverse()
	assert.InDelta(t, -1.0, reversed.SignedArea(), 1e-12)
	assert.InDelta(t, 1.0, reversed.Area(), 1e-12)
	assert.True(t, reversed.IsClockwise())

	assert.Equal(t, 0.0, Ring{{0, 0}, {1, 1}}.SignedArea())
}

func TestRingCentroidAndBounds(t *testing.T) {
	square := unitSquare()
	assert.Equal(t, Point{0.5, 0.5}, square.Centroid())

	min, max := square.Bounds()
	assert.Equal(t, Point{0, 0}, min)
	assert.Equal(t, Point{1, 1}, max)
}

func TestRingContainsPointByEvenOdd(t *testing.T) {
	square := unitSquare()
	assert.True(t, square.ContainsPointByEvenOdd(Point{0.5, 0.5}))
	assert.False(t, square.ContainsPointByEvenOdd(Point{1.5, 0.5}))
	assert.False(t, square.ContainsPointByEvenOdd(Point{0.5, -0.5}))

	// Concave: a point inside the notch is outside the polygon
	cShape := Ring{{0, 0}, {30, 0}, {30, 2}, {2, 2}, {2, 8}, {30, 8}, {30, 10}, {0, 10}}
	assert.True(t, cShape.ContainsPointByEvenOdd(Point{1, 5}))
	assert.True(t, cShape.ContainsPointByEvenOdd(Point{15, 1}))
	assert.False(t, cShape.ContainsPointByEvenOdd(Point{15, 5}))
}

func TestRingDedupe(t *testing.T) {
	closed := Ring{{0, 0}, {1, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}
	assert.Equal(t, unitSquare(), closed.dedupe())
	assert.Equal(t, unitSquare(), unitSquare().dedupe())
	assert.Nil(t, Ring{}.dedupe())
}
