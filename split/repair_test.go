package split

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepairRing_SimpleRingPassesThrough(t *testing.T) {
	slice := repairRing(unitSquare())
	assert.Equal(t, SingleRing, slice.Kind())
	assert.InDelta(t, 1.0, slice.Area(), 1e-9)
	assert.Equal(t, unitSquare(), slice.Rings[0])
}

func TestRepairRing_Degenerate(t *testing.T) {
	assert.Equal(t, EmptySlice, repairRing(nil).Kind())
	assert.Equal(t, EmptySlice, repairRing(Ring{{0, 0}, {1, 1}}).Kind())

	// Collinear ring: no area
	flat := Ring{{0, 0}, {1, 0}, {2, 0}, {3, 0}}
	assert.Equal(t, EmptySlice, repairRing(flat).Kind())

	// Consecutive duplicates collapse below three distinct vertices
	collapsed := Ring{{0, 0}, {0, 0}, {1, 1}, {1, 1}}
	assert.Equal(t, EmptySlice, repairRing(collapsed).Kind())
}

func TestRepairRing_Bowtie(t *testing.T) {
	// Edges (0,0)->(4,4) and (4,0)->(0,4) cross at (2,2). The two lobes wind
	// in opposite directions, so the raw shoelace sum cancels to zero even
	// though the figure encloses real area.
	bowtie := Ring{{0, 0}, {4, 4}, {4, 0}, {0, 4}}
	assert.InDelta(t, 0.0, bowtie.Area(), 1e-9)

	slice := repairRing(bowtie)
	assert.Equal(t, MultiRing, slice.Kind())
	assert.Len(t, slice.Rings, 2)
	for _, r := range slice.Rings {
		assert.InDelta(t, 4.0, r.Area(), 1e-9)
	}
}

func TestRepairRing_BridgedRingSplitsInTwo(t *testing.T) {
	// The raw clipper output for a U-shape cut across its opening: two boxes
	// joined by a zero-width bridge along y=5 (see the clipper tests).
	bridged := Ring{{0, 7}, {0, 5}, {10, 5}, {10, 7}, {8, 7}, {8, 5}, {2, 5}, {2, 7}}
	slice := repairRing(bridged)
	assert.Equal(t, MultiRing, slice.Kind())
	assert.Len(t, slice.Rings, 2)

	var areas []float64
	for _, r := range slice.Rings {
		areas = append(areas, r.Area())
	}
	// One 2x2 box on the right arm, one 2x2 box on the left arm
	assert.InDelta(t, 4.0, areas[0], 1e-9)
	assert.InDelta(t, 4.0, areas[1], 1e-9)

	// The pieces are disjoint: one contains (1,6), the other (9,6), neither
	// contains the notch interior
	assert.True(t, slice.ContainsPointByEvenOdd(Point{1, 6}))
	assert.True(t, slice.ContainsPointByEvenOdd(Point{9, 6}))
	assert.False(t, slice.ContainsPointByEvenOdd(Point{5, 6}))
}

func TestNodeRing_InsertsCrossing(t *testing.T) {
	bowtie := Ring{{0, 0}, {4, 4}, {4, 0}, {0, 4}}
	noded := nodeRing(bowtie)
	assert.Len(t, noded, 6)

	crossings := 0
	for _, p := range noded {
		if samePoint(p, Point{2, 2}) {
			crossings++
		}
	}
	assert.Equal(t, 2, crossings)
}

func TestExtractLoops_NoRepeats(t *testing.T) {
	square := unitSquare()
	loops := extractLoops(square)
	assert.Len(t, loops, 1)
	assert.Equal(t, square, loops[0])
}
