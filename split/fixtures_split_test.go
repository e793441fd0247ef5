package split

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitByCount_BlobFixture(t *testing.T) {
	blob := LoadFixture("blob")
	total := blob.Area()
	require.Greater(t, total, 0.0)

	result := SplitByCount(blob, 5)
	require.Len(t, result, 5)
	assert.InDelta(t, total, result.Area(), total*0.01)
	validateSlicesBySampling(t, result, blob)
}

func TestSplitByArea_CShapeFixture(t *testing.T) {
	cShape := LoadFixture("cshape")
	total := cShape.Area()
	require.InDelta(t, 132.0, total, 1e-9)

	result := SplitByArea(cShape, 40)
	// ceil(132/40) = 4 slices: three matched at 40, one remainder of 12
	require.Len(t, result, 4)
	for _, slice := range result[:3] {
		assert.InDelta(t, 40.0, slice.Area(), 40.0*0.02)
	}
	assert.InDelta(t, total, result.Area(), total*0.01)
	validateSlicesBySampling(t, result, cShape)
}
