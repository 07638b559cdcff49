package pointset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointSetAdd(t *testing.T) {
	ps := NewPointSet()

	assert.True(t, ps.Add(Point3d{1, 2, 3}))
	assert.False(t, ps.Add(Point3d{1, 2, 3}))
	assert.True(t, ps.Add(Point3d{3, 2, 1}))
	assert.Equal(t, 2, ps.Len())

	assert.True(t, ps.Contains(Point3d{3, 2, 1}))
	assert.False(t, ps.Contains(Point3d{1, 2, 3.0000001}))
}

func TestPointSetExactEquality(t *testing.T) {
	testCases := []struct {
		name     string
		points   []Point3d
		expected int
	}{
		{
			name:     "negative zero equals zero",
			points:   []Point3d{{0, 0, 0}, {math.Copysign(0, -1), 0, 0}},
			expected: 1,
		},
		{
			name:     "nearly equal values stay distinct",
			points:   []Point3d{{1, 0, 0}, {1.0000000000000002, 0, 0}},
			expected: 2,
		},
		{
			name:     "NaN never matches",
			points:   []Point3d{{math.NaN(), 0, 0}, {math.NaN(), 0, 0}},
			expected: 2,
		},
		{
			name:     "infinities compare equal",
			points:   []Point3d{{math.Inf(1), 0, 0}, {math.Inf(1), 0, 0}},
			expected: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ps := NewPointSet()
			for _, p := range tc.points {
				ps.Add(p)
			}
			assert.Equal(t, tc.expected, ps.Len())
		})
	}
}

func TestPointSetPointsSorted(t *testing.T) {
	ps := NewPointSet()
	ps.Add(Point3d{2, 0, 0})
	ps.Add(Point3d{1, 5, 0})
	ps.Add(Point3d{1, 2, 9})
	ps.Add(Point3d{1, 2, 3})

	assert.Equal(t, []Point3d{
		{1, 2, 3},
		{1, 2, 9},
		{1, 5, 0},
		{2, 0, 0},
	}, ps.Points())
}

func TestPointSetExtents(t *testing.T) {
	ps := NewPointSet()
	_, ok := ps.Extents()
	assert.False(t, ok)

	ps.Add(Point3d{1, 5, -1})
	ps.Add(Point3d{3, 2, 4})
	ps.Add(Point3d{-2, 0, 0})

	ext, ok := ps.Extents()
	require.True(t, ok)
	assert.Equal(t, Point3d{-2, 0, -1}, ext.Min)
	assert.Equal(t, Point3d{3, 5, 4}, ext.Max)
	assert.Equal(t, Point3d{0.5, 2.5, 1.5}, ext.Center())
	assert.Equal(t, 5.0, ext.Size())
}

func TestPointSetExtentsSkipsNonFinite(t *testing.T) {
	testCases := []struct {
		name        string
		points      []Point3d
		expectedMin Point3d
		expectedMax Point3d
	}{
		{
			name: "NaN and infinity ignored per axis",
			points: []Point3d{
				{math.NaN(), math.NaN(), math.NaN()},
				{1, math.Inf(1), 2},
				{-3, 4, math.NaN()},
				{2, -1, math.Inf(-1)},
			},
			expectedMin: Point3d{-3, -1, 2},
			expectedMax: Point3d{2, 4, 2},
		},
		{
			name:        "axis without finite values",
			points:      []Point3d{{math.NaN(), 1, 1}, {math.NaN(), 3, 1}},
			expectedMin: Point3d{0, 1, 1},
			expectedMax: Point3d{0, 3, 1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ps := NewPointSet()
			for _, p := range tc.points {
				ps.Add(p)
			}

			ext, ok := ps.Extents()
			require.True(t, ok)
			assert.Equal(t, tc.expectedMin, ext.Min)
			assert.Equal(t, tc.expectedMax, ext.Max)
			assert.False(t, math.IsNaN(FrameCamera(ext).Distance()))
		})
	}
}

func TestPointDistanceTo(t *testing.T) {
	a := Point3d{1, 2, 3}
	b := Point3d{4, 6, 3}
	assert.Equal(t, 5.0, a.DistanceTo(b))
	assert.Equal(t, a, PointFromVec(a.Vec()))
}
