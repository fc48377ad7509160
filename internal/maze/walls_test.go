package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterializeOrientation(t *testing.T) {
	g, err := NewGrid(3, 2)
	require.NoError(t, err)

	segments := Materialize(g, 1)

	// Walls sorted by edge: (0,1) (0,3) (1,2) (1,4) (2,5) (3,4) (4,5)
	want := []WallSegment{
		{X: 0, Z: 0, Orientation: Vertical},
		{X: 0, Z: 0, Orientation: Horizontal},
		{X: 1, Z: 0, Orientation: Vertical},
		{X: 1, Z: 0, Orientation: Horizontal},
		{X: 2, Z: 0, Orientation: Horizontal},
		{X: 0, Z: 1, Orientation: Vertical},
		{X: 1, Z: 1, Orientation: Vertical},
	}
	assert.Equal(t, want, segments)
}

func TestMaterializeScalesByCellSize(t *testing.T) {
	g, err := NewGrid(2, 2)
	require.NoError(t, err)
	g.Carve(0, 1)
	g.Carve(0, 2)
	g.Carve(1, 3)

	segments := Materialize(g, 2.5)

	require.Len(t, segments, 1)
	assert.Equal(t, WallSegment{X: 0, Z: 2.5, Orientation: Vertical}, segments[0])
}

func TestMaterializeEmpty(t *testing.T) {
	g, err := NewGrid(1, 1)
	require.NoError(t, err)

	assert.Empty(t, Materialize(g, DefaultCellSize))
}

func TestOrientationYaw(t *testing.T) {
	assert.Equal(t, float32(0), Vertical.Yaw())
	assert.Equal(t, float32(90), Horizontal.Yaw())
	assert.Equal(t, "vertical", Vertical.String())
	assert.Equal(t, "horizontal", Horizontal.String())
	assert.Equal(t, "unknown", Orientation(7).String())
}

func TestBoundaryEnclosesGrid(t *testing.T) {
	g, err := NewGrid(3, 2)
	require.NoError(t, err)

	segments := g.boundary(1)

	assert.Len(t, segments, 2*3+2*2)
	assert.Contains(t, segments, WallSegment{X: 0, Z: -1, Orientation: Horizontal})
	assert.Contains(t, segments, WallSegment{X: 2, Z: 1, Orientation: Horizontal})
	assert.Contains(t, segments, WallSegment{X: -1, Z: 1, Orientation: Vertical})
	assert.Contains(t, segments, WallSegment{X: 2, Z: 0, Orientation: Vertical})
}
