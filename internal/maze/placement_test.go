package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmentLocation(t *testing.T) {
	loc := WallSegment{X: 4, Z: 6, Orientation: Horizontal}.Location()
	assert.Equal(t, Location{X: 4, Y: 0, Z: 6, Yaw: 90}, loc)

	loc = WallSegment{X: 2, Z: 0, Orientation: Vertical}.Location()
	assert.Equal(t, Location{X: 2, Z: 0}, loc)
}
