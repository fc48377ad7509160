package maze

import "fmt"

// DefaultCellSize is the world-space width of one cell.
const DefaultCellSize = 2.0

// Orientation is the facing of a wall segment.
type Orientation int

const (
	// Vertical walls separate horizontally adjacent cells and are unrotated.
	Vertical Orientation = iota
	// Horizontal walls separate vertically adjacent cells and are rotated 90 degrees.
	Horizontal
)

// String returns a human-readable orientation name.
func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return "unknown"
	}
}

// Yaw returns the rotation about the vertical axis in degrees.
func (o Orientation) Yaw() float32 {
	if o == Horizontal {
		return 90
	}
	return 0
}

// WallSegment is a single wall placed in world space.
type WallSegment struct {
	X, Z        float64
	Orientation Orientation
}

// Materialize converts every wall still standing in g into a segment placed
// at the lower-index cell, scaled by cellSize. Segments are ordered by edge.
func Materialize(g *Grid, cellSize float64) []WallSegment {
	walls := g.Walls()
	segments := make([]WallSegment, 0, len(walls))
	for _, e := range walls {
		segments = append(segments, g.segment(e, cellSize))
	}
	return segments
}

func (g *Grid) segment(e Edge, cellSize float64) WallSegment {
	row, col := g.Position(e.A)
	bRow, _ := g.Position(e.B)

	var o Orientation
	switch {
	case e.B-e.A == 1 && row == bRow:
		o = Vertical
	case e.B-e.A == g.width:
		o = Horizontal
	default:
		panic(fmt.Sprintf("maze: cells %d and %d are not adjacent", e.A, e.B))
	}

	return WallSegment{
		X:           float64(col) * cellSize,
		Z:           float64(row) * cellSize,
		Orientation: o,
	}
}

// boundary returns the segments enclosing the grid. The perimeter is never
// part of the graph, so it cannot be carved.
func (g *Grid) boundary(cellSize float64) []WallSegment {
	var segments []WallSegment
	for col := 0; col < g.width; col++ {
		segments = append(segments,
			WallSegment{X: float64(col) * cellSize, Z: -cellSize, Orientation: Horizontal},
			WallSegment{X: float64(col) * cellSize, Z: float64(g.height-1) * cellSize, Orientation: Horizontal},
		)
	}
	for row := 0; row < g.height; row++ {
		segments = append(segments,
			WallSegment{X: -cellSize, Z: float64(row) * cellSize, Orientation: Vertical},
			WallSegment{X: float64(g.width-1) * cellSize, Z: float64(row) * cellSize, Orientation: Vertical},
		)
	}
	return segments
}
