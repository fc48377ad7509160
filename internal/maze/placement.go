package maze

// Location is a position in world space with Euler rotation in degrees.
type Location struct {
	X, Y, Z float64
	Pitch   float32
	Yaw     float32
}

// Location places the segment on the ground plane.
func (s WallSegment) Location() Location {
	return Location{
		X:   s.X,
		Z:   s.Z,
		Yaw: s.Orientation.Yaw(),
	}
}

// Placements returns a world location for every interior and boundary wall,
// interior walls first.
func (m *Maze) Placements() []Location {
	locs := make([]Location, 0, len(m.Walls)+len(m.Boundary))
	for _, s := range m.Walls {
		locs = append(locs, s.Location())
	}
	for _, s := range m.Boundary {
		locs = append(locs, s.Location())
	}
	return locs
}
