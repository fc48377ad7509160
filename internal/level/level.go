// Package level encodes generated mazes as level files for the renderer.
package level

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/mazegen/internal/maze"
)

// Level is the on-disk form of a generated maze.
type Level struct {
	Width    int     `yaml:"width" json:"width"`
	Height   int     `yaml:"height" json:"height"`
	CellSize float64 `yaml:"cell_size" json:"cell_size"`
	Seed     int64   `yaml:"seed" json:"seed"`
	Walls    []Wall  `yaml:"walls" json:"walls"`
	Boundary []Wall  `yaml:"boundary,omitempty" json:"boundary,omitempty"`
}

// Wall is one wall placement.
type Wall struct {
	X           float64 `yaml:"x" json:"x"`
	Z           float64 `yaml:"z" json:"z"`
	Orientation string  `yaml:"orientation" json:"orientation"`
	Yaw         float32 `yaml:"yaw" json:"yaw"`
}

// FromMaze converts a generated maze into a level.
func FromMaze(m *maze.Maze, seed int64) Level {
	return Level{
		Width:    m.Width,
		Height:   m.Height,
		CellSize: m.CellSize,
		Seed:     seed,
		Walls:    walls(m.Walls),
		Boundary: walls(m.Boundary),
	}
}

func walls(segments []maze.WallSegment) []Wall {
	if len(segments) == 0 {
		return nil
	}
	result := make([]Wall, len(segments))
	for i, s := range segments {
		result[i] = Wall{
			X:           s.X,
			Z:           s.Z,
			Orientation: s.Orientation.String(),
			Yaw:         s.Orientation.Yaw(),
		}
	}
	return result
}

// Segments returns the interior walls as wall segments.
func (l Level) Segments() ([]maze.WallSegment, error) {
	segments := make([]maze.WallSegment, len(l.Walls))
	for i, w := range l.Walls {
		o, err := parseOrientation(w.Orientation)
		if err != nil {
			return nil, fmt.Errorf("wall %d: %w", i, err)
		}
		segments[i] = maze.WallSegment{X: w.X, Z: w.Z, Orientation: o}
	}
	return segments, nil
}

func parseOrientation(s string) (maze.Orientation, error) {
	switch s {
	case maze.Vertical.String():
		return maze.Vertical, nil
	case maze.Horizontal.String():
		return maze.Horizontal, nil
	default:
		return 0, fmt.Errorf("unknown orientation %q", s)
	}
}

// WriteYAML encodes l as YAML.
func WriteYAML(w io.Writer, l Level) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("failed to encode level as YAML: %w", err)
	}
	return enc.Close()
}

// WriteJSON encodes l as indented JSON.
func WriteJSON(w io.Writer, l Level) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("failed to encode level as JSON: %w", err)
	}
	return nil
}

// ReadYAML decodes a level written by WriteYAML.
func ReadYAML(r io.Reader) (Level, error) {
	var l Level
	if err := yaml.NewDecoder(r).Decode(&l); err != nil {
		return l, fmt.Errorf("failed to parse YAML level: %w", err)
	}
	return l, nil
}
