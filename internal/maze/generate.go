package maze

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazegen/internal/telemetry"
)

// Options controls a single generation run.
type Options struct {
	Width  int
	Height int

	// CellSize scales wall positions. Zero means DefaultCellSize.
	CellSize float64

	// Rand drives every carve decision. Nil means a time-seeded source.
	Rand RandSource

	// Enclose also emits the outer perimeter as Boundary segments.
	Enclose bool
}

// Maze is the result of one generation run.
type Maze struct {
	Width    int
	Height   int
	CellSize float64

	// Passages are the carved edges in carve order.
	Passages []Edge
	// Walls are the standing interior walls.
	Walls []WallSegment
	// Boundary is the perimeter, only populated when Options.Enclose is set.
	Boundary []WallSegment

	grid *Grid
}

// Generate builds, carves and materializes a maze.
func Generate(ctx context.Context, opts Options) (*Maze, error) {
	tracer := telemetry.Tracer("maze")
	_, span := tracer.Start(ctx, "maze.generate")
	defer span.End()

	startTime := time.Now()

	grid, err := NewGrid(opts.Width, opts.Height)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	cellSize := opts.CellSize
	if cellSize == 0 {
		cellSize = DefaultCellSize
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	passages := Carve(grid, rng)
	grid.ResetVisited()

	m := &Maze{
		Width:    opts.Width,
		Height:   opts.Height,
		CellSize: cellSize,
		Passages: passages,
		Walls:    Materialize(grid, cellSize),
		grid:     grid,
	}
	if opts.Enclose {
		m.Boundary = grid.boundary(cellSize)
	}

	span.SetAttributes(
		attribute.Int("maze.width", m.Width),
		attribute.Int("maze.height", m.Height),
		attribute.Int("maze.passages", len(m.Passages)),
		attribute.Int("maze.walls", len(m.Walls)),
		attribute.Bool("maze.enclosed", opts.Enclose),
		attribute.Int64("maze.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return m, nil
}

// Open reports whether the passage between two adjacent cells is carved.
func (m *Maze) Open(a, b int) bool {
	return !m.grid.HasWall(a, b)
}

// Grid returns the carved grid.
func (m *Maze) Grid() *Grid {
	return m.grid
}

// String draws the maze as ASCII art.
func (m *Maze) String() string {
	var b strings.Builder

	// Top boundary
	b.WriteString("+" + strings.Repeat("---+", m.Width) + "\n")

	for row := 0; row < m.Height; row++ {
		b.WriteString("|")
		for col := 0; col < m.Width; col++ {
			i := m.grid.Index(row, col)
			if col+1 < m.Width && m.Open(i, i+1) {
				b.WriteString("    ")
			} else {
				b.WriteString("   |")
			}
		}
		b.WriteString("\n+")
		for col := 0; col < m.Width; col++ {
			i := m.grid.Index(row, col)
			if row+1 < m.Height && m.Open(i, i+m.Width) {
				b.WriteString("   +")
			} else {
				b.WriteString("---+")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
