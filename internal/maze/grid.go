// Package maze provides grid maze generation and wall placement.
package maze

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph/simple"
)

// ErrInvalidArgument is returned when a maze is requested with no cells.
var ErrInvalidArgument = errors.New("invalid argument")

// Cell is one grid position.
type Cell struct {
	// Visited is set once the carver has stood on the cell.
	Visited bool
}

// Grid is a rectangular lattice of cells. Every edge still present in the
// graph is a wall between two adjacent cells.
type Grid struct {
	width  int
	height int
	cells  []Cell
	walls  *simple.UndirectedGraph
}

// NewGrid builds the full grid graph with a wall between every pair of
// cells sharing a side.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: grid dimensions %dx%d must be positive", ErrInvalidArgument, width, height)
	}

	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		walls:  simple.NewUndirectedGraph(),
	}

	for i := range g.cells {
		g.walls.AddNode(simple.Node(i))
	}

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			i := g.Index(row, col)
			if col+1 < width {
				g.walls.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(i + 1)})
			}
			if row+1 < height {
				g.walls.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(i + width)})
			}
		}
	}

	return g, nil
}

// TotalEdges returns the number of adjacent cell pairs in a width x height grid.
func TotalEdges(width, height int) int {
	return width*(height-1) + height*(width-1)
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Index returns the row-major index of a cell.
func (g *Grid) Index(row, col int) int {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		panic(fmt.Sprintf("maze: cell (%d,%d) outside %dx%d grid", row, col, g.width, g.height))
	}
	return row*g.width + col
}

// Position returns the row and column of a cell index.
func (g *Grid) Position(i int) (row, col int) {
	g.mustContain(i)
	return i / g.width, i % g.width
}

// Cell returns the cell at index i.
func (g *Grid) Cell(i int) *Cell {
	g.mustContain(i)
	return &g.cells[i]
}

// HasWall reports whether a wall separates cells a and b.
func (g *Grid) HasWall(a, b int) bool {
	g.mustContain(a)
	g.mustContain(b)
	return g.walls.HasEdgeBetween(int64(a), int64(b))
}

// WallCount returns the number of walls still standing.
func (g *Grid) WallCount() int {
	n := 0
	edges := g.walls.Edges()
	for edges.Next() {
		n++
	}
	return n
}

// Neighbors returns the cells that still share a wall with i, in ascending
// index order.
func (g *Grid) Neighbors(i int) []int {
	g.mustContain(i)
	var result []int
	nodes := g.walls.From(int64(i))
	for nodes.Next() {
		result = append(result, int(nodes.Node().ID()))
	}
	sort.Ints(result)
	return result
}

// UnvisitedNeighbors returns the walled-off neighbours of i that have not
// been visited, in ascending index order.
func (g *Grid) UnvisitedNeighbors(i int) []int {
	var result []int
	for _, n := range g.Neighbors(i) {
		if !g.cells[n].Visited {
			result = append(result, n)
		}
	}
	return result
}

// Carve removes the wall between a and b.
func (g *Grid) Carve(a, b int) {
	if !g.HasWall(a, b) {
		panic(fmt.Sprintf("maze: no wall between %d and %d", a, b))
	}
	g.walls.RemoveEdge(int64(a), int64(b))
}

// ResetVisited clears the visited flag on every cell.
func (g *Grid) ResetVisited() {
	for i := range g.cells {
		g.cells[i].Visited = false
	}
}

// Walls returns every standing wall as an ordered pair (a < b), sorted.
func (g *Grid) Walls() []Edge {
	var result []Edge
	edges := g.walls.Edges()
	for edges.Next() {
		e := edges.Edge()
		result = append(result, newEdge(int(e.From().ID()), int(e.To().ID())))
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].A != result[j].A {
			return result[i].A < result[j].A
		}
		return result[i].B < result[j].B
	})
	return result
}

func (g *Grid) mustContain(i int) {
	if i < 0 || i >= len(g.cells) {
		panic(fmt.Sprintf("maze: cell index %d outside grid of %d cells", i, len(g.cells)))
	}
}
