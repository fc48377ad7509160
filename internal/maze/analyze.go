package maze

import (
	"github.com/montanaflynn/stats"
)

// Analysis summarizes the shape of a carved maze.
type Analysis struct {
	DeadEnds  int // cells with exactly one passage
	Junctions int // cells with three or more passages

	// Diameter is the longest path, in steps, between any two cells.
	Diameter int

	MeanDegree       float64
	MeanDeadEndDepth float64 // average distance from the start cell to a dead end
}

// Analyze walks the passage tree of m.
func (m *Maze) Analyze() Analysis {
	n := m.Width * m.Height
	adj := make([][]int, n)
	for _, p := range m.Passages {
		adj[p.A] = append(adj[p.A], p.B)
		adj[p.B] = append(adj[p.B], p.A)
	}

	var a Analysis
	degrees := make(stats.Float64Data, n)
	for i, nbrs := range adj {
		degrees[i] = float64(len(nbrs))
		switch {
		case len(nbrs) == 1:
			a.DeadEnds++
		case len(nbrs) >= 3:
			a.Junctions++
		}
	}
	a.MeanDegree, _ = stats.Mean(degrees)

	depth := distances(adj, 0)
	var deadEndDepths stats.Float64Data
	for i, nbrs := range adj {
		if len(nbrs) == 1 {
			deadEndDepths = append(deadEndDepths, float64(depth[i]))
		}
	}
	if len(deadEndDepths) > 0 {
		a.MeanDeadEndDepth, _ = stats.Mean(deadEndDepths)
	}

	// In a tree the farthest cell from any cell is one end of a diameter.
	fromFar := distances(adj, farthest(depth))
	a.Diameter = fromFar[farthest(fromFar)]

	return a
}

// distances returns the breadth-first step count from start to every cell.
func distances(adj [][]int, start int) []int {
	dist := make([]int, len(adj))
	for i := range dist {
		dist[i] = -1
	}
	dist[start] = 0
	queue := []int{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range adj[cur] {
			if dist[next] < 0 {
				dist[next] = dist[cur] + 1
				queue = append(queue, next)
			}
		}
	}
	return dist
}

func farthest(dist []int) int {
	best := 0
	for i, d := range dist {
		if d > dist[best] {
			best = i
		}
	}
	return best
}
