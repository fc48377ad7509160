package maze

import "fmt"

// RandSource picks a uniform integer in [0, n). *rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
}

// Edge joins two adjacent cells. A is always the lower index.
type Edge struct {
	A, B int
}

func newEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// carveState is the carver's position in its traversal.
type carveState int

const (
	stateAdvancing carveState = iota
	stateBacktracking
	stateDone
)

// Carve turns a full grid into a perfect maze with a randomized depth-first
// traversal starting at cell 0. It returns the carved passages in the order
// they were opened; together they form a spanning tree of the grid.
//
// Every visited flag is left set on return; call ResetVisited before reusing
// the grid for neighbour queries.
func Carve(g *Grid, rng RandSource) []Edge {
	n := g.Len()
	passages := make([]Edge, 0, n-1)
	stack := make([]int, 0, n)

	current := 0
	g.cells[current].Visited = true
	state := stateAdvancing

	// Each step either visits a new cell or pops the stack.
	limit := 2 * n
	for steps := 0; state != stateDone; steps++ {
		if steps > limit {
			panic(fmt.Sprintf("maze: carve exceeded %d steps on %d cells", limit, n))
		}

		candidates := g.UnvisitedNeighbors(current)
		if len(candidates) > 0 {
			stack = append(stack, current)
			next := candidates[rng.Intn(len(candidates))]
			g.Carve(current, next)
			passages = append(passages, newEdge(current, next))

			current = next
			g.cells[current].Visited = true
			state = stateAdvancing
			continue
		}

		if len(stack) == 0 {
			state = stateDone
			continue
		}

		current = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		state = stateBacktracking
	}

	return passages
}
