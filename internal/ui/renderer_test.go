package ui

import (
	"context"
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/mazegen/internal/maze"
)

func TestRenderDrawsMazeAndStatus(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := Wrap(sim)
	require.NoError(t, err)
	defer screen.Close()
	sim.SetSize(40, 20)

	m, err := maze.Generate(context.Background(), maze.Options{Width: 3, Height: 2, Rand: rand.New(rand.NewSource(1))})
	require.NoError(t, err)

	NewRenderer(screen).Render(m, "seed 1")

	at := func(x, y int) rune {
		r, _, _, _ := sim.GetContent(x, y)
		return r
	}

	assert.Equal(t, '+', at(0, 0))
	assert.Equal(t, '-', at(1, 0))
	assert.Equal(t, '|', at(0, 1))
	// Five drawing rows, a blank row, then the status.
	assert.Equal(t, 's', at(0, 6))
	assert.Equal(t, '1', at(5, 6))
}
