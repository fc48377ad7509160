// Package viewer provides an interactive terminal preview of generated mazes.
package viewer

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazegen/internal/maze"
	"github.com/samdwyer/mazegen/internal/telemetry"
	"github.com/samdwyer/mazegen/internal/ui"
)

// Viewer holds the preview state.
type Viewer struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	opts     maze.Options
	seed     int64
	maze     *maze.Maze
	running  bool
}

// New creates a viewer on the given screen. Each regeneration uses the next
// seed so any layout seen can be reproduced from the status line.
func New(screen *ui.Screen, opts maze.Options, seed int64) *Viewer {
	return &Viewer{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		opts:     opts,
		seed:     seed,
		running:  true,
	}
}

// Run executes the preview loop until the user quits.
func (v *Viewer) Run(ctx context.Context) error {
	if err := v.regenerate(ctx); err != nil {
		return err
	}

	for v.running {
		v.renderer.Render(v.maze, v.status())
		if err := v.handleEvent(ctx, v.screen.PollEvent()); err != nil {
			return err
		}
	}
	return nil
}

// Maze returns the maze currently shown.
func (v *Viewer) Maze() *maze.Maze {
	return v.maze
}

// Seed returns the seed of the maze currently shown.
func (v *Viewer) Seed() int64 {
	return v.seed
}

func (v *Viewer) regenerate(ctx context.Context) error {
	ctx, span := telemetry.Tracer("viewer").Start(ctx, "viewer.regenerate")
	defer span.End()

	opts := v.opts
	opts.Rand = rand.New(rand.NewSource(v.seed))

	m, err := maze.Generate(ctx, opts)
	if err != nil {
		return err
	}
	v.maze = m

	span.SetAttributes(attribute.Int64("maze.seed", v.seed))
	return nil
}

// handleEvent processes a single input event.
func (v *Viewer) handleEvent(ctx context.Context, ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		v.screen.Sync()
	case nil:
		// Screen finalized.
		v.running = false
	}
	return nil
}

// handleKeyEvent processes keyboard input.
func (v *Viewer) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) error {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.running = false
	case tcell.KeyRight:
		v.seed++
		return v.regenerate(ctx)
	case tcell.KeyLeft:
		v.seed--
		return v.regenerate(ctx)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			v.running = false
		case 'r', 'n':
			v.seed++
			return v.regenerate(ctx)
		case 'e':
			v.opts.Enclose = !v.opts.Enclose
			return v.regenerate(ctx)
		}
	}
	return nil
}

func (v *Viewer) status() string {
	a := v.maze.Analyze()
	return fmt.Sprintf("seed %d  %dx%d  walls %d  dead ends %d  longest path %d  [r]egenerate [e]nclose [q]uit",
		v.seed, v.maze.Width, v.maze.Height, len(v.maze.Walls)+len(v.maze.Boundary), a.DeadEnds, a.Diameter)
}
