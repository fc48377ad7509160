package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazegen/internal/maze"
)

// Renderer handles drawing a maze to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the maze with a status line beneath it. Anything outside the
// terminal is clipped.
func (r *Renderer) Render(m *maze.Maze, status string) {
	r.screen.Clear()

	lines := strings.Split(strings.TrimRight(m.String(), "\n"), "\n")
	for y, line := range lines {
		for x, ch := range line {
			r.screen.SetContent(x, y, ch, r.getRuneStyle(ch))
		}
	}

	_, height := r.screen.Size()
	statusY := len(lines) + 1
	if statusY >= height {
		statusY = height - 1
	}
	r.RenderMessage(status, statusY)

	r.screen.Show()
}

// getRuneStyle returns the style for a character of the ASCII drawing.
func (r *Renderer) getRuneStyle(ch rune) tcell.Style {
	switch ch {
	case '+':
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case '-', '|':
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	default:
		return tcell.StyleDefault
	}
}

// RenderMessage displays a message on the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	for i, ch := range msg {
		r.screen.SetContent(i, y, ch, style)
	}
}
