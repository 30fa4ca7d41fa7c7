package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazegen/internal/catalog"
	"github.com/samdwyer/mazegen/internal/maze"
)

// Renderer handles drawing a maze grid to the screen.
type Renderer struct {
	screen  *Screen
	palette *catalog.Palette
}

// NewRenderer creates a new renderer for the given screen and palette.
func NewRenderer(screen *Screen, palette *catalog.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Status is the information line drawn under the grid.
type Status struct {
	Name   string
	Seed   int64
	Stage  string
	Cursor *maze.Point // Carve cursor, highlighted while carving
	Hint   string
}

// Render draws the grid with the status line below it. Cells beyond the
// terminal are clipped.
func (r *Renderer) Render(grid *maze.Grid, status Status) {
	r.screen.Clear()

	for row := 0; row < grid.Length(); row++ {
		for col := 0; col < grid.Width(); col++ {
			ts := r.palette.Lookup(grid.Get(row, col))
			r.screen.SetContent(col, row, ts.Glyph, ts.Style)
		}
	}

	if status.Cursor != nil {
		cursorStyle := tcell.StyleDefault.
			Foreground(tcell.ColorYellow).
			Bold(true)
		r.screen.SetContent(status.Cursor.Col, status.Cursor.Row, '@', cursorStyle)
	}

	y := grid.Length() + 1
	r.RenderMessage(status.Line(), y)
	if status.Hint != "" {
		r.RenderMessage(status.Hint, y+1)
	}

	r.screen.Show()
}

// Line formats the status for display.
func (s Status) Line() string {
	return fmt.Sprintf("%s  seed %d  stage %s", s.Name, s.Seed, s.Stage)
}

// RenderMessage displays a message at the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, style)
	}
}

// Text renders the grid as newline-separated rows of palette glyphs.
func Text(grid *maze.Grid, palette *catalog.Palette) string {
	var b strings.Builder
	for row := 0; row < grid.Length(); row++ {
		for col := 0; col < grid.Width(); col++ {
			b.WriteRune(palette.Glyph(grid.Get(row, col)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
