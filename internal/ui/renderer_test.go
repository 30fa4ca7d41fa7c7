package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazegen/internal/catalog"
	"github.com/samdwyer/mazegen/internal/maze"
)

func simScreen(t *testing.T) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := NewScreenFrom(sim)
	if err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	sim.SetSize(80, 40)
	t.Cleanup(screen.Close)
	return screen, sim
}

func loadPalette(t *testing.T) *catalog.Palette {
	t.Helper()
	palette, err := catalog.LoadPalette()
	if err != nil {
		t.Fatalf("Failed to load palette: %v", err)
	}
	return palette
}

// glyphAt returns the rune drawn at a screen cell.
func glyphAt(sim tcell.SimulationScreen, x, y int) rune {
	ch, _, _, _ := sim.GetContent(x, y)
	return ch
}

func TestRenderDrawsEveryTile(t *testing.T) {
	screen, sim := simScreen(t)
	palette := loadPalette(t)
	r := NewRenderer(screen, palette)

	grid := maze.NewGrid(9, 7)
	states := maze.AllTileStates()
	for i, s := range states {
		if s == maze.OutOfBounds {
			continue
		}
		grid.Set(1+i/8, i%8, s)
	}

	r.Render(grid, Status{Name: "test", Seed: 42, Stage: "done"})

	for row := 0; row < grid.Length(); row++ {
		for col := 0; col < grid.Width(); col++ {
			got := glyphAt(sim, col, row)
			want := palette.Glyph(grid.Get(row, col))
			if got != want {
				t.Errorf("Cell (%d,%d): expected %q, got %q", row, col, want, got)
			}
		}
	}

	var line strings.Builder
	for x := 0; x < 30; x++ {
		line.WriteRune(glyphAt(sim, x, grid.Length()+1))
	}
	if !strings.HasPrefix(line.String(), "test  seed 42  stage done") {
		t.Errorf("Unexpected status line %q", line.String())
	}
}

func TestRenderHighlightsCursor(t *testing.T) {
	screen, sim := simScreen(t)
	r := NewRenderer(screen, loadPalette(t))

	r.Render(maze.NewGrid(5, 5), Status{Cursor: &maze.Point{Row: 3, Col: 1}})

	if ch := glyphAt(sim, 1, 3); ch != '@' {
		t.Errorf("Expected cursor '@' at (3,1), got %q", ch)
	}
}

func TestText(t *testing.T) {
	palette := loadPalette(t)
	grid := maze.NewGrid(5, 3)

	text := Text(grid, palette)
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")

	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if n := len([]rune(line)); n != 5 {
			t.Errorf("Line %d: expected 5 glyphs, got %d", i, n)
		}
	}
	wall := palette.Glyph(maze.Wall)
	if []rune(lines[0])[0] != wall {
		t.Errorf("Expected wall glyph %q in the corner, got %q", wall, []rune(lines[0])[0])
	}
}
