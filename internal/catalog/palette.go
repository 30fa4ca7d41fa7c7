package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazegen/internal/maze"
)

// TileStyle is how one tile state is drawn in the terminal.
type TileStyle struct {
	Glyph rune
	Style tcell.Style
}

// tileEntry is the JSON form of a palette entry.
type tileEntry struct {
	State string `json:"state"`
	Glyph string `json:"glyph"`
	Fg    string `json:"fg"`
	Bg    string `json:"bg,omitempty"`
	Bold  bool   `json:"bold,omitempty"`
}

// PaletteFile represents the structure of palette.json.
type PaletteFile struct {
	Tiles []tileEntry `json:"tiles"`
}

// Palette maps every tile state to a glyph and style. States without an
// entry fall back to '?'.
type Palette struct {
	styles map[maze.TileState]TileStyle
}

// Fallback is drawn for states the palette does not list.
var Fallback = TileStyle{Glyph: '?', Style: tcell.StyleDefault.Foreground(tcell.ColorRed)}

// NewPalette builds a palette from decoded entries.
func NewPalette(file PaletteFile) (*Palette, error) {
	p := &Palette{styles: make(map[maze.TileState]TileStyle, len(file.Tiles))}
	for _, e := range file.Tiles {
		state, err := maze.ParseTileState(e.State)
		if err != nil {
			return nil, fmt.Errorf("palette: %w", err)
		}
		fg, err := ParseHexColor(e.Fg)
		if err != nil {
			return nil, fmt.Errorf("palette %s foreground: %w", e.State, err)
		}
		style := tcell.StyleDefault.Foreground(fg).Bold(e.Bold)
		if e.Bg != "" {
			bg, err := ParseHexColor(e.Bg)
			if err != nil {
				return nil, fmt.Errorf("palette %s background: %w", e.State, err)
			}
			style = style.Background(bg)
		}
		glyph := '?'
		if r := []rune(e.Glyph); len(r) > 0 {
			glyph = r[0]
		}
		p.styles[state] = TileStyle{Glyph: glyph, Style: style}
	}
	return p, nil
}

// LoadPalette loads the embedded palette.json.
func LoadPalette() (*Palette, error) {
	file, err := Load[PaletteFile]("palette.json")
	if err != nil {
		return nil, err
	}
	return NewPalette(file)
}

// Lookup returns the style for a state.
func (p *Palette) Lookup(state maze.TileState) TileStyle {
	if s, ok := p.styles[state]; ok {
		return s
	}
	return Fallback
}

// Glyph returns the glyph for a state.
func (p *Palette) Glyph(state maze.TileState) rune {
	return p.Lookup(state).Glyph
}

// Covers reports whether every storable tile state has an entry.
func (p *Palette) Covers() bool {
	for _, s := range maze.AllTileStates() {
		if s == maze.OutOfBounds {
			continue
		}
		if _, ok := p.styles[s]; !ok {
			return false
		}
	}
	return true
}

// ParseHexColor converts "#RRGGBB" or "RRGGBB" to a tcell colour.
func ParseHexColor(hex string) (tcell.Color, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: want 6 digits", hex)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return tcell.NewHexColor(int32(v)), nil
}
