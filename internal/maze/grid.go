package maze

const (
	// MinDimension is the smallest legal width or length.
	MinDimension = 3
)

// Grid is the flat tile array of a maze, indexed row*width + column.
type Grid struct {
	width  int
	length int
	tiles  []TileState
}

// NewGrid creates a grid initialized to the wall skeleton.
func NewGrid(width, length int) *Grid {
	g := &Grid{}
	g.Initialize(width, length)
	return g
}

// Initialize discards any content and lays out the skeleton: every cell on an
// even row or even column is a Wall, the rest are Unexplored.
func (g *Grid) Initialize(width, length int) {
	g.width = width
	g.length = length
	g.tiles = make([]TileState, width*length)
	for row := 0; row < length; row++ {
		for col := 0; col < width; col++ {
			if row%2 == 0 || col%2 == 0 {
				g.tiles[row*width+col] = Wall
			} else {
				g.tiles[row*width+col] = Unexplored
			}
		}
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Length returns the number of rows.
func (g *Grid) Length() int { return g.length }

// InBounds reports whether the cell lies on the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.length && col >= 0 && col < g.width
}

// Get returns the state at the cell, or OutOfBounds off the grid.
func (g *Grid) Get(row, col int) TileState {
	if !g.InBounds(row, col) {
		return OutOfBounds
	}
	return g.tiles[row*g.width+col]
}

// At is Get for a Point.
func (g *Grid) At(p Point) TileState {
	return g.Get(p.Row, p.Col)
}

// Set stores a state. The cell must be in bounds.
func (g *Grid) Set(row, col int, state TileState) {
	g.tiles[row*g.width+col] = state
}

// SetAt is Set for a Point.
func (g *Grid) SetAt(p Point, state TileState) {
	g.Set(p.Row, p.Col, state)
}

// Count returns how many cells hold the given state.
func (g *Grid) Count(state TileState) int {
	n := 0
	for _, t := range g.tiles {
		if t == state {
			n++
		}
	}
	return n
}

// Openings counts carved edges: cells with exactly one even coordinate that
// are no longer walls.
func (g *Grid) Openings() int {
	n := 0
	for row := 0; row < g.length; row++ {
		for col := 0; col < g.width; col++ {
			if (row%2 == 0) != (col%2 == 0) && g.tiles[row*g.width+col].IsFloor() {
				n++
			}
		}
	}
	return n
}

// OnPerimeter reports whether the cell lies on the outer boundary.
func (g *Grid) OnPerimeter(p Point) bool {
	return p.Row == 0 || p.Col == 0 || p.Row == g.length-1 || p.Col == g.width-1
}
