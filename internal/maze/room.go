package maze

// Rect is a rectangular footprint on the grid.
type Rect struct {
	X, Y          int // Top-left column and row
	Width, Height int // Columns and rows covered
}

// Center returns the center cell of the footprint.
func (r Rect) Center() Point {
	return Point{Row: r.Y + r.Height/2, Col: r.X + r.Width/2}
}

// Intersects returns true if this footprint overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// RoomDef describes a room that can be stamped onto the grid.
type RoomDef struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Width  int     `json:"width"`  // Columns covered
	Length int     `json:"length"` // Rows covered
	Height float64 `json:"height"` // Vertical offset for the renderer, unused in placement

	FixedPosition bool `json:"fixedPosition"`
	X             int  `json:"x"` // Left column when FixedPosition is set
	Z             int  `json:"z"` // Top row when FixedPosition is set
}

// PlacedRoom is a room definition stamped at a footprint.
type PlacedRoom struct {
	Def  RoomDef
	Rect Rect
}
