// Package maze provides grid maze generation and classification.
package maze

import "fmt"

// TileState is the logical state of a single grid cell.
type TileState uint8

const (
	// Unexplored is a space cell the carver has not reached yet.
	Unexplored TileState = iota
	// Wall is a plain wall cell.
	Wall
	// BrokenWall is a former wall cell opened into a passage.
	BrokenWall
	// VisitedOnce is a space cell the carver has moved forward from.
	VisitedOnce
	// VisitedTwice is a cell the carver has backtracked through.
	VisitedTwice
	// Room is a cell covered by a placed room footprint.
	Room
	// DeadEnd is a space cell first left by backtracking.
	DeadEnd
	// Finish marks the exit tile.
	Finish
	// Start marks the entrance tile.
	Start
	// Unique marks a cell claimed by a unique tile.
	Unique
	// OutOfBounds is returned by bounds-checked lookups and never stored.
	OutOfBounds
	// CornerWall is a wall at an L-shaped bend.
	CornerWall
	// EndWallUp terminates a wall run with its open face pointing up.
	EndWallUp
	// EndWallRight terminates a wall run with its open face pointing right.
	EndWallRight
	// EndWallDown terminates a wall run with its open face pointing down.
	EndWallDown
	// EndWallLeft terminates a wall run with its open face pointing left.
	EndWallLeft
)

var tileNames = [...]string{
	Unexplored:   "unexplored",
	Wall:         "wall",
	BrokenWall:   "broken_wall",
	VisitedOnce:  "visited_once",
	VisitedTwice: "visited_twice",
	Room:         "room",
	DeadEnd:      "dead_end",
	Finish:       "finish",
	Start:        "start",
	Unique:       "unique",
	OutOfBounds:  "out_of_bounds",
	CornerWall:   "corner_wall",
	EndWallUp:    "end_wall_up",
	EndWallRight: "end_wall_right",
	EndWallDown:  "end_wall_down",
	EndWallLeft:  "end_wall_left",
}

// String returns the snake_case name of the state.
func (t TileState) String() string {
	if int(t) < len(tileNames) {
		return tileNames[t]
	}
	return fmt.Sprintf("tile(%d)", uint8(t))
}

// ParseTileState is the inverse of String.
func ParseTileState(name string) (TileState, error) {
	for i, n := range tileNames {
		if n == name {
			return TileState(i), nil
		}
	}
	return OutOfBounds, fmt.Errorf("unknown tile state %q", name)
}

// AllTileStates lists every defined state in declaration order.
func AllTileStates() []TileState {
	states := make([]TileState, len(tileNames))
	for i := range tileNames {
		states[i] = TileState(i)
	}
	return states
}

// IsWall reports whether the state blocks passage.
func (t TileState) IsWall() bool {
	switch t {
	case Wall, CornerWall, EndWallUp, EndWallRight, EndWallDown, EndWallLeft:
		return true
	}
	return false
}

// IsFloor reports whether the state is passable.
func (t TileState) IsFloor() bool {
	switch t {
	case BrokenWall, DeadEnd, Finish, Room, Unexplored, VisitedOnce, VisitedTwice, Start, Unique:
		return true
	}
	return false
}
