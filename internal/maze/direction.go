package maze

// Point is a grid coordinate. Row grows downward, Col grows rightward.
type Point struct {
	Row, Col int
}

// Add returns p moved by d steps in direction dir.
func (p Point) Add(dir Direction, steps int) Point {
	off := dir.Offset()
	return Point{Row: p.Row + off.Row*steps, Col: p.Col + off.Col*steps}
}

// Direction is one of the four grid neighbors.
type Direction uint8

const (
	Left Direction = iota
	Up
	Right
	Down
)

// directionOrder is the fixed test order used by the scanning passes.
var directionOrder = [4]Direction{Left, Up, Right, Down}

// Offset returns the unit step for the direction.
func (d Direction) Offset() Point {
	switch d {
	case Left:
		return Point{Col: -1}
	case Up:
		return Point{Row: -1}
	case Right:
		return Point{Col: 1}
	case Down:
		return Point{Row: 1}
	}
	return Point{}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}
