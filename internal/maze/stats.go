package maze

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// Stats summarizes the shape of a generated grid.
type Stats struct {
	Floors            int `json:"floors"`
	Walls             int `json:"walls"`
	DeadEnds          int `json:"deadEnds"`
	Openings          int `json:"openings"`
	PerimeterOpenings int `json:"perimeterOpenings"`
	// Components is the number of 4-connected floor regions.
	Components int `json:"components"`
	// Cycles is the number of independent loops in the floor graph.
	Cycles int `json:"cycles"`
}

// Perfect reports whether the floor forms a single tree.
func (s Stats) Perfect() bool {
	return s.Components == 1 && s.Cycles == 0
}

// Analyze walks the grid once to count tiles and then floods the floor
// graph to find connected regions and loops.
func Analyze(g *Grid) Stats {
	var s Stats
	s.Openings = g.Openings()

	edges := 0
	for row := 0; row < g.Length(); row++ {
		for col := 0; col < g.Width(); col++ {
			p := Point{Row: row, Col: col}
			state := g.At(p)
			switch {
			case state.IsWall():
				s.Walls++
				continue
			case !state.IsFloor():
				continue
			}
			s.Floors++
			if state == DeadEnd {
				s.DeadEnds++
			}
			if g.OnPerimeter(p) {
				s.PerimeterOpenings++
			}
			// Count each edge once, from its left or upper end.
			if g.At(p.Add(Right, 1)).IsFloor() {
				edges++
			}
			if g.At(p.Add(Down, 1)).IsFloor() {
				edges++
			}
		}
	}

	visited := mapset.New[Point]()
	for row := 0; row < g.Length(); row++ {
		for col := 0; col < g.Width(); col++ {
			p := Point{Row: row, Col: col}
			if !g.At(p).IsFloor() || visited.Has(p) {
				continue
			}
			s.Components++
			flood(g, p, visited)
		}
	}

	s.Cycles = edges - s.Floors + s.Components
	return s
}

func flood(g *Grid, from Point, visited mapset.Set[Point]) {
	q := queue.New[Point]()
	visited.Put(from)
	q.Enqueue(from)
	for !q.Empty() {
		p := q.Dequeue()
		for _, dir := range directionOrder {
			n := p.Add(dir, 1)
			if !g.At(n).IsFloor() || visited.Has(n) {
				continue
			}
			visited.Put(n)
			q.Enqueue(n)
		}
	}
}
