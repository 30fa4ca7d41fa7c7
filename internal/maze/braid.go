package maze

import "math/rand"

// Braider opens extra walls next to dead ends so the maze gains loops.
// Each Step unit scans one cell.
type Braider struct {
	grid      *Grid
	rng       *rand.Rand
	frequency float64
	scan      gridScan
	opened    int
}

// NewBraider creates a braid pass. Frequency is the chance, per qualifying
// direction tested, that the wall is broken.
func NewBraider(g *Grid, rng *rand.Rand, frequency float64) *Braider {
	return &Braider{
		grid:      g,
		rng:       rng,
		frequency: frequency,
		scan:      newGridScan(g),
	}
}

// Opened returns how many walls the pass has broken so far.
func (b *Braider) Opened() int { return b.opened }

// Cursor returns the scan position.
func (b *Braider) Cursor() Cursor { return b.scan.cur }

// Step scans up to budget cells.
func (b *Braider) Step(budget int) bool {
	return b.scan.run(budget, b.visit)
}

func (b *Braider) visit(p Point) {
	if b.grid.At(p) != DeadEnd {
		return
	}
	for _, dir := range directionOrder {
		wall := p.Add(dir, 1)
		beyond := p.Add(dir, 2)
		if !b.grid.At(wall).IsWall() || !b.grid.At(beyond).IsFloor() {
			continue
		}
		if b.rng.Float64() < b.frequency {
			b.grid.SetAt(wall, BrokenWall)
			b.opened++
			return
		}
	}
}
