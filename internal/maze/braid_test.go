package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func floorNeighbors(g *Grid, p Point) int {
	n := 0
	for _, d := range directionOrder {
		if g.At(p.Add(d, 1)).IsFloor() {
			n++
		}
	}
	return n
}

// leaves counts floor cells with a single floor neighbor.
func leaves(g *Grid) int {
	n := 0
	for row := 0; row < g.Length(); row++ {
		for col := 0; col < g.Width(); col++ {
			p := Point{Row: row, Col: col}
			if g.At(p).IsFloor() && floorNeighbors(g, p) == 1 {
				n++
			}
		}
	}
	return n
}

func TestBraidZeroFrequencyLeavesGridUnchanged(t *testing.T) {
	g := carved(t, 15, 15, 3)
	before := g.Clone()

	b := NewBraider(g, rand.New(rand.NewSource(3)), 0)
	Drain(b, Unlimited)

	assert.True(t, before.Equal(g))
	assert.Zero(t, b.Opened())
}

func TestBraidFullFrequencyOpensEveryDeadEnd(t *testing.T) {
	for _, size := range []int{5, 11, 21} {
		g := carved(t, size, size, 1)
		Drain(NewBraider(g, rand.New(rand.NewSource(1)), 1), Unlimited)

		for row := 0; row < g.Length(); row++ {
			for col := 0; col < g.Width(); col++ {
				p := Point{Row: row, Col: col}
				if g.At(p) != DeadEnd {
					continue
				}
				assert.GreaterOrEqual(t, floorNeighbors(g, p), 2, "dead end %v on %dx%d still has one exit", p, size, size)
			}
		}
		assert.Zero(t, leaves(g), "%dx%d", size, size)
	}
}

func TestBraidMonotonic(t *testing.T) {
	for _, freq := range []float64{0.1, 0.5, 0.9} {
		g := carved(t, 21, 21, 9)
		before := g.Clone()
		deadEnds := g.Count(DeadEnd)
		leafCount := leaves(g)

		b := NewBraider(g, rand.New(rand.NewSource(9)), freq)
		Drain(b, Unlimited)

		for row := 0; row < g.Length(); row++ {
			for col := 0; col < g.Width(); col++ {
				if before.Get(row, col).IsFloor() {
					assert.True(t, g.Get(row, col).IsFloor(), "floor at (%d,%d) became wall", row, col)
				}
			}
		}
		assert.Equal(t, deadEnds, g.Count(DeadEnd))
		assert.LessOrEqual(t, leaves(g), leafCount)
		assert.Equal(t, before.Openings()+b.Opened(), g.Openings())
	}
}

func TestBraidBudgetedMatchesUnlimited(t *testing.T) {
	want := carved(t, 17, 13, 5)
	Drain(NewBraider(want, rand.New(rand.NewSource(99)), 0.5), Unlimited)

	g := carved(t, 17, 13, 5)
	b := NewBraider(g, rand.New(rand.NewSource(99)), 0.5)
	for b.Step(7) {
		assert.Less(t, b.Cursor().Row, g.Length())
	}

	assert.True(t, want.Equal(g))
}
