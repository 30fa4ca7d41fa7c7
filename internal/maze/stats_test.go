package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeSkeleton(t *testing.T) {
	s := Analyze(NewGrid(7, 7))

	assert.Equal(t, 9, s.Floors)
	assert.Equal(t, 40, s.Walls)
	assert.Equal(t, 9, s.Components, "uncarved cells are isolated")
	assert.Zero(t, s.Cycles)
	assert.Zero(t, s.Openings)
	assert.False(t, s.Perfect())
}

func TestAnalyzeCountsLoops(t *testing.T) {
	// 5x5 with all four interior cells joined in a ring.
	g := NewGrid(5, 5)
	for _, p := range []Point{{1, 2}, {2, 1}, {2, 3}, {3, 2}} {
		g.SetAt(p, BrokenWall)
	}

	s := Analyze(g)

	assert.Equal(t, 1, s.Components)
	assert.Equal(t, 1, s.Cycles)
	assert.Equal(t, 4, s.Openings)
}

func TestAnalyzePerimeterOpenings(t *testing.T) {
	g := carved(t, 9, 9, 1)
	g.Set(1, 0, BrokenWall)
	g.Set(0, 3, BrokenWall)

	s := Analyze(g)

	assert.Equal(t, 2, s.PerimeterOpenings)
	assert.Equal(t, 1, s.Components)
}
