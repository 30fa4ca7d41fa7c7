package maze

import "math/rand"

// Carver turns a fresh skeleton grid into a perfect maze with a randomized
// backtracking walk over the odd/odd cells. Each Step unit moves the cursor
// at most once.
type Carver struct {
	grid   *Grid
	rng    *rand.Rand
	cursor Point
	dirs   [4]Direction
	done   bool
	steps  int
}

// NewCarver creates a carver with its cursor at (1,1).
func NewCarver(g *Grid, rng *rand.Rand) *Carver {
	return &Carver{
		grid:   g,
		rng:    rng,
		cursor: Point{Row: 1, Col: 1},
	}
}

// Cursor returns the current carve position.
func (c *Carver) Cursor() Point { return c.cursor }

// Done reports whether carving has finished.
func (c *Carver) Done() bool { return c.done }

// Steps returns how many carve steps have run.
func (c *Carver) Steps() int { return c.steps }

// Step runs up to budget carve steps.
func (c *Carver) Step(budget int) bool {
	for n := 0; !c.done && (budget <= 0 || n < budget); n++ {
		c.advance()
	}
	return !c.done
}

// advance performs one carve step: forward into an unexplored cell if one is
// two steps away, otherwise backtrack one step, otherwise finish.
func (c *Carver) advance() {
	c.steps++
	c.dirs = directionOrder
	c.rng.Shuffle(len(c.dirs), func(i, j int) {
		c.dirs[i], c.dirs[j] = c.dirs[j], c.dirs[i]
	})

	// Forward: break the wall into the first unexplored cell
	for _, dir := range c.dirs {
		dest := c.cursor.Add(dir, 2)
		if c.grid.At(dest) != Unexplored {
			continue
		}
		c.grid.SetAt(c.cursor, VisitedOnce)
		c.grid.SetAt(c.cursor.Add(dir, 1), BrokenWall)
		c.cursor = dest
		return
	}

	// Backtrack along a broken wall, marking this cell finished
	for _, dir := range c.dirs {
		dest := c.cursor.Add(dir, 1)
		if s := c.grid.At(dest); s != VisitedOnce && s != BrokenWall {
			continue
		}
		if c.grid.At(c.cursor) == Unexplored {
			c.grid.SetAt(c.cursor, DeadEnd)
		} else {
			c.grid.SetAt(c.cursor, VisitedTwice)
		}
		c.cursor = dest
		return
	}

	// Back at the start cell with nothing left to explore.
	c.grid.SetAt(c.cursor, DeadEnd)
	c.done = true
}
