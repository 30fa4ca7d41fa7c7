package maze

// wallNeighbors reports which of the four neighbors of p are walls.
func wallNeighbors(g *Grid, p Point) (left, up, right, down bool) {
	return g.At(p.Add(Left, 1)).IsWall(),
		g.At(p.Add(Up, 1)).IsWall(),
		g.At(p.Add(Right, 1)).IsWall(),
		g.At(p.Add(Down, 1)).IsWall()
}

// CornerPass relabels plain walls sitting at an L-shaped bend as CornerWall.
type CornerPass struct {
	grid  *Grid
	scan  gridScan
	found int
}

// NewCornerPass creates a corner classification pass.
func NewCornerPass(g *Grid) *CornerPass {
	return &CornerPass{grid: g, scan: newGridScan(g)}
}

// Found returns how many corners have been relabelled.
func (c *CornerPass) Found() int { return c.found }

// Step scans up to budget cells.
func (c *CornerPass) Step(budget int) bool {
	return c.scan.run(budget, func(p Point) {
		if c.grid.At(p) != Wall {
			return
		}
		left, up, right, down := wallNeighbors(c.grid, p)
		if left != right && up != down {
			c.grid.SetAt(p, CornerWall)
			c.found++
		}
	})
}

// EndPass relabels plain walls with at most one wall neighbor as end walls,
// named for the side facing away from that neighbor.
type EndPass struct {
	grid  *Grid
	scan  gridScan
	found int
}

// NewEndPass creates an end-wall classification pass.
func NewEndPass(g *Grid) *EndPass {
	return &EndPass{grid: g, scan: newGridScan(g)}
}

// Found returns how many end walls have been relabelled.
func (e *EndPass) Found() int { return e.found }

// Step scans up to budget cells.
func (e *EndPass) Step(budget int) bool {
	return e.scan.run(budget, func(p Point) {
		if e.grid.At(p) != Wall {
			return
		}
		left, up, right, down := wallNeighbors(e.grid, p)
		neighbors := 0
		state := Wall
		if up {
			state = EndWallDown
			neighbors++
		}
		if right {
			state = EndWallLeft
			neighbors++
		}
		if down {
			state = EndWallUp
			neighbors++
		}
		if left {
			state = EndWallRight
			neighbors++
		}
		if neighbors <= 1 && state != Wall {
			e.grid.SetAt(p, state)
			e.found++
		}
	})
}
