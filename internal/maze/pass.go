package maze

// Unlimited is the work budget that runs a pass to completion in one call.
const Unlimited = 0

// Pass is a unit of generation work that can be advanced in bounded slices.
// Step processes at most budget units (budget <= 0 means no limit) and
// reports whether more work remains.
type Pass interface {
	Step(budget int) bool
}

// Drain steps p until it finishes and returns how many slices it took.
func Drain(p Pass, budget int) int {
	slices := 1
	for p.Step(budget) {
		slices++
	}
	return slices
}

// PassFunc adapts a one-shot function to the Pass interface.
type PassFunc func()

// Step runs the function and reports completion.
func (f PassFunc) Step(int) bool {
	f()
	return false
}

// Cursor is the resumable scan position of a pass.
type Cursor struct {
	Index int // Sub-index for passes that scan once per item
	Row   int
	Col   int
}

// gridScan walks every cell row-major, resuming from its cursor.
type gridScan struct {
	cur    Cursor
	width  int
	length int
}

func newGridScan(g *Grid) gridScan {
	return gridScan{width: g.Width(), length: g.Length()}
}

// done reports whether every cell has been visited.
func (s *gridScan) done() bool {
	return s.cur.Row >= s.length
}

// run visits up to budget cells and reports whether cells remain.
func (s *gridScan) run(budget int, visit func(p Point)) bool {
	for n := 0; budget <= 0 || n < budget; n++ {
		if s.done() {
			return false
		}
		visit(Point{Row: s.cur.Row, Col: s.cur.Col})
		s.cur.Col++
		if s.cur.Col >= s.width {
			s.cur.Col = 0
			s.cur.Row++
		}
	}
	return !s.done()
}

// rewind restarts the scan at the top-left cell for the next item.
func (s *gridScan) rewind() {
	s.cur.Row = 0
	s.cur.Col = 0
	s.cur.Index++
}
