package maze

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"
)

// PruneMode selects how perimeter walls are chosen for removal.
type PruneMode uint8

const (
	// PruneRandom opens cells on uniformly chosen edges.
	PruneRandom PruneMode = iota
	// PruneOpposite opens cells in pairs on opposite edges.
	PruneOpposite
	// PruneSymmetric opens pairs that mirror each other through the grid center.
	PruneSymmetric
	// PruneClassic opens the two fixed cells (1,0) and (length-2,width-1).
	PruneClassic
	// PruneElite is PruneRandom with no straight interior run between two
	// openings on the same edge.
	PruneElite
)

var pruneModeNames = [...]string{
	PruneRandom:    "random",
	PruneOpposite:  "opposite",
	PruneSymmetric: "symmetric",
	PruneClassic:   "classic",
	PruneElite:     "elite",
}

// String returns the mode name.
func (m PruneMode) String() string {
	if int(m) < len(pruneModeNames) {
		return pruneModeNames[m]
	}
	return "unknown"
}

// ParsePruneMode converts a mode name, case-insensitively.
func ParsePruneMode(name string) (PruneMode, error) {
	for i, n := range pruneModeNames {
		if strings.EqualFold(n, name) {
			return PruneMode(i), nil
		}
	}
	return PruneRandom, fmt.Errorf("unknown prune mode %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (m PruneMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *PruneMode) UnmarshalText(text []byte) error {
	parsed, err := ParsePruneMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// edge identifies one side of the perimeter.
type edge uint8

const (
	edgeLeft edge = iota
	edgeTop
	edgeRight
	edgeBottom
)

// edgeList holds the remaining candidate indices along one edge. Indices run
// along the edge: rows for left/right, columns for top/bottom.
type edgeList struct {
	side       edge
	candidates []int
	opened     []int
}

func (e *edgeList) empty() bool { return len(e.candidates) == 0 }

func (e *edgeList) pop() (int, bool) {
	if e.empty() {
		return 0, false
	}
	last := len(e.candidates) - 1
	i := e.candidates[last]
	e.candidates = e.candidates[:last]
	return i, true
}

func (e *edgeList) has(i int) bool {
	return slices.Contains(e.candidates, i)
}

// touches reports whether i is an opened index or sits next to one.
func (e *edgeList) touches(i int) bool {
	for _, o := range e.opened {
		if i >= o-1 && i <= o+1 {
			return true
		}
	}
	return false
}

// discard drops i and its two neighbors so openings never touch.
func (e *edgeList) discard(i int) {
	e.candidates = slices.DeleteFunc(e.candidates, func(c int) bool {
		return c >= i-1 && c <= i+1
	})
}

type pruner struct {
	grid   *Grid
	rng    *rand.Rand
	edges  [4]*edgeList
	opened []Point
}

// Prune removes up to n perimeter walls using the given strategy and returns
// the cells it opened. Grid corners are never opened. Classic ignores n.
func Prune(g *Grid, rng *rand.Rand, n int, mode PruneMode) []Point {
	p := &pruner{grid: g, rng: rng}
	if mode == PruneClassic {
		p.classic()
		return p.opened
	}
	if n <= 0 {
		return nil
	}
	// Each edge draws from its own shuffled list of non-corner indices
	for _, side := range []edge{edgeLeft, edgeTop, edgeRight, edgeBottom} {
		span := p.span(side)
		list := &edgeList{side: side}
		for i := 1; i < span-1; i++ {
			list.candidates = append(list.candidates, i)
		}
		rng.Shuffle(len(list.candidates), func(a, b int) {
			list.candidates[a], list.candidates[b] = list.candidates[b], list.candidates[a]
		})
		p.edges[side] = list
	}

	switch mode {
	case PruneOpposite:
		p.paired(n, false)
	case PruneSymmetric:
		p.paired(n, true)
	case PruneElite:
		p.random(n, true)
	default:
		p.random(n, false)
	}
	return p.opened
}

// span is the number of cells along an edge, corners included.
func (p *pruner) span(side edge) int {
	if side == edgeLeft || side == edgeRight {
		return p.grid.Length()
	}
	return p.grid.Width()
}

func (p *pruner) cell(side edge, i int) Point {
	switch side {
	case edgeLeft:
		return Point{Row: i, Col: 0}
	case edgeRight:
		return Point{Row: i, Col: p.grid.Width() - 1}
	case edgeTop:
		return Point{Row: 0, Col: i}
	default:
		return Point{Row: p.grid.Length() - 1, Col: i}
	}
}

// interior is the cell just inside the perimeter from cell(side, i).
func (p *pruner) interior(side edge, i int) Point {
	switch side {
	case edgeLeft:
		return Point{Row: i, Col: 1}
	case edgeRight:
		return Point{Row: i, Col: p.grid.Width() - 2}
	case edgeTop:
		return Point{Row: 1, Col: i}
	default:
		return Point{Row: p.grid.Length() - 2, Col: i}
	}
}

func (p *pruner) mirror(side edge, i int) int {
	return p.span(side) - 1 - i
}

func opposite(side edge) edge {
	return (side + 2) % 4
}

// nudge shifts i one step toward the middle of its edge when the interior
// cell behind it is a wall. The shift is refused when it would land beside
// an earlier opening.
func (p *pruner) nudge(e *edgeList, i int) int {
	if !p.grid.At(p.interior(e.side, i)).IsWall() {
		return i
	}
	span := p.span(e.side)
	next := i - 1
	if i < span/2 {
		next = i + 1
	}
	if next < 1 || next > span-2 || e.touches(next) {
		return i
	}
	return next
}

// open breaks the perimeter cell and, when breakInterior is set, a wall
// directly behind it. It reports false if the cell was already open.
func (p *pruner) open(side edge, i int, breakInterior bool) bool {
	cell := p.cell(side, i)
	if !p.grid.At(cell).IsWall() {
		return false
	}
	p.grid.SetAt(cell, BrokenWall)
	if breakInterior {
		if in := p.interior(side, i); p.grid.At(in).IsWall() {
			p.grid.SetAt(in, BrokenWall)
		}
	}
	p.edges[side].opened = append(p.edges[side].opened, i)
	p.opened = append(p.opened, cell)
	return true
}

func (p *pruner) exhausted() bool {
	for _, e := range p.edges {
		if !e.empty() {
			return false
		}
	}
	return true
}

func (p *pruner) random(n int, elite bool) {
	for len(p.opened) < n && !p.exhausted() {
		e := p.edges[p.rng.Intn(4)]
		i, ok := e.pop()
		if !ok {
			continue
		}
		t := p.nudge(e, i)
		e.discard(i)
		e.discard(t)
		if elite && !p.screened(e, t) {
			continue
		}
		p.open(e.side, t, false)
	}
}

// screened reports whether every earlier opening on the edge has a wall
// between its interior cell and the interior cell of t.
func (p *pruner) screened(e *edgeList, t int) bool {
	for _, prev := range e.opened {
		if !p.hasWallBetween(e.side, prev, t) {
			return false
		}
	}
	return true
}

// hasWallBetween scans the interior line of an edge from a to b inclusive.
func (p *pruner) hasWallBetween(side edge, a, b int) bool {
	lo, hi := min(a, b), max(a, b)
	for i := lo; i <= hi; i++ {
		if p.grid.At(p.interior(side, i)).IsWall() {
			return true
		}
	}
	return false
}

// axis returns a pair of opposite edges that both still have candidates,
// preferring a randomly chosen axis.
func (p *pruner) axis() (*edgeList, *edgeList, bool) {
	first := edgeLeft
	if p.rng.Intn(2) == 1 {
		first = edgeTop
	}
	for _, side := range []edge{first, (first + 1) % 2} {
		a, b := p.edges[side], p.edges[opposite(side)]
		if !a.empty() && !b.empty() {
			return a, b, true
		}
	}
	return nil, nil, false
}

func (p *pruner) paired(n int, symmetric bool) {
	remaining := n
	for remaining > 0 {
		if symmetric && remaining < 2 {
			return
		}
		// Pick an axis whose edges both still have room
		a, b, ok := p.axis()
		if !ok {
			return
		}

		// Open one cell on the first edge of the pair.
		i, _ := a.pop()
		t := p.nudge(a, i)
		a.discard(i)
		a.discard(t)

		// Symmetric mode only opens when the mirrored cell is still free.
		if symmetric {
			m := p.mirror(a.side, t)
			if !b.has(m) {
				continue
			}
			b.discard(m)
			if p.open(a.side, t, true) {
				remaining--
			}
			if p.open(b.side, m, true) {
				remaining--
			}
			continue
		}

		if p.open(a.side, t, true) {
			remaining--
		}
		if remaining == 0 {
			return
		}
		// Then one on the opposite edge.
		j, _ := b.pop()
		u := p.nudge(b, j)
		b.discard(j)
		b.discard(u)
		if p.open(b.side, u, true) {
			remaining--
		}
	}
}

func (p *pruner) classic() {
	w, l := p.grid.Width(), p.grid.Length()
	for _, cell := range []Point{{Row: 1, Col: 0}, {Row: l - 2, Col: w - 1}} {
		if p.grid.At(cell).IsWall() {
			p.grid.SetAt(cell, BrokenWall)
			p.opened = append(p.opened, cell)
		}
	}
}
