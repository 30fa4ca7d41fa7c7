package maze

import "math/rand"

// DetailDef is a decoration that may be scattered over walls or floors.
type DetailDef struct {
	Name      string  `json:"name"`
	Frequency float64 `json:"frequency"` // Chance per eligible cell, 0..1
}

// Detail is one scattered decoration. Wall details record the face of the
// wall that looks onto open floor; floor details have no face.
type Detail struct {
	Name   string
	At     Point
	Face   Direction
	OnWall bool
}

// DetailPass scatters each definition over the grid in turn. Each Step unit
// scans one cell for one definition; Cursor.Index is the definition index.
type DetailPass struct {
	grid    *Grid
	rng     *rand.Rand
	defs    []DetailDef
	onWall  bool
	scan    gridScan
	details []Detail
}

// NewWallDetailPass scatters definitions over plain walls that face floor.
func NewWallDetailPass(g *Grid, rng *rand.Rand, defs []DetailDef) *DetailPass {
	return &DetailPass{grid: g, rng: rng, defs: defs, onWall: true, scan: newGridScan(g)}
}

// NewFloorDetailPass scatters definitions over open floor, skipping start,
// finish, room and unique cells.
func NewFloorDetailPass(g *Grid, rng *rand.Rand, defs []DetailDef) *DetailPass {
	return &DetailPass{grid: g, rng: rng, defs: defs, scan: newGridScan(g)}
}

// Details returns the decorations recorded so far.
func (d *DetailPass) Details() []Detail { return d.details }

// Cursor returns the scan position.
func (d *DetailPass) Cursor() Cursor { return d.scan.cur }

// Step scans up to budget cells, moving to the next definition when a scan
// completes.
func (d *DetailPass) Step(budget int) bool {
	remaining := budget
	for d.scan.cur.Index < len(d.defs) {
		def := d.defs[d.scan.cur.Index]
		before := d.scan.cur
		more := d.scan.run(remaining, func(p Point) { d.visit(def, p) })
		if more {
			return true
		}
		d.scan.rewind()
		if budget > 0 {
			remaining -= scanned(before, d.scan.width, d.scan.length)
			if remaining <= 0 {
				return d.scan.cur.Index < len(d.defs)
			}
		}
	}
	return false
}

// scanned is the number of cells from cursor c to the end of a grid scan.
func scanned(c Cursor, width, length int) int {
	return (length-c.Row)*width - c.Col
}

func (d *DetailPass) visit(def DetailDef, p Point) {
	state := d.grid.At(p)
	if d.onWall {
		if state != Wall {
			return
		}
		faces := d.openFaces(p)
		if len(faces) == 0 {
			return
		}
		if d.rng.Float64() >= def.Frequency {
			return
		}
		for _, face := range faces {
			d.details = append(d.details, Detail{Name: def.Name, At: p, Face: face, OnWall: true})
		}
		return
	}

	if !state.IsFloor() {
		return
	}
	switch state {
	case Start, Finish, Room, Unique:
		return
	}
	if d.rng.Float64() < def.Frequency {
		d.details = append(d.details, Detail{Name: def.Name, At: p})
	}
}

func (d *DetailPass) openFaces(p Point) []Direction {
	var faces []Direction
	for _, dir := range directionOrder {
		if d.grid.At(p.Add(dir, 1)).IsFloor() {
			faces = append(faces, dir)
		}
	}
	return faces
}
