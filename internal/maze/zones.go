package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// ErrNoCandidate is returned when no cell satisfies a zone placement.
var ErrNoCandidate = errors.New("no free floor cell in zone")

// Zone restricts where a special tile may be placed.
type Zone uint8

const (
	// ZoneRandom accepts any cell.
	ZoneRandom Zone = iota
	// ZoneCenter requires both coordinates strictly inside the middle third.
	ZoneCenter
	// ZoneOutside requires both coordinates strictly outside the middle third.
	ZoneOutside
)

// String returns the zone name.
func (z Zone) String() string {
	switch z {
	case ZoneRandom:
		return "random"
	case ZoneCenter:
		return "center"
	case ZoneOutside:
		return "outside"
	default:
		return "unknown"
	}
}

// ParseZone converts a zone name, case-insensitively.
func ParseZone(name string) (Zone, error) {
	for _, z := range []Zone{ZoneRandom, ZoneCenter, ZoneOutside} {
		if strings.EqualFold(z.String(), name) {
			return z, nil
		}
	}
	return ZoneRandom, fmt.Errorf("unknown zone %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (z Zone) MarshalText() ([]byte, error) {
	return []byte(z.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (z *Zone) UnmarshalText(text []byte) error {
	parsed, err := ParseZone(string(text))
	if err != nil {
		return err
	}
	*z = parsed
	return nil
}

// InZone reports whether p satisfies the zone on a width x length grid.
func InZone(zone Zone, p Point, width, length int) bool {
	switch zone {
	case ZoneCenter:
		return inMiddleThird(p.Col, width) && inMiddleThird(p.Row, length)
	case ZoneOutside:
		return inOuterBand(p.Col, width) && inOuterBand(p.Row, length)
	default:
		return true
	}
}

func inMiddleThird(c, size int) bool {
	third := size / 3
	return c > third && c < 2*third
}

func inOuterBand(c, size int) bool {
	third := size / 3
	return c < third || c > 2*third
}

// UniqueTile is a named special tile placed once per generation.
type UniqueTile struct {
	Name     string   `json:"name"`
	Zone     Zone     `json:"zone"`
	Variants []string `json:"variants"` // Interchangeable renderer identifiers
}

// claimable are the carved floor states a zone placement may take over.
var claimable = mapset.Of(BrokenWall, VisitedOnce, VisitedTwice, DeadEnd, Unexplored)

// ZonePlacement claims the first free floor cell in a zone, scanning a
// shuffled list of every grid coordinate. Each Step unit tests one coordinate.
type ZonePlacement struct {
	grid       *Grid
	zone       Zone
	claim      TileState
	candidates []Point
	next       int
	found      *Point
}

// NewZonePlacement shuffles the candidate list once using rng.
func NewZonePlacement(g *Grid, rng *rand.Rand, zone Zone, claim TileState) *ZonePlacement {
	candidates := make([]Point, 0, g.Width()*g.Length())
	for row := 0; row < g.Length(); row++ {
		for col := 0; col < g.Width(); col++ {
			candidates = append(candidates, Point{Row: row, Col: col})
		}
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	return &ZonePlacement{
		grid:       g,
		zone:       zone,
		claim:      claim,
		candidates: candidates,
	}
}

// Cursor returns the scan position; Index is the next candidate to test.
func (z *ZonePlacement) Cursor() Cursor { return Cursor{Index: z.next} }

// Step tests up to budget candidates.
func (z *ZonePlacement) Step(budget int) bool {
	for n := 0; budget <= 0 || n < budget; n++ {
		if z.found != nil || z.next >= len(z.candidates) {
			return false
		}
		p := z.candidates[z.next]
		z.next++
		if claimable.Has(z.grid.At(p)) && InZone(z.zone, p, z.grid.Width(), z.grid.Length()) {
			z.grid.SetAt(p, z.claim)
			z.found = &p
			return false
		}
	}
	return z.found == nil && z.next < len(z.candidates)
}

// Result returns the claimed cell, or ErrNoCandidate once every coordinate
// has been tested without a match.
func (z *ZonePlacement) Result() (Point, error) {
	if z.found != nil {
		return *z.found, nil
	}
	if z.next < len(z.candidates) {
		return Point{}, ErrNotFinished
	}
	return Point{}, fmt.Errorf("%s placement in %s zone: %w", z.claim, z.zone, ErrNoCandidate)
}
