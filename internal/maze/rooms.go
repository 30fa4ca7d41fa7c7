package maze

import (
	"context"
	"errors"
	"math/rand"

	"github.com/cenkalti/backoff/v5"
	"github.com/go-logr/logr"
)

var (
	// ErrRoomOverlap is returned when a footprint covers an existing room.
	ErrRoomOverlap = errors.New("room overlaps an existing room")
	// ErrRoomTooLarge is returned when a footprint cannot fit inside the grid.
	ErrRoomTooLarge = errors.New("room does not fit inside the grid")
)

// RoomPlacer stamps room footprints onto a grid.
type RoomPlacer struct {
	grid   *Grid
	rng    *rand.Rand
	log    logr.Logger
	placed []PlacedRoom
	// fixedPlaced tracks fixed-position definitions already stamped this run.
	fixedPlaced map[int]bool
}

// NewRoomPlacer creates a placer for one generation run.
func NewRoomPlacer(g *Grid, rng *rand.Rand, log logr.Logger) *RoomPlacer {
	return &RoomPlacer{
		grid:        g,
		rng:         rng,
		log:         log,
		fixedPlaced: make(map[int]bool),
	}
}

// Placed returns the rooms stamped so far.
func (rp *RoomPlacer) Placed() []PlacedRoom { return rp.placed }

// TryPlace makes one placement attempt. A random anchor keeps a one-cell
// margin from the grid edge. The grid is only modified on success.
func (rp *RoomPlacer) TryPlace(def RoomDef) (Rect, error) {
	w, l := rp.grid.Width(), rp.grid.Length()
	rect := Rect{X: def.X, Y: def.Z, Width: def.Width, Height: def.Length}
	if def.Width <= 0 || def.Length <= 0 {
		return Rect{}, ErrRoomTooLarge
	}
	if !def.FixedPosition {
		if def.Width > w-2 || def.Length > l-2 {
			return Rect{}, ErrRoomTooLarge
		}
		rect.X = 1 + rp.rng.Intn(w-def.Width-1)
		rect.Y = 1 + rp.rng.Intn(l-def.Length-1)
	} else if rect.X < 0 || rect.Y < 0 || rect.X+rect.Width > w || rect.Y+rect.Height > l {
		return Rect{}, ErrRoomTooLarge
	}

	// Rooms from this run, then any stamped on the grid beforehand.
	for _, pr := range rp.placed {
		if rect.Intersects(pr.Rect) {
			return Rect{}, ErrRoomOverlap
		}
	}
	for row := rect.Y; row < rect.Y+rect.Height; row++ {
		for col := rect.X; col < rect.X+rect.Width; col++ {
			if rp.grid.Get(row, col) == Room {
				return Rect{}, ErrRoomOverlap
			}
		}
	}
	for row := rect.Y; row < rect.Y+rect.Height; row++ {
		for col := rect.X; col < rect.X+rect.Width; col++ {
			rp.grid.Set(row, col, Room)
		}
	}
	rp.placed = append(rp.placed, PlacedRoom{Def: def, Rect: rect})
	return rect, nil
}

// Place retries TryPlace up to attempts times. Overlaps are retried, a room
// that cannot fit is given up on immediately.
func (rp *RoomPlacer) Place(ctx context.Context, def RoomDef, attempts int) (Rect, error) {
	return backoff.Retry(ctx, func() (Rect, error) {
		rect, err := rp.TryPlace(def)
		if errors.Is(err, ErrRoomTooLarge) {
			return rect, backoff.Permanent(err)
		}
		return rect, err
	},
		backoff.WithBackOff(&backoff.ZeroBackOff{}),
		backoff.WithMaxTries(uint(max(attempts, 1))),
	)
}

// PlaceAll places count room instances, drawing a definition for each.
// Fixed-position definitions are drawn at most once per run. Instances that
// cannot be placed are skipped; their errors are returned for reporting.
func (rp *RoomPlacer) PlaceAll(ctx context.Context, defs []RoomDef, count, attempts int) []error {
	if len(defs) == 0 {
		return nil
	}
	var failures []error
	for instance := 0; instance < count; instance++ {
		if !rp.hasAvailable(defs) {
			break
		}
		idx := rp.rng.Intn(len(defs))
		for defs[idx].FixedPosition && rp.fixedPlaced[idx] {
			idx = rp.rng.Intn(len(defs))
		}
		def := defs[idx]

		rect, err := rp.Place(ctx, def, attempts)
		if err != nil {
			rp.log.Info("room placement skipped",
				"room", def.ID, "instance", instance, "attempts", attempts, "reason", err.Error())
			failures = append(failures, err)
			continue
		}
		if def.FixedPosition {
			rp.fixedPlaced[idx] = true
		}
		rp.log.V(1).Info("room placed", "room", def.ID, "x", rect.X, "z", rect.Y)
	}
	return failures
}

func (rp *RoomPlacer) hasAvailable(defs []RoomDef) bool {
	for i, d := range defs {
		if !d.FixedPosition || !rp.fixedPlaced[i] {
			return true
		}
	}
	return false
}
