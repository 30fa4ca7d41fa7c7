package catalog

import (
	"errors"
	"fmt"

	"github.com/samdwyer/mazegen/internal/maze"
)

// RoomsFile represents the structure of rooms.json.
type RoomsFile struct {
	Rooms []maze.RoomDef `json:"rooms"`
}

// RoomRegistry holds loaded room definitions and provides lookup utilities.
type RoomRegistry struct {
	rooms []maze.RoomDef
	byID  map[string]int
}

// NewRoomRegistry creates a registry from loaded room definitions. IDs must
// be unique.
func NewRoomRegistry(rooms []maze.RoomDef) (*RoomRegistry, error) {
	r := &RoomRegistry{rooms: rooms, byID: make(map[string]int, len(rooms))}
	for i, def := range rooms {
		if _, dup := r.byID[def.ID]; dup {
			return nil, fmt.Errorf("duplicate room id %q", def.ID)
		}
		r.byID[def.ID] = i
	}
	return r, nil
}

// LoadRoomRegistry loads and creates a registry from the embedded rooms.json.
func LoadRoomRegistry() (*RoomRegistry, error) {
	file, err := Load[RoomsFile]("rooms.json")
	if err != nil {
		return nil, err
	}
	if len(file.Rooms) == 0 {
		return nil, errors.New("no rooms loaded from rooms.json")
	}
	return NewRoomRegistry(file.Rooms)
}

// GetByID returns the room definition with the given ID, or nil if not found.
func (r *RoomRegistry) GetByID(id string) *maze.RoomDef {
	i, ok := r.byID[id]
	if !ok {
		return nil
	}
	return &r.rooms[i]
}

// Fitting returns the definitions whose footprint fits a width x length grid
// with a one-cell margin.
func (r *RoomRegistry) Fitting(width, length int) []maze.RoomDef {
	var out []maze.RoomDef
	for _, def := range r.rooms {
		if def.FixedPosition {
			if def.X >= 0 && def.Z >= 0 && def.X+def.Width <= width && def.Z+def.Length <= length {
				out = append(out, def)
			}
			continue
		}
		if def.Width <= width-2 && def.Length <= length-2 {
			out = append(out, def)
		}
	}
	return out
}

// Count returns the number of room types in the registry.
func (r *RoomRegistry) Count() int {
	return len(r.rooms)
}
