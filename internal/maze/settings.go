package maze

import (
	"encoding/json"
	"fmt"
)

// Settings is the persisted form of a Config. The engine only converts to
// and from it; storage belongs to the caller.
type Settings struct {
	Name      string      `json:"name"`
	Dimension Dimension   `json:"dimension"`
	Seed      int64       `json:"seed"`
	Width     int         `json:"width"`
	Length    int         `json:"length"`
	Position  Vec3        `json:"position"`
	TileSize  float64     `json:"tileSize"`
	Walls     WallDefault `json:"walls"`

	Braid          bool    `json:"braid"`
	BraidFrequency float64 `json:"braidFrequency"`

	Exits ExitSettings  `json:"exits"`
	Prune PruneSettings `json:"prune"`
	Rooms RoomSettings  `json:"rooms"`

	ClassifyCorners bool `json:"classifyCorners"`
	ClassifyEnds    bool `json:"classifyEnds"`
}

// WallDefault holds the default wall and floor proportions.
type WallDefault struct {
	Height         float64 `json:"height"`
	FloorThickness float64 `json:"floorThickness"`
}

// ExitSettings configures start and finish placement.
type ExitSettings struct {
	Start  bool `json:"start"`
	Finish bool `json:"finish"`
	Zone   Zone `json:"zone"`
}

// PruneSettings configures boundary pruning.
type PruneSettings struct {
	Enabled bool      `json:"enabled"`
	Count   int       `json:"count"`
	Mode    PruneMode `json:"mode"`
}

// RoomSettings configures room placement.
type RoomSettings struct {
	Defs     []RoomDef `json:"defs"`
	Count    int       `json:"count"`
	Attempts int       `json:"attempts"`
}

// Settings captures the persisted fields of the config. Pass the seed a run
// actually used so the saved settings reproduce it.
func (c Config) Settings(seed int64) Settings {
	return Settings{
		Name:           c.Name,
		Dimension:      c.Render.Dimension,
		Seed:           seed,
		Width:          c.Width,
		Length:         c.Length,
		Position:       c.Render.Position,
		TileSize:       c.TileSize,
		Walls:          WallDefault{Height: c.Render.WallHeight, FloorThickness: c.Render.FloorThickness},
		Braid:          c.Braid,
		BraidFrequency: c.BraidFrequency,
		Exits:          ExitSettings{Start: c.PlaceStart, Finish: c.PlaceFinish, Zone: c.ExitZone},
		Prune:          PruneSettings{Enabled: c.Prune, Count: c.PruneCount, Mode: c.PruneMode},
		Rooms: RoomSettings{
			Defs:     c.Rooms,
			Count:    c.RoomCount,
			Attempts: c.RoomAttempts,
		},
		ClassifyCorners: c.ClassifyCorners,
		ClassifyEnds:    c.ClassifyEnds,
	}
}

// Config rebuilds a generation config. Fields that are not persisted, such
// as unique tiles, details and the logger, are left at their zero values.
func (s Settings) Config() Config {
	return Config{
		Name:     s.Name,
		Width:    s.Width,
		Length:   s.Length,
		Seed:     s.Seed,
		HasSeed:  true,
		TileSize: s.TileSize,
		Render: RenderHints{
			Dimension:      s.Dimension,
			Position:       s.Position,
			WallHeight:     s.Walls.Height,
			FloorThickness: s.Walls.FloorThickness,
		},
		Braid:           s.Braid,
		BraidFrequency:  s.BraidFrequency,
		Prune:           s.Prune.Enabled,
		PruneCount:      s.Prune.Count,
		PruneMode:       s.Prune.Mode,
		Rooms:           s.Rooms.Defs,
		RoomCount:       s.Rooms.Count,
		RoomAttempts:    s.Rooms.Attempts,
		PlaceStart:      s.Exits.Start,
		PlaceFinish:     s.Exits.Finish,
		ExitZone:        s.Exits.Zone,
		ClassifyCorners: s.ClassifyCorners,
		ClassifyEnds:    s.ClassifyEnds,
	}
}

// MarshalSettings encodes settings as indented JSON.
func MarshalSettings(s Settings) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode settings %q: %w", s.Name, err)
	}
	return data, nil
}

// UnmarshalSettings decodes settings produced by MarshalSettings.
func UnmarshalSettings(data []byte) (Settings, error) {
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	return s, nil
}
