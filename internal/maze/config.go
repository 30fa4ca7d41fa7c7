package maze

import (
	"github.com/go-logr/logr"
)

// Default configuration values.
const (
	DefaultName         = "DefaultName"
	DefaultWidth        = 21
	DefaultLength       = 21
	DefaultTileSize     = 1.0
	DefaultRoomAttempts = 10
)

// Dimension tells the renderer whether to instantiate the grid flat or as
// standing walls. The engine treats both the same.
type Dimension string

const (
	Dimension2D Dimension = "2d"
	Dimension3D Dimension = "3d"
)

// Vec3 is a renderer-space position.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// RenderHints are passed through to the renderer untouched.
type RenderHints struct {
	Dimension      Dimension `json:"dimension"`
	Position       Vec3      `json:"position"`
	WallHeight     float64   `json:"wallHeight"`
	FloorThickness float64   `json:"floorThickness"`
}

// Config bundles everything a generation run needs.
type Config struct {
	Name     string
	Width    int
	Length   int
	Seed     int64
	HasSeed  bool // Seed is used as given, including 0; otherwise one is drawn
	TileSize float64
	Render   RenderHints

	Braid          bool
	BraidFrequency float64

	Prune      bool
	PruneCount int
	PruneMode  PruneMode

	Rooms        []RoomDef
	RoomCount    int
	RoomAttempts int

	PlaceStart  bool
	PlaceFinish bool
	ExitZone    Zone

	UniqueTiles []UniqueTile

	ClassifyCorners bool
	ClassifyEnds    bool

	WallDetails  []DetailDef
	FloorDetails []DetailDef

	// Logger receives placement warnings at V(0) and stage progress at V(1).
	// The zero value discards.
	Logger logr.Logger
}

// DefaultConfig returns a plain perfect maze with start and finish tiles and
// full wall classification.
func DefaultConfig() Config {
	return Config{
		Name:            DefaultName,
		Width:           DefaultWidth,
		Length:          DefaultLength,
		TileSize:        DefaultTileSize,
		Render:          RenderHints{Dimension: Dimension3D, WallHeight: 1, FloorThickness: 0.1},
		BraidFrequency:  0.5,
		PruneMode:       PruneRandom,
		RoomAttempts:    DefaultRoomAttempts,
		PlaceStart:      true,
		PlaceFinish:     true,
		ClassifyCorners: true,
		ClassifyEnds:    true,
	}
}

// SetSeed fixes the seed for the next run.
func (c *Config) SetSeed(seed int64) {
	c.Seed = seed
	c.HasSeed = true
}

// Normalize corrects out-of-range values in place. Dimensions are raised to
// the nearest legal odd value of at least MinDimension.
func (c *Config) Normalize() {
	c.Width = normalizeDimension(c.Width)
	c.Length = normalizeDimension(c.Length)
	if c.Name == "" {
		c.Name = DefaultName
	}
	if c.TileSize <= 0 {
		c.TileSize = DefaultTileSize
	}
	if c.Render.Dimension == "" {
		c.Render.Dimension = Dimension3D
	}
	c.BraidFrequency = clamp01(c.BraidFrequency)
	if c.PruneCount < 0 {
		c.PruneCount = 0
	}
	if c.RoomCount < 0 {
		c.RoomCount = 0
	}
	if c.RoomAttempts < 1 {
		c.RoomAttempts = 1
	}
	c.WallDetails = clampDetails(c.WallDetails)
	c.FloorDetails = clampDetails(c.FloorDetails)
}

func normalizeDimension(n int) int {
	if n < MinDimension {
		n = MinDimension
	}
	if n%2 == 0 {
		n++
	}
	return n
}

// clampDetails copies defs so the caller's slice is left alone.
func clampDetails(defs []DetailDef) []DetailDef {
	if defs == nil {
		return nil
	}
	out := make([]DetailDef, len(defs))
	for i, d := range defs {
		d.Frequency = clamp01(d.Frequency)
		out[i] = d
	}
	return out
}

func clamp01(f float64) float64 {
	return min(max(f, 0), 1)
}
