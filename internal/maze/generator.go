package maze

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/mazegen/internal/telemetry"
)

// ErrNotFinished is returned when a result is requested before the run ends.
var ErrNotFinished = errors.New("generation has not finished")

// Stage names, in run order.
const (
	StageCarve       = "carve"
	StageBraid       = "braid"
	StagePrune       = "prune"
	StageRooms       = "rooms"
	StageStart       = "start"
	StageFinish      = "finish"
	StageUnique      = "unique"
	StageCorners     = "corners"
	StageEnds        = "ends"
	StageWallDetail  = "wall_details"
	StageFloorDetail = "floor_details"
	StageDone        = "done"
)

// Result is the output of one generation run. The grid and unique tile
// table are what a renderer consumes.
type Result struct {
	ID       uuid.UUID
	Name     string
	Seed     int64
	Grid     *Grid
	Rooms    []PlacedRoom
	Start    *Point
	Finish   *Point
	Uniques  map[Point]UniqueTile
	Exits    []Point
	Details  []Detail
	Warnings []string
	Stats    Stats
}

// Settings returns the persisted form of the run, including its seed.
func (r *Result) Settings(cfg Config) Settings {
	return cfg.Settings(r.Seed)
}

type stage struct {
	name  string
	build func() Pass
	// done records the finished pass into the result.
	done func(Pass)
}

// Generator runs the generation stages incrementally. Stages are built only
// when they start, so the random stream is consumed in a fixed order
// whatever budget the caller steps with.
type Generator struct {
	ctx    context.Context
	cfg    Config
	rng    *rand.Rand
	log    logr.Logger
	tracer trace.Tracer

	span      trace.Span
	stageSpan trace.Span
	stages    []stage
	current   int
	pass      Pass
	started   time.Time

	result *Result
	err    error
}

// NewGenerator normalizes cfg, seeds the random source and lays out the
// skeleton grid. Without HasSeed a seed is drawn from the clock; the chosen
// seed is reported in the result.
func NewGenerator(ctx context.Context, cfg Config) *Generator {
	cfg.Normalize()
	seed := cfg.Seed
	if !cfg.HasSeed {
		seed = time.Now().UnixNano()
	}

	g := &Generator{
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(seed)),
		log:     cfg.Logger.WithValues("maze", cfg.Name, "seed", seed),
		tracer:  telemetry.Tracer("maze"),
		started: time.Now(),
		result: &Result{
			ID:      uuid.New(),
			Name:    cfg.Name,
			Seed:    seed,
			Grid:    NewGrid(cfg.Width, cfg.Length),
			Uniques: make(map[Point]UniqueTile),
		},
	}
	g.ctx, g.span = g.tracer.Start(ctx, "maze.generate")
	g.span.SetAttributes(
		attribute.String("maze.id", g.result.ID.String()),
		attribute.String("maze.name", cfg.Name),
		attribute.Int("maze.width", cfg.Width),
		attribute.Int("maze.length", cfg.Length),
		attribute.Int64("maze.seed", seed),
	)
	g.stages = g.plan()
	return g
}

// Seed returns the seed driving this run.
func (g *Generator) Seed() int64 { return g.result.Seed }

// Grid returns the grid being generated. It is live while the run is in
// progress.
func (g *Generator) Grid() *Grid { return g.result.Grid }

// Stage names the stage that the next Step will advance.
func (g *Generator) Stage() string {
	if g.current >= len(g.stages) {
		return StageDone
	}
	return g.stages[g.current].name
}

// CarveCursor returns the carve position while the carve stage is running.
func (g *Generator) CarveCursor() (Point, bool) {
	c, ok := g.pass.(*Carver)
	if !ok {
		return Point{}, false
	}
	return c.Cursor(), true
}

// Done reports whether every stage has finished.
func (g *Generator) Done() bool { return g.current >= len(g.stages) }

// Step advances the current stage by up to budget work units and reports
// whether work remains. A positive budget never crosses a stage boundary;
// Unlimited runs every remaining stage.
func (g *Generator) Step(budget int) bool {
	for !g.Done() {
		if err := g.ctx.Err(); err != nil {
			g.abort(err)
			return false
		}
		// Build the stage lazily so the rng is consumed in stage order
		if g.pass == nil {
			g.begin()
		}
		if g.pass.Step(budget) {
			return true
		}
		// Stage complete: fold its output into the result
		g.end()
		if budget > 0 {
			break
		}
	}
	if g.Done() {
		g.finish()
	}
	return !g.Done()
}

// Result returns the finished run.
func (g *Generator) Result() (*Result, error) {
	if g.err != nil {
		return nil, g.err
	}
	if !g.Done() {
		return nil, ErrNotFinished
	}
	return g.result, nil
}

// Generate runs a complete generation.
func Generate(ctx context.Context, cfg Config) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g := NewGenerator(ctx, cfg)
	g.Step(Unlimited)
	return g.Result()
}

func (g *Generator) begin() {
	s := g.stages[g.current]
	_, g.stageSpan = g.tracer.Start(g.ctx, "maze.stage."+s.name)
	g.log.V(1).Info("stage started", "stage", s.name)
	g.pass = s.build()
}

func (g *Generator) end() {
	s := g.stages[g.current]
	if s.done != nil {
		s.done(g.pass)
	}
	g.stageSpan.End()
	g.stageSpan = nil
	g.log.V(1).Info("stage finished", "stage", s.name)
	g.pass = nil
	g.current++
}

func (g *Generator) finish() {
	if g.span == nil {
		return
	}
	g.result.Stats = Analyze(g.result.Grid)
	st := g.result.Stats
	g.span.SetAttributes(
		attribute.Int("maze.floors", st.Floors),
		attribute.Int("maze.dead_ends", st.DeadEnds),
		attribute.Int("maze.components", st.Components),
		attribute.Int("maze.cycles", st.Cycles),
		attribute.Bool("maze.perfect", st.Perfect()),
		attribute.Int("maze.rooms", len(g.result.Rooms)),
		attribute.Int("maze.warnings", len(g.result.Warnings)),
		attribute.Int64("maze.generation_ms", time.Since(g.started).Milliseconds()),
	)
	g.span.End()
	g.span = nil
}

func (g *Generator) abort(err error) {
	g.err = fmt.Errorf("generate %s: %w", g.cfg.Name, err)
	if g.stageSpan != nil {
		g.stageSpan.End()
	}
	g.span.RecordError(err)
	g.span.SetStatus(codes.Error, "generation cancelled")
	g.span.End()
	g.span = nil
	g.current = len(g.stages)
}

// record attaches a stage counter to the running stage span and the debug log.
func (g *Generator) record(kv attribute.KeyValue) {
	g.stageSpan.SetAttributes(kv)
	g.log.V(1).Info("stage counter", string(kv.Key), kv.Value.AsInt64())
}

func (g *Generator) warn(stage string, err error, kv ...any) {
	g.result.Warnings = append(g.result.Warnings, fmt.Sprintf("%s: %v", stage, err))
	g.log.Info("placement failed", append([]any{"stage", stage, "reason", err.Error()}, kv...)...)
}

// plan lists the enabled stages in run order.
func (g *Generator) plan() []stage {
	cfg, grid, res := g.cfg, g.result.Grid, g.result

	stages := []stage{{
		name:  StageCarve,
		build: func() Pass { return NewCarver(grid, g.rng) },
		done: func(p Pass) {
			g.record(attribute.Int("maze.carve_steps", p.(*Carver).Steps()))
		},
	}}

	if cfg.Braid {
		stages = append(stages, stage{
			name:  StageBraid,
			build: func() Pass { return NewBraider(grid, g.rng, cfg.BraidFrequency) },
			done: func(p Pass) {
				g.record(attribute.Int("maze.braided", p.(*Braider).Opened()))
			},
		})
	}

	if cfg.Prune {
		stages = append(stages, stage{
			name: StagePrune,
			build: func() Pass {
				return PassFunc(func() {
					res.Exits = Prune(grid, g.rng, cfg.PruneCount, cfg.PruneMode)
				})
			},
		})
	}

	if len(cfg.Rooms) > 0 && cfg.RoomCount > 0 {
		stages = append(stages, stage{
			name: StageRooms,
			build: func() Pass {
				rp := NewRoomPlacer(grid, g.rng, g.log.WithValues("stage", StageRooms))
				return PassFunc(func() {
					for _, err := range rp.PlaceAll(g.ctx, cfg.Rooms, cfg.RoomCount, cfg.RoomAttempts) {
						res.Warnings = append(res.Warnings, fmt.Sprintf("%s: %v", StageRooms, err))
					}
					res.Rooms = rp.Placed()
				})
			},
		})
	}

	if cfg.PlaceStart {
		stages = append(stages, g.zoneStage(StageStart, cfg.ExitZone, Start, func(p Point) {
			res.Start = &p
		}))
	}
	if cfg.PlaceFinish {
		stages = append(stages, g.zoneStage(StageFinish, cfg.ExitZone, Finish, func(p Point) {
			res.Finish = &p
		}))
	}
	for _, ut := range cfg.UniqueTiles {
		stages = append(stages, g.zoneStage(StageUnique, ut.Zone, Unique, func(p Point) {
			res.Uniques[p] = ut
		}))
	}

	if cfg.ClassifyCorners {
		stages = append(stages, stage{
			name:  StageCorners,
			build: func() Pass { return NewCornerPass(grid) },
			done: func(p Pass) {
				g.record(attribute.Int("maze.corner_walls", p.(*CornerPass).Found()))
			},
		})
	}
	if cfg.ClassifyEnds {
		stages = append(stages, stage{
			name:  StageEnds,
			build: func() Pass { return NewEndPass(grid) },
			done: func(p Pass) {
				g.record(attribute.Int("maze.end_walls", p.(*EndPass).Found()))
			},
		})
	}

	if len(cfg.WallDetails) > 0 {
		stages = append(stages, g.detailStage(StageWallDetail, func() *DetailPass {
			return NewWallDetailPass(grid, g.rng, cfg.WallDetails)
		}))
	}
	if len(cfg.FloorDetails) > 0 {
		stages = append(stages, g.detailStage(StageFloorDetail, func() *DetailPass {
			return NewFloorDetailPass(grid, g.rng, cfg.FloorDetails)
		}))
	}
	return stages
}

func (g *Generator) zoneStage(name string, zone Zone, claim TileState, record func(Point)) stage {
	return stage{
		name: name,
		build: func() Pass {
			return NewZonePlacement(g.result.Grid, g.rng, zone, claim)
		},
		done: func(p Pass) {
			at, err := p.(*ZonePlacement).Result()
			if err != nil {
				g.warn(name, err, "zone", zone.String())
				return
			}
			record(at)
		},
	}
}

func (g *Generator) detailStage(name string, build func() *DetailPass) stage {
	return stage{
		name:  name,
		build: func() Pass { return build() },
		done: func(p Pass) {
			g.result.Details = append(g.result.Details, p.(*DetailPass).Details()...)
		},
	}
}
