// Package app runs the interactive maze viewer.
package app

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazegen/internal/catalog"
	"github.com/samdwyer/mazegen/internal/maze"
	"github.com/samdwyer/mazegen/internal/telemetry"
	"github.com/samdwyer/mazegen/internal/ui"
)

const keyHint = "space step  g finish  r reseed  b braid  q quit"

// App holds the viewer state.
type App struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	cfg      Config
	maze     maze.Config
	gen      *maze.Generator
	log      logr.Logger
	running  bool
}

// New creates a viewer on the terminal.
func New(cfg Config, log logr.Logger) (*App, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	a, err := NewWithScreen(screen, cfg, log)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return a, nil
}

// NewWithScreen creates a viewer on an initialized screen.
func NewWithScreen(screen *ui.Screen, cfg Config, log logr.Logger) (*App, error) {
	palette, err := catalog.LoadPalette()
	if err != nil {
		return nil, err
	}
	if !palette.Covers() {
		log.Info("palette is missing tile states, drawing them with the fallback glyph")
	}
	mc, err := WithCatalog(cfg.Maze, cfg.RoomIDs...)
	if err != nil {
		return nil, err
	}
	mc.Logger = log
	return &App{
		screen:   screen,
		renderer: ui.NewRenderer(screen, palette),
		cfg:      cfg,
		maze:     mc,
		log:      log,
		running:  true,
	}, nil
}

// WithCatalog fills the room, unique tile and detail lists of mc from the
// embedded catalog. Rooms that cannot fit the grid are left out. When
// roomIDs is given only those rooms are offered.
func WithCatalog(mc maze.Config, roomIDs ...string) (maze.Config, error) {
	mc.Normalize()
	rooms, err := catalog.LoadRoomRegistry()
	if err != nil {
		return mc, fmt.Errorf("load rooms: %w", err)
	}
	if len(roomIDs) > 0 {
		picked := make([]maze.RoomDef, 0, len(roomIDs))
		for _, id := range roomIDs {
			def := rooms.GetByID(id)
			if def == nil {
				return mc, fmt.Errorf("unknown room %q", id)
			}
			picked = append(picked, *def)
		}
		if rooms, err = catalog.NewRoomRegistry(picked); err != nil {
			return mc, err
		}
	}
	mc.Rooms = rooms.Fitting(mc.Width, mc.Length)

	if mc.UniqueTiles, err = catalog.LoadUniqueTiles(); err != nil {
		return mc, fmt.Errorf("load unique tiles: %w", err)
	}
	if mc.WallDetails, mc.FloorDetails, err = catalog.LoadDetails(); err != nil {
		return mc, fmt.Errorf("load details: %w", err)
	}
	return mc, nil
}

// Run executes the viewer loop until the user quits.
func (a *App) Run(ctx context.Context) error {
	a.regenerate(ctx)

	for a.running {
		a.render()

		ev := a.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			a.HandleKey(ctx, ev)
		case *tcell.EventResize:
			a.screen.Sync()
		case nil:
			// Screen finalized
			a.running = false
		}
	}

	a.screen.Close()
	return nil
}

// Running reports whether the viewer loop should continue.
func (a *App) Running() bool { return a.running }

// Generator returns the generator behind the current view.
func (a *App) Generator() *maze.Generator { return a.gen }

// Braid reports whether braiding is enabled for the next generation.
func (a *App) Braid() bool { return a.maze.Braid }

// HandleKey processes keyboard input.
func (a *App) HandleKey(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.running = false
		return
	case tcell.KeyRune:
	default:
		return
	}

	switch ev.Rune() {
	case 'q', 'Q':
		a.running = false
	case ' ':
		a.step(a.cfg.StepBudget)
	case 'g', 'G':
		a.step(maze.Unlimited)
	case 'r', 'R':
		a.maze.HasSeed = false
		a.regenerate(ctx)
	case 'b', 'B':
		// Keep the current layout's seed so only braiding changes.
		if a.gen != nil {
			a.maze.SetSeed(a.gen.Seed())
		}
		a.maze.Braid = !a.maze.Braid
		a.regenerate(ctx)
	}
}

func (a *App) step(budget int) {
	if a.gen == nil || a.gen.Done() {
		return
	}
	a.gen.Step(budget)
	if a.gen.Done() {
		if r, err := a.gen.Result(); err == nil {
			a.log.Info("maze generated",
				"id", r.ID.String(), "seed", r.Seed,
				"deadEnds", r.Stats.DeadEnds, "cycles", r.Stats.Cycles, "warnings", len(r.Warnings))
		}
	}
}

// regenerate starts a new run from the current config. Without a fixed seed
// a fresh one is drawn.
func (a *App) regenerate(ctx context.Context) {
	tracer := telemetry.Tracer("app")
	ctx, span := tracer.Start(ctx, "app.regenerate")
	defer span.End()

	a.gen = maze.NewGenerator(ctx, a.maze)
	span.SetAttributes(
		attribute.Int64("maze.seed", a.gen.Seed()),
		attribute.Bool("maze.braid", a.maze.Braid),
	)
}

func (a *App) render() {
	if a.gen == nil {
		a.screen.Clear()
		a.renderer.RenderMessage("No maze yet. "+keyHint, 0)
		a.screen.Show()
		return
	}
	status := ui.Status{
		Name:  a.maze.Name,
		Seed:  a.gen.Seed(),
		Stage: a.gen.Stage(),
		Hint:  keyHint,
	}
	if p, ok := a.gen.CarveCursor(); ok {
		status.Cursor = &p
	}
	a.renderer.Render(a.gen.Grid(), status)
}
