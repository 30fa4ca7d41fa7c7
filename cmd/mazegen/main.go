// Package main is the entry point for mazegen.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-logr/stdr"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel"

	"github.com/samdwyer/mazegen/internal/app"
	"github.com/samdwyer/mazegen/internal/catalog"
	"github.com/samdwyer/mazegen/internal/maze"
	"github.com/samdwyer/mazegen/internal/telemetry"
	"github.com/samdwyer/mazegen/internal/ui"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred telemetry shutdown runs
// before exit.
func run() int {
	printOnly := flag.Bool("print", false, "generate one maze, print it to stdout and exit")
	seed := flag.Int64("seed", 0, "generation seed (overrides MAZE_SEED; random when neither is set)")
	flag.Parse()

	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	setupOTelEnv()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Running without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	cfg := app.LoadConfig()
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.Maze.SetSeed(*seed)
		}
	})
	if cfg.Debug {
		stdr.SetVerbosity(1)
	}

	if *printOnly {
		if err := printMaze(ctx, cfg); err != nil {
			log.Printf("Generation failed: %v", err)
			return 1
		}
		return 0
	}

	// The screen owns the terminal from here, so logs go to a file.
	logger, closeLog, err := app.OpenLog(cfg.LogFile)
	if err != nil {
		log.Printf("Failed to open log file: %v", err)
		return 1
	}
	defer closeLog()
	otel.SetLogger(logger)

	a, err := app.New(cfg, logger)
	if err != nil {
		log.Printf("Failed to initialize viewer: %v", err)
		return 1
	}
	if err := a.Run(ctx); err != nil {
		log.Printf("Viewer error: %v", err)
		return 1
	}
	return 0
}

// printMaze generates a complete maze and writes it and its settings to stdout.
func printMaze(ctx context.Context, cfg app.Config) error {
	mc, err := app.WithCatalog(cfg.Maze, cfg.RoomIDs...)
	if err != nil {
		return err
	}
	mc.Logger = stdr.New(log.New(os.Stderr, "", 0)).WithName("mazegen")

	result, err := maze.Generate(ctx, mc)
	if err != nil {
		return err
	}
	palette, err := catalog.LoadPalette()
	if err != nil {
		return err
	}

	fmt.Print(ui.Text(result.Grid, palette))
	fmt.Printf("id %s  seed %d  dead ends %d  cycles %d  rooms %d\n",
		result.ID, result.Seed, result.Stats.DeadEnds, result.Stats.Cycles, len(result.Rooms))
	for _, room := range result.Rooms {
		c := room.Rect.Center()
		fmt.Printf("room %s at row %d col %d\n", room.Def.ID, c.Row, c.Col)
	}
	for _, w := range result.Warnings {
		fmt.Printf("warning: %s\n", w)
	}

	settings, err := maze.MarshalSettings(result.Settings(mc))
	if err != nil {
		return err
	}
	fmt.Println(string(settings))
	return nil
}

// setupOTelEnv maps the MAZE_OTEL_* convenience variables onto the standard
// OTEL_* ones when those are not already set.
func setupOTelEnv() {
	if endpoint := os.Getenv("MAZE_OTEL_ENDPOINT"); endpoint != "" && os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", endpoint)
	}

	apiKey := os.Getenv("MAZE_OTEL_API_KEY")
	dataset := os.Getenv("MAZE_OTEL_DATASET")
	if dataset == "" {
		dataset = "mazegen"
	}
	if apiKey != "" && os.Getenv("OTEL_EXPORTER_OTLP_HEADERS") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
