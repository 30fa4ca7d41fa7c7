package app

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/samdwyer/mazegen/internal/maze"
)

// Config holds viewer configuration options.
type Config struct {
	// Maze is the generation config; catalog content is added by New.
	Maze maze.Config
	// StepBudget is the work done per space press. 0 completes the maze.
	StepBudget int
	// Debug raises the log verbosity to include stage progress.
	Debug bool
	// RoomIDs limits the catalog rooms offered to the generator. Empty
	// offers every room.
	RoomIDs []string
	// LogFile receives viewer logs while the terminal is in use. Empty
	// discards them.
	LogFile string
}

// LoadConfig reads MAZE_* environment variables on top of the defaults.
// Unparseable values are logged and ignored.
func LoadConfig() Config {
	m := maze.DefaultConfig()
	m.Name = getEnvWithDefault("MAZE_NAME", m.Name)
	m.Width = getEnvAsInt("MAZE_WIDTH", m.Width)
	m.Length = getEnvAsInt("MAZE_LENGTH", m.Length)
	if seed, ok := lookupEnvAsInt64("MAZE_SEED"); ok {
		m.SetSeed(seed)
	}
	m.Braid = getEnvAsBool("MAZE_BRAID", m.Braid)
	m.BraidFrequency = getEnvAsFloat("MAZE_BRAID_FREQUENCY", m.BraidFrequency)
	m.PruneCount = getEnvAsInt("MAZE_PRUNE_COUNT", m.PruneCount)
	m.Prune = m.PruneCount > 0
	if v, ok := os.LookupEnv("MAZE_PRUNE_MODE"); ok {
		mode, err := maze.ParsePruneMode(v)
		if err != nil {
			log.Printf("Ignoring MAZE_PRUNE_MODE: %v", err)
		} else {
			m.PruneMode = mode
			m.Prune = m.Prune || mode == maze.PruneClassic
		}
	}
	m.RoomCount = getEnvAsInt("MAZE_ROOMS", 3)
	m.RoomAttempts = getEnvAsInt("MAZE_ROOM_ATTEMPTS", m.RoomAttempts)
	if v, ok := os.LookupEnv("MAZE_EXIT_ZONE"); ok {
		zone, err := maze.ParseZone(v)
		if err != nil {
			log.Printf("Ignoring MAZE_EXIT_ZONE: %v", err)
		} else {
			m.ExitZone = zone
		}
	}

	return Config{
		Maze:       m,
		StepBudget: getEnvAsInt("MAZE_STEP_BUDGET", 25),
		Debug:      getEnvAsBool("MAZE_DEBUG", false),
		RoomIDs:    getEnvAsList("MAZE_ROOM_IDS"),
		LogFile:    getEnvWithDefault("MAZE_LOG_FILE", "mazegen.log"),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Ignoring %s: must be an integer: %v", key, err)
		return defaultValue
	}
	return n
}

// lookupEnvAsInt64 reports the variable's value and whether it was set to a
// valid integer.
func lookupEnvAsInt64(key string) (int64, bool) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Printf("Ignoring %s: must be an integer: %v", key, err)
		return 0, false
	}
	return n, true
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("Ignoring %s: must be a number: %v", key, err)
		return defaultValue
	}
	return f
}

func getEnvAsBool(key string, defaultValue bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("Ignoring %s: must be true or false: %v", key, err)
		return defaultValue
	}
	return b
}

// getEnvAsList splits a comma-separated variable, dropping blank entries.
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
