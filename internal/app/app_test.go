package app

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/mazegen/internal/maze"
	"github.com/samdwyer/mazegen/internal/ui"
)

func newSimScreen(t *testing.T) *ui.Screen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := ui.NewScreenFrom(sim)
	require.NoError(t, err)
	sim.SetSize(100, 60)
	return screen
}

func newTestApp(t *testing.T, seed int64) *App {
	t.Helper()
	screen := newSimScreen(t)
	t.Cleanup(screen.Close)

	cfg := Config{Maze: maze.DefaultConfig(), StepBudget: 10}
	cfg.Maze.SetSeed(seed)
	a, err := NewWithScreen(screen, cfg, logr.Discard())
	require.NoError(t, err)
	a.regenerate(context.Background())
	return a
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestSpaceStepsGenerator(t *testing.T) {
	a := newTestApp(t, 12345)
	ctx := context.Background()

	a.HandleKey(ctx, key(' '))
	_, carving := a.Generator().CarveCursor()
	assert.True(t, carving, "first step should still be carving")
	assert.False(t, a.Generator().Done())

	a.HandleKey(ctx, key('g'))
	assert.True(t, a.Generator().Done())
	r, err := a.Generator().Result()
	require.NoError(t, err)
	assert.Equal(t, int64(12345), r.Seed)
	a.render()
}

func TestReseedAndBraidToggle(t *testing.T) {
	a := newTestApp(t, 7)
	ctx := context.Background()

	a.HandleKey(ctx, key('b'))
	assert.True(t, a.Braid())
	assert.Equal(t, int64(7), a.Generator().Seed(), "toggling braid keeps the seed")

	a.HandleKey(ctx, key('r'))
	assert.NotEqual(t, int64(7), a.Generator().Seed())
}

func TestKeysBeforeFirstGeneration(t *testing.T) {
	screen := newSimScreen(t)
	t.Cleanup(screen.Close)
	a, err := NewWithScreen(screen, Config{Maze: maze.DefaultConfig(), StepBudget: 10}, logr.Discard())
	require.NoError(t, err)

	a.render()
	a.HandleKey(context.Background(), key(' '))
	assert.Nil(t, a.Generator())

	a.HandleKey(context.Background(), key('b'))
	require.NotNil(t, a.Generator())
	assert.True(t, a.Braid())
	a.render()
}

func TestRunProcessesQueuedKeys(t *testing.T) {
	screen := newSimScreen(t)
	cfg := Config{Maze: maze.DefaultConfig(), StepBudget: 10}
	cfg.Maze.SetSeed(0)
	a, err := NewWithScreen(screen, cfg, logr.Discard())
	require.NoError(t, err)

	for _, r := range []rune{' ', 'g', 'q'} {
		require.NoError(t, screen.PostEvent(key(r)))
	}
	require.NoError(t, a.Run(context.Background()))

	assert.False(t, a.Running())
	require.True(t, a.Generator().Done())
	r, err := a.Generator().Result()
	require.NoError(t, err)
	assert.Zero(t, r.Seed, "a fixed zero seed is used as given")
}

func TestQuitKeys(t *testing.T) {
	for _, ev := range []*tcell.EventKey{
		key('q'),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
	} {
		a := newTestApp(t, 1)
		a.HandleKey(context.Background(), ev)
		assert.False(t, a.Running())
	}
}

func TestWithCatalog(t *testing.T) {
	mc := maze.DefaultConfig()
	mc.Width, mc.Length = 8, 8

	got, err := WithCatalog(mc)
	require.NoError(t, err)

	assert.Equal(t, 9, got.Width, "dimensions are normalized before rooms are filtered")
	assert.NotEmpty(t, got.Rooms)
	for _, def := range got.Rooms {
		assert.LessOrEqual(t, def.Width, 7)
		assert.LessOrEqual(t, def.Length, 7)
	}
	assert.NotEmpty(t, got.UniqueTiles)
	assert.NotEmpty(t, got.WallDetails)
}

func TestWithCatalogRoomIDs(t *testing.T) {
	mc := maze.DefaultConfig()
	mc.Width, mc.Length = 31, 31

	got, err := WithCatalog(mc, "hall", "crypt")
	require.NoError(t, err)
	require.Len(t, got.Rooms, 2)
	assert.Equal(t, "hall", got.Rooms[0].ID)
	assert.Equal(t, "crypt", got.Rooms[1].ID)

	_, err = WithCatalog(mc, "hall", "dungeon")
	assert.ErrorContains(t, err, "dungeon")

	_, err = WithCatalog(mc, "hall", "hall")
	assert.Error(t, err, "repeated IDs are rejected")
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("MAZE_NAME", "Labyrinth")
	t.Setenv("MAZE_WIDTH", "31")
	t.Setenv("MAZE_LENGTH", "not-a-number")
	t.Setenv("MAZE_SEED", "99")
	t.Setenv("MAZE_BRAID", "true")
	t.Setenv("MAZE_BRAID_FREQUENCY", "0.25")
	t.Setenv("MAZE_PRUNE_COUNT", "4")
	t.Setenv("MAZE_PRUNE_MODE", "symmetric")
	t.Setenv("MAZE_EXIT_ZONE", "outside")
	t.Setenv("MAZE_STEP_BUDGET", "50")
	t.Setenv("MAZE_DEBUG", "1")
	t.Setenv("MAZE_LOG_FILE", "/tmp/maze.log")
	t.Setenv("MAZE_ROOM_IDS", "hall, crypt,,")

	cfg := LoadConfig()

	assert.Equal(t, "Labyrinth", cfg.Maze.Name)
	assert.Equal(t, 31, cfg.Maze.Width)
	assert.Equal(t, maze.DefaultLength, cfg.Maze.Length)
	assert.Equal(t, int64(99), cfg.Maze.Seed)
	assert.True(t, cfg.Maze.HasSeed)
	assert.True(t, cfg.Maze.Braid)
	assert.Equal(t, 0.25, cfg.Maze.BraidFrequency)
	assert.True(t, cfg.Maze.Prune)
	assert.Equal(t, 4, cfg.Maze.PruneCount)
	assert.Equal(t, maze.PruneSymmetric, cfg.Maze.PruneMode)
	assert.Equal(t, maze.ZoneOutside, cfg.Maze.ExitZone)
	assert.Equal(t, 50, cfg.StepBudget)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "/tmp/maze.log", cfg.LogFile)
	assert.Equal(t, []string{"hall", "crypt"}, cfg.RoomIDs)
}

func TestLoadConfigUnsetSeedIsRandom(t *testing.T) {
	t.Setenv("MAZE_SEED", "")
	t.Setenv("MAZE_LOG_FILE", "")
	t.Setenv("MAZE_ROOM_IDS", "")

	cfg := LoadConfig()

	assert.Empty(t, cfg.RoomIDs)
	assert.False(t, cfg.Maze.HasSeed)
	assert.Equal(t, "mazegen.log", cfg.LogFile)
}

func TestLoadConfigClassicImpliesPrune(t *testing.T) {
	t.Setenv("MAZE_PRUNE_COUNT", "")
	t.Setenv("MAZE_PRUNE_MODE", "classic")

	cfg := LoadConfig()

	assert.True(t, cfg.Maze.Prune)
	assert.Equal(t, maze.PruneClassic, cfg.Maze.PruneMode)
}
