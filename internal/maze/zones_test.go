package maze

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// placeInZone runs a zone placement to completion.
func placeInZone(g *Grid, rng *rand.Rand, zone Zone, claim TileState) (Point, error) {
	z := NewZonePlacement(g, rng, zone, claim)
	Drain(z, Unlimited)
	return z.Result()
}

func TestInZone(t *testing.T) {
	tests := []struct {
		name string
		zone Zone
		p    Point
		want bool
	}{
		{"random anywhere", ZoneRandom, Point{0, 0}, true},
		{"center middle", ZoneCenter, Point{7, 7}, true},
		{"center lower bound excluded", ZoneCenter, Point{5, 7}, false},
		{"center upper bound excluded", ZoneCenter, Point{7, 10}, false},
		{"center needs both axes", ZoneCenter, Point{7, 2}, false},
		{"outside corner", ZoneOutside, Point{1, 13}, true},
		{"outside needs both axes", ZoneOutside, Point{1, 7}, false},
		{"outside band edge excluded", ZoneOutside, Point{5, 1}, false},
		{"outside far band", ZoneOutside, Point{11, 11}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InZone(tt.zone, tt.p, 15, 15))
		})
	}
}

func TestZonePlacementCenter(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g := carved(t, 15, 15, seed)

		p, err := placeInZone(g, rand.New(rand.NewSource(seed)), ZoneCenter, Start)

		require.NoError(t, err)
		assert.Greater(t, p.Col, 5)
		assert.Less(t, p.Col, 10)
		assert.Greater(t, p.Row, 5)
		assert.Less(t, p.Row, 10)
		assert.Equal(t, Start, g.At(p))
		assert.Equal(t, 1, g.Count(Start))
	}
}

func TestZonePlacementOutside(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g := carved(t, 21, 21, seed)

		p, err := placeInZone(g, rand.New(rand.NewSource(seed)), ZoneOutside, Finish)

		require.NoError(t, err)
		assert.True(t, InZone(ZoneOutside, p, 21, 21), "%v", p)
		assert.Equal(t, Finish, g.At(p))
	}
}

func TestZonePlacementSkipsClaimedCells(t *testing.T) {
	g := carved(t, 9, 9, 1)
	rng := rand.New(rand.NewSource(1))

	first, err := placeInZone(g, rng, ZoneRandom, Start)
	require.NoError(t, err)
	second, err := placeInZone(g, rng, ZoneRandom, Finish)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, Start, g.At(first))
	assert.Equal(t, Finish, g.At(second))
}

func TestZonePlacementNoCandidate(t *testing.T) {
	// On a 3x3 grid the middle third is empty.
	g := carved(t, 3, 3, 1)
	before := g.Clone()

	_, err := placeInZone(g, rand.New(rand.NewSource(1)), ZoneCenter, Unique)

	assert.ErrorIs(t, err, ErrNoCandidate)
	assert.True(t, before.Equal(g))
}

func TestZonePlacementNeverClaimsRooms(t *testing.T) {
	g := openGrid(5, 5)
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			g.Set(row, col, Room)
		}
	}

	_, err := placeInZone(g, rand.New(rand.NewSource(1)), ZoneRandom, Start)
	assert.ErrorIs(t, err, ErrNoCandidate)
}

func TestZonePlacementBudgeted(t *testing.T) {
	g := carved(t, 15, 15, 3)
	z := NewZonePlacement(g, rand.New(rand.NewSource(3)), ZoneCenter, Unique)

	_, err := z.Result()
	assert.ErrorIs(t, err, ErrNotFinished)

	slices := Drain(z, 1)
	p, err := z.Result()
	require.NoError(t, err)
	assert.Equal(t, z.Cursor().Index, slices)
	assert.Equal(t, Unique, g.At(p))
}

func TestUniqueTileJSON(t *testing.T) {
	var ut UniqueTile
	err := json.Unmarshal([]byte(`{"name":"fountain","zone":"center","variants":["fountain_a","fountain_b"]}`), &ut)
	require.NoError(t, err)

	assert.Equal(t, "fountain", ut.Name)
	assert.Equal(t, ZoneCenter, ut.Zone)
	assert.Len(t, ut.Variants, 2)

	err = json.Unmarshal([]byte(`{"zone":"nowhere"}`), &ut)
	assert.Error(t, err)
}
