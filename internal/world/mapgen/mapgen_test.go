package mapgen

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"chosenoffset.com/tilepush/internal/world"
	"chosenoffset.com/tilepush/internal/world/maploader"
)

func countTags(mf *maploader.MapFile) map[int]int {
	counts := make(map[int]int)
	for _, row := range mf.Grid {
		for _, v := range row {
			if v == nil {
				counts[0]++
			} else {
				counts[*v]++
			}
		}
	}
	return counts
}

func TestTilemapIsDeterministic(t *testing.T) {
	a := New(DefaultOptions).Tilemap("a", world.Vec2i{X: 1, Y: 2})
	b := New(DefaultOptions).Tilemap("a", world.Vec2i{X: 1, Y: 2})
	assert.Equal(t, a, b)

	assert.Equal(t, [2]int{10, 13}, a.Dimension)
	require.Len(t, a.Grid, 13)
	for _, row := range a.Grid {
		assert.Len(t, row, 10)
	}
}

func TestTilemapThresholds(t *testing.T) {
	allGround := New(Options{Seed: 7, Scale: 0.2, VoidBelow: -1, WallAbove: 2})
	counts := countTags(allGround.Tilemap("g", world.Vec2i{}))
	assert.Equal(t, map[int]int{world.TagGround: 130}, counts)

	allWalls := New(Options{Seed: 7, Scale: 0.2, VoidBelow: -1, WallAbove: -1, PushableEvery: 2})
	counts = countTags(allWalls.Tilemap("w", world.Vec2i{}))
	assert.Equal(t, map[int]int{world.TagWall: 65, world.TagPushableWall: 65}, counts)

	allVoid := New(Options{Seed: 7, Scale: 0.2, VoidBelow: 2, WallAbove: 3})
	counts = countTags(allVoid.Tilemap("v", world.Vec2i{}))
	assert.Equal(t, map[int]int{0: 130}, counts)
}

func TestGeneratedWorldBuilds(t *testing.T) {
	dir := t.TempDir()
	wf, tilemaps := New(DefaultOptions).World("gen", 2, 2, world.Vec2i{X: 4, Y: 6})
	require.Len(t, tilemaps, 4)
	assert.Equal(t, "gen_1_0", *wf.Grid[0][1])

	require.NoError(t, maploader.WriteFile(filepath.Join(dir, "world.json"), wf))
	for _, mf := range tilemaps {
		require.NoError(t, maploader.WriteFile(filepath.Join(dir, mf.Name+".json"), mf))
	}

	entities := world.NewEntities(world.DefaultCapacities)
	loader := world.NewLoader(filepath.Join(dir, "world.json"), dir+"/")
	w, start, err := world.Build(loader, entities, zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.Len(t, w.Tilemaps(), 4)
	assert.Equal(t, world.Vec2i{X: 4, Y: 6}, start.Tilemap)
	assert.Equal(t, world.PlayerMarker(), entities.TileAt(start))
}
