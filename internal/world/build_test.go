package world

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const testWorldJSON = `{
	"name": "test world",
	"offset": [1.5, -2],
	"player": [0, 0, 1, 1],
	"dimension": [3, 1],
	"grid": [["a", "b", null]]
}`

const testTilemapA = `{
	"name": "a",
	"dimension": [10, 13],
	"grid": [
		[1, 1, 1, 1, 1, 1, 1, 1, 1, 1],
		[1, 1, 2, 3, 1, 1, 1, 1, 1, 1],
		[null, 0, 1]
	]
}`

const testTilemapB = `{
	"name": "b",
	"pathfile": "custom/b.json",
	"dimension": [10, 13],
	"grid": [[1, 1, 1, 1, 1, 1, 1, 1, 1, 3]]
}`

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestBuildFromJSON(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"world.json": testWorldJSON,
		"a.json":     testTilemapA,
		"b.json":     testTilemapB,
	})
	entities := NewEntities(DefaultCapacities)
	loader := NewLoader(filepath.Join(dir, "world.json"), dir+string(filepath.Separator))

	w, start, err := Build(loader, entities, zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.Equal(t, "test world", w.Name)
	assert.InDelta(t, 1.5, w.Offset.X(), 1e-6)
	assert.InDelta(t, -2, w.Offset.Y(), 1e-6)
	assert.Equal(t, 2, entities.Tilemaps.Len())
	assert.Equal(t, 3, entities.Walls.Len())

	a, ok := w.GetTilemap(Vec2i{0, 0})
	require.True(t, ok)
	b, ok := w.GetTilemap(Vec2i{1, 0})
	require.True(t, ok)
	_, ok = w.GetTilemap(Vec2i{2, 0})
	assert.False(t, ok)

	assert.Equal(t, AbsolutePosition{World: Vec2i{0, 0}, Tilemap: Vec2i{1, 1}, Handle: a}, start)
	tmA := entities.Tilemap(a)
	assert.Equal(t, PlayerMarker(), tmA.GetTile(1, 1))
	assert.Equal(t, Ground(), tmA.GetTile(0, 0))
	assert.Equal(t, Void(), tmA.GetTile(0, 2), "null tag")
	assert.Equal(t, Void(), tmA.GetTile(1, 2), "unknown tag")
	assert.Equal(t, Ground(), tmA.GetTile(2, 2))
	assert.Equal(t, Void(), tmA.GetTile(5, 5), "absent cell")

	wallTile := tmA.GetTile(2, 1)
	require.Equal(t, TileWall, wallTile.Kind)
	wall := entities.Walls.Get(wallTile.Wall)
	assert.False(t, wall.Pushable)
	assert.Equal(t, AbsolutePosition{World: Vec2i{0, 0}, Tilemap: Vec2i{2, 1}, Handle: a}, wall.Position)

	pushTile := tmA.GetTile(3, 1)
	require.Equal(t, TileWall, pushTile.Kind)
	assert.True(t, entities.Walls.Get(pushTile.Wall).Pushable)

	tmB := entities.Tilemap(b)
	assert.Equal(t, "custom/b.json", tmB.Pathfile)
	assert.Equal(t, "b", tmB.Name)
	assert.Equal(t, filepath.Join(dir, "a.json"), tmA.Pathfile)
	bWall := entities.Walls.Get(tmB.GetTile(9, 0).Wall)
	assert.Equal(t, b, bWall.Position.Handle)
}

func TestBuildFromYAML(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"world.yaml": `
name: yaml world
offset: [0, 0]
player: [1, 0, 0, 0]
dimension: [2, 1]
grid:
  - [null, only]
`,
		"only.yaml": `
name: only
dimension: [10, 13]
grid:
  - [1, 1, 2]
`,
	})
	entities := NewEntities(DefaultCapacities)
	loader := NewLoader(filepath.Join(dir, "world.yaml"), dir+"/")

	w, start, err := Build(loader, entities, nil)
	require.NoError(t, err)
	assert.Equal(t, "yaml world", w.Name)
	assert.Equal(t, Vec2i{1, 0}, start.World)

	tm := entities.Tilemap(start.Handle)
	assert.Equal(t, PlayerMarker(), tm.GetTile(0, 0))
	assert.Equal(t, Ground(), tm.GetTile(1, 0))
	assert.Equal(t, TileWall, tm.GetTile(2, 0).Kind)
}

func TestBuildErrors(t *testing.T) {
	t.Run("missing world file", func(t *testing.T) {
		loader := NewLoader(filepath.Join(t.TempDir(), "nope.json"), "")
		_, _, err := Build(loader, NewEntities(DefaultCapacities), nil)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("missing tilemap file", func(t *testing.T) {
		dir := writeFiles(t, map[string]string{"world.json": testWorldJSON, "a.json": testTilemapA})
		loader := NewLoader(filepath.Join(dir, "world.json"), dir+"/")
		entities := NewEntities(DefaultCapacities)
		_, _, err := Build(loader, entities, nil)
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.Contains(t, err.Error(), `tilemap "b"`)
		assert.Equal(t, 0, entities.Tilemaps.Len(), "tilemap a is removed again")
		assert.Equal(t, 0, entities.Walls.Len())
	})

	t.Run("player on hole", func(t *testing.T) {
		dir := writeFiles(t, map[string]string{
			"world.json": `{"name": "w", "player": [2, 0, 0, 0], "dimension": [3, 1], "grid": [["a", "b", null]]}`,
			"a.json":     testTilemapA,
			"b.json":     testTilemapB,
		})
		loader := NewLoader(filepath.Join(dir, "world.json"), dir+"/")
		_, _, err := Build(loader, NewEntities(DefaultCapacities), nil)
		assert.ErrorIs(t, err, ErrNoPlayerTilemap)
	})

	t.Run("player outside tilemap", func(t *testing.T) {
		dir := writeFiles(t, map[string]string{
			"world.json": `{"name": "w", "player": [0, 0, 10, 0], "dimension": [1, 1], "grid": [["a"]]}`,
			"a.json":     testTilemapA,
		})
		loader := NewLoader(filepath.Join(dir, "world.json"), dir+"/")
		_, _, err := Build(loader, NewEntities(DefaultCapacities), nil)
		assert.ErrorIs(t, err, ErrNoPlayerTilemap)
	})

	t.Run("player on wall", func(t *testing.T) {
		dir := writeFiles(t, map[string]string{
			"world.json": `{"name": "w", "player": [0, 0, 2, 1], "dimension": [1, 1], "grid": [["a"]]}`,
			"a.json":     testTilemapA,
		})
		loader := NewLoader(filepath.Join(dir, "world.json"), dir+"/")
		entities := NewEntities(DefaultCapacities)
		_, _, err := Build(loader, entities, nil)
		assert.ErrorIs(t, err, ErrPlayerStartBlocked)
		assert.Equal(t, 0, entities.Tilemaps.Len())
		assert.Equal(t, 0, entities.Walls.Len(), "no wall is left without a tile")
	})
}

func TestBuildRetryAfterFailedLoad(t *testing.T) {
	dir := writeFiles(t, map[string]string{"world.json": testWorldJSON, "a.json": testTilemapA})
	loader := NewLoader(filepath.Join(dir, "world.json"), dir+"/")
	entities := NewEntities(Capacities{Tilemaps: 2, WallsMB: 1})

	_, _, err := Build(loader, entities, nil)
	require.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.json"), []byte(testTilemapB), 0o644))
	w, _, err := Build(loader, entities, nil)
	require.NoError(t, err)
	assert.Len(t, w.Tilemaps(), 2)
	assert.Equal(t, 3, entities.Walls.Len())

	w.Teardown(entities)
	assert.Equal(t, 0, entities.Tilemaps.Len())
	assert.Equal(t, 0, entities.Walls.Len())
}

func TestBuildWallsRestOnTheirCell(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"world.json": testWorldJSON,
		"a.json":     testTilemapA,
		"b.json":     testTilemapB,
	})
	entities := NewEntities(DefaultCapacities)
	_, _, err := Build(NewLoader(filepath.Join(dir, "world.json"), dir+"/"), entities, nil)
	require.NoError(t, err)

	for _, wall := range entities.Walls.All() {
		assert.Equal(t, wall.Position.FloatPos(1), wall.FloatPos)
	}
}

func TestTilemapASCII(t *testing.T) {
	entities := NewEntities(DefaultCapacities)
	tm := NewTilemap("ascii")
	tm.Set(Vec2i{0, 0}, Ground())
	tm.Set(Vec2i{1, 0}, PlayerMarker())
	tm.Set(Vec2i{2, 0}, WallTile(entities.Walls.Insert(NewWall(AbsolutePosition{}, false))))
	tm.Set(Vec2i{3, 0}, WallTile(entities.Walls.Insert(NewWall(AbsolutePosition{}, true))))

	lines := tm.ASCII(entities.Walls)
	assert.Equal(t, ".@#%      \n", lines[:11])
	assert.Len(t, lines, 11*13)
}
