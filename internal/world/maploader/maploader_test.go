package maploader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoader(t *testing.T, files map[string]string, world string) *Loader {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return &Loader{
		WorldPath:   filepath.Join(dir, world),
		TilemapsDir: dir + "/",
		MaxWorld:    [2]int{5, 7},
		MaxTilemap:  [2]int{10, 13},
	}
}

func TestLoadWorldJSON(t *testing.T) {
	l := newLoader(t, map[string]string{
		"world.json": `{
			"name": "main",
			"offset": [2.5, 3],
			"player": [1, 2, 3, 4],
			"dimension": [2, 2],
			"grid": [["a", null], [null, "b"]]
		}`,
	}, "world.json")

	wf, err := l.LoadWorld()
	require.NoError(t, err)
	assert.Equal(t, "main", wf.Name)
	assert.Equal(t, [2]float32{2.5, 3}, wf.Offset)
	assert.Equal(t, [4]int{1, 2, 3, 4}, wf.Player)

	name, ok := wf.Cell(0, 0)
	assert.True(t, ok)
	assert.Equal(t, "a", name)
	_, ok = wf.Cell(1, 0)
	assert.False(t, ok)
	name, ok = wf.Cell(1, 1)
	assert.True(t, ok)
	assert.Equal(t, "b", name)
}

func TestLoadWorldValidation(t *testing.T) {
	cases := map[string]struct {
		content string
		err     error
	}{
		"zero dimension": {`{"dimension": [0, 1], "grid": [[]]}`, ErrInvalidDimension},
		"too wide":       {`{"dimension": [6, 1], "grid": [[null, null, null, null, null, null]]}`, ErrInvalidDimension},
		"missing rows":   {`{"dimension": [1, 2], "grid": [["a"]]}`, ErrGridShape},
		"short row":      {`{"dimension": [2, 1], "grid": [["a"]]}`, ErrGridShape},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			l := newLoader(t, map[string]string{"world.json": tc.content}, "world.json")
			_, err := l.LoadWorld()
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestLoadWorldMalformed(t *testing.T) {
	l := newLoader(t, map[string]string{"world.json": `{"name": `}, "world.json")
	_, err := l.LoadWorld()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestLoadTilemap(t *testing.T) {
	l := newLoader(t, map[string]string{
		"world.json": `{}`,
		"room.json":  `{"name": "room", "dimension": [10, 13], "grid": [[1, null, 2], [3]]}`,
	}, "world.json")

	mf, err := l.LoadTilemap("room")
	require.NoError(t, err)
	assert.Equal(t, "room", mf.Name)
	assert.Equal(t, l.TilemapsDir+"room.json", mf.Pathfile)

	tag, ok := mf.Tag(0, 0)
	assert.True(t, ok)
	assert.Equal(t, 1, tag)
	_, ok = mf.Tag(1, 0)
	assert.False(t, ok, "null cell")
	_, ok = mf.Tag(5, 0)
	assert.False(t, ok, "short row")
	_, ok = mf.Tag(0, 5)
	assert.False(t, ok, "missing row")
	tag, _ = mf.Tag(0, 1)
	assert.Equal(t, 3, tag)
}

func TestLoadTilemapTooLarge(t *testing.T) {
	l := newLoader(t, map[string]string{
		"world.json": `{}`,
		"big.json":   `{"dimension": [10, 13], "grid": [[1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1]]}`,
	}, "world.json")

	_, err := l.LoadTilemap("big")
	assert.ErrorIs(t, err, ErrGridShape)
}

func TestTilemapPathFollowsWorldExtension(t *testing.T) {
	l := &Loader{WorldPath: "maps/world.yml", TilemapsDir: "maps/"}
	assert.Equal(t, "maps/a.yml", l.TilemapPath("a"))

	l.WorldPath = "maps/world"
	assert.Equal(t, "maps/a.json", l.TilemapPath("a"))
}

func TestLoadTilemapYAML(t *testing.T) {
	l := newLoader(t, map[string]string{
		"world.yaml": "name: w\n",
		"t.yaml":     "name: t\ndimension: [10, 13]\ngrid:\n  - [1, ~, 2]\n",
	}, "world.yaml")

	mf, err := l.LoadTilemap("t")
	require.NoError(t, err)
	assert.Equal(t, "t", mf.Name)
	_, ok := mf.Tag(1, 0)
	assert.False(t, ok)
	tag, ok := mf.Tag(2, 0)
	assert.True(t, ok)
	assert.Equal(t, 2, tag)
}

func TestWriteFileRoundTrip(t *testing.T) {
	for _, ext := range []string{".json", ".yaml"} {
		t.Run(ext, func(t *testing.T) {
			dir := t.TempDir()
			one, two := 1, 2
			mf := &MapFile{Name: "t", Dimension: [2]int{10, 13}, Grid: [][]*int{{&one, nil, &two}}}
			require.NoError(t, WriteFile(filepath.Join(dir, "t"+ext), mf))

			l := &Loader{WorldPath: filepath.Join(dir, "world"+ext), TilemapsDir: dir + "/", MaxTilemap: [2]int{10, 13}}
			got, err := l.LoadTilemap("t")
			require.NoError(t, err)
			assert.Equal(t, mf.Grid, got.Grid)
		})
	}
}
