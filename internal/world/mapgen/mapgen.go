// Package mapgen generates world and tilemap description files from Perlin
// noise. Noise is sampled in world space, so terrain continues across
// tilemap borders.
package mapgen

import (
	"fmt"

	"github.com/aquilax/go-perlin"

	"chosenoffset.com/tilepush/internal/world"
	"chosenoffset.com/tilepush/internal/world/maploader"
)

// Options tunes the generated terrain. Noise values are in [0, 1].
type Options struct {
	Seed int64
	// Scale converts tile coordinates to noise space.
	Scale float64
	// Cells with noise below VoidBelow are holes.
	VoidBelow float64
	// Cells with noise above WallAbove hold a wall.
	WallAbove float64
	// Every PushableEvery-th wall is pushable. Zero disables pushable walls.
	PushableEvery int
}

// DefaultOptions gives mostly open ground with scattered walls.
var DefaultOptions = Options{
	Seed:          1,
	Scale:         0.23,
	VoidBelow:     0.3,
	WallAbove:     0.62,
	PushableEvery: 3,
}

// Generator produces tilemaps from one noise field.
type Generator struct {
	opts  Options
	noise *perlin.Perlin
}

// New seeds a noise field from opts.Seed.
func New(opts Options) *Generator {
	alpha := 2.0
	beta := 2.0
	n := int32(3)
	return &Generator{opts: opts, noise: perlin.NewPerlin(alpha, beta, n, opts.Seed)}
}

// sample returns the noise at world tile (x, y), mapped to [0, 1].
func (g *Generator) sample(x, y int) float64 {
	v := g.noise.Noise2D(float64(x)*g.opts.Scale, float64(y)*g.opts.Scale)
	return (v + 1) / 2
}

// Tilemap generates the tilemap placed at worldPos.
func (g *Generator) Tilemap(name string, worldPos world.Vec2i) *maploader.MapFile {
	cols, rows := world.TilesCount.X, world.TilesCount.Y
	mf := &maploader.MapFile{
		Name:      name,
		Dimension: [2]int{cols, rows},
		Grid:      make([][]*int, rows),
	}

	walls := 0
	for y := range rows {
		mf.Grid[y] = make([]*int, cols)
		for x := range cols {
			v := g.sample(worldPos.X*cols+x, worldPos.Y*rows+y)
			switch {
			case v < g.opts.VoidBelow:
			case v > g.opts.WallAbove:
				walls++
				if g.opts.PushableEvery > 0 && walls%g.opts.PushableEvery == 0 {
					mf.Grid[y][x] = tag(world.TagPushableWall)
				} else {
					mf.Grid[y][x] = tag(world.TagWall)
				}
			default:
				mf.Grid[y][x] = tag(world.TagGround)
			}
		}
	}
	return mf
}

// World generates a fully populated world of cols×rows tilemaps named
// "<name>_<x>_<y>". The player starts on tilemap (0, 0) at start, which is
// forced to ground.
func (g *Generator) World(name string, cols, rows int, start world.Vec2i) (*maploader.WorldFile, []*maploader.MapFile) {
	wf := &maploader.WorldFile{
		Name:      name,
		Player:    [4]int{0, 0, start.X, start.Y},
		Dimension: [2]int{cols, rows},
		Grid:      make([][]*string, rows),
	}

	var tilemaps []*maploader.MapFile
	for y := range rows {
		wf.Grid[y] = make([]*string, cols)
		for x := range cols {
			tilemapName := fmt.Sprintf("%s_%d_%d", name, x, y)
			wf.Grid[y][x] = &tilemapName
			tilemaps = append(tilemaps, g.Tilemap(tilemapName, world.Vec2i{X: x, Y: y}))
		}
	}
	tilemaps[0].Grid[start.Y][start.X] = tag(world.TagGround)
	return wf, tilemaps
}

func tag(v int) *int {
	return &v
}
