package world

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"chosenoffset.com/tilepush/internal/arena"
	"chosenoffset.com/tilepush/internal/world/maploader"
)

var (
	// ErrNoPlayerTilemap is returned when the player start points at a world
	// cell without a tilemap, or at a cell outside the tilemap.
	ErrNoPlayerTilemap = errors.New("no tilemap at player start")
	// ErrPlayerStartBlocked is returned when the player start holds a wall.
	ErrPlayerStartBlocked = errors.New("player start is blocked")
)

// NewLoader returns a maploader.Loader bounded by the world constants.
func NewLoader(worldPath, tilemapsDir string) *maploader.Loader {
	return &maploader.Loader{
		WorldPath:   worldPath,
		TilemapsDir: tilemapsDir,
		MaxWorld:    [2]int{TilemapsCount.X, TilemapsCount.Y},
		MaxTilemap:  [2]int{TilesCount.X, TilesCount.Y},
	}
}

// Build loads the world description through loader, inserts every tilemap
// and wall into entities, and places the player marker. It returns the world
// and the player's starting position. Positions are in tile units.
//
// On error, everything Build inserted into entities is removed again.
func Build(loader *maploader.Loader, entities *Entities, log *zap.Logger) (*World, AbsolutePosition, error) {
	if log == nil {
		log = zap.NewNop()
	}

	wf, err := loader.LoadWorld()
	if err != nil {
		return nil, AbsolutePosition{}, err
	}

	w := New(wf.Name)
	w.Offset = mgl32.Vec2{wf.Offset[0], wf.Offset[1]}
	fail := func(err error) (*World, AbsolutePosition, error) {
		w.Teardown(entities)
		return nil, AbsolutePosition{}, err
	}

	for row := 0; row < wf.Dimension[1]; row++ {
		for col := 0; col < wf.Dimension[0]; col++ {
			name, ok := wf.Cell(col, row)
			if !ok {
				continue
			}
			mf, err := loader.LoadTilemap(name)
			if err != nil {
				return fail(fmt.Errorf("tilemap %q at %d,%d: %w", name, col, row, err))
			}

			worldPos := Vec2i{col, row}
			tilemap := TilemapFromFile(mf, worldPos, entities)
			h := entities.Tilemaps.Insert(tilemap)
			attachWalls(entities.Tilemaps.Get(h), h, entities.Walls)
			w.SetTilemap(worldPos, h)

			log.Debug("tilemap loaded",
				zap.String("name", name),
				zap.Stringer("world", worldPos),
				zap.Stringer("handle", h),
			)
		}
	}

	start := AbsolutePosition{
		World:   Vec2i{wf.Player[0], wf.Player[1]},
		Tilemap: Vec2i{wf.Player[2], wf.Player[3]},
	}
	h, ok := w.GetTilemap(start.World)
	if !ok || !start.Tilemap.In(TilesCount) {
		return fail(fmt.Errorf("%w: %s", ErrNoPlayerTilemap, start))
	}
	start.Handle = h
	if tile := entities.TileAt(start); tile.Kind == TileWall {
		return fail(fmt.Errorf("%w: %s holds a %s", ErrPlayerStartBlocked, start, tile.Kind))
	}
	entities.SetTile(start, PlayerMarker())

	log.Info("world built",
		zap.String("world", w.Name),
		zap.Int("tilemaps", entities.Tilemaps.Len()),
		zap.Int("walls", entities.Walls.Len()),
		zap.Stringer("player", start),
	)
	return w, start, nil
}

// TilemapFromFile decodes mf's tags into tiles. Wall tags insert a new Wall
// into entities. worldPos is where the tilemap will be placed.
func TilemapFromFile(mf *maploader.MapFile, worldPos Vec2i, entities *Entities) Tilemap {
	tilemap := NewTilemap(mf.Name)
	tilemap.Pathfile = mf.Pathfile

	for row := 0; row < mf.Dimension[1]; row++ {
		for col := 0; col < mf.Dimension[0]; col++ {
			cell := Vec2i{col, row}
			tag, ok := mf.Tag(col, row)
			if !ok {
				continue
			}
			switch tag {
			case TagGround:
				tilemap.Set(cell, Ground())
			case TagWall, TagPushableWall:
				pos := AbsolutePosition{World: worldPos, Tilemap: cell}
				wall := entities.Walls.Insert(NewWall(pos, tag == TagPushableWall))
				tilemap.Set(cell, WallTile(wall))
			}
		}
	}
	return tilemap
}

// attachWalls stores the tilemap handle in each of its walls' positions.
func attachWalls(tilemap *Tilemap, h arena.Handle[Tilemap], walls *arena.Arena[Wall]) {
	for _, wh := range tilemap.Walls() {
		walls.Get(wh).Position.Handle = h
	}
}
