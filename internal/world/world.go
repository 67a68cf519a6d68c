// Package world models the game world as a grid of tilemaps, each tilemap a
// grid of tiles, and resolves moves across tilemap borders.
package world

import (
	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/tilepush/internal/arena"
)

const (
	tilesCols    = 10
	tilesRows    = 13
	tilemapsCols = 5
	tilemapsRows = 7
)

var (
	// TilesCount is the number of cells in every tilemap, columns by rows.
	TilesCount = Vec2i{tilesCols, tilesRows}
	// TilemapsCount is the number of tilemap slots in the world, columns by rows.
	TilemapsCount = Vec2i{tilemapsCols, tilemapsRows}
)

// World places tilemaps on a fixed grid. Empty cells hold the zero handle.
type World struct {
	Name   string
	Offset mgl32.Vec2

	grid [tilemapsRows][tilemapsCols]arena.Handle[Tilemap]
}

// Sibling is a neighbouring tilemap and where it sits on the world grid.
type Sibling struct {
	Handle arena.Handle[Tilemap]
	World  Vec2i
}

var (
	orthogonalDeltas = []Vec2i{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	diagonalDeltas   = []Vec2i{{-1, 1}, {1, 1}, {1, -1}, {-1, -1}}
)

// New returns an empty world.
func New(name string) *World {
	return &World{Name: name}
}

// SetTilemap places h at worldPos. A zero handle clears the cell. It panics
// when worldPos is outside the world grid.
func (w *World) SetTilemap(worldPos Vec2i, h arena.Handle[Tilemap]) {
	w.grid[worldPos.Y][worldPos.X] = h
}

// GetTilemap returns the tilemap placed at worldPos. ok is false when
// worldPos is outside the world or no tilemap is placed there.
func (w *World) GetTilemap(worldPos Vec2i) (h arena.Handle[Tilemap], ok bool) {
	if !worldPos.In(TilemapsCount) {
		return arena.Handle[Tilemap]{}, false
	}
	h = w.grid[worldPos.Y][worldPos.X]
	return h, !h.IsZero()
}

// Tilemaps returns every placed tilemap, row by row.
func (w *World) Tilemaps() []Sibling {
	var placed []Sibling
	for y := range w.grid {
		for x, h := range w.grid[y] {
			if !h.IsZero() {
				placed = append(placed, Sibling{Handle: h, World: Vec2i{x, y}})
			}
		}
	}
	return placed
}

// GetSiblingTilemaps returns the tilemaps placed next to worldPos: the four
// orthogonal neighbours, plus the four diagonal ones when diagonal is set.
func (w *World) GetSiblingTilemaps(worldPos Vec2i, diagonal bool) []Sibling {
	var siblings []Sibling
	collect := func(deltas []Vec2i) {
		for _, d := range deltas {
			pos := worldPos.Add(d)
			if h, ok := w.GetTilemap(pos); ok {
				siblings = append(siblings, Sibling{Handle: h, World: pos})
			}
		}
	}
	collect(orthogonalDeltas)
	if diagonal {
		collect(diagonalDeltas)
	}
	return siblings
}

// GetNextPosition resolves a move of delta from position. Moves inside the
// current tilemap keep its handle. A move past a tilemap edge lands on the
// opposite edge of the neighbouring tilemap; only the overflowing axis is
// wrapped. ok is false when the neighbour is outside the world or missing.
func (w *World) GetNextPosition(position AbsolutePosition, delta Vec2i) (next AbsolutePosition, ok bool) {
	candidate := position.Add(delta)

	if candidate.Tilemap.In(TilesCount) {
		return AbsolutePosition{
			World:   position.World,
			Tilemap: candidate.Tilemap,
			Handle:  position.Handle,
		}, true
	}

	worldPos := position.World
	tile := candidate.Tilemap

	switch {
	case tile.X >= TilesCount.X:
		worldPos.X += delta.X
		tile.X = 0
	case tile.X < 0:
		worldPos.X += delta.X
		tile.X = TilesCount.X - 1
	}
	switch {
	case tile.Y >= TilesCount.Y:
		worldPos.Y += delta.Y
		tile.Y = 0
	case tile.Y < 0:
		worldPos.Y += delta.Y
		tile.Y = TilesCount.Y - 1
	}

	if !worldPos.In(TilemapsCount) {
		return AbsolutePosition{}, false
	}

	h, ok := w.GetTilemap(worldPos)
	if !ok {
		return AbsolutePosition{}, false
	}
	return AbsolutePosition{World: worldPos, Tilemap: tile, Handle: h}, true
}

// Teardown removes every placed tilemap and its walls from entities and
// empties the grid.
func (w *World) Teardown(entities *Entities) {
	for _, placed := range w.Tilemaps() {
		tilemap := entities.Tilemaps.Get(placed.Handle)
		for _, wall := range tilemap.Walls() {
			entities.Walls.Remove(wall)
		}
		entities.Tilemaps.Remove(placed.Handle)
		w.SetTilemap(placed.World, arena.Handle[Tilemap]{})
	}
}
