package world

import (
	"strings"

	"chosenoffset.com/tilepush/internal/arena"
)

// Tilemap is one fixed-size grid of tiles. Cells are indexed [y][x].
type Tilemap struct {
	Name     string
	Pathfile string

	grid [tilesRows][tilesCols]Tile
}

// NewTilemap returns a tilemap filled with Void.
func NewTilemap(name string) Tilemap {
	return Tilemap{Name: name}
}

// GetTile returns the tile at (x, y). It panics when the coordinate is
// outside the tilemap.
func (t *Tilemap) GetTile(x, y int) Tile {
	return t.grid[y][x]
}

// At is GetTile for a Vec2i.
func (t *Tilemap) At(pos Vec2i) Tile {
	return t.grid[pos.Y][pos.X]
}

// Set writes value at pos. It panics when pos is outside the tilemap.
func (t *Tilemap) Set(pos Vec2i, value Tile) {
	t.grid[pos.Y][pos.X] = value
}

// FindPlayer returns the cell holding the player marker, if any.
func (t *Tilemap) FindPlayer() (Vec2i, bool) {
	for y := range t.grid {
		for x, tile := range t.grid[y] {
			if tile.Kind == TilePlayer {
				return Vec2i{x, y}, true
			}
		}
	}
	return Vec2i{}, false
}

// Walls returns the handles of every wall placed on the tilemap, row by row.
func (t *Tilemap) Walls() []arena.Handle[Wall] {
	var walls []arena.Handle[Wall]
	for y := range t.grid {
		for _, tile := range t.grid[y] {
			if tile.Kind == TileWall {
				walls = append(walls, tile.Wall)
			}
		}
	}
	return walls
}

// ASCII renders the tilemap one row per line.
func (t *Tilemap) ASCII(walls *arena.Arena[Wall]) string {
	var sb strings.Builder
	for y := range t.grid {
		for _, tile := range t.grid[y] {
			sb.WriteByte(tileGlyph(tile, walls))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func tileGlyph(tile Tile, walls *arena.Arena[Wall]) byte {
	switch tile.Kind {
	case TileGround:
		return '.'
	case TilePlayer:
		return '@'
	case TileWall:
		if walls != nil && walls.Get(tile.Wall).Pushable {
			return '%'
		}
		return '#'
	default:
		return ' '
	}
}
