package world

import "chosenoffset.com/tilepush/internal/arena"

// TileKind tags the variant stored in a Tile.
type TileKind uint8

const (
	// TileVoid is an impassable or absent cell. It is the zero value.
	TileVoid TileKind = iota
	// TileGround is a walkable cell.
	TileGround
	// TilePlayer marks the cell the player stands on.
	TilePlayer
	// TileWall holds an obstacle referenced by handle.
	TileWall
)

func (k TileKind) String() string {
	switch k {
	case TileVoid:
		return "void"
	case TileGround:
		return "ground"
	case TilePlayer:
		return "player"
	case TileWall:
		return "wall"
	default:
		return "unknown"
	}
}

// Tile is the state of one tilemap cell. Wall is only meaningful when Kind
// is TileWall. Tiles are comparable with ==.
type Tile struct {
	Kind TileKind
	Wall arena.Handle[Wall]
}

// Ground returns a walkable tile.
func Ground() Tile { return Tile{Kind: TileGround} }

// Void returns an impassable tile.
func Void() Tile { return Tile{} }

// PlayerMarker returns the player tile.
func PlayerMarker() Tile { return Tile{Kind: TilePlayer} }

// WallTile returns a tile holding the wall h.
func WallTile(h arena.Handle[Wall]) Tile { return Tile{Kind: TileWall, Wall: h} }

// IsGround reports whether the tile can be walked onto.
func (t Tile) IsGround() bool { return t.Kind == TileGround }

// Tile tags used by tilemap description files.
const (
	TagGround       = 1
	TagWall         = 2
	TagPushableWall = 3
)
