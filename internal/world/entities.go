package world

import "chosenoffset.com/tilepush/internal/arena"

// Entities owns the arenas backing the world's mutable objects.
type Entities struct {
	Tilemaps *arena.Arena[Tilemap]
	Walls    *arena.Arena[Wall]
}

// Capacities sizes the arenas of an Entities.
type Capacities struct {
	Tilemaps int // item count
	WallsMB  int // byte budget in megabytes
}

// DefaultCapacities fits one tilemap per world cell and 1 MB of walls.
var DefaultCapacities = Capacities{
	Tilemaps: tilemapsCols * tilemapsRows,
	WallsMB:  1,
}

// NewEntities allocates the arenas.
func NewEntities(c Capacities) *Entities {
	return &Entities{
		Tilemaps: arena.New[Tilemap](c.Tilemaps),
		Walls:    arena.NewSized[Wall](c.WallsMB),
	}
}

// Tilemap resolves h. It panics on a stale handle.
func (e *Entities) Tilemap(h arena.Handle[Tilemap]) *Tilemap {
	return e.Tilemaps.Get(h)
}

// TileAt returns the tile pos points to.
func (e *Entities) TileAt(pos AbsolutePosition) Tile {
	return e.Tilemaps.Get(pos.Handle).At(pos.Tilemap)
}

// SetTile writes value at the cell pos points to.
func (e *Entities) SetTile(pos AbsolutePosition, value Tile) {
	e.Tilemaps.Get(pos.Handle).Set(pos.Tilemap, value)
}
