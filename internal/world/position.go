package world

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/tilepush/internal/arena"
)

// Vec2i is an integer grid coordinate or delta.
type Vec2i struct {
	X, Y int
}

// Add returns v + d.
func (v Vec2i) Add(d Vec2i) Vec2i {
	return Vec2i{v.X + d.X, v.Y + d.Y}
}

// In reports whether 0 <= v.X < bounds.X and 0 <= v.Y < bounds.Y.
func (v Vec2i) In(bounds Vec2i) bool {
	return v.X >= 0 && v.X < bounds.X && v.Y >= 0 && v.Y < bounds.Y
}

func (v Vec2i) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}

// AbsolutePosition addresses a cell anywhere in the world: which tilemap
// (World), which cell inside it (Tilemap), and the handle of that tilemap.
//
// Handle is a cache of the World grid entry at World. It is zero only until
// the position is first placed.
type AbsolutePosition struct {
	World   Vec2i
	Tilemap Vec2i
	Handle  arena.Handle[Tilemap]
}

// Add offsets both coordinates by delta without any wrapping. Bringing the
// result back into tilemap bounds is World.GetNextPosition's job.
func (p AbsolutePosition) Add(delta Vec2i) AbsolutePosition {
	return AbsolutePosition{
		World:   p.World.Add(delta),
		Tilemap: p.Tilemap.Add(delta),
		Handle:  p.Handle,
	}
}

// FloatPos converts the position to continuous world space on the XZ plane,
// with each tile tileSize units wide.
func (p AbsolutePosition) FloatPos(tileSize float32) mgl32.Vec3 {
	tilemapWidth := float32(TilesCount.X) * tileSize
	tilemapHeight := float32(TilesCount.Y) * tileSize

	x := float32(p.World.X)*tilemapWidth + float32(p.Tilemap.X)*tileSize
	z := float32(p.World.Y)*tilemapHeight + float32(p.Tilemap.Y)*tileSize
	return mgl32.Vec3{x, 0, z}
}

func (p AbsolutePosition) String() string {
	return fmt.Sprintf("world%s tile%s %s", p.World, p.Tilemap, p.Handle)
}
