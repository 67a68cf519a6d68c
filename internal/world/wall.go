package world

import "github.com/go-gl/mathgl/mgl32"

// Wall is an obstacle entity. Pushable walls can be shoved one cell by the
// player.
type Wall struct {
	Position AbsolutePosition
	Pushable bool

	// FloatPos is the rendered position in tile units; it trails Position
	// while animating.
	FloatPos mgl32.Vec3
}

// NewWall creates a wall at pos.
func NewWall(pos AbsolutePosition, pushable bool) Wall {
	return Wall{
		Position: pos,
		Pushable: pushable,
		FloatPos: pos.FloatPos(1),
	}
}
