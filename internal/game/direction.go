package game

import (
	"math"

	"chosenoffset.com/tilepush/internal/world"
)

// MoveDirection is a movement intent relative to the screen.
type MoveDirection int

const (
	DirNone MoveDirection = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// GridDelta returns the unit step on the tilemap grid. Rows grow downward.
func (d MoveDirection) GridDelta() world.Vec2i {
	switch d {
	case DirUp:
		return world.Vec2i{X: 0, Y: -1}
	case DirDown:
		return world.Vec2i{X: 0, Y: 1}
	case DirLeft:
		return world.Vec2i{X: -1, Y: 0}
	case DirRight:
		return world.Vec2i{X: 1, Y: 0}
	default:
		return world.Vec2i{}
	}
}

// DirectionName returns a human readable name for a direction.
func DirectionName(d MoveDirection) string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// CamRotation is the side the camera looks at the world from.
type CamRotation int

const (
	CamBehind CamRotation = iota
	CamFromRight
	CamForward
	CamFromLeft
)

// Next rotates the camera a quarter turn clockwise.
func (r CamRotation) Next() CamRotation {
	return (r + 1) % 4
}

// Prev rotates the camera a quarter turn counter-clockwise.
func (r CamRotation) Prev() CamRotation {
	return (r + 3) % 4
}

// Angle returns the screen rotation applied to the world, in radians.
func (r CamRotation) Angle() float32 {
	switch r {
	case CamFromRight:
		return math.Pi / 2
	case CamForward:
		return math.Pi
	case CamFromLeft:
		return -math.Pi / 2
	default:
		return 0
	}
}

// rotated[r][d] is the grid direction screen direction d means when the
// camera has rotation r.
var rotated = [4][5]MoveDirection{
	CamBehind:    {DirNone, DirUp, DirDown, DirLeft, DirRight},
	CamFromRight: {DirNone, DirLeft, DirRight, DirDown, DirUp},
	CamForward:   {DirNone, DirDown, DirUp, DirRight, DirLeft},
	CamFromLeft:  {DirNone, DirRight, DirLeft, DirUp, DirDown},
}

// Convert maps a screen-relative direction to the grid direction it means
// under this rotation.
func (r CamRotation) Convert(d MoveDirection) MoveDirection {
	return rotated[r%4][d]
}
