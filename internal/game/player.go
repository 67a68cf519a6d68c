package game

import (
	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/tilepush/internal/world"
)

// Units per second the displayed position closes on its target.
const moveSpeed = 7.0

// MoveResult describes what a move attempt did.
type MoveResult int

const (
	MoveBlocked MoveResult = iota
	MoveStepped
	MovePushed
)

func (r MoveResult) String() string {
	switch r {
	case MoveStepped:
		return "stepped"
	case MovePushed:
		return "pushed"
	default:
		return "blocked"
	}
}

// Player is the player's grid position and its smoothed display position.
type Player struct {
	Position world.AbsolutePosition
	FloatPos mgl32.Vec3
	EndPos   mgl32.Vec3
}

// NewPlayer places the player at pos.
func NewPlayer(pos world.AbsolutePosition) *Player {
	fp := pos.FloatPos(1)
	return &Player{Position: pos, FloatPos: fp, EndPos: fp}
}

// TryMove moves the player one cell in dir if the target is ground, or
// pushes a single pushable wall if the cell beyond it is ground. The
// tilemaps are updated to match. Anything else leaves the world untouched.
func (p *Player) TryMove(w *world.World, e *world.Entities, dir MoveDirection) MoveResult {
	delta := dir.GridDelta()
	if delta == (world.Vec2i{}) {
		return MoveBlocked
	}

	next, ok := w.GetNextPosition(p.Position, delta)
	if !ok {
		return MoveBlocked
	}

	result := MoveStepped
	switch tile := e.TileAt(next); tile.Kind {
	case world.TileGround:
	case world.TileWall:
		if !pushWall(w, e, tile, next, delta) {
			return MoveBlocked
		}
		result = MovePushed
	default:
		return MoveBlocked
	}

	e.SetTile(p.Position, world.Ground())
	e.SetTile(next, world.PlayerMarker())
	p.Position = next
	p.EndPos = next.FloatPos(1)
	return result
}

// pushWall moves the wall at from one cell along delta.
func pushWall(w *world.World, e *world.Entities, tile world.Tile, from world.AbsolutePosition, delta world.Vec2i) bool {
	wall := e.Walls.Get(tile.Wall)
	if !wall.Pushable {
		return false
	}
	to, ok := w.GetNextPosition(from, delta)
	if !ok || !e.TileAt(to).IsGround() {
		return false
	}

	e.SetTile(from, world.Ground())
	e.SetTile(to, tile)
	wall.Position = to
	return true
}

// Update moves the display position toward the grid position.
func (p *Player) Update(dt float64) {
	p.FloatPos = approach(p.FloatPos, p.EndPos, dt)
}

// approach lerps from toward to by moveSpeed*dt, clamped to the target.
func approach(from, to mgl32.Vec3, dt float64) mgl32.Vec3 {
	t := mgl32.Clamp(float32(moveSpeed*dt), 0, 1)
	return from.Add(to.Sub(from).Mul(t))
}
