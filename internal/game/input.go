package game

import (
	"time"

	"chosenoffset.com/tilepush/internal/engine"
	"chosenoffset.com/tilepush/internal/render"
)

type keyBinding struct {
	key render.Key
	dir MoveDirection
}

var moveBindings = []keyBinding{
	{render.KeyW, DirUp}, {render.KeyUp, DirUp},
	{render.KeyS, DirDown}, {render.KeyDown, DirDown},
	{render.KeyA, DirLeft}, {render.KeyLeft, DirLeft},
	{render.KeyD, DirRight}, {render.KeyRight, DirRight},
}

// KeyRepeater turns movement keys into directions: once on press, then
// every delay while the key stays held.
type KeyRepeater struct {
	held    keyBinding
	holding bool
	timer   *engine.Timer
}

// NewKeyRepeater returns a repeater firing every delay while a key is held.
func NewKeyRepeater(delay time.Duration) *KeyRepeater {
	d := delay.Seconds()
	return &KeyRepeater{timer: engine.NewTimer(d, d)}
}

// Poll returns the direction to move this frame, if any.
func (r *KeyRepeater) Poll(input render.InputManager, dt float64) (MoveDirection, bool) {
	for _, b := range moveBindings {
		if input.IsKeyJustPressed(b.key) {
			r.held = b
			r.holding = true
			r.timer.Reset()
			return b.dir, true
		}
	}

	if !r.holding {
		return DirNone, false
	}
	if !input.IsKeyPressed(r.held.key) {
		r.holding = false
		r.timer.Reset()
		return DirNone, false
	}
	if r.timer.IsPassed(dt) {
		return r.held.dir, true
	}
	return DirNone, false
}
