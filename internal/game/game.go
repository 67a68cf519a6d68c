// Package game ties the world to input and rendering: it resolves player
// moves each frame and draws the tilemaps around the player.
package game

import (
	"go.uber.org/zap"

	"chosenoffset.com/tilepush/internal/config"
	"chosenoffset.com/tilepush/internal/engine"
	"chosenoffset.com/tilepush/internal/render"
	"chosenoffset.com/tilepush/internal/world"
)

// messageDuration is how long, in seconds, a tilemap name stays on screen.
const messageDuration = 2.0

// Game holds all game state and logic.
type Game struct {
	World    *world.World
	Entities *world.Entities
	Player   *Player
	Camera   *Camera

	cfg      *config.Config
	log      *zap.Logger
	renderer render.Renderer
	input    render.InputManager
	clock    *engine.Clock
	repeat   *KeyRepeater
	debug    *DebugOverlay
	message  *Message

	frame int
	moves int
}

// New creates a game over an already built world. start is the player's
// starting position.
func New(cfg *config.Config, w *world.World, entities *world.Entities, start world.AbsolutePosition,
	renderer render.Renderer, input render.InputManager, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	player := NewPlayer(start)
	debug := NewDebugOverlay(cfg.Arena.DebugLines)
	debug.Visible = cfg.Render.ShowDebug

	return &Game{
		World:    w,
		Entities: entities,
		Player:   player,
		Camera:   NewCamera(player.FloatPos, float32(cfg.Render.TileSize)),
		cfg:      cfg,
		log:      log,
		renderer: renderer,
		input:    input,
		clock:    engine.NewClock(),
		repeat:   NewKeyRepeater(cfg.Input.RepeatDelay.Duration),
		debug:    debug,
	}
}

// Update handles game logic updates.
func (g *Game) Update() error {
	ft := g.clock.Tick()
	g.frame++
	g.debug.Begin()

	if g.input.IsKeyJustPressed(render.KeyEscape) {
		g.log.Info("quit requested", zap.Int("frames", g.frame), zap.Int("moves", g.moves))
		return render.ErrQuit
	}
	if g.input.IsKeyJustPressed(render.KeyTab) {
		g.debug.Visible = !g.debug.Visible
	}
	if g.input.IsKeyJustPressed(render.KeyQ) {
		g.Camera.Rotation = g.Camera.Rotation.Prev()
	}
	if g.input.IsKeyJustPressed(render.KeyE) {
		g.Camera.Rotation = g.Camera.Rotation.Next()
	}

	if dir, ok := g.repeat.Poll(g.input, ft.Dt); ok {
		g.move(g.Camera.Rotation.Convert(dir))
	}

	if g.message != nil && !g.message.Update(ft.Dt) {
		g.message = nil
	}

	g.Player.Update(ft.Dt)
	for _, wall := range g.Entities.Walls.All() {
		wall.FloatPos = approach(wall.FloatPos, wall.Position.FloatPos(1), ft.Dt)
	}
	g.Camera.Follow(g.Player.FloatPos, ft.Dt)

	g.debug.Printf("frame %d  dt %.4f", g.frame, ft.Dt)
	g.debug.Printf("player %s", g.Player.Position)
	g.debug.Printf("tilemaps %d/%d  walls %d/%d",
		g.Entities.Tilemaps.Len(), g.Entities.Tilemaps.Cap(),
		g.Entities.Walls.Len(), g.Entities.Walls.Cap())
	return nil
}

func (g *Game) move(dir MoveDirection) {
	from := g.Player.Position
	result := g.Player.TryMove(g.World, g.Entities, dir)
	if result == MoveBlocked {
		return
	}
	g.moves++
	if from.Handle != g.Player.Position.Handle {
		name := g.Entities.Tilemap(g.Player.Position.Handle).Name
		g.log.Debug("entered tilemap",
			zap.Stringer("world", g.Player.Position.World),
			zap.String("name", name),
		)
		g.message = NewMessage(messageDuration, "%s", name)
	}
	g.debug.Printf("%s %s", result, DirectionName(dir))
}

// Message returns the message currently on screen, or nil.
func (g *Game) Message() *Message {
	return g.message
}

// Layout returns the configured logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}
