package game

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/tilepush/internal/render"
	"chosenoffset.com/tilepush/internal/world"
)

var (
	backgroundColor   = color.RGBA{12, 12, 18, 255}
	groundColor       = color.RGBA{70, 78, 66, 255}
	gridColor         = color.RGBA{40, 44, 38, 255}
	wallColor         = color.RGBA{120, 110, 100, 255}
	pushableWallColor = color.RGBA{176, 124, 60, 255}
	playerColor       = color.RGBA{90, 170, 230, 255}
	tilemapEdgeColor  = color.RGBA{200, 200, 90, 255}
)

// Draw draws the game screen.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(backgroundColor)

	width, height := screen.Size()
	view := g.Camera.Transform(width, height, g.World.Offset)
	g.drawWorld(screen, view)

	if g.message != nil {
		g.drawMessage(screen, width, height)
	}
	if g.debug.Visible {
		g.drawDebug(screen)
	}
}

// drawWorld draws the player's tilemap and its neighbours with the view
// transform computed for this frame.
func (g *Game) drawWorld(screen render.Image, view mgl32.Mat3) {
	current := world.Sibling{Handle: g.Player.Position.Handle, World: g.Player.Position.World}
	visible := append([]world.Sibling{current},
		g.World.GetSiblingTilemaps(current.World, g.cfg.Render.DrawDiagonalSiblings)...)

	var walls []mgl32.Vec3
	var pushable []bool
	for _, s := range visible {
		tilemap := g.Entities.Tilemap(s.Handle)
		origin := world.AbsolutePosition{World: s.World}.FloatPos(1)

		for y := range world.TilesCount.Y {
			for x := range world.TilesCount.X {
				tile := tilemap.GetTile(x, y)
				if tile.Kind == world.TileVoid {
					continue
				}
				sx, sy, sw, sh := project(view, origin.X()+float32(x), origin.Z()+float32(y), 1, 1)
				g.renderer.FillRect(screen, sx, sy, sw, sh, groundColor)
				g.renderer.StrokeRect(screen, sx, sy, sw, sh, 1, gridColor)

				if tile.Kind == world.TileWall {
					wall := g.Entities.Walls.Get(tile.Wall)
					walls = append(walls, wall.FloatPos)
					pushable = append(pushable, wall.Pushable)
				}
			}
		}

		sx, sy, sw, sh := project(view, origin.X(), origin.Z(), float32(world.TilesCount.X), float32(world.TilesCount.Y))
		g.renderer.StrokeRect(screen, sx, sy, sw, sh, 2, tilemapEdgeColor)
	}

	for i, pos := range walls {
		clr := wallColor
		if pushable[i] {
			clr = pushableWallColor
		}
		sx, sy, sw, sh := project(view, pos.X()+0.05, pos.Z()+0.05, 0.9, 0.9)
		g.renderer.FillRect(screen, sx, sy, sw, sh, clr)
	}

	p := g.Player.FloatPos
	sx, sy, sw, sh := project(view, p.X()+0.2, p.Z()+0.2, 0.6, 0.6)
	g.renderer.FillRect(screen, sx, sy, sw, sh, playerColor)
}

func (g *Game) drawDebug(screen render.Image) {
	y := 4
	for _, line := range g.debug.Lines() {
		g.renderer.DrawText(screen, line, 4, y)
		_, h := g.renderer.MeasureText(line)
		y += h
	}
}

func (g *Game) drawMessage(screen render.Image, width, height int) {
	tw, th := g.renderer.MeasureText(g.message.Text)
	x := (width - tw) / 2
	y := height - th*3
	a := uint8(200 * g.message.Alpha())
	g.renderer.FillRect(screen, float32(x-6), float32(y-4), float32(tw+12), float32(th+8), color.RGBA{0, 0, 0, a})
	g.renderer.DrawText(screen, g.message.Text, x, y)
}
