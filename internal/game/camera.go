package game

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera follows a point in world space and projects it to the screen.
// The transform is recomputed per frame and handed to drawing explicitly.
type Camera struct {
	Rotation CamRotation
	// Target is the followed point on the XZ plane, in tiles.
	Target mgl32.Vec2
	// Zoom is the size of one tile in pixels.
	Zoom float32
}

// NewCamera returns a camera looking at target.
func NewCamera(target mgl32.Vec3, zoom float32) *Camera {
	return &Camera{Target: mgl32.Vec2{target.X(), target.Z()}, Zoom: zoom}
}

// Follow eases the camera toward target.
func (c *Camera) Follow(target mgl32.Vec3, dt float64) {
	t := mgl32.Clamp(float32(moveSpeed*dt), 0, 1)
	goal := mgl32.Vec2{target.X(), target.Z()}
	c.Target = c.Target.Add(goal.Sub(c.Target).Mul(t))
}

// Transform maps world XZ coordinates (in tiles, offset applied) to screen
// pixels for a screen of the given size.
func (c *Camera) Transform(screenWidth, screenHeight int, offset mgl32.Vec2) mgl32.Mat3 {
	center := mgl32.Translate2D(float32(screenWidth)/2, float32(screenHeight)/2)
	rotate := mgl32.HomogRotate2D(c.Rotation.Angle())
	scale := mgl32.Scale2D(c.Zoom, c.Zoom)
	follow := mgl32.Translate2D(offset.X()-c.Target.X(), offset.Y()-c.Target.Y())
	return center.Mul3(rotate).Mul3(scale).Mul3(follow)
}

// project transforms the world rectangle at (x, z) of size w×h and returns
// the screen rectangle covering it.
func project(m mgl32.Mat3, x, z, w, h float32) (sx, sy, sw, sh float32) {
	a := m.Mul3x1(mgl32.Vec3{x, z, 1})
	b := m.Mul3x1(mgl32.Vec3{x + w, z + h, 1})
	sx, sy = min(a.X(), b.X()), min(a.Y(), b.Y())
	return sx, sy, max(a.X(), b.X()) - sx, max(a.Y(), b.Y()) - sy
}
