// Package render abstracts the graphics, input and window backend so game
// logic never imports it directly.
package render

import (
	"errors"
	"image/color"
)

// ErrQuit is returned from Game.Update to end the game loop cleanly.
var ErrQuit = errors.New("quit")

// Renderer draws primitives onto images.
type Renderer interface {
	// FillRect draws a filled rectangle.
	FillRect(dst Image, x, y, width, height float32, clr color.Color)
	// StrokeRect draws a rectangle outline.
	StrokeRect(dst Image, x, y, width, height, strokeWidth float32, clr color.Color)

	// DrawText draws debug text with the backend's built-in font.
	DrawText(dst Image, text string, x, y int)
	// MeasureText returns the size of text drawn with DrawText.
	MeasureText(text string) (width, height int)
}

// Image is a surface that can be drawn to.
type Image interface {
	Size() (width, height int)
	Fill(clr color.Color)
}

// InputManager reports keyboard state.
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
}

// Key represents a keyboard key.
type Key int

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyQ // rotate camera left
	KeyE // rotate camera right
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyTab // toggle debug overlay
	KeyEscape
)

// Game is driven by the Engine once per frame.
type Game interface {
	// Update advances game state. It is called TPS times per second.
	Update() error

	// Draw draws the game screen.
	Draw(screen Image)

	// Layout accepts the window size and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine owns the window and the frame loop.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)
	SetWindowResizable(resizable bool)

	// SetTPS sets the target number of Update calls per second.
	SetTPS(tps int)

	// RunGame blocks until the game ends. A Game returning ErrQuit ends it
	// without error.
	RunGame(game Game) error
}
