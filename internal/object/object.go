// Package object holds the court entities: the ball and the paddles.
package object

import "github.com/tomz197/pong/internal/render"

// Screen represents the court dimensions in logical pixels.
type Screen struct {
	Width   int
	Height  int
	CenterX int
	CenterY int
}

// NewScreen creates a Screen with its center precomputed.
func NewScreen(width, height int) Screen {
	return Screen{
		Width:   width,
		Height:  height,
		CenterX: width / 2,
		CenterY: height / 2,
	}
}

// Object is a drawable court entity.
type Object interface {
	// Draw renders the object. It never mutates state.
	Draw(r render.Renderer)
}

var (
	_ Object = (*Ball)(nil)
	_ Object = (*Paddle)(nil)
)
