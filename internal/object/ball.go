package object

import (
	"image/color"
	"math/rand/v2"

	"github.com/tomz197/pong/internal/config"
	"github.com/tomz197/pong/internal/render"
)

// Ball is the bouncing ball. Both velocity components always have the
// same fixed magnitude; only their signs change.
type Ball struct {
	X, Y           int // Center
	SpeedX, SpeedY int // Pixels per frame
	Radius         float64
	Color          color.RGBA

	speed  int
	screen Screen
	rng    *rand.Rand
}

// NewBall creates a ball at the court center moving right and down.
// rng drives the serve direction after every point.
func NewBall(s config.Settings, rng *rand.Rand) *Ball {
	screen := NewScreen(s.ScreenWidth, s.ScreenHeight)
	return &Ball{
		X:      screen.CenterX,
		Y:      screen.CenterY,
		SpeedX: s.BallSpeed,
		SpeedY: s.BallSpeed,
		Radius: s.BallRadius,
		Color:  s.Palette.Ball,
		speed:  s.BallSpeed,
		screen: screen,
		rng:    rng,
	}
}

// Tick advances the ball one frame. A ball reaching the right wall scores
// for the CPU, one reaching the left wall scores for the player. A ball
// that scored is re-served from the center and does not move again until
// the next frame.
func (b *Ball) Tick(playerScore, cpuScore *int) {
	r := int(b.Radius)

	if b.Y+r >= b.screen.Height || b.Y-r <= 0 {
		b.SpeedY = -b.SpeedY
	}

	scored := false
	if b.X+r >= b.screen.Width {
		*cpuScore++
		b.Reset()
		scored = true
	}
	if b.X-r <= 0 {
		*playerScore++
		b.Reset()
		scored = true
	}
	if scored {
		return
	}

	b.X += b.SpeedX
	b.Y += b.SpeedY
}

// Reset puts the ball back at the center and picks each velocity sign
// independently, with equal odds.
func (b *Ball) Reset() {
	b.X = b.screen.CenterX
	b.Y = b.screen.CenterY
	b.SpeedX = b.randomSign() * b.speed
	b.SpeedY = b.randomSign() * b.speed
}

func (b *Ball) randomSign() int {
	if b.rng.IntN(2) == 0 {
		return -1
	}
	return 1
}

// BounceX reverses horizontal travel (paddle hit).
func (b *Ball) BounceX() {
	b.SpeedX = -b.SpeedX
}

// Position returns the center as floats for collision tests.
func (b *Ball) Position() (x, y float64) {
	return float64(b.X), float64(b.Y)
}

// Draw renders the ball as a filled circle.
func (b *Ball) Draw(r render.Renderer) {
	r.FillCircle(float64(b.X), float64(b.Y), b.Radius, b.Color)
}
