package object

import (
	"image/color"

	"github.com/tomz197/pong/internal/config"
	"github.com/tomz197/pong/internal/physics"
	"github.com/tomz197/pong/internal/render"
)

// Behavior selects how a paddle decides which way to move each frame.
type Behavior int

const (
	Human    Behavior = iota // Follows the Up/Down keys
	Tracking                 // Chases the ball's height
)

func (b Behavior) String() string {
	switch b {
	case Human:
		return "human"
	case Tracking:
		return "tracking"
	default:
		return "unknown"
	}
}

// PaddleInput is everything a paddle may look at during a tick.
// Human paddles read the keys, tracking paddles read BallY.
type PaddleInput struct {
	Up    bool
	Down  bool
	BallY float64
}

// Paddle is a vertical bat. X is fixed after creation; Y is the top edge
// and always stays within [0, court height - Height].
type Paddle struct {
	X, Y          float64
	Width, Height float64
	Speed         int
	Roundness     float64
	Color         color.RGBA
	Behavior      Behavior

	screen Screen
}

// NewPaddle creates a paddle with its top-left corner at (x, y) using the
// paddle geometry from s.
func NewPaddle(behavior Behavior, x, y float64, s config.Settings) *Paddle {
	return &Paddle{
		X:         x,
		Y:         y,
		Width:     s.PaddleWidth,
		Height:    s.PaddleHeight,
		Speed:     s.PaddleSpeed,
		Roundness: s.PaddleRoundness,
		Color:     s.Palette.Paddle,
		Behavior:  behavior,
		screen:    NewScreen(s.ScreenWidth, s.ScreenHeight),
	}
}

// Tick moves the paddle one frame and keeps it on the court.
func (p *Paddle) Tick(in PaddleInput) {
	p.Y += float64(p.direction(in) * p.Speed)
	p.limitMovement()
}

// direction returns -1 (up), 0 or +1 (down).
func (p *Paddle) direction(in PaddleInput) int {
	switch p.Behavior {
	case Human:
		// Up wins when both keys are held.
		if in.Up {
			return -1
		} else if in.Down {
			return 1
		}
		return 0
	case Tracking:
		// No dead zone: a paddle level with the ball keeps moving down.
		if p.Y+p.Height/2 > in.BallY {
			return -1
		}
		return 1
	default:
		return 0
	}
}

func (p *Paddle) limitMovement() {
	p.Y = physics.Clamp(p.Y, 0, float64(p.screen.Height)-p.Height)
}

// Rect returns the paddle's bounds for collision tests.
func (p *Paddle) Rect() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// Draw renders the paddle as a rounded rectangle.
func (p *Paddle) Draw(r render.Renderer) {
	r.FillRoundedRect(p.X, p.Y, p.Width, p.Height, p.Roundness, p.Color)
}
