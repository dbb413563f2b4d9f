// Package game runs one Pong match: a ball, the player's paddle on the
// right, a tracking CPU paddle on the left and the two scores.
package game

import (
	"math/rand/v2"

	"github.com/tomz197/pong/internal/config"
	"github.com/tomz197/pong/internal/input"
	"github.com/tomz197/pong/internal/object"
	"github.com/tomz197/pong/internal/physics"
	"github.com/tomz197/pong/internal/render"
)

// Side identifies who won a point.
type Side int

const (
	SidePlayer Side = iota
	SideCPU
)

func (s Side) String() string {
	if s == SidePlayer {
		return "player"
	}
	return "cpu"
}

// Game owns every entity and both scores. It is not safe for concurrent
// use; one loop drives it.
type Game struct {
	settings config.Settings
	screen   object.Screen

	ball   *object.Ball
	player *object.Paddle
	cpu    *object.Paddle

	playerScore int
	cpuScore    int
	frame       uint64
}

// New creates a match. rng decides serve directions after each point.
func New(s config.Settings, rng *rand.Rand) *Game {
	screen := object.NewScreen(s.ScreenWidth, s.ScreenHeight)

	player := object.NewPaddle(object.Human, 0, 0, s)
	player.X = float64(s.ScreenWidth) - player.Width - s.PaddleMargin
	player.Y = float64(s.ScreenHeight)/2 - player.Height/2

	// The CPU paddle starts with its top edge on the center line.
	cpu := object.NewPaddle(object.Tracking, s.PaddleMargin, float64(s.ScreenHeight)/2, s)

	return &Game{
		settings: s,
		screen:   screen,
		ball:     object.NewBall(s, rng),
		player:   player,
		cpu:      cpu,
	}
}

// NewSeeded creates a match whose serves are reproducible for seed.
func NewSeeded(s config.Settings, seed uint64) *Game {
	return New(s, NewRand(seed))
}

// NewRand returns the PRNG used for serves.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Step advances the match by one frame: ball, player paddle, CPU paddle,
// then paddle hits.
func (g *Game) Step(in input.Input) {
	g.ball.Tick(&g.playerScore, &g.cpuScore)
	g.player.Tick(object.PaddleInput{Up: in.Up, Down: in.Down})
	g.cpu.Tick(object.PaddleInput{BallY: float64(g.ball.Y)})

	// Both paddles are tested every frame. A ball touching both flips twice
	// and keeps its direction.
	bx, by := g.ball.Position()
	if physics.CircleRectOverlap(bx, by, g.ball.Radius, g.player.Rect()) {
		g.ball.BounceX()
	}
	if physics.CircleRectOverlap(bx, by, g.ball.Radius, g.cpu.Rect()) {
		g.ball.BounceX()
	}

	g.frame++
}

// Draw renders the court, the scores and the entities.
func (g *Game) Draw(r render.Renderer) {
	s := g.settings
	p := s.Palette
	w := float64(s.ScreenWidth)
	h := float64(s.ScreenHeight)

	r.Clear(p.Background)
	r.FillRect(w/2, 0, w, h, p.Court)
	r.FillCircle(w/2, h/2, s.CenterCircleRadius, p.CenterCircle)

	render.Number(r, g.cpuScore, w/4-20, s.ScoreTop, s.ScoreFontSize, p.Score)
	render.Number(r, g.playerScore, 3*w/4-20, s.ScoreTop, s.ScoreFontSize, p.Score)

	r.Line(w/2, 0, w/2, h, p.Line)

	g.ball.Draw(r)
	g.player.Draw(r)
	g.cpu.Draw(r)
}

// Scores returns the player's and the CPU's points.
func (g *Game) Scores() (player, cpu int) {
	return g.playerScore, g.cpuScore
}

// Frame returns the number of steps taken.
func (g *Game) Frame() uint64 {
	return g.frame
}

// Ball returns the ball. Callers must not mutate it while the game runs.
func (g *Game) Ball() *object.Ball {
	return g.ball
}

// Player returns the human paddle.
func (g *Game) Player() *object.Paddle {
	return g.player
}

// CPU returns the tracking paddle.
func (g *Game) CPU() *object.Paddle {
	return g.cpu
}

// Settings returns the settings the game was created with.
func (g *Game) Settings() config.Settings {
	return g.settings
}
