// Package window plays a match in a desktop window through ebiten.
package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/pong/internal/game"
	"github.com/tomz197/pong/internal/input"
	"github.com/tomz197/pong/internal/render"
)

// Window adapts a game.Game to ebiten.Game.
type Window struct {
	game *game.Game
	keys func() input.Input
}

var _ ebiten.Game = (*Window)(nil)

// New wraps g, reading the arrow keys for the player's paddle.
func New(g *game.Game) *Window {
	return &Window{game: g, keys: arrowKeys}
}

func arrowKeys() input.Input {
	return input.Input{
		Up:   ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down: ebiten.IsKeyPressed(ebiten.KeyArrowDown),
	}
}

// Update advances the match one frame. ebiten calls it at the TPS set in Run.
func (w *Window) Update() error {
	w.game.Step(w.keys())
	return nil
}

// Draw renders the court.
func (w *Window) Draw(screen *ebiten.Image) {
	w.game.Draw(surface{screen})
}

// Layout keeps the logical court size regardless of the window size.
func (w *Window) Layout(_, _ int) (int, int) {
	s := w.game.Settings()
	return s.ScreenWidth, s.ScreenHeight
}

// Run opens the window and blocks until it is closed.
func Run(g *game.Game) error {
	s := g.Settings()
	ebiten.SetWindowSize(s.ScreenWidth, s.ScreenHeight)
	ebiten.SetWindowTitle(s.Title)
	ebiten.SetTPS(s.TargetFPS)
	return ebiten.RunGame(New(g))
}

// surface implements render.Renderer on an ebiten image.
type surface struct {
	dst *ebiten.Image
}

var _ render.Renderer = surface{}

func (s surface) Clear(c color.RGBA) {
	s.dst.Fill(c)
}

func (s surface) FillRect(x, y, w, h float64, c color.RGBA) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

// FillRoundedRect builds the shape from a cross of two rectangles and a
// circle in each corner.
func (s surface) FillRoundedRect(x, y, w, h, roundness float64, c color.RGBA) {
	r := render.CornerRadius(w, h, roundness)
	if r == 0 {
		s.FillRect(x, y, w, h, c)
		return
	}
	s.FillRect(x+r, y, w-2*r, h, c)
	s.FillRect(x, y+r, w, h-2*r, c)
	for _, p := range [4]render.Point{
		{X: x + r, Y: y + r},
		{X: x + w - r, Y: y + r},
		{X: x + r, Y: y + h - r},
		{X: x + w - r, Y: y + h - r},
	} {
		s.FillCircle(p.X, p.Y, r, c)
	}
}

func (s surface) FillCircle(cx, cy, r float64, c color.RGBA) {
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), c, true)
}

func (s surface) Line(x1, y1, x2, y2 float64, c color.RGBA) {
	vector.StrokeLine(s.dst, float32(x1), float32(y1), float32(x2), float32(y2), 1, c, false)
}
