package loop

import (
	"time"

	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/game"
	"github.com/tomz197/pong/internal/input"
)

// State holds everything one terminal session needs between frames.
type State struct {
	Game    *game.Game
	Input   input.Input
	Running bool

	stream       *input.Stream
	canvas       *draw.Canvas
	out          *draw.ChunkWriter
	termSizeFunc draw.TermSizeFunc
	lastInput    time.Time
	delta        time.Duration
}

// NewState creates the session state for a fresh match.
func NewState(g *game.Game, stream *input.Stream, canvas *draw.Canvas, out *draw.ChunkWriter, sizeFunc draw.TermSizeFunc) *State {
	return &State{
		Game:         g,
		Running:      true,
		stream:       stream,
		canvas:       canvas,
		out:          out,
		termSizeFunc: sizeFunc,
		lastInput:    time.Now(),
	}
}
