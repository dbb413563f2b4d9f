// Package loop runs a match in a terminal: Input → Update → Draw at a
// fixed frame rate.
package loop

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/tomz197/pong/internal/config"
	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/game"
	"github.com/tomz197/pong/internal/input"
	loopcfg "github.com/tomz197/pong/internal/loop/config"
)

// Hooks observe a running match. Nil fields are skipped.
type Hooks struct {
	Point func(scorer game.Side)
	Frame func(elapsed time.Duration)
}

// Options configures Run.
type Options struct {
	Settings     config.Settings
	Seed         uint64
	TermSizeFunc draw.TermSizeFunc // Defaults to the size of os.Stdout
	IdleTimeout  time.Duration     // End the match after this long without input; 0 disables
	Hooks        Hooks
}

// Run plays one match on the terminal behind r and w until the player
// quits, the input stream closes or the idle timeout fires.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	sizeFunc := opts.TermSizeFunc
	if sizeFunc == nil {
		sizeFunc = draw.DefaultTermSizeFunc
	}
	s := opts.Settings

	termWidth, termHeight, err := sizeFunc()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	aspect := float64(s.ScreenWidth) / float64(s.ScreenHeight)
	renderWidth, renderHeight, offsetCol, offsetRow := draw.FitTermSize(termWidth, termHeight, loopcfg.MaxTermWidth, loopcfg.MaxTermHeight, aspect)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, float64(s.ScreenWidth), float64(s.ScreenHeight))
	canvas.SetOffset(offsetCol, offsetRow)

	state := NewState(
		game.NewSeeded(s, opts.Seed),
		input.StartStream(r, loopcfg.KeyHoldDuration),
		canvas,
		draw.NewChunkWriter(w, offsetCol, offsetRow),
		sizeFunc,
	)
	ui := newOverlay(w, s.Palette)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	frameTime := time.Second / time.Duration(s.TargetFPS)
	lastTime := time.Now()

	for state.Running {
		frameStart := time.Now()
		state.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		// ===== INPUT PHASE =====
		processInput(state, opts.IdleTimeout)
		if !state.Running {
			break
		}

		// ===== UPDATE PHASE =====
		updateScreen(state, w)
		updatePlaying(state, opts.Hooks)

		// ===== DRAW PHASE =====
		if err := drawFrame(state, ui); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if opts.Hooks.Frame != nil {
			opts.Hooks.Frame(elapsed)
		}
		if elapsed < frameTime {
			time.Sleep(frameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// processInput reads all pending input and handles quit and idle timeout.
func processInput(state *State, idleTimeout time.Duration) {
	state.Input = input.ReadInput(state.stream)

	if len(state.Input.Pressed) > 0 {
		state.lastInput = time.Now()
	} else if idleTimeout > 0 && time.Since(state.lastInput) > idleTimeout {
		state.Running = false
	}

	if state.Input.Quit {
		state.Running = false
	}
}

// updateScreen handles terminal resize, fitting the court into the terminal.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area (e.g. old borders or offset content).
func updateScreen(state *State, w io.Writer) {
	termWidth, termHeight, err := state.termSizeFunc()
	if err != nil {
		return
	}
	c := state.canvas
	aspect := c.LogicalWidth() / c.LogicalHeight()
	renderWidth, renderHeight, offsetCol, offsetRow := draw.FitTermSize(termWidth, termHeight, loopcfg.MaxTermWidth, loopcfg.MaxTermHeight, aspect)

	if renderWidth != c.TerminalWidth() || renderHeight != c.TerminalHeight() ||
		offsetCol != c.OffsetCol() || offsetRow != c.OffsetRow() {
		draw.ClearScreen(w)
		c.ForceRedraw()
	}

	c.Resize(renderWidth, renderHeight)
	c.SetOffset(offsetCol, offsetRow)
	state.out.SetOffset(offsetCol, offsetRow)
}

// updatePlaying advances the match one frame and reports points.
func updatePlaying(state *State, hooks Hooks) {
	playerBefore, cpuBefore := state.Game.Scores()
	state.Game.Step(state.Input)

	if hooks.Point == nil {
		return
	}
	player, cpu := state.Game.Scores()
	for i := playerBefore; i < player; i++ {
		hooks.Point(game.SidePlayer)
	}
	for i := cpuBefore; i < cpu; i++ {
		hooks.Point(game.SideCPU)
	}
}

// drawFrame renders the court to the canvas, then the overlay, then flushes.
func drawFrame(state *State, ui *overlay) error {
	state.Game.Draw(state.canvas)

	if err := state.canvas.Render(state.out); err != nil {
		return err
	}
	if state.canvas.OffsetCol() > 0 || state.canvas.OffsetRow() > 0 {
		if err := state.canvas.RenderBorder(state.out); err != nil {
			return err
		}
	}
	ui.draw(state)

	return state.out.Flush()
}
