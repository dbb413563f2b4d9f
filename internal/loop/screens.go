package loop

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/tomz197/pong/internal/config"
)

const controlsHint = " ↑/↓ or W/S move · Q quit "

// overlay draws the text that sits on top of the court.
type overlay struct {
	hint string
}

func newOverlay(w io.Writer, p config.Palette) *overlay {
	// The canvas already emits 24-bit color, so the overlay can too.
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.TrueColor)

	style := r.NewStyle().
		Foreground(hexColor(p.Score)).
		Background(hexColor(p.Background)).
		Bold(true)

	return &overlay{hint: style.Render(controlsHint)}
}

// draw places the controls hint on the bottom row of the court.
func (o *overlay) draw(state *State) {
	width := state.canvas.TerminalWidth()
	if lipgloss.Width(o.hint) > width/2 {
		return
	}
	state.out.WriteAt(2, state.canvas.TerminalHeight(), o.hint)
}

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
