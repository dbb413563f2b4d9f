package render

import (
	"image/color"
	"math"
	"testing"
)

type rectCall struct {
	x, y, w, h float64
}

type recorder struct {
	rects []rectCall
}

func (r *recorder) Clear(color.RGBA) {}
func (r *recorder) FillRect(x, y, w, h float64, _ color.RGBA) {
	r.rects = append(r.rects, rectCall{x, y, w, h})
}
func (r *recorder) FillRoundedRect(x, y, w, h, roundness float64, c color.RGBA) {}
func (r *recorder) FillCircle(cx, cy, rad float64, c color.RGBA) {}
func (r *recorder) Line(x1, y1, x2, y2 float64, c color.RGBA) {}

func TestNumberDrawsOneCellPerGlyphPixel(t *testing.T) {
	var rec recorder
	Number(&rec, 1, 0, 0, 70, color.RGBA{A: 255})

	// '1' has 1+2+1+1+1+1+3 lit pixels.
	if len(rec.rects) != 10 {
		t.Fatalf("got %d cells, want 10", len(rec.rects))
	}
	for _, c := range rec.rects {
		if c.w != 10 || c.h != 10 {
			t.Fatalf("cell size = %vx%v, want 10x10", c.w, c.h)
		}
		if c.x < 0 || c.x >= 50 || c.y < 0 || c.y >= 70 {
			t.Fatalf("cell %+v outside the glyph box", c)
		}
	}
}

func TestNumberFormatsPlainDecimal(t *testing.T) {
	var one, twelve recorder
	Number(&one, 1, 0, 0, 70, color.RGBA{})
	Number(&twelve, 12, 0, 0, 70, color.RGBA{})

	// The second glyph starts one advance to the right; no padding glyphs.
	maxX := 0.0
	for _, c := range twelve.rects {
		maxX = math.Max(maxX, c.x)
	}
	if maxX < TextAdvance(70) {
		t.Errorf("second digit not drawn: max x %v", maxX)
	}
	if maxX >= 2*TextAdvance(70) {
		t.Errorf("unexpected third glyph: max x %v", maxX)
	}
}

func TestRoundedRectPoints(t *testing.T) {
	pts := RoundedRectPoints(nil, 10, 20, 25, 120, 0.8, 4)
	if len(pts) != 4*5 {
		t.Fatalf("got %d points, want 20", len(pts))
	}
	for _, p := range pts {
		if p.X < 10-1e-9 || p.X > 35+1e-9 || p.Y < 20-1e-9 || p.Y > 140+1e-9 {
			t.Errorf("point %+v outside the bounding box", p)
		}
	}

	square := RoundedRectPoints(nil, 0, 0, 10, 10, 0, 4)
	if len(square) != 4 {
		t.Errorf("zero roundness should give 4 corners, got %d", len(square))
	}
}

func TestCornerRadius(t *testing.T) {
	if got := CornerRadius(25, 120, 0.8); got != 10 {
		t.Errorf("CornerRadius = %v, want 10", got)
	}
}
