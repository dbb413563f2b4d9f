// Package render defines the drawing surface the game draws onto and the
// helpers shared by every backend.
package render

import (
	"image/color"
	"math"
	"strconv"
)

// Renderer is a 2D drawing surface in logical court coordinates.
// The terminal canvas, the raster image and the ebiten window implement it.
type Renderer interface {
	Clear(c color.RGBA)
	FillRect(x, y, w, h float64, c color.RGBA)
	// FillRoundedRect uses raylib-style roundness: the corner radius is
	// roundness * min(w, h) / 2.
	FillRoundedRect(x, y, w, h, roundness float64, c color.RGBA)
	FillCircle(cx, cy, r float64, c color.RGBA)
	Line(x1, y1, x2, y2 float64, c color.RGBA)
}

// Point is a 2D coordinate.
type Point struct {
	X, Y float64
}

// CornerRadius returns the corner radius for a rounded rectangle.
func CornerRadius(w, h, roundness float64) float64 {
	if roundness <= 0 {
		return 0
	}
	return math.Min(roundness, 1) * math.Min(w, h) / 2
}

// CirclePoints approximates a circle with n vertices, appending to dst.
func CirclePoints(dst []Point, cx, cy, r float64, n int) []Point {
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		dst = append(dst, Point{X: cx + math.Cos(a)*r, Y: cy + math.Sin(a)*r})
	}
	return dst
}

// RoundedRectPoints outlines a rounded rectangle clockwise, using segs
// vertices per corner arc, appending to dst.
func RoundedRectPoints(dst []Point, x, y, w, h, roundness float64, segs int) []Point {
	rad := CornerRadius(w, h, roundness)
	if rad == 0 || segs < 1 {
		return append(dst,
			Point{X: x, Y: y},
			Point{X: x + w, Y: y},
			Point{X: x + w, Y: y + h},
			Point{X: x, Y: y + h},
		)
	}

	corners := [4]struct {
		cx, cy, start float64
	}{
		{x + w - rad, y + rad, -math.Pi / 2}, // top right
		{x + w - rad, y + h - rad, 0},        // bottom right
		{x + rad, y + h - rad, math.Pi / 2},  // bottom left
		{x + rad, y + rad, math.Pi},          // top left
	}
	for _, c := range corners {
		for i := 0; i <= segs; i++ {
			a := c.start + (math.Pi/2)*float64(i)/float64(segs)
			dst = append(dst, Point{X: c.cx + math.Cos(a)*rad, Y: c.cy + math.Sin(a)*rad})
		}
	}
	return dst
}

// Number draws n as a plain decimal integer with its top-left corner at
// (x, y). size is the glyph height; glyphs are drawn from filled cells so
// every backend renders the same large font.
func Number(r Renderer, n int, x, y, size float64, c color.RGBA) {
	Text(r, strconv.Itoa(n), x, y, size, c)
}

// Text draws s in the digit font. Runes without a glyph advance the cursor
// without drawing.
func Text(r Renderer, s string, x, y, size float64, c color.RGBA) {
	cell := size / glyphRows
	for _, ch := range s {
		if g, ok := glyphs[ch]; ok {
			for row, bits := range g {
				for col := 0; col < glyphCols; col++ {
					if bits&(1<<(glyphCols-1-col)) != 0 {
						r.FillRect(x+float64(col)*cell, y+float64(row)*cell, cell, cell, c)
					}
				}
			}
		}
		x += TextAdvance(size)
	}
}

// TextAdvance returns the horizontal distance between glyph origins.
func TextAdvance(size float64) float64 {
	return float64(glyphCols+1) * size / glyphRows
}
