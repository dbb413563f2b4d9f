// Package raster draws the court into an in-memory RGBA image.
package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/fogleman/gg"

	"github.com/tomz197/pong/internal/render"
)

// Image is a render.Renderer backed by a gg context.
type Image struct {
	dc *gg.Context
}

var _ render.Renderer = (*Image)(nil)

// New creates a width x height image.
func New(width, height int) *Image {
	return &Image{dc: gg.NewContext(width, height)}
}

// Clear fills the whole image.
func (im *Image) Clear(c color.RGBA) {
	im.dc.SetColor(c)
	im.dc.Clear()
}

// FillRect fills an axis-aligned rectangle.
func (im *Image) FillRect(x, y, w, h float64, c color.RGBA) {
	im.dc.SetColor(c)
	im.dc.DrawRectangle(x, y, w, h)
	im.dc.Fill()
}

// FillRoundedRect fills a rectangle with rounded corners.
func (im *Image) FillRoundedRect(x, y, w, h, roundness float64, c color.RGBA) {
	im.dc.SetColor(c)
	im.dc.DrawRoundedRectangle(x, y, w, h, render.CornerRadius(w, h, roundness))
	im.dc.Fill()
}

// FillCircle fills a circle.
func (im *Image) FillCircle(cx, cy, r float64, c color.RGBA) {
	im.dc.SetColor(c)
	im.dc.DrawCircle(cx, cy, r)
	im.dc.Fill()
}

// Line strokes a one pixel wide line.
func (im *Image) Line(x1, y1, x2, y2 float64, c color.RGBA) {
	im.dc.SetColor(c)
	im.dc.SetLineWidth(1)
	im.dc.DrawLine(x1, y1, x2, y2)
	im.dc.Stroke()
}

// Image returns the rendered image.
func (im *Image) Image() image.Image {
	return im.dc.Image()
}

// EncodePNG writes the image as PNG.
func (im *Image) EncodePNG(w io.Writer) error {
	return png.Encode(w, im.dc.Image())
}
