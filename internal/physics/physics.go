// Package physics provides collision detection and clamping helpers.
package physics

import "math"

// Rect is an axis-aligned rectangle; X, Y is the top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// CircleRectOverlap reports whether a circle touches or overlaps a rectangle.
// Touching counts as overlapping.
func CircleRectOverlap(cx, cy, radius float64, r Rect) bool {
	halfW := r.Width / 2
	halfH := r.Height / 2

	dx := math.Abs(cx - (r.X + halfW))
	dy := math.Abs(cy - (r.Y + halfH))

	if dx > halfW+radius || dy > halfH+radius {
		return false
	}
	if dx <= halfW || dy <= halfH {
		return true
	}

	// Only a corner can still be in reach.
	return DistanceSquared(dx, dy, halfW, halfH) <= radius*radius
}

// Clamp restricts v to [lo, hi]. If lo > hi the result is hi.
func Clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
