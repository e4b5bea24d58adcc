// Package geom provides the basic 2D primitives for the board: axis-aligned
// rectangles in pixel coordinates and interval clamping.
package geom

import "image/color"

// Rect is an axis-aligned rectangle. X and Y are the top-left corner in
// pixel coordinates; W and H are always positive. Color is a display
// attribute only and has no effect on behaviour.
type Rect struct {
	X, Y  int
	W, H  int
	Color color.RGBA
}

// NewRect creates a rectangle at the given position and size.
func NewRect(x, y, w, h int, c color.RGBA) Rect {
	return Rect{X: x, Y: y, W: w, H: h, Color: c}
}

// Right returns the x coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Overlaps reports whether the two rectangles share any area.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Clamp constrains v to the closed interval [lo, hi] using min/max.
// Values outside the interval are moved to the nearest edge; there is
// no reflection or wrapping.
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
