// Package surface defines the drawing-surface collaborator: a minimal
// pixel canvas with clear and filled-rectangle primitives. Backends wrap
// a terminal or an Ebiten image; Buffer is the in-memory implementation
// used by the TUI backend, the snapshot dump, and tests.
package surface

import "image/color"

// Surface is the injected drawing surface. Coordinates are pixels with
// the origin at the top-left. Implementations clip drawing to their
// bounds; out-of-range fills are not an error.
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() (w, h int)

	// Clear resets the given region to the background color.
	Clear(x, y, w, h int)

	// FillRect paints a filled rectangle.
	FillRect(x, y, w, h int, c color.RGBA)
}

// Buffer is an in-memory Surface backed by a pixel grid.
type Buffer struct {
	w, h       int
	background color.RGBA
	pixels     []color.RGBA
}

// NewBuffer creates a buffer of the given size, filled with the
// background color.
func NewBuffer(w, h int, background color.RGBA) *Buffer {
	b := &Buffer{
		w:          w,
		h:          h,
		background: background,
		pixels:     make([]color.RGBA, w*h),
	}
	b.Clear(0, 0, w, h)
	return b
}

// Size returns the buffer dimensions in pixels.
func (b *Buffer) Size() (w, h int) {
	return b.w, b.h
}

// Clear resets the given region to the background color.
func (b *Buffer) Clear(x, y, w, h int) {
	b.FillRect(x, y, w, h, b.background)
}

// FillRect paints a filled rectangle, clipped to the buffer bounds.
func (b *Buffer) FillRect(x, y, w, h int, c color.RGBA) {
	x0 := max(x, 0)
	y0 := max(y, 0)
	x1 := min(x+w, b.w)
	y1 := min(y+h, b.h)

	for py := y0; py < y1; py++ {
		row := py * b.w
		for px := x0; px < x1; px++ {
			b.pixels[row+px] = c
		}
	}
}

// At returns the color of the pixel at (x, y). Out-of-range coordinates
// return the background color.
func (b *Buffer) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return b.background
	}
	return b.pixels[y*b.w+x]
}

// Equal reports whether two buffers have the same dimensions and
// identical pixel contents.
func (b *Buffer) Equal(o *Buffer) bool {
	if b.w != o.w || b.h != o.h {
		return false
	}
	for i := range b.pixels {
		if b.pixels[i] != o.pixels[i] {
			return false
		}
	}
	return true
}
