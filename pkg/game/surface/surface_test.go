package surface

import (
	"image/color"
	"testing"
)

var (
	bg  = color.RGBA{R: 15, G: 15, B: 26, A: 255}
	red = color.RGBA{R: 255, A: 255}
)

func TestNewBuffer_FilledWithBackground(t *testing.T) {
	b := NewBuffer(10, 10, bg)
	if w, h := b.Size(); w != 10 || h != 10 {
		t.Errorf("Size() = (%d, %d), want (10, 10)", w, h)
	}
	if got := b.At(5, 5); got != bg {
		t.Errorf("At(5, 5) = %v, want background %v", got, bg)
	}
}

func TestFillRect_PaintsInsideOnly(t *testing.T) {
	b := NewBuffer(10, 10, bg)
	b.FillRect(2, 2, 3, 3, red)

	if got := b.At(2, 2); got != red {
		t.Errorf("At(2, 2) = %v, want %v", got, red)
	}
	if got := b.At(4, 4); got != red {
		t.Errorf("At(4, 4) = %v, want %v", got, red)
	}
	if got := b.At(5, 5); got != bg {
		t.Errorf("At(5, 5) = %v, want background (one past the rect)", got)
	}
	if got := b.At(1, 2); got != bg {
		t.Errorf("At(1, 2) = %v, want background (left of the rect)", got)
	}
}

func TestFillRect_ClipsToBounds(t *testing.T) {
	b := NewBuffer(10, 10, bg)
	// Partially and fully out of range fills must not panic.
	b.FillRect(-5, -5, 8, 8, red)
	b.FillRect(9, 9, 100, 100, red)
	b.FillRect(-100, -100, 10, 10, red)

	if got := b.At(0, 0); got != red {
		t.Errorf("At(0, 0) = %v, want %v (clipped fill)", got, red)
	}
	if got := b.At(9, 9); got != red {
		t.Errorf("At(9, 9) = %v, want %v (clipped fill)", got, red)
	}
	if got := b.At(5, 5); got != bg {
		t.Errorf("At(5, 5) = %v, want background", got)
	}
}

func TestClear_RestoresBackground(t *testing.T) {
	b := NewBuffer(10, 10, bg)
	b.FillRect(0, 0, 10, 10, red)
	b.Clear(0, 0, 10, 10)
	if got := b.At(3, 7); got != bg {
		t.Errorf("At(3, 7) after Clear = %v, want background", got)
	}
}

func TestAt_OutOfRangeReturnsBackground(t *testing.T) {
	b := NewBuffer(10, 10, bg)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {10, 0}, {0, 10}} {
		if got := b.At(p[0], p[1]); got != bg {
			t.Errorf("At(%d, %d) = %v, want background", p[0], p[1], got)
		}
	}
}

func TestEqual(t *testing.T) {
	a := NewBuffer(10, 10, bg)
	b := NewBuffer(10, 10, bg)
	if !a.Equal(b) {
		t.Error("fresh buffers not equal")
	}
	b.FillRect(0, 0, 1, 1, red)
	if a.Equal(b) {
		t.Error("buffers equal after differing fill")
	}
	c := NewBuffer(5, 5, bg)
	if a.Equal(c) {
		t.Error("buffers of different sizes reported equal")
	}
}
