package geom

import (
	"image/color"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi int
		want      int
	}{
		{"WithinInterval", 50, 0, 380, 50},
		{"AtLowerEdge", 0, 0, 380, 0},
		{"AtUpperEdge", 380, 0, 380, 380},
		{"BelowInterval", -20, 0, 380, 0},
		{"AboveInterval", 400, 0, 380, 380},
		{"FarBelow", -100000, 0, 380, 0},
		{"FarAbove", 100000, 0, 380, 380},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.v, tt.lo, tt.hi)
			if got != tt.want {
				t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 30, 40, color.RGBA{})
	if r.Right() != 40 {
		t.Errorf("Right() = %d, want 40", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom() = %d, want 60", r.Bottom())
	}
}

func TestRectOverlaps(t *testing.T) {
	base := NewRect(100, 100, 20, 20, color.RGBA{})
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"Identical", NewRect(100, 100, 20, 20, color.RGBA{}), true},
		{"PartialOverlap", NewRect(110, 110, 20, 20, color.RGBA{}), true},
		{"TouchingEdges", NewRect(120, 100, 20, 20, color.RGBA{}), false},
		{"Disjoint", NewRect(200, 200, 20, 20, color.RGBA{}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps(%+v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}
