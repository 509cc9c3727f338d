package core

import "testing"

func TestRectShrink(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	in := Inset{Top: 0.10, Bottom: 0.16, Left: 0.06, Right: 0.06}

	s := r.Shrink(in)
	if s.X != 16 || s.Y != 25 {
		t.Errorf("Expected origin (16,25), got (%v,%v)", s.X, s.Y)
	}
	if s.Right() != 104 {
		t.Errorf("Expected right edge 104, got %v", s.Right())
	}
	if s.Bottom() != 62 {
		t.Errorf("Expected bottom edge 62, got %v", s.Bottom())
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"Inside", 5, 5, true},
		{"Top-left edge", 0, 0, true},
		{"Bottom-right edge", 10, 10, true},
		{"Left of rect", -0.1, 5, false},
		{"Below rect", 5, 10.5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expected {
				t.Errorf("Contains(%v,%v) = %v, want %v", tt.x, tt.y, got, tt.expected)
			}
		})
	}
}

func TestRectEmpty(t *testing.T) {
	if !(Rect{}).Empty() {
		t.Error("Expected zero rect to be empty")
	}
	if (Rect{Width: 1, Height: 1}).Empty() {
		t.Error("Expected 1x1 rect to be non-empty")
	}
}
