package vmath

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestQuadBezierPointEndpoints(t *testing.T) {
	p0 := Vec2{0, 0}
	p1 := Vec2{5, 10}
	p2 := Vec2{10, 0}

	start := QuadBezierPoint(0, p0, p1, p2)
	if start != p0 {
		t.Errorf("Expected start %v, got %v", p0, start)
	}
	end := QuadBezierPoint(1, p0, p1, p2)
	if end != p2 {
		t.Errorf("Expected end %v, got %v", p2, end)
	}

	// Midpoint of a symmetric curve lies halfway to the control point
	mid := QuadBezierPoint(0.5, p0, p1, p2)
	if !near(mid.X, 5) || !near(mid.Y, 5) {
		t.Errorf("Expected midpoint (5,5), got %v", mid)
	}
}

func TestControlPointPerpendicular(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec2
		expected Vec2
	}{
		{"Horizontal", Vec2{0, 0}, Vec2{8, 0}, Vec2{4, 2}},
		{"Vertical", Vec2{0, 0}, Vec2{0, 8}, Vec2{-2, 4}},
		{"Reversed horizontal", Vec2{8, 0}, Vec2{0, 0}, Vec2{4, -2}},
		{"Coincident", Vec2{3, 3}, Vec2{3, 3}, Vec2{3, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ControlPoint(tt.a, tt.b, DefaultCurvature)
			if !near(c.X, tt.expected.X) || !near(c.Y, tt.expected.Y) {
				t.Errorf("Expected %v, got %v", tt.expected, c)
			}
		})
	}
}

func TestControlPointOffsetIsQuarterChord(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{7, 10}
	c := ControlPoint(a, b, DefaultCurvature)
	mid := Vec2{(a.X + b.X) / 2, (a.Y + b.Y) / 2}

	offset := V2Sub(c, mid)
	chord := V2Sub(b, a)
	if !near(V2Mag(offset), V2Mag(chord)*0.25) {
		t.Errorf("Expected offset %.3f, got %.3f", V2Mag(chord)*0.25, V2Mag(offset))
	}
	if dot := offset.X*chord.X + offset.Y*chord.Y; !near(dot, 0) {
		t.Errorf("Expected perpendicular offset, dot=%f", dot)
	}
}

func TestPartialSteps(t *testing.T) {
	tests := []struct {
		progress float64
		expected int
	}{
		{0, 10},
		{0.1, 10},
		{0.5, 25},
		{0.99, 49},
	}
	for _, tt := range tests {
		if got := PartialSteps(tt.progress, 50); got != tt.expected {
			t.Errorf("PartialSteps(%.2f) = %d, want %d", tt.progress, got, tt.expected)
		}
	}
}

func TestSampleQuadEndsAtProgress(t *testing.T) {
	p0 := Vec2{0, 0}
	p2 := Vec2{20, 0}
	p1 := ControlPoint(p0, p2, DefaultCurvature)

	pts := SampleQuad(nil, p0, p1, p2, 0.4, 12)
	if len(pts) != 13 {
		t.Fatalf("Expected 13 points, got %d", len(pts))
	}
	if pts[0] != p0 {
		t.Errorf("Expected first point %v, got %v", p0, pts[0])
	}
	head := QuadBezierPoint(0.4, p0, p1, p2)
	last := pts[len(pts)-1]
	if !near(last.X, head.X) || !near(last.Y, head.Y) {
		t.Errorf("Expected last point %v, got %v", head, last)
	}
}
