package vmath

import "math"

// DefaultCurvature bows a link outward by a quarter of its chord length
const DefaultCurvature = 0.25

// QuadBezierPoint evaluates the quadratic Bézier p0-p1-p2 at t
func QuadBezierPoint(t float64, p0, p1, p2 Vec2) Vec2 {
	u := 1 - t
	return Vec2{
		X: u*u*p0.X + 2*u*t*p1.X + t*t*p2.X,
		Y: u*u*p0.Y + 2*u*t*p1.Y + t*t*p2.Y,
	}
}

// ControlPoint returns the chord midpoint offset perpendicular to a→b by curvature*|ab|
// Coincident endpoints yield the midpoint
func ControlPoint(a, b Vec2, curvature float64) Vec2 {
	mx := (a.X + b.X) / 2
	my := (a.Y + b.Y) / 2
	dx := b.X - a.X
	dy := b.Y - a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return Vec2{mx, my}
	}
	// Unit normal scaled by length*curvature reduces to the raw delta
	return Vec2{
		X: mx - (dy/length)*length*curvature,
		Y: my + (dx/length)*length*curvature,
	}
}

// PartialSteps returns the sample count for a curve drawn up to progress
func PartialSteps(progress float64, resolution int) int {
	return max(10, int(math.Floor(float64(resolution)*progress)))
}

// SampleQuad appends steps+1 points of the curve over t ∈ [0, tEnd] to dst
func SampleQuad(dst []Vec2, p0, p1, p2 Vec2, tEnd float64, steps int) []Vec2 {
	if steps < 1 {
		steps = 1
	}
	dst = append(dst, p0)
	for i := 1; i <= steps; i++ {
		t := (float64(i) / float64(steps)) * tEnd
		dst = append(dst, QuadBezierPoint(t, p0, p1, p2))
	}
	return dst
}
