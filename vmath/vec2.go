package vmath

import (
	"math"
)

// Vec2 is a float64 2D vector in canvas pixel space
type Vec2 struct {
	X, Y float64
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2Mag(v Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

func V2Dist(a, b Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// V2Normalize returns the unit vector, or zero for a zero-length input
func V2Normalize(v Vec2) Vec2 {
	mag := V2Mag(v)
	if mag == 0 {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// V2Approach eases both components toward target by frac
func V2Approach(current, target Vec2, frac float64) Vec2 {
	return Vec2{
		X: Approach(current.X, target.X, frac),
		Y: Approach(current.Y, target.Y, frac),
	}
}
