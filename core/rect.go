package core

import "math"

// Size is a canvas extent in pixels
type Size struct {
	Width, Height float64
}

// Rect represents a rectangular region in canvas pixel space
type Rect struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
}

// Inset holds fractional margins removed from each side of a Rect
type Inset struct {
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Empty reports whether the rect has no usable area
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0 || math.IsNaN(r.Width) || math.IsNaN(r.Height)
}

// Center returns the center point
func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Contains checks if the point is within the rect, edges inclusive
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// Shrink removes the fractional inset from each side
func (r Rect) Shrink(in Inset) Rect {
	left := r.X + r.Width*in.Left
	right := r.Right() - r.Width*in.Right
	top := r.Y + r.Height*in.Top
	bottom := r.Bottom() - r.Height*in.Bottom
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// At maps relative coordinates in [0,1] onto the rect
func (r Rect) At(rx, ry float64) (float64, float64) {
	return r.X + r.Width*rx, r.Y + r.Height*ry
}
