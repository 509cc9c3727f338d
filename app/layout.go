package app

import (
	"math"

	"github.com/lixenwraith/brain-splash/core"
)

// Minimum reference size in canvas pixels for hotspots to be usable
const (
	minRefWidth  = 16
	minRefHeight = 12
)

// Layout fits a rectangle of the given aspect into fill × canvas, centered and snapped to whole pixels
// Returns false when the result is too small to interact with
func Layout(canvas core.Size, aspect, fill float64) (core.Rect, bool) {
	if canvas.Width <= 0 || canvas.Height <= 0 || aspect <= 0 || fill <= 0 {
		return core.Rect{}, false
	}

	maxW := canvas.Width * fill
	maxH := canvas.Height * fill
	w, h := maxW, maxW/aspect
	if h > maxH {
		w, h = maxH*aspect, maxH
	}
	w, h = math.Floor(w), math.Floor(h)

	r := core.Rect{
		X:      math.Floor((canvas.Width - w) / 2),
		Y:      math.Floor((canvas.Height - h) / 2),
		Width:  w,
		Height: h,
	}
	return r, w >= minRefWidth && h >= minRefHeight
}

// CellToCanvas maps a terminal cell to the canvas point at its visual center
func CellToCanvas(x, y int) (float64, float64) {
	return float64(x) + 0.5, float64(2*y) + 1
}
