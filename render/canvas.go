package render

import (
	"math"

	"github.com/lixenwraith/brain-splash/vmath"
)

// Canvas is a flat RGB pixel buffer in splash coordinates
// Pixel (x, y) covers [x, x+1) × [y, y+1)
type Canvas struct {
	Width  int
	Height int
	Pix    []RGB
}

// NewCanvas allocates a canvas of w×h pixels
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

// Resize reallocates only when the pixel count grows
func (c *Canvas) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	c.Width, c.Height = w, h
	if cap(c.Pix) < w*h {
		c.Pix = make([]RGB, w*h)
	}
	c.Pix = c.Pix[:w*h]
}

// Clear fills every pixel with bg
func (c *Canvas) Clear(bg RGB) {
	for i := range c.Pix {
		c.Pix[i] = bg
	}
}

// In reports whether (x, y) is a valid pixel
func (c *Canvas) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.Width && y < c.Height
}

// At returns the pixel at (x, y), black outside bounds
func (c *Canvas) At(x, y int) RGB {
	if !c.In(x, y) {
		return RGBBlack
	}
	return c.Pix[y*c.Width+x]
}

// Plot alpha-blends col over pixel (x, y)
func (c *Canvas) Plot(x, y int, col RGB, alpha float64) {
	if !c.In(x, y) {
		return
	}
	i := y*c.Width + x
	c.Pix[i] = Blend(c.Pix[i], col, alpha)
}

// PlotAdd additively blends col over pixel (x, y)
func (c *Canvas) PlotAdd(x, y int, col RGB, alpha float64) {
	if !c.In(x, y) {
		return
	}
	i := y*c.Width + x
	c.Pix[i] = Add(c.Pix[i], col, alpha)
}

// Fill blends col over the whole canvas
func (c *Canvas) Fill(col RGB, alpha float64) {
	if alpha <= 0 {
		return
	}
	for i := range c.Pix {
		c.Pix[i] = Blend(c.Pix[i], col, alpha)
	}
}

// circleBounds returns the clipped pixel box around a circle
func (c *Canvas) circleBounds(cx, cy, r float64) (x0, y0, x1, y1 int) {
	x0 = max(int(math.Floor(cx-r)), 0)
	y0 = max(int(math.Floor(cy-r)), 0)
	x1 = min(int(math.Ceil(cx+r)), c.Width-1)
	y1 = min(int(math.Ceil(cy+r)), c.Height-1)
	return
}

// FillCircle blends every pixel whose center lies within r of (cx, cy)
// Circles smaller than a pixel still mark the pixel containing the center
func (c *Canvas) FillCircle(cx, cy, r float64, col RGB, alpha float64) {
	if r <= 0.5 {
		c.Plot(int(math.Floor(cx)), int(math.Floor(cy)), col, alpha)
		return
	}
	x0, y0, x1, y1 := c.circleBounds(cx, cy, r)
	r2 := r * r
	for y := y0; y <= y1; y++ {
		dy := float64(y) + 0.5 - cy
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - cx
			if dx*dx+dy*dy <= r2 {
				c.Plot(x, y, col, alpha)
			}
		}
	}
}

// GlowCircle adds a halo fading linearly from alpha at the center to 0 at r
func (c *Canvas) GlowCircle(cx, cy, r float64, col RGB, alpha float64) {
	if r <= 0 {
		return
	}
	x0, y0, x1, y1 := c.circleBounds(cx, cy, r)
	for y := y0; y <= y1; y++ {
		dy := float64(y) + 0.5 - cy
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - cx
			d := math.Sqrt(dx*dx + dy*dy)
			if d < r {
				c.PlotAdd(x, y, col, alpha*(1-d/r))
			}
		}
	}
}

// StrokeCircle blends pixels whose center lies within width/2 of the circle outline
func (c *Canvas) StrokeCircle(cx, cy, r, width float64, col RGB, alpha float64) {
	half := max(width/2, 0.5)
	x0, y0, x1, y1 := c.circleBounds(cx, cy, r+half)
	for y := y0; y <= y1; y++ {
		dy := float64(y) + 0.5 - cy
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - cx
			if math.Abs(math.Sqrt(dx*dx+dy*dy)-r) <= half {
				c.Plot(x, y, col, alpha)
			}
		}
	}
}

// Polyline strokes consecutive points, skipping repeats of the last plotted pixel
func (c *Canvas) Polyline(pts []vmath.Vec2, col RGB, alpha float64) {
	if len(pts) == 0 {
		return
	}
	lastX, lastY := math.MinInt, math.MinInt
	plot := func(x, y int) bool {
		if x == lastX && y == lastY {
			return true
		}
		lastX, lastY = x, y
		c.Plot(x, y, col, alpha)
		return true
	}
	if len(pts) == 1 {
		plot(int(math.Floor(pts[0].X)), int(math.Floor(pts[0].Y)))
		return
	}
	for i := 1; i < len(pts); i++ {
		vmath.Traverse(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, plot)
	}
}
