package asset

import (
	"image"
	"image/color"
	"math"
)

// brainAspect is the width/height of the generated silhouette
const brainAspect = 1.3

// DefaultBrain draws a two-hemisphere brain silhouette on a transparent background
// Used when no artwork is configured or the configured file fails to load
func DefaultBrain(width int) *image.RGBA {
	width = max(width, 8)
	height := max(int(math.Round(float64(width)/brainAspect)), 6)
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	w, h := float64(width), float64(height)
	base := color.RGBA{R: 232, G: 120, B: 150, A: 255}
	fold := color.RGBA{R: 160, G: 60, B: 95, A: 255}
	stem := color.RGBA{R: 200, G: 95, B: 120, A: 255}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// Normalized coordinates in [-1,1]
			nx := (float64(x)+0.5)/w*2 - 1
			ny := (float64(y)+0.5)/h*2 - 1

			if inStem(nx, ny) {
				img.SetRGBA(x, y, stem)
				continue
			}
			if !inCerebrum(nx, ny) {
				continue
			}
			if isFold(nx, ny) {
				img.SetRGBA(x, y, fold)
			} else {
				img.SetRGBA(x, y, shade(base, ny))
			}
		}
	}
	return img
}

// inCerebrum is the union of two overlapping lobes, flattened at the bottom
func inCerebrum(nx, ny float64) bool {
	if ny > 0.55 {
		return false
	}
	left := sq((nx+0.3)/0.68) + sq((ny+0.05)/0.9)
	right := sq((nx-0.3)/0.68) + sq((ny+0.05)/0.9)
	return left <= 1 || right <= 1
}

func inStem(nx, ny float64) bool {
	return ny > 0.45 && ny < 0.95 && math.Abs(nx-0.12-0.15*(ny-0.45)) < 0.08
}

// isFold marks the central fissure and wavy sulci
func isFold(nx, ny float64) bool {
	if math.Abs(nx) < 0.025 && ny < 0.35 {
		return true
	}
	wave := math.Sin(nx*9+ny*3) * 0.06
	for _, band := range [...]float64{-0.55, -0.2, 0.15} {
		if math.Abs(ny-band-wave) < 0.028 {
			return true
		}
	}
	return false
}

// shade darkens toward the bottom of the cerebrum
func shade(c color.RGBA, ny float64) color.RGBA {
	f := 1 - 0.25*((ny+1)/2)
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}

func sq(v float64) float64 {
	return v * v
}
