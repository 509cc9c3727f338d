package vmath

import (
	"math"
)

// --- 2D Traversal (Supercover DDA) ---

// Traverse visits every grid cell intersected by a line from (x1, y1) to (x2, y2) in float pixel coordinates
// Uses Supercover DDA to ensure no skipped cells, guaranteed to terminate by checking target bounds before stepping
func Traverse(x1, y1, x2, y2 float64, callback func(x, y int) bool) {
	ix, iy := int(math.Floor(x1)), int(math.Floor(y1))
	targetX, targetY := int(math.Floor(x2)), int(math.Floor(y2))

	if ix == targetX && iy == targetY {
		callback(ix, iy)
		return
	}

	dx := x2 - x1
	dy := y2 - y1

	stepX, stepY := 1, 1
	if dx < 0 {
		stepX = -1
		dx = -dx
	}
	if dy < 0 {
		stepY = -1
		dy = -dy
	}

	// Calculate initial tMax and tDelta
	var tMaxX, tMaxY, tDeltaX, tDeltaY float64
	if dx == 0 {
		tMaxX = math.Inf(1)
	} else {
		tDeltaX = 1 / dx
		fracX := x1 - math.Floor(x1)
		if stepX > 0 {
			tMaxX = (1 - fracX) * tDeltaX
		} else {
			tMaxX = fracX * tDeltaX
		}
	}

	if dy == 0 {
		tMaxY = math.Inf(1)
	} else {
		tDeltaY = 1 / dy
		fracY := y1 - math.Floor(y1)
		if stepY > 0 {
			tMaxY = (1 - fracY) * tDeltaY
		} else {
			tMaxY = fracY * tDeltaY
		}
	}

	if !callback(ix, iy) {
		return
	}

	// Loop until both indices match targets
	for ix != targetX || iy != targetY {
		if tMaxX < tMaxY {
			// Try stepping X
			if ix != targetX {
				ix += stepX
				tMaxX += tDeltaX
			} else {
				// X is done, forced to step Y
				iy += stepY
				tMaxY += tDeltaY
			}
		} else if tMaxX > tMaxY {
			// Try stepping Y
			if iy != targetY {
				iy += stepY
				tMaxY += tDeltaY
			} else {
				// Y is done, forced to step X
				ix += stepX
				tMaxX += tDeltaX
			}
		} else {
			// Diagonal step (tMaxX == tMaxY)
			if ix != targetX {
				ix += stepX
				tMaxX += tDeltaX
			}
			if iy != targetY {
				iy += stepY
				tMaxY += tDeltaY
			}
		}

		if !callback(ix, iy) {
			break
		}
	}
}
