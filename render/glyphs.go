package render

import (
	"math"
	"unicode"
)

// Block font used for the merge glyph, 5×7 cells per rune
const (
	glyphW = 5
	glyphH = 7
)

var blockFont = map[rune][glyphH]string{
	'A': {".###.", "#...#", "#...#", "#####", "#...#", "#...#", "#...#"},
	'B': {"####.", "#...#", "#...#", "####.", "#...#", "#...#", "####."},
	'C': {".###.", "#...#", "#....", "#....", "#....", "#...#", ".###."},
	'D': {"####.", "#...#", "#...#", "#...#", "#...#", "#...#", "####."},
	'E': {"#####", "#....", "#....", "####.", "#....", "#....", "#####"},
	'F': {"#####", "#....", "#....", "####.", "#....", "#....", "#...."},
	'G': {".###.", "#...#", "#....", "#.###", "#...#", "#...#", ".####"},
	'H': {"#...#", "#...#", "#...#", "#####", "#...#", "#...#", "#...#"},
	'I': {"#####", "..#..", "..#..", "..#..", "..#..", "..#..", "#####"},
	'J': {"..###", "...#.", "...#.", "...#.", "...#.", "#..#.", ".##.."},
	'K': {"#...#", "#..#.", "#.#..", "##...", "#.#..", "#..#.", "#...#"},
	'L': {"#....", "#....", "#....", "#....", "#....", "#....", "#####"},
	'M': {"#...#", "##.##", "#.#.#", "#.#.#", "#...#", "#...#", "#...#"},
	'N': {"#...#", "##..#", "#.#.#", "#..##", "#...#", "#...#", "#...#"},
	'O': {".###.", "#...#", "#...#", "#...#", "#...#", "#...#", ".###."},
	'P': {"####.", "#...#", "#...#", "####.", "#....", "#....", "#...."},
	'Q': {".###.", "#...#", "#...#", "#...#", "#.#.#", "#..#.", ".##.#"},
	'R': {"####.", "#...#", "#...#", "####.", "#.#..", "#..#.", "#...#"},
	'S': {".####", "#....", "#....", ".###.", "....#", "....#", "####."},
	'T': {"#####", "..#..", "..#..", "..#..", "..#..", "..#..", "..#.."},
	'U': {"#...#", "#...#", "#...#", "#...#", "#...#", "#...#", ".###."},
	'V': {"#...#", "#...#", "#...#", "#...#", "#...#", ".#.#.", "..#.."},
	'W': {"#...#", "#...#", "#...#", "#.#.#", "#.#.#", "##.##", "#...#"},
	'X': {"#...#", "#...#", ".#.#.", "..#..", ".#.#.", "#...#", "#...#"},
	'Y': {"#...#", "#...#", ".#.#.", "..#..", "..#..", "..#..", "..#.."},
	'Z': {"#####", "....#", "...#.", "..#..", ".#...", "#....", "#####"},
	' ': {".....", ".....", ".....", ".....", ".....", ".....", "....."},
}

// BlockTextSupported reports whether every rune of s has a block glyph
func BlockTextSupported(s string) bool {
	for _, r := range s {
		if _, ok := blockFont[unicode.ToUpper(r)]; !ok {
			return false
		}
	}
	return s != ""
}

// BlockTextSize returns the pixel extent of s at the given scale
func BlockTextSize(s string, scale float64) (w, h float64) {
	n := 0
	for range s {
		n++
	}
	if n == 0 {
		return 0, 0
	}
	// One blank column between glyphs
	cols := n*glyphW + (n - 1)
	return float64(cols) * scale, glyphH * scale
}

// DrawBlockText renders s centered on (cx, cy) with each font cell scale pixels wide
// Returns false without drawing when a rune has no glyph
func DrawBlockText(c *Canvas, s string, cx, cy, scale float64, col RGB, alpha float64) bool {
	if !BlockTextSupported(s) || scale <= 0 || alpha <= 0 {
		return false
	}
	w, h := BlockTextSize(s, scale)
	ox, oy := cx-w/2, cy-h/2

	col0 := 0
	for _, r := range s {
		g := blockFont[unicode.ToUpper(r)]
		for gy := 0; gy < glyphH; gy++ {
			for gx := 0; gx < glyphW; gx++ {
				if g[gy][gx] != '#' {
					continue
				}
				fx0 := ox + float64(col0+gx)*scale
				fy0 := oy + float64(gy)*scale
				fillBox(c, fx0, fy0, fx0+scale, fy0+scale, col, alpha)
			}
		}
		col0 += glyphW + 1
	}
	return true
}

// fillBox blends pixels whose center lies inside [x0,x1)×[y0,y1)
func fillBox(c *Canvas, x0, y0, x1, y1 float64, col RGB, alpha float64) {
	px0 := int(math.Ceil(x0 - 0.5))
	py0 := int(math.Ceil(y0 - 0.5))
	px1 := int(math.Ceil(x1 - 0.5))
	py1 := int(math.Ceil(y1 - 0.5))
	if px1 == px0 {
		px1++
	}
	if py1 == py0 {
		py1++
	}
	for y := py0; y < py1; y++ {
		for x := px0; x < px1; x++ {
			c.Plot(x, y, col, alpha)
		}
	}
}
