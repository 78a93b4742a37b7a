package render

import (
	"math"
	"strings"
)

const pageGlyphs = "0123456789abcdefghijklmnopqrstuvwxyz"

// ASCII draws a miniature of a in a cols×rows character grid scaled to the
// union box. Each page is filled with the base-36 digit of its index (mod
// 36) and the viewport outline is drawn on top. Uncovered cells are '.'.
func ASCII(a Arrangement, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	grid := make([][]byte, rows)
	for y := range grid {
		grid[y] = []byte(strings.Repeat(".", cols))
	}
	if a.Union.Width <= 0 || a.Union.Height <= 0 {
		return join(grid)
	}

	sx := float64(cols) / float64(a.Union.Width)
	sy := float64(rows) / float64(a.Union.Height)
	cells := func(r Rect) (x0, y0, x1, y1 int) {
		x0 = clampInt(int(math.Floor(float64(r.X-a.Union.X)*sx)), 0, cols-1)
		y0 = clampInt(int(math.Floor(float64(r.Y-a.Union.Y)*sy)), 0, rows-1)
		x1 = clampInt(int(math.Ceil(float64(r.X-a.Union.X+r.Width)*sx))-1, x0, cols-1)
		y1 = clampInt(int(math.Ceil(float64(r.Y-a.Union.Y+r.Height)*sy))-1, y0, rows-1)
		return
	}

	for _, p := range a.Pages {
		glyph := pageGlyphs[p.Index%len(pageGlyphs)]
		x0, y0, x1, y1 := cells(p.Rect)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				grid[y][x] = glyph
			}
		}
	}

	x0, y0, x1, y1 := cells(a.Viewport)
	for x := x0; x <= x1; x++ {
		grid[y0][x] = '-'
		grid[y1][x] = '-'
	}
	for y := y0; y <= y1; y++ {
		grid[y][x0] = '|'
		grid[y][x1] = '|'
	}
	grid[y0][x0], grid[y0][x1], grid[y1][x0], grid[y1][x1] = '+', '+', '+', '+'

	return join(grid)
}

func join(grid [][]byte) string {
	lines := make([]string, len(grid))
	for i, row := range grid {
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
