// Package drawutil provides terminal drawing primitives: Bresenham wire
// routing, directional line/arrow glyph lookup, socket anchor geometry,
// and convenience functions that draw into a cellbuf.Buffer.
package drawutil

import "image"

// Bresenham returns the cells a straight wire crosses from (x0,y0) to
// (x1,y1), endpoints included, using Bresenham's line algorithm. The
// loop is capped at dx+dy+2 iterations so a bad error term can never
// spin forever.
func Bresenham(x0, y0, x1, y1 int) []image.Point {
	dx, sx := abs(x1-x0), sign(x1-x0)
	dy, sy := abs(y1-y0), sign(y1-y0)
	err := dx - dy
	x, y := x0, y0

	pts := make([]image.Point, 0, dx+dy+1)
	for range dx + dy + 2 {
		pts = append(pts, image.Pt(x, y))
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
	return pts
}

// LineChar returns the glyph for a wire segment heading in direction
// (dx, dy): box-drawing rules for the axis-aligned cases, slashes for
// diagonals.
func LineChar(dx, dy int) rune {
	if dx == 0 {
		return '│'
	}
	if dy == 0 {
		return '─'
	}
	if (dx > 0) == (dy > 0) {
		return '\\'
	}
	return '/'
}

// ArrowChar returns the arrowhead glyph for a wire arriving along
// (dx, dy), pointing in the dominant direction.
func ArrowChar(dx, dy int) rune {
	if abs(dy) > abs(dx) {
		if dy > 0 {
			return '▼'
		}
		return '▲'
	}
	if dx > 0 {
		return '►'
	}
	return '◄'
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	if x < 0 {
		return -1
	}
	return 1
}
