package drawutil

import "image"

// SocketSide says which node edge a port glyph sits on.
type SocketSide int

const (
	SocketLeft  SocketSide = iota // inputs
	SocketRight                   // outputs
)

// SocketPoint returns the buffer position of the index-th port glyph on
// a node box. Inputs stack down the left edge and outputs down the
// right edge, starting one row below the title row. Ports that would
// fall below the box are clamped to its bottom row.
func SocketPoint(rect image.Rectangle, side SocketSide, index int) image.Point {
	x := rect.Min.X
	if side == SocketRight {
		x = rect.Max.X - 1
	}
	y := rect.Min.Y + 1 + index
	if y > rect.Max.Y-1 {
		y = rect.Max.Y - 1
	}
	return image.Pt(x, y)
}

// SocketGlyph returns the character for a port glyph.
func SocketGlyph(connected bool) rune {
	if connected {
		return '●'
	}
	return '○'
}
