package drawutil

import "github.com/nor-os/plugboard/pkg/cellbuf"

// DrawGrid fills the buffer with grid dots ('·') at regular intervals,
// offset by the pan position. Points where (contentX % spacingX == 0)
// and (contentY % spacingY == 0) get a dot.
func DrawGrid(buf *cellbuf.Buffer, panX, panY, spacingX, spacingY int, style cellbuf.StyleKey) {
	for r := 0; r < buf.H; r++ {
		cy := r + panY
		if mod(cy, spacingY) != 0 {
			continue
		}
		for c := 0; c < buf.W; c++ {
			cx := c + panX
			if mod(cx, spacingX) == 0 {
				buf.Set(c, r, '·', style)
			}
		}
	}
}

// mod returns a non-negative modulus (Go's % can return negative for negative operands).
func mod(a, m int) int {
	if m == 0 {
		return 0
	}
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
