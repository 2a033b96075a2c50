// Package cellbuf provides a 2D character buffer with per-cell styling
// and run-merged Lipgloss rendering.
//
// Each cell holds a rune and a StyleKey (an int enum). At render time,
// the caller provides a map[StyleKey]lipgloss.Style so the buffer is
// decoupled from specific color schemes.
//
// Limitation: all runes are assumed to be single-width. CJK or other
// double-width characters are not handled correctly.
package cellbuf

// StyleKey identifies a visual style. The caller defines the mapping
// from StyleKey to lipgloss.Style at render time.
type StyleKey int

// Cell is a single character in the buffer with an associated style.
type Cell struct {
	Ch    rune
	Style StyleKey
}

// Buffer is a 2D grid of styled cells, stored row-major.
type Buffer struct {
	W, H  int
	cells []Cell
	def   StyleKey
}

// New creates a Buffer of the given size, filled with spaces in the
// given default style.
func New(w, h int, defaultStyle StyleKey) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	b := &Buffer{W: w, H: h, cells: make([]Cell, w*h), def: defaultStyle}
	b.Fill(defaultStyle)
	return b
}

// InBounds reports whether (x, y) is inside the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// At returns the cell at (x, y). Out-of-bounds reads return a space in
// the default style.
func (b *Buffer) At(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Cell{Ch: ' ', Style: b.def}
	}
	return b.cells[y*b.W+x]
}

// Set writes a single character at (x, y). Out-of-bounds writes are
// silently ignored.
func (b *Buffer) Set(x, y int, ch rune, style StyleKey) {
	if b.InBounds(x, y) {
		b.cells[y*b.W+x] = Cell{Ch: ch, Style: style}
	}
}

// SetString writes a string starting at (x, y), advancing x for each
// rune. Characters that fall outside the buffer are silently skipped.
func (b *Buffer) SetString(x, y int, s string, style StyleKey) {
	for i, ch := range []rune(s) {
		b.Set(x+i, y, ch, style)
	}
}

// Fill resets every cell to a space with the given style.
func (b *Buffer) Fill(style StyleKey) {
	for i := range b.cells {
		b.cells[i] = Cell{Ch: ' ', Style: style}
	}
}

// Resize grows or shrinks the buffer, clearing it to the default style.
// A no-op when the size is unchanged.
func (b *Buffer) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if w == b.W && h == b.H {
		return
	}
	b.W, b.H = w, h
	b.cells = make([]Cell, w*h)
	b.Fill(b.def)
}
