package cellbuf

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Render converts the buffer into a styled string. The caller provides
// a mapping from StyleKey to lipgloss.Style.
//
// Consecutive cells with the same StyleKey are merged into runs and
// rendered with one Style.Render() call per run, which keeps the escape
// sequence overhead proportional to style changes rather than cells.
//
// Rows are joined with "\n". An empty buffer (W==0 or H==0) returns "".
func (b *Buffer) Render(styles map[StyleKey]lipgloss.Style) string {
	if b.W == 0 || b.H == 0 {
		return ""
	}

	lines := make([]string, b.H)
	run := make([]rune, 0, b.W)

	for y := 0; y < b.H; y++ {
		var sb strings.Builder
		row := b.cells[y*b.W : (y+1)*b.W]

		run = run[:0]
		runStyle := row[0].Style

		flush := func() {
			if len(run) == 0 {
				return
			}
			if s, ok := styles[runStyle]; ok {
				sb.WriteString(s.Render(string(run)))
			} else {
				sb.WriteString(string(run))
			}
			run = run[:0]
		}

		for _, c := range row {
			if c.Style != runStyle {
				flush()
				runStyle = c.Style
			}
			run = append(run, c.Ch)
		}
		flush()

		lines[y] = sb.String()
	}

	return strings.Join(lines, "\n")
}
