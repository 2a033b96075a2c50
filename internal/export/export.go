// Package export renders a board snapshot to plain text or PNG.
package export

import (
	"fmt"
	"image"
	"io"

	"github.com/nor-os/plugboard/internal/board"
	"github.com/nor-os/plugboard/pkg/area"
	"github.com/nor-os/plugboard/pkg/cellbuf"
	"github.com/nor-os/plugboard/pkg/drawutil"
	"github.com/nor-os/plugboard/pkg/graph"
)

const margin = 2

// bounds returns the cell rectangle covering every node box.
func bounds(ed *graph.Editor, positions map[string]area.Point) (image.Rectangle, bool) {
	var r image.Rectangle
	first := true
	for _, n := range ed.Nodes() {
		box := board.BoxFor(n, positions[n.ID])
		if first {
			r = box
			first = false
		} else {
			r = r.Union(box)
		}
	}
	return r, !first
}

// portIndex returns the declaration index of a port key, or 0.
func portIndex(ports []graph.Port, key string) int {
	for i, p := range ports {
		if p.Key == key {
			return i
		}
	}
	return 0
}

// socketAt returns the cell position of a node's port glyph.
func socketAt(ed *graph.Editor, positions map[string]area.Point, nodeID string, side graph.Side, key string) (image.Point, bool) {
	n := ed.Node(nodeID)
	if n == nil {
		return image.Point{}, false
	}
	box := board.BoxFor(n, positions[nodeID])
	if side == graph.SideInput {
		return drawutil.SocketPoint(box, drawutil.SocketLeft, portIndex(n.Inputs(), key)), true
	}
	return drawutil.SocketPoint(box, drawutil.SocketRight, portIndex(n.Outputs(), key)), true
}

// drawBox draws a node box with the label embedded in the top border
// and socket glyphs on the side edges.
func drawBox(buf *cellbuf.Buffer, ed *graph.Editor, n *graph.Node, box image.Rectangle, off image.Point) {
	x0, y0 := box.Min.X-off.X, box.Min.Y-off.Y
	x1, y1 := box.Max.X-1-off.X, box.Max.Y-1-off.Y

	for x := x0 + 1; x < x1; x++ {
		buf.Set(x, y0, '─', 0)
		buf.Set(x, y1, '─', 0)
	}
	for y := y0 + 1; y < y1; y++ {
		buf.Set(x0, y, '│', 0)
		buf.Set(x1, y, '│', 0)
	}
	buf.Set(x0, y0, '┌', 0)
	buf.Set(x1, y0, '┐', 0)
	buf.Set(x0, y1, '└', 0)
	buf.Set(x1, y1, '┘', 0)

	// Interior blanked so crossing connection lines don't show through.
	for y := y0 + 1; y < y1; y++ {
		for x := x0 + 1; x < x1; x++ {
			buf.Set(x, y, ' ', 0)
		}
	}

	// Title in the top border: ┌─ LABEL ─┐
	title := " " + n.Label + " "
	if len([]rune(title)) > box.Dx()-4 {
		title = string([]rune(title)[:box.Dx()-4])
	}
	buf.SetString(x0+2, y0, title, 0)

	for i, p := range n.Inputs() {
		pt := drawutil.SocketPoint(box, drawutil.SocketLeft, i)
		connected := len(ed.ConnectionsTo(n.ID, p.Key)) > 0
		buf.Set(pt.X-off.X, pt.Y-off.Y, drawutil.SocketGlyph(connected), 0)
	}
	for i, p := range n.Outputs() {
		pt := drawutil.SocketPoint(box, drawutil.SocketRight, i)
		connected := len(ed.ConnectionsFrom(n.ID, p.Key)) > 0
		buf.Set(pt.X-off.X, pt.Y-off.Y, drawutil.SocketGlyph(connected), 0)
	}
}

// Text writes the board as plain text: connections first, then node
// boxes on top, mirroring the terminal z-order.
func Text(w io.Writer, ed *graph.Editor, positions map[string]area.Point) error {
	r, ok := bounds(ed, positions)
	if !ok {
		_, err := fmt.Fprintln(w, "(empty board)")
		return err
	}
	r = r.Inset(-margin)
	off := r.Min

	buf := cellbuf.New(r.Dx(), r.Dy(), 0)

	for _, c := range ed.Connections() {
		from, ok1 := socketAt(ed, positions, c.Source, graph.SideOutput, c.SourceOutput)
		to, ok2 := socketAt(ed, positions, c.Target, graph.SideInput, c.TargetInput)
		if !ok1 || !ok2 {
			continue
		}
		drawutil.DrawArrowLine(buf,
			from.X+1-off.X, from.Y-off.Y,
			to.X-1-off.X, to.Y-off.Y, 0, 0)
	}

	for _, n := range ed.Nodes() {
		drawBox(buf, ed, n, board.BoxFor(n, positions[n.ID]), off)
	}

	// No style map: Render emits plain text.
	_, err := fmt.Fprintln(w, buf.Render(nil))
	return err
}
