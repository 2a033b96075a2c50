package boardui

import (
	"image"
	"math"

	"charm.land/lipgloss/v2"

	"github.com/nor-os/plugboard/pkg/cellbuf"
	"github.com/nor-os/plugboard/pkg/drawutil"
	"github.com/nor-os/plugboard/pkg/ext"
	"github.com/nor-os/plugboard/pkg/flow"
	"github.com/nor-os/plugboard/pkg/graph"
	"github.com/nor-os/plugboard/pkg/view"
)

// socketOf returns the flow socket for one end of a connection.
func socketOf(c *graph.Connection, side graph.Side) flow.Socket {
	if side == graph.SideOutput {
		return flow.Socket{NodeID: c.Source, Side: graph.SideOutput, Key: c.SourceOutput}
	}
	return flow.Socket{NodeID: c.Target, Side: graph.SideInput, Key: c.TargetInput}
}

// buildCanvasLayer renders the whole board — grid, wires, in-flight
// preview, node boxes — into one cellbuf and returns it as a single
// background Layer at Z=0.
func buildCanvasLayer(c *Core, viewport image.Rectangle) *lipgloss.Layer {
	w := viewport.Dx()
	h := viewport.Dy()
	if w <= 0 || h <= 0 {
		return lipgloss.NewLayer("").X(viewport.Min.X).Y(viewport.Min.Y).Z(0)
	}

	buf := cellbuf.New(w, h, styleBG)
	tr := c.Area.Transform()

	// Grid dots
	drawutil.DrawGrid(buf, -int(math.Round(tr.X)), -int(math.Round(tr.Y)), 6, 3, styleGrid)

	// Wires between socket glyphs
	for _, conn := range c.Editor.Connections() {
		from, ok1 := c.socketCell(socketOf(conn, graph.SideOutput))
		to, ok2 := c.socketCell(socketOf(conn, graph.SideInput))
		if !ok1 || !ok2 {
			continue
		}
		drawutil.DrawArrowLine(buf, from.X+1, from.Y, to.X-1, to.Y, styleWire, styleWire)
	}

	// In-flight connection preview, content → screen
	if c.preview != nil {
		sx := int(math.Round(c.preview.Start.X*tr.K + tr.X))
		sy := int(math.Round(c.preview.Start.Y*tr.K + tr.Y))
		ex := int(math.Round(c.preview.End.X*tr.K + tr.X))
		ey := int(math.Round(c.preview.End.Y*tr.K + tr.Y))
		drawutil.DrawDashedLine(buf, sx, sy, ex, ey, stylePreview)
	}

	// Node boxes, bottom to top per registry z-order
	for _, el := range c.Reg.ContentOrder() {
		for _, v := range c.Reg.NodeViews() {
			if v.Element == el {
				drawNodeBox(buf, c, v)
			}
		}
	}

	rendered := buf.Render(bufStyles)
	return lipgloss.NewLayer(rendered).X(viewport.Min.X).Y(viewport.Min.Y).Z(0).ID("board-canvas")
}

// drawNodeBox draws one node into the canvas buffer: bordered box with
// the label in the top border, port labels inside and socket glyphs on
// the side edges.
func drawNodeBox(buf *cellbuf.Buffer, c *Core, v *view.NodeView) {
	n := v.Node()
	box := c.screenBox(v)
	if !box.Overlaps(image.Rect(0, 0, buf.W, buf.H)) {
		return
	}

	bs := styleNode
	if c.Sel.IsSelected(ext.NodeEntity(c.Reg, n.ID)) {
		bs = styleNodeSel
	}

	x0, y0 := box.Min.X, box.Min.Y
	x1, y1 := box.Max.X-1, box.Max.Y-1

	for x := x0 + 1; x < x1; x++ {
		buf.Set(x, y0, '─', bs)
		buf.Set(x, y1, '─', bs)
	}
	for y := y0 + 1; y < y1; y++ {
		buf.Set(x0, y, '│', bs)
		buf.Set(x1, y, '│', bs)
	}
	buf.Set(x0, y0, '┌', bs)
	buf.Set(x1, y0, '┐', bs)
	buf.Set(x0, y1, '└', bs)
	buf.Set(x1, y1, '┘', bs)

	for y := y0 + 1; y < y1; y++ {
		for x := x0 + 1; x < x1; x++ {
			buf.Set(x, y, ' ', bs)
		}
	}

	title := " " + n.Label + " "
	if len([]rune(title)) > box.Dx()-4 {
		title = string([]rune(title)[:box.Dx()-4])
	}
	buf.SetString(x0+2, y0, title, bs)

	initial := c.Flow.Initial()
	for i, p := range n.Inputs() {
		pt := drawutil.SocketPoint(box, drawutil.SocketLeft, i)
		connected := len(c.Editor.ConnectionsTo(n.ID, p.Key)) > 0
		buf.Set(pt.X, pt.Y, drawutil.SocketGlyph(connected), socketStyle(initial, n.ID, graph.SideInput, p.Key, connected))
		buf.SetString(pt.X+1, pt.Y, clipLabel(p.Label, box.Dx()/2-1), stylePort)
	}
	for i, p := range n.Outputs() {
		pt := drawutil.SocketPoint(box, drawutil.SocketRight, i)
		connected := len(c.Editor.ConnectionsFrom(n.ID, p.Key)) > 0
		buf.Set(pt.X, pt.Y, drawutil.SocketGlyph(connected), socketStyle(initial, n.ID, graph.SideOutput, p.Key, connected))
		label := clipLabel(p.Label, box.Dx()/2-1)
		buf.SetString(pt.X-len([]rune(label)), pt.Y, label, stylePort)
	}
}

// socketStyle highlights the socket an in-flight connection started on.
func socketStyle(initial *flow.Socket, nodeID string, side graph.Side, key string, connected bool) cellbuf.StyleKey {
	if initial != nil && initial.NodeID == nodeID && initial.Side == side && initial.Key == key {
		return styleSocketHot
	}
	if connected {
		return styleSocketOn
	}
	return styleSocket
}

// clipLabel truncates a port label to the given width.
func clipLabel(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) > max {
		return string(r[:max])
	}
	return s
}
