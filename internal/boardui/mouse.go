package boardui

import (
	"image"
	"math"

	tea "charm.land/bubbletea/v2"

	"github.com/nor-os/plugboard/pkg/area"
	"github.com/nor-os/plugboard/pkg/drawutil"
	"github.com/nor-os/plugboard/pkg/flow"
	"github.com/nor-os/plugboard/pkg/graph"
	"github.com/nor-os/plugboard/pkg/view"
)

// areaButton maps tea mouse buttons to pointer buttons.
func areaButton(b tea.MouseButton) area.Button {
	switch b {
	case tea.MouseLeft:
		return area.ButtonLeft
	case tea.MouseMiddle:
		return area.ButtonMiddle
	case tea.MouseRight:
		return area.ButtonRight
	}
	return area.ButtonNone
}

// handleMouse processes mouse events and returns updated model + command.
//
// Hit priority on press: socket cell, then node box, then empty canvas.
// Moves and releases always reach the area so window-level drag
// gestures and click detection see the full down/move/up sequence.
func handleMouse(m Model, msg tea.MouseMsg, canvasRect image.Rectangle) (Model, tea.Cmd) {
	mouse := msg.Mouse()
	m.MouseX = mouse.X
	m.MouseY = mouse.Y

	c := m.core
	inCanvas := image.Pt(mouse.X, mouse.Y).In(canvasRect)

	// Canvas-local device coordinates.
	local := area.Pt(
		float64(mouse.X-canvasRect.Min.X),
		float64(mouse.Y-canvasRect.Min.Y),
	)
	ev := area.PointerEvent{
		Device:      local,
		Button:      areaButton(mouse.Button),
		PointerID:   1,
		PointerType: "mouse",
	}

	switch msg.(type) {
	case tea.MouseWheelMsg:
		if !inCanvas {
			return m, nil
		}
		deltaY := 1.0
		if mouse.Button == tea.MouseWheelUp {
			deltaY = -1
		}
		c.Area.HandleWheel(deltaY, local)

	case tea.MouseClickMsg:
		if !inCanvas {
			return m, nil
		}
		if mouse.Button == tea.MouseRight {
			if v := c.nodeAt(local); v != nil {
				v.ContextMenu()
			} else {
				c.Area.HandleContextMenu()
			}
			return m, nil
		}
		if mouse.Button != tea.MouseLeft {
			return m, nil
		}
		if sock, ok := c.socketAt(local); ok {
			wasIdle := c.Flow.Idle()
			c.Flow.Pick(sock, flow.PickDown)
			if wasIdle && !c.Flow.Idle() {
				c.Pseudo.Mount()
				c.renderPreview(local)
				c.status = "drag to a compatible socket"
			}
			return m, nil
		}
		if v := c.nodeAt(local); v != nil {
			ev.Target = v.Element
			v.HandlePointerDown(ev)
			return m, nil
		}
		c.Area.HandlePointerDown(local, ev)

	case tea.MouseMotionMsg:
		c.Area.HandlePointerMove(local, ev)
		if !c.Flow.Idle() {
			c.renderPreview(local)
		}

	case tea.MouseReleaseMsg:
		if !c.Flow.Idle() {
			if sock, ok := c.socketAt(local); ok && inCanvas {
				c.Flow.Pick(sock, flow.PickUp)
			} else {
				c.Flow.Drop()
			}
		}
		c.Area.HandlePointerUp(local, ev)
	}

	return m, nil
}

// screenBox returns a node view's box in canvas-local cells. Box size
// does not scale with zoom; only the anchor moves.
func (c *Core) screenBox(v *view.NodeView) image.Rectangle {
	tr := c.Area.Transform()
	x := int(math.Round(v.Position.X*tr.K + tr.X))
	y := int(math.Round(v.Position.Y*tr.K + tr.Y))
	return image.Rect(x, y, x+int(v.Width), y+int(v.Height))
}

// socketCell returns the canvas-local cell of a socket glyph.
func (c *Core) socketCell(s flow.Socket) (image.Point, bool) {
	v := c.Reg.NodeView(s.NodeID)
	if v == nil {
		return image.Point{}, false
	}
	n := v.Node()
	box := c.screenBox(v)
	side := drawutil.SocketRight
	ports := n.Outputs()
	if s.Side == graph.SideInput {
		side = drawutil.SocketLeft
		ports = n.Inputs()
	}
	for i, p := range ports {
		if p.Key == s.Key {
			return drawutil.SocketPoint(box, side, i), true
		}
	}
	return image.Point{}, false
}

// socketAt hit-tests a canvas-local position against every socket glyph.
func (c *Core) socketAt(local area.Point) (flow.Socket, bool) {
	cell := image.Pt(int(math.Round(local.X)), int(math.Round(local.Y)))
	for _, v := range c.Reg.NodeViews() {
		n := v.Node()
		box := c.screenBox(v)
		for i := range n.Inputs() {
			if drawutil.SocketPoint(box, drawutil.SocketLeft, i) == cell {
				return flow.Socket{NodeID: n.ID, Side: graph.SideInput, Key: n.Inputs()[i].Key}, true
			}
		}
		for i := range n.Outputs() {
			if drawutil.SocketPoint(box, drawutil.SocketRight, i) == cell {
				return flow.Socket{NodeID: n.ID, Side: graph.SideOutput, Key: n.Outputs()[i].Key}, true
			}
		}
	}
	return flow.Socket{}, false
}

// nodeAt hit-tests a canvas-local position against node boxes, topmost
// first per the registry z-order.
func (c *Core) nodeAt(local area.Point) *view.NodeView {
	cell := image.Pt(int(math.Round(local.X)), int(math.Round(local.Y)))
	order := c.Reg.ContentOrder()
	for i := len(order) - 1; i >= 0; i-- {
		for _, v := range c.Reg.NodeViews() {
			if v.Element == order[i] && cell.In(c.screenBox(v)) {
				return v
			}
		}
	}
	return nil
}

// renderPreview re-renders the pseudoconnection wire from the picked
// socket to the pointer, both in content space.
func (c *Core) renderPreview(local area.Point) {
	initial := c.Flow.Initial()
	if initial == nil {
		return
	}
	cell, ok := c.socketCell(*initial)
	if !ok {
		return
	}
	pointer := c.Area.ContentPoint(local)
	anchor := c.Area.ContentPoint(area.Pt(float64(cell.X), float64(cell.Y)))
	c.Pseudo.Render(pointer, view.SocketInfo{
		NodeID: initial.NodeID,
		Key:    initial.Key,
		Side:   initial.Side,
	}, anchor)
}
