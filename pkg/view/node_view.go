package view

import (
	"github.com/nor-os/plugboard/pkg/area"
	"github.com/nor-os/plugboard/pkg/graph"
)

// NodeTranslateRequest is the interceptable payload of a node move; a
// guard (snap-to-grid) may rewrite Position or veto the move.
type NodeTranslateRequest struct {
	ID       string
	Previous area.Point
	Position area.Point
}

// NodeTranslatedEvent reports an applied node move.
type NodeTranslatedEvent struct {
	ID       string
	Previous area.Point
	Position area.Point
}

// NodeResizeRequest is the interceptable payload of a node resize.
type NodeResizeRequest struct {
	ID            string
	Width, Height float64
}

// NodeResizedEvent reports an applied resize.
type NodeResizedEvent struct {
	ID            string
	Width, Height float64
}

// ContextMenuEvent reports a context-menu gesture on a node or
// connection view.
type ContextMenuEvent struct {
	Type RenderType
	ID   string
}

// NodeView owns the element and content-space geometry of one node. It
// carries its own drag handler so grabbing the node moves the node, not
// the canvas; device deltas are divided by the current area scale to
// keep positions in content space.
type NodeView struct {
	node    *graph.Node
	reg     *Registry
	Element Element

	Position area.Point
	Width    float64
	Height   float64

	drag *area.Drag
}

func newNodeView(reg *Registry, n *graph.Node) *NodeView {
	v := &NodeView{
		node:    n,
		reg:     reg,
		Element: reg.factory(),
	}
	v.drag = area.NewDrag(reg.area.Window(), area.DragConfig{
		Current: func() area.Point { return v.Position },
		Zoom:    func() float64 { return reg.area.Transform().K },
		OnStart: func(area.PointerEvent) {
			reg.NodePicked.Emit(n.ID)
		},
		OnTranslate: func(x, y float64, _ area.PointerEvent) {
			v.Translate(x, y)
		},
		OnDrag: func(area.PointerEvent) {
			reg.NodeDragged.Emit(n.ID)
		},
	})
	return v
}

// Node returns the logical node this view renders.
func (v *NodeView) Node() *graph.Node { return v.node }

// HandlePointerDown offers a pointer-down to the view's drag handler.
// Returns whether a drag gesture started.
func (v *NodeView) HandlePointerDown(ev area.PointerEvent) bool {
	return v.drag.Down(ev)
}

// Dragging reports whether the view's drag gesture is active.
func (v *NodeView) Dragging() bool { return v.drag.Active() }

// Translate proposes a move to (x, y) in content space. The request runs
// through the registry's NodeTranslate guard; on acceptance the position
// is updated and NodeTranslated fires with previous and new positions.
// Returns whether the move was applied.
func (v *NodeView) Translate(x, y float64) bool {
	prev := v.Position
	req := NodeTranslateRequest{ID: v.node.ID, Previous: prev, Position: area.Pt(x, y)}
	req, ok := v.reg.NodeTranslate.Emit(req)
	if !ok {
		return false
	}
	v.Position = req.Position
	v.reg.NodeTranslated.Emit(NodeTranslatedEvent{
		ID:       v.node.ID,
		Previous: prev,
		Position: req.Position,
	})
	return true
}

// Resize proposes a new size. Same guard pattern as Translate.
func (v *NodeView) Resize(w, h float64) bool {
	req := NodeResizeRequest{ID: v.node.ID, Width: w, Height: h}
	req, ok := v.reg.NodeResize.Emit(req)
	if !ok {
		return false
	}
	v.Width = req.Width
	v.Height = req.Height
	v.reg.NodeResized.Emit(NodeResizedEvent{ID: v.node.ID, Width: req.Width, Height: req.Height})
	return true
}

// ContextMenu reports a context-menu gesture on this node.
func (v *NodeView) ContextMenu() {
	v.reg.ContextMenu.Emit(ContextMenuEvent{Type: RenderNode, ID: v.node.ID})
}

func (v *NodeView) destroy() {
	v.drag.Cancel()
}
