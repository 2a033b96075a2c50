package view

import (
	"fmt"

	"github.com/nor-os/plugboard/pkg/area"
	"github.com/nor-os/plugboard/pkg/events"
	"github.com/nor-os/plugboard/pkg/graph"
)

// Registry creates and destroys the view for each graph node and
// connection. It subscribes to the editor's change pipes on construction
// so views follow the model automatically, keeps a z-ordered content
// list, and dispatches render/unmount events for front ends to act on.
type Registry struct {
	editor  *graph.Editor
	area    *area.Area
	factory ElementFactory

	nodes   map[string]*NodeView
	conns   map[string]*ConnectionView
	content []Element
	holder  *ElementsHolder

	Render  events.Pipe[RenderEvent]
	Unmount events.Pipe[UnmountEvent]

	NodePicked     events.Pipe[string]
	NodeTranslate  events.Pipe[NodeTranslateRequest] // guard
	NodeTranslated events.Pipe[NodeTranslatedEvent]
	NodeDragged    events.Pipe[string]
	NodeResize     events.Pipe[NodeResizeRequest] // guard
	NodeResized    events.Pipe[NodeResizedEvent]
	ContextMenu    events.Pipe[ContextMenuEvent]
}

// NewRegistry wires a registry to an editor and an area. Nodes and
// connections already present in the editor get views immediately.
func NewRegistry(ed *graph.Editor, ar *area.Area, factory ElementFactory) *Registry {
	r := &Registry{
		editor:  ed,
		area:    ar,
		factory: factory,
		nodes:   make(map[string]*NodeView),
		conns:   make(map[string]*ConnectionView),
		holder:  NewElementsHolder(),
	}
	ed.NodeCreated.Listen(func(n *graph.Node) { r.AddNodeView(n) })
	ed.NodeRemoved.Listen(func(id string) { r.RemoveNodeView(id) })
	ed.ConnectionCreated.Listen(func(c *graph.Connection) { r.AddConnectionView(c) })
	ed.ConnectionRemoved.Listen(func(id string) { r.RemoveConnectionView(id) })

	for _, n := range ed.Nodes() {
		r.AddNodeView(n)
	}
	for _, c := range ed.Connections() {
		r.AddConnectionView(c)
	}
	return r
}

// Area returns the viewport engine the registry is bound to.
func (r *Registry) Area() *area.Area { return r.area }

// ── Node views ──

// AddNodeView creates (or returns the existing) view for a node, appends
// its element to the content order and emits a render event.
func (r *Registry) AddNodeView(n *graph.Node) *NodeView {
	if v, ok := r.nodes[n.ID]; ok {
		return v
	}
	v := newNodeView(r, n)
	r.nodes[n.ID] = v
	r.content = append(r.content, v.Element)
	r.emitRender(RenderEvent{Type: RenderNode, Element: v.Element, Node: n}, n.ID)
	return v
}

// RemoveNodeView emits unmount and drops the view. Unknown ids no-op.
func (r *Registry) RemoveNodeView(id string) {
	v, ok := r.nodes[id]
	if !ok {
		return
	}
	v.destroy()
	r.Unmount.Emit(UnmountEvent{Element: v.Element})
	r.holder.Delete(RenderNode, id)
	r.removeContent(v.Element)
	delete(r.nodes, id)
}

// NodeView returns the view for a node id, or nil.
func (r *Registry) NodeView(id string) *NodeView {
	return r.nodes[id]
}

// NodeViews returns every node view, in no particular order.
func (r *Registry) NodeViews() []*NodeView {
	result := make([]*NodeView, 0, len(r.nodes))
	for _, v := range r.nodes {
		result = append(result, v)
	}
	return result
}

// Translate forwards to the node view's Translate; no-op if the view
// does not exist.
func (r *Registry) Translate(id string, p area.Point) {
	if v, ok := r.nodes[id]; ok {
		v.Translate(p.X, p.Y)
	}
}

// Resize forwards to the node view's Resize; no-op if absent.
func (r *Registry) Resize(id string, w, h float64) {
	if v, ok := r.nodes[id]; ok {
		v.Resize(w, h)
	}
}

// ── Connection views ──

// AddConnectionView creates (or returns the existing) view for a
// connection and emits a render event.
func (r *Registry) AddConnectionView(c *graph.Connection) *ConnectionView {
	if v, ok := r.conns[c.ID]; ok {
		return v
	}
	v := newConnectionView(r, c)
	r.conns[c.ID] = v
	r.content = append(r.content, v.Element)
	r.emitRender(RenderEvent{Type: RenderConnection, Element: v.Element, Connection: c}, c.ID)
	return v
}

// RemoveConnectionView emits unmount and drops the view. Unknown ids
// no-op.
func (r *Registry) RemoveConnectionView(id string) {
	v, ok := r.conns[id]
	if !ok {
		return
	}
	r.Unmount.Emit(UnmountEvent{Element: v.Element})
	r.holder.Delete(RenderConnection, id)
	r.removeContent(v.Element)
	delete(r.conns, id)
}

// ConnectionView returns the view for a connection id, or nil.
func (r *Registry) ConnectionView(id string) *ConnectionView {
	return r.conns[id]
}

// ── Sockets ──

// MountSocket announces a rendered socket element. The socket registry
// picks the descriptor up from the render event.
func (r *Registry) MountSocket(el Element, info SocketInfo) {
	socket := info
	r.Render.Emit(RenderEvent{Type: RenderSocket, Element: el, Socket: &socket})
}

// UnmountSocket announces a socket element going away.
func (r *Registry) UnmountSocket(el Element) {
	r.Unmount.Emit(UnmountEvent{Element: el})
}

// ── Shared operations ──

// Update re-emits the last render payload for (type, id), forcing a
// visual refresh without recreating the element. Unknown ids no-op.
func (r *Registry) Update(typ RenderType, id string) {
	el := r.holder.Element(typ, id)
	if el == nil {
		return
	}
	if ev, ok := r.holder.Payload(el); ok {
		r.Render.Emit(ev)
	}
}

// Reorder moves an element within the z-order so it renders just below
// before, or on top when before is nil. Asking to reorder an element
// that is not in the content list indicates caller state
// desynchronization and is reported as an error.
func (r *Registry) Reorder(el, before Element) error {
	idx := r.contentIndex(el)
	if idx < 0 {
		return fmt.Errorf("reorder: element not found in content")
	}
	r.content = append(r.content[:idx], r.content[idx+1:]...)
	if before == nil {
		r.content = append(r.content, el)
		return nil
	}
	bidx := r.contentIndex(before)
	if bidx < 0 {
		return fmt.Errorf("reorder: reference element not found in content")
	}
	r.content = append(r.content[:bidx], append([]Element{el}, r.content[bidx:]...)...)
	return nil
}

// ContentOrder returns the current z-order, bottom first.
func (r *Registry) ContentOrder() []Element {
	out := make([]Element, len(r.content))
	copy(out, r.content)
	return out
}

func (r *Registry) emitRender(ev RenderEvent, id string) {
	r.holder.Set(ev.Type, id, ev)
	r.Render.Emit(ev)
}

func (r *Registry) contentIndex(el Element) int {
	for i, e := range r.content {
		if e == el {
			return i
		}
	}
	return -1
}

func (r *Registry) removeContent(el Element) {
	if idx := r.contentIndex(el); idx >= 0 {
		r.content = append(r.content[:idx], r.content[idx+1:]...)
	}
}
