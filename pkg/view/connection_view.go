package view

import "github.com/nor-os/plugboard/pkg/graph"

// ConnectionView owns the element for one logical connection. Unlike
// node views it has no drag handler; its lifecycle is element creation,
// render, context-menu passthrough and unmount.
type ConnectionView struct {
	conn    *graph.Connection
	reg     *Registry
	Element Element
}

func newConnectionView(reg *Registry, c *graph.Connection) *ConnectionView {
	return &ConnectionView{
		conn:    c,
		reg:     reg,
		Element: reg.factory(),
	}
}

// Connection returns the logical connection this view renders.
func (v *ConnectionView) Connection() *graph.Connection { return v.conn }

// ContextMenu reports a context-menu gesture on this connection.
func (v *ConnectionView) ContextMenu() {
	v.reg.ContextMenu.Emit(ContextMenuEvent{Type: RenderConnection, ID: v.conn.ID})
}
