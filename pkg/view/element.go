// Package view keeps the on-screen representation of the logical graph
// in sync with the model: one view per node and connection, a registry
// of rendered socket elements, and the ephemeral pseudoconnection shown
// while a wire is being dragged.
//
// Views own opaque elements produced by an injected factory; the actual
// drawing happens in whatever front end subscribes to the Render and
// Unmount pipes. Operations on unknown ids are silent no-ops: model
// changes legitimately race against view teardown.
package view

import (
	"github.com/nor-os/plugboard/pkg/area"
	"github.com/nor-os/plugboard/pkg/graph"
)

// Element is an opaque handle to a rendered view element. Values must be
// comparable because registries key maps on element identity; pointer
// types satisfy this naturally.
type Element any

// ElementFactory produces a fresh element for a new view.
type ElementFactory func() Element

// RenderType tags what kind of view a render event belongs to.
type RenderType string

const (
	RenderNode       RenderType = "node"
	RenderConnection RenderType = "connection"
	RenderSocket     RenderType = "socket"
)

// SocketInfo describes a logical socket: which node, which port key, and
// which side. Identity is the triple.
type SocketInfo struct {
	NodeID string
	Key    string
	Side   graph.Side
}

// Preview is the drawable payload of the pseudoconnection: a wire from
// Start (offset from the picked socket) to End (the live pointer).
type Preview struct {
	ID         string
	Start, End area.Point
}

// RenderEvent asks the front end to (re)draw an element. Exactly one of
// Node, Connection, Socket or Preview is set, per Type; Preview renders
// carry Type RenderConnection with a nil Connection.
type RenderEvent struct {
	Type    RenderType
	Element Element

	Node       *graph.Node
	Connection *graph.Connection
	Socket     *SocketInfo
	Preview    *Preview
}

// UnmountEvent tells the front end an element is gone.
type UnmountEvent struct {
	Element Element
}
