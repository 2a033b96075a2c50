// Package flow implements the pick/drop protocol that turns socket
// gestures into connections: grab a socket, drag (or click) to a
// compatible socket, and the flow mutates the graph model and reports
// the drop. Two policies exist: ClassicFlow requires an output/input
// pair and supports rewiring an existing connection; BidirectFlow
// completes on any second pick, for click-to-connect UIs.
//
// Flows hold only transient gesture state; the graph itself is owned by
// the Board they are given. State transitions are a tagged union with
// explicit transition methods rather than polymorphic state objects.
package flow

import "github.com/nor-os/plugboard/pkg/graph"

// Socket identifies a logical connection endpoint: node, side, port key.
type Socket struct {
	NodeID string
	Side   graph.Side
	Key    string
}

// PickEvent distinguishes the gesture phase a pick arrived on.
type PickEvent string

const (
	PickDown PickEvent = "down"
	PickUp   PickEvent = "up"
)

// Board is the graph model surface a flow needs. *graph.Editor
// satisfies it.
type Board interface {
	Node(id string) *graph.Node
	Connections() []*graph.Connection
	AddConnection(*graph.Connection) bool
	RemoveConnection(id string) bool
}

// DropEvent reports the end of a pick gesture. Socket is nil when the
// gesture was cancelled; Created reports whether a connection was made.
type DropEvent struct {
	Initial Socket
	Socket  *Socket
	Created bool
}

// SourceTarget orients a socket pair: whichever side is the output
// becomes the source and the input the target, regardless of pick
// order. Two sockets on the same side cannot form a connection and
// report ok == false. This is the single source of directional truth
// for both flow variants.
func SourceTarget(a, b Socket) (source, target Socket, ok bool) {
	if a.Side == graph.SideOutput && b.Side == graph.SideInput {
		return a, b, true
	}
	if a.Side == graph.SideInput && b.Side == graph.SideOutput {
		return b, a, true
	}
	return Socket{}, Socket{}, false
}

// CanMakeConnection reports whether the pair is directionally valid.
func CanMakeConnection(a, b Socket) bool {
	_, _, ok := SourceTarget(a, b)
	return ok
}

// pickState is the tagged-union discriminator for flow state.
type pickState int

const (
	stateIdle pickState = iota
	statePicked
	statePickedExisting
)

// syncConnections removes prior connections occupying the target input,
// unless the port is declared to accept multiple connections. Each
// displaced connection is removed exactly once.
func syncConnections(b Board, target Socket) {
	n := b.Node(target.NodeID)
	if n == nil {
		return
	}
	port := n.Port(graph.SideInput, target.Key)
	if port == nil || port.Multiple {
		return
	}
	for _, c := range b.Connections() {
		if c.Target == target.NodeID && c.TargetInput == target.Key {
			b.RemoveConnection(c.ID)
		}
	}
}

// makeConnection orients the pair and adds the connection to the board.
// Returns whether a connection was created.
func makeConnection(b Board, a, s Socket) bool {
	src, dst, ok := SourceTarget(a, s)
	if !ok {
		return false
	}
	return b.AddConnection(&graph.Connection{
		Source:       src.NodeID,
		SourceOutput: src.Key,
		Target:       dst.NodeID,
		TargetInput:  dst.Key,
	})
}
