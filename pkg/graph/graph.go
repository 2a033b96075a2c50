// Package graph holds the logical node-graph model: nodes with typed
// ports, directed connections between an output port and an input port,
// and an Editor that owns both sets and announces changes through pipes.
//
// The model knows nothing about rendering or coordinates. View registries
// subscribe to the change pipes and keep the on-screen representation in
// sync; the connection flows mutate the model only through the Editor.
package graph

import (
	"fmt"

	"github.com/nor-os/plugboard/pkg/events"
)

// Side distinguishes input ports from output ports.
type Side int

const (
	SideInput Side = iota
	SideOutput
)

// String returns "input" or "output".
func (s Side) String() string {
	if s == SideOutput {
		return "output"
	}
	return "input"
}

// Port is a named connection endpoint on one side of a node. A port with
// Multiple set accepts any number of connections; otherwise a new
// connection displaces the existing one.
type Port struct {
	Key      string
	Label    string
	Multiple bool
}

// Node is a logical graph node with ordered input and output ports.
type Node struct {
	ID      string
	Label   string
	inputs  []Port
	outputs []Port
}

// NewNode creates a node with no ports.
func NewNode(id, label string) *Node {
	return &Node{ID: id, Label: label}
}

// AddInput appends an input port. Returns the node for chaining.
func (n *Node) AddInput(key, label string, multiple bool) *Node {
	n.inputs = append(n.inputs, Port{Key: key, Label: label, Multiple: multiple})
	return n
}

// AddOutput appends an output port. Returns the node for chaining.
func (n *Node) AddOutput(key, label string, multiple bool) *Node {
	n.outputs = append(n.outputs, Port{Key: key, Label: label, Multiple: multiple})
	return n
}

// Inputs returns the input ports in declaration order.
func (n *Node) Inputs() []Port { return n.inputs }

// Outputs returns the output ports in declaration order.
func (n *Node) Outputs() []Port { return n.outputs }

// Port returns the port with the given side and key, or nil.
func (n *Node) Port(side Side, key string) *Port {
	ports := n.inputs
	if side == SideOutput {
		ports = n.outputs
	}
	for i := range ports {
		if ports[i].Key == key {
			return &ports[i]
		}
	}
	return nil
}

// Connection is a directed edge from an output port to an input port.
// Source/Target are node ids; SourceOutput/TargetInput are port keys.
type Connection struct {
	ID           string
	Source       string
	SourceOutput string
	Target       string
	TargetInput  string
}

// Editor owns the node and connection sets. All mutation goes through its
// methods; changes are announced on the *Created/*Removed pipes after the
// model has been updated. Iteration order is insertion order.
type Editor struct {
	nodes     map[string]*Node
	nodeOrder []string
	conns     map[string]*Connection
	connOrder []string
	nextID    int

	NodeCreated       events.Pipe[*Node]
	NodeRemoved       events.Pipe[string]
	ConnectionCreated events.Pipe[*Connection]
	ConnectionRemoved events.Pipe[string]
}

// NewEditor creates an empty editor.
func NewEditor() *Editor {
	return &Editor{
		nodes: make(map[string]*Node),
		conns: make(map[string]*Connection),
	}
}

// ── Node operations ──

// AddNode inserts a node and emits nodecreated. A node with an empty or
// already-used id is rejected.
func (e *Editor) AddNode(n *Node) bool {
	if n == nil || n.ID == "" {
		return false
	}
	if _, exists := e.nodes[n.ID]; exists {
		return false
	}
	e.nodes[n.ID] = n
	e.nodeOrder = append(e.nodeOrder, n.ID)
	e.NodeCreated.Emit(n)
	return true
}

// Node returns the node with the given id, or nil.
func (e *Editor) Node(id string) *Node {
	return e.nodes[id]
}

// Nodes returns all nodes in insertion order.
func (e *Editor) Nodes() []*Node {
	result := make([]*Node, 0, len(e.nodeOrder))
	for _, id := range e.nodeOrder {
		if n, ok := e.nodes[id]; ok {
			result = append(result, n)
		}
	}
	return result
}

// RemoveNode deletes the node and every connection touching it, emitting
// connectionremoved for each followed by noderemoved. Unknown ids are a
// no-op.
func (e *Editor) RemoveNode(id string) {
	if _, ok := e.nodes[id]; !ok {
		return
	}
	for _, c := range e.Connections() {
		if c.Source == id || c.Target == id {
			e.RemoveConnection(c.ID)
		}
	}
	delete(e.nodes, id)
	for i, oid := range e.nodeOrder {
		if oid == id {
			e.nodeOrder = append(e.nodeOrder[:i], e.nodeOrder[i+1:]...)
			break
		}
	}
	e.NodeRemoved.Emit(id)
}

// ── Connection operations ──

// AddConnection validates and inserts a connection, emitting
// connectioncreated. The source endpoint must name an existing output
// port and the target an existing input port. An empty ID is assigned
// automatically. Duplicate (source, output, target, input) tuples are
// silently ignored. Returns whether the connection was added.
func (e *Editor) AddConnection(c *Connection) bool {
	if c == nil {
		return false
	}
	src := e.nodes[c.Source]
	dst := e.nodes[c.Target]
	if src == nil || dst == nil {
		return false
	}
	if src.Port(SideOutput, c.SourceOutput) == nil {
		return false
	}
	if dst.Port(SideInput, c.TargetInput) == nil {
		return false
	}
	for _, id := range e.connOrder {
		prev := e.conns[id]
		if prev.Source == c.Source && prev.SourceOutput == c.SourceOutput &&
			prev.Target == c.Target && prev.TargetInput == c.TargetInput {
			return false
		}
	}
	if c.ID == "" {
		c.ID = fmt.Sprintf("c%d", e.nextID)
		e.nextID++
	} else if _, exists := e.conns[c.ID]; exists {
		return false
	}
	e.conns[c.ID] = c
	e.connOrder = append(e.connOrder, c.ID)
	e.ConnectionCreated.Emit(c)
	return true
}

// Connection returns the connection with the given id, or nil.
func (e *Editor) Connection(id string) *Connection {
	return e.conns[id]
}

// Connections returns all connections in insertion order.
func (e *Editor) Connections() []*Connection {
	result := make([]*Connection, 0, len(e.connOrder))
	for _, id := range e.connOrder {
		if c, ok := e.conns[id]; ok {
			result = append(result, c)
		}
	}
	return result
}

// RemoveConnection deletes a connection and emits connectionremoved.
// Unknown ids are a no-op; returns whether anything was removed.
func (e *Editor) RemoveConnection(id string) bool {
	if _, ok := e.conns[id]; !ok {
		return false
	}
	delete(e.conns, id)
	for i, cid := range e.connOrder {
		if cid == id {
			e.connOrder = append(e.connOrder[:i], e.connOrder[i+1:]...)
			break
		}
	}
	e.ConnectionRemoved.Emit(id)
	return true
}

// ConnectionsTo returns the connections terminating at the given input
// port, in insertion order.
func (e *Editor) ConnectionsTo(nodeID, inputKey string) []*Connection {
	var result []*Connection
	for _, c := range e.Connections() {
		if c.Target == nodeID && c.TargetInput == inputKey {
			result = append(result, c)
		}
	}
	return result
}

// ConnectionsFrom returns the connections originating at the given
// output port, in insertion order.
func (e *Editor) ConnectionsFrom(nodeID, outputKey string) []*Connection {
	var result []*Connection
	for _, c := range e.Connections() {
		if c.Source == nodeID && c.SourceOutput == outputKey {
			result = append(result, c)
		}
	}
	return result
}
