// Package board reads and writes the TOML board file format: nodes with
// positions and ports, plus the connections between them.
package board

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/nor-os/plugboard/pkg/area"
	"github.com/nor-os/plugboard/pkg/graph"
)

// PortSpec describes one input or output port.
type PortSpec struct {
	Key      string `toml:"key"`
	Label    string `toml:"label,omitempty"`
	Multiple bool   `toml:"multiple,omitempty"`
}

// NodeSpec describes a node and its board position.
type NodeSpec struct {
	ID      string     `toml:"id"`
	Label   string     `toml:"label"`
	X       float64    `toml:"x"`
	Y       float64    `toml:"y"`
	Inputs  []PortSpec `toml:"inputs,omitempty"`
	Outputs []PortSpec `toml:"outputs,omitempty"`
}

// ConnSpec describes a connection between two ports.
type ConnSpec struct {
	From   string `toml:"from"`
	Output string `toml:"output"`
	To     string `toml:"to"`
	Input  string `toml:"input"`
}

// File is a complete board document.
type File struct {
	Title       string     `toml:"title,omitempty"`
	Nodes       []NodeSpec `toml:"nodes"`
	Connections []ConnSpec `toml:"connections,omitempty"`
}

// Load parses a board file from disk.
func Load(path string) (*File, error) {
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("board %s: %w", path, err)
	}
	return &f, nil
}

// Save writes the board document to disk.
func (f *File) Save(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	return toml.NewEncoder(out).Encode(f)
}

// Build materializes the document into an editor plus the per-node
// board positions. Connections referencing unknown nodes or ports are
// an error rather than a silent skip.
func (f *File) Build() (*graph.Editor, map[string]area.Point, error) {
	ed := graph.NewEditor()
	positions := make(map[string]area.Point, len(f.Nodes))

	for _, ns := range f.Nodes {
		if ns.ID == "" {
			return nil, nil, fmt.Errorf("board: node without id")
		}
		n := graph.NewNode(ns.ID, ns.Label)
		for _, p := range ns.Inputs {
			n.AddInput(p.Key, p.Label, p.Multiple)
		}
		for _, p := range ns.Outputs {
			n.AddOutput(p.Key, p.Label, p.Multiple)
		}
		if !ed.AddNode(n) {
			return nil, nil, fmt.Errorf("board: duplicate node id %q", ns.ID)
		}
		positions[ns.ID] = area.Pt(ns.X, ns.Y)
	}

	for _, cs := range f.Connections {
		c := &graph.Connection{
			Source:       cs.From,
			SourceOutput: cs.Output,
			Target:       cs.To,
			TargetInput:  cs.Input,
		}
		if !ed.AddConnection(c) {
			return nil, nil, fmt.Errorf("board: bad connection %s.%s -> %s.%s",
				cs.From, cs.Output, cs.To, cs.Input)
		}
	}

	return ed, positions, nil
}

// Snapshot captures the current editor state back into a document.
// Node order follows the editor's insertion order.
func Snapshot(ed *graph.Editor, positions map[string]area.Point, title string) *File {
	f := &File{Title: title}

	for _, n := range ed.Nodes() {
		ns := NodeSpec{ID: n.ID, Label: n.Label}
		if p, ok := positions[n.ID]; ok {
			ns.X, ns.Y = p.X, p.Y
		}
		for _, port := range n.Inputs() {
			ns.Inputs = append(ns.Inputs, PortSpec{Key: port.Key, Label: port.Label, Multiple: port.Multiple})
		}
		for _, port := range n.Outputs() {
			ns.Outputs = append(ns.Outputs, PortSpec{Key: port.Key, Label: port.Label, Multiple: port.Multiple})
		}
		f.Nodes = append(f.Nodes, ns)
	}

	for _, c := range ed.Connections() {
		f.Connections = append(f.Connections, ConnSpec{
			From:   c.Source,
			Output: c.SourceOutput,
			To:     c.Target,
			Input:  c.TargetInput,
		})
	}

	return f
}

// Demo returns the built-in example board: a small synth-style patch.
func Demo() *File {
	return &File{
		Title: "demo patch",
		Nodes: []NodeSpec{
			{
				ID: "osc1", Label: "OSC A", X: 4, Y: 2,
				Outputs: []PortSpec{{Key: "out", Label: "out"}},
			},
			{
				ID: "osc2", Label: "OSC B", X: 4, Y: 10,
				Outputs: []PortSpec{{Key: "out", Label: "out"}},
			},
			{
				ID: "mix", Label: "MIXER", X: 36, Y: 6,
				Inputs:  []PortSpec{{Key: "in", Label: "in", Multiple: true}},
				Outputs: []PortSpec{{Key: "out", Label: "out"}},
			},
			{
				ID: "filt", Label: "FILTER", X: 66, Y: 6,
				Inputs:  []PortSpec{{Key: "in", Label: "in"}},
				Outputs: []PortSpec{{Key: "out", Label: "out"}},
			},
			{
				ID: "amp", Label: "OUTPUT", X: 96, Y: 6,
				Inputs: []PortSpec{{Key: "in", Label: "in"}},
			},
		},
		Connections: []ConnSpec{
			{From: "osc1", Output: "out", To: "mix", Input: "in"},
			{From: "osc2", Output: "out", To: "mix", Input: "in"},
			{From: "mix", Output: "out", To: "filt", Input: "in"},
			{From: "filt", Output: "out", To: "amp", Input: "in"},
		},
	}
}
