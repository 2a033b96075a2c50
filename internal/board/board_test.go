package board

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nor-os/plugboard/pkg/area"
	"github.com/nor-os/plugboard/pkg/graph"
)

func TestDemoBuilds(t *testing.T) {
	ed, positions, err := Demo().Build()
	if err != nil {
		t.Fatalf("demo board failed to build: %v", err)
	}
	if len(ed.Nodes()) != 5 {
		t.Errorf("expected 5 nodes, got %d", len(ed.Nodes()))
	}
	if len(ed.Connections()) != 4 {
		t.Errorf("expected 4 connections, got %d", len(ed.Connections()))
	}
	if p, ok := positions["mix"]; !ok || p != area.Pt(36, 6) {
		t.Errorf("mix position = %v, want (36,6)", p)
	}
	// The mixer input is multiple: both oscillators connect to it.
	if got := len(ed.ConnectionsTo("mix", "in")); got != 2 {
		t.Errorf("mix.in has %d connections, want 2", got)
	}
}

func TestBuildRejectsUnknownEndpoint(t *testing.T) {
	f := &File{
		Nodes: []NodeSpec{
			{ID: "a", Label: "A", Outputs: []PortSpec{{Key: "out"}}},
		},
		Connections: []ConnSpec{
			{From: "a", Output: "out", To: "ghost", Input: "in"},
		},
	}
	if _, _, err := f.Build(); err == nil {
		t.Fatal("expected error for connection to unknown node")
	}
}

func TestBuildRejectsDuplicateID(t *testing.T) {
	f := &File{
		Nodes: []NodeSpec{
			{ID: "a", Label: "A"},
			{ID: "a", Label: "A again"},
		},
	}
	if _, _, err := f.Build(); err == nil {
		t.Fatal("expected error for duplicate node id")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patch.toml")

	if err := Demo().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Title != "demo patch" {
		t.Errorf("title = %q, want 'demo patch'", loaded.Title)
	}
	if len(loaded.Nodes) != 5 || len(loaded.Connections) != 4 {
		t.Errorf("got %d nodes / %d connections, want 5/4",
			len(loaded.Nodes), len(loaded.Connections))
	}
	if _, _, err := loaded.Build(); err != nil {
		t.Errorf("reloaded board failed to build: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	os.WriteFile(path, []byte("[[nodes\n"), 0o644)
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSnapshotMirrorsEditor(t *testing.T) {
	ed, positions, err := Demo().Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	// Mutate: move a node, add a connection via a fresh node.
	positions["amp"] = area.Pt(120, 8)
	ed.AddNode(graph.NewNode("lfo", "LFO").AddOutput("out", "out", false))
	positions["lfo"] = area.Pt(4, 18)

	f := Snapshot(ed, positions, "edited")
	if f.Title != "edited" {
		t.Errorf("title = %q", f.Title)
	}
	if len(f.Nodes) != 6 {
		t.Errorf("expected 6 nodes, got %d", len(f.Nodes))
	}
	var amp *NodeSpec
	for i := range f.Nodes {
		if f.Nodes[i].ID == "amp" {
			amp = &f.Nodes[i]
		}
	}
	if amp == nil || amp.X != 120 || amp.Y != 8 {
		t.Errorf("amp position not captured: %+v", amp)
	}

	// Round-trip: the snapshot must build back.
	if _, _, err := f.Build(); err != nil {
		t.Errorf("snapshot failed to build: %v", err)
	}
}
