package view

import (
	"testing"

	"github.com/nor-os/plugboard/pkg/area"
	"github.com/nor-os/plugboard/pkg/graph"
)

func TestPseudoconnectionRenderBeforeMountPanics(t *testing.T) {
	_, _, reg := newFixture()
	p := NewPseudoconnection(reg)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on render before mount")
		}
	}()
	p.Render(area.Pt(0, 0), SocketInfo{}, area.Pt(0, 0))
}

func TestPseudoconnectionFreshIDsPerMount(t *testing.T) {
	_, _, reg := newFixture()
	p := NewPseudoconnection(reg)

	p.Mount()
	first := p.ID()
	p.Unmount()
	p.Mount()
	if p.ID() == first {
		t.Errorf("id %q reused across mounts", p.ID())
	}
}

func TestPseudoconnectionAnchorOffsets(t *testing.T) {
	_, _, reg := newFixture()
	var last RenderEvent
	reg.Render.Listen(func(ev RenderEvent) { last = ev })

	p := NewPseudoconnection(reg)
	p.Mount()

	p.Render(area.Pt(50, 50), SocketInfo{Side: graph.SideOutput}, area.Pt(10, 20))
	if last.Preview == nil {
		t.Fatal("preview payload missing")
	}
	if last.Preview.Start != area.Pt(13, 20) {
		t.Errorf("output anchor = %v, want (13,20)", last.Preview.Start)
	}
	if last.Preview.End != area.Pt(50, 50) {
		t.Errorf("free end = %v, want pointer (50,50)", last.Preview.End)
	}

	p.Render(area.Pt(50, 50), SocketInfo{Side: graph.SideInput}, area.Pt(10, 20))
	if last.Preview.Start != area.Pt(7, 20) {
		t.Errorf("input anchor = %v, want (7,20)", last.Preview.Start)
	}
}

func TestPseudoconnectionUnmountEmitsOnce(t *testing.T) {
	_, _, reg := newFixture()
	var unmounts int
	reg.Unmount.Listen(func(UnmountEvent) { unmounts++ })

	p := NewPseudoconnection(reg)
	p.Mount()
	p.Unmount() // element never created: nothing to unmount
	if unmounts != 0 {
		t.Errorf("unmount without element emitted %d events", unmounts)
	}

	p.Mount()
	p.Render(area.Pt(0, 0), SocketInfo{}, area.Pt(0, 0))
	p.Unmount()
	p.Unmount() // second call is a no-op
	if unmounts != 1 {
		t.Errorf("expected exactly 1 unmount, got %d", unmounts)
	}
}
