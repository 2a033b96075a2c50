package view

import (
	"fmt"

	"github.com/nor-os/plugboard/pkg/area"
	"github.com/nor-os/plugboard/pkg/graph"
)

// socketAnchorOffset is how far the preview wire starts outward from the
// picked socket, in content units.
const socketAnchorOffset = 3

// Pseudoconnection is the single ephemeral wire shown while dragging
// from a socket before the target is known. Every Mount allocates a
// fresh id — ids are never reused, so a stale front-end cache can never
// show artifacts of a previous gesture. Rendering before Mount is a
// wiring bug and panics.
type Pseudoconnection struct {
	reg     *Registry
	seq     int
	id      string
	element Element
}

// NewPseudoconnection creates an unmounted pseudoconnection.
func NewPseudoconnection(reg *Registry) *Pseudoconnection {
	return &Pseudoconnection{reg: reg}
}

// Mount allocates a fresh id for the next gesture. The element itself is
// created lazily on first Render.
func (p *Pseudoconnection) Mount() {
	p.seq++
	p.id = fmt.Sprintf("pseudo-%d", p.seq)
	p.element = nil
}

// Render redraws the preview wire: the fixed end sits offset outward
// from the picked socket (outputs extend rightward, inputs leftward,
// matching left-to-right graph flow), the free end follows the pointer.
func (p *Pseudoconnection) Render(pointer area.Point, socket SocketInfo, anchor area.Point) {
	if p.id == "" {
		panic("pseudoconnection: render before mount")
	}
	if p.element == nil {
		p.element = p.reg.factory()
	}
	start := anchor
	if socket.Side == graph.SideOutput {
		start.X += socketAnchorOffset
	} else {
		start.X -= socketAnchorOffset
	}
	p.reg.Render.Emit(RenderEvent{
		Type:    RenderConnection,
		Element: p.element,
		Preview: &Preview{ID: p.id, Start: start, End: pointer},
	})
}

// Unmount destroys the preview element and clears state. Safe to call
// when nothing is mounted.
func (p *Pseudoconnection) Unmount() {
	if p.element != nil {
		p.reg.Unmount.Emit(UnmountEvent{Element: p.element})
	}
	p.element = nil
	p.id = ""
}

// ID returns the current preview id, empty when unmounted.
func (p *Pseudoconnection) ID() string { return p.id }
