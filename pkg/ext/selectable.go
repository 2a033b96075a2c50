package ext

import (
	"github.com/nor-os/plugboard/pkg/area"
	"github.com/nor-os/plugboard/pkg/view"
)

// clickMoveThreshold is the number of pointer moves below which a
// down/up pair counts as a click rather than a drag.
const clickMoveThreshold = 3

// SelectableNodesParams configures node selection wiring.
type SelectableNodesParams struct {
	// Accumulating reports whether the accumulation modifier is held
	// (typically ctrl/shift). Nil means never.
	Accumulating func() bool
}

// NodeEntity builds the selector entity for a node: group translation
// re-issues moves through the view registry and unselect forces a
// re-render so the visual state updates.
func NodeEntity(reg *view.Registry, id string) SelectorEntity {
	return SelectorEntity{
		Label: "node",
		ID:    id,
		Translate: func(dx, dy float64) {
			if v := reg.NodeView(id); v != nil {
				v.Translate(v.Position.X+dx, v.Position.Y+dy)
			}
		},
		Unselect: func() {
			reg.Update(view.RenderNode, id)
		},
	}
}

// SelectableNodes wires node pick/translate events and area pointer
// events to a selector: picking a node selects it (and raises it to the
// top of the z-order), dragging a selected node drags the whole
// selection, and a plain click on empty canvas clears the selection. A
// gesture with more than a few pointer moves counts as a drag and
// leaves the selection alone.
func SelectableNodes(reg *view.Registry, sel *Selector, params SelectableNodesParams) {
	accumulating := params.Accumulating
	if accumulating == nil {
		accumulating = func() bool { return false }
	}

	moveCount := 0
	pickedNode := false

	reg.NodePicked.Listen(func(id string) {
		pickedNode = true
		entity := NodeEntity(reg, id)
		sel.Add(entity, accumulating())
		sel.Pick(entity)
		if v := reg.NodeView(id); v != nil {
			// Raising a missing element would mean the registry lost
			// track of its own view; surface that loudly.
			if err := reg.Reorder(v.Element, nil); err != nil {
				panic(err)
			}
		}
	})

	reg.NodeTranslated.Listen(func(ev view.NodeTranslatedEvent) {
		if !sel.IsPicked(NodeEntity(reg, ev.ID)) {
			return
		}
		dx := ev.Position.X - ev.Previous.X
		dy := ev.Position.Y - ev.Previous.Y
		if dx != 0 || dy != 0 {
			sel.Translate(dx, dy)
		}
	})

	reg.NodeDragged.Listen(func(string) {
		sel.Release()
	})

	ar := reg.Area()
	ar.PointerDown.Listen(func(area.PointerSignal) {
		moveCount = 0
		pickedNode = false
	})
	ar.PointerMove.Listen(func(area.PointerSignal) {
		moveCount++
	})
	ar.PointerUp.Listen(func(area.PointerSignal) {
		if moveCount <= clickMoveThreshold && !pickedNode {
			sel.UnselectAll()
		}
		moveCount = 0
		pickedNode = false
	})
}
