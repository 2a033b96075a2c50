package ext

import (
	"math"

	"github.com/nor-os/plugboard/pkg/area"
	"github.com/nor-os/plugboard/pkg/view"
)

// Snap rounds v to the nearest multiple of size. Size <= 0 disables
// snapping. Idempotent: Snap(Snap(v)) == Snap(v).
func Snap(v, size float64) float64 {
	if size <= 0 {
		return v
	}
	return math.Round(v/size) * size
}

// SnapGridParams configures grid snapping.
type SnapGridParams struct {
	Size float64
	// Dynamic snaps while dragging, through the translate guard.
	// Otherwise the node position is snapped once when the drag ends.
	Dynamic bool
}

// SnapGrid rounds node positions to the grid, either live during drag
// or on drop.
func SnapGrid(reg *view.Registry, params SnapGridParams) {
	if params.Dynamic {
		reg.NodeTranslate.Add(func(r view.NodeTranslateRequest) (view.NodeTranslateRequest, bool) {
			r.Position = area.Pt(
				Snap(r.Position.X, params.Size),
				Snap(r.Position.Y, params.Size),
			)
			return r, true
		})
		return
	}
	reg.NodeDragged.Listen(func(id string) {
		v := reg.NodeView(id)
		if v == nil {
			return
		}
		snapped := area.Pt(
			Snap(v.Position.X, params.Size),
			Snap(v.Position.Y, params.Size),
		)
		if snapped != v.Position {
			reg.Translate(id, snapped)
		}
	})
}
