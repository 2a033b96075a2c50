package ext

import "github.com/nor-os/plugboard/pkg/view"

// ZoomAtParams configures fit-to-view.
type ZoomAtParams struct {
	// Scale leaves a margin around the fitted box; values in (0, 1].
	// Zero selects the default of 0.9.
	Scale float64
}

// NodesBoundingBox computes the content-space bounding box of the given
// node views. ok is false for an empty set.
func NodesBoundingBox(views []*view.NodeView) (minX, minY, maxX, maxY float64, ok bool) {
	for i, v := range views {
		x0, y0 := v.Position.X, v.Position.Y
		x1, y1 := x0+v.Width, y0+v.Height
		if i == 0 {
			minX, minY, maxX, maxY = x0, y0, x1, y1
			continue
		}
		if x0 < minX {
			minX = x0
		}
		if y0 < minY {
			minY = y0
		}
		if x1 > maxX {
			maxX = x1
		}
		if y1 > maxY {
			maxY = y1
		}
	}
	return minX, minY, maxX, maxY, len(views) > 0
}

// ZoomAt sets the area transform so the bounding box of the given nodes
// is centered in the viewport, scaled to fit but never magnified past
// 1.0. Transform changes go through the guarded Zoom/Translate
// operations, so restrictor clamps still apply.
func ZoomAt(reg *view.Registry, views []*view.NodeView, params ZoomAtParams) {
	scale := params.Scale
	if scale <= 0 {
		scale = 0.9
	}
	minX, minY, maxX, maxY, ok := NodesBoundingBox(views)
	if !ok {
		return
	}
	a := reg.Area()
	w, h := a.Viewport()
	if w <= 0 || h <= 0 {
		return
	}
	bw := maxX - minX
	bh := maxY - minY
	k := 1.0
	if bw > 0 && bh > 0 {
		kx := w / bw
		ky := h / bh
		k = kx
		if ky < kx {
			k = ky
		}
		k *= scale
		if k > 1 {
			k = 1
		}
	}
	a.Zoom(k, 0, 0, "zoomat")
	applied := a.Transform().K
	cx := (minX + maxX) / 2
	cy := (minY + maxY) / 2
	a.Translate(w/2-cx*applied, h/2-cy*applied)
}
