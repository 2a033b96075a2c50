package ext

import "github.com/nor-os/plugboard/pkg/area"

// ScalingLimit bounds the zoom scale.
type ScalingLimit struct {
	Min, Max float64
}

// TranslationLimit bounds the pan offsets.
type TranslationLimit struct {
	Left, Top, Right, Bottom float64
}

// RestrictorParams configures the clamping extension. Limits are
// functions so they can be computed dynamically (e.g. from content
// bounds); nil disables the respective clamp.
type RestrictorParams struct {
	Scaling     func() ScalingLimit
	Translation func() TranslationLimit
}

// StaticScaling returns a fixed scaling limit provider.
func StaticScaling(min, max float64) func() ScalingLimit {
	return func() ScalingLimit { return ScalingLimit{Min: min, Max: max} }
}

// StaticTranslation returns a fixed translation limit provider.
func StaticTranslation(left, top, right, bottom float64) func() TranslationLimit {
	return func() TranslationLimit {
		return TranslationLimit{Left: left, Top: top, Right: right, Bottom: bottom}
	}
}

// Restrictor clamps zoom and pan through the area's guard pipes. The
// request is rewritten rather than vetoed, so an out-of-range request
// lands exactly on the boundary.
func Restrictor(a *area.Area, params RestrictorParams) {
	if params.Scaling != nil {
		a.OnZoom.Add(func(r area.ZoomRequest) (area.ZoomRequest, bool) {
			lim := params.Scaling()
			if r.Zoom < lim.Min {
				r.Zoom = lim.Min
			}
			if r.Zoom > lim.Max {
				r.Zoom = lim.Max
			}
			return r, true
		})
	}
	if params.Translation != nil {
		a.OnTranslate.Add(func(r area.TranslateRequest) (area.TranslateRequest, bool) {
			lim := params.Translation()
			if r.Position.X < lim.Left {
				r.Position.X = lim.Left
			}
			if r.Position.X > lim.Right {
				r.Position.X = lim.Right
			}
			if r.Position.Y < lim.Top {
				r.Position.Y = lim.Top
			}
			if r.Position.Y > lim.Bottom {
				r.Position.Y = lim.Bottom
			}
			return r, true
		})
	}
}
