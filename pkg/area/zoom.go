package area

import "math"

// DefaultZoomIntensity is the per-wheel-notch scale delta.
const DefaultZoomIntensity = 0.1

// Zoomer turns wheel, pinch and double-click input into zoom requests.
// The origin arguments it passes to onZoom are pre-scaled by the delta,
// matching the offset formula applied in Area.Zoom, so the content point
// under the gesture stays visually fixed.
//
// Pinch tracks every active pointer id from down to up; two simultaneous
// contacts form a pinch. A context-menu event clears the tracked set,
// recovering from stuck multi-touch state after long-press gestures.
type Zoomer struct {
	intensity float64
	onZoom    func(delta, ox, oy float64, source string)

	pointers     map[int]Point
	prevDistance float64
}

// NewZoomer creates a zoomer. Intensity <= 0 selects the default.
func NewZoomer(intensity float64, onZoom func(delta, ox, oy float64, source string)) *Zoomer {
	if intensity <= 0 {
		intensity = DefaultZoomIntensity
	}
	return &Zoomer{
		intensity: intensity,
		onZoom:    onZoom,
		pointers:  make(map[int]Point),
	}
}

// Intensity returns the configured wheel intensity.
func (z *Zoomer) Intensity() float64 { return z.intensity }

// Wheel handles a wheel event. pos is container-relative device space.
// Wheel-up (negative deltaY) zooms in.
func (z *Zoomer) Wheel(deltaY float64, pos Point) {
	delta := -z.intensity
	if deltaY < 0 {
		delta = z.intensity
	}
	z.onZoom(delta, -pos.X*delta, -pos.Y*delta, "wheel")
}

// DoubleClick handles a double-click: a fixed scale jump at the click point.
func (z *Zoomer) DoubleClick(pos Point) {
	delta := z.intensity * 2
	z.onZoom(delta, -pos.X*delta, -pos.Y*delta, "dblclick")
}

// PointerDown registers an active contact for pinch tracking.
func (z *Zoomer) PointerDown(id int, pos Point) {
	z.pointers[id] = pos
}

// PointerMove updates a contact; with exactly two contacts the change in
// inter-pointer distance becomes a zoom delta with the centroid as origin.
func (z *Zoomer) PointerMove(id int, pos Point) {
	if _, ok := z.pointers[id]; !ok {
		return
	}
	z.pointers[id] = pos
	if len(z.pointers) != 2 {
		return
	}
	pts := make([]Point, 0, 2)
	for _, p := range z.pointers {
		pts = append(pts, p)
	}
	dist := math.Hypot(pts[0].X-pts[1].X, pts[0].Y-pts[1].Y)
	if z.prevDistance > 0 {
		delta := dist/z.prevDistance - 1
		cx := (pts[0].X + pts[1].X) / 2
		cy := (pts[0].Y + pts[1].Y) / 2
		z.onZoom(delta, -cx*delta, -cy*delta, "touch")
	}
	z.prevDistance = dist
}

// PointerUp releases a contact and ends any pinch in progress.
func (z *Zoomer) PointerUp(id int) {
	delete(z.pointers, id)
	if len(z.pointers) < 2 {
		z.prevDistance = 0
	}
}

// ContextMenu resets pinch tracking. Long-press and right-click can leave
// contacts without a matching up event; this is the recovery path.
func (z *Zoomer) ContextMenu() {
	clear(z.pointers)
	z.prevDistance = 0
}

// ActivePointers reports the number of tracked contacts.
func (z *Zoomer) ActivePointers() int { return len(z.pointers) }
