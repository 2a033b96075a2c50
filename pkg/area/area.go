// Package area implements the viewport engine: it owns the canvas
// content transform, translates device coordinates into content space,
// and hosts the drag (pan) and zoom gesture handlers.
//
// Transform changes go through guard pipes that consumers may veto or
// rewrite (snap-to-grid, clamping); on acceptance the area mutates the
// transform and emits the corresponding translated/zoomed event with the
// finally-applied values.
package area

import "github.com/nor-os/plugboard/pkg/events"

// TranslateRequest is the interceptable payload of a translation. Guards
// may rewrite Position or swallow the request entirely.
type TranslateRequest struct {
	Previous Transform
	Position Point
}

// ZoomRequest is the interceptable payload of a zoom. Guards may rewrite
// Zoom or swallow the request.
type ZoomRequest struct {
	Previous Transform
	Zoom     float64
	Source   string
}

// TranslatedEvent reports an applied translation.
type TranslatedEvent struct {
	Position Point
	Previous Point
}

// ZoomedEvent reports an applied zoom.
type ZoomedEvent struct {
	Zoom   float64
	Source string
}

// PointerSignal is delivered on every pointer-down/move/up with the
// pointer position already converted to content space plus the raw event.
type PointerSignal struct {
	Position Point
	Event    PointerEvent
}

// Area owns the viewport transform and pointer tracking for one canvas.
// It is not safe for concurrent use; all methods run on the UI loop.
type Area struct {
	transform Transform
	pointer   Point
	offset    Point // canvas origin in device space
	width     float64
	height    float64

	window    *Window
	drag      *Drag
	zoomer    *Zoomer
	destroyed bool

	// Guard pipes: run before a transform change is committed.
	OnTranslate events.Pipe[TranslateRequest]
	OnZoom      events.Pipe[ZoomRequest]

	// Notification pipes.
	Translated  events.Pipe[TranslatedEvent]
	Zoomed      events.Pipe[ZoomedEvent]
	PointerDown events.Pipe[PointerSignal]
	PointerMove events.Pipe[PointerSignal]
	PointerUp   events.Pipe[PointerSignal]
}

// New creates an area with identity transform, bound to the given window
// dispatcher. zoomIntensity <= 0 selects the default.
func New(w *Window, zoomIntensity float64) *Area {
	a := &Area{
		transform: Transform{K: 1},
		window:    w,
	}
	a.drag = NewDrag(w, DragConfig{
		Current: func() Point { return Pt(a.transform.X, a.transform.Y) },
		Zoom:    func() float64 { return 1 },
		OnTranslate: func(x, y float64, _ PointerEvent) {
			a.Translate(x, y)
		},
	})
	a.zoomer = NewZoomer(zoomIntensity, func(delta, ox, oy float64, source string) {
		a.Zoom(a.transform.K*(1+delta), ox, oy, source)
	})
	return a
}

// Window returns the dispatcher gesture handlers register on.
func (a *Area) Window() *Window { return a.window }

// Transform returns the current transform.
func (a *Area) Transform() Transform { return a.transform }

// Pointer returns the last pointer position in content space.
func (a *Area) Pointer() Point { return a.pointer }

// SetOffset records the canvas origin in device space. Pointer
// conversion subtracts it before applying the inverse transform.
func (a *Area) SetOffset(p Point) { a.offset = p }

// SetViewport records the visible canvas size in device space. Used by
// fit-to-view extensions.
func (a *Area) SetViewport(w, h float64) {
	a.width, a.height = w, h
}

// Viewport returns the recorded canvas size.
func (a *Area) Viewport() (w, h float64) { return a.width, a.height }

// ContentPoint converts device coordinates to content space:
// (device - offset - pan) / scale.
func (a *Area) ContentPoint(device Point) Point {
	t := a.transform
	return Pt(
		(device.X-a.offset.X-t.X)/t.K,
		(device.Y-a.offset.Y-t.Y)/t.K,
	)
}

// local converts device coordinates to container-relative device space,
// the frame the zoom origin formula works in.
func (a *Area) local(device Point) Point {
	return device.Sub(a.offset)
}

// Translate requests a pan to (x, y) in device space. The request runs
// through the OnTranslate guard, which may rewrite the target position or
// veto it. Returns whether the translation was applied.
func (a *Area) Translate(x, y float64) bool {
	if a.destroyed {
		return false
	}
	prev := a.transform
	req := TranslateRequest{Previous: prev, Position: Pt(x, y)}
	req, ok := a.OnTranslate.Emit(req)
	if !ok {
		return false
	}
	a.transform.X = req.Position.X
	a.transform.Y = req.Position.Y
	a.Translated.Emit(TranslatedEvent{
		Position: req.Position,
		Previous: Pt(prev.X, prev.Y),
	})
	return true
}

// Zoom requests a scale change to zoom with the given origin in
// container-relative device space. The request runs through the OnZoom
// guard, which may rewrite the scale; on acceptance the pan offsets are
// adjusted so the point under the origin stays visually fixed.
//
// The return value reports interruption, not success: false on the
// applied path, true when a guard swallowed the request. This inverted
// polarity is inherited behavior; consumers must watch the Zoomed pipe
// rather than the return value.
func (a *Area) Zoom(zoom, ox, oy float64, source string) bool {
	if a.destroyed {
		return true
	}
	k := a.transform.K
	req := ZoomRequest{Previous: a.transform, Zoom: zoom, Source: source}
	req, ok := a.OnZoom.Emit(req)
	if !ok {
		return true
	}
	a.transform.K = req.Zoom
	denom := k - zoom
	if denom == 0 {
		denom = 1
	}
	d := (k - req.Zoom) / denom
	a.transform.X += ox * d
	a.transform.Y += oy * d
	a.Zoomed.Emit(ZoomedEvent{Zoom: req.Zoom, Source: source})
	return false
}

// SetTransform replaces the whole transform through the guarded
// operations: zoom first, then pan. Used by fit-to-view.
func (a *Area) SetTransform(t Transform) {
	a.Zoom(t.K, 0, 0, "program")
	a.Translate(t.X, t.Y)
}

// ── Pointer entry points (called by the host front end) ──

// HandlePointerDown updates the tracked pointer, notifies subscribers,
// and — unless an interceptor swallowed the signal — starts the pan drag
// and pinch tracking. The device parameter is authoritative: it
// overwrites ev.Device before the event reaches any gesture handler.
func (a *Area) HandlePointerDown(device Point, ev PointerEvent) {
	if a.destroyed {
		return
	}
	ev.Device = device
	a.pointer = a.ContentPoint(device)
	_, ok := a.PointerDown.Emit(PointerSignal{Position: a.pointer, Event: ev})
	if !ok {
		return
	}
	a.drag.Down(ev)
	a.zoomer.PointerDown(ev.PointerID, a.local(device))
}

// HandlePointerMove updates the tracked pointer, notifies subscribers,
// dispatches to active gesture handlers and advances pinch tracking.
func (a *Area) HandlePointerMove(device Point, ev PointerEvent) {
	if a.destroyed {
		return
	}
	ev.Device = device
	a.pointer = a.ContentPoint(device)
	a.PointerMove.Emit(PointerSignal{Position: a.pointer, Event: ev})
	a.window.PointerMove(ev)
	a.zoomer.PointerMove(ev.PointerID, a.local(device))
}

// HandlePointerUp updates the tracked pointer, notifies subscribers,
// ends active gestures and releases pinch contacts.
func (a *Area) HandlePointerUp(device Point, ev PointerEvent) {
	if a.destroyed {
		return
	}
	ev.Device = device
	a.pointer = a.ContentPoint(device)
	a.PointerUp.Emit(PointerSignal{Position: a.pointer, Event: ev})
	a.window.PointerUp(ev)
	a.zoomer.PointerUp(ev.PointerID)
}

// HandleWheel feeds a wheel event to the zoom handler.
func (a *Area) HandleWheel(deltaY float64, device Point) {
	if a.destroyed {
		return
	}
	a.zoomer.Wheel(deltaY, a.local(device))
}

// HandleDoubleClick feeds a double-click to the zoom handler.
func (a *Area) HandleDoubleClick(device Point) {
	if a.destroyed {
		return
	}
	a.zoomer.DoubleClick(a.local(device))
}

// HandleContextMenu resets pinch tracking.
func (a *Area) HandleContextMenu() {
	if a.destroyed {
		return
	}
	a.zoomer.ContextMenu()
}

// Destroy cancels any active gesture, drops every registered interceptor
// and marks the area dead. All further calls are no-ops.
func (a *Area) Destroy() {
	if a.destroyed {
		return
	}
	a.destroyed = true
	a.drag.Cancel()
	a.zoomer.ContextMenu()
	a.OnTranslate.Reset()
	a.OnZoom.Reset()
	a.Translated.Reset()
	a.Zoomed.Reset()
	a.PointerDown.Reset()
	a.PointerMove.Reset()
	a.PointerUp.Reset()
}

// Destroyed reports whether Destroy has been called.
func (a *Area) Destroyed() bool { return a.destroyed }
