package area

import (
	"math"
	"testing"
)

func newTestArea() *Area {
	return New(NewWindow(), 0)
}

// ── Translate ──

func TestTranslateApplies(t *testing.T) {
	a := newTestArea()
	var got TranslatedEvent
	a.Translated.Listen(func(ev TranslatedEvent) { got = ev })

	if !a.Translate(10, -5) {
		t.Fatal("translate should be applied")
	}
	if tr := a.Transform(); tr.X != 10 || tr.Y != -5 {
		t.Errorf("transform = (%v,%v), want (10,-5)", tr.X, tr.Y)
	}
	if got.Position != Pt(10, -5) || got.Previous != Pt(0, 0) {
		t.Errorf("translated event = %+v", got)
	}
}

func TestTranslateGuardVeto(t *testing.T) {
	a := newTestArea()
	a.OnTranslate.Add(func(r TranslateRequest) (TranslateRequest, bool) {
		return r, false
	})
	fired := false
	a.Translated.Listen(func(TranslatedEvent) { fired = true })

	if a.Translate(10, 10) {
		t.Error("vetoed translate should report false")
	}
	if tr := a.Transform(); tr.X != 0 || tr.Y != 0 {
		t.Error("vetoed translate must not mutate the transform")
	}
	if fired {
		t.Error("vetoed translate must not emit translated")
	}
}

func TestTranslateGuardRewrite(t *testing.T) {
	a := newTestArea()
	a.OnTranslate.Add(func(r TranslateRequest) (TranslateRequest, bool) {
		r.Position = Pt(100, 200)
		return r, true
	})

	a.Translate(1, 2)
	if tr := a.Transform(); tr.X != 100 || tr.Y != 200 {
		t.Errorf("rewritten position not applied, got (%v,%v)", tr.X, tr.Y)
	}
}

// ── Zoom ──

func TestZoomReturnPolarity(t *testing.T) {
	a := newTestArea()
	if interrupted := a.Zoom(2, 0, 0, "test"); interrupted {
		t.Error("applied zoom must return false")
	}
	a.OnZoom.Add(func(r ZoomRequest) (ZoomRequest, bool) { return r, false })
	if interrupted := a.Zoom(3, 0, 0, "test"); !interrupted {
		t.Error("guarded-out zoom must return true")
	}
	if a.Transform().K != 2 {
		t.Errorf("scale = %v, want 2", a.Transform().K)
	}
}

func TestZoomEmitsAppliedValue(t *testing.T) {
	a := newTestArea()
	a.OnZoom.Add(func(r ZoomRequest) (ZoomRequest, bool) {
		if r.Zoom > 2 {
			r.Zoom = 2
		}
		return r, true
	})
	var got ZoomedEvent
	a.Zoomed.Listen(func(ev ZoomedEvent) { got = ev })

	a.Zoom(3, 0, 0, "wheel")
	if got.Zoom != 2 || got.Source != "wheel" {
		t.Errorf("zoomed event = %+v, want clamped 2/wheel", got)
	}
	if a.Transform().K != 2 {
		t.Errorf("scale = %v, want 2", a.Transform().K)
	}
}

// The content point under the wheel cursor must map to the same device
// pixel after the zoom.
func TestWheelZoomFixedPoint(t *testing.T) {
	a := newTestArea()
	cursor := Pt(37, 19)
	before := a.ContentPoint(cursor)

	a.HandleWheel(-120, cursor) // zoom in one notch

	tr := a.Transform()
	deviceX := before.X*tr.K + tr.X
	deviceY := before.Y*tr.K + tr.Y
	if math.Abs(deviceX-cursor.X) > 1e-9 || math.Abs(deviceY-cursor.Y) > 1e-9 {
		t.Errorf("fixed point drifted: (%v,%v) vs cursor %v", deviceX, deviceY, cursor)
	}
}

// ── Pointer conversion ──

func TestContentPoint(t *testing.T) {
	a := newTestArea()
	a.SetOffset(Pt(10, 5))
	a.Translate(20, 0)
	a.Zoom(2, 0, 0, "test")

	// device (70, 25): minus offset (10,5) → (60,20); minus pan (20,0)
	// → (40,20); divided by k=2 → (20,10)
	got := a.ContentPoint(Pt(70, 25))
	if got != Pt(20, 10) {
		t.Errorf("ContentPoint = %v, want (20,10)", got)
	}
}

func TestPointerTracking(t *testing.T) {
	a := newTestArea()
	var signals []PointerSignal
	a.PointerMove.Listen(func(s PointerSignal) { signals = append(signals, s) })

	a.HandlePointerMove(Pt(3, 4), PointerEvent{PointerID: 1})
	if a.Pointer() != Pt(3, 4) {
		t.Errorf("pointer = %v, want (3,4)", a.Pointer())
	}
	if len(signals) != 1 || signals[0].Position != Pt(3, 4) {
		t.Errorf("pointer signal missing or wrong: %v", signals)
	}
}

func TestSwallowedPointerDownSkipsPan(t *testing.T) {
	a := newTestArea()
	a.PointerDown.Add(func(s PointerSignal) (PointerSignal, bool) {
		return s, false
	})

	a.HandlePointerDown(Pt(0, 0), PointerEvent{Button: ButtonLeft})
	a.HandlePointerMove(Pt(50, 0), PointerEvent{Button: ButtonLeft})
	if tr := a.Transform(); tr.X != 0 {
		t.Errorf("pan started past a swallowed pointerdown: x=%v", tr.X)
	}
}

// ── Pan drag ──

func TestPanDragLifecycle(t *testing.T) {
	a := newTestArea()
	ev := PointerEvent{Button: ButtonLeft, PointerID: 1}

	a.HandlePointerDown(Pt(100, 100), ev)
	if a.window.HandlerCount() != 2 {
		t.Fatalf("expected 2 gesture handlers, got %d", a.window.HandlerCount())
	}

	ev.Device = Pt(130, 80)
	a.HandlePointerMove(Pt(130, 80), ev)
	if tr := a.Transform(); tr.X != 30 || tr.Y != -20 {
		t.Errorf("pan = (%v,%v), want (30,-20)", tr.X, tr.Y)
	}

	a.HandlePointerUp(Pt(130, 80), ev)
	if a.window.HandlerCount() != 0 {
		t.Errorf("gesture handlers leaked: %d", a.window.HandlerCount())
	}
}

func TestPanDragIgnoresStaleEventDevice(t *testing.T) {
	a := newTestArea()

	// ev.Device deliberately left at a stale value on every call; the
	// position parameter must win throughout the gesture.
	down := PointerEvent{Button: ButtonLeft, PointerID: 1, Device: Pt(999, 999)}
	a.HandlePointerDown(Pt(100, 100), down)

	var seen Point
	a.PointerMove.Listen(func(s PointerSignal) { seen = s.Event.Device })
	a.HandlePointerMove(Pt(130, 80), PointerEvent{Button: ButtonLeft, PointerID: 1})

	if tr := a.Transform(); tr.X != 30 || tr.Y != -20 {
		t.Errorf("pan = (%v,%v), want (30,-20)", tr.X, tr.Y)
	}
	if seen != Pt(130, 80) {
		t.Errorf("signal carried device %v, want (130,80)", seen)
	}

	a.HandlePointerUp(Pt(130, 80), PointerEvent{Button: ButtonLeft, PointerID: 1})
	if a.window.HandlerCount() != 0 {
		t.Errorf("gesture handlers leaked: %d", a.window.HandlerCount())
	}
}

func TestRightButtonDoesNotPan(t *testing.T) {
	a := newTestArea()
	ev := PointerEvent{Button: ButtonRight, PointerType: "mouse"}
	a.HandlePointerDown(Pt(0, 0), ev)
	if a.window.HandlerCount() != 0 {
		t.Error("right button must not start the pan drag")
	}
}

func TestTouchPointerPans(t *testing.T) {
	a := newTestArea()
	ev := PointerEvent{Button: ButtonNone, PointerType: "touch", PointerID: 7}
	a.HandlePointerDown(Pt(0, 0), ev)
	if a.window.HandlerCount() != 2 {
		t.Error("non-mouse pointer should start the pan drag")
	}
}

// ── Pinch ──

func TestPinchZoom(t *testing.T) {
	a := newTestArea()
	e1 := PointerEvent{Button: ButtonNone, PointerType: "touch", PointerID: 1}
	e2 := PointerEvent{Button: ButtonNone, PointerType: "touch", PointerID: 2}

	a.HandlePointerDown(Pt(0, 0), e1)
	a.HandlePointerDown(Pt(10, 0), e2)

	// First move establishes the baseline distance, second scales it.
	a.HandlePointerMove(Pt(0, 0), e1)
	e2.Device = Pt(20, 0)
	a.HandlePointerMove(Pt(20, 0), e2)

	if k := a.Transform().K; math.Abs(k-2) > 1e-9 {
		t.Errorf("pinch doubled the distance, scale = %v, want 2", k)
	}
}

func TestContextMenuResetsPinch(t *testing.T) {
	a := newTestArea()
	a.HandlePointerDown(Pt(0, 0), PointerEvent{PointerType: "touch", PointerID: 1})
	a.HandlePointerDown(Pt(10, 0), PointerEvent{PointerType: "touch", PointerID: 2})
	a.HandleContextMenu()
	if a.zoomer.ActivePointers() != 0 {
		t.Error("context menu must clear tracked pointers")
	}
}

// ── Destroy ──

func TestDestroyedAreaIgnoresInput(t *testing.T) {
	a := newTestArea()
	a.HandlePointerDown(Pt(0, 0), PointerEvent{Button: ButtonLeft})
	a.Destroy()

	if a.window.HandlerCount() != 0 {
		t.Error("destroy must cancel the active gesture")
	}
	if a.Translate(5, 5) {
		t.Error("destroyed area must reject translate")
	}
	if !a.Zoom(2, 0, 0, "test") {
		t.Error("destroyed area must report interrupted zoom")
	}
	if k := a.Transform().K; k != 1 {
		t.Errorf("scale changed after destroy: %v", k)
	}
}
