package area

// DragConfig parameterizes a Drag. Current and Zoom are sampled at
// gesture start; OnTranslate receives the proposed absolute position
// (start position plus device delta divided by zoom).
type DragConfig struct {
	// DownGuard decides whether a pointer-down starts the gesture.
	// Nil means the default: left button, or any non-mouse pointer.
	DownGuard func(PointerEvent) bool
	// MoveGuard decides whether a move is applied. Nil accepts all.
	MoveGuard func(PointerEvent) bool
	// Current returns the dragged thing's position at gesture start.
	Current func() Point
	// Zoom returns the divisor for device deltas. The area's own pan
	// drag returns 1 (the transform lives in device space); node drags
	// return the current scale so node positions stay in content space.
	Zoom func() float64
	// OnStart fires once when the gesture begins.
	OnStart func(PointerEvent)
	// OnTranslate receives each proposed position while dragging.
	OnTranslate func(x, y float64, ev PointerEvent)
	// OnDrag fires once when the gesture ends.
	OnDrag func(ev PointerEvent)
}

// Drag implements the pointerdown/move/up gesture split. Move and up
// handlers live on the Window only while a gesture is active.
type Drag struct {
	cfg    DragConfig
	window *Window

	startDevice Point
	startPos    Point
	startZoom   float64
	active      bool
	moveToken   int
	upToken     int
}

// NewDrag creates a drag bound to the given window dispatcher.
func NewDrag(w *Window, cfg DragConfig) *Drag {
	return &Drag{cfg: cfg, window: w}
}

func defaultDownGuard(ev PointerEvent) bool {
	return ev.Button == ButtonLeft || (ev.PointerType != "" && ev.PointerType != "mouse")
}

// Down starts a gesture if the guard accepts the event. Returns whether
// the gesture started.
func (d *Drag) Down(ev PointerEvent) bool {
	if d.active {
		return false
	}
	guard := d.cfg.DownGuard
	if guard == nil {
		guard = defaultDownGuard
	}
	if !guard(ev) {
		return false
	}
	d.startDevice = ev.Device
	if d.cfg.Current != nil {
		d.startPos = d.cfg.Current()
	} else {
		d.startPos = Point{}
	}
	d.startZoom = 1
	if d.cfg.Zoom != nil {
		if k := d.cfg.Zoom(); k > 0 {
			d.startZoom = k
		}
	}
	d.active = true
	d.moveToken = d.window.OnMove(d.move)
	d.upToken = d.window.OnUp(d.up)
	if d.cfg.OnStart != nil {
		d.cfg.OnStart(ev)
	}
	return true
}

func (d *Drag) move(ev PointerEvent) {
	if !d.active {
		return
	}
	if d.cfg.MoveGuard != nil && !d.cfg.MoveGuard(ev) {
		return
	}
	delta := ev.Device.Sub(d.startDevice).Scale(1 / d.startZoom)
	pos := d.startPos.Add(delta)
	if d.cfg.OnTranslate != nil {
		d.cfg.OnTranslate(pos.X, pos.Y, ev)
	}
}

func (d *Drag) up(ev PointerEvent) {
	if !d.active {
		return
	}
	d.Cancel()
	if d.cfg.OnDrag != nil {
		d.cfg.OnDrag(ev)
	}
}

// Cancel ends the gesture without firing OnDrag and removes the window
// handlers. Safe to call when no gesture is active.
func (d *Drag) Cancel() {
	if !d.active {
		return
	}
	d.active = false
	d.window.Off(d.moveToken)
	d.window.Off(d.upToken)
}

// Active reports whether a gesture is in progress.
func (d *Drag) Active() bool { return d.active }
