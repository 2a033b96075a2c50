package area

// Window dispatches device-wide pointer-move and pointer-up events to
// gesture-scoped handlers. A drag registers its move/up handlers on Down
// and removes them on Up, so handler lifetime is bounded by the active
// gesture and a drag keeps receiving moves even after the pointer leaves
// the element it started on. The host forwards every global move/up here.
type Window struct {
	nextID int
	moves  map[int]func(PointerEvent)
	ups    map[int]func(PointerEvent)
}

// NewWindow creates an empty dispatcher.
func NewWindow() *Window {
	return &Window{
		moves: make(map[int]func(PointerEvent)),
		ups:   make(map[int]func(PointerEvent)),
	}
}

// OnMove registers a move handler and returns its removal token.
func (w *Window) OnMove(fn func(PointerEvent)) int {
	w.nextID++
	w.moves[w.nextID] = fn
	return w.nextID
}

// OnUp registers an up handler and returns its removal token.
func (w *Window) OnUp(fn func(PointerEvent)) int {
	w.nextID++
	w.ups[w.nextID] = fn
	return w.nextID
}

// Off removes a previously registered handler. Unknown tokens are a no-op.
func (w *Window) Off(token int) {
	delete(w.moves, token)
	delete(w.ups, token)
}

// PointerMove dispatches a global pointer-move to all registered handlers.
func (w *Window) PointerMove(ev PointerEvent) {
	for _, fn := range w.moves {
		fn(ev)
	}
}

// PointerUp dispatches a global pointer-up to all registered handlers.
func (w *Window) PointerUp(ev PointerEvent) {
	for _, fn := range w.ups {
		fn(ev)
	}
}

// HandlerCount reports registered handlers; leak checks in tests use it.
func (w *Window) HandlerCount() int {
	return len(w.moves) + len(w.ups)
}
