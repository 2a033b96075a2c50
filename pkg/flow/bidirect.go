package flow

// BidirectParams configures a BidirectFlow.
type BidirectParams struct {
	// PickByClick makes the gesture click-to-start, click-to-finish:
	// only "down" events advance the machine. Without it a drag release
	// over a second socket also completes the connection.
	PickByClick bool
	// OnDrop receives the connectiondrop notification.
	OnDrop func(DropEvent)
}

// BidirectFlow is the simpler policy: the first pick arms the gesture,
// the next pick on a different socket attempts the connection directly
// (SourceTarget still orients the pair) and drops regardless of the
// outcome. Used where a compatibility pre-check and displacement
// semantics are not wanted.
type BidirectFlow struct {
	board  Board
	params BidirectParams

	state   pickState
	initial *Socket
}

// NewBidirectFlow creates an idle bidirectional flow over the board.
func NewBidirectFlow(b Board, params BidirectParams) *BidirectFlow {
	return &BidirectFlow{board: b, params: params}
}

// Idle reports whether the flow is in its resting state.
func (f *BidirectFlow) Idle() bool { return f.state == stateIdle }

// Initial returns the socket the live gesture started from, or nil.
func (f *BidirectFlow) Initial() *Socket { return f.initial }

// Pick advances the state machine with a gesture on a socket. A repeat
// pick of the starting socket is ignored, so the pointer release that
// follows the arming click does not complete the gesture.
func (f *BidirectFlow) Pick(s Socket, ev PickEvent) {
	switch f.state {
	case stateIdle:
		if ev != PickDown {
			return
		}
		picked := s
		f.initial = &picked
		f.state = statePicked

	case statePicked:
		if f.params.PickByClick && ev != PickDown {
			return
		}
		if f.initial != nil && s == *f.initial {
			return
		}
		created := makeConnection(f.board, *f.initial, s)
		landed := s
		f.drop(&landed, created)
	}
}

// Drop cancels the gesture, firing connectiondrop if a socket had been
// picked, and returns to idle.
func (f *BidirectFlow) Drop() {
	f.drop(nil, false)
}

func (f *BidirectFlow) drop(s *Socket, created bool) {
	if f.initial != nil && f.params.OnDrop != nil {
		f.params.OnDrop(DropEvent{Initial: *f.initial, Socket: s, Created: created})
	}
	f.initial = nil
	f.state = stateIdle
}
