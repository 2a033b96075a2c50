package flow

import "github.com/nor-os/plugboard/pkg/graph"

// ClassicParams configures a ClassicFlow.
type ClassicParams struct {
	// CanPick is the connectionpick gatekeeper: it is asked before a
	// socket becomes the gesture's initial end. Nil allows every pick.
	CanPick func(Socket) bool
	// OnDrop receives the connectiondrop notification. Only gestures
	// that actually picked a socket produce a drop event.
	OnDrop func(DropEvent)
}

// ClassicFlow is the drag-to-connect policy: a gesture starts on a
// socket, must end on a directionally compatible socket, and displaces
// single-capacity connections on the target input. Grabbing an input
// that already has a connection detaches that connection and continues
// the gesture from its output end (rewiring).
type ClassicFlow struct {
	board  Board
	params ClassicParams

	state          pickState
	initial        *Socket
	originalTarget *Socket // set while rewiring: the input first grabbed
}

// NewClassicFlow creates an idle classic flow over the board.
func NewClassicFlow(b Board, params ClassicParams) *ClassicFlow {
	return &ClassicFlow{board: b, params: params}
}

// Idle reports whether the flow is back in its resting state.
func (f *ClassicFlow) Idle() bool { return f.state == stateIdle }

// Initial returns the socket the live gesture started from, or nil.
func (f *ClassicFlow) Initial() *Socket { return f.initial }

// Pick advances the state machine with a gesture on a socket.
//
// From idle, only a "down" starts a gesture. Picking an input that has
// an incoming connection detaches it (gatekeeper permitting) and adopts
// its output end as the initial socket; otherwise the picked socket
// itself becomes the initial (again gatekeeper permitting). From a
// picked state, a directionally compatible socket commits a connection
// and drops; an incompatible one leaves the gesture in place awaiting a
// valid target or an explicit Drop.
func (f *ClassicFlow) Pick(s Socket, ev PickEvent) {
	switch f.state {
	case stateIdle:
		if ev != PickDown {
			return
		}
		if s.Side == graph.SideInput {
			if c := f.incoming(s); c != nil {
				f.pickExisting(s, c)
				return
			}
		}
		if !f.allowPick(s) {
			f.Drop()
			return
		}
		picked := s
		f.initial = &picked
		f.state = statePicked

	case statePicked:
		f.commit(s)

	case statePickedExisting:
		// Dropping back on the original input re-runs the full commit:
		// an idempotent re-creation of the detached connection.
		if f.originalTarget != nil && s == *f.originalTarget && ev != PickDown {
			return
		}
		f.commit(s)
	}
}

// Drop ends the gesture. If a socket had been picked, the
// connectiondrop notification fires with the given outcome; the flow
// always returns to idle.
func (f *ClassicFlow) Drop() {
	f.drop(nil, false)
}

// pickExisting handles grabbing the far end of an existing connection:
// the gatekeeper is re-confirmed against the connection's output end,
// and only on approval is the original connection removed. On rejection
// the gesture drops immediately and the connection stays intact.
func (f *ClassicFlow) pickExisting(s Socket, c *graph.Connection) {
	output := Socket{NodeID: c.Source, Side: graph.SideOutput, Key: c.SourceOutput}
	if !f.allowPick(output) {
		f.Drop()
		return
	}
	f.board.RemoveConnection(c.ID)
	f.initial = &output
	grabbed := s
	f.originalTarget = &grabbed
	f.state = statePickedExisting
}

func (f *ClassicFlow) commit(s Socket) {
	if f.initial == nil {
		f.Drop()
		return
	}
	if !CanMakeConnection(*f.initial, s) {
		return // stay picked, await a valid target
	}
	_, dst, _ := SourceTarget(*f.initial, s)
	syncConnections(f.board, dst)
	created := makeConnection(f.board, *f.initial, s)
	landed := s
	f.drop(&landed, created)
}

func (f *ClassicFlow) drop(s *Socket, created bool) {
	if f.initial != nil && f.params.OnDrop != nil {
		f.params.OnDrop(DropEvent{Initial: *f.initial, Socket: s, Created: created})
	}
	f.initial = nil
	f.originalTarget = nil
	f.state = stateIdle
}

func (f *ClassicFlow) allowPick(s Socket) bool {
	return f.params.CanPick == nil || f.params.CanPick(s)
}

func (f *ClassicFlow) incoming(s Socket) *graph.Connection {
	for _, c := range f.board.Connections() {
		if c.Target == s.NodeID && c.TargetInput == s.Key {
			return c
		}
	}
	return nil
}
