package area

// Point is a 2D coordinate. The core works in float64 throughout so that
// zoom factors below 1 do not lose node positions to rounding; front ends
// quantize only at render time.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p + q.
func (p Point) Add(q Point) Point { return Pt(p.X+q.X, p.Y+q.Y) }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Pt(p.X-q.X, p.Y-q.Y) }

// Scale returns p scaled by f.
func (p Point) Scale(f float64) Point { return Pt(p.X*f, p.Y*f) }

// Transform is the canvas content transform: scale K and device-space
// offsets X, Y. Owned exclusively by the Area; extensions clamp or snap
// it only through the guarded Translate/Zoom operations. Invariant: K > 0.
type Transform struct {
	K, X, Y float64
}

// Button identifies a pointer device button.
type Button int

const (
	ButtonNone   Button = -1
	ButtonLeft   Button = 0
	ButtonMiddle Button = 1
	ButtonRight  Button = 2
)

// PointerEvent is a raw pointer event as delivered by the host front end.
// Device holds device-space coordinates; Target optionally carries the
// view element under the pointer (used by the socket registry to decide
// whether the event starts a connection gesture).
type PointerEvent struct {
	Device      Point
	Button      Button
	PointerID   int
	PointerType string // "mouse", "touch", "pen"
	Target      any
}
