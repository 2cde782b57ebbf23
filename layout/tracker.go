package layout

import "math"

// ClampMargin keeps a dragged widget this far inside the container on every side.
const ClampMargin = 8.0

type session struct {
	handle  Handle
	offset  Point
	pointer Point
}

// Tracker turns pointer positions into the position of one dragged widget.
// Pointer coordinates and the container rect share the screen frame; handle
// positions are container-relative.
type Tracker struct {
	container func() Rect
	onRelease func(Handle)
	session   *session
}

// NewTracker returns a tracker that clamps against container() and passes the
// released handle to onRelease, typically Snapper.Resolve.
func NewTracker(container func() Rect, onRelease func(Handle)) *Tracker {
	return &Tracker{container: container, onRelease: onRelease}
}

func (t *Tracker) Active() bool { return t.session != nil }

// Target returns the dragged handle, or nil when idle.
func (t *Tracker) Target() Handle {
	if t.session == nil {
		return nil
	}
	return t.session.handle
}

// Begin starts a session for h grabbed at pointer. It refuses to start while
// another session is active.
func (t *Tracker) Begin(h Handle, pointer Point) bool {
	if t.session != nil || h == nil {
		return false
	}
	c := t.container()
	topLeft := c.Min.Add(h.Position())
	t.session = &session{
		handle:  h,
		offset:  pointer.Sub(topLeft),
		pointer: pointer,
	}
	h.SetTransitions(false)
	h.SetGrabbing(true)
	h.SetElevated(true)
	return true
}

// Update moves the dragged widget so the grab offset is kept, clamped to the
// container interior. Without a session it does nothing.
func (t *Tracker) Update(pointer Point) {
	s := t.session
	if s == nil {
		return
	}
	s.pointer = pointer

	c := t.container()
	size := s.handle.Size()
	next := pointer.Sub(s.offset)
	next.X = clamp(next.X, c.Min.X+ClampMargin, c.MaxX()-size.W-ClampMargin)
	next.Y = clamp(next.Y, c.Min.Y+ClampMargin, c.MaxY()-size.H-ClampMargin)
	s.handle.SetPosition(next.Sub(c.Min))
}

// End finishes the session and hands the widget to the release callback.
// Without a session it does nothing.
func (t *Tracker) End() {
	s := t.session
	if s == nil {
		return
	}
	t.session = nil

	h := s.handle
	h.SetGrabbing(false)
	h.SetElevated(false)
	// re-enabled first so the snap animation can run
	h.SetTransitions(true)
	if t.onRelease != nil {
		t.onRelease(h)
	}
}

// Cancel ends the session the same way a pointer release would.
func (t *Tracker) Cancel() { t.End() }

// clamp pins v into [lo, hi]; when hi < lo the result is lo.
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
