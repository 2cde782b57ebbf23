package layout

import "time"

type fakeHandle struct {
	id          string
	pos         Point
	size        Size
	transitions bool
	elevated    bool
	grabbing    bool

	animatedTo *Point
	animateDur time.Duration
	bounces    int
	setCalls   int
}

func newFakeHandle(id string, x, y, w, h float64) *fakeHandle {
	return &fakeHandle{id: id, pos: Point{x, y}, size: Size{w, h}, transitions: true}
}

func (f *fakeHandle) ID() string      { return f.id }
func (f *fakeHandle) Position() Point { return f.pos }
func (f *fakeHandle) Size() Size      { return f.size }

func (f *fakeHandle) SetPosition(p Point) {
	f.pos = p
	f.setCalls++
}

func (f *fakeHandle) AnimateTo(p Point, d time.Duration) {
	f.animatedTo = &p
	f.animateDur = d
	f.pos = p
}

func (f *fakeHandle) SetTransitions(enabled bool) { f.transitions = enabled }
func (f *fakeHandle) SetElevated(elevated bool)   { f.elevated = elevated }
func (f *fakeHandle) SetGrabbing(grabbing bool)   { f.grabbing = grabbing }
func (f *fakeHandle) PlayBounce()                 { f.bounces++ }
