// Package input turns Ebitengine mouse and touch state into a single stream
// of pointer events. One pointer is tracked at a time: the left mouse button
// or the first touch, whichever presses first.
package input

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

type Kind int

const (
	Down Kind = iota
	Move
	Up
	Cancel
)

func (k Kind) String() string {
	switch k {
	case Down:
		return "down"
	case Move:
		return "move"
	case Up:
		return "up"
	case Cancel:
		return "cancel"
	}
	return "unknown"
}

type Event struct {
	Kind  Kind
	X, Y  float64
	Touch bool
}

type Pos struct{ X, Y int }

// Snapshot is the raw device state of one frame.
type Snapshot struct {
	Mouse     Pos
	MouseDown bool
	Touches   map[ebiten.TouchID]Pos
	Focused   bool
}

// Pointer remembers the previous frame so it can emit edges.
type Pointer struct {
	prevMouseDown bool
	prevTouches   map[ebiten.TouchID]Pos

	active  bool
	touch   bool
	touchID ebiten.TouchID
	last    Pos

	touchBuf []ebiten.TouchID
}

func NewPointer() *Pointer {
	return &Pointer{prevTouches: map[ebiten.TouchID]Pos{}}
}

func (p *Pointer) Active() bool { return p.active }

// Poll reads the current ebiten input state and returns this frame's events.
func (p *Pointer) Poll() []Event {
	s := Snapshot{
		MouseDown: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Focused:   ebiten.IsFocused(),
		Touches:   map[ebiten.TouchID]Pos{},
	}
	s.Mouse.X, s.Mouse.Y = ebiten.CursorPosition()
	p.touchBuf = ebiten.AppendTouchIDs(p.touchBuf[:0])
	for _, id := range p.touchBuf {
		x, y := ebiten.TouchPosition(id)
		s.Touches[id] = Pos{x, y}
	}
	return p.Next(s)
}

// Next derives events from a snapshot. It is the testable half of Poll.
func (p *Pointer) Next(s Snapshot) []Event {
	defer func() {
		p.prevMouseDown = s.MouseDown
		p.prevTouches = s.Touches
	}()

	if p.active && !s.Focused {
		return []Event{p.release(Cancel)}
	}
	if p.active {
		return p.follow(s)
	}
	if !s.Focused {
		return nil
	}

	if s.MouseDown && !p.prevMouseDown {
		p.active, p.touch, p.last = true, false, s.Mouse
		return []Event{p.event(Down)}
	}
	if id, ok := p.newTouch(s); ok {
		p.active, p.touch, p.touchID, p.last = true, true, id, s.Touches[id]
		return []Event{p.event(Down)}
	}
	return nil
}

func (p *Pointer) follow(s Snapshot) []Event {
	var pos Pos
	var held bool
	if p.touch {
		pos, held = s.Touches[p.touchID]
	} else {
		pos, held = s.Mouse, s.MouseDown
	}
	if !held {
		return []Event{p.release(Up)}
	}
	if pos == p.last {
		return nil
	}
	p.last = pos
	return []Event{p.event(Move)}
}

// newTouch returns the lowest touch id that was not down last frame.
func (p *Pointer) newTouch(s Snapshot) (ebiten.TouchID, bool) {
	var fresh []ebiten.TouchID
	for id := range s.Touches {
		if _, seen := p.prevTouches[id]; !seen {
			fresh = append(fresh, id)
		}
	}
	if len(fresh) == 0 {
		return 0, false
	}
	return slices.Min(fresh), true
}

func (p *Pointer) release(k Kind) Event {
	e := p.event(k)
	p.active = false
	return e
}

func (p *Pointer) event(k Kind) Event {
	return Event{Kind: k, X: float64(p.last.X), Y: float64(p.last.Y), Touch: p.touch}
}
