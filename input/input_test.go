package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mouse(x, y int, down bool) Snapshot {
	return Snapshot{Mouse: Pos{x, y}, MouseDown: down, Focused: true}
}

func TestMouseDragSequence(t *testing.T) {
	p := NewPointer()

	assert.Empty(t, p.Next(mouse(5, 5, false)), "hover is not a move")

	ev := p.Next(mouse(10, 20, true))
	require.Len(t, ev, 1)
	assert.Equal(t, Event{Kind: Down, X: 10, Y: 20}, ev[0])

	assert.Empty(t, p.Next(mouse(10, 20, true)), "no move without motion")

	ev = p.Next(mouse(15, 25, true))
	require.Len(t, ev, 1)
	assert.Equal(t, Event{Kind: Move, X: 15, Y: 25}, ev[0])

	ev = p.Next(mouse(99, 99, false))
	require.Len(t, ev, 1)
	assert.Equal(t, Event{Kind: Up, X: 15, Y: 25}, ev[0])
	assert.False(t, p.Active())
}

func TestHeldButtonDoesNotRestart(t *testing.T) {
	p := NewPointer()
	p.Next(mouse(0, 0, true))
	p.Next(Snapshot{Mouse: Pos{0, 0}, MouseDown: true, Focused: false})
	assert.False(t, p.Active())

	// still held when focus returns: no new down edge
	assert.Empty(t, p.Next(mouse(0, 0, true)))
}

func TestFocusLossCancels(t *testing.T) {
	p := NewPointer()
	p.Next(mouse(3, 4, true))
	ev := p.Next(Snapshot{Mouse: Pos{3, 4}, MouseDown: true})
	require.Len(t, ev, 1)
	assert.Equal(t, Cancel, ev[0].Kind)
}

func TestFirstTouchWins(t *testing.T) {
	p := NewPointer()
	s := Snapshot{Focused: true, Touches: map[ebiten.TouchID]Pos{7: {1, 1}, 3: {50, 60}}}
	ev := p.Next(s)
	require.Len(t, ev, 1)
	assert.Equal(t, Event{Kind: Down, X: 50, Y: 60, Touch: true}, ev[0])

	// other finger moves, ours stays
	s = Snapshot{Focused: true, Touches: map[ebiten.TouchID]Pos{7: {9, 9}, 3: {50, 60}}}
	assert.Empty(t, p.Next(s))

	s = Snapshot{Focused: true, Touches: map[ebiten.TouchID]Pos{7: {9, 9}}}
	ev = p.Next(s)
	require.Len(t, ev, 1)
	assert.Equal(t, Up, ev[0].Kind)

	// finger 7 was already down: not a new press
	assert.Empty(t, p.Next(s))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "down", Down.String())
	assert.Equal(t, "cancel", Cancel.String())
}
