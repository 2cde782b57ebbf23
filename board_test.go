package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mission-control/layout"
	"mission-control/store"
)

const (
	testWidth  = 1280
	testHeight = 800
)

func newTestBoard(t *testing.T, clock *manualClock, q *layout.Queue, positions *store.Positions) *Board {
	t.Helper()
	return NewBoard(testDefs(), positions, BoardOptions{
		Stage:     StageFor(testWidth, testHeight),
		Snap:      layout.DefaultSnapConfig(),
		Scheduler: q,
		Clock:     clock.Now,
	}, quietLogger())
}

func TestDefaultPositionScatter(t *testing.T) {
	stage := layout.Size{W: 1280, H: 752}
	tests := []struct {
		i    int
		want layout.Point
	}{
		{0, pt(40, 80)},
		{1, pt(280, 80)},
		{2, pt(520, 80)},
		{3, pt(40, 220)},
		{6, pt(40, 360)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DefaultPosition(tt.i, stage), "widget %d", tt.i)
	}

	// small stages pull widgets back from the far edges
	small := layout.Size{W: 400, H: 300}
	assert.Equal(t, pt(140, 140), DefaultPosition(5, small))
}

func TestBoardDragSnapPersistRestore(t *testing.T) {
	clock := newManualClock()
	q := layout.NewQueue(clock.Now())
	positions := memPositions(t)
	b := newTestBoard(t, clock, q, positions)

	a := b.Card("w-a")
	require.NotNil(t, a)
	require.Equal(t, pt(40, 80), a.Position())

	// stage starts under the header, so w-a is at (40, 128) on screen
	b.HandlePointer(down(50, 138))
	require.True(t, b.Dragging())
	assert.True(t, a.Grabbing())
	assert.True(t, a.Elevated())

	b.HandlePointer(move(240, 168))
	assert.Equal(t, pt(230, 110), a.Position())

	b.HandlePointer(up(240, 168))
	assert.False(t, b.Dragging())
	assert.False(t, a.Grabbing())
	assert.Equal(t, pt(240, 120), a.Settled())

	clock.Advance(159 * time.Millisecond)
	q.Advance(clock.Now())
	assert.Empty(t, positions.Load())

	clock.Advance(time.Millisecond)
	q.Advance(clock.Now())
	assert.Equal(t, pt(240, 120), a.Position())
	saved := positions.Load()
	assert.Equal(t, store.Position{Left: 240, Top: 120}, saved["w-a"])
	assert.Equal(t, store.Position{Left: 280, Top: 80}, saved["w-b"])

	restored := newTestBoard(t, clock, layout.NewQueue(clock.Now()), positions)
	assert.Equal(t, pt(240, 120), restored.Card("w-a").Position())
	assert.Equal(t, pt(280, 80), restored.Card("w-b").Position())
}

func TestBoardBounceKeepsPosition(t *testing.T) {
	clock := newManualClock()
	q := layout.NewQueue(clock.Now())
	positions := memPositions(t)
	b := newTestBoard(t, clock, q, positions)
	a := b.Card("w-a")

	b.HandlePointer(down(50, 138))
	// relative (180, 180) is 84.85px from (240, 240)
	b.HandlePointer(move(190, 238))
	b.HandlePointer(up(190, 238))
	assert.Equal(t, pt(180, 180), a.Settled())

	clock.Advance(70 * time.Millisecond)
	assert.InDelta(t, -BounceLift/2, a.Lift(), 1e-9)
	assert.Equal(t, pt(180, 180), a.Position())

	clock.Advance(100 * time.Millisecond)
	q.Advance(clock.Now())
	assert.Equal(t, store.Position{Left: 180, Top: 180}, positions.Load()["w-a"])
}

func TestBoardIgnoresStrayPointer(t *testing.T) {
	clock := newManualClock()
	q := layout.NewQueue(clock.Now())
	b := newTestBoard(t, clock, q, memPositions(t))

	b.HandlePointer(move(500, 500))
	b.HandlePointer(up(500, 500))
	assert.Equal(t, 0, q.Len())

	// empty stage area starts nothing
	b.HandlePointer(down(1200, 700))
	assert.False(t, b.Dragging())

	for i, def := range testDefs() {
		assert.Equal(t, DefaultPosition(i, b.Stage().Size), b.Card(def.ID).Position())
	}
}

func TestBoardClampsToStage(t *testing.T) {
	clock := newManualClock()
	b := newTestBoard(t, clock, layout.NewQueue(clock.Now()), memPositions(t))
	a := b.Card("w-a")

	b.HandlePointer(down(50, 138))
	b.HandlePointer(move(-500, -500))
	assert.Equal(t, pt(layout.ClampMargin, layout.ClampMargin), a.Position())

	b.HandlePointer(move(5000, 5000))
	stage := b.Stage()
	assert.Equal(t, pt(stage.Size.W-WidgetWidth-layout.ClampMargin, stage.Size.H-WidgetHeight-layout.ClampMargin), a.Position())
}

func TestBoardCancelStillResolves(t *testing.T) {
	clock := newManualClock()
	q := layout.NewQueue(clock.Now())
	b := newTestBoard(t, clock, q, memPositions(t))

	b.HandlePointer(down(50, 138))
	b.Cancel()
	assert.False(t, b.Dragging())
	assert.Equal(t, 1, q.Len())
}

func TestCardAtPrefersElevated(t *testing.T) {
	clock := newManualClock()
	b := newTestBoard(t, clock, layout.NewQueue(clock.Now()), memPositions(t))
	a, c := b.Card("w-a"), b.Card("w-c")
	a.SetPosition(pt(100, 100))
	c.SetPosition(pt(100, 100))

	assert.Same(t, c, b.CardAt(pt(150, 200)))
	a.SetElevated(true)
	assert.Same(t, a, b.CardAt(pt(150, 200)))
	assert.Nil(t, b.CardAt(pt(5, 5)))
}
