package main

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"mission-control/input"
	"mission-control/layout"
	"mission-control/store"
	"mission-control/widget"
)

type manualClock struct{ now time.Time }

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time          { return c.now }
func (c *manualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func quietLogger() *log.Logger { return log.New(io.Discard) }

func memPositions(t *testing.T) *store.Positions {
	t.Helper()
	return store.NewPositions(store.NewMemory(), store.DefaultKey, quietLogger())
}

func testDefs() []widget.Def {
	return []widget.Def{
		{ID: "w-a", Title: "A", Content: "a"},
		{ID: "w-b", Title: "B", Content: "b"},
		{ID: "w-c", Title: "C", Content: "c"},
	}
}

func down(x, y float64) input.Event { return input.Event{Kind: input.Down, X: x, Y: y} }
func move(x, y float64) input.Event { return input.Event{Kind: input.Move, X: x, Y: y} }
func up(x, y float64) input.Event   { return input.Event{Kind: input.Up, X: x, Y: y} }

func pt(x, y float64) layout.Point { return layout.Point{X: x, Y: y} }
