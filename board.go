package main

import (
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"mission-control/background"
	"mission-control/input"
	"mission-control/layout"
	"mission-control/store"
	"mission-control/widget"
)

type BoardOptions struct {
	Stage     layout.Rect
	Snap      layout.SnapConfig
	Scheduler layout.Scheduler
	Clock     func() time.Time
}

// Board is the free-position layout controller: absolutely placed cards on
// a stage, dragged by one tracker and snapped on release.
type Board struct {
	stage     layout.Rect
	cards     []*Card
	tracker   *layout.Tracker
	snapper   *layout.Snapper
	positions *store.Positions
	logger    *log.Logger
}

func NewBoard(defs []widget.Def, positions *store.Positions, opts BoardOptions, logger *log.Logger) *Board {
	b := &Board{
		stage:     opts.Stage,
		positions: positions,
		logger:    logger,
	}
	b.snapper = layout.NewSnapper(opts.Snap, opts.Scheduler, b.Persist, logger)
	b.tracker = layout.NewTracker(b.Stage, func(h layout.Handle) { b.snapper.Resolve(h) })

	saved := positions.Load()
	for i, def := range defs {
		pos := DefaultPosition(i, b.stage.Size)
		if p, ok := saved[def.ID]; ok {
			pos = layout.Point{X: float64(p.Left), Y: float64(p.Top)}
		}
		b.cards = append(b.cards, NewCard(def, pos, opts.Clock))
	}
	logger.Debug("board ready", "widgets", len(b.cards), "restored", len(saved))
	return b
}

// DefaultPosition scatters widget i in rows of three, kept clear of the
// stage's right and bottom edges.
func DefaultPosition(i int, stage layout.Size) layout.Point {
	col, row := i%ScatterColumns, i/ScatterColumns
	return layout.Point{
		X: math.Min(stage.W-ScatterRightReserve, ScatterLeft+float64(col)*ScatterStepX),
		Y: math.Min(stage.H-ScatterBottomReserve, ScatterTop+float64(row)*ScatterStepY),
	}
}

// StageFor is the board container for a window: everything under the header.
func StageFor(w, h int) layout.Rect {
	return layout.Rect{
		Min:  layout.Point{X: 0, Y: HeaderHeight},
		Size: layout.Size{W: float64(w), H: math.Max(0, float64(h)-HeaderHeight)},
	}
}

func (b *Board) Stage() layout.Rect { return b.stage }

func (b *Board) Cards() []*Card { return b.cards }

func (b *Board) Card(id string) *Card {
	for _, c := range b.cards {
		if c.ID() == id {
			return c
		}
	}
	return nil
}

func (b *Board) Dragging() bool { return b.tracker.Active() }

// CardAt returns the top-most card under p, elevated cards first.
func (b *Board) CardAt(p layout.Point) *Card {
	for _, elevated := range []bool{true, false} {
		for i := len(b.cards) - 1; i >= 0; i-- {
			c := b.cards[i]
			if c.Elevated() == elevated && c.Bounds(b.stage.Min).Contains(p) {
				return c
			}
		}
	}
	return nil
}

func (b *Board) HandlePointer(ev input.Event) {
	p := layout.Point{X: ev.X, Y: ev.Y}
	switch ev.Kind {
	case input.Down:
		if c := b.CardAt(p); c != nil && b.tracker.Begin(c, p) {
			b.logger.Debug("drag start", "widget", c.ID(), "touch", ev.Touch)
		}
	case input.Move:
		b.tracker.Update(p)
	case input.Up:
		b.tracker.End()
	case input.Cancel:
		b.tracker.Cancel()
	}
}

func (b *Board) Cancel() { b.tracker.Cancel() }

func (b *Board) Resize(w, h int) { b.stage = StageFor(w, h) }

// Persist writes every card's settled position.
func (b *Board) Persist() {
	l := make(store.Layout, len(b.cards))
	for _, c := range b.cards {
		p := c.Settled()
		l[c.ID()] = store.Position{Left: int(math.Round(p.X)), Top: int(math.Round(p.Y))}
	}
	b.positions.Save(l)
}

func (b *Board) Draw(screen *ebiten.Image, face font.Face) {
	s := b.stage
	background.DrawGrid(screen, s.Min.X, s.Min.Y, s.Size.W, s.Size.H, b.snapper.Config().Grid.Cell, ColorGrid)

	var top []*Card
	for _, c := range b.cards {
		if c.Elevated() {
			top = append(top, c)
			continue
		}
		c.Draw(screen, face, s.Min)
	}
	for _, c := range top {
		c.Draw(screen, face, s.Min)
	}
}
