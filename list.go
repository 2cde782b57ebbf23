package main

import (
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"mission-control/input"
	"mission-control/layout"
	"mission-control/widget"
)

// ListBoard is the list-reorder layout controller. Cards flow top to bottom
// in a centred column; dragging one reorders the column live. Order is not
// persisted.
type ListBoard struct {
	defs    map[string]widget.Def
	list    *layout.CardList
	area    layout.Rect
	grab    layout.Point
	pointer layout.Point
	logger  *log.Logger

	fade *ebiten.Image
}

func NewListBoard(defs []widget.Def, area layout.Rect, logger *log.Logger) *ListBoard {
	l := &ListBoard{defs: make(map[string]widget.Def, len(defs)), area: area, logger: logger}
	ids := make([]string, 0, len(defs))
	for _, d := range defs {
		l.defs[d.ID] = d
		ids = append(ids, d.ID)
	}
	l.list = layout.NewCardList(ids)
	return l
}

// ListAreaFor is the list container for a window.
func ListAreaFor(w, h int) layout.Rect {
	x := math.Max(0, (float64(w)-ListWidth)/2)
	y := float64(HeaderHeight) + ListPadding
	return layout.Rect{
		Min:  layout.Point{X: x, Y: y},
		Size: layout.Size{W: math.Min(ListWidth, float64(w)), H: math.Max(0, float64(h)-y-ListPadding)},
	}
}

func (l *ListBoard) Order() []string { return l.list.Order() }

// Bounds is the slot of id in the current order.
func (l *ListBoard) Bounds(id string) layout.Rect {
	for i, v := range l.list.Order() {
		if v == id {
			return l.slot(i)
		}
	}
	return layout.Rect{}
}

func (l *ListBoard) slot(i int) layout.Rect {
	return layout.Rect{
		Min: layout.Point{
			X: l.area.Min.X + ListPadding,
			Y: l.area.Min.Y + ListPadding + float64(i)*(ListCardHeight+ListGap),
		},
		Size: layout.Size{W: l.area.Size.W - 2*ListPadding, H: ListCardHeight},
	}
}

func (l *ListBoard) cardAt(p layout.Point) (string, bool) {
	for i, id := range l.list.Order() {
		if l.slot(i).Contains(p) {
			return id, true
		}
	}
	return "", false
}

func (l *ListBoard) HandlePointer(ev input.Event) {
	p := layout.Point{X: ev.X, Y: ev.Y}
	switch ev.Kind {
	case input.Down:
		id, ok := l.cardAt(p)
		if !ok || !l.list.StartDrag(id) {
			return
		}
		l.grab = p.Sub(l.Bounds(id).Min)
		l.pointer = p
		l.logger.Debug("list drag start", "widget", id)
	case input.Move:
		if _, ok := l.list.Dragging(); !ok {
			return
		}
		l.pointer = p
		if !l.area.Contains(p) {
			return
		}
		if l.list.DragOver(p.Y, l.Bounds) {
			l.logger.Debug("list reordered", "order", l.list.Order())
		}
	case input.Up, input.Cancel:
		l.list.EndDrag()
	}
}

func (l *ListBoard) Cancel() { l.list.EndDrag() }

func (l *ListBoard) Resize(w, h int) { l.area = ListAreaFor(w, h) }

func (l *ListBoard) Draw(screen *ebiten.Image, face font.Face) {
	a := l.area
	vector.DrawFilledRect(screen, float32(a.Min.X), float32(a.Min.Y), float32(a.Size.W), float32(a.Size.H), ColorListArea, false)

	dragging, isDragging := l.list.Dragging()
	for i, id := range l.list.Order() {
		r := l.slot(i)
		if isDragging && id == dragging {
			l.drawCard(screen, face, id, r, DraggingAlpha, false)
			continue
		}
		l.drawCard(screen, face, id, r, 1, false)
	}
	if isDragging {
		r := layout.Rect{Min: l.pointer.Sub(l.grab), Size: l.slot(0).Size}
		l.drawCard(screen, face, dragging, r, 1, true)
	}
}

func (l *ListBoard) drawCard(screen *ebiten.Image, face font.Face, id string, r layout.Rect, alpha float32, highlight bool) {
	def := l.defs[id]
	if alpha >= 1 {
		drawListCard(screen, face, def, r.Min.X, r.Min.Y, r.Size, highlight)
		return
	}

	// faded cards go through an offscreen pass so overlapping layers blend once
	w, h := int(r.Size.W+2*GlowThickness), int(r.Size.H+2*GlowThickness)
	if l.fade == nil || l.fade.Bounds().Dx() != w || l.fade.Bounds().Dy() != h {
		if l.fade != nil {
			l.fade.Deallocate()
		}
		l.fade = ebiten.NewImage(w, h)
	}
	l.fade.Clear()
	drawListCard(l.fade, face, def, GlowThickness, GlowThickness, r.Size, highlight)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(r.Min.X-GlowThickness, r.Min.Y-GlowThickness)
	op.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(l.fade, op)
}

func drawListCard(dst *ebiten.Image, face font.Face, def widget.Def, x, y float64, size layout.Size, highlight bool) {
	drawPanel(dst, float32(x), float32(y), float32(size.W), float32(size.H), highlight)
	DrawTextLines(dst, face, def.Title, int(x)+WidgetPadding, int(y)+WidgetPadding, ColorTitle)
	DrawTextLines(dst, face, def.Content, int(x)+WidgetPadding, int(y)+WidgetPadding+24, ColorContent)
}
