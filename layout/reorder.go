package layout

// CardList is the ordered card set of list mode. Only relative order is kept.
type CardList struct {
	ids      []string
	dragging string
}

func NewCardList(ids []string) *CardList {
	return &CardList{ids: append([]string(nil), ids...)}
}

// Order returns a copy of the current order.
func (l *CardList) Order() []string {
	return append([]string(nil), l.ids...)
}

func (l *CardList) Len() int { return len(l.ids) }

func (l *CardList) index(id string) int {
	for i, v := range l.ids {
		if v == id {
			return i
		}
	}
	return -1
}

// StartDrag flags id as the dragged card. It fails for unknown ids and while
// another card is already flagged.
func (l *CardList) StartDrag(id string) bool {
	if l.dragging != "" || l.index(id) < 0 {
		return false
	}
	l.dragging = id
	return true
}

func (l *CardList) EndDrag() { l.dragging = "" }

func (l *CardList) Dragging() (string, bool) {
	return l.dragging, l.dragging != ""
}

// InsertAnchor picks the card the dragged one should precede for a pointer
// at y: among the other cards whose midpoint lies below y it returns the one
// nearest to y. ok is false when the pointer is below every midpoint.
func InsertAnchor(ids []string, dragging string, y float64, bounds func(id string) Rect) (anchor string, ok bool) {
	var best float64
	for _, id := range ids {
		if id == dragging {
			continue
		}
		offset := y - bounds(id).MidY()
		if offset < 0 && (!ok || offset > best) {
			best = offset
			anchor = id
			ok = true
		}
	}
	return anchor, ok
}

// DragOver moves the dragged card in front of the anchor for y, or to the
// end of the list when there is none. bounds must describe the layout of the
// current order. It reports whether the order changed.
func (l *CardList) DragOver(y float64, bounds func(id string) Rect) bool {
	if l.dragging == "" {
		return false
	}
	from := l.index(l.dragging)
	if from < 0 {
		return false
	}
	anchor, ok := InsertAnchor(l.ids, l.dragging, y, bounds)

	rest := make([]string, 0, len(l.ids))
	rest = append(rest, l.ids[:from]...)
	rest = append(rest, l.ids[from+1:]...)

	to := len(rest)
	if ok {
		for i, id := range rest {
			if id == anchor {
				to = i
				break
			}
		}
	}
	next := make([]string, 0, len(l.ids))
	next = append(next, rest[:to]...)
	next = append(next, l.dragging)
	next = append(next, rest[to:]...)

	changed := to != from
	l.ids = next
	return changed
}
