package layout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecide(t *testing.T) {
	grid := Grid{Cell: 120}
	tests := []struct {
		name    string
		rel     Point
		target  Point
		snapped bool
	}{
		{"far from corner", Point{50, 50}, Point{0, 0}, false},
		{"near origin", Point{20, 10}, Point{0, 0}, true},
		{"near inner point", Point{250, 130}, Point{240, 120}, true},
		{"exactly on point", Point{360, 480}, Point{360, 480}, true},
		{"half rounds up", Point{60, 0}, Point{120, 0}, false},
		{"distance equals threshold", Point{180, 120}, Point{240, 120}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Decide(tt.rel, grid, 60)
			assert.Equal(t, tt.target, d.Target)
			assert.Equal(t, tt.snapped, d.Snapped)
		})
	}
}

func TestDecideBoundaryIsStrict(t *testing.T) {
	grid := Grid{Cell: 100}
	// 3-4-5 triangle from (0, 0)
	d := Decide(Point{30, 40}, grid, 50)
	assert.InDelta(t, 50.0, d.Distance, 1e-9)
	assert.False(t, d.Snapped)

	d = Decide(Point{30, 40}, grid, 50.000001)
	assert.True(t, d.Snapped)
}

func TestDecideDistance(t *testing.T) {
	d := Decide(Point{50, 50}, Grid{Cell: 120}, 60)
	assert.InDelta(t, 70.71, d.Distance, 0.01)
	d = Decide(Point{20, 10}, Grid{Cell: 120}, 60)
	assert.InDelta(t, 22.36, d.Distance, 0.01)
}

func TestSnapperSnapsAndDefersPersist(t *testing.T) {
	start := time.Unix(0, 0)
	q := NewQueue(start)
	writes := 0
	s := NewSnapper(DefaultSnapConfig(), q, func() { writes++ }, nil)

	h := newFakeHandle("w", 20, 10, 50, 50)
	d := s.Resolve(h)
	require.True(t, d.Snapped)
	require.NotNil(t, h.animatedTo)
	assert.Equal(t, Point{0, 0}, *h.animatedTo)
	assert.Equal(t, DefaultSnapDuration, h.animateDur)
	assert.Zero(t, h.bounces)

	q.Advance(start.Add(159 * time.Millisecond))
	assert.Equal(t, 0, writes)
	q.Advance(start.Add(160 * time.Millisecond))
	assert.Equal(t, 1, writes)
	q.Advance(start.Add(time.Second))
	assert.Equal(t, 1, writes)
}

func TestSnapperBounceKeepsPosition(t *testing.T) {
	q := NewQueue(time.Unix(0, 0))
	writes := 0
	s := NewSnapper(DefaultSnapConfig(), q, func() { writes++ }, nil)

	h := newFakeHandle("w", 50, 50, 50, 50)
	d := s.Resolve(h)
	assert.False(t, d.Snapped)
	assert.Equal(t, 1, h.bounces)
	assert.Nil(t, h.animatedTo)
	assert.Equal(t, Point{50, 50}, h.Position())
	assert.Equal(t, 1, q.Len(), "persist is scheduled after a bounce too")
}
