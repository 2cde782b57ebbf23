package layout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQueueRunsInDueOrder(t *testing.T) {
	start := time.Unix(100, 0)
	q := NewQueue(start)
	var got []string
	q.After(20*time.Millisecond, func() { got = append(got, "b") })
	q.After(10*time.Millisecond, func() { got = append(got, "a") })
	q.After(20*time.Millisecond, func() { got = append(got, "c") })

	q.Advance(start.Add(5 * time.Millisecond))
	assert.Empty(t, got)

	q.Advance(start.Add(30 * time.Millisecond))
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Zero(t, q.Len())
}

func TestQueueChainedTasks(t *testing.T) {
	start := time.Unix(0, 0)
	q := NewQueue(start)
	ran := 0
	q.After(0, func() {
		ran++
		q.After(0, func() { ran++ })
		q.After(time.Second, func() { ran++ })
	})
	q.Advance(start)
	assert.Equal(t, 2, ran)
	assert.Len(t, q.Pending(), 1)
}

func TestQueueClockNeverGoesBack(t *testing.T) {
	start := time.Unix(10, 0)
	q := NewQueue(start)
	q.Advance(start.Add(-time.Second))
	assert.Equal(t, start, q.Now())
}
