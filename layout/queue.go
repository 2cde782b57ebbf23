package layout

import (
	"sort"
	"time"
)

// Scheduler defers work onto the same logical task queue as input handling.
type Scheduler interface {
	After(d time.Duration, fn func())
}

type task struct {
	due time.Time
	seq uint64
	fn  func()
}

// Queue is a timer queue drained explicitly by the frame loop. Tasks run in
// due order, ties in scheduling order, and never concurrently.
type Queue struct {
	now   time.Time
	seq   uint64
	tasks []task
}

func NewQueue(start time.Time) *Queue {
	return &Queue{now: start}
}

func (q *Queue) Now() time.Time { return q.now }

func (q *Queue) Len() int { return len(q.tasks) }

// After schedules fn to run d after the queue's current time.
func (q *Queue) After(d time.Duration, fn func()) {
	q.seq++
	q.tasks = append(q.tasks, task{due: q.now.Add(d), seq: q.seq, fn: fn})
}

// Advance moves the queue clock to now and runs every task that is due.
// Tasks scheduled by a running task are eligible in the same call.
func (q *Queue) Advance(now time.Time) {
	if now.After(q.now) {
		q.now = now
	}
	for {
		next := -1
		for i, t := range q.tasks {
			if t.due.After(q.now) {
				continue
			}
			if next == -1 || t.due.Before(q.tasks[next].due) ||
				(t.due.Equal(q.tasks[next].due) && t.seq < q.tasks[next].seq) {
				next = i
			}
		}
		if next == -1 {
			return
		}
		t := q.tasks[next]
		q.tasks = append(q.tasks[:next], q.tasks[next+1:]...)
		t.fn()
	}
}

// Pending returns the due times of queued tasks in run order.
func (q *Queue) Pending() []time.Time {
	out := make([]time.Time, 0, len(q.tasks))
	for _, t := range q.tasks {
		out = append(out, t.due)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}
