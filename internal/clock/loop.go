package clock

import (
	"container/heap"
	"sync"
	"time"
)

// Loop is a pausable virtual clock advanced by the host's update step.
type Loop struct {
	mu     sync.Mutex
	now    time.Time
	paused bool
	seq    uint64
	queue  timerQueue
}

// NewLoop creates a running clock reading start.
func NewLoop(start time.Time) *Loop {
	return &Loop{now: start}
}

// Now returns the current virtual time.
func (l *Loop) Now() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.now
}

// AfterFunc arms f to run once the clock has advanced by d.
// A non-positive d fires on the next Advance.
func (l *Loop) AfterFunc(d time.Duration, f func()) Timer {
	l.mu.Lock()
	defer l.mu.Unlock()

	if d < 0 {
		d = 0
	}
	t := &loopTimer{
		loop:     l,
		deadline: l.now.Add(d),
		seq:      l.seq,
		fn:       f,
	}
	l.seq++
	heap.Push(&l.queue, t)
	return t
}

// Advance moves the clock forward by d and runs every timer whose deadline
// falls within the step, earliest first (arming order on ties). While a
// callback runs, Now reports that callback's deadline. Returns the number of
// callbacks run. A paused clock does not move.
func (l *Loop) Advance(d time.Duration) int {
	l.mu.Lock()
	if l.paused || d < 0 {
		l.mu.Unlock()
		return 0
	}

	target := l.now.Add(d)
	fired := 0
	for len(l.queue) > 0 && !l.queue[0].deadline.After(target) {
		t := heap.Pop(&l.queue).(*loopTimer)
		l.now = t.deadline

		l.mu.Unlock()
		t.fn()
		l.mu.Lock()
		fired++
	}
	if target.After(l.now) {
		l.now = target
	}
	l.mu.Unlock()
	return fired
}

// Pause freezes the clock; Advance becomes a no-op until Resume.
func (l *Loop) Pause() {
	l.mu.Lock()
	l.paused = true
	l.mu.Unlock()
}

func (l *Loop) Resume() {
	l.mu.Lock()
	l.paused = false
	l.mu.Unlock()
}

func (l *Loop) IsPaused() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.paused
}

// Pending returns the number of armed timers.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

type loopTimer struct {
	loop     *Loop
	deadline time.Time
	seq      uint64
	fn       func()
	index    int // position in the heap, -1 once fired or stopped
}

// Stop removes the timer from the queue, so its callback can never run afterwards.
func (t *loopTimer) Stop() bool {
	l := t.loop
	l.mu.Lock()
	defer l.mu.Unlock()

	if t.index < 0 {
		return false
	}
	heap.Remove(&l.queue, t.index)
	return true
}

// timerQueue is a min-heap on (deadline, seq).
type timerQueue []*loopTimer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].deadline.Equal(q[j].deadline) {
		return q[i].seq < q[j].seq
	}
	return q[i].deadline.Before(q[j].deadline)
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*loopTimer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
