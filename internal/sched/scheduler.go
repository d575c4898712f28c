// Package sched provides a single-threaded, virtual-time timer queue.
//
// Games use it in place of wall-clock timers: the platform advances the clock
// once per simulation tick and every due callback runs synchronously on the
// caller's goroutine. Tests drive the clock directly.
package sched

import (
	"container/heap"
	"time"
)

// Handle identifies a scheduled timer. The zero Handle never refers to a timer,
// so it can be used as "no timer" in struct fields.
type Handle uint64

// Scheduler is a virtual clock with one-shot and repeating timers.
// It is not safe for concurrent use.
type Scheduler struct {
	now    time.Duration
	seq    uint64
	queue  timerQueue
	active map[Handle]*timer
}

type timer struct {
	handle   Handle
	at       time.Duration
	interval time.Duration // zero for one-shot timers
	fn       func()
	seq      uint64 // tie-breaker: earlier scheduling fires first
	index    int
}

// New creates a scheduler with its clock at zero.
func New() *Scheduler {
	return &Scheduler{
		active: make(map[Handle]*timer),
	}
}

// Now returns the current virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once, d from now.
// A non-positive d fires on the next Advance call.
func (s *Scheduler) After(d time.Duration, fn func()) Handle {
	return s.schedule(d, 0, fn)
}

// Every schedules fn to run every d, first firing d from now.
// It panics if d is not positive.
func (s *Scheduler) Every(d time.Duration, fn func()) Handle {
	if d <= 0 {
		panic("sched: non-positive interval for Every")
	}
	return s.schedule(d, d, fn)
}

func (s *Scheduler) schedule(d, interval time.Duration, fn func()) Handle {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &timer{
		handle:   Handle(s.seq),
		at:       s.now + d,
		interval: interval,
		fn:       fn,
		seq:      s.seq,
	}
	s.active[t.handle] = t
	heap.Push(&s.queue, t)
	return t.handle
}

// Cancel stops a timer. It reports whether the timer was still pending.
// Cancelling the zero Handle or an already fired one-shot is a no-op.
func (s *Scheduler) Cancel(h Handle) bool {
	t, ok := s.active[h]
	if !ok {
		return false
	}
	delete(s.active, h)
	if t.index >= 0 {
		heap.Remove(&s.queue, t.index)
	}
	return true
}

// Pending reports whether h is still scheduled.
func (s *Scheduler) Pending(h Handle) bool {
	_, ok := s.active[h]
	return ok
}

// Len returns the number of scheduled timers.
func (s *Scheduler) Len() int {
	return len(s.active)
}

// Advance moves the clock forward by d and runs every timer that comes due.
// It returns the number of callbacks run.
func (s *Scheduler) Advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}
	return s.AdvanceTo(s.now + d)
}

// AdvanceTo moves the clock to t and runs every timer due at or before t,
// in due-time order. The clock reads each timer's due time while its
// callback runs. Moving backwards is a no-op.
func (s *Scheduler) AdvanceTo(t time.Duration) int {
	fired := 0
	for s.queue.Len() > 0 {
		next := s.queue[0]
		if next.at > t {
			break
		}
		heap.Pop(&s.queue)
		if next.at > s.now {
			s.now = next.at
		}

		if next.interval > 0 {
			// Re-arm before running so the callback can cancel it.
			s.seq++
			next.at += next.interval
			next.seq = s.seq
			heap.Push(&s.queue, next)
		} else {
			delete(s.active, next.handle)
		}

		next.fn()
		fired++
	}
	if t > s.now {
		s.now = t
	}
	return fired
}

// timerQueue is a min-heap ordered by due time, then scheduling order.
type timerQueue []*timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*timer)
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
