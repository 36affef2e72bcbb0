package loop

// Handle identifies a scheduled frame callback. The zero Handle is never
// issued.
type Handle uint64

// Scheduler is the display-refresh primitive the controller yields to.
// RequestFrame arranges for fn to run once at the next refresh; Cancel
// revokes a request that has not run yet.
type Scheduler interface {
	RequestFrame(fn func()) Handle
	Cancel(h Handle)
}

// QueueScheduler is a Scheduler driven by its host: each call to RunPending
// stands for one display refresh. ebiten's Update and the headless bench
// both drive it this way.
type QueueScheduler struct {
	next    Handle
	pending []queued
	scratch []queued
}

type queued struct {
	h  Handle
	fn func()
}

// NewQueueScheduler returns an empty scheduler.
func NewQueueScheduler() *QueueScheduler {
	return &QueueScheduler{}
}

// RequestFrame queues fn for the next RunPending call.
func (q *QueueScheduler) RequestFrame(fn func()) Handle {
	q.next++
	q.pending = append(q.pending, queued{h: q.next, fn: fn})
	return q.next
}

// Cancel removes the callback registered under h if it has not started
// running yet.
func (q *QueueScheduler) Cancel(h Handle) {
	for i, p := range q.pending {
		if p.h == h {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	for i := range q.scratch {
		if q.scratch[i].h == h {
			q.scratch[i].fn = nil
			return
		}
	}
}

// Pending reports how many callbacks are waiting.
func (q *QueueScheduler) Pending() int { return len(q.pending) }

// RunPending runs the callbacks that were queued before the call. Callbacks
// requested while running wait for the next refresh. It returns how many
// callbacks ran.
func (q *QueueScheduler) RunPending() int {
	if len(q.pending) == 0 {
		return 0
	}
	q.scratch = append(q.scratch[:0], q.pending...)
	q.pending = q.pending[:0]
	ran := 0
	for i := range q.scratch {
		fn := q.scratch[i].fn
		q.scratch[i] = queued{}
		if fn == nil {
			continue
		}
		fn()
		ran++
	}
	q.scratch = q.scratch[:0]
	return ran
}
