// Package queue serializes host-fired notifications into one-at-a-time
// deliveries. The host can raise two callbacks before the user has heard
// the first; the queue guarantees in-order announcement with no
// interleaving and lets a superseding user action discard the backlog.
package queue

import "github.com/sightcast/narrator/internal/logging/events"

// Event is a queued host notification.
type Event struct {
	Kind    string
	Payload interface{}
}

// Sink receives delivered events, one at a time.
type Sink func(Event)

// Queue hands events to its sink strictly FIFO and never more than one
// per idle period. Delivery does not auto-advance: after the sink runs,
// the queue stays busy until MarkIdle, so a burst of notifications drains
// at the consumer's pace.
type Queue struct {
	sink    Sink
	pending []Event
	busy    bool
}

// New builds a queue delivering into sink.
func New(sink Sink) *Queue {
	return &Queue{sink: sink}
}

// Enqueue adds an event. When the consumer is idle the event is delivered
// immediately; otherwise it waits its turn.
func (q *Queue) Enqueue(ev Event) {
	q.pending = append(q.pending, ev)
	events.Queue.Enqueue(ev.Kind, len(q.pending))
	if !q.busy {
		q.deliverNext()
	}
}

// MarkIdle signals that the consumer finished reacting to the last
// delivery. The next pending event, if any, is delivered now.
func (q *Queue) MarkIdle() {
	q.busy = false
	if len(q.pending) > 0 {
		q.deliverNext()
	}
}

// ReadNext delivers the next pending event on explicit user request even
// though the consumer has not gone idle. Reports whether anything was
// delivered.
func (q *Queue) ReadNext() bool {
	if len(q.pending) == 0 {
		return false
	}
	q.deliverNext()
	return true
}

// Clear discards the backlog and marks the consumer idle. Called when a
// user action supersedes everything queued; dropped events are never
// announced after the fact.
func (q *Queue) Clear() {
	if n := len(q.pending); n > 0 {
		events.Queue.Clear(n)
	}
	q.pending = nil
	q.busy = false
}

// Pending reports the number of undelivered events.
func (q *Queue) Pending() int {
	return len(q.pending)
}

// Busy reports whether the consumer is still reacting to a delivery.
func (q *Queue) Busy() bool {
	return q.busy
}

func (q *Queue) deliverNext() {
	ev := q.pending[0]
	q.pending = q.pending[1:]
	// Busy is set before the sink runs so a reentrant Enqueue from inside
	// the sink waits instead of starting a second delivery.
	q.busy = true
	events.Queue.Deliver(ev.Kind)
	if q.sink != nil {
		q.sink(ev)
	}
}
