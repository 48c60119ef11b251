// Package queue provides the pending input event buffer drained once per
// processing cycle.
package queue

import "github.com/dshills/simstorm/internal/input/event"

// Queue is a strict FIFO of input events with unbounded capacity. Each
// cycle has a single producer phase (the platform source and device poller
// enqueue) followed by a single consumer phase (a full drain), strictly
// ordered, so the queue is not safe for concurrent use and does not need
// to be.
type Queue struct {
	events []event.Event
}

// New creates an empty queue.
func New() *Queue {
	return &Queue{}
}

// Push appends an event to the back of the queue.
func (q *Queue) Push(ev event.Event) {
	q.events = append(q.events, ev)
}

// Drain removes and returns all pending events in arrival order. The queue
// is empty afterwards, so no event ever leaks into the next cycle.
func (q *Queue) Drain() []event.Event {
	events := q.events
	q.events = nil
	return events
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	return len(q.events)
}
