package pong

import "sort"

// EventKind names a deferred event.
type EventKind int

const (
	// EventServe serves the ball when it fires during StateServing.
	EventServe EventKind = iota
)

func (k EventKind) String() string {
	switch k {
	case EventServe:
		return "serve"
	default:
		return "unknown"
	}
}

// Event is a fire-once deferred event. Generation is compared with the
// session's when it fires; a mismatch means the event went stale.
type Event struct {
	Kind       EventKind
	Due        uint64
	Generation uint64
}

// Timers is a queue of deferred events ordered by due tick.
// Events due on the same tick fire in scheduling order.
type Timers struct {
	queue []Event
}

// Schedule adds an event to the queue.
func (t *Timers) Schedule(e Event) {
	i := sort.Search(len(t.queue), func(i int) bool {
		return t.queue[i].Due > e.Due
	})
	t.queue = append(t.queue, Event{})
	copy(t.queue[i+1:], t.queue[i:])
	t.queue[i] = e
}

// PopDue removes and returns every event due at or before now.
func (t *Timers) PopDue(now uint64) []Event {
	n := 0
	for n < len(t.queue) && t.queue[n].Due <= now {
		n++
	}
	if n == 0 {
		return nil
	}
	due := make([]Event, n)
	copy(due, t.queue[:n])
	t.queue = append(t.queue[:0], t.queue[n:]...)
	return due
}

// Len returns the number of pending events.
func (t *Timers) Len() int {
	return len(t.queue)
}

// Clear drops every pending event.
func (t *Timers) Clear() {
	t.queue = t.queue[:0]
}
