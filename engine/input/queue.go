package input

import (
	"errors"
	"sync"
)

// ErrQueueFull is returned by Push when the queue is at capacity and the event could not be coalesced.
var ErrQueueFull = errors.New("input queue full")

// DefaultCapacity is the queue capacity used when none is configured.
const DefaultCapacity = 256

type queueImpl struct {
	mu *sync.Mutex

	events   []Event
	spare    []Event
	capacity int
	dropped  uint64
}

// Queue is a bounded FIFO of input events.
// Window callbacks push; the engine drains once per tick. Consecutive cursor moves are merged into the latest one,
// which keeps a fast mouse from filling the queue between ticks.
type Queue interface {
	// Push appends an event. A cursor move directly following another queued cursor move replaces it.
	//
	// Parameters:
	//   - ev: the event
	//
	// Returns:
	//   - error: ErrQueueFull if the event was dropped
	Push(ev Event) error

	// Drain removes every queued event and calls fn on each in arrival order.
	// Events pushed by fn are kept for the next Drain.
	//
	// Parameters:
	//   - fn: the per-event handler
	//
	// Returns:
	//   - int: the number of events handled
	Drain(fn func(Event)) int

	// Len returns the number of queued events.
	//
	// Returns:
	//   - int: queued event count
	Len() int

	// Cap returns the queue capacity.
	//
	// Returns:
	//   - int: the capacity
	Cap() int

	// Dropped returns how many events have been rejected since creation.
	//
	// Returns:
	//   - uint64: dropped event count
	Dropped() uint64
}

var _ Queue = &queueImpl{}

// NewQueue creates an empty Queue.
//
// Parameters:
//   - options: functional options to configure the queue
//
// Returns:
//   - Queue: the newly created queue
func NewQueue(options ...QueueOption) Queue {
	q := &queueImpl{
		mu:       &sync.Mutex{},
		capacity: DefaultCapacity,
	}
	for _, option := range options {
		option(q)
	}
	if q.capacity < 1 {
		q.capacity = DefaultCapacity
	}
	q.events = make([]Event, 0, q.capacity)
	q.spare = make([]Event, 0, q.capacity)
	return q
}

func (q *queueImpl) Push(ev Event) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if ev.Type == EventCursorMove && len(q.events) > 0 {
		last := &q.events[len(q.events)-1]
		if last.Type == EventCursorMove {
			*last = ev
			return nil
		}
	}

	if len(q.events) >= q.capacity {
		q.dropped++
		return ErrQueueFull
	}
	q.events = append(q.events, ev)
	return nil
}

func (q *queueImpl) Drain(fn func(Event)) int {
	q.mu.Lock()
	batch := q.events
	q.events = q.spare[:0]
	q.mu.Unlock()

	for _, ev := range batch {
		fn(ev)
	}

	q.mu.Lock()
	q.spare = batch[:0]
	q.mu.Unlock()
	return len(batch)
}

func (q *queueImpl) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

func (q *queueImpl) Cap() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.capacity
}

func (q *queueImpl) Dropped() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}
