package input

// QueueOption is a functional option for configuring a Queue.
type QueueOption func(*queueImpl)

// WithCapacity sets the maximum number of queued events.
//
// Parameters:
//   - n: the capacity; values below 1 fall back to DefaultCapacity
//
// Returns:
//   - QueueOption: functional option to set the capacity
func WithCapacity(n int) QueueOption {
	return func(q *queueImpl) {
		q.capacity = n
	}
}
