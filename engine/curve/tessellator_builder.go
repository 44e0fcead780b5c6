package curve

import "time"

// TessellatorOption is a functional option for configuring a Tessellator.
type TessellatorOption func(*tessellatorImpl)

// WithWorkers sets the maximum number of pool workers.
//
// Parameters:
//   - n: worker count; values below 1 are raised to 1 by the pool
//
// Returns:
//   - TessellatorOption: functional option to set the worker count
func WithWorkers(n int) TessellatorOption {
	return func(t *tessellatorImpl) {
		t.workers = n
	}
}

// WithQueueSize sets the pool's task queue capacity.
//
// Parameters:
//   - n: queued task capacity
//
// Returns:
//   - TessellatorOption: functional option to set the queue size
func WithQueueSize(n int) TessellatorOption {
	return func(t *tessellatorImpl) {
		t.queueSize = n
	}
}

// WithIdleTimeout sets how long an idle pool worker lingers.
//
// Parameters:
//   - d: idle timeout
//
// Returns:
//   - TessellatorOption: functional option to set the idle timeout
func WithIdleTimeout(d time.Duration) TessellatorOption {
	return func(t *tessellatorImpl) {
		t.idle = d
	}
}
