package curve

import (
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/go-gl/mathgl/mgl32"
)

type tessellatorImpl struct {
	mu *sync.Mutex

	workers   int
	queueSize int
	idle      time.Duration

	pool    worker.DynamicWorkerPool
	stopped bool
}

// Tessellator samples a batch of curves in parallel on a reusable worker pool.
// The pool is created lazily on the first batch and reused across frames.
type Tessellator interface {
	// Tessellate samples every curve and returns the results in input order.
	// Curves must not be edited while a batch is in flight.
	//
	// Parameters:
	//   - curves: the curves to sample; nil entries produce nil results
	//
	// Returns:
	//   - [][]mgl32.Vec3: one sample slice per curve
	Tessellate(curves []*Bezier) [][]mgl32.Vec3

	// Segments is Tessellate followed by conversion to line-list pairs, flattened across curves.
	//
	// Parameters:
	//   - curves: the curves to sample
	//
	// Returns:
	//   - []mgl32.Vec3: line-list endpoints for every curve, in input order
	Segments(curves []*Bezier) []mgl32.Vec3

	// Stop shuts down the worker pool. Later batches are sampled on the calling goroutine.
	Stop()
}

var _ Tessellator = &tessellatorImpl{}

// NewTessellator creates a Tessellator whose pool has one worker per CPU.
//
// Parameters:
//   - options: functional options to configure the tessellator
//
// Returns:
//   - Tessellator: the newly created tessellator
func NewTessellator(options ...TessellatorOption) Tessellator {
	t := &tessellatorImpl{
		mu:        &sync.Mutex{},
		workers:   runtime.NumCPU(),
		queueSize: 64,
		idle:      time.Second,
	}
	for _, option := range options {
		option(t)
	}
	return t
}

func (t *tessellatorImpl) Tessellate(curves []*Bezier) [][]mgl32.Vec3 {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([][]mgl32.Vec3, len(curves))
	if t.stopped || len(curves) < 2 {
		for i, c := range curves {
			if c != nil {
				out[i] = c.Tessellate()
			}
		}
		return out
	}

	if t.pool == nil {
		t.pool = worker.NewDynamicWorkerPool(t.workers, t.queueSize, t.idle)
	}

	// pool.Wait() blocks until the queue drains and workers idle out, so a WaitGroup is the per-batch barrier.
	var wg sync.WaitGroup
	for i, c := range curves {
		if c == nil {
			continue
		}
		wg.Add(1)
		t.pool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				out[i] = c.Tessellate()
				return nil, nil
			},
		})
	}
	wg.Wait()
	return out
}

func (t *tessellatorImpl) Segments(curves []*Bezier) []mgl32.Vec3 {
	var out []mgl32.Vec3
	for _, samples := range t.Tessellate(curves) {
		out = append(out, segments(samples)...)
	}
	return out
}

func (t *tessellatorImpl) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	t.stopped = true
	if t.pool != nil {
		t.pool.Stop()
		t.pool = nil
	}
}
