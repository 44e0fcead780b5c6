// Package profiler reports frame rate, input throughput and memory statistics for the interactive loop.
package profiler

import (
	"log"
	"runtime"
	"time"
)

// Stats is one reporting interval's worth of frame statistics.
type Stats struct {
	// FPS is frames per second over the interval.
	FPS float64
	// EventsApplied is the number of input events drained and applied during the interval.
	EventsApplied int
	// EventsDropped is the number of input events the queue rejected during the interval.
	EventsDropped uint64
	// Dragging reports whether a point drag was active on the last frame of the interval.
	Dragging bool
	// HeapMB is live heap memory at the end of the interval.
	HeapMB float64
	// GCCount is the cumulative number of completed GC cycles.
	GCCount uint32
}

// Profiler tracks frame rate, input events and memory statistics for performance monitoring.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	frameCount     int
	eventsApplied  int
	lastDropped    uint64
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	readMem        bool
	now            func() time.Time
	last           Stats
}

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(*Profiler)

// WithUpdateInterval sets how often stats are logged. Non-positive values keep the default.
//
// Parameters:
//   - d: the reporting interval
//
// Returns:
//   - ProfilerOption: option function to apply
func WithUpdateInterval(d time.Duration) ProfilerOption {
	return func(p *Profiler) {
		if d > 0 {
			p.updateInterval = d
		}
	}
}

// WithClock replaces time.Now as the profiler's time source.
//
// Parameters:
//   - now: the time source
//
// Returns:
//   - ProfilerOption: option function to apply
func WithClock(now func() time.Time) ProfilerOption {
	return func(p *Profiler) {
		p.now = now
	}
}

// WithMemStats controls whether runtime.ReadMemStats is sampled at each report.
//
// Parameters:
//   - enabled: true to include heap and GC figures
//
// Returns:
//   - ProfilerOption: option function to apply
func WithMemStats(enabled bool) ProfilerOption {
	return func(p *Profiler) {
		p.readMem = enabled
	}
}

// NewProfiler creates a new Profiler.
// Update interval defaults to 1 second; memory statistics are sampled by default.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		updateInterval: time.Second,
		readMem:        true,
		now:            time.Now,
	}
	for _, opt := range options {
		opt(p)
	}
	p.lastTime = p.now()
	return p
}

// Tick should be called once per frame after the input phase.
// Logs statistics when the update interval has elapsed.
//
// Parameters:
//   - applied: events applied this frame
//   - dropped: the queue's cumulative dropped-event count
//   - dragging: whether a point drag is active
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick(applied int, dropped uint64, dragging bool) bool {
	p.frameCount++
	p.eventsApplied += applied

	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	s := Stats{
		FPS:           float64(p.frameCount) / elapsed.Seconds(),
		EventsApplied: p.eventsApplied,
		EventsDropped: dropped - p.lastDropped,
		Dragging:      dragging,
	}
	if p.readMem {
		runtime.ReadMemStats(&p.memStats)
		s.HeapMB = float64(p.memStats.Alloc) / 1024 / 1024
		s.GCCount = p.memStats.NumGC
	}

	log.Printf("[Profiler] FPS: %.2f | Events: %d applied, %d dropped | Dragging: %t | Heap: %.2f MB | GC: %d",
		s.FPS, s.EventsApplied, s.EventsDropped, s.Dragging, s.HeapMB, s.GCCount)

	p.last = s
	p.frameCount = 0
	p.eventsApplied = 0
	p.lastDropped = dropped
	p.lastTime = currentTime
	return true
}

// Last returns the most recently logged statistics.
//
// Returns:
//   - Stats: the last report, or the zero value before the first one
func (p *Profiler) Last() Stats {
	return p.last
}
