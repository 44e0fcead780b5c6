package profiler

import (
	"testing"
	"time"
)

type stepClock struct {
	t time.Time
}

func (c *stepClock) now() time.Time { return c.t }

func TestTickReportsPerInterval(t *testing.T) {
	clock := &stepClock{t: time.Unix(100, 0)}
	p := NewProfiler(WithClock(clock.now), WithMemStats(false))

	clock.t = clock.t.Add(400 * time.Millisecond)
	if p.Tick(3, 0, false) {
		t.Fatalf("reported before the interval elapsed")
	}
	clock.t = clock.t.Add(600 * time.Millisecond)
	if !p.Tick(2, 4, true) {
		t.Fatalf("did not report after the interval elapsed")
	}

	s := p.Last()
	if s.FPS != 2 {
		t.Fatalf("FPS\nhave %v\nwant %v", s.FPS, 2)
	}
	if s.EventsApplied != 5 || s.EventsDropped != 4 || !s.Dragging {
		t.Fatalf("stats\nhave %+v\nwant 5 applied, 4 dropped, dragging", s)
	}
}

func TestDroppedIsDeltaBetweenReports(t *testing.T) {
	clock := &stepClock{t: time.Unix(0, 0)}
	p := NewProfiler(WithClock(clock.now), WithMemStats(false), WithUpdateInterval(time.Second))

	clock.t = clock.t.Add(time.Second)
	p.Tick(0, 10, false)
	clock.t = clock.t.Add(time.Second)
	p.Tick(0, 13, false)

	if got := p.Last().EventsDropped; got != 3 {
		t.Fatalf("dropped\nhave %d\nwant %d", got, 3)
	}
	if got := p.Last().EventsApplied; got != 0 {
		t.Fatalf("applied counter not reset\nhave %d\nwant 0", got)
	}
}
