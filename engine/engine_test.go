package engine

import (
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/Carmen-Shannon/oxy-orbit/engine/interaction"
)

type fakeWindow struct {
	q             input.Queue
	update        func()
	w, h          int
	closed        bool
	closeRequests int
	maxIterations int
}

func newFakeWindow() *fakeWindow {
	return &fakeWindow{q: input.NewQueue(), w: 800, h: 600, maxIterations: 100}
}

func (f *fakeWindow) SetUpdateCallback(cb func()) { f.update = cb }
func (f *fakeWindow) Events() input.Queue         { return f.q }
func (f *fakeWindow) Width() int                  { return f.w }
func (f *fakeWindow) Height() int                 { return f.h }
func (f *fakeWindow) RequestClose() {
	f.closed = true
	f.closeRequests++
}
func (f *fakeWindow) ProcessMessages() {
	for i := 0; i < f.maxIterations && !f.closed; i++ {
		if f.update != nil {
			f.update()
		}
	}
}

// resize mimics the platform window: dimensions update and an event is queued.
func (f *fakeWindow) resize(w, h int) {
	f.w, f.h = w, h
	_ = f.q.Push(input.Resize(w, h))
}

func TestTickAppliesInputBeforeRender(t *testing.T) {
	win := newFakeWindow()
	var seen common.Viewport
	var resized [2]int
	e := NewEngine(
		WithWindow(win),
		WithRenderCallback(func(ctx interaction.Context, _ float32) {
			seen = ctx.Camera().Viewport()
		}),
		WithResizeCallback(func(w, h int) { resized = [2]int{w, h} }),
	)

	win.resize(400, 300)
	if applied := e.Tick(); applied != 1 {
		t.Fatalf("applied\nhave %d\nwant %d", applied, 1)
	}
	if seen.Width != 400 || seen.Height != 300 {
		t.Fatalf("viewport during render\nhave %+v\nwant 400x300", seen)
	}
	if resized != [2]int{400, 300} {
		t.Fatalf("resize callback\nhave %v\nwant [400 300]", resized)
	}
}

func TestTickRendersOncePerTick(t *testing.T) {
	win := newFakeWindow()
	renders := 0
	e := NewEngine(WithWindow(win), WithRenderCallback(func(interaction.Context, float32) { renders++ }))

	for range 3 {
		_ = win.q.Push(input.Scroll(0, 1))
	}
	if applied := e.Tick(); applied != 3 {
		t.Fatalf("applied\nhave %d\nwant %d", applied, 3)
	}
	if renders != 1 {
		t.Fatalf("renders\nhave %d\nwant %d", renders, 1)
	}
	if win.q.Len() != 0 {
		t.Fatalf("queue not drained\nhave %d pending", win.q.Len())
	}
}

func TestResizeCallbackOnlyOnChange(t *testing.T) {
	win := newFakeWindow()
	calls := 0
	e := NewEngine(WithWindow(win), WithResizeCallback(func(int, int) { calls++ }))

	e.Tick()
	win.resize(800, 600)
	e.Tick()
	if calls != 0 {
		t.Fatalf("resize calls for unchanged size\nhave %d\nwant 0", calls)
	}
	win.resize(1024, 768)
	e.Tick()
	if calls != 1 {
		t.Fatalf("resize calls\nhave %d\nwant 1", calls)
	}
}

func TestRunStopsOnQuit(t *testing.T) {
	win := newFakeWindow()
	var e Engine
	e = NewEngine(
		WithWindow(win),
		WithProfiling(true),
		WithRenderCallback(func(interaction.Context, float32) {
			if e.Frames() == 2 {
				e.Quit()
			}
		}),
	)

	e.Run()
	e.Quit()

	if e.Frames() != 3 {
		t.Fatalf("frames\nhave %d\nwant %d", e.Frames(), 3)
	}
	if win.closeRequests != 1 {
		t.Fatalf("close requests\nhave %d\nwant 1", win.closeRequests)
	}
}

func TestFrameDuration(t *testing.T) {
	if d := frameDuration(0); d != 0 {
		t.Fatalf("uncapped\nhave %v\nwant 0", d)
	}
	if d := frameDuration(50); d != 20*time.Millisecond {
		t.Fatalf("50 fps\nhave %v\nwant %v", d, 20*time.Millisecond)
	}
}
