// Package engine runs the interactive loop: each tick drains the window's input queue into the interaction context
// (input phase) and then calls the render callback exactly once (render phase).
package engine

import (
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/Carmen-Shannon/oxy-orbit/engine/interaction"
	"github.com/Carmen-Shannon/oxy-orbit/engine/profiler"
)

// Window is the part of the platform window the engine drives. window.Window satisfies it.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	SetUpdateCallback(callback func())
	// Events returns the queue the window pushes input events onto.
	Events() input.Queue
	// ProcessMessages runs the message loop until the window closes.
	ProcessMessages()
	// RequestClose stops the message loop after the current iteration.
	RequestClose()
	// Width returns the framebuffer width in pixels.
	Width() int
	// Height returns the framebuffer height in pixels.
	Height() int
}

// engine implements the Engine interface.
type engine struct {
	mu *sync.Mutex

	running  bool
	quitOnce sync.Once

	window Window
	ctx    interaction.Context

	profiler         *profiler.Profiler
	profilingEnabled bool

	renderCallback func(ctx interaction.Context, deltaTime float32)
	resizeCallback func(width, height int)

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped

	lastFrame             time.Time
	lastWidth, lastHeight int
	frames                uint64
}

// Engine is the main entry point for the engine.
// It owns the interaction context and sequences the input and render phases on the window's thread.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - Window: the window instance
	Window() Window

	// Context returns the interaction context events are applied to.
	//
	// Returns:
	//   - interaction.Context: the interaction context
	Context() interaction.Context

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetRenderCallback registers the function called once per tick after all pending input has been applied.
	// The callback should only read interaction state (fullview, point positions).
	//
	// Parameters:
	//   - callback: function receiving the context and the delta time in seconds
	SetRenderCallback(callback func(ctx interaction.Context, deltaTime float32))

	// SetResizeCallback registers the function called when the window's framebuffer size changes,
	// typically to resize the renderer's surface. The camera is resized by the input phase.
	//
	// Parameters:
	//   - callback: function receiving the new size in pixels
	SetResizeCallback(callback func(width, height int))

	// SetRenderFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Tick runs one input phase followed by one render phase. Run calls it from the window's message loop.
	//
	// Returns:
	//   - int: the number of input events applied
	Tick() int

	// Frames returns the number of ticks completed.
	Frames() uint64

	// Run starts the main loop (blocks until the window closes or Quit is called).
	Run()

	// Quit stops the main loop.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// A window is required; a default interaction context is created when none is given.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		mu:               &sync.Mutex{},
		profilingEnabled: false,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.ctx == nil {
		e.ctx = interaction.NewContext()
	}
	if e.profiler == nil {
		e.profiler = profiler.NewProfiler()
	}
	if e.window != nil {
		e.lastWidth, e.lastHeight = e.window.Width(), e.window.Height()
		e.ctx.Camera().Resize(e.lastWidth, e.lastHeight)
	}

	return e
}

func (e *engine) Window() Window {
	return e.window
}

func (e *engine) Context() interaction.Context {
	return e.ctx
}

func (e *engine) Run() {
	if e.window == nil {
		log.Printf("[Engine] no window configured, nothing to run")
		return
	}

	e.mu.Lock()
	e.running = true
	e.lastFrame = time.Now()
	e.mu.Unlock()

	e.window.SetUpdateCallback(func() {
		if !e.isRunning() {
			return
		}
		e.Tick()
	})
	e.window.ProcessMessages()

	e.mu.Lock()
	e.running = false
	e.mu.Unlock()
	log.Printf("[Engine] stopped after %d frames", e.Frames())
}

// Quit stops the main loop.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		e.mu.Lock()
		e.running = false
		e.mu.Unlock()
		if e.window != nil {
			e.window.RequestClose()
		}
	})
}

func (e *engine) isRunning() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

func (e *engine) Tick() int {
	start := time.Now()

	e.mu.Lock()
	dt := float32(0)
	if !e.lastFrame.IsZero() {
		dt = float32(start.Sub(e.lastFrame).Seconds())
	}
	e.lastFrame = start
	render := e.renderCallback
	e.mu.Unlock()

	// Phase 1: input. Every event queued since the last tick is applied before anything is drawn.
	var applied int
	var dropped uint64
	if e.window != nil {
		q := e.window.Events()
		applied = e.ctx.ApplyPending(q)
		dropped = q.Dropped()
		e.checkResize()
	}

	// Phase 2: render, exactly once.
	if render != nil {
		render(e.ctx, dt)
	}

	e.mu.Lock()
	e.frames++
	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick(applied, dropped, e.ctx.Mover().IsActive())
	}
	limit := e.renderFrameLimit
	e.mu.Unlock()

	if limit > 0 {
		if remaining := limit - time.Since(start); remaining > 0 {
			time.Sleep(remaining)
		}
	}
	return applied
}

// checkResize forwards a framebuffer size change to the resize callback.
func (e *engine) checkResize() {
	w, h := e.window.Width(), e.window.Height()

	e.mu.Lock()
	changed := w != e.lastWidth || h != e.lastHeight
	if changed {
		e.lastWidth, e.lastHeight = w, h
	}
	cb := e.resizeCallback
	e.mu.Unlock()

	if changed && cb != nil && w > 0 && h > 0 {
		cb(w, h)
	}
}

func (e *engine) Frames() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frames
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = false
}

// SetRenderCallback registers the function called each tick after the input phase.
func (e *engine) SetRenderCallback(callback func(ctx interaction.Context, deltaTime float32)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.renderCallback = callback
}

// SetResizeCallback registers the function called when the framebuffer size changes.
func (e *engine) SetResizeCallback(callback func(width, height int)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.resizeCallback = callback
}

// SetRenderFrameLimit sets an optional frame rate cap.
// Pass 0 to uncap the loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.renderFrameLimit = frameDuration(fps)
}

// frameDuration converts a frame rate cap to a minimum frame duration; non-positive rates are uncapped.
func frameDuration(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}
