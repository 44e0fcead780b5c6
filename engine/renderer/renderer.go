// Package renderer draws the line geometry of the interactive views (curves, control-point markers, shape outlines)
// through a single WebGPU line-list pipeline. GPU buffers are acquired once at construction and released once by Release.
package renderer

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultMaxVertices is the vertex buffer capacity used when WithMaxVertices is not given.
const DefaultMaxVertices = 1 << 16

// ErrReleased is returned when drawing with a renderer whose GPU resources have been released.
var ErrReleased = errors.New("renderer released")

// SurfaceSource provides the window surface the renderer presents to. window.Window satisfies it.
type SurfaceSource interface {
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
	Width() int
	Height() int
}

// Renderer defines the interface for the rendering system.
//
// The render phase is read-only with respect to interaction state: callers pass the camera's fullview and the
// line vertices for the frame, and the renderer uploads and draws them.
type Renderer interface {
	// Resize configures the underlying backend to handle a new surface size.
	// Non-positive sizes (a minimized window) are ignored.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// SetPresentMode changes the present mode and reconfigures the surface.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// DrawFrame uploads the camera uniform and the line vertices, then draws and presents one frame.
	// An odd trailing vertex is ignored; vertices beyond the buffer capacity are truncated.
	//
	// Parameters:
	//   - view: the camera uniform from camera.Camera.Uniform, full view in OpenGL clip convention
	//   - lines: line-list vertices
	//
	// Returns:
	//   - error: ErrReleased after Release, or an error if the swapchain texture could not be acquired
	DrawFrame(view camera.GPUCameraUniform, lines []LineVertex) error

	// Frames returns the number of frames presented.
	Frames() uint64

	// Release frees all GPU resources. Subsequent calls are no-ops.
	Release()
}

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
	msaa                 MSAASampleCount
	maxVertices          int
	clearColor           mgl32.Vec4

	width, height  int
	scratch        []byte
	frames         uint64
	warnedTruncate bool
	released       bool
}

var _ Renderer = &renderer{}

// NewRenderer creates the backend for the given surface, configures it to the surface size and builds the line pipeline.
//
// Parameters:
//   - backendType: the GPU backend to use
//   - surface: the window surface to present to
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the ready renderer
//   - error: an error if the line pipeline could not be created
func NewRenderer(backendType RendererBackendType, surface SurfaceSource, options ...RendererBuilderOption) (Renderer, error) {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
		msaa:        MSAA4x,
		maxVertices: DefaultMaxVertices,
		clearColor:  mgl32.Vec4{0.1, 0.1, 0.1, 1},
		width:       surface.Width(),
		height:      surface.Height(),
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}

	if r.backend == nil {
		switch backendType {
		case BackendTypeWGPU:
			fallthrough
		default:
			r.backend = newWGPURendererBackend(surface.SurfaceDescriptor(), r.forceFallbackAdapter, r.msaa, r.clearColor)
		}
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}

	r.backend.ConfigureSurface(r.width, r.height)
	if err := r.backend.CreateLinePipeline(LineShaderSource, r.maxVertices); err != nil {
		r.backend.Release()
		return nil, fmt.Errorf("failed to create line pipeline: %w", err)
	}
	log.Printf("[Renderer] ready: %dx%d, msaa %d, %d vertex capacity", r.width, r.height, r.msaa, r.maxVertices)
	return r, nil
}

func (r *renderer) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.released || width <= 0 || height <= 0 {
		return
	}
	if width == r.width && height == r.height {
		return
	}
	r.width, r.height = width, height
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.released {
		return
	}
	r.backend.SetPresentMode(mode)
	r.backend.ConfigureSurface(r.width, r.height)
}

func (r *renderer) DrawFrame(view camera.GPUCameraUniform, lines []LineVertex) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.released {
		return ErrReleased
	}

	n := len(lines) &^ 1
	if limit := r.maxVertices &^ 1; n > limit {
		if !r.warnedTruncate {
			log.Printf("[Renderer] frame has %d vertices, drawing the first %d", n, limit)
			r.warnedTruncate = true
		}
		n = limit
	}

	uniform := clipCorrected(view)
	r.backend.WriteCamera(uniform.Marshal())
	if n > 0 {
		r.scratch = MarshalLineVertices(r.scratch, lines[:n])
		r.backend.WriteVertices(r.scratch)
	}

	if err := r.backend.BeginFrame(); err != nil {
		return fmt.Errorf("failed to begin frame: %w", err)
	}
	if n > 0 {
		r.backend.Draw(uint32(n))
	}
	r.backend.EndFrame()
	r.backend.Present()
	r.frames++
	return nil
}

func (r *renderer) Frames() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.released {
		return
	}
	r.released = true
	r.backend.Release()
	log.Printf("[Renderer] released after %d frames", r.frames)
}
