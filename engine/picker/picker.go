// Package picker selects the control point under the mouse cursor.
package picker

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/projector"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultRadius is the pick radius used when none is configured.
const DefaultRadius projector.Pixels = 10

// Hit identifies a picked point: the store that holds it and its index in that store.
type Hit struct {
	Store common.PointStore
	Index int
}

type pickerImpl struct {
	mu *sync.Mutex

	radius     projector.Pixels
	cullBehind bool
}

// Picker finds the first point whose projection lies strictly within a pixel radius of the cursor.
// Candidates are tested in their store's index order and the first hit wins, so overlapping points
// resolve deterministically.
type Picker interface {
	// PickPoint tests every point of one store.
	//
	// Parameters:
	//   - mouseX, mouseY: cursor position in screen pixels
	//   - candidates: the points to test, in order
	//   - view: the full view matrix
	//   - vp: the viewport
	//
	// Returns:
	//   - int: index of the first point within the radius
	//   - bool: false if no point was within the radius
	PickPoint(mouseX, mouseY float32, candidates common.PointStore, view mgl32.Mat4, vp common.Viewport) (int, bool)

	// PickAny tests several stores in order and returns the first hit.
	//
	// Parameters:
	//   - mouseX, mouseY: cursor position in screen pixels
	//   - stores: the point stores to test, in order
	//   - view: the full view matrix
	//   - vp: the viewport
	//
	// Returns:
	//   - Hit: the store and index of the first hit
	//   - bool: false if nothing was within the radius
	PickAny(mouseX, mouseY float32, stores []common.PointStore, view mgl32.Mat4, vp common.Viewport) (Hit, bool)

	// Radius returns the pick radius.
	//
	// Returns:
	//   - projector.Pixels: the radius in pixels
	Radius() projector.Pixels

	// SetRadius sets the pick radius. Non-positive radii are ignored.
	//
	// Parameters:
	//   - radius: the new radius in pixels
	SetRadius(radius projector.Pixels)
}

var _ Picker = &pickerImpl{}

// NewPicker creates a Picker with a 10 pixel radius that ignores points behind the camera.
//
// Parameters:
//   - options: functional options to configure the picker
//
// Returns:
//   - Picker: the newly created picker
func NewPicker(options ...PickerOption) Picker {
	p := &pickerImpl{
		mu:         &sync.Mutex{},
		radius:     DefaultRadius,
		cullBehind: true,
	}
	for _, option := range options {
		option(p)
	}
	p.radius = common.Coalesce(max(p.radius, 0), DefaultRadius)
	return p
}

func (p *pickerImpl) PickPoint(mouseX, mouseY float32, candidates common.PointStore, view mgl32.Mat4, vp common.Viewport) (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pick(mouseX, mouseY, candidates, view, vp, p.frustum(view))
}

func (p *pickerImpl) PickAny(mouseX, mouseY float32, stores []common.PointStore, view mgl32.Mat4, vp common.Viewport) (Hit, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	f := p.frustum(view)
	for _, store := range stores {
		if i, ok := p.pick(mouseX, mouseY, store, view, vp, f); ok {
			return Hit{Store: store, Index: i}, true
		}
	}
	return Hit{}, false
}

func (p *pickerImpl) Radius() projector.Pixels {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.radius
}

func (p *pickerImpl) SetRadius(radius projector.Pixels) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if radius <= 0 {
		return
	}
	p.radius = radius
}

// frustum returns the clipping planes used to reject points behind the eye, or nil when culling is off.
func (p *pickerImpl) frustum(view mgl32.Mat4) *common.Frustum {
	if !p.cullBehind {
		return nil
	}
	f := common.ExtractFrustumFromMatrix(view)
	return &f
}

// pick is the shared first-hit scan.
// Caller must hold the mutex.
func (p *pickerImpl) pick(mouseX, mouseY float32, store common.PointStore, view mgl32.Mat4, vp common.Viewport, f *common.Frustum) (int, bool) {
	if store == nil || !vp.Valid() {
		return 0, false
	}
	for i := range store.Len() {
		pt, ok := store.Point(i)
		if !ok {
			continue
		}
		if f != nil && !f.InFront(pt) {
			continue
		}
		if projector.ScreenDistanceSquared(mouseX, mouseY, pt, view, vp).Within(p.radius) {
			return i, true
		}
	}
	return 0, false
}
