// Package interaction routes input events to the orbit camera, the point picker and the point mover.
//
// A Context is the single owner of all interaction state. It is mutated only while events are applied and read
// by the render pass between applications; the engine loop keeps those two phases apart.
package interaction

import (
	"errors"
	"log"
	"sync"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/Carmen-Shannon/oxy-orbit/engine/mover"
	"github.com/Carmen-Shannon/oxy-orbit/engine/picker"
	"github.com/go-gl/mathgl/mgl32"
)

// DragHandler receives the left-button gestures that did not pick a point, in place of the camera.
// A handler lets a demo rotate an object with the mouse while the camera stays fixed.
type DragHandler interface {
	// Press starts a gesture at the given cursor position.
	Press(x, y float32)
	// Drag continues the gesture. mods are the modifiers currently held.
	Drag(x, y float32, mods input.Modifier)
	// Release ends the gesture. Must be idempotent.
	Release()
	// Wheel handles a scroll step.
	Wheel(amount float32, mods input.Modifier)
}

type contextImpl struct {
	mu *sync.Mutex

	camera camera.Camera
	picker picker.Picker
	mover  mover.PointMover

	stores  []common.PointStore
	handler DragHandler
	keys    map[int][]func(mods input.Modifier)

	buttons map[input.Button]bool
	mods    input.Modifier
	cursorX float32
	cursorY float32
}

// Context owns the camera, picker, mover and the editable point stores, and applies input events to them.
type Context interface {
	// Apply routes one event:
	//   - left press picks against every store in order; a hit starts a drag, a miss starts a camera (or handler) gesture
	//   - cursor moves with the left button held continue the drag, or rotate the camera (pan while shift is held)
	//   - middle-button drags pan the camera
	//   - left release ends the drag and the camera gesture
	//   - scroll zooms the camera, or changes its fov while shift is held
	//   - resize updates the camera viewport
	//   - key presses run the callbacks registered with OnKey
	//
	// Parameters:
	//   - ev: the event to apply
	Apply(ev input.Event)

	// ApplyPending drains the queue and applies every event in order.
	//
	// Parameters:
	//   - q: the event queue
	//
	// Returns:
	//   - int: number of events applied
	ApplyPending(q input.Queue) int

	// Camera returns the orbit camera.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// Picker returns the point picker.
	//
	// Returns:
	//   - picker.Picker: the picker
	Picker() picker.Picker

	// Mover returns the point mover.
	//
	// Returns:
	//   - mover.PointMover: the mover
	Mover() mover.PointMover

	// AddStore appends a point store to the pick order.
	//
	// Parameters:
	//   - store: the store to add
	AddStore(store common.PointStore)

	// RemoveStore removes a store from the pick order. A drag on a point of that store is ended.
	//
	// Parameters:
	//   - store: the store to remove
	RemoveStore(store common.PointStore)

	// Stores returns a copy of the pick order.
	//
	// Returns:
	//   - []common.PointStore: the stores
	Stores() []common.PointStore

	// SetDragHandler installs a handler for left-button gestures that miss every point. nil restores the camera.
	//
	// Parameters:
	//   - h: the handler
	SetDragHandler(h DragHandler)

	// OnKey registers fn to run whenever key is pressed.
	//
	// Parameters:
	//   - key: GLFW key code
	//   - fn: the callback, receiving the held modifiers
	OnKey(key int, fn func(mods input.Modifier))

	// Deselect ends any drag in progress.
	Deselect()

	// FullView returns the camera's current full view matrix.
	//
	// Returns:
	//   - mgl32.Mat4: projection * modelview
	FullView() mgl32.Mat4

	// Selected returns the live position of the point being dragged.
	//
	// Returns:
	//   - mgl32.Vec3: the point position
	//   - bool: false if nothing is selected
	Selected() (mgl32.Vec3, bool)

	// Cursor returns the last known cursor position.
	//
	// Returns:
	//   - x, y: cursor position in screen pixels
	Cursor() (x, y float32)
}

var _ Context = &contextImpl{}

// NewContext creates a Context. Components not supplied through options are created with their defaults.
//
// Parameters:
//   - options: functional options to configure the context
//
// Returns:
//   - Context: the newly created context
func NewContext(options ...ContextOption) Context {
	c := &contextImpl{
		mu:      &sync.Mutex{},
		keys:    make(map[int][]func(mods input.Modifier)),
		buttons: make(map[input.Button]bool),
	}
	for _, option := range options {
		option(c)
	}
	if c.camera == nil {
		c.camera = camera.NewCamera()
	}
	if c.picker == nil {
		c.picker = picker.NewPicker()
	}
	if c.mover == nil {
		c.mover = mover.NewPointMover()
	}
	return c
}

func (c *contextImpl) Apply(ev input.Event) {
	c.mu.Lock()
	var callbacks []func(mods input.Modifier)
	switch ev.Type {
	case input.EventButtonPress:
		c.mods = ev.Mods
		c.cursorX, c.cursorY = ev.X, ev.Y
		c.press(ev)
	case input.EventButtonRelease:
		c.mods = ev.Mods
		c.cursorX, c.cursorY = ev.X, ev.Y
		c.release(ev)
	case input.EventCursorMove:
		c.mods = ev.Mods
		c.cursorX, c.cursorY = ev.X, ev.Y
		c.move(ev)
	case input.EventScroll:
		c.mods = ev.Mods
		c.scroll(ev)
	case input.EventResize:
		c.camera.Resize(ev.Width, ev.Height)
	case input.EventKey:
		c.mods = ev.Mods
		callbacks = append(callbacks, c.keys[ev.Key]...)
	}
	c.mu.Unlock()

	// Key callbacks may call back into the context.
	for _, fn := range callbacks {
		fn(ev.Mods)
	}
}

func (c *contextImpl) ApplyPending(q input.Queue) int {
	return q.Drain(c.Apply)
}

func (c *contextImpl) Camera() camera.Camera {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.camera
}

func (c *contextImpl) Picker() picker.Picker {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.picker
}

func (c *contextImpl) Mover() mover.PointMover {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mover
}

func (c *contextImpl) AddStore(store common.PointStore) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if store == nil {
		return
	}
	c.stores = append(c.stores, store)
}

func (c *contextImpl) RemoveStore(store common.PointStore) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, s := range c.stores {
		if s == store {
			c.stores = append(c.stores[:i], c.stores[i+1:]...)
			break
		}
	}
	if sess, ok := c.mover.Session(); ok && sess.Store == store {
		c.mover.EndDrag()
	}
}

func (c *contextImpl) Stores() []common.PointStore {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]common.PointStore, len(c.stores))
	copy(out, c.stores)
	return out
}

func (c *contextImpl) SetDragHandler(h DragHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.handler != nil {
		c.handler.Release()
	}
	c.handler = h
}

func (c *contextImpl) OnKey(key int, fn func(mods input.Modifier)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if fn == nil {
		return
	}
	c.keys[key] = append(c.keys[key], fn)
}

func (c *contextImpl) Deselect() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mover.EndDrag()
}

func (c *contextImpl) FullView() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.camera.FullView()
}

func (c *contextImpl) Selected() (mgl32.Vec3, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	sess, ok := c.mover.Session()
	if !ok {
		return mgl32.Vec3{}, false
	}
	return sess.Store.Point(sess.Index)
}

func (c *contextImpl) Cursor() (x, y float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cursorX, c.cursorY
}

// --- event routing ---
// Caller must hold the mutex for every helper below.

func (c *contextImpl) press(ev input.Event) {
	c.buttons[ev.Button] = true

	switch ev.Button {
	case input.ButtonLeft:
		m := c.camera.Matrices()
		vp := c.camera.Viewport()
		if hit, ok := c.picker.PickAny(ev.X, ev.Y, c.stores, m.FullView, vp); ok {
			err := c.mover.BeginDrag(hit.Store, hit.Index, ev.X, ev.Y, m.Modelview, m.Projection, vp)
			if err == nil {
				return
			}
			log.Printf("[Interaction] pick ignored: %v", err)
		}
		if c.handler != nil {
			c.handler.Press(ev.X, ev.Y)
			return
		}
		c.camera.MouseDown(ev.X, ev.Y)
	case input.ButtonMiddle:
		if !c.mover.IsActive() {
			c.camera.MouseDown(ev.X, ev.Y)
		}
	}
}

func (c *contextImpl) move(ev input.Event) {
	switch {
	case c.buttons[input.ButtonLeft]:
		if c.mover.IsActive() {
			m := c.camera.Matrices()
			err := c.mover.ContinueDrag(ev.X, ev.Y, m.Modelview, m.Projection, c.camera.Viewport())
			if errors.Is(err, common.ErrPointOutOfRange) {
				log.Printf("[Interaction] drag ended: %v", err)
			}
			return
		}
		if c.handler != nil {
			c.handler.Drag(ev.X, ev.Y, ev.Mods)
			return
		}
		c.camera.MouseDrag(ev.X, ev.Y, ev.Mods.Has(input.ModShift))
	case c.buttons[input.ButtonMiddle]:
		if !c.mover.IsActive() {
			c.camera.MouseDrag(ev.X, ev.Y, true)
		}
	}
}

func (c *contextImpl) release(ev input.Event) {
	delete(c.buttons, ev.Button)

	switch ev.Button {
	case input.ButtonLeft:
		c.mover.EndDrag()
		if c.handler != nil {
			c.handler.Release()
		}
		c.camera.MouseUp()
	case input.ButtonMiddle:
		c.camera.MouseUp()
	}
}

func (c *contextImpl) scroll(ev input.Event) {
	if c.handler != nil {
		c.handler.Wheel(ev.Scroll, ev.Mods)
		return
	}
	c.camera.MouseWheel(ev.Scroll, ev.Mods.Has(input.ModShift))
}
