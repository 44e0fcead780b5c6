// Package mover drags a picked control point across the screen while keeping its depth fixed.
//
// At press time the point is projected once and its normalized depth frozen. Every subsequent mouse position is
// unprojected at that depth through the current view, so the point slides along the plane parallel to the screen
// that passes through its original position. The camera may change between drag steps; the new view is used.
package mover

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/projector"
	"github.com/go-gl/mathgl/mgl32"
)

// DragSession is the state of one in-progress drag.
type DragSession struct {
	// Store holds the dragged point.
	Store common.PointStore
	// Index addresses the point inside Store.
	Index int
	// MouseX, MouseY are the press position in screen pixels.
	MouseX, MouseY float32
	// ScreenZ is the normalized depth frozen at press time.
	ScreenZ float32
}

type pointMoverImpl struct {
	mu *sync.Mutex

	session DragSession
	active  bool

	// warned limits the degenerate-transform log to once per session.
	warned bool
}

// PointMover owns at most one DragSession.
type PointMover interface {
	// BeginDrag starts a session for the point at index in store, replacing any existing session.
	//
	// Parameters:
	//   - store: the store holding the point
	//   - index: the point index
	//   - mouseX, mouseY: the press position in screen pixels
	//   - modelview, projection: the current view matrices
	//   - vp: the viewport
	//
	// Returns:
	//   - error: common.ErrPointOutOfRange if index is not in store; no session is started
	BeginDrag(store common.PointStore, index int, mouseX, mouseY float32, modelview, projection mgl32.Mat4, vp common.Viewport) error

	// ContinueDrag moves the dragged point under the cursor at the frozen depth.
	// With no active session this is a no-op.
	//
	// Parameters:
	//   - mouseX, mouseY: the cursor position in screen pixels
	//   - modelview, projection: the current view matrices
	//   - vp: the viewport
	//
	// Returns:
	//   - error: projector.ErrDegenerateTransform (point unchanged, session kept) or common.ErrPointOutOfRange
	//     (session ended)
	ContinueDrag(mouseX, mouseY float32, modelview, projection mgl32.Mat4, vp common.Viewport) error

	// EndDrag ends the session. Idempotent.
	EndDrag()

	// IsActive reports whether a session is in progress.
	//
	// Returns:
	//   - bool: true while dragging
	IsActive() bool

	// Session returns a copy of the active session.
	//
	// Returns:
	//   - DragSession: the session
	//   - bool: false if no session is active
	Session() (DragSession, bool)
}

var _ PointMover = &pointMoverImpl{}

// NewPointMover creates an idle PointMover.
//
// Returns:
//   - PointMover: the newly created mover
func NewPointMover() PointMover {
	return &pointMoverImpl{
		mu: &sync.Mutex{},
	}
}

func (m *pointMoverImpl) BeginDrag(store common.PointStore, index int, mouseX, mouseY float32, modelview, projection mgl32.Mat4, vp common.Viewport) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if store == nil {
		return fmt.Errorf("begin drag on nil store: %w", common.ErrPointOutOfRange)
	}
	p, ok := store.Point(index)
	if !ok {
		return fmt.Errorf("begin drag on point %d of %d: %w", index, store.Len(), common.ErrPointOutOfRange)
	}

	s := projector.Project(p, projection.Mul4(modelview), vp)
	m.session = DragSession{
		Store:   store,
		Index:   index,
		MouseX:  mouseX,
		MouseY:  mouseY,
		ScreenZ: s[2],
	}
	m.active = true
	m.warned = false
	log.Printf("[Interaction] drag begin: point %d at depth %.4f", index, s[2])
	return nil
}

func (m *pointMoverImpl) ContinueDrag(mouseX, mouseY float32, modelview, projection mgl32.Mat4, vp common.Viewport) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.active {
		return nil
	}

	index := m.session.Index
	if _, ok := m.session.Store.Point(index); !ok {
		m.reset()
		return fmt.Errorf("continue drag on point %d: %w", index, common.ErrPointOutOfRange)
	}

	world, err := projector.UnprojectView(mgl32.Vec3{mouseX, mouseY, m.session.ScreenZ}, projection.Mul4(modelview), vp)
	if err != nil {
		if !m.warned && errors.Is(err, projector.ErrDegenerateTransform) {
			log.Printf("[Interaction] drag step dropped: %v", err)
			m.warned = true
		}
		return err
	}

	if err := m.session.Store.SetPoint(index, world); err != nil {
		m.reset()
		return fmt.Errorf("continue drag on point %d: %w", index, err)
	}
	return nil
}

func (m *pointMoverImpl) EndDrag() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active {
		log.Printf("[Interaction] drag end: point %d", m.session.Index)
	}
	m.reset()
}

func (m *pointMoverImpl) IsActive() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

func (m *pointMoverImpl) Session() (DragSession, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.active {
		return DragSession{}, false
	}
	return m.session, true
}

// reset clears the session.
// Caller must hold the mutex.
func (m *pointMoverImpl) reset() {
	m.active = false
	m.warned = false
	m.session = DragSession{}
}
