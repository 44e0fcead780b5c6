package interaction

import (
	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/mover"
	"github.com/Carmen-Shannon/oxy-orbit/engine/picker"
)

// ContextOption is a functional option for configuring a Context.
type ContextOption func(*contextImpl)

// WithCamera sets the camera the context drives.
//
// Parameters:
//   - cam: the camera
//
// Returns:
//   - ContextOption: functional option to set the camera
func WithCamera(cam camera.Camera) ContextOption {
	return func(c *contextImpl) {
		c.camera = cam
	}
}

// WithPicker sets the picker used on left press.
//
// Parameters:
//   - p: the picker
//
// Returns:
//   - ContextOption: functional option to set the picker
func WithPicker(p picker.Picker) ContextOption {
	return func(c *contextImpl) {
		c.picker = p
	}
}

// WithMover sets the point mover.
//
// Parameters:
//   - m: the mover
//
// Returns:
//   - ContextOption: functional option to set the mover
func WithMover(m mover.PointMover) ContextOption {
	return func(c *contextImpl) {
		c.mover = m
	}
}

// WithStores sets the initial pick order.
//
// Parameters:
//   - stores: the point stores, earliest first
//
// Returns:
//   - ContextOption: functional option to set the stores
func WithStores(stores ...common.PointStore) ContextOption {
	return func(c *contextImpl) {
		for _, s := range stores {
			if s != nil {
				c.stores = append(c.stores, s)
			}
		}
	}
}

// WithDragHandler routes left-button gestures that miss every point to h instead of the camera.
//
// Parameters:
//   - h: the handler
//
// Returns:
//   - ContextOption: functional option to set the drag handler
func WithDragHandler(h DragHandler) ContextOption {
	return func(c *contextImpl) {
		c.handler = h
	}
}
