package camera

import "github.com/Carmen-Shannon/oxy-orbit/common"

type CameraBuilderOption func(*cameraImpl)

// WithFov sets the camera's vertical field of view.
//
// Parameters:
//   - fov: field of view in degrees, clamped to [MinFov, MaxFov]
//
// Returns:
//   - CameraBuilderOption: a function that sets the field of view
func WithFov(fov float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.fov = fov
	}
}

// WithFovStep sets how many degrees one wheel unit changes the field of view.
//
// Parameters:
//   - step: degrees per wheel unit
//
// Returns:
//   - CameraBuilderOption: a function that sets the fov step
func WithFovStep(step float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.fovStep = step
	}
}

// WithNear sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the near plane
func WithNear(near float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.near = near
	}
}

// WithFar sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the far plane
func WithFar(far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.far = far
	}
}

// WithViewport sets the initial viewport size. Non-positive sizes are ignored.
//
// Parameters:
//   - width, height: viewport size in pixels
//
// Returns:
//   - CameraBuilderOption: a function that sets the viewport
func WithViewport(width, height int) CameraBuilderOption {
	return func(c *cameraImpl) {
		vp := common.NewViewport(width, height)
		if vp.Valid() {
			c.viewport = vp
		}
	}
}

// WithController attaches a controller to the camera at construction time.
//
// Parameters:
//   - ctrl: the camera controller to attach
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's controller
func WithController(ctrl CameraController) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.controller = ctrl
	}
}
