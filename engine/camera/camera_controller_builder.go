package camera

import "github.com/go-gl/mathgl/mgl32"

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithDistance sets the initial distance from the target.
//
// Parameters:
//   - distance: eye distance, clamped to the distance bounds at construction
//
// Returns:
//   - CameraControllerOption: functional option to set the distance
func WithDistance(distance float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.distance = distance
	}
}

// WithDistanceBounds sets the zoom limits. Both must be finite with 0 < min < max.
//
// Parameters:
//   - minDistance: closest allowed distance
//   - maxDistance: farthest allowed distance
//
// Returns:
//   - CameraControllerOption: functional option to set the bounds
func WithDistanceBounds(minDistance, maxDistance float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.minDistance = minDistance
		cc.maxDistance = maxDistance
	}
}

// WithRotation sets the initial yaw and pitch.
//
// Parameters:
//   - yaw: rotation about Y in degrees
//   - pitch: rotation about X in degrees
//
// Returns:
//   - CameraControllerOption: functional option to set the rotation
func WithRotation(yaw, pitch float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.yaw = yaw
		cc.pitch = pitch
	}
}

// WithPan sets the initial screen-plane translation.
//
// Parameters:
//   - x, y: pan offset in world units
//
// Returns:
//   - CameraControllerOption: functional option to set the pan
func WithPan(x, y float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.pan = mgl32.Vec2{x, y}
	}
}

// WithTarget sets the pivot point.
//
// Parameters:
//   - x, y, z: world-space coordinates of the pivot
//
// Returns:
//   - CameraControllerOption: functional option to set the target
func WithTarget(x, y, z float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.target = mgl32.Vec3{x, y, z}
	}
}

// WithRotationSpeed sets the drag rotation rate.
//
// Parameters:
//   - degreesPerPixel: rotation per pixel of mouse travel
//
// Returns:
//   - CameraControllerOption: functional option to set the rotation speed
func WithRotationSpeed(degreesPerPixel float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.rotationSpeed = degreesPerPixel
	}
}

// WithOrbitStep sets the keyboard orbit step.
//
// Parameters:
//   - degrees: rotation per OrbitLeft/Right/Up/Down call
//
// Returns:
//   - CameraControllerOption: functional option to set the orbit step
func WithOrbitStep(degrees float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.orbitStep = degrees
	}
}

// WithZoomSpeed sets the distance change per wheel unit.
//
// Parameters:
//   - speed: distance per wheel unit
//
// Returns:
//   - CameraControllerOption: functional option to set the zoom speed
func WithZoomSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.zoomSpeed = speed
	}
}

// WithPanSpeed sets the pan rate. The pan per pixel is speed * distance, so panning feels the same at any zoom.
//
// Parameters:
//   - speed: fraction of the distance per pixel
//
// Returns:
//   - CameraControllerOption: functional option to set the pan speed
func WithPanSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.panSpeed = speed
	}
}
