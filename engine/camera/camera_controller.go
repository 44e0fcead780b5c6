package camera

import "github.com/go-gl/mathgl/mgl32"

// CameraController defines the union interface for the orbit camera's positional state.
// Controllers own rotation, pan, distance and the mouse anchor of an in-progress drag. The Camera reads the
// modelview from its controller and combines it with its own lens to produce the projection and full view.
//
// All drag updates are anchor-relative: the state while a button is held is always the state captured at press
// time plus a function of the total mouse displacement since the press, never an accumulation of per-event deltas.
type CameraController interface {
	orbitCameraController
	planarCameraController

	// Target returns the world-space pivot point the camera orbits.
	//
	// Returns:
	//   - mgl32.Vec3: the pivot point
	Target() mgl32.Vec3

	// SetTarget sets the world-space pivot point.
	//
	// Parameters:
	//   - target: the new pivot point
	SetTarget(target mgl32.Vec3)

	// Position returns the world-space eye position derived from the current modelview.
	//
	// Returns:
	//   - mgl32.Vec3: the eye position
	Position() mgl32.Vec3

	// Modelview returns Translate(pan.x, pan.y, -distance) * RotateX(pitch) * RotateY(yaw) * Translate(-target)
	// for the current state.
	//
	// Returns:
	//   - mgl32.Mat4: the modelview matrix
	Modelview() mgl32.Mat4

	// Press records the mouse anchor: the press position and a snapshot of rotation and pan.
	//
	// Parameters:
	//   - x, y: mouse position in screen pixels
	Press(x, y float32)

	// Drag updates rotation (or pan, when pan is true) relative to the anchor recorded by Press.
	// A drag with no preceding press is ignored.
	//
	// Parameters:
	//   - x, y: mouse position in screen pixels
	//   - pan: true to translate the view instead of rotating it
	Drag(x, y float32, pan bool)

	// Release commits the current rotation and pan as the new baseline and clears the anchor.
	// Calling Release without a preceding Press is a no-op.
	Release()

	// Dragging reports whether a press is currently anchored.
	//
	// Returns:
	//   - bool: true between Press and Release
	Dragging() bool

	// Zoom moves the camera along its view axis: distance -= amount * ZoomSpeed, clamped to
	// [MinDistance, MaxDistance]. Positive amounts move closer.
	//
	// Parameters:
	//   - amount: signed wheel amount
	Zoom(amount float32)
}

// orbitCameraController defines orbit-specific state: yaw and pitch around the target and the distance from it.
type orbitCameraController interface {
	// OrbitLeft rotates the camera left around the target by one orbit step.
	OrbitLeft()

	// OrbitRight rotates the camera right around the target by one orbit step.
	OrbitRight()

	// OrbitUp tilts the camera upward by one orbit step.
	OrbitUp()

	// OrbitDown tilts the camera downward by one orbit step.
	OrbitDown()

	// Yaw returns the rotation about the Y axis.
	//
	// Returns:
	//   - float32: yaw in degrees
	Yaw() float32

	// Pitch returns the rotation about the X axis.
	//
	// Returns:
	//   - float32: pitch in degrees
	Pitch() float32

	// SetRotation sets yaw and pitch directly and commits them as the drag baseline.
	//
	// Parameters:
	//   - yaw, pitch: angles in degrees
	SetRotation(yaw, pitch float32)

	// Distance returns the current distance from the target.
	//
	// Returns:
	//   - float32: the eye distance
	Distance() float32

	// SetDistance sets the distance directly, clamped to the distance bounds.
	//
	// Parameters:
	//   - distance: the new eye distance
	SetDistance(distance float32)

	// MinDistance returns the lower distance bound.
	//
	// Returns:
	//   - float32: the minimum distance
	MinDistance() float32

	// MaxDistance returns the upper distance bound.
	//
	// Returns:
	//   - float32: the maximum distance
	MaxDistance() float32

	// RotationSpeed returns the drag rotation rate.
	//
	// Returns:
	//   - float32: degrees per pixel
	RotationSpeed() float32

	// OrbitStep returns the keyboard orbit step.
	//
	// Returns:
	//   - float32: degrees per OrbitLeft/Right/Up/Down call
	OrbitStep() float32

	// ZoomSpeed returns the distance change per wheel unit.
	//
	// Returns:
	//   - float32: distance per wheel unit
	ZoomSpeed() float32
}

// planarCameraController defines screen-plane translation of the view.
// Pan is applied after rotation, so it always moves along the screen axes regardless of yaw and pitch.
type planarCameraController interface {
	// Pan returns the current screen-plane translation.
	//
	// Returns:
	//   - mgl32.Vec2: the pan offset in world units
	Pan() mgl32.Vec2

	// SetPan sets the screen-plane translation directly and commits it as the drag baseline.
	//
	// Parameters:
	//   - pan: the new pan offset
	SetPan(pan mgl32.Vec2)

	// PanRight translates the view along the screen X axis by delta * PanSpeed * Distance.
	//
	// Parameters:
	//   - delta: pan amount in pixels
	PanRight(delta float32)

	// PanUp translates the view along the screen Y axis by delta * PanSpeed * Distance.
	//
	// Parameters:
	//   - delta: pan amount in pixels
	PanUp(delta float32)

	// PanSpeed returns the pan rate as a fraction of the distance per pixel.
	//
	// Returns:
	//   - float32: the pan rate
	PanSpeed() float32
}
