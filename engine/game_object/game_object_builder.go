package game_object

import "github.com/go-gl/mathgl/mgl32"

// GameObjectBuilderOption is a functional option for configuring a GameObject during construction.
type GameObjectBuilderOption func(*gameObject)

// WithID sets the ID of the GameObject.
//
// Parameters:
//   - id: unique identifier for the GameObject
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the ID
func WithID(id uint64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.id = id
	}
}

// WithEnabled sets whether the GameObject is drawn.
//
// Parameters:
//   - enabled: true to draw the object, false to skip it
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Enabled state
func WithEnabled(enabled bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.enabled.Store(enabled)
	}
}

// WithPosition sets the initial translation.
//
// Parameters:
//   - x, y, z: translation components
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the position
func WithPosition(x, y, z float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.position = mgl32.Vec3{x, y, z}
	}
}

// WithRotation sets the initial rotation.
//
// Parameters:
//   - rx, ry, rz: rotation in degrees about X, Y and Z
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the rotation
func WithRotation(rx, ry, rz float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.rotation = mgl32.Vec3{rx, ry, rz}
	}
}

// WithScale sets the initial scale.
//
// Parameters:
//   - sx, sy, sz: scale factors
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the scale
func WithScale(sx, sy, sz float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.scale = mgl32.Vec3{sx, sy, sz}
	}
}

// WithRotationSpeed sets the drag rotation rate.
//
// Parameters:
//   - degreesPerPixel: rotation per pixel of mouse travel
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the rotation speed
func WithRotationSpeed(degreesPerPixel float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.rotationSpeed = degreesPerPixel
	}
}

// WithTranslationSpeed sets the shift-drag translation rate.
//
// Parameters:
//   - unitsPerPixel: translation per pixel of mouse travel
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the translation speed
func WithTranslationSpeed(unitsPerPixel float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.translationSpeed = unitsPerPixel
	}
}

// WithWheelStep sets the Z rotation per wheel notch.
//
// Parameters:
//   - degrees: rotation per wheel unit
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the wheel step
func WithWheelStep(degrees float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.wheelStep = degrees
	}
}

// WithMinScale sets the smallest scale any axis may reach.
//
// Parameters:
//   - s: the minimum scale
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the minimum scale
func WithMinScale(s float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.minScale = s
	}
}

// WithLines sets the object-space line-list geometry. Consecutive pairs form one segment each.
//
// Parameters:
//   - endpoints: line endpoints; a trailing unpaired point is dropped
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the geometry
func WithLines(endpoints ...mgl32.Vec3) GameObjectBuilderOption {
	return func(obj *gameObject) {
		n := len(endpoints) &^ 1
		obj.lines = append([]mgl32.Vec3(nil), endpoints[:n]...)
	}
}

// WithOutline sets the geometry to a closed polygon through the given points.
//
// Parameters:
//   - points: polygon vertices in order
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the geometry
func WithOutline(points ...mgl32.Vec3) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.lines = obj.lines[:0]
		if len(points) < 2 {
			return
		}
		for i := range points {
			obj.lines = append(obj.lines, points[i], points[(i+1)%len(points)])
		}
	}
}

// CubeLines returns the 12 edges of an axis-aligned cube of half-size h centered at the origin, as line-list
// endpoints.
//
// Parameters:
//   - h: half the edge length
//
// Returns:
//   - []mgl32.Vec3: 24 endpoints
func CubeLines(h float32) []mgl32.Vec3 {
	c := [8]mgl32.Vec3{
		{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h},
		{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h},
	}
	edges := [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	out := make([]mgl32.Vec3, 0, 24)
	for _, e := range edges {
		out = append(out, c[e[0]], c[e[1]])
	}
	return out
}
