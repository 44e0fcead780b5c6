// Package projector maps points between world space and screen (pixel) space for a given full view matrix.
//
// Screen space has its origin at the top-left corner of the viewport and y grows downward, which is the
// convention GLFW cursor positions already use. The z component of a screen point is the normalized
// window depth in [0, 1] (0 at the near plane, 1 at the far plane).
//
// Every function here is pure: the projector owns no state and reads the camera only through the
// matrices it is handed.
package projector

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrDegenerateTransform is returned when a view matrix cannot be inverted or an unprojection
	// would divide by a (near) zero homogeneous coordinate.
	ErrDegenerateTransform = errors.New("degenerate transform")

	// ErrInvalidViewport is returned when the viewport has a non-positive dimension.
	ErrInvalidViewport = errors.New("invalid viewport")
)

// homogeneousEpsilon is the |w| below which a homogeneous divide is rejected.
const homogeneousEpsilon float32 = 1e-12

// Pixels is a linear distance in screen pixels.
type Pixels float32

// SquaredPixels is a squared distance in screen pixels. Compare it against a radius with Within or
// after converting the radius with Pixels.Squared.
type SquaredPixels float32

// Squared converts a linear pixel distance into squared pixels.
//
// Returns:
//   - SquaredPixels: p * p
func (p Pixels) Squared() SquaredPixels {
	return SquaredPixels(p * p)
}

// Within reports whether the squared distance is strictly inside the given pixel radius.
//
// Parameters:
//   - radius: the linear pixel radius
//
// Returns:
//   - bool: true if s < radius²
func (s SquaredPixels) Within(radius Pixels) bool {
	return s < radius.Squared()
}

// Project transforms a world-space point into screen space.
// The view matrix is applied, the perspective divide performed, and normalized device coordinates are
// mapped to pixels with row 0 at the top of the viewport.
//
// Parameters:
//   - world: the world-space point
//   - view: the full view (projection * modelview) matrix
//   - vp: the viewport
//
// Returns:
//   - mgl32.Vec3: screen x, screen y (pixels, top-left origin), and normalized depth
func Project(world mgl32.Vec3, view mgl32.Mat4, vp common.Viewport) mgl32.Vec3 {
	win := mgl32.Project(world, mgl32.Ident4(), view, 0, 0, vp.Width, vp.Height)
	win[1] = float32(vp.Height) - win[1]
	return win
}

// ScreenDistanceSquared returns the squared pixel distance between a mouse position and the projection
// of a world-space point.
//
// Parameters:
//   - mouseX, mouseY: the mouse position in screen space
//   - world: the world-space point
//   - view: the full view matrix
//   - vp: the viewport
//
// Returns:
//   - SquaredPixels: the squared distance in pixels
func ScreenDistanceSquared(mouseX, mouseY float32, world mgl32.Vec3, view mgl32.Mat4, vp common.Viewport) SquaredPixels {
	s := Project(world, view, vp)
	dx := s[0] - mouseX
	dy := s[1] - mouseY
	return SquaredPixels(dx*dx + dy*dy)
}

// Invert returns the inverse of a view matrix.
//
// Parameters:
//   - view: the full view matrix
//
// Returns:
//   - mgl32.Mat4: the inverse
//   - error: ErrDegenerateTransform if |det(view)| is below common.DegenerateEpsilon
func Invert(view mgl32.Mat4) (mgl32.Mat4, error) {
	inv, ok := common.Invert4(view)
	if !ok {
		return mgl32.Mat4{}, fmt.Errorf("invert view matrix (det %g): %w", view.Det(), ErrDegenerateTransform)
	}
	return inv, nil
}

// Unproject is the inverse of Project: it maps a screen point with normalized depth back to world space.
//
// Parameters:
//   - screen: screen x, screen y (top-left origin) and normalized depth
//   - inverseView: the inverse of the full view matrix
//   - vp: the viewport
//
// Returns:
//   - mgl32.Vec3: the world-space point
//   - error: ErrInvalidViewport or ErrDegenerateTransform; the returned point is the zero vector on error
func Unproject(screen mgl32.Vec3, inverseView mgl32.Mat4, vp common.Viewport) (mgl32.Vec3, error) {
	if !vp.Valid() {
		return mgl32.Vec3{}, fmt.Errorf("unproject into %dx%d: %w", vp.Width, vp.Height, ErrInvalidViewport)
	}

	ndc := mgl32.Vec4{
		2*screen[0]/float32(vp.Width) - 1,
		2*(float32(vp.Height)-screen[1])/float32(vp.Height) - 1,
		2*screen[2] - 1,
		1,
	}
	obj := inverseView.Mul4x1(ndc)
	if mgl32.Abs(obj[3]) < homogeneousEpsilon {
		return mgl32.Vec3{}, fmt.Errorf("unproject: w = %g: %w", obj[3], ErrDegenerateTransform)
	}

	world := obj.Vec3().Mul(1 / obj[3])
	if !common.IsFinite(world) {
		return mgl32.Vec3{}, fmt.Errorf("unproject: non-finite result: %w", ErrDegenerateTransform)
	}
	return world, nil
}

// UnprojectView inverts the view matrix and unprojects the screen point through it.
//
// Parameters:
//   - screen: screen x, screen y (top-left origin) and normalized depth
//   - view: the full view matrix (not inverted)
//   - vp: the viewport
//
// Returns:
//   - mgl32.Vec3: the world-space point
//   - error: ErrInvalidViewport or ErrDegenerateTransform
func UnprojectView(screen mgl32.Vec3, view mgl32.Mat4, vp common.Viewport) (mgl32.Vec3, error) {
	inv, err := Invert(view)
	if err != nil {
		return mgl32.Vec3{}, err
	}
	return Unproject(screen, inv, vp)
}
