// package common contains plain types shared across the toolkit. They are not interface-wrapped structs, just the
// small value types and contracts every package agrees on: the viewport, the point storage contract, and the
// errors that cross package boundaries.
package common

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrPointOutOfRange is returned when a point handle refers to an index the owning store no longer holds.
var ErrPointOutOfRange = errors.New("point index out of range")

// Viewport is the pixel size of the render target.
// Screen coordinates used throughout the toolkit have their origin at the top-left corner with y growing downward.
type Viewport struct {
	// Width is the render target width in pixels.
	Width int
	// Height is the render target height in pixels.
	Height int
}

// NewViewport creates a Viewport with the given pixel dimensions.
//
// Parameters:
//   - width: width in pixels
//   - height: height in pixels
//
// Returns:
//   - Viewport: the viewport value
func NewViewport(width, height int) Viewport {
	return Viewport{Width: width, Height: height}
}

// Aspect returns width / height, or 1 when the viewport has no height.
//
// Returns:
//   - float32: the aspect ratio
func (v Viewport) Aspect() float32 {
	if v.Height <= 0 {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}

// Valid reports whether both dimensions are strictly positive.
//
// Returns:
//   - bool: true if the viewport can be projected into
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

// PointStore is a bounds-checked, index-addressed container of control points.
// Picking and dragging hold an index into a PointStore rather than a pointer into its storage,
// so a store that shrinks or is discarded mid-drag is detected instead of aliased.
type PointStore interface {
	// Len returns the number of points currently held.
	//
	// Returns:
	//   - int: the point count
	Len() int

	// Point returns the point at index i.
	//
	// Parameters:
	//   - i: the point index
	//
	// Returns:
	//   - mgl32.Vec3: the point position
	//   - bool: false if i is out of range
	Point(i int) (mgl32.Vec3, bool)

	// SetPoint overwrites the point at index i in place.
	//
	// Parameters:
	//   - i: the point index
	//   - p: the new position
	//
	// Returns:
	//   - error: ErrPointOutOfRange if i is out of range
	SetPoint(i int, p mgl32.Vec3) error
}

// FixedPoints is a PointStore backed by a fixed-capacity slice. Its length never changes after construction.
type FixedPoints struct {
	points []mgl32.Vec3
}

var _ PointStore = &FixedPoints{}

// NewFixedPoints copies the given points into a new FixedPoints store.
//
// Parameters:
//   - points: the initial point positions
//
// Returns:
//   - *FixedPoints: the new store
func NewFixedPoints(points ...mgl32.Vec3) *FixedPoints {
	p := make([]mgl32.Vec3, len(points))
	copy(p, points)
	return &FixedPoints{points: p}
}

func (f *FixedPoints) Len() int {
	return len(f.points)
}

func (f *FixedPoints) Point(i int) (mgl32.Vec3, bool) {
	if i < 0 || i >= len(f.points) {
		return mgl32.Vec3{}, false
	}
	return f.points[i], true
}

func (f *FixedPoints) SetPoint(i int, p mgl32.Vec3) error {
	if i < 0 || i >= len(f.points) {
		return ErrPointOutOfRange
	}
	f.points[i] = p
	return nil
}
