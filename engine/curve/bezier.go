// Package curve evaluates and tessellates cubic Bezier curves whose control points are edited interactively.
package curve

import (
	"fmt"
	"math"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultResolution is the number of line segments a curve is split into when Res is not positive.
const DefaultResolution = 50

// Bezier is a cubic Bezier curve. Its four control points are exposed as a common.PointStore so the picker and
// mover can edit them in place.
type Bezier struct {
	// P holds the control points in curve order.
	P [4]mgl32.Vec3
	// Res is the number of segments produced by Tessellate.
	Res int
}

var _ common.PointStore = &Bezier{}

// NewBezier creates a curve through p0 and p3 shaped by p1 and p2, tessellated at DefaultResolution.
//
// Parameters:
//   - p0, p1, p2, p3: the control points
//
// Returns:
//   - *Bezier: the curve
func NewBezier(p0, p1, p2, p3 mgl32.Vec3) *Bezier {
	return &Bezier{
		P:   [4]mgl32.Vec3{p0, p1, p2, p3},
		Res: DefaultResolution,
	}
}

// Eval evaluates the curve at t. t is clamped to [0, 1]; the endpoints are returned exactly.
//
// Parameters:
//   - t: the curve parameter
//
// Returns:
//   - mgl32.Vec3: the point on the curve
func (b *Bezier) Eval(t float32) mgl32.Vec3 {
	if math.IsNaN(float64(t)) || t <= 0 {
		return b.P[0]
	}
	if t >= 1 {
		return b.P[3]
	}
	return mgl32.CubicBezierCurve3D(t, b.P[0], b.P[1], b.P[2], b.P[3])
}

// Resolution returns the effective segment count.
//
// Returns:
//   - int: Res, or DefaultResolution when Res is not positive
func (b *Bezier) Resolution() int {
	if b.Res < 1 {
		return DefaultResolution
	}
	return b.Res
}

// Tessellate samples the curve at Resolution()+1 evenly spaced parameters, including both endpoints.
//
// Returns:
//   - []mgl32.Vec3: the samples in order
func (b *Bezier) Tessellate() []mgl32.Vec3 {
	res := b.Resolution()
	out := make([]mgl32.Vec3, res+1)
	for i := range out {
		out[i] = b.Eval(float32(i) / float32(res))
	}
	out[res] = b.P[3]
	return out
}

// Segments returns the tessellation as line-list pairs: (s0, s1), (s1, s2), ...
//
// Returns:
//   - []mgl32.Vec3: 2 * Resolution() points
func (b *Bezier) Segments() []mgl32.Vec3 {
	return segments(b.Tessellate())
}

// Len returns the number of control points (always 4).
func (b *Bezier) Len() int {
	return len(b.P)
}

// Point returns the control point at index i.
//
// Parameters:
//   - i: the control point index
//
// Returns:
//   - mgl32.Vec3: the control point
//   - bool: false if i is not in [0, 4)
func (b *Bezier) Point(i int) (mgl32.Vec3, bool) {
	if i < 0 || i >= len(b.P) {
		return mgl32.Vec3{}, false
	}
	return b.P[i], true
}

// SetPoint overwrites the control point at index i.
//
// Parameters:
//   - i: the control point index
//   - p: the new position
//
// Returns:
//   - error: common.ErrPointOutOfRange if i is not in [0, 4)
func (b *Bezier) SetPoint(i int, p mgl32.Vec3) error {
	if i < 0 || i >= len(b.P) {
		return fmt.Errorf("bezier control point %d: %w", i, common.ErrPointOutOfRange)
	}
	b.P[i] = p
	return nil
}

func segments(samples []mgl32.Vec3) []mgl32.Vec3 {
	if len(samples) < 2 {
		return nil
	}
	out := make([]mgl32.Vec3, 0, 2*(len(samples)-1))
	for i := 1; i < len(samples); i++ {
		out = append(out, samples[i-1], samples[i])
	}
	return out
}
