package renderer

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// LineVertexSize is the packed size of one LineVertex in bytes: vec3<f32> position + vec4<f32> color.
const LineVertexSize = 28

var (
	ColorWhite  = mgl32.Vec4{1, 1, 1, 1}
	ColorRed    = mgl32.Vec4{1, 0, 0, 1}
	ColorGreen  = mgl32.Vec4{0, 1, 0, 1}
	ColorBlue   = mgl32.Vec4{0, 0, 1, 1}
	ColorYellow = mgl32.Vec4{1, 1, 0, 1}
	ColorGray   = mgl32.Vec4{0.5, 0.5, 0.5, 1}
)

// LineVertex is one end of a line-list segment. Consecutive pairs of vertices form a line.
type LineVertex struct {
	Position mgl32.Vec3
	Color    mgl32.Vec4
}

// AppendLine appends the segment a-b.
//
// Parameters:
//   - dst: the slice to append to
//   - a: segment start
//   - b: segment end
//   - color: RGBA color for both ends
//
// Returns:
//   - []LineVertex: dst with 2 vertices appended
func AppendLine(dst []LineVertex, a, b mgl32.Vec3, color mgl32.Vec4) []LineVertex {
	return append(dst, LineVertex{Position: a, Color: color}, LineVertex{Position: b, Color: color})
}

// AppendPolyline appends the open polyline through pts as line-list pairs.
// Fewer than two points appends nothing.
//
// Parameters:
//   - dst: the slice to append to
//   - pts: ordered polyline points
//   - color: RGBA color
//
// Returns:
//   - []LineVertex: dst with 2 * (len(pts) - 1) vertices appended
func AppendPolyline(dst []LineVertex, pts []mgl32.Vec3, color mgl32.Vec4) []LineVertex {
	for i := 1; i < len(pts); i++ {
		dst = AppendLine(dst, pts[i-1], pts[i], color)
	}
	return dst
}

// AppendSegments appends points that are already paired as line-list segments.
// A trailing unpaired point is ignored.
func AppendSegments(dst []LineVertex, pairs []mgl32.Vec3, color mgl32.Vec4) []LineVertex {
	for i := 0; i+1 < len(pairs); i += 2 {
		dst = AppendLine(dst, pairs[i], pairs[i+1], color)
	}
	return dst
}

// AppendCross appends a three-axis marker centered on c, used to draw control points.
//
// Parameters:
//   - dst: the slice to append to
//   - c: marker center
//   - half: half length of each arm
//   - color: RGBA color
//
// Returns:
//   - []LineVertex: dst with 6 vertices appended
func AppendCross(dst []LineVertex, c mgl32.Vec3, half float32, color mgl32.Vec4) []LineVertex {
	dst = AppendLine(dst, c.Sub(mgl32.Vec3{half, 0, 0}), c.Add(mgl32.Vec3{half, 0, 0}), color)
	dst = AppendLine(dst, c.Sub(mgl32.Vec3{0, half, 0}), c.Add(mgl32.Vec3{0, half, 0}), color)
	return AppendLine(dst, c.Sub(mgl32.Vec3{0, 0, half}), c.Add(mgl32.Vec3{0, 0, half}), color)
}

// MarshalLineVertices packs vertices little-endian into dst, reusing its capacity.
//
// Parameters:
//   - dst: the buffer to reuse (may be nil)
//   - vertices: the vertices to pack
//
// Returns:
//   - []byte: len(vertices) * LineVertexSize bytes
func MarshalLineVertices(dst []byte, vertices []LineVertex) []byte {
	dst = dst[:0]
	for _, v := range vertices {
		for _, f := range v.Position {
			dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(f))
		}
		for _, f := range v.Color {
			dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(f))
		}
	}
	return dst
}
