package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// DegenerateEpsilon is the determinant magnitude below which a 4x4 transform is treated as non-invertible.
const DegenerateEpsilon float32 = 1e-12

// Invert4 computes the inverse of a 4x4 column-major matrix. If the matrix is singular
// (|determinant| < DegenerateEpsilon) or the inverse is not finite, the zero matrix is
// returned together with false.
//
// Parameters:
//   - m: source matrix (column-major)
//
// Returns:
//   - mgl32.Mat4: the inverse, or the zero matrix when singular
//   - bool: true if the matrix was successfully inverted, false if singular
func Invert4(m mgl32.Mat4) (mgl32.Mat4, bool) {
	det := m.Det()
	if math.IsNaN(float64(det)) || mgl32.Abs(det) < DegenerateEpsilon {
		return mgl32.Mat4{}, false
	}
	inv := m.Inv()
	if inv == (mgl32.Mat4{}) {
		return mgl32.Mat4{}, false
	}
	for _, v := range inv {
		if !finite(v) {
			return mgl32.Mat4{}, false
		}
	}
	return inv, true
}

// IsFinite reports whether every component of v is neither NaN nor infinite.
//
// Parameters:
//   - v: the vector to check
//
// Returns:
//   - bool: true if all components are finite
func IsFinite(v mgl32.Vec3) bool {
	return finite(v[0]) && finite(v[1]) && finite(v[2])
}

func finite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

// BuildModelMatrix constructs a 4x4 model matrix from position, Euler rotation, and scale.
// The rotation order is Y * X * Z (yaw-pitch-roll) and angles are in degrees.
//
// Parameters:
//   - pos: translation in world space
//   - rotDeg: rotation angles in degrees around X, Y and Z
//   - scale: scale factors along each axis
//
// Returns:
//   - mgl32.Mat4: T * Ry * Rx * Rz * S
func BuildModelMatrix(pos, rotDeg, scale mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(pos[0], pos[1], pos[2]).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(rotDeg[1]))).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(rotDeg[0]))).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(rotDeg[2]))).
		Mul4(mgl32.Scale3D(scale[0], scale[1], scale[2]))
}
