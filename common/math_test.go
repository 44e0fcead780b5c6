package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestInvert4(t *testing.T) {
	m := mgl32.Translate3D(1, 2, 3).Mul4(mgl32.HomogRotate3DY(0.7))
	inv, ok := Invert4(m)
	if !ok {
		t.Fatalf("invertible matrix reported singular")
	}
	if !m.Mul4(inv).ApproxEqualThreshold(mgl32.Ident4(), 1e-5) {
		t.Fatalf("m * inv\nhave %v\nwant identity", m.Mul4(inv))
	}
}

func TestInvert4Singular(t *testing.T) {
	nan := float32(math.NaN())
	cases := map[string]mgl32.Mat4{
		"flattened": mgl32.Scale3D(1, 0, 1),
		"zero":      {},
		"nan":       {nan, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1},
	}
	for name, m := range cases {
		if inv, ok := Invert4(m); ok || inv != (mgl32.Mat4{}) {
			t.Fatalf("%s: expected singular, have ok=%v inv=%v", name, ok, inv)
		}
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(mgl32.Vec3{1, -2, 3}) {
		t.Fatalf("finite vector reported non-finite")
	}
	if IsFinite(mgl32.Vec3{0, float32(math.Inf(1)), 0}) {
		t.Fatalf("infinite component not detected")
	}
	if IsFinite(mgl32.Vec3{float32(math.NaN()), 0, 0}) {
		t.Fatalf("NaN component not detected")
	}
}

func TestBuildModelMatrix(t *testing.T) {
	m := BuildModelMatrix(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{0, 90, 0}, mgl32.Vec3{2, 2, 2})
	got := mgl32.TransformCoordinate(mgl32.Vec3{1, 0, 0}, m)
	want := mgl32.Vec3{1, 2, 1}
	if got.Sub(want).Len() > 1e-5 {
		t.Fatalf("transformed point\nhave %v\nwant %v", got, want)
	}
}
