package common

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func testFullView() mgl32.Mat4 {
	proj := mgl32.Perspective(mgl32.DegToRad(45), 1, 0.1, 100)
	mv := mgl32.LookAtV(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	return proj.Mul4(mv)
}

func TestFrustumContainsPoint(t *testing.T) {
	f := ExtractFrustumFromMatrix(testFullView())
	cases := []struct {
		name string
		p    mgl32.Vec3
		want bool
	}{
		{"origin", mgl32.Vec3{}, true},
		{"behind eye", mgl32.Vec3{0, 0, 10}, false},
		{"beyond far", mgl32.Vec3{0, 0, -200}, false},
		{"far right", mgl32.Vec3{100, 0, 0}, false},
		{"far below", mgl32.Vec3{0, -100, 0}, false},
	}
	for _, c := range cases {
		if got := f.ContainsPoint(c.p); got != c.want {
			t.Fatalf("%s\nhave %v\nwant %v", c.name, got, c.want)
		}
	}
}

func TestFrustumInFront(t *testing.T) {
	f := ExtractFrustumFromMatrix(testFullView())
	if !f.InFront(mgl32.Vec3{}) {
		t.Fatalf("origin should be in front of the near plane")
	}
	if !f.InFront(mgl32.Vec3{100, 0, 0}) {
		t.Fatalf("off-screen point in front of the camera should pass the near test")
	}
	if f.InFront(mgl32.Vec3{0, 0, 6}) {
		t.Fatalf("point behind the eye should fail the near test")
	}
}

func TestFrustumPlanesNormalized(t *testing.T) {
	f := ExtractFrustumFromMatrix(testFullView())
	for i, pl := range f.Planes {
		if l := pl.Normal.Len(); l < 0.9999 || l > 1.0001 {
			t.Fatalf("plane %d normal length\nhave %v\nwant 1", i, l)
		}
	}
}
