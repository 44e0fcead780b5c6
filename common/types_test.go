package common

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestViewport(t *testing.T) {
	v := NewViewport(800, 600)
	if !v.Valid() {
		t.Fatalf("800x600 reported invalid")
	}
	if a := v.Aspect(); a != float32(800)/600 {
		t.Fatalf("aspect\nhave %v\nwant %v", a, float32(800)/600)
	}
	if NewViewport(0, 600).Valid() || NewViewport(800, -1).Valid() {
		t.Fatalf("non-positive viewport reported valid")
	}
	if a := NewViewport(800, 0).Aspect(); a != 1 {
		t.Fatalf("zero-height aspect\nhave %v\nwant 1", a)
	}
}

func TestFixedPoints(t *testing.T) {
	src := []mgl32.Vec3{{1, 0, 0}, {0, 1, 0}}
	s := NewFixedPoints(src...)
	src[0] = mgl32.Vec3{9, 9, 9}

	if s.Len() != 2 {
		t.Fatalf("len\nhave %d\nwant 2", s.Len())
	}
	if p, ok := s.Point(0); !ok || p != (mgl32.Vec3{1, 0, 0}) {
		t.Fatalf("point 0 aliased the source slice\nhave %v", p)
	}
	if err := s.SetPoint(1, mgl32.Vec3{0, 0, 1}); err != nil {
		t.Fatalf("SetPoint: %v", err)
	}
	if p, _ := s.Point(1); p != (mgl32.Vec3{0, 0, 1}) {
		t.Fatalf("point 1\nhave %v\nwant %v", p, mgl32.Vec3{0, 0, 1})
	}
	if _, ok := s.Point(2); ok {
		t.Fatalf("out of range point reported present")
	}
	if err := s.SetPoint(-1, mgl32.Vec3{}); !errors.Is(err, ErrPointOutOfRange) {
		t.Fatalf("error\nhave %v\nwant %v", err, ErrPointOutOfRange)
	}
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce(0, 0, 3, 4); got != 3 {
		t.Fatalf("have %d\nwant 3", got)
	}
	if got := Coalesce("", ""); got != "" {
		t.Fatalf("have %q\nwant empty", got)
	}
}
