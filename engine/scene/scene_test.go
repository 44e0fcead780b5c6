package scene

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/engine/curve"
	"github.com/Carmen-Shannon/oxy-orbit/engine/game_object"
	"github.com/Carmen-Shannon/oxy-orbit/engine/interaction"
	"github.com/go-gl/mathgl/mgl32"
)

// Vertices contributed by one default-resolution curve: 100 curve + 6 control polygon + 4 markers * 6.
const curveVertices = 2*curve.DefaultResolution + 6 + 4*6

func testCurve() *curve.Bezier {
	return curve.NewBezier(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0.25, 0, 0.25}, mgl32.Vec3{0.5, 0.5, 0.5}, mgl32.Vec3{1, 1, 1})
}

func newTestScene(t *testing.T, options ...SceneBuilderOption) Scene {
	t.Helper()
	s := NewScene("test", interaction.NewContext(), append(options, WithTessellator(curve.NewTessellator(curve.WithWorkers(2))))...)
	t.Cleanup(s.Release)
	return s
}

func TestAddAssignsIDs(t *testing.T) {
	s := newTestScene(t)
	fixed := game_object.NewGameObject(game_object.WithID(2))
	if id := s.Add(fixed); id != 2 {
		t.Fatalf("preset ID\nhave %d\nwant 2", id)
	}
	a := s.Add(game_object.NewGameObject())
	b := s.Add(game_object.NewGameObject())
	if a != 1 || b != 3 {
		t.Fatalf("assigned IDs\nhave %d, %d\nwant 1, 3", a, b)
	}
	if s.Get(2) != fixed {
		t.Fatalf("Get(2) did not return the preset object")
	}
	s.Remove(2)
	if s.Count() != 2 || s.Get(2) != nil {
		t.Fatalf("after Remove\nhave count %d\nwant 2", s.Count())
	}
}

func TestLinesGeometry(t *testing.T) {
	cube := game_object.NewGameObject(game_object.WithLines(game_object.CubeLines(0.5)...))
	hidden := game_object.NewGameObject(game_object.WithLines(game_object.CubeLines(1)...), game_object.WithEnabled(false))
	s := newTestScene(t, WithObjects(cube, hidden), WithCurves(testCurve()))

	lines := s.Lines(nil)
	if len(lines) != 24+curveVertices {
		t.Fatalf("vertex count\nhave %d\nwant %d", len(lines), 24+curveVertices)
	}
	if lines[0].Color != DefaultStyle.Shape || lines[24].Color != DefaultStyle.Curve {
		t.Fatalf("objects must precede curves")
	}

	s.SetActive(false)
	if n := len(s.Lines(nil)); n != 0 {
		t.Fatalf("inactive scene vertices\nhave %d\nwant 0", n)
	}
}

func TestLinesSkipsMarkersOutsideFrustum(t *testing.T) {
	wide := curve.NewBezier(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0.25, 0, 0}, mgl32.Vec3{0.5, 0, 0}, mgl32.Vec3{50, 0, 0})
	s := newTestScene(t, WithCurves(wide))

	lines := s.Lines(nil)
	want := 2*curve.DefaultResolution + 6 + 3*6
	if len(lines) != want {
		t.Fatalf("vertex count\nhave %d\nwant %d", len(lines), want)
	}
	for _, v := range lines[2*curve.DefaultResolution+6:] {
		if v.Position.X() > 2 {
			t.Fatalf("marker drawn for off-screen point at %v", v.Position)
		}
	}

	ctx := s.Context()
	cam := ctx.Camera()
	if err := ctx.Mover().BeginDrag(wide, 3, 0, 0, cam.Modelview(), cam.Projection(), cam.Viewport()); err != nil {
		t.Fatalf("BeginDrag: %v", err)
	}
	if n := len(s.Lines(nil)); n != want {
		t.Fatalf("selected off-screen point\nhave %d vertices\nwant %d", n, want)
	}
}

func TestLinesWithoutControlMesh(t *testing.T) {
	s := newTestScene(t, WithCurves(testCurve()), WithControlMesh(false))
	if n := len(s.Lines(nil)); n != 2*curve.DefaultResolution {
		t.Fatalf("vertex count\nhave %d\nwant %d", n, 2*curve.DefaultResolution)
	}
}

func TestSelectedPointMarker(t *testing.T) {
	c := testCurve()
	s := newTestScene(t, WithCurves(c))
	ctx := s.Context()
	cam := ctx.Camera()

	if len(ctx.Stores()) != 1 {
		t.Fatalf("curve was not registered as a point store")
	}
	if err := ctx.Mover().BeginDrag(c, 3, 0, 0, cam.Modelview(), cam.Projection(), cam.Viewport()); err != nil {
		t.Fatalf("BeginDrag: %v", err)
	}

	lines := s.Lines(nil)
	if len(lines) != curveVertices+6 {
		t.Fatalf("vertex count\nhave %d\nwant %d", len(lines), curveVertices+6)
	}
	marker := lines[len(lines)-2:]
	mid := marker[0].Position.Add(marker[1].Position).Mul(0.5)
	if mid.Sub(c.P[3]).Len() > 1e-6 || marker[0].Color != DefaultStyle.Selected {
		t.Fatalf("selected marker\nhave center %v\nwant %v", mid, c.P[3])
	}

	s.RemoveCurve(c)
	if _, ok := ctx.Selected(); ok {
		t.Fatalf("removing the curve should end the drag")
	}
	if len(s.Curves()) != 0 || len(ctx.Stores()) != 0 {
		t.Fatalf("curve still registered after RemoveCurve")
	}
}

func TestClear(t *testing.T) {
	s := newTestScene(t, WithObjects(game_object.NewGameObject()), WithCurves(testCurve(), testCurve()))
	s.Clear()
	if s.Count() != 0 || len(s.Curves()) != 0 || len(s.Context().Stores()) != 0 {
		t.Fatalf("scene not empty after Clear")
	}
}
