package camera

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/engine/projector"
	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-4

func TestDefaultModelview(t *testing.T) {
	c := NewCamera()
	p := c.Modelview().Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	if p.Sub(mgl32.Vec3{0, 0, -5}).Len() > eps {
		t.Fatalf("origin in eye space\nhave %v\nwant [0 0 -5]", p)
	}
	if pos := c.Controller().Position(); pos.Sub(mgl32.Vec3{0, 0, 5}).Len() > eps {
		t.Fatalf("eye position\nhave %v\nwant [0 0 5]", pos)
	}
}

func TestMatricesConsistent(t *testing.T) {
	c := NewCamera(WithController(NewCameraController(WithRotation(20, -10), WithPan(0.5, 0.25))))
	m := c.Matrices()
	if !m.FullView.ApproxEqualThreshold(m.Projection.Mul4(m.Modelview), eps) {
		t.Fatalf("FullView != Projection * Modelview")
	}
	if !c.FullView().ApproxEqualThreshold(m.FullView, eps) {
		t.Fatalf("FullView getter disagrees with Matrices")
	}
}

func TestDragIsAnchorRelative(t *testing.T) {
	c := NewCamera()
	c.MouseDown(100, 100)
	c.MouseDrag(110, 100, false)
	c.MouseDrag(120, 105, false)

	ctrl := c.Controller()
	if !mgl32.FloatEqualThreshold(ctrl.Yaw(), 0.3*20, eps) {
		t.Fatalf("yaw\nhave %v\nwant %v", ctrl.Yaw(), 0.3*20)
	}
	if !mgl32.FloatEqualThreshold(ctrl.Pitch(), 0.3*5, eps) {
		t.Fatalf("pitch\nhave %v\nwant %v", ctrl.Pitch(), 0.3*5)
	}

	c.MouseUp()
	c.MouseDown(0, 0)
	c.MouseDrag(10, 0, false)
	if !mgl32.FloatEqualThreshold(ctrl.Yaw(), 0.3*30, eps) {
		t.Fatalf("second drag should start from the committed yaw\nhave %v\nwant %v", ctrl.Yaw(), 0.3*30)
	}
}

func TestPanDrag(t *testing.T) {
	c := NewCamera()
	c.MouseDown(0, 0)
	c.MouseDrag(10, 20, true)
	have := c.Controller().Pan()
	want := mgl32.Vec2{0.001 * 5 * 10, -0.001 * 5 * 20}
	if have.Sub(want).Len() > eps {
		t.Fatalf("pan\nhave %v\nwant %v", have, want)
	}
	if c.Controller().Yaw() != 0 {
		t.Fatalf("panning must not rotate, yaw %v", c.Controller().Yaw())
	}
}

func TestReleaseIdempotent(t *testing.T) {
	c := NewCamera()
	c.MouseDown(0, 0)
	c.MouseDrag(50, 0, false)
	c.MouseUp()
	yaw := c.Controller().Yaw()
	c.MouseUp()
	c.MouseUp()
	if have := c.Controller().Yaw(); have != yaw {
		t.Fatalf("repeated release changed yaw\nhave %v\nwant %v", have, yaw)
	}
	if c.Controller().Dragging() {
		t.Fatalf("controller still dragging after release")
	}
}

func TestDragWithoutPressIgnored(t *testing.T) {
	c := NewCamera()
	before := c.Modelview()
	c.MouseDrag(300, 300, false)
	c.MouseDrag(300, 300, true)
	if !c.Modelview().ApproxEqualThreshold(before, 0) {
		t.Fatalf("drag without press changed the view")
	}
}

func TestWheelBounds(t *testing.T) {
	c := NewCamera()
	ctrl := c.Controller()
	for range 2000 {
		c.MouseWheel(3, false)
	}
	if d := ctrl.Distance(); d < ctrl.MinDistance() || d > ctrl.MaxDistance() {
		t.Fatalf("distance %v outside [%v, %v]", d, ctrl.MinDistance(), ctrl.MaxDistance())
	}
	if ctrl.Distance() != ctrl.MinDistance() {
		t.Fatalf("distance should saturate at min\nhave %v\nwant %v", ctrl.Distance(), ctrl.MinDistance())
	}
	for range 2000 {
		c.MouseWheel(-7, false)
	}
	if ctrl.Distance() != ctrl.MaxDistance() {
		t.Fatalf("distance should saturate at max\nhave %v\nwant %v", ctrl.Distance(), ctrl.MaxDistance())
	}

	for range 100 {
		c.MouseWheel(1, true)
	}
	if c.Fov() != MinFov {
		t.Fatalf("fov\nhave %v\nwant %v", c.Fov(), MinFov)
	}
	for range 100 {
		c.MouseWheel(-1, true)
	}
	if c.Fov() != MaxFov {
		t.Fatalf("fov\nhave %v\nwant %v", c.Fov(), MaxFov)
	}
}

func TestWheelFovStep(t *testing.T) {
	c := NewCamera()
	d := c.Controller().Distance()
	c.MouseWheel(1, true)
	if !mgl32.FloatEqualThreshold(c.Fov(), 25, eps) {
		t.Fatalf("fov after one notch\nhave %v\nwant 25", c.Fov())
	}
	if c.Controller().Distance() != d {
		t.Fatalf("fov wheel changed distance")
	}
}

func TestResizeScalesProjection(t *testing.T) {
	c := NewCamera(WithViewport(800, 600))
	p := mgl32.Vec3{0.3, -0.2, 0.1}
	before := projector.Project(p, c.FullView(), c.Viewport())

	c.Resize(400, 300)
	after := projector.Project(p, c.FullView(), c.Viewport())

	if !mgl32.FloatEqualThreshold(after[0], before[0]*0.5, 1e-2) || !mgl32.FloatEqualThreshold(after[1], before[1]*0.5, 1e-2) {
		t.Fatalf("resize scaling\nhave %v\nwant %v", after, before.Mul(0.5))
	}
}

func TestResizeIgnoresNonPositive(t *testing.T) {
	c := NewCamera(WithViewport(800, 600))
	c.Resize(0, 0)
	c.Resize(-5, 200)
	if vp := c.Viewport(); vp.Width != 800 || vp.Height != 600 {
		t.Fatalf("viewport\nhave %v\nwant {800 600}", vp)
	}
}

func TestKeyboardOrbitKeepsDragBaseline(t *testing.T) {
	ctrl := NewCameraController(WithOrbitStep(10))
	ctrl.Press(0, 0)
	ctrl.OrbitRight()
	ctrl.Drag(10, 0, false)
	if !mgl32.FloatEqualThreshold(ctrl.Yaw(), 13, eps) {
		t.Fatalf("yaw\nhave %v\nwant 13", ctrl.Yaw())
	}
}

func TestUniformMarshal(t *testing.T) {
	c := NewCamera()
	u := c.Uniform()
	buf := u.Marshal()
	if len(buf) != 64 {
		t.Fatalf("uniform size\nhave %d\nwant 64", len(buf))
	}
	fv := c.FullView()
	if have := math.Float32frombits(binary.LittleEndian.Uint32(buf[0:])); have != fv[0] {
		t.Fatalf("full_view[0]\nhave %v\nwant %v", have, fv[0])
	}
	if have := math.Float32frombits(binary.LittleEndian.Uint32(buf[60:])); have != fv[15] {
		t.Fatalf("full_view[15]\nhave %v\nwant %v", have, fv[15])
	}
}
