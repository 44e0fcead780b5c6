package interaction

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/Carmen-Shannon/oxy-orbit/engine/projector"
	"github.com/go-gl/mathgl/mgl32"
)

type recordingHandler struct {
	presses, drags, releases, wheels int
	lastMods                         input.Modifier
}

func (h *recordingHandler) Press(x, y float32) { h.presses++ }

func (h *recordingHandler) Drag(x, y float32, mods input.Modifier) {
	h.drags++
	h.lastMods = mods
}

func (h *recordingHandler) Release() { h.releases++ }

func (h *recordingHandler) Wheel(amount float32, mods input.Modifier) { h.wheels++ }

func TestDragPickedPoint(t *testing.T) {
	store := common.NewFixedPoints(mgl32.Vec3{}, mgl32.Vec3{1, 1, 0})
	ctx := NewContext(WithStores(store))
	before := ctx.Camera().Modelview()
	depth := projector.Project(mgl32.Vec3{}, ctx.FullView(), ctx.Camera().Viewport())[2]

	ctx.Apply(input.ButtonPress(input.ButtonLeft, 0, 402, 299))
	if !ctx.Mover().IsActive() {
		t.Fatalf("press on a point did not start a drag")
	}
	ctx.Apply(input.CursorMove(0, 450, 260))

	if !ctx.Camera().Modelview().ApproxEqualThreshold(before, 0) {
		t.Fatalf("camera moved while a point was being dragged")
	}
	p, ok := ctx.Selected()
	if !ok {
		t.Fatalf("Selected reported nothing during a drag")
	}
	stored, _ := store.Point(0)
	if p != stored {
		t.Fatalf("Selected\nhave %v\nwant live store value %v", p, stored)
	}
	s := projector.Project(p, ctx.FullView(), ctx.Camera().Viewport())
	if !mgl32.FloatEqualThreshold(s[0], 450, 1e-3) || !mgl32.FloatEqualThreshold(s[1], 260, 1e-3) {
		t.Fatalf("dragged point on screen\nhave %v\nwant [450 260]", s)
	}
	if !mgl32.FloatEqualThreshold(s[2], depth, 1e-5) {
		t.Fatalf("dragged point depth\nhave %v\nwant %v", s[2], depth)
	}

	ctx.Apply(input.ButtonRelease(input.ButtonLeft, 0, 450, 260))
	if ctx.Mover().IsActive() {
		t.Fatalf("release did not end the drag")
	}
	if _, ok := ctx.Selected(); ok {
		t.Fatalf("Selected reported a point after release")
	}
}

func TestMissRotatesCamera(t *testing.T) {
	ctx := NewContext(WithStores(common.NewFixedPoints(mgl32.Vec3{})))
	ctx.Apply(input.ButtonPress(input.ButtonLeft, 0, 100, 100))
	ctx.Apply(input.CursorMove(0, 120, 110))
	ctx.Apply(input.ButtonRelease(input.ButtonLeft, 0, 120, 110))

	ctrl := ctx.Camera().Controller()
	if !mgl32.FloatEqualThreshold(ctrl.Yaw(), 6, 1e-4) || !mgl32.FloatEqualThreshold(ctrl.Pitch(), 3, 1e-4) {
		t.Fatalf("rotation\nhave yaw=%v pitch=%v\nwant yaw=6 pitch=3", ctrl.Yaw(), ctrl.Pitch())
	}
	if ctx.Mover().IsActive() {
		t.Fatalf("missed press started a drag")
	}
}

func TestShiftDragPans(t *testing.T) {
	ctx := NewContext()
	ctx.Apply(input.ButtonPress(input.ButtonLeft, input.ModShift, 0, 0))
	ctx.Apply(input.CursorMove(input.ModShift, 100, 0))
	if pan := ctx.Camera().Controller().Pan(); !mgl32.FloatEqualThreshold(pan[0], 0.5, 1e-4) {
		t.Fatalf("pan\nhave %v\nwant [0.5 0]", pan)
	}
}

func TestMiddleDragPans(t *testing.T) {
	ctx := NewContext()
	ctx.Apply(input.ButtonPress(input.ButtonMiddle, 0, 0, 0))
	ctx.Apply(input.CursorMove(0, 0, 100))
	ctx.Apply(input.ButtonRelease(input.ButtonMiddle, 0, 0, 100))
	if pan := ctx.Camera().Controller().Pan(); !mgl32.FloatEqualThreshold(pan[1], -0.5, 1e-4) {
		t.Fatalf("pan\nhave %v\nwant [0 -0.5]", pan)
	}
}

func TestMoveWithoutButtonIgnored(t *testing.T) {
	ctx := NewContext()
	before := ctx.FullView()
	ctx.Apply(input.CursorMove(0, 300, 300))
	if !ctx.FullView().ApproxEqualThreshold(before, 0) {
		t.Fatalf("hover changed the view")
	}
	if x, y := ctx.Cursor(); x != 300 || y != 300 {
		t.Fatalf("Cursor\nhave %v, %v\nwant 300, 300", x, y)
	}
}

func TestScrollRouting(t *testing.T) {
	ctx := NewContext()
	ctx.Apply(input.Scroll(0, 1))
	if d := ctx.Camera().Controller().Distance(); !mgl32.FloatEqualThreshold(d, 4.9, 1e-4) {
		t.Fatalf("distance\nhave %v\nwant 4.9", d)
	}
	ctx.Apply(input.Scroll(input.ModShift, -1))
	if fov := ctx.Camera().Fov(); !mgl32.FloatEqualThreshold(fov, 35, 1e-4) {
		t.Fatalf("fov\nhave %v\nwant 35", fov)
	}
}

func TestResizeRouting(t *testing.T) {
	ctx := NewContext()
	ctx.Apply(input.Resize(1024, 512))
	if vp := ctx.Camera().Viewport(); vp.Width != 1024 || vp.Height != 512 {
		t.Fatalf("viewport\nhave %v\nwant {1024 512}", vp)
	}
	ctx.Apply(input.Resize(0, 0))
	if vp := ctx.Camera().Viewport(); vp.Width != 1024 {
		t.Fatalf("minimised resize changed viewport to %v", vp)
	}
}

func TestKeyCallbacks(t *testing.T) {
	store := common.NewFixedPoints(mgl32.Vec3{})
	ctx := NewContext(WithStores(store))
	var got input.Modifier
	calls := 0
	ctx.OnKey(common.KeyR, func(mods input.Modifier) {
		calls++
		got = mods
		ctx.Deselect()
	})

	ctx.Apply(input.ButtonPress(input.ButtonLeft, 0, 400, 300))
	ctx.Apply(input.Key(common.KeyR, input.ModControl))
	ctx.Apply(input.Key(common.KeyA, 0))

	if calls != 1 || got != input.ModControl {
		t.Fatalf("key callback\nhave calls=%d mods=%v\nwant calls=1 mods=%v", calls, got, input.ModControl)
	}
	if ctx.Mover().IsActive() {
		t.Fatalf("Deselect from a key callback did not end the drag")
	}
}

func TestRemoveStoreEndsDrag(t *testing.T) {
	store := common.NewFixedPoints(mgl32.Vec3{})
	ctx := NewContext(WithStores(store))
	ctx.Apply(input.ButtonPress(input.ButtonLeft, 0, 400, 300))
	ctx.RemoveStore(store)
	if ctx.Mover().IsActive() {
		t.Fatalf("drag survived removal of its store")
	}
	if len(ctx.Stores()) != 0 {
		t.Fatalf("Stores\nhave %d\nwant 0", len(ctx.Stores()))
	}
}

func TestDragHandler(t *testing.T) {
	h := &recordingHandler{}
	store := common.NewFixedPoints(mgl32.Vec3{})
	ctx := NewContext(WithStores(store), WithDragHandler(h))
	before := ctx.FullView()

	ctx.Apply(input.ButtonPress(input.ButtonLeft, 0, 10, 10))
	ctx.Apply(input.CursorMove(input.ModShift, 20, 20))
	ctx.Apply(input.ButtonRelease(input.ButtonLeft, 0, 20, 20))
	ctx.Apply(input.Scroll(0, 1))

	if h.presses != 1 || h.drags != 1 || h.releases != 1 || h.wheels != 1 {
		t.Fatalf("handler calls\nhave %+v", h)
	}
	if h.lastMods != input.ModShift {
		t.Fatalf("handler mods\nhave %v\nwant %v", h.lastMods, input.ModShift)
	}
	if !ctx.FullView().ApproxEqualThreshold(before, 0) {
		t.Fatalf("camera moved while a drag handler was installed")
	}

	// Picks still take priority over the handler.
	ctx.Apply(input.ButtonPress(input.ButtonLeft, 0, 400, 300))
	if !ctx.Mover().IsActive() || h.presses != 1 {
		t.Fatalf("pick should win over the drag handler")
	}
}

func TestApplyPending(t *testing.T) {
	ctx := NewContext()
	q := input.NewQueue()
	_ = q.Push(input.ButtonPress(input.ButtonLeft, 0, 0, 0))
	_ = q.Push(input.CursorMove(0, 5, 0))
	_ = q.Push(input.CursorMove(0, 10, 0))
	_ = q.Push(input.ButtonRelease(input.ButtonLeft, 0, 10, 0))

	if n := ctx.ApplyPending(q); n != 3 {
		t.Fatalf("ApplyPending\nhave %d\nwant 3", n)
	}
	if yaw := ctx.Camera().Controller().Yaw(); !mgl32.FloatEqualThreshold(yaw, 3, 1e-4) {
		t.Fatalf("yaw\nhave %v\nwant 3", yaw)
	}
}
