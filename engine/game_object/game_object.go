package game_object

import (
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// dragAnchor is the transform captured when a gesture starts.
type dragAnchor struct {
	active   bool
	x, y     float32
	position mgl32.Vec3
	rotation mgl32.Vec3
}

type gameObject struct {
	mu *sync.Mutex

	id      uint64
	enabled atomic.Bool

	position mgl32.Vec3
	rotation mgl32.Vec3 // degrees about X, Y, Z
	scale    mgl32.Vec3

	rotationSpeed    float32
	translationSpeed float32
	wheelStep        float32
	minScale         float32

	lines  []mgl32.Vec3
	anchor dragAnchor
}

// GameObject is a line-drawn shape that can be rotated, translated and stretched with the mouse.
// It satisfies the interaction package's DragHandler, so installing it on a Context makes left drags rotate
// the object (translate while shift is held) and the wheel spin it about its Z axis.
//
// Drag updates are anchor-relative: during a gesture the transform is the one captured at press time plus a
// function of the total mouse displacement. Wheel steps are committed immediately.
type GameObject interface {
	// ID returns the object's identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// SetID sets the object's identifier. Scenes assign one on Add when it is zero.
	//
	// Parameters:
	//   - id: the new ID
	SetID(id uint64)

	// Enabled returns whether the object should be drawn.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// SetEnabled sets whether the object should be drawn.
	//
	// Parameters:
	//   - enabled: true to draw
	SetEnabled(enabled bool)

	// Position returns the translation.
	//
	// Returns:
	//   - mgl32.Vec3: the position
	Position() mgl32.Vec3

	// SetPosition sets the translation and commits it as the drag baseline.
	//
	// Parameters:
	//   - p: the new position
	SetPosition(p mgl32.Vec3)

	// Rotation returns the rotation angles.
	//
	// Returns:
	//   - mgl32.Vec3: degrees about X, Y and Z
	Rotation() mgl32.Vec3

	// SetRotation sets the rotation angles and commits them as the drag baseline.
	//
	// Parameters:
	//   - r: degrees about X, Y and Z
	SetRotation(r mgl32.Vec3)

	// Scale returns the per-axis scale.
	//
	// Returns:
	//   - mgl32.Vec3: the scale factors
	Scale() mgl32.Vec3

	// SetScale sets the per-axis scale. Each component is raised to the minimum scale if below it.
	//
	// Parameters:
	//   - s: the scale factors
	SetScale(s mgl32.Vec3)

	// Stretch multiplies one scale axis by 1.1, or by 0.9 when shrink is true, never going below the minimum scale.
	//
	// Parameters:
	//   - axis: 0, 1 or 2; other values are ignored
	//   - shrink: true to shrink instead of grow
	Stretch(axis int, shrink bool)

	// ModelMatrix returns Translate * RotateY * RotateX * RotateZ * Scale for the current transform.
	//
	// Returns:
	//   - mgl32.Mat4: the model matrix
	ModelMatrix() mgl32.Mat4

	// Lines returns the shape as line-list endpoints in object space.
	//
	// Returns:
	//   - []mgl32.Vec3: a copy of the line endpoints
	Lines() []mgl32.Vec3

	// WorldLines returns the shape's line-list endpoints transformed by ModelMatrix.
	//
	// Returns:
	//   - []mgl32.Vec3: the transformed endpoints
	WorldLines() []mgl32.Vec3

	// Press anchors a gesture.
	//
	// Parameters:
	//   - x, y: cursor position in screen pixels
	Press(x, y float32)

	// Drag rotates the object relative to the anchor, or translates it in the screen plane while shift is held.
	// Ignored without a preceding Press.
	//
	// Parameters:
	//   - x, y: cursor position in screen pixels
	//   - mods: held modifiers
	Drag(x, y float32, mods input.Modifier)

	// Release commits the gesture. Idempotent.
	Release()

	// Wheel rotates the object about Z by amount * wheel step and commits the result.
	//
	// Parameters:
	//   - amount: signed wheel amount
	//   - mods: held modifiers
	Wheel(amount float32, mods input.Modifier)
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new GameObject configured with the given options.
// Defaults follow the letter demo: 0.3 degrees per pixel of drag, 0.01 units per pixel of shift-drag,
// 2 degrees per wheel notch and a minimum scale of 0.02.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		mu:               &sync.Mutex{},
		scale:            mgl32.Vec3{1, 1, 1},
		rotationSpeed:    0.3,
		translationSpeed: 0.01,
		wheelStep:        2,
		minScale:         0.02,
	}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	obj.scale = obj.clampScale(obj.scale)
	return obj
}

func (g *gameObject) ID() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.id
}

func (g *gameObject) SetID(id uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.id = id
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) Position() mgl32.Vec3 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.position
}

func (g *gameObject) SetPosition(p mgl32.Vec3) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.position = p
	g.anchor.position = p
}

func (g *gameObject) Rotation() mgl32.Vec3 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rotation
}

func (g *gameObject) SetRotation(r mgl32.Vec3) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rotation = r
	g.anchor.rotation = r
}

func (g *gameObject) Scale() mgl32.Vec3 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.scale
}

func (g *gameObject) SetScale(s mgl32.Vec3) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.scale = g.clampScale(s)
}

func (g *gameObject) Stretch(axis int, shrink bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if axis < 0 || axis > 2 {
		return
	}
	factor := float32(1.1)
	if shrink {
		factor = 0.9
	}
	g.scale[axis] *= factor
	g.scale = g.clampScale(g.scale)
}

func (g *gameObject) ModelMatrix() mgl32.Mat4 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return common.BuildModelMatrix(g.position, g.rotation, g.scale)
}

func (g *gameObject) Lines() []mgl32.Vec3 {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]mgl32.Vec3, len(g.lines))
	copy(out, g.lines)
	return out
}

func (g *gameObject) WorldLines() []mgl32.Vec3 {
	g.mu.Lock()
	defer g.mu.Unlock()
	m := common.BuildModelMatrix(g.position, g.rotation, g.scale)
	out := make([]mgl32.Vec3, len(g.lines))
	for i, p := range g.lines {
		out[i] = mgl32.TransformCoordinate(p, m)
	}
	return out
}

func (g *gameObject) Press(x, y float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.anchor = dragAnchor{
		active:   true,
		x:        x,
		y:        y,
		position: g.position,
		rotation: g.rotation,
	}
}

func (g *gameObject) Drag(x, y float32, mods input.Modifier) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.anchor.active {
		return
	}

	dx := x - g.anchor.x
	dy := y - g.anchor.y
	if mods.Has(input.ModShift) {
		g.position = g.anchor.position.Add(mgl32.Vec3{g.translationSpeed * dx, -g.translationSpeed * dy, 0})
		g.rotation = g.anchor.rotation
		return
	}
	g.rotation = g.anchor.rotation.Add(mgl32.Vec3{g.rotationSpeed * dy, g.rotationSpeed * dx, 0})
	g.position = g.anchor.position
}

func (g *gameObject) Release() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.anchor.active = false
	g.anchor.position = g.position
	g.anchor.rotation = g.rotation
}

func (g *gameObject) Wheel(amount float32, mods input.Modifier) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rotation[2] += g.wheelStep * amount
	g.anchor.rotation[2] += g.wheelStep * amount
}

// clampScale raises every component to the minimum scale.
func (g *gameObject) clampScale(s mgl32.Vec3) mgl32.Vec3 {
	for i := range s {
		s[i] = max(s[i], g.minScale)
	}
	return s
}
