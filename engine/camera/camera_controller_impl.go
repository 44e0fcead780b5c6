package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
)

// mouseAnchor is the state captured when a drag starts.
type mouseAnchor struct {
	active bool
	x, y   float32

	yaw   float32
	pitch float32
	pan   mgl32.Vec2
}

// cameraControllerImpl is the single implementation of CameraController.
// The committed baseline lives in the anchor snapshot; yaw, pitch and pan are the live values.
type cameraControllerImpl struct {
	mu *sync.Mutex

	target mgl32.Vec3

	yaw      float32
	pitch    float32
	pan      mgl32.Vec2
	distance float32

	minDistance float32
	maxDistance float32

	rotationSpeed float32
	orbitStep     float32
	zoomSpeed     float32
	panSpeed      float32

	anchor mouseAnchor
}

var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a new orbit camera controller.
// Defaults place the eye 5 units in front of the origin with no rotation, matching the classic
// Translate(0, 0, -5) viewing setup.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu:       &sync.Mutex{},
		distance: 5,

		minDistance: 0.01,
		maxDistance: 100,

		rotationSpeed: 0.3,
		orbitStep:     5,
		zoomSpeed:     0.1,
		panSpeed:      0.001,
	}

	for _, option := range options {
		option(cc)
	}

	if cc.minDistance <= 0 {
		cc.minDistance = 0.01
	}
	if cc.maxDistance <= cc.minDistance {
		cc.maxDistance = cc.minDistance * 2
	}
	cc.distance = mgl32.Clamp(cc.distance, cc.minDistance, cc.maxDistance)
	return cc
}

// --- CameraController shared methods ---

func (cc *cameraControllerImpl) Target() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.target
}

func (cc *cameraControllerImpl) SetTarget(target mgl32.Vec3) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.target = target
}

func (cc *cameraControllerImpl) Position() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	inv, ok := common.Invert4(cc.modelview())
	if !ok {
		return cc.target
	}
	return inv.Col(3).Vec3()
}

func (cc *cameraControllerImpl) Modelview() mgl32.Mat4 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.modelview()
}

func (cc *cameraControllerImpl) Press(x, y float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.anchor = mouseAnchor{
		active: true,
		x:      x,
		y:      y,
		yaw:    cc.yaw,
		pitch:  cc.pitch,
		pan:    cc.pan,
	}
}

func (cc *cameraControllerImpl) Drag(x, y float32, pan bool) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if !cc.anchor.active {
		return
	}

	dx := x - cc.anchor.x
	dy := y - cc.anchor.y
	if pan {
		scale := cc.panSpeed * cc.distance
		cc.pan = mgl32.Vec2{
			cc.anchor.pan[0] + scale*dx,
			cc.anchor.pan[1] - scale*dy,
		}
		cc.yaw = cc.anchor.yaw
		cc.pitch = cc.anchor.pitch
		return
	}

	cc.yaw = cc.anchor.yaw + cc.rotationSpeed*dx
	cc.pitch = cc.anchor.pitch + cc.rotationSpeed*dy
	cc.pan = cc.anchor.pan
}

func (cc *cameraControllerImpl) Release() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.anchor = mouseAnchor{}
}

func (cc *cameraControllerImpl) Dragging() bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.anchor.active
}

func (cc *cameraControllerImpl) Zoom(amount float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.distance = mgl32.Clamp(cc.distance-amount*cc.zoomSpeed, cc.minDistance, cc.maxDistance)
}

// --- orbitCameraController implementation ---

func (cc *cameraControllerImpl) OrbitLeft() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.rotate(-cc.orbitStep, 0)
}

func (cc *cameraControllerImpl) OrbitRight() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.rotate(cc.orbitStep, 0)
}

func (cc *cameraControllerImpl) OrbitUp() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.rotate(0, -cc.orbitStep)
}

func (cc *cameraControllerImpl) OrbitDown() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.rotate(0, cc.orbitStep)
}

func (cc *cameraControllerImpl) Yaw() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.yaw
}

func (cc *cameraControllerImpl) Pitch() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.pitch
}

func (cc *cameraControllerImpl) SetRotation(yaw, pitch float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.yaw = yaw
	cc.pitch = pitch
	cc.anchor.yaw = yaw
	cc.anchor.pitch = pitch
}

func (cc *cameraControllerImpl) Distance() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.distance
}

func (cc *cameraControllerImpl) SetDistance(distance float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.distance = mgl32.Clamp(distance, cc.minDistance, cc.maxDistance)
}

func (cc *cameraControllerImpl) MinDistance() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.minDistance
}

func (cc *cameraControllerImpl) MaxDistance() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.maxDistance
}

func (cc *cameraControllerImpl) RotationSpeed() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.rotationSpeed
}

func (cc *cameraControllerImpl) OrbitStep() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.orbitStep
}

func (cc *cameraControllerImpl) ZoomSpeed() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.zoomSpeed
}

// --- planarCameraController implementation ---

func (cc *cameraControllerImpl) Pan() mgl32.Vec2 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.pan
}

func (cc *cameraControllerImpl) SetPan(pan mgl32.Vec2) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.pan = pan
	cc.anchor.pan = pan
}

func (cc *cameraControllerImpl) PanRight(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.translate(delta*cc.panSpeed*cc.distance, 0)
}

func (cc *cameraControllerImpl) PanUp(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.translate(0, delta*cc.panSpeed*cc.distance)
}

func (cc *cameraControllerImpl) PanSpeed() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.panSpeed
}

// --- internal helpers ---

// modelview builds the view transform from the live state.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) modelview() mgl32.Mat4 {
	return mgl32.Translate3D(cc.pan[0], cc.pan[1], -cc.distance).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(cc.pitch))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(cc.yaw))).
		Mul4(mgl32.Translate3D(-cc.target[0], -cc.target[1], -cc.target[2]))
}

// rotate applies a keyboard step to both the live rotation and the anchor so an in-progress drag keeps it.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) rotate(dYaw, dPitch float32) {
	cc.yaw += dYaw
	cc.pitch += dPitch
	cc.anchor.yaw += dYaw
	cc.anchor.pitch += dPitch
}

// translate applies a keyboard pan to both the live pan and the anchor.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) translate(dx, dy float32) {
	cc.pan = cc.pan.Add(mgl32.Vec2{dx, dy})
	cc.anchor.pan = cc.anchor.pan.Add(mgl32.Vec2{dx, dy})
}
