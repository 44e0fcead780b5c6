package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// MinFov is the narrowest field of view the wheel can reach, in degrees.
	MinFov float32 = 5
	// MaxFov is the widest field of view the wheel can reach, in degrees.
	MaxFov float32 = 150
)

// ViewMatrices is the set of matrices derived from the camera state at one instant.
// FullView is always Projection * Modelview.
type ViewMatrices struct {
	Modelview  mgl32.Mat4
	Projection mgl32.Mat4
	FullView   mgl32.Mat4
}

type cameraImpl struct {
	mu *sync.Mutex

	fov     float32
	fovStep float32
	near    float32
	far     float32

	viewport common.Viewport

	controller CameraController
}

// Camera defines the interface for the orbit camera.
// The camera holds the lens (fov, near, far) and the viewport, and derives its matrices from an attached
// CameraController on every read. Mouse input is forwarded to the controller, except the fov branch of
// the wheel which belongs to the lens.
type Camera interface {
	// Fov returns the vertical field of view in degrees.
	//
	// Returns:
	//   - float32: field of view in degrees
	Fov() float32

	// SetFov sets the vertical field of view, clamped to [MinFov, MaxFov].
	//
	// Parameters:
	//   - fov: field of view in degrees
	SetFov(fov float32)

	// FovStep returns the fov change per wheel unit in degrees.
	//
	// Returns:
	//   - float32: degrees per wheel unit
	FovStep() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// Aspect returns the viewport aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Viewport returns the current viewport.
	//
	// Returns:
	//   - common.Viewport: the viewport
	Viewport() common.Viewport

	// Resize updates the viewport and therefore the aspect ratio. Non-positive sizes are ignored.
	//
	// Parameters:
	//   - width, height: the new size in pixels
	Resize(width, height int)

	// MouseDown anchors a drag at the given position.
	//
	// Parameters:
	//   - x, y: mouse position in screen pixels
	MouseDown(x, y float32)

	// MouseDrag rotates or pans the view relative to the MouseDown anchor.
	//
	// Parameters:
	//   - x, y: mouse position in screen pixels
	//   - pan: true to pan instead of rotate
	MouseDrag(x, y float32, pan bool)

	// MouseUp commits the drag. Idempotent.
	MouseUp()

	// MouseWheel zooms the camera, or narrows/widens the field of view when fovModifier is held.
	//
	// Parameters:
	//   - amount: signed wheel amount, positive away from the user
	//   - fovModifier: true to change fov instead of distance
	MouseWheel(amount float32, fovModifier bool)

	// Matrices returns modelview, projection and full view derived from one consistent snapshot.
	//
	// Returns:
	//   - ViewMatrices: the derived matrices
	Matrices() ViewMatrices

	// Modelview returns the modelview matrix for the current state.
	//
	// Returns:
	//   - mgl32.Mat4: the modelview matrix
	Modelview() mgl32.Mat4

	// Projection returns the perspective matrix for the current lens and viewport.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	Projection() mgl32.Mat4

	// FullView returns Projection * Modelview for the current state.
	//
	// Returns:
	//   - mgl32.Mat4: the full view matrix
	FullView() mgl32.Mat4

	// Frustum returns the clipping planes of the current full view.
	//
	// Returns:
	//   - common.Frustum: the six frustum planes
	Frustum() common.Frustum

	// Uniform returns the camera state packed for GPU upload. The full view is in OpenGL clip convention;
	// the renderer remaps its depth before upload.
	//
	// Returns:
	//   - GPUCameraUniform: the uniform block
	Uniform() GPUCameraUniform

	// Controller returns the attached CameraController.
	//
	// Returns:
	//   - CameraController: the attached controller
	Controller() CameraController

	// SetController attaches a CameraController to the camera.
	//
	// Parameters:
	//   - ctrl: the controller to attach; nil is ignored
	SetController(ctrl CameraController)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with a 30 degree field of view, near 0.001, far 500 and an 800x600 viewport.
// A default CameraController is attached unless WithController supplies one.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:       &sync.Mutex{},
		fov:      30,
		fovStep:  5,
		near:     0.001,
		far:      500,
		viewport: common.NewViewport(800, 600),
	}
	for _, option := range options {
		option(c)
	}
	if c.controller == nil {
		c.controller = NewCameraController()
	}
	c.fov = mgl32.Clamp(c.fov, MinFov, MaxFov)
	return c
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = mgl32.Clamp(fov, MinFov, MaxFov)
}

func (c *cameraImpl) FovStep() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fovStep
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewport.Aspect()
}

func (c *cameraImpl) Viewport() common.Viewport {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewport
}

func (c *cameraImpl) Resize(width, height int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if width <= 0 || height <= 0 {
		return
	}
	c.viewport = common.NewViewport(width, height)
}

func (c *cameraImpl) MouseDown(x, y float32) {
	c.Controller().Press(x, y)
}

func (c *cameraImpl) MouseDrag(x, y float32, pan bool) {
	c.Controller().Drag(x, y, pan)
}

func (c *cameraImpl) MouseUp() {
	c.Controller().Release()
}

func (c *cameraImpl) MouseWheel(amount float32, fovModifier bool) {
	c.mu.Lock()
	if fovModifier {
		c.fov = mgl32.Clamp(c.fov-amount*c.fovStep, MinFov, MaxFov)
		c.mu.Unlock()
		return
	}
	ctrl := c.controller
	c.mu.Unlock()
	ctrl.Zoom(amount)
}

func (c *cameraImpl) Matrices() ViewMatrices {
	c.mu.Lock()
	defer c.mu.Unlock()
	mv := c.controller.Modelview()
	proj := c.projection()
	return ViewMatrices{
		Modelview:  mv,
		Projection: proj,
		FullView:   proj.Mul4(mv),
	}
}

func (c *cameraImpl) Modelview() mgl32.Mat4 {
	return c.Controller().Modelview()
}

func (c *cameraImpl) Projection() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projection()
}

func (c *cameraImpl) FullView() mgl32.Mat4 {
	return c.Matrices().FullView
}

func (c *cameraImpl) Frustum() common.Frustum {
	return common.ExtractFrustumFromMatrix(c.FullView())
}

func (c *cameraImpl) Uniform() GPUCameraUniform {
	m := c.Matrices()
	return GPUCameraUniform{FullView: m.FullView}
}

func (c *cameraImpl) Controller() CameraController {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.controller
}

func (c *cameraImpl) SetController(ctrl CameraController) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ctrl == nil {
		return
	}
	c.controller = ctrl
}

// projection builds the perspective matrix from the lens and viewport.
// Caller must hold the mutex.
func (c *cameraImpl) projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.fov), c.viewport.Aspect(), c.near, c.far)
}
