package renderer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

type fakeSurface struct{ w, h int }

func (s fakeSurface) SurfaceDescriptor() *wgpu.SurfaceDescriptor { return nil }
func (s fakeSurface) Width() int                                 { return s.w }
func (s fakeSurface) Height() int                                { return s.h }

type fakeBackend struct {
	configured  [][2]int
	maxVertices int
	pipelineErr error
	beginErr    error
	camera      []byte
	vertices    []byte
	draws       []uint32
	presents    int
	releases    int
}

func (f *fakeBackend) ConfigureSurface(w, h int)  { f.configured = append(f.configured, [2]int{w, h}) }
func (f *fakeBackend) SetPresentMode(PresentMode) {}
func (f *fakeBackend) WriteCamera(data []byte)    { f.camera = append([]byte(nil), data...) }
func (f *fakeBackend) WriteVertices(data []byte)  { f.vertices = append([]byte(nil), data...) }
func (f *fakeBackend) BeginFrame() error          { return f.beginErr }
func (f *fakeBackend) Draw(n uint32)              { f.draws = append(f.draws, n) }
func (f *fakeBackend) EndFrame()                  {}
func (f *fakeBackend) Present()                   { f.presents++ }
func (f *fakeBackend) Release()                   { f.releases++ }
func (f *fakeBackend) CreateLinePipeline(_ string, n int) error {
	f.maxVertices = n
	return f.pipelineErr
}

func newTestRenderer(t *testing.T, b *fakeBackend, options ...RendererBuilderOption) Renderer {
	t.Helper()
	r, err := NewRenderer(BackendTypeWGPU, fakeSurface{800, 600}, append(options, withBackend(b))...)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return r
}

func TestNewRendererConfiguresOnce(t *testing.T) {
	b := &fakeBackend{}
	newTestRenderer(t, b, WithMaxVertices(64))
	if len(b.configured) != 1 || b.configured[0] != [2]int{800, 600} {
		t.Fatalf("configure calls\nhave %v\nwant [[800 600]]", b.configured)
	}
	if b.maxVertices != 64 {
		t.Fatalf("vertex capacity\nhave %d\nwant %d", b.maxVertices, 64)
	}
}

func TestNewRendererPipelineError(t *testing.T) {
	b := &fakeBackend{pipelineErr: errors.New("boom")}
	_, err := NewRenderer(BackendTypeWGPU, fakeSurface{800, 600}, withBackend(b))
	if err == nil {
		t.Fatalf("expected error")
	}
	if b.releases != 1 {
		t.Fatalf("releases\nhave %d\nwant 1", b.releases)
	}
}

func TestDrawFrameUploadsAndDraws(t *testing.T) {
	b := &fakeBackend{}
	r := newTestRenderer(t, b)

	view := mgl32.Perspective(mgl32.DegToRad(30), 4.0/3.0, 0.1, 100).Mul4(mgl32.Translate3D(0, 0, -5))
	lines := AppendLine(nil, mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, ColorWhite)
	lines = append(lines, LineVertex{Position: mgl32.Vec3{2, 0, 0}})

	if err := r.DrawFrame(camera.GPUCameraUniform{FullView: view}, lines); err != nil {
		t.Fatalf("DrawFrame: %v", err)
	}
	if len(b.draws) != 1 || b.draws[0] != 2 {
		t.Fatalf("draws\nhave %v\nwant [2]", b.draws)
	}
	if len(b.vertices) != 2*LineVertexSize {
		t.Fatalf("uploaded bytes\nhave %d\nwant %d", len(b.vertices), 2*LineVertexSize)
	}
	uniform := camera.GPUCameraUniform{FullView: ClipCorrection.Mul4(view)}
	if !bytes.Equal(b.camera, uniform.Marshal()) {
		t.Fatalf("camera uniform does not match corrected fullview")
	}
	if r.Frames() != 1 || b.presents != 1 {
		t.Fatalf("frames\nhave %d (presents %d)\nwant 1", r.Frames(), b.presents)
	}
}

func TestDrawFrameTruncatesToCapacity(t *testing.T) {
	b := &fakeBackend{}
	r := newTestRenderer(t, b, WithMaxVertices(3))

	var lines []LineVertex
	for range 4 {
		lines = AppendLine(lines, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, ColorRed)
	}
	if err := r.DrawFrame(camera.GPUCameraUniform{FullView: mgl32.Ident4()}, lines); err != nil {
		t.Fatalf("DrawFrame: %v", err)
	}
	if b.draws[0] != 2 {
		t.Fatalf("drawn vertices\nhave %d\nwant 2", b.draws[0])
	}
}

func TestDrawFrameEmptySkipsDraw(t *testing.T) {
	b := &fakeBackend{}
	r := newTestRenderer(t, b)
	if err := r.DrawFrame(camera.GPUCameraUniform{FullView: mgl32.Ident4()}, nil); err != nil {
		t.Fatalf("DrawFrame: %v", err)
	}
	if len(b.draws) != 0 || b.presents != 1 {
		t.Fatalf("draws %v presents %d\nwant no draws and one present", b.draws, b.presents)
	}
}

func TestDrawFrameBeginError(t *testing.T) {
	b := &fakeBackend{beginErr: errors.New("surface lost")}
	r := newTestRenderer(t, b)
	if err := r.DrawFrame(camera.GPUCameraUniform{FullView: mgl32.Ident4()}, nil); !errors.Is(err, b.beginErr) {
		t.Fatalf("error\nhave %v\nwant %v", err, b.beginErr)
	}
	if r.Frames() != 0 {
		t.Fatalf("frames\nhave %d\nwant 0", r.Frames())
	}
}

func TestResizeIgnoresInvalidAndUnchanged(t *testing.T) {
	b := &fakeBackend{}
	r := newTestRenderer(t, b)
	r.Resize(0, 0)
	r.Resize(800, 600)
	r.Resize(400, 300)
	if len(b.configured) != 2 || b.configured[1] != [2]int{400, 300} {
		t.Fatalf("configure calls\nhave %v\nwant [[800 600] [400 300]]", b.configured)
	}
}

func TestReleaseOnce(t *testing.T) {
	b := &fakeBackend{}
	r := newTestRenderer(t, b)
	r.Release()
	r.Release()
	if b.releases != 1 {
		t.Fatalf("releases\nhave %d\nwant 1", b.releases)
	}
	if err := r.DrawFrame(camera.GPUCameraUniform{FullView: mgl32.Ident4()}, nil); !errors.Is(err, ErrReleased) {
		t.Fatalf("error\nhave %v\nwant %v", err, ErrReleased)
	}
	r.Resize(100, 100)
	if len(b.configured) != 1 {
		t.Fatalf("resize after release reconfigured the surface")
	}
}
