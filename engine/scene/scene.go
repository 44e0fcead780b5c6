// Package scene collects the drawable content of an interactive view (line-drawn game objects and editable curves)
// and builds each frame's line geometry for the renderer.
package scene

import (
	"slices"
	"sync"

	"github.com/Carmen-Shannon/oxy-orbit/engine/curve"
	"github.com/Carmen-Shannon/oxy-orbit/engine/game_object"
	"github.com/Carmen-Shannon/oxy-orbit/engine/interaction"
	"github.com/Carmen-Shannon/oxy-orbit/engine/renderer"
	"github.com/go-gl/mathgl/mgl32"
)

// Style holds the colors and marker size used when building frame geometry.
type Style struct {
	Shape        mgl32.Vec4
	Curve        mgl32.Vec4
	ControlMesh  mgl32.Vec4
	ControlPoint mgl32.Vec4
	Selected     mgl32.Vec4
	// MarkerSize is the half length of a control-point marker arm in world units.
	MarkerSize float32
}

// DefaultStyle matches the colors of the curve editing demo.
var DefaultStyle = Style{
	Shape:        renderer.ColorWhite,
	Curve:        mgl32.Vec4{0.7, 0.2, 0.5, 1},
	ControlMesh:  renderer.ColorYellow,
	ControlPoint: mgl32.Vec4{0, 0.4, 0, 1},
	Selected:     renderer.ColorRed,
	MarkerSize:   0.03,
}

// Scene defines a set of game objects and curves sharing one interaction context.
// Curves added to the scene are registered with the context as editable point stores.
type Scene interface {
	// Name returns the scene name.
	Name() string

	// SetName sets the scene name.
	SetName(name string)

	// Active returns whether the scene produces geometry.
	Active() bool

	// SetActive sets whether the scene produces geometry.
	SetActive(active bool)

	// Context returns the interaction context the scene's curves are registered with.
	//
	// Returns:
	//   - interaction.Context: the interaction context
	Context() interaction.Context

	// Add registers a game object. Objects with a zero ID are assigned the next free ID.
	//
	// Parameters:
	//   - obj: the object to add
	//
	// Returns:
	//   - uint64: the object's ID
	Add(obj game_object.GameObject) uint64

	// Get retrieves an object by ID, or nil if it is not in the scene.
	//
	// Parameters:
	//   - id: the object ID
	//
	// Returns:
	//   - game_object.GameObject: the object, or nil
	Get(id uint64) game_object.GameObject

	// Remove removes the object with the given ID.
	//
	// Parameters:
	//   - id: the object ID
	Remove(id uint64)

	// Count returns the number of registered objects.
	Count() int

	// AddCurve adds a curve and makes its control points pickable.
	//
	// Parameters:
	//   - c: the curve to add
	AddCurve(c *curve.Bezier)

	// RemoveCurve removes a curve, ending any drag on its control points.
	//
	// Parameters:
	//   - c: the curve to remove
	RemoveCurve(c *curve.Bezier)

	// Curves returns a copy of the scene's curves in insertion order.
	Curves() []*curve.Bezier

	// Clear removes every object and curve.
	Clear()

	// Lines appends the frame's line geometry to dst: enabled objects in ID order, then each curve with its
	// control mesh and point markers, then a marker on the selected point. Markers outside the camera frustum are
	// skipped. An inactive scene appends nothing.
	//
	// Parameters:
	//   - dst: the slice to append to (reused between frames)
	//
	// Returns:
	//   - []renderer.LineVertex: dst with this frame's vertices appended
	Lines(dst []renderer.LineVertex) []renderer.LineVertex

	// Release stops the scene's tessellator. The scene still builds geometry afterwards, serially.
	Release()
}

type scene struct {
	mu *sync.RWMutex

	name   string
	active bool

	ctx      interaction.Context
	registry map[uint64]game_object.GameObject
	nextID   uint64
	curves   []*curve.Bezier

	tessellator     curve.Tessellator
	style           Style
	showControlMesh bool
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates a new active Scene bound to the given interaction context.
//
// Parameters:
//   - name: the name of the scene
//   - ctx: the interaction context (a default one is created when nil)
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, ctx interaction.Context, options ...SceneBuilderOption) Scene {
	if ctx == nil {
		ctx = interaction.NewContext()
	}
	s := &scene{
		mu:              &sync.RWMutex{},
		name:            name,
		active:          true,
		ctx:             ctx,
		registry:        make(map[uint64]game_object.GameObject),
		nextID:          1,
		style:           DefaultStyle,
		showControlMesh: true,
	}

	for _, option := range options {
		option(s)
	}

	if s.tessellator == nil {
		s.tessellator = curve.NewTessellator()
	}
	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Context() interaction.Context {
	return s.ctx
}

func (s *scene) Add(obj game_object.GameObject) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(obj)
}

// add registers obj, assigning an ID if needed. Caller must hold the mutex.
func (s *scene) add(obj game_object.GameObject) uint64 {
	if obj.ID() == 0 {
		for s.registry[s.nextID] != nil {
			s.nextID++
		}
		obj.SetID(s.nextID)
		s.nextID++
	}
	s.registry[obj.ID()] = obj
	return obj.ID()
}

func (s *scene) Get(id uint64) game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry[id]
}

func (s *scene) Remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.registry, id)
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.registry)
}

func (s *scene) AddCurve(c *curve.Bezier) {
	s.mu.Lock()
	s.curves = append(s.curves, c)
	s.mu.Unlock()
	s.ctx.AddStore(c)
}

func (s *scene) RemoveCurve(c *curve.Bezier) {
	s.mu.Lock()
	s.curves = slices.DeleteFunc(s.curves, func(x *curve.Bezier) bool { return x == c })
	s.mu.Unlock()
	s.ctx.RemoveStore(c)
}

func (s *scene) Curves() []*curve.Bezier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.curves)
}

func (s *scene) Clear() {
	s.mu.Lock()
	curves := s.curves
	s.curves = nil
	s.registry = make(map[uint64]game_object.GameObject)
	s.mu.Unlock()

	for _, c := range curves {
		s.ctx.RemoveStore(c)
	}
}

func (s *scene) Lines(dst []renderer.LineVertex) []renderer.LineVertex {
	s.mu.RLock()
	if !s.active {
		s.mu.RUnlock()
		return dst
	}
	ids := make([]uint64, 0, len(s.registry))
	for id := range s.registry {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	objects := make([]game_object.GameObject, 0, len(ids))
	for _, id := range ids {
		objects = append(objects, s.registry[id])
	}
	curves := slices.Clone(s.curves)
	style := s.style
	showMesh := s.showControlMesh
	s.mu.RUnlock()

	for _, obj := range objects {
		if obj.Enabled() {
			dst = renderer.AppendSegments(dst, obj.WorldLines(), style.Shape)
		}
	}

	if len(curves) > 0 {
		dst = renderer.AppendSegments(dst, s.tessellator.Segments(curves), style.Curve)
	}
	frustum := s.ctx.Camera().Frustum()
	if showMesh {
		for _, c := range curves {
			dst = renderer.AppendPolyline(dst, c.P[:], style.ControlMesh)
			for _, p := range c.P {
				if frustum.ContainsPoint(p) {
					dst = renderer.AppendCross(dst, p, style.MarkerSize, style.ControlPoint)
				}
			}
		}
	}

	if p, ok := s.ctx.Selected(); ok && frustum.ContainsPoint(p) {
		dst = renderer.AppendCross(dst, p, 2*style.MarkerSize, style.Selected)
	}
	return dst
}

func (s *scene) Release() {
	s.tessellator.Stop()
}
