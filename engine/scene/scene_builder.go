package scene

import (
	"github.com/Carmen-Shannon/oxy-orbit/engine/curve"
	"github.com/Carmen-Shannon/oxy-orbit/engine/game_object"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the scene produces geometry.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithObjects adds initial objects to the scene.
// Objects without IDs will be assigned new IDs.
//
// Parameters:
//   - objects: the objects to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithObjects(objects ...game_object.GameObject) SceneBuilderOption {
	return func(s *scene) {
		for _, obj := range objects {
			s.add(obj)
		}
	}
}

// WithCurves adds initial curves and registers them with the interaction context.
//
// Parameters:
//   - curves: the curves to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCurves(curves ...*curve.Bezier) SceneBuilderOption {
	return func(s *scene) {
		for _, c := range curves {
			s.curves = append(s.curves, c)
			s.ctx.AddStore(c)
		}
	}
}

// WithStyle sets the colors and marker size.
//
// Parameters:
//   - style: the style to use
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithStyle(style Style) SceneBuilderOption {
	return func(s *scene) {
		s.style = style
	}
}

// WithControlMesh sets whether curve control polygons and point markers are drawn.
//
// Parameters:
//   - show: true to draw the control mesh (default)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithControlMesh(show bool) SceneBuilderOption {
	return func(s *scene) {
		s.showControlMesh = show
	}
}

// WithTessellator sets the tessellator used for curves. One is created when not given.
//
// Parameters:
//   - t: the tessellator
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithTessellator(t curve.Tessellator) SceneBuilderOption {
	return func(s *scene) {
		s.tessellator = t
	}
}
