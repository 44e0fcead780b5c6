package picker

import "github.com/Carmen-Shannon/oxy-orbit/engine/projector"

// PickerOption is a functional option for configuring a Picker.
type PickerOption func(*pickerImpl)

// WithRadius sets the pick radius.
//
// Parameters:
//   - radius: pick radius in pixels; non-positive values fall back to DefaultRadius
//
// Returns:
//   - PickerOption: functional option to set the radius
func WithRadius(radius projector.Pixels) PickerOption {
	return func(p *pickerImpl) {
		p.radius = radius
	}
}

// WithCullBehind controls whether points behind the near plane are skipped.
// Without culling, a point behind the eye can project onto the cursor through the perspective divide.
//
// Parameters:
//   - cull: true to skip points behind the camera
//
// Returns:
//   - PickerOption: functional option to set culling
func WithCullBehind(cull bool) PickerOption {
	return func(p *pickerImpl) {
		p.cullBehind = cull
	}
}
