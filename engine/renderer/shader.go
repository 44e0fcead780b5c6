package renderer

import (
	_ "embed"

	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
)

//go:embed assets/line.wgsl
var lineShaderBody string

// LineShaderSource is the complete WGSL module for the line pipeline, with the camera uniform struct prepended.
var LineShaderSource = camera.GPUCameraUniformSource + "\n" + lineShaderBody

const (
	lineVertexEntryPoint   = "vs_main"
	lineFragmentEntryPoint = "fs_main"
)

// ClipCorrection remaps OpenGL clip depth [-w, w] produced by mgl32.Perspective to the WebGPU range [0, w].
// x and y are unchanged.
var ClipCorrection = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// clipCorrected returns the camera uniform with its full view remapped to WebGPU clip depth.
func clipCorrected(u camera.GPUCameraUniform) camera.GPUCameraUniform {
	u.FullView = ClipCorrection.Mul4(u.FullView)
	return u
}
