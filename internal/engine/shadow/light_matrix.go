package shadow

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/meshlab/pkg/math"
)

// Light frustum used for the depth pass.
const (
	LightFOVDegrees = 45
	LightNear       = 0.1
	LightFar        = 100
)

// LightProjection is the square perspective frustum the light renders the
// shadow map with.
func LightProjection() math.Mat4 {
	return math.Perspective(radians(LightFOVDegrees), 1, LightNear, LightFar)
}

// CameraProjection is the on-screen perspective for a width x height viewport.
func CameraProjection(fovDegrees, near, far float32, width, height int32) math.Mat4 {
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	return math.Perspective(radians(fovDegrees), aspect, near, far)
}

// LightViewProjection maps world points (before the global transform) into
// the light's clip space: proj · view · global.
func LightViewProjection(proj, lightView, global math.Mat4) math.Mat4 {
	return proj.Mul(lightView).Mul(global)
}

func radians(deg float32) float32 {
	return deg * math32.Pi / 180
}
