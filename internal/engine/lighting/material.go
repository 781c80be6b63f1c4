// Package lighting holds the single point light's reflection terms and the
// helpers that move the light into eye space.
package lighting

import (
	"github.com/Faultbox/meshlab/pkg/math"
)

// Material holds the light-times-surface products fed to every lit program.
type Material struct {
	Ambient   math.Vec3
	Diffuse   math.Vec3
	Specular  math.Vec3
	Shininess float32
}

// DefaultMaterial returns the grey products used for all shapes.
func DefaultMaterial() Material {
	return Uniform(0.4, 0.7, 1.0, 42)
}

// Uniform builds a Material whose products are equal on every channel.
func Uniform(ambient, diffuse, specular, shininess float32) Material {
	return Material{
		Ambient:   math.V3(ambient, ambient, ambient),
		Diffuse:   math.V3(diffuse, diffuse, diffuse),
		Specular:  math.V3(specular, specular, specular),
		Shininess: shininess,
	}
}

// EyeSpace transforms a world light position by the camera view, giving the
// position the lit programs compare against eye-space vertices.
func EyeSpace(position math.Vec3, view math.Mat4) math.Vec3 {
	return view.TransformVec3(position)
}
