// Package renderer defines the graphics backend the scene is drawn through
// and provides an OpenGL implementation plus a recording one for tests.
package renderer

import (
	"github.com/Faultbox/meshlab/internal/engine/mesh"
	"github.com/Faultbox/meshlab/pkg/math"
)

// Attribute names every program is linked with.
const (
	AttribCoords = "a_coords"
	AttribColor  = "a_color"
	AttribNormal = "a_normal"
)

// Attribute locations bound before linking, so one VAO works with any program.
const (
	LocCoords uint32 = 0
	LocColor  uint32 = 1
	LocNormal uint32 = 2
)

// Uniform names resolved on every program.
const (
	UniformProjection      = "u_projection"
	UniformView            = "u_view"
	UniformTransform       = "u_transform"
	UniformNormal          = "u_normal"
	UniformLightPosition   = "u_lightPosition"
	UniformAmbientProduct  = "u_ambientProduct"
	UniformDiffuseProduct  = "u_diffuseProduct"
	UniformSpecularProduct = "u_specularProduct"
	UniformShininess       = "u_shininess"
	UniformLightViewProj   = "u_lightViewProj"
	UniformShadowMap       = "u_shadowMap"
)

// ProgramID identifies a linked shader program.
type ProgramID uint32

// MeshHandle identifies uploaded geometry.
type MeshHandle uint32

// TargetID identifies a render target. DefaultTarget is the window.
type TargetID uint32

// DefaultTarget is the on-screen framebuffer.
const DefaultTarget TargetID = 0

// Face selects which polygon faces are culled.
type Face int

const (
	CullBack Face = iota
	CullFront
)

func (f Face) String() string {
	if f == CullFront {
		return "front"
	}
	return "back"
}

// Color is an RGBA clear color.
type Color [4]float32

// Backend is everything the scene needs from a graphics API. Uniform
// setters apply to the program selected by the last UseProgram call.
type Backend interface {
	CreateProgram(name, vertexSrc, fragmentSrc string) (ProgramID, error)
	UploadMesh(m *mesh.Mesh) (MeshHandle, error)
	CreateDepthTarget(size int32) (TargetID, error)

	BindTarget(target TargetID)
	Viewport(x, y, width, height int32)
	Clear(c Color)
	SetCullFace(face Face)

	UseProgram(p ProgramID)
	SetMat4(name string, m math.Mat4)
	SetMat3(name string, m math.Mat3)
	SetVec3(name string, v math.Vec3)
	SetFloat(name string, f float32)
	BindTexture(unit int32, target TargetID, sampler string)

	DrawIndexed(h MeshHandle)

	DeleteMesh(h MeshHandle)
	Destroy()
}
