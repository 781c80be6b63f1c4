// Package shadow draws a frame in two passes: a depth pass from the light
// into a shadow map, then a lit camera pass that samples it.
package shadow

import (
	"fmt"

	"github.com/Faultbox/meshlab/internal/engine/lighting"
	"github.com/Faultbox/meshlab/internal/engine/renderer"
	"github.com/Faultbox/meshlab/internal/engine/scene"
	"github.com/Faultbox/meshlab/internal/engine/shader"
	"github.com/Faultbox/meshlab/pkg/math"
)

var (
	depthClear    = renderer.Color{1, 1, 1, 1}
	shadowedClear = renderer.Color{0, 0, 0, 1}
	plainClear    = renderer.Color{38.0 / 255, 12.0 / 255, 16.0 / 255, 1}
)

// RenderConfig selects how the next frame is drawn.
type RenderConfig struct {
	Shadows    bool
	Model      shader.Model
	Width      int32
	Height     int32
	FOVDegrees float32
	Near       float32
	Far        float32
}

// DefaultRenderConfig returns a 1280x720 config with shadows off.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Model:      shader.GouraudDiffuse,
		Width:      1280,
		Height:     720,
		FOVDegrees: 45,
		Near:       0.1,
		Far:        100,
	}
}

// Renderer issues the draw calls for a captured frame.
type Renderer struct {
	backend   renderer.Backend
	programs  *shader.Catalogue
	shadowMap *Map
}

// NewRenderer acquires the shadow map and returns a renderer bound to
// backend.
func NewRenderer(backend renderer.Backend, programs *shader.Catalogue, resolution int32) (*Renderer, error) {
	sm, err := NewMap(backend, resolution)
	if err != nil {
		return nil, err
	}
	return &Renderer{backend: backend, programs: programs, shadowMap: sm}, nil
}

// ShadowMap returns the depth target.
func (r *Renderer) ShadowMap() *Map {
	return r.shadowMap
}

// Frame draws f. The depth pass runs only when cfg.Shadows is set.
func (r *Renderer) Frame(f scene.Frame, cfg RenderConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("shadow: invalid viewport %dx%d", cfg.Width, cfg.Height)
	}

	lightVP := LightViewProjection(LightProjection(), f.LightView, f.Global)
	if cfg.Shadows {
		r.depthPass(f)
	}
	r.cameraPass(f, cfg, lightVP)
	return nil
}

func (r *Renderer) depthPass(f scene.Frame) {
	b := r.backend
	r.shadowMap.Bind(b)

	b.UseProgram(r.programs.DepthProgram())
	b.SetMat4(renderer.UniformProjection, LightProjection())
	view := f.LightView.Mul(f.Global)
	b.SetMat4(renderer.UniformView, view)

	for _, d := range f.Instances {
		r.draw(d, view)
	}
	r.draw(f.Ground, view)
}

func (r *Renderer) cameraPass(f scene.Frame, cfg RenderConfig, lightVP math.Mat4) {
	b := r.backend
	b.BindTarget(renderer.DefaultTarget)
	b.Viewport(0, 0, cfg.Width, cfg.Height)
	b.SetCullFace(renderer.CullBack)
	if cfg.Shadows {
		b.Clear(shadowedClear)
	} else {
		b.Clear(plainClear)
	}

	b.UseProgram(r.programs.Program(cfg.Model, cfg.Shadows))
	b.SetMat4(renderer.UniformProjection, CameraProjection(cfg.FOVDegrees, cfg.Near, cfg.Far, cfg.Width, cfg.Height))
	view := f.CameraView.Mul(f.Global)
	b.SetMat4(renderer.UniformView, view)

	b.SetVec3(renderer.UniformLightPosition, lighting.EyeSpace(f.LightPosition, f.CameraView))
	b.SetVec3(renderer.UniformAmbientProduct, f.Material.Ambient)
	b.SetVec3(renderer.UniformDiffuseProduct, f.Material.Diffuse)
	b.SetVec3(renderer.UniformSpecularProduct, f.Material.Specular)
	b.SetFloat(renderer.UniformShininess, f.Material.Shininess)

	if cfg.Shadows {
		b.SetMat4(renderer.UniformLightViewProj, lightVP)
		r.shadowMap.BindTexture(b, 0)
	}

	for _, d := range f.Instances {
		r.draw(d, view)
	}
	r.draw(f.Ground, view)

	if f.Overlay != nil {
		r.draw(*f.Overlay, view)
	}
}

func (r *Renderer) draw(d scene.Draw, view math.Mat4) {
	r.backend.SetMat4(renderer.UniformTransform, d.Model)
	r.backend.SetMat3(renderer.UniformNormal, view.Mul(d.Model).NormalMatrix())
	r.backend.DrawIndexed(d.Handle)
}
