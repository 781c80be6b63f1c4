package config

import (
	"github.com/Faultbox/meshlab/internal/engine/interaction"
	"github.com/Faultbox/meshlab/internal/engine/lighting"
	"github.com/Faultbox/meshlab/internal/engine/scene"
	"github.com/Faultbox/meshlab/internal/engine/shader"
	"github.com/Faultbox/meshlab/internal/engine/shadow"
	"github.com/Faultbox/meshlab/internal/engine/window"
	"github.com/Faultbox/meshlab/pkg/math"
)

// WindowConfig returns the window settings.
func (c *Config) WindowConfig(title string) window.Config {
	return window.Config{
		Title:      title,
		Width:      int32(c.Graphics.Width),
		Height:     int32(c.Graphics.Height),
		Fullscreen: c.Graphics.Fullscreen,
		VSync:      c.Graphics.VSync,
	}
}

// SceneConfig returns the grid layout and observer placement.
func (c *Config) SceneConfig() scene.Config {
	l := c.Lighting
	return scene.Config{
		Count:          c.Scene.Instances,
		Columns:        c.Scene.GridColumns,
		Spacing:        math.Vec2{X: c.Scene.Spacing[0], Y: c.Scene.Spacing[1]},
		GroundY:        c.Scene.GroundY,
		GroundHalfSize: c.Scene.GroundHalfSize,
		CameraPosition: vec3(c.Scene.Camera),
		LightPosition:  vec3(l.Position),
		Material:       lighting.Uniform(l.Ambient, l.Diffuse, l.Specular, l.Shininess),
	}
}

// InputSettings returns the interaction step sizes.
func (c *Config) InputSettings() interaction.Settings {
	in := c.Input
	return interaction.Settings{
		KeyboardSensitivity: in.KeyboardSensitivity,
		TranslationStep:     in.TranslationStep,
		RotationDegrees:     in.RotationDegrees,
		DecreaseFactor:      in.DecreaseFactor,
		IncreaseFactor:      in.IncreaseFactor,
		MouseSensitivity:    in.MouseSensitivity,
	}
}

// RenderConfig returns the initial per-frame render settings. The viewport
// size is replaced each frame with the drawable size.
func (c *Config) RenderConfig() shadow.RenderConfig {
	// Validate has already rejected unknown names.
	model, _ := shader.ParseModel(c.Scene.Shading)
	return shadow.RenderConfig{
		Shadows:    c.Scene.Shadows,
		Model:      model,
		Width:      int32(c.Graphics.Width),
		Height:     int32(c.Graphics.Height),
		FOVDegrees: c.Graphics.FOVDegrees,
		Near:       c.Graphics.Near,
		Far:        c.Graphics.Far,
	}
}

func vec3(v [3]float32) math.Vec3 {
	return math.V3(v[0], v[1], v[2])
}
