package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/meshlab/internal/engine/shader"
)

// Validate reports every setting that cannot be used, joined into one error.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	g := c.Graphics
	check(g.Width > 0 && g.Height > 0, "graphics: size %dx%d must be positive", g.Width, g.Height)
	check(g.ShadowResolution > 0, "graphics: shadow_resolution %d must be positive", g.ShadowResolution)
	check(g.FOVDegrees > 0 && g.FOVDegrees < 180, "graphics: fov_degrees %v out of (0,180)", g.FOVDegrees)
	check(g.Near > 0 && g.Near < g.Far, "graphics: need 0 < near (%v) < far (%v)", g.Near, g.Far)

	s := c.Scene
	check(len(s.Models) > 0, "scene: models must not be empty")
	check(s.Instances > 0, "scene: instances %d must be positive", s.Instances)
	check(s.GridColumns > 0, "scene: grid_columns %d must be positive", s.GridColumns)
	check(s.GroundHalfSize > 0, "scene: ground_half_size %v must be positive", s.GroundHalfSize)
	if _, err := shader.ParseModel(s.Shading); err != nil {
		errs = append(errs, fmt.Errorf("scene: %w", err))
	}

	in := c.Input
	check(in.DecreaseFactor > 0 && in.IncreaseFactor > 0, "input: scale factors must be positive")
	check(in.MouseSensitivity >= 0 && in.KeyboardSensitivity >= 0, "input: sensitivities must not be negative")

	return errors.Join(errs...)
}
