// Package shader holds the embedded GLSL sources and compiles them into the
// program set used by the shadow renderer.
package shader

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/meshlab/internal/engine/renderer"
	"github.com/Faultbox/meshlab/internal/logger"
)

// Catalogue is the compiled program for every model and shadow variant.
type Catalogue struct {
	depth    renderer.ProgramID
	programs [modelCount][2]renderer.ProgramID
}

// variantName is the program name used in logs and errors.
func variantName(m Model, shadow bool) string {
	if shadow && m != Depth {
		return m.String() + "+shadow"
	}
	return m.String()
}

// LoadCatalogue compiles every program. The first compile or link failure
// is returned and nothing after it is attempted.
func LoadCatalogue(backend renderer.Backend) (*Catalogue, error) {
	log := logger.Named("shader")
	c := &Catalogue{}

	vert, frag := Depth.sources(false)
	id, err := backend.CreateProgram(variantName(Depth, false), vert, frag)
	if err != nil {
		return nil, fmt.Errorf("load shader catalogue: %w", err)
	}
	c.depth = id
	c.programs[Depth] = [2]renderer.ProgramID{id, id}

	for _, m := range Models()[1:] {
		for i, shadow := range []bool{false, true} {
			vert, frag := m.sources(shadow)
			id, err := backend.CreateProgram(variantName(m, shadow), vert, frag)
			if err != nil {
				return nil, fmt.Errorf("load shader catalogue: %w", err)
			}
			c.programs[m][i] = id
		}
	}

	log.Info("shader catalogue ready", zap.Int("models", int(modelCount)))
	return c, nil
}

// DepthProgram is the program for the shadow-map pass.
func (c *Catalogue) DepthProgram() renderer.ProgramID {
	return c.depth
}

// Program returns the camera-pass program for m, the shadow variant when
// shadow is set. Unknown models fall back to Depth.
func (c *Catalogue) Program(m Model, shadow bool) renderer.ProgramID {
	if m < 0 || m >= modelCount {
		m = Depth
	}
	if shadow {
		return c.programs[m][1]
	}
	return c.programs[m][0]
}
