package shadow

import (
	"fmt"

	"github.com/Faultbox/meshlab/internal/engine/renderer"
)

// DefaultResolution is the side of the square shadow map.
const DefaultResolution = 1024

// Map is the depth-only render target the light pass draws into.
type Map struct {
	Target     renderer.TargetID
	Resolution int32
}

// NewMap acquires a square depth target. A failure here is fatal for the
// viewer.
func NewMap(backend renderer.Backend, resolution int32) (*Map, error) {
	if resolution <= 0 {
		resolution = DefaultResolution
	}
	target, err := backend.CreateDepthTarget(resolution)
	if err != nil {
		return nil, fmt.Errorf("shadow map %d: %w", resolution, err)
	}
	return &Map{Target: target, Resolution: resolution}, nil
}

// Bind directs drawing into the map and sets up front-face culling for the
// depth pass.
func (sm *Map) Bind(backend renderer.Backend) {
	backend.BindTarget(sm.Target)
	backend.Viewport(0, 0, sm.Resolution, sm.Resolution)
	backend.SetCullFace(renderer.CullFront)
	backend.Clear(depthClear)
}

// BindTexture exposes the map to the current program on unit.
func (sm *Map) BindTexture(backend renderer.Backend, unit int32) {
	backend.BindTexture(unit, sm.Target, renderer.UniformShadowMap)
}
