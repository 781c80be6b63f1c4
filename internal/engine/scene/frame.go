package scene

import (
	"github.com/Faultbox/meshlab/internal/engine/lighting"
	"github.com/Faultbox/meshlab/internal/engine/renderer"
	"github.com/Faultbox/meshlab/pkg/math"
)

// Draw is one captured draw: what to draw and where.
type Draw struct {
	Handle renderer.MeshHandle
	Model  math.Mat4
}

// Frame is an immutable capture of everything a frame needs. Input handled
// after Snapshot does not affect it.
type Frame struct {
	Instances []Draw
	Ground    Draw
	// Overlay is nil when no instance holds the gizmo.
	Overlay *Draw

	Global        math.Mat4
	CameraView    math.Mat4
	LightView     math.Mat4
	LightPosition math.Vec3
	Material      lighting.Material
}

// Snapshot captures every matrix for the coming frame.
func (s *Scene) Snapshot() Frame {
	f := Frame{
		Instances:     make([]Draw, 0, len(s.Instances)),
		Ground:        s.draw(s.Ground),
		Global:        s.Global,
		CameraView:    s.Camera.ViewMatrix(),
		LightView:     s.Light.ViewMatrix(),
		LightPosition: s.Light.Position(),
		Material:      s.Material,
	}
	for _, inst := range s.Instances {
		f.Instances = append(f.Instances, s.draw(inst))
	}
	if owner := s.Overlay.Owner(); owner != nil {
		f.Overlay = &Draw{
			Handle: s.Gizmo.Handle,
			Model:  owner.ModelMatrix(math.Identity(), true),
		}
	}
	return f
}

func (s *Scene) draw(inst *Instance) Draw {
	return Draw{
		Handle: inst.Handle,
		Model:  inst.Transform.ModelMatrix(inst.Mesh.BoundingBoxTransform(), false),
	}
}
