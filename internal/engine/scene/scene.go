// Package scene holds the shapes, observers and shared transforms that make
// up the viewer's world, and captures them once per frame for rendering.
package scene

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/meshlab/internal/engine/camera"
	"github.com/Faultbox/meshlab/internal/engine/lighting"
	"github.com/Faultbox/meshlab/internal/engine/mesh"
	"github.com/Faultbox/meshlab/internal/engine/renderer"
	"github.com/Faultbox/meshlab/internal/engine/transform"
	"github.com/Faultbox/meshlab/internal/logger"
	"github.com/Faultbox/meshlab/pkg/math"
)

// Config contains scene layout options.
type Config struct {
	Count          int
	Columns        int
	Spacing        math.Vec2
	GroundY        float32
	GroundHalfSize float32
	CameraPosition math.Vec3
	LightPosition  math.Vec3
	Material       lighting.Material
}

// DefaultConfig returns the 3x3 grid layout.
func DefaultConfig() Config {
	return Config{
		Count:          9,
		Columns:        3,
		Spacing:        math.Vec2{X: 3, Y: 2.5},
		GroundY:        -3.5,
		GroundHalfSize: 5,
		CameraPosition: camera.DefaultCameraPosition,
		LightPosition:  camera.DefaultLightPosition,
		Material:       lighting.DefaultMaterial(),
	}
}

// Instance is one drawable shape: shared mesh data plus its own transform.
type Instance struct {
	ID        uuid.UUID
	Mesh      *mesh.Mesh
	Transform *transform.Transform
	Handle    renderer.MeshHandle
}

// Scene is the mutable world state. It is only touched from the frame loop.
type Scene struct {
	Instances []*Instance
	Ground    *Instance
	Gizmo     *Instance
	Overlay   *transform.Overlay

	Global   math.Mat4
	Camera   *camera.Observer
	Light    *camera.Observer
	Material lighting.Material

	backend renderer.Backend
	handles map[*mesh.Mesh]renderer.MeshHandle
	log     *zap.Logger
}

// New uploads the ground, the gizmo and the given meshes and lays the
// meshes out on a grid.
func New(backend renderer.Backend, meshes []*mesh.Mesh, cfg Config) (*Scene, error) {
	if len(meshes) == 0 {
		return nil, fmt.Errorf("scene: no meshes")
	}

	s := &Scene{
		Global:   math.Identity(),
		Camera:   camera.NewCamera(cfg.CameraPosition),
		Light:    camera.NewLight(cfg.LightPosition),
		Material: cfg.Material,
		Overlay:  transform.NewOverlay("axes"),
		backend:  backend,
		handles:  make(map[*mesh.Mesh]renderer.MeshHandle),
		log:      logger.Named("scene"),
	}

	var err error
	if s.Ground, err = s.NewInstance(mesh.GroundPlane(cfg.GroundHalfSize)); err != nil {
		return nil, err
	}
	s.Ground.Transform.Translate(math.V3(0, cfg.GroundY, 0))

	if s.Gizmo, err = s.NewInstance(mesh.AxisGizmo()); err != nil {
		return nil, err
	}

	for i, p := range GridLayout(cfg.Count, cfg.Columns, cfg.Spacing) {
		inst, err := s.NewInstance(meshes[GridMesh(i, cfg.Columns, len(meshes))])
		if err != nil {
			return nil, err
		}
		inst.Transform.Translate(math.V3(p.X, p.Y, 0))
		s.Instances = append(s.Instances, inst)
	}

	s.log.Info("scene ready",
		zap.Int("instances", len(s.Instances)),
		zap.Int("meshes", len(s.handles)),
	)
	return s, nil
}

// NewInstance wraps m with an identity transform. Each mesh is uploaded
// once and its handle shared by every instance that uses it.
func (s *Scene) NewInstance(m *mesh.Mesh) (*Instance, error) {
	h, ok := s.handles[m]
	if !ok {
		var err error
		h, err = s.backend.UploadMesh(m)
		if err != nil {
			return nil, fmt.Errorf("scene: upload %s: %w", m.Name, err)
		}
		s.handles[m] = h
	}
	return &Instance{
		ID:        uuid.New(),
		Mesh:      m,
		Transform: transform.New(),
		Handle:    h,
	}, nil
}

// Len returns the number of selectable instances.
func (s *Scene) Len() int {
	return len(s.Instances)
}

// Instance returns the instance at index, or nil when out of range.
func (s *Scene) Instance(index int) *Instance {
	if index < 0 || index >= len(s.Instances) {
		return nil
	}
	return s.Instances[index]
}

// Replace swaps the instance at index for inst and returns the old one.
// Transform state is not touched here.
func (s *Scene) Replace(index int, inst *Instance) (*Instance, error) {
	if index < 0 || index >= len(s.Instances) {
		return nil, fmt.Errorf("scene: replace index %d out of range [0,%d)", index, len(s.Instances))
	}
	old := s.Instances[index]
	s.Instances[index] = inst
	s.log.Info("instance replaced",
		zap.Int("index", index),
		zap.Stringer("old", old.ID),
		zap.Stringer("new", inst.ID),
		zap.String("mesh", inst.Mesh.Name),
	)
	s.release(old.Mesh)
	return old, nil
}

// release frees m's GPU copy once no instance refers to it.
func (s *Scene) release(m *mesh.Mesh) {
	if m == s.Ground.Mesh || m == s.Gizmo.Mesh {
		return
	}
	for _, inst := range s.Instances {
		if inst.Mesh == m {
			return
		}
	}
	if h, ok := s.handles[m]; ok {
		s.backend.DeleteMesh(h)
		delete(s.handles, m)
	}
}

// FoldGlobal composes a fresh elementary transform onto the shared global
// transform: G = e · G.
func (s *Scene) FoldGlobal(e math.Mat4) {
	s.Global = e.Mul(s.Global)
}

// GridLayout returns count cell centres in row-major order from the top
// left, centred on the origin.
func GridLayout(count, columns int, spacing math.Vec2) []math.Vec2 {
	if count <= 0 || columns <= 0 {
		return nil
	}
	rows := (count + columns - 1) / columns
	out := make([]math.Vec2, 0, count)
	for i := 0; i < count; i++ {
		row, col := i/columns, i%columns
		out = append(out, math.Vec2{
			X: (float32(col) - float32(columns-1)/2) * spacing.X,
			Y: (float32(rows-1)/2 - float32(row)) * spacing.Y,
		})
	}
	return out
}

// GridMesh picks which of n meshes goes in cell i. Each row is the previous
// one shifted right by one, so no row or column repeats a mesh when
// columns == n.
func GridMesh(i, columns, n int) int {
	if columns <= 0 || n <= 0 {
		return 0
	}
	row, col := i/columns, i%columns
	return ((col-row)%n + n) % n
}
