package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/meshlab/internal/engine/mesh"
	"github.com/Faultbox/meshlab/internal/engine/renderer"
	"github.com/Faultbox/meshlab/pkg/math"
)

const triangle = "v 0 0 0\nv 1 0 0\nv 0 1 1\nf 1 2 3\n"

func testMeshes(t *testing.T, names ...string) []*mesh.Mesh {
	t.Helper()
	var out []*mesh.Mesh
	for _, n := range names {
		m, err := mesh.Build(triangle)
		require.NoError(t, err)
		m.Name = n
		out = append(out, m)
	}
	return out
}

func newTestScene(t *testing.T) (*Scene, *renderer.Recorder) {
	t.Helper()
	rec := renderer.NewRecorder()
	s, err := New(rec, testMeshes(t, "teddy", "teapot", "sphere"), DefaultConfig())
	require.NoError(t, err)
	return s, rec
}

func TestGridLayout(t *testing.T) {
	got := GridLayout(9, 3, math.Vec2{X: 3, Y: 2.5})
	want := []math.Vec2{
		{X: -3, Y: 2.5}, {X: 0, Y: 2.5}, {X: 3, Y: 2.5},
		{X: -3, Y: 0}, {X: 0, Y: 0}, {X: 3, Y: 0},
		{X: -3, Y: -2.5}, {X: 0, Y: -2.5}, {X: 3, Y: -2.5},
	}
	assert.Equal(t, want, got)
	assert.Nil(t, GridLayout(0, 3, math.Vec2{}))
}

func TestGridMeshShiftsEachRow(t *testing.T) {
	var got []int
	for i := 0; i < 9; i++ {
		got = append(got, GridMesh(i, 3, 3))
	}
	assert.Equal(t, []int{0, 1, 2, 2, 0, 1, 1, 2, 0}, got)
}

func TestNewUploadsEachMeshOnce(t *testing.T) {
	s, rec := newTestScene(t)

	assert.Equal(t, 9, s.Len())
	// ground + gizmo + three distinct meshes
	assert.Len(t, rec.Filter(renderer.OpUploadMesh), 5)
	assert.Equal(t, s.Instances[0].Handle, s.Instances[4].Handle)
	assert.Equal(t, "sphere", s.Instances[3].Mesh.Name)
	assert.NotEqual(t, s.Instances[0].ID, s.Instances[4].ID)
}

func TestNewWithoutMeshes(t *testing.T) {
	_, err := New(renderer.NewRecorder(), nil, DefaultConfig())
	assert.Error(t, err)
}

func TestFoldGlobalLeftMultiplies(t *testing.T) {
	s, _ := newTestScene(t)
	t1 := math.Translate(1, 0, 0)
	r := math.RotateZ(1.5707964)

	s.FoldGlobal(t1)
	s.FoldGlobal(r)

	assert.True(t, s.Global.ApproxEqual(r.Mul(t1), 1e-6))
}

func TestSnapshotIsFrozen(t *testing.T) {
	s, _ := newTestScene(t)

	f := s.Snapshot()
	before := f.Instances[1].Model

	s.Instances[1].Transform.Translate(math.V3(1, 0, 0))
	s.Camera.Translate(0, 1, 0)

	assert.Equal(t, before, f.Instances[1].Model)
	assert.NotEqual(t, f.CameraView, s.Camera.ViewMatrix())
	assert.Nil(t, f.Overlay)
}

func TestSnapshotGroundAndOverlay(t *testing.T) {
	s, _ := newTestScene(t)
	s.Instances[2].Transform.AttachOverlay(s.Overlay)

	f := s.Snapshot()
	require.NotNil(t, f.Overlay)
	assert.Equal(t, s.Gizmo.Handle, f.Overlay.Handle)

	// gizmo sits at the owner's grid cell, unaffected by the bbox
	origin := f.Overlay.Model.TransformVec3(math.V3(0, 0, 0))
	assert.True(t, origin.ApproxEqual(math.V3(3, 2.5, 0), 1e-5))

	ground := f.Ground.Model.TransformVec3(math.V3(0, 0, 0))
	assert.True(t, ground.ApproxEqual(math.V3(0, -3.5, 0), 1e-5))
}

func TestReplaceReleasesUnusedMesh(t *testing.T) {
	rec := renderer.NewRecorder()
	meshes := testMeshes(t, "a", "b")
	s, err := New(rec, meshes, Config{
		Count: 2, Columns: 2, Spacing: math.Vec2{X: 3, Y: 2.5},
		GroundHalfSize: 5, CameraPosition: math.V3(0, 0, 10), LightPosition: math.V3(0, 10, 0),
	})
	require.NoError(t, err)

	repl := testMeshes(t, "c")[0]
	inst, err := s.NewInstance(repl)
	require.NoError(t, err)

	old, err := s.Replace(1, inst)
	require.NoError(t, err)
	assert.Equal(t, "b", old.Mesh.Name)
	assert.Equal(t, inst, s.Instance(1))
	assert.Len(t, rec.Filter(renderer.OpDeleteMesh), 1)

	_, err = s.Replace(5, inst)
	assert.Error(t, err)
	assert.Nil(t, s.Instance(-1))
}
