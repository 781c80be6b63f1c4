package shadow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/meshlab/internal/engine/mesh"
	"github.com/Faultbox/meshlab/internal/engine/renderer"
	"github.com/Faultbox/meshlab/internal/engine/scene"
	"github.com/Faultbox/meshlab/internal/engine/shader"
	"github.com/Faultbox/meshlab/pkg/math"
)

const box = `v -1 -1 -1
v 1 -1 -1
v 1 1 -1
v -1 1 -1
v -1 -1 1
v 1 -1 1
v 1 1 1
v -1 1 1
f 1 2 3
f 1 3 4
f 5 6 7
f 5 7 8
`

type fixture struct {
	rec *renderer.Recorder
	sc  *scene.Scene
	r   *Renderer
	cat *shader.Catalogue
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	rec := renderer.NewRecorder()

	cat, err := shader.LoadCatalogue(rec)
	require.NoError(t, err)

	m, err := mesh.Build(box)
	require.NoError(t, err)

	cfg := scene.DefaultConfig()
	cfg.Count = 2
	cfg.Columns = 2
	sc, err := scene.New(rec, []*mesh.Mesh{m}, cfg)
	require.NoError(t, err)

	r, err := NewRenderer(rec, cat, DefaultResolution)
	require.NoError(t, err)

	rec.Reset()
	return &fixture{rec: rec, sc: sc, r: r, cat: cat}
}

func names(calls []renderer.Call) []string {
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = c.String()
	}
	return out
}

func TestFrameWithShadows(t *testing.T) {
	fx := newFixture(t)
	cfg := DefaultRenderConfig()
	cfg.Shadows = true

	require.NoError(t, fx.r.Frame(fx.sc.Snapshot(), cfg))

	inst := fx.sc.Instances[0].Handle
	ground := fx.sc.Ground.Handle

	setup := fx.rec.Filter(renderer.OpBindTarget, renderer.OpCullFace, renderer.OpUseProgram, renderer.OpDraw, renderer.OpBindTexture)
	want := []string{
		"BindTarget(1)",
		"CullFace(front)",
		"UseProgram(1)",
		renderer.Call{Op: renderer.OpDraw, Mesh: inst}.String(),
		renderer.Call{Op: renderer.OpDraw, Mesh: inst}.String(),
		renderer.Call{Op: renderer.OpDraw, Mesh: ground}.String(),
		"BindTarget(0)",
		"CullFace(back)",
		renderer.Call{Op: renderer.OpUseProgram, Program: fx.cat.Program(shader.GouraudDiffuse, true)}.String(),
		"BindTexture(u_shadowMap)",
		renderer.Call{Op: renderer.OpDraw, Mesh: inst}.String(),
		renderer.Call{Op: renderer.OpDraw, Mesh: inst}.String(),
		renderer.Call{Op: renderer.OpDraw, Mesh: ground}.String(),
	}
	assert.Equal(t, want, names(setup))

	vp := fx.rec.Filter(renderer.OpViewport)
	require.Len(t, vp, 2)
	assert.Equal(t, [4]int32{0, 0, 1024, 1024}, vp[0].Ints)
	assert.Equal(t, [4]int32{0, 0, 1280, 720}, vp[1].Ints)

	var lightVP int
	for _, c := range fx.rec.Filter(renderer.OpSetMat4) {
		if c.Name == renderer.UniformLightViewProj {
			lightVP++
		}
	}
	assert.Equal(t, 1, lightVP)
}

func TestFrameWithoutShadowsSkipsDepthPass(t *testing.T) {
	fx := newFixture(t)
	cfg := DefaultRenderConfig()

	require.NoError(t, fx.r.Frame(fx.sc.Snapshot(), cfg))

	for _, c := range fx.rec.Filter(renderer.OpBindTarget) {
		assert.Equal(t, renderer.DefaultTarget, c.Target)
	}
	assert.Empty(t, fx.rec.Filter(renderer.OpBindTexture))
	for _, c := range fx.rec.Filter(renderer.OpSetMat4) {
		assert.NotEqual(t, renderer.UniformLightViewProj, c.Name)
	}
	for _, c := range fx.rec.Filter(renderer.OpCullFace) {
		assert.Equal(t, renderer.CullBack, c.Face)
	}
	use := fx.rec.Filter(renderer.OpUseProgram)
	require.Len(t, use, 1)
	assert.Equal(t, "gouraud-diffuse", use[0].Name)
	// two instances and the ground
	assert.Len(t, fx.rec.Filter(renderer.OpDraw), 3)
}

func TestOverlayDrawnOnlyInCameraPass(t *testing.T) {
	fx := newFixture(t)
	fx.sc.Instances[1].Transform.AttachOverlay(fx.sc.Overlay)
	cfg := DefaultRenderConfig()
	cfg.Shadows = true

	require.NoError(t, fx.r.Frame(fx.sc.Snapshot(), cfg))

	draws := fx.rec.Filter(renderer.OpDraw)
	require.Len(t, draws, 7)
	assert.Equal(t, fx.sc.Gizmo.Handle, draws[6].Mesh)
	for _, d := range draws[:6] {
		assert.NotEqual(t, fx.sc.Gizmo.Handle, d.Mesh)
	}
}

func TestPerDrawUniforms(t *testing.T) {
	fx := newFixture(t)
	f := fx.sc.Snapshot()
	require.NoError(t, fx.r.Frame(f, DefaultRenderConfig()))

	var models []math.Mat4
	for _, c := range fx.rec.Filter(renderer.OpSetMat4) {
		if c.Name == renderer.UniformTransform {
			models = append(models, c.Mat4)
		}
	}
	require.Len(t, models, 3)
	assert.Equal(t, f.Instances[0].Model, models[0])
	assert.Equal(t, f.Instances[1].Model, models[1])
	assert.Equal(t, f.Ground.Model, models[2])

	normals := 0
	for _, c := range fx.rec.Filter(renderer.OpSetMat3) {
		if c.Name == renderer.UniformNormal {
			normals++
		}
	}
	assert.Equal(t, 3, normals)

	var light []math.Vec3
	for _, c := range fx.rec.Filter(renderer.OpSetVec3) {
		if c.Name == renderer.UniformLightPosition {
			light = append(light, c.Vec3)
		}
	}
	require.Len(t, light, 1)
	// light (0,10,0) seen from the default camera at (0,0,10)
	assert.True(t, light[0].ApproxEqual(math.V3(0, 10, -10), 1e-4))
}

func TestFrameRejectsEmptyViewport(t *testing.T) {
	fx := newFixture(t)
	cfg := DefaultRenderConfig()
	cfg.Width = 0
	assert.Error(t, fx.r.Frame(fx.sc.Snapshot(), cfg))
	assert.Empty(t, fx.rec.Calls)
}

func TestNewRendererDepthTargetFailure(t *testing.T) {
	rec := renderer.NewRecorder()
	rec.FailTarget = renderer.ErrIncompleteFramebuffer
	cat, err := shader.LoadCatalogue(rec)
	require.NoError(t, err)

	_, err = NewRenderer(rec, cat, 0)
	assert.ErrorIs(t, err, renderer.ErrIncompleteFramebuffer)
	last := rec.Filter(renderer.OpCreateTarget)
	assert.Equal(t, int32(DefaultResolution), last[0].Ints[0])
}

func TestLightViewProjection(t *testing.T) {
	proj := LightProjection()
	view := math.LookAt(math.V3(0, 10, 0), math.V3(0, 0, 0), math.V3(0, 0, -1))
	g := math.Translate(0, 1, 0)

	got := LightViewProjection(proj, view, g)
	assert.True(t, got.ApproxEqual(proj.Mul(view.Mul(g)), 1e-5))
}
