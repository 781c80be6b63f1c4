package interaction

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/meshlab/internal/engine/mesh"
	"github.com/Faultbox/meshlab/internal/engine/renderer"
	"github.com/Faultbox/meshlab/internal/engine/scene"
	"github.com/Faultbox/meshlab/internal/engine/shader"
	"github.com/Faultbox/meshlab/pkg/math"
)

const triangle = "v 0 0 0\nv 1 0 0\nv 0 1 1\nf 1 2 3\n"

func newController(t *testing.T) (*Controller, *scene.Scene) {
	t.Helper()
	m, err := mesh.Build(triangle)
	require.NoError(t, err)
	s, err := scene.New(renderer.NewRecorder(), []*mesh.Mesh{m}, scene.DefaultConfig())
	require.NoError(t, err)
	return NewController(s, DefaultSettings()), s
}

func models(s *scene.Scene) []math.Mat4 {
	var out []math.Mat4
	for _, d := range s.Snapshot().Instances {
		out = append(out, d.Model)
	}
	return out
}

func TestDigitTwoThenArrowUpMovesOnlySecondInstance(t *testing.T) {
	c, s := newController(t)
	before := models(s)

	require.NoError(t, c.HandleKey("2"))
	require.NoError(t, c.HandleKey(KeyArrowUp))

	assert.Equal(t, ModeLocal, c.Mode())
	idx, ok := c.Selected()
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Same(t, s.Instances[1].Transform, s.Overlay.Owner())

	after := models(s)
	for i := range before {
		if i == 1 {
			want := math.Translate(0, 0.1, 0).Mul(before[i])
			assert.True(t, after[i].ApproxEqual(want, 1e-5))
			continue
		}
		assert.Equal(t, before[i], after[i], "instance %d moved", i)
	}
	assert.Equal(t, math.Identity(), s.Global)
}

func TestSpaceReturnsToCameraMode(t *testing.T) {
	c, s := newController(t)
	require.NoError(t, c.HandleKey("3"))
	require.NoError(t, c.HandleKey(KeySpace))

	assert.Equal(t, ModeCamera, c.Mode())
	_, ok := c.Selected()
	assert.False(t, ok)
	assert.Nil(t, s.Overlay.Owner())
	assert.Nil(t, s.Instances[2].Transform.Overlay())
}

func TestSelectionMovesOverlay(t *testing.T) {
	c, s := newController(t)
	require.NoError(t, c.HandleKey("1"))
	require.NoError(t, c.HandleKey("5"))

	assert.Nil(t, s.Instances[0].Transform.Overlay())
	assert.Same(t, s.Overlay, s.Instances[4].Transform.Overlay())
}

func TestDigitOutOfRangeIsIgnored(t *testing.T) {
	c, s := newController(t)
	s.Instances = s.Instances[:4]

	require.NoError(t, c.HandleKey("7"))
	assert.Equal(t, ModeCamera, c.Mode())
	_, ok := c.Selected()
	assert.False(t, ok)
}

func TestCameraModeArrows(t *testing.T) {
	c, s := newController(t)
	before := models(s)

	require.NoError(t, c.HandleKey(KeyArrowRight))
	require.NoError(t, c.HandleKey(KeyArrowUp))

	assert.True(t, s.Camera.Position().ApproxEqual(math.V3(0.05, 0.05, 10), 1e-6))
	assert.Equal(t, before, models(s))

	// shape keys do nothing in CAMERA mode
	require.NoError(t, c.HandleKey("A"))
	assert.Equal(t, before, models(s))
}

func TestGlobalModeFoldsElementaryMatrix(t *testing.T) {
	c, s := newController(t)
	before := models(s)

	require.NoError(t, c.HandleKey("0"))
	require.NoError(t, c.HandleKey(KeyArrowLeft))
	require.NoError(t, c.HandleKey("B"))

	assert.Equal(t, ModeGlobal, c.Mode())
	want := math.Scale(1, 1.1, 1).Mul(math.Translate(-0.1, 0, 0))
	assert.True(t, s.Global.ApproxEqual(want, 1e-6))
	assert.Equal(t, before, models(s), "per-instance transforms must not change")
}

func TestLocalModeKeys(t *testing.T) {
	tests := []struct {
		key  string
		want math.Mat4
	}{
		{"a", math.Scale(0.9, 1, 1)},
		{"C", math.Scale(1, 1, 1.1)},
		{"i", math.RotateX(-5 * 3.14159265 / 180)},
		{"j", math.RotateZ(5 * 3.14159265 / 180)},
		{",", math.Translate(0, 0, 0.1)},
		{".", math.Translate(0, 0, -0.1)},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			c, s := newController(t)
			require.NoError(t, c.HandleKey("1"))
			tr := s.Instances[0].Transform
			rt, sc := tr.RotateTranslate(), tr.ScaleMatrix()

			require.NoError(t, c.HandleKey(tt.key))

			got := tr.RotateTranslate().Mul(tr.ScaleMatrix())
			var want math.Mat4
			if tt.key == "a" || tt.key == "C" {
				want = rt.Mul(sc.Mul(tt.want))
			} else {
				want = rt.Mul(tt.want).Mul(sc)
			}
			assert.True(t, got.ApproxEqual(want, 1e-5))
		})
	}
}

func TestLocalWithoutSelection(t *testing.T) {
	c, s := newController(t)
	require.NoError(t, c.HandleKey("2"))
	s.Instances = s.Instances[:1]

	err := c.HandleKey("a")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoSelection))
	var se *SelectionError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "a", se.Op)
}

func TestUnknownKeyIsNoop(t *testing.T) {
	c, s := newController(t)
	require.NoError(t, c.HandleKey("1"))
	before := models(s)

	require.NoError(t, c.HandleKey("q"))
	require.NoError(t, c.HandleKey("F13"))
	assert.Equal(t, before, models(s))
	assert.Equal(t, ModeLocal, c.Mode())
}

func TestLightKeys(t *testing.T) {
	c, s := newController(t)

	require.NoError(t, c.HandleKey("t"))
	assert.True(t, s.Light.Position().ApproxEqual(math.V3(0, 10.1, 0), 1e-5))

	require.NoError(t, c.HandleKey("g"))
	require.NoError(t, c.HandleKey("h"))
	assert.True(t, s.Light.Position().ApproxEqual(math.V3(0.1, 10, 0), 1e-5))

	require.NoError(t, c.HandleKey("f"))
	for i := 0; i < 18; i++ {
		require.NoError(t, c.HandleKey("Z"))
	}
	// 90 degrees about +z takes (0,10,0) to (-10,0,0)
	assert.True(t, s.Light.Position().ApproxEqual(math.V3(-10, 0, 0), 1e-3))
}

func TestRenderToggles(t *testing.T) {
	c, _ := newController(t)
	assert.False(t, c.Shadows())
	assert.Equal(t, shader.GouraudDiffuse, c.Shading())

	require.NoError(t, c.HandleKey("p"))
	require.NoError(t, c.HandleKey("m"))
	assert.True(t, c.Shadows())
	assert.Equal(t, shader.GouraudSpecular, c.Shading())
	assert.Equal(t, "CAMERA | selected - | gouraud-specular | shadows on", c.Status())
}

func TestReplaceSelected(t *testing.T) {
	c, s := newController(t)
	m, err := mesh.Build(triangle)
	require.NoError(t, err)
	inst, err := s.NewInstance(m)
	require.NoError(t, err)

	err = c.ReplaceSelected(inst)
	assert.ErrorIs(t, err, ErrNoSelection)
	assert.NotSame(t, inst, s.Instances[0])

	require.NoError(t, c.HandleKey("3"))
	require.NoError(t, c.HandleKey("A"))
	old := s.Instances[2]

	require.NoError(t, c.ReplaceSelected(inst))
	assert.Same(t, inst, s.Instances[2])
	assert.Equal(t, old.Transform.ScaleMatrix(), inst.Transform.ScaleMatrix())
	assert.Equal(t, old.Transform.RotateTranslate(), inst.Transform.RotateTranslate())
	assert.Same(t, s.Overlay, inst.Transform.Overlay())
	assert.Nil(t, old.Transform.Overlay())
}
