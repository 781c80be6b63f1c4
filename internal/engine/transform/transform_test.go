package transform

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/meshlab/pkg/math"
)

func TestNewIsIdentity(t *testing.T) {
	tr := New()
	assert.Equal(t, math.Identity(), tr.ScaleMatrix())
	assert.Equal(t, math.Identity(), tr.RotateTranslate())
	assert.Nil(t, tr.Overlay())
}

func TestScaleCompounds(t *testing.T) {
	tr := New()
	tr.Scale(math.V3(0.9, 1, 1))
	tr.Scale(math.V3(0.9, 1, 1))
	tr.Scale(math.V3(1.1, 1, 1))

	got := tr.ScaleMatrix()
	assert.InDelta(t, 0.9*0.9*1.1, got[0], 1e-6)
	assert.Equal(t, float32(1), got[5])
	assert.Equal(t, float32(1), got[10])
}

func TestRotateTranslateOrderMatters(t *testing.T) {
	angle := float32(gomath.Pi / 2)
	v := math.V3(1, 0, 0)

	a := New()
	a.Rotate(math.AxisZ, angle)
	a.Translate(v)

	b := New()
	b.Translate(v)
	b.Rotate(math.AxisZ, angle)

	assert.False(t, a.RotateTranslate().ApproxEqual(b.RotateTranslate(), 1e-5))

	// Rotate-then-translate moves along the rotated x axis (now +y).
	pa := a.RotateTranslate().TransformVec3(math.Vec3{})
	assert.True(t, pa.ApproxEqual(math.V3(0, 1, 0), 1e-5), "got %v", pa)
	pb := b.RotateTranslate().TransformVec3(math.Vec3{})
	assert.True(t, pb.ApproxEqual(math.V3(1, 0, 0), 1e-5), "got %v", pb)
}

func TestModelMatrixComposition(t *testing.T) {
	bbox := math.Scale(0.5, 0.5, 0.5).Mul(math.Translate(-2, 0, 0))

	tr := New()
	tr.Scale(math.V3(2, 2, 2))
	tr.Translate(math.V3(0, 3, 0))

	// (2,0,0) -> bbox -> origin -> scale -> origin -> translate -> (0,3,0)
	p := tr.ModelMatrix(bbox, false).TransformVec3(math.V3(2, 0, 0))
	assert.True(t, p.ApproxEqual(math.V3(0, 3, 0), 1e-5), "got %v", p)

	// Overlay ignores bbox: (1,0,0) -> scale (2,0,0) -> translate (2,3,0)
	o := tr.ModelMatrix(bbox, true).TransformVec3(math.V3(1, 0, 0))
	assert.True(t, o.ApproxEqual(math.V3(2, 3, 0), 1e-5), "got %v", o)

	assert.Equal(t, tr.ModelMatrix(bbox, false), tr.Snapshot().ModelMatrix(bbox, false))
}

func TestAttachOverlayIsExclusive(t *testing.T) {
	ov := NewOverlay("axes")
	a, b := New(), New()

	a.AttachOverlay(ov)
	assert.Same(t, ov, a.Overlay())
	assert.Same(t, a, ov.Owner())

	b.AttachOverlay(ov)
	assert.Nil(t, a.Overlay())
	assert.Same(t, ov, b.Overlay())
	assert.Same(t, b, ov.Owner())

	b.DetachOverlay()
	assert.Nil(t, b.Overlay())
	assert.Nil(t, ov.Owner())
}

func TestAttachOverlayReplacesPreviousOverlay(t *testing.T) {
	first, second := NewOverlay("first"), NewOverlay("second")
	a := New()

	a.AttachOverlay(first)
	a.AttachOverlay(second)
	assert.Nil(t, first.Owner())
	assert.Same(t, a, second.Owner())

	a.AttachOverlay(nil)
	assert.Nil(t, a.Overlay())
	assert.Nil(t, second.Owner())
}

func TestCopyStateInto(t *testing.T) {
	ov := NewOverlay("axes")
	old := New()
	old.Scale(math.V3(1.1, 1, 1))
	old.Rotate(math.AxisY, 0.2)
	old.Translate(math.V3(3, 0, 0))
	old.AttachOverlay(ov)

	fresh := New()
	old.CopyStateInto(fresh)

	assert.Equal(t, old.ScaleMatrix(), fresh.ScaleMatrix())
	assert.Equal(t, old.RotateTranslate(), fresh.RotateTranslate())
	assert.Same(t, fresh, ov.Owner())
	assert.Nil(t, old.Overlay())

	// The copy is independent of the source afterwards.
	old.Translate(math.V3(1, 0, 0))
	assert.NotEqual(t, old.RotateTranslate(), fresh.RotateTranslate())
}

func TestSnapshotIsFrozen(t *testing.T) {
	tr := New()
	snap := tr.Snapshot()
	tr.Translate(math.V3(0, 1, 0))

	assert.Equal(t, math.Identity(), snap.RotateTranslate)
	assert.NotEqual(t, snap.RotateTranslate, tr.RotateTranslate())
}
