// Package transform holds the mutable placement state of scene instances.
package transform

import "github.com/Faultbox/meshlab/pkg/math"

// Transform is one instance's placement: a compounding scale matrix and a
// single accumulator shared by rotations and translations.
//
// Rotate and Translate both right-multiply the same matrix in call order,
// so rotating then translating moves along the rotated axes while
// translating then rotating does not.
type Transform struct {
	scale           math.Mat4
	rotateTranslate math.Mat4

	overlay *Overlay
}

// New returns an identity transform.
func New() *Transform {
	return &Transform{
		scale:           math.Identity(),
		rotateTranslate: math.Identity(),
	}
}

// Scale compounds v onto the running scale: scale = scale * S(v).
func (t *Transform) Scale(v math.Vec3) {
	t.scale = t.scale.Mul(math.ScaleVec(v))
}

// Rotate appends a rotation around axis (radians) to the rotate-translate chain.
func (t *Transform) Rotate(axis math.Axis, angle float32) {
	t.rotateTranslate = t.rotateTranslate.Mul(math.Rotate(axis, angle))
}

// Translate appends a translation to the rotate-translate chain.
func (t *Transform) Translate(v math.Vec3) {
	t.rotateTranslate = t.rotateTranslate.Mul(math.TranslateVec(v))
}

// ScaleMatrix returns the accumulated scale.
func (t *Transform) ScaleMatrix() math.Mat4 {
	return t.scale
}

// RotateTranslate returns the accumulated rotation/translation.
func (t *Transform) RotateTranslate() math.Mat4 {
	return t.rotateTranslate
}

// ModelMatrix composes the model matrix. Points go through bbox first,
// then the scale, then the rotate-translate chain. Overlays skip bbox:
// they are drawn in the owner's frame without mesh normalization.
func (t *Transform) ModelMatrix(bbox math.Mat4, isOverlay bool) math.Mat4 {
	m := t.rotateTranslate.Mul(t.scale)
	if isOverlay {
		return m
	}
	return m.Mul(bbox)
}

// CopyStateInto copies the scale, rotate-translate and overlay of t into
// other. An attached overlay moves to other.
func (t *Transform) CopyStateInto(other *Transform) {
	if other == t {
		return
	}
	other.scale = t.scale
	other.rotateTranslate = t.rotateTranslate
	if t.overlay != nil {
		other.AttachOverlay(t.overlay)
	}
}

// Snapshot is a frozen copy of a transform's matrices.
type Snapshot struct {
	Scale           math.Mat4
	RotateTranslate math.Mat4
	HasOverlay      bool
}

// Snapshot captures the current matrices.
func (t *Transform) Snapshot() Snapshot {
	return Snapshot{
		Scale:           t.scale,
		RotateTranslate: t.rotateTranslate,
		HasOverlay:      t.overlay != nil,
	}
}

// ModelMatrix mirrors Transform.ModelMatrix on the frozen matrices.
func (s Snapshot) ModelMatrix(bbox math.Mat4, isOverlay bool) math.Mat4 {
	m := s.RotateTranslate.Mul(s.Scale)
	if isOverlay {
		return m
	}
	return m.Mul(bbox)
}
