// Package camera provides the viewpoints the scene is rendered from:
// the user's camera and the shadow-casting light.
package camera

import (
	"errors"

	"github.com/chewxy/math32"

	"github.com/Faultbox/meshlab/pkg/math"
)

// ErrRotateCamera is returned when Rotate is called on a camera.
var ErrRotateCamera = errors.New("camera: only lights can be rotated")

// Kind distinguishes the two observer variants.
type Kind int

const (
	KindCamera Kind = iota
	KindLight
)

func (k Kind) String() string {
	if k == KindLight {
		return "light"
	}
	return "camera"
}

// Default observer placement.
var (
	DefaultCameraPosition = math.Vec3{X: 0, Y: 0, Z: 10}
	DefaultLightPosition  = math.Vec3{X: 0, Y: 10, Z: 0}
)

var (
	cameraForward = math.Vec3{X: 0, Y: 0, Z: -1}
	cameraUp      = math.Vec3{X: 0, Y: 1, Z: 0}
	lightUp       = math.Vec3{X: 0, Y: 0, Z: -1}
	fallbackUp    = math.Vec3{X: 0, Y: 1, Z: 0}
)

// Observer is a point of view with a position and a derived view matrix.
// The view matrix is recomputed from scratch every time the position
// changes; nothing is updated incrementally.
//
// A camera looks down -Z from its position with +Y up. A light looks at
// the world origin with -Z up.
type Observer struct {
	kind     Kind
	position math.Vec3
	up       math.Vec3

	view math.Mat4

	// preview is set while a mouse drag shows a candidate position.
	preview     bool
	previewView math.Mat4
}

// NewCamera creates a camera at pos.
func NewCamera(pos math.Vec3) *Observer {
	o := &Observer{kind: KindCamera, position: pos, up: cameraUp}
	o.view = o.viewFrom(pos)
	return o
}

// NewLight creates a light at pos.
func NewLight(pos math.Vec3) *Observer {
	o := &Observer{kind: KindLight, position: pos, up: lightUp}
	o.view = o.viewFrom(pos)
	return o
}

// Kind returns whether this is a camera or a light.
func (o *Observer) Kind() Kind {
	return o.kind
}

// Position returns the committed position.
func (o *Observer) Position() math.Vec3 {
	return o.position
}

// ViewMatrix returns the preview view while a drag is in progress,
// otherwise the committed view.
func (o *Observer) ViewMatrix() math.Mat4 {
	if o.preview {
		return o.previewView
	}
	return o.view
}

// InPreview reports whether a drag preview is active.
func (o *Observer) InPreview() bool {
	return o.preview
}

// Translate moves the committed position and clears any preview.
func (o *Observer) Translate(dx, dy, dz float32) {
	o.SetPosition(o.position.Add(math.Vec3{X: dx, Y: dy, Z: dz}))
}

// SetPosition replaces the committed position and clears any preview.
func (o *Observer) SetPosition(pos math.Vec3) {
	o.position = pos
	o.view = o.viewFrom(pos)
	o.preview = false
}

// TranslatePreview shows the view from position+(dx,dy,0) without moving
// the committed position.
func (o *Observer) TranslatePreview(dx, dy float32) math.Mat4 {
	o.previewView = o.viewFrom(o.position.Add(math.Vec3{X: dx, Y: dy}))
	o.preview = true
	return o.previewView
}

// CancelPreview drops the preview view.
func (o *Observer) CancelPreview() {
	o.preview = false
}

// Rotate rotates a light's position around the world origin.
func (o *Observer) Rotate(axis math.Axis, angle float32) error {
	if o.kind != KindLight {
		return ErrRotateCamera
	}
	o.SetPosition(o.position.RotateAround(axis, angle))
	return nil
}

func (o *Observer) viewFrom(pos math.Vec3) math.Mat4 {
	var target math.Vec3
	if o.kind == KindCamera {
		target = pos.Add(cameraForward)
	}

	up := o.up
	forward := target.Sub(pos).Normalize()
	if math32.Abs(forward.Dot(up.Normalize())) > 0.999 {
		up = fallbackUp
	}
	return math.LookAt(pos, target, up)
}
