package interaction

import (
	"github.com/Faultbox/meshlab/pkg/math"
)

// Key names as produced by the input layer.
const (
	KeySpace      = "Space"
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyReturn     = "Return"
)

type opKind int

const (
	opScale opKind = iota
	opRotate
	opTranslate
)

// shapeOp is an elementary transform bound to a key. Factor and sign are
// resolved against Settings when the key fires.
type shapeOp struct {
	kind opKind
	axis math.Axis
	// increase selects the increase factor for scale ops.
	increase bool
	// sign is the direction for rotate and translate ops.
	sign float32
}

var shapeKeys = map[string]shapeOp{
	"a": {kind: opScale, axis: math.AxisX},
	"A": {kind: opScale, axis: math.AxisX, increase: true},
	"b": {kind: opScale, axis: math.AxisY},
	"B": {kind: opScale, axis: math.AxisY, increase: true},
	"c": {kind: opScale, axis: math.AxisZ},
	"C": {kind: opScale, axis: math.AxisZ, increase: true},

	"i": {kind: opRotate, axis: math.AxisX, sign: -1},
	"k": {kind: opRotate, axis: math.AxisX, sign: 1},
	"o": {kind: opRotate, axis: math.AxisY, sign: -1},
	"u": {kind: opRotate, axis: math.AxisY, sign: 1},
	"l": {kind: opRotate, axis: math.AxisZ, sign: -1},
	"j": {kind: opRotate, axis: math.AxisZ, sign: 1},

	KeyArrowUp:    {kind: opTranslate, axis: math.AxisY, sign: 1},
	KeyArrowDown:  {kind: opTranslate, axis: math.AxisY, sign: -1},
	KeyArrowLeft:  {kind: opTranslate, axis: math.AxisX, sign: -1},
	KeyArrowRight: {kind: opTranslate, axis: math.AxisX, sign: 1},
	",":           {kind: opTranslate, axis: math.AxisZ, sign: 1},
	".":           {kind: opTranslate, axis: math.AxisZ, sign: -1},
}

// cameraKeys move the camera in CAMERA mode, as (dx, dy) unit steps.
var cameraKeys = map[string][2]float32{
	KeyArrowUp:    {0, 1},
	KeyArrowDown:  {0, -1},
	KeyArrowLeft:  {-1, 0},
	KeyArrowRight: {1, 0},
}

type lightOp struct {
	rotate bool
	axis   math.Axis
	sign   float32
}

// lightKeys act on the light in every mode.
var lightKeys = map[string]lightOp{
	"x": {rotate: true, axis: math.AxisX, sign: -1},
	"X": {rotate: true, axis: math.AxisX, sign: 1},
	"y": {rotate: true, axis: math.AxisY, sign: -1},
	"Y": {rotate: true, axis: math.AxisY, sign: 1},
	"z": {rotate: true, axis: math.AxisZ, sign: -1},
	"Z": {rotate: true, axis: math.AxisZ, sign: 1},
	"t": {axis: math.AxisY, sign: 1},
	"g": {axis: math.AxisY, sign: -1},
	"f": {axis: math.AxisX, sign: -1},
	"h": {axis: math.AxisX, sign: 1},
}

// unit returns a vector with v on axis and zero elsewhere.
func unit(axis math.Axis, v float32) math.Vec3 {
	switch axis {
	case math.AxisX:
		return math.V3(v, 0, 0)
	case math.AxisY:
		return math.V3(0, v, 0)
	default:
		return math.V3(0, 0, v)
	}
}

// scaleVec returns a scale vector that is f on axis and 1 elsewhere.
func scaleVec(axis math.Axis, f float32) math.Vec3 {
	v := math.V3(1, 1, 1)
	switch axis {
	case math.AxisX:
		v.X = f
	case math.AxisY:
		v.Y = f
	default:
		v.Z = f
	}
	return v
}
