// Package interaction turns key presses and mouse drags into changes to the
// scene: selection, per-object and global transforms, camera and light
// movement, and the render toggles.
package interaction

import (
	"fmt"

	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/Faultbox/meshlab/internal/engine/scene"
	"github.com/Faultbox/meshlab/internal/engine/shader"
	"github.com/Faultbox/meshlab/internal/logger"
	"github.com/Faultbox/meshlab/pkg/math"
)

// Controller is the interaction state machine. It is driven from the frame
// loop only.
type Controller struct {
	scene    *scene.Scene
	settings Settings
	log      *zap.Logger

	mode     Mode
	selected int

	shading shader.Model
	shadows bool

	drag drag
}

// NewController starts in CAMERA mode with nothing selected.
func NewController(s *scene.Scene, settings Settings) *Controller {
	return &Controller{
		scene:    s,
		settings: settings,
		log:      logger.Named("interaction"),
		mode:     ModeCamera,
		selected: -1,
		shading:  shader.GouraudDiffuse,
	}
}

// Mode returns the current mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Selected returns the selected instance index, if any.
func (c *Controller) Selected() (int, bool) {
	return c.selected, c.selected >= 0
}

// Shading returns the camera-pass shading model.
func (c *Controller) Shading() shader.Model {
	return c.shading
}

// SetShading selects the camera-pass shading model.
func (c *Controller) SetShading(m shader.Model) {
	c.shading = m
}

// Shadows reports whether the depth pass is enabled.
func (c *Controller) Shadows() bool {
	return c.shadows
}

// SetShadows enables or disables the depth pass.
func (c *Controller) SetShadows(on bool) {
	c.shadows = on
}

// Status is a one-line summary for the window title.
func (c *Controller) Status() string {
	sel := "-"
	if c.selected >= 0 {
		sel = fmt.Sprint(c.selected + 1)
	}
	shadows := "off"
	if c.shadows {
		shadows = "on"
	}
	return fmt.Sprintf("%s | selected %s | %s | shadows %s", c.mode, sel, c.shading, shadows)
}

// HandleKey applies one key press. Unknown keys are ignored. A LOCAL-mode
// transform with nothing selected returns a *SelectionError and changes
// nothing.
func (c *Controller) HandleKey(key string) error {
	if key == KeySpace {
		c.selectIndex(-1)
		c.setMode(ModeCamera)
		return nil
	}

	if d, ok := digit(key); ok {
		c.handleDigit(d)
		return nil
	}

	if op, ok := lightKeys[key]; ok {
		return c.moveLight(op)
	}

	switch key {
	case "m":
		c.shading = c.shading.Next()
		c.log.Info("shading model", zap.Stringer("model", c.shading))
		return nil
	case "p":
		c.shadows = !c.shadows
		c.log.Info("shadows", zap.Bool("enabled", c.shadows))
		return nil
	}

	switch c.mode {
	case ModeCamera:
		if step, ok := cameraKeys[key]; ok {
			s := c.settings.KeyboardSensitivity
			c.scene.Camera.Translate(step[0]*s, step[1]*s, 0)
		}
	case ModeGlobal:
		if op, ok := shapeKeys[key]; ok {
			c.scene.FoldGlobal(c.elementary(op))
		}
	case ModeLocal:
		op, ok := shapeKeys[key]
		if !ok {
			return nil
		}
		inst := c.scene.Instance(c.selected)
		if inst == nil {
			err := &SelectionError{Op: key}
			c.log.Warn("local transform without selection", zap.String("key", key))
			return err
		}
		c.applyLocal(inst, op)
	}
	return nil
}

func digit(key string) (int, bool) {
	if len(key) != 1 || key[0] < '0' || key[0] > '9' {
		return 0, false
	}
	return int(key[0] - '0'), true
}

func (c *Controller) handleDigit(d int) {
	if d == 0 {
		c.selectIndex(-1)
		c.setMode(ModeGlobal)
		return
	}
	index := d - 1
	if index >= c.scene.Len() {
		c.log.Warn("selection out of range", zap.Int("index", index), zap.Int("count", c.scene.Len()))
		return
	}
	c.selectIndex(index)
	c.setMode(ModeLocal)
}

func (c *Controller) setMode(m Mode) {
	if c.mode != m {
		c.log.Info("mode changed", zap.Stringer("from", c.mode), zap.Stringer("to", m))
	}
	c.mode = m
}

// selectIndex moves the overlay to the instance at index, or detaches it
// when index is negative.
func (c *Controller) selectIndex(index int) {
	c.selected = index
	inst := c.scene.Instance(index)
	if inst == nil {
		c.scene.Overlay.Detach()
		return
	}
	inst.Transform.AttachOverlay(c.scene.Overlay)
	c.log.Debug("selected", zap.Int("index", index), zap.Stringer("id", inst.ID))
}

func (c *Controller) angle(sign float32) float32 {
	return sign * c.settings.RotationDegrees * math32.Pi / 180
}

func (c *Controller) factor(op shapeOp) float32 {
	if op.increase {
		return c.settings.IncreaseFactor
	}
	return c.settings.DecreaseFactor
}

func (c *Controller) applyLocal(inst *scene.Instance, op shapeOp) {
	t := inst.Transform
	switch op.kind {
	case opScale:
		t.Scale(scaleVec(op.axis, c.factor(op)))
	case opRotate:
		t.Rotate(op.axis, c.angle(op.sign))
	case opTranslate:
		t.Translate(unit(op.axis, op.sign*c.settings.TranslationStep))
	}
}

// elementary builds the single fresh matrix a GLOBAL-mode key folds in.
func (c *Controller) elementary(op shapeOp) math.Mat4 {
	switch op.kind {
	case opScale:
		return math.ScaleVec(scaleVec(op.axis, c.factor(op)))
	case opRotate:
		return math.Rotate(op.axis, c.angle(op.sign))
	default:
		return math.TranslateVec(unit(op.axis, op.sign*c.settings.TranslationStep))
	}
}

func (c *Controller) moveLight(op lightOp) error {
	light := c.scene.Light
	if op.rotate {
		if err := light.Rotate(op.axis, c.angle(op.sign)); err != nil {
			return fmt.Errorf("rotate light: %w", err)
		}
	} else {
		d := unit(op.axis, op.sign*c.settings.TranslationStep)
		light.Translate(d.X, d.Y, d.Z)
	}
	c.log.Debug("light moved", zap.Float32("x", light.Position().X),
		zap.Float32("y", light.Position().Y), zap.Float32("z", light.Position().Z))
	return nil
}

// ReplaceSelected puts inst in the selected slot. inst inherits the old
// instance's scale, rotate-translate and overlay.
func (c *Controller) ReplaceSelected(inst *scene.Instance) error {
	old := c.scene.Instance(c.selected)
	if old == nil {
		c.log.Warn("replace without selection", zap.String("mesh", inst.Mesh.Name))
		return &SelectionError{Op: "replace"}
	}
	old.Transform.CopyStateInto(inst.Transform)
	if _, err := c.scene.Replace(c.selected, inst); err != nil {
		return fmt.Errorf("replace selected: %w", err)
	}
	return nil
}
