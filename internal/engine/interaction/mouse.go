package interaction

import (
	"github.com/Faultbox/meshlab/pkg/math"
)

// drag tracks a camera drag between press and release.
type drag struct {
	anchor math.Vec2
	active bool
}

// Dragging reports whether a drag is in progress.
func (c *Controller) Dragging() bool {
	return c.drag.active
}

// Press anchors a drag at (x, y).
func (c *Controller) Press(x, y float32) {
	c.drag = drag{anchor: math.Vec2{X: x, Y: y}, active: true}
}

// Move previews the camera at the dragged offset. The committed camera
// position is unchanged until Release. An empty window is ignored.
func (c *Controller) Move(x, y float32, width, height int32) {
	if !c.drag.active || width <= 0 || height <= 0 {
		return
	}
	d := c.delta(x, y, width, height)
	c.scene.Camera.TranslatePreview(d.X, -d.Y)
}

// Release commits the dragged offset and ends the drag. With an empty
// window there is no offset to commit, so any preview is dropped.
func (c *Controller) Release(x, y float32, width, height int32) {
	if !c.drag.active {
		return
	}
	if width <= 0 || height <= 0 {
		c.scene.Camera.CancelPreview()
		c.drag = drag{}
		return
	}
	d := c.delta(x, y, width, height)
	c.scene.Camera.Translate(d.X, -d.Y, 0)
	c.drag = drag{}
}

// Leave is a release at the point the pointer left the window.
func (c *Controller) Leave(x, y float32, width, height int32) {
	c.Release(x, y, width, height)
}

// delta is (anchor - current) / size * sensitivity.
func (c *Controller) delta(x, y float32, width, height int32) math.Vec2 {
	size := math.Vec2{X: float32(width), Y: float32(height)}
	return c.drag.anchor.Sub(math.Vec2{X: x, Y: y}).Div(size).Scale(c.settings.MouseSensitivity)
}
