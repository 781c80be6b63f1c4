package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/meshlab/pkg/math"
)

func TestDragPreviewThenRelease(t *testing.T) {
	c, s := newController(t)
	start := s.Camera.Position()

	c.Press(100, 100)
	assert.True(t, c.Dragging())

	c.Move(50, 150, 500, 500)
	assert.True(t, s.Camera.InPreview())
	assert.Equal(t, start, s.Camera.Position(), "move must not commit")

	c.Release(50, 150, 500, 500)
	assert.False(t, c.Dragging())
	assert.False(t, s.Camera.InPreview())

	// (100-50)/500*5 = 0.5 on x; (100-150)/500*5 = -0.5 on y, inverted
	assert.True(t, s.Camera.Position().ApproxEqual(start.Add(math.V3(0.5, 0.5, 0)), 1e-6))
}

func TestLeaveCommitsLikeRelease(t *testing.T) {
	c, s := newController(t)
	c.Press(0, 0)
	c.Move(10, 0, 100, 100)
	c.Leave(10, 0, 100, 100)

	assert.False(t, c.Dragging())
	assert.True(t, s.Camera.Position().ApproxEqual(math.V3(-0.5, 0, 10), 1e-6))
}

func TestMoveAndReleaseWithoutPress(t *testing.T) {
	c, s := newController(t)
	start := s.Camera.Position()

	c.Move(10, 10, 100, 100)
	c.Release(10, 10, 100, 100)

	assert.False(t, s.Camera.InPreview())
	assert.Equal(t, start, s.Camera.Position())
}

func TestEmptyWindowNeverCommitsInfinity(t *testing.T) {
	c, s := newController(t)
	start := s.Camera.Position()

	c.Press(100, 100)
	c.Move(50, 50, 0, 500)
	assert.False(t, s.Camera.InPreview())

	c.Move(50, 50, 500, 500)
	assert.True(t, s.Camera.InPreview())

	c.Release(50, 50, 500, 0)
	assert.False(t, c.Dragging())
	assert.False(t, s.Camera.InPreview())
	assert.Equal(t, start, s.Camera.Position())

	c.Press(0, 0)
	c.Leave(10, 10, 0, 0)
	assert.False(t, c.Dragging())
	assert.Equal(t, start, s.Camera.Position())
}
