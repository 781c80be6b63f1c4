package lighting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/meshlab/pkg/math"
)

func TestDefaultMaterial(t *testing.T) {
	m := DefaultMaterial()
	assert.Equal(t, math.V3(0.4, 0.4, 0.4), m.Ambient)
	assert.Equal(t, math.V3(0.7, 0.7, 0.7), m.Diffuse)
	assert.Equal(t, math.V3(1, 1, 1), m.Specular)
	assert.Equal(t, float32(42), m.Shininess)
}

func TestEyeSpace(t *testing.T) {
	// camera at (0,0,10) looking down -z
	view := math.LookAt(math.V3(0, 0, 10), math.V3(0, 0, 9), math.V3(0, 1, 0))
	got := EyeSpace(math.V3(0, 10, 0), view)
	assert.True(t, got.ApproxEqual(math.V3(0, 10, -10), 1e-5), "EyeSpace = %v", got)
}
