package math

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2Sub(t *testing.T) {
	assert.Equal(t, Vec2{1, 2}, Vec2{4, 6}.Sub(Vec2{3, 4}))
}

func TestVec2Div(t *testing.T) {
	// division by zero yields zero on that axis
	assert.Equal(t, Vec2{2, 0}, Vec2{10, 9}.Div(Vec2{5, 0}))
}

func TestVec2Length(t *testing.T) {
	assert.Equal(t, float32(5), Vec2{3, 4}.Length())
}

func TestVec3Cross(t *testing.T) {
	assert.Equal(t, Vec3{0, 0, 1}, Vec3{1, 0, 0}.Cross(Vec3{0, 1, 0}))
}

func TestVec3Normalize(t *testing.T) {
	assert.InDelta(t, 1, Vec3{3, 0, 4}.Normalize().Length(), 1e-3)
	assert.Equal(t, Vec3{}, Vec3{}.Normalize())
}

func TestVec3RotateAround(t *testing.T) {
	got := Vec3{0, 10, 0}.RotateAround(AxisX, float32(math.Pi/2))
	assert.True(t, got.ApproxEqual(Vec3{0, 0, 10}, 1e-4), "got %v", got)
}
