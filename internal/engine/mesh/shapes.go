package mesh

import "github.com/Faultbox/meshlab/pkg/math"

// Default colors for generated geometry.
var (
	ModelColor  = [3]float32{136.0 / 255, 213.0 / 255, 213.0 / 255}
	GroundColor = [3]float32{204.0 / 255, 204.0 / 255, 204.0 / 255}
)

// GroundPlane returns a square in the XZ plane at y=0 facing +Y.
func GroundPlane(halfSize float32) *Mesh {
	h := halfSize
	m := &Mesh{
		Name: "ground",
		Positions: []float32{
			-h, 0, -h,
			-h, 0, h,
			h, 0, -h,
			h, 0, h,
		},
		Normals: []float32{
			0, 1, 0,
			0, 1, 0,
			0, 1, 0,
			0, 1, 0,
		},
		Indices:     []uint16{0, 1, 2, 1, 3, 2},
		Primitive:   Triangles,
		Bounds:      Bounds{Min: [3]float32{-h, 0, -h}, Max: [3]float32{h, 0, h}},
		boundingBox: math.Identity(),
	}
	m.Colors = Colors(m.VertexCount(), GroundColor)
	return m
}

// AxisGizmo returns three unit line segments along X (red), Y (green) and
// Z (blue), each running from -1 to 1.
func AxisGizmo() *Mesh {
	return &Mesh{
		Name: "axes",
		Positions: []float32{
			1, 0, 0, -1, 0, 0,
			0, 1, 0, 0, -1, 0,
			0, 0, 1, 0, 0, -1,
		},
		Colors: []float32{
			1, 0, 0, 1, 0, 0,
			0, 1, 0, 0, 1, 0,
			0, 0, 1, 0, 0, 1,
		},
		Indices:     []uint16{0, 1, 2, 3, 4, 5},
		Primitive:   Lines,
		Bounds:      Bounds{Min: [3]float32{-1, -1, -1}, Max: [3]float32{1, 1, 1}},
		boundingBox: math.Identity(),
	}
}

// Colors returns n copies of rgb as a flat array.
func Colors(n int, rgb [3]float32) []float32 {
	out := make([]float32, 0, n*3)
	for i := 0; i < n; i++ {
		out = append(out, rgb[0], rgb[1], rgb[2])
	}
	return out
}
