// Package mesh builds indexed triangle meshes from OBJ text and generates
// the few procedural shapes the viewer needs (ground plane, axis gizmo).
package mesh

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/meshlab/pkg/math"
)

// Primitive is the topology of a mesh's index list.
type Primitive int

const (
	Triangles Primitive = iota
	Lines
)

// Bounds is an axis-aligned bounding box in source coordinates.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// emptyBounds returns bounds that any real point will shrink.
func emptyBounds() Bounds {
	inf := math32.Inf(1)
	return Bounds{
		Min: [3]float32{inf, inf, inf},
		Max: [3]float32{-inf, -inf, -inf},
	}
}

// Valid reports whether at least one point was added.
func (b Bounds) Valid() bool {
	return b.Min[0] <= b.Max[0] && b.Min[1] <= b.Max[1] && b.Min[2] <= b.Max[2]
}

// Extent returns max-min per axis.
func (b Bounds) Extent() [3]float32 {
	return [3]float32{b.Max[0] - b.Min[0], b.Max[1] - b.Min[1], b.Max[2] - b.Min[2]}
}

// Center returns the midpoint of the box.
func (b Bounds) Center() math.Vec3 {
	return math.Vec3{
		X: (b.Min[0] + b.Max[0]) / 2,
		Y: (b.Min[1] + b.Max[1]) / 2,
		Z: (b.Min[2] + b.Max[2]) / 2,
	}
}

// add grows the box to contain p. NaN components are ignored per axis.
func (b *Bounds) add(p [3]float32) {
	for i := 0; i < 3; i++ {
		if math32.IsNaN(p[i]) {
			continue
		}
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}

// Mesh is immutable indexed geometry. A Mesh is built once and shared by
// pointer between every scene instance that draws it.
type Mesh struct {
	Name string

	// Positions and Normals are flat xyz triples. Normals is empty when the
	// source had no normal references, and may be shorter than Positions
	// when only some corners referenced a normal.
	Positions []float32
	Normals   []float32
	// Colors is an optional flat rgb triple per vertex (procedural shapes).
	Colors  []float32
	Indices []uint16

	Primitive Primitive
	Bounds    Bounds

	// InvalidRefs counts face corners whose position or normal index
	// could not be resolved and were emitted as NaN.
	InvalidRefs int

	boundingBox math.Mat4
}

// BoundingBoxTransform returns the matrix that centers the mesh at the
// origin and scales its smallest dimension to unit length.
func (m *Mesh) BoundingBoxTransform() math.Mat4 {
	return m.boundingBox
}

// VertexCount returns the number of output vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// IndexCount returns the length of the index list.
func (m *Mesh) IndexCount() int {
	return len(m.Indices)
}

// HasNormals reports whether every vertex carries a normal.
func (m *Mesh) HasNormals() bool {
	return len(m.Normals) > 0 && len(m.Normals) == len(m.Positions)
}
