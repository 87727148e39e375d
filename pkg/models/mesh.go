// Package models provides wireframe models for the wireclip pipeline.
package models

import (
	"github.com/taigrr/wireclip/pkg/math3d"
)

// Mesh is a wireframe: homogeneous vertices plus polyline edges over them.
type Mesh struct {
	Name     string
	Vertices []math3d.Vec4
	Edges    [][]int // Each edge is a polyline of two or more vertex indices

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]math3d.Vec4, 0),
		Edges:    make([][]int, 0),
	}
}

// NewGeneric creates a mesh from plain [x, y, z] vertices and edge lists.
func NewGeneric(name string, vertices [][3]float64, edges [][]int) *Mesh {
	m := NewMesh(name)
	for _, v := range vertices {
		m.Vertices = append(m.Vertices, math3d.V4(v[0], v[1], v[2], 1))
	}
	for _, e := range edges {
		m.Edges = append(m.Edges, append([]int(nil), e...))
	}
	m.CalculateBounds()
	return m
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		return
	}

	m.BoundsMin = m.Vertices[0].PerspectiveDivide()
	m.BoundsMax = m.BoundsMin

	for _, v := range m.Vertices[1:] {
		p := v.PerspectiveDivide()
		m.BoundsMin = m.BoundsMin.Min(p)
		m.BoundsMax = m.BoundsMax.Max(p)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// Transform applies a transformation matrix to all vertices.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for i := range m.Vertices {
		m.Vertices[i] = mat.MulVec4(m.Vertices[i])
	}
	m.CalculateBounds()
}

// Fit centers the mesh on the origin and scales its largest dimension to size.
func (m *Mesh) Fit(size float64) {
	m.CalculateBounds()
	dims := m.Size()
	maxDim := max(dims.X, dims.Y, dims.Z)
	if maxDim == 0 {
		return
	}
	s := size / maxDim
	m.Transform(math3d.Compose(
		math3d.Scale(math3d.V3(s, s, s)),
		math3d.Translate(m.Center().Negate()),
	))
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Vertices:  make([]math3d.Vec4, len(m.Vertices)),
		Edges:     make([][]int, len(m.Edges)),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Vertices, m.Vertices)
	for i, e := range m.Edges {
		clone.Edges[i] = append([]int(nil), e...)
	}
	return clone
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// EdgeCount returns the number of edges.
func (m *Mesh) EdgeCount() int {
	return len(m.Edges)
}

// SegmentCount returns the number of line segments across all edges.
func (m *Mesh) SegmentCount() int {
	n := 0
	for _, e := range m.Edges {
		if len(e) > 1 {
			n += len(e) - 1
		}
	}
	return n
}

// GetVertex returns vertex i.
// Implements render.Model interface.
func (m *Mesh) GetVertex(i int) math3d.Vec4 {
	return m.Vertices[i]
}

// GetEdge returns the vertex indices of edge i.
// Implements render.Model interface.
func (m *Mesh) GetEdge(i int) []int {
	return m.Edges[i]
}
