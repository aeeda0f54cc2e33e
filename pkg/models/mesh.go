// Package models provides 3D model loading and representation for Prism.
package models

import (
	"github.com/taigrr/prism/pkg/math3d"
)

// Mesh is triangle geometry with a derived edge set for wireframe drawing.
type Mesh struct {
	Name      string
	Positions []math3d.Vec3
	Faces     []Face

	// Unique undirected edges, built by BuildEdges.
	Edges []Edge

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// Face is a triangle referencing three entries of Mesh.Positions.
type Face [3]int

// Edge connects two entries of Mesh.Positions, with A < B.
type Edge struct {
	A, B int
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// BuildEdges derives the unique edge set from the faces. Edges shared by two
// triangles appear once, so the wireframe pass draws each line a single time.
func (m *Mesh) BuildEdges() {
	seen := make(map[Edge]struct{}, len(m.Faces)*3)
	m.Edges = m.Edges[:0]

	add := func(a, b int) {
		if a > b {
			a, b = b, a
		}
		e := Edge{a, b}
		if _, ok := seen[e]; ok {
			return
		}
		seen[e] = struct{}{}
		m.Edges = append(m.Edges, e)
	}

	for _, f := range m.Faces {
		add(f[0], f[1])
		add(f[1], f[2])
		add(f[2], f[0])
	}
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Positions) == 0 {
		return
	}

	m.BoundsMin = m.Positions[0]
	m.BoundsMax = m.Positions[0]

	for _, p := range m.Positions[1:] {
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

// Radius returns the bounding sphere radius around the center.
func (m *Mesh) Radius() math3d.Scalar {
	return m.Size().Len() * 0.5
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// EdgeCount returns the number of unique edges.
func (m *Mesh) EdgeCount() int {
	return len(m.Edges)
}

// Position returns vertex i.
// Implements render.MeshRenderer interface.
func (m *Mesh) Position(i int) math3d.Vec3 {
	return m.Positions[i]
}

// Edge returns the vertex indices of edge i.
// Implements render.MeshRenderer interface.
func (m *Mesh) Edge(i int) (a, b int) {
	e := m.Edges[i]
	return e.A, e.B
}

// GetBounds returns the axis-aligned bounding box.
// Implements render.BoundedMeshRenderer interface.
func (m *Mesh) GetBounds() (min, max math3d.Vec3) {
	return m.BoundsMin, m.BoundsMax
}

// Transform applies a transformation matrix to all vertices and refreshes
// the bounds.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for i := range m.Positions {
		m.Positions[i] = mat.TransformVec3(m.Positions[i])
	}
	m.CalculateBounds()
}

// Normalized returns a copy translated to the origin and scaled so the
// bounding sphere has unit radius, ready for the orbit camera.
func (m *Mesh) Normalized() *Mesh {
	out := m.Clone()
	r := m.Radius()
	s := math3d.Scalar(1)
	if r > 0 {
		s = 1 / r
	}
	c := m.Center().Negate()
	out.Transform(math3d.ScalingUniform(s).Translate(c.X, c.Y, c.Z))
	return out
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Positions: make([]math3d.Vec3, len(m.Positions)),
		Faces:     make([]Face, len(m.Faces)),
		Edges:     make([]Edge, len(m.Edges)),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Positions, m.Positions)
	copy(clone.Faces, m.Faces)
	copy(clone.Edges, m.Edges)
	return clone
}
