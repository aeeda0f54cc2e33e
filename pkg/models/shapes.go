package models

import (
	"github.com/taigrr/prism/pkg/math3d"
)

// Cube returns a unit-radius cube centered at the origin. Used as the
// default model when no file is given.
func Cube() *Mesh {
	m := NewMesh("cube")
	for _, z := range []math3d.Scalar{-1, 1} {
		for _, y := range []math3d.Scalar{-1, 1} {
			for _, x := range []math3d.Scalar{-1, 1} {
				m.Positions = append(m.Positions, math3d.V3(x, y, z))
			}
		}
	}

	// Two triangles per face, indexed into the corner table above.
	quads := [6][4]int{
		{0, 1, 3, 2}, // back
		{4, 6, 7, 5}, // front
		{0, 2, 6, 4}, // left
		{1, 5, 7, 3}, // right
		{2, 3, 7, 6}, // top
		{0, 4, 5, 1}, // bottom
	}
	for _, q := range quads {
		m.Faces = append(m.Faces, Face{q[0], q[1], q[2]}, Face{q[0], q[2], q[3]})
	}

	m.BuildEdges()
	m.CalculateBounds()
	return m
}

// Octahedron returns a unit octahedron centered at the origin.
func Octahedron() *Mesh {
	m := NewMesh("octahedron")
	m.Positions = []math3d.Vec3{
		{X: 1}, {X: -1},
		{Y: 1}, {Y: -1},
		{Z: 1}, {Z: -1},
	}
	m.Faces = []Face{
		{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
		{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
	}
	m.BuildEdges()
	m.CalculateBounds()
	return m
}
