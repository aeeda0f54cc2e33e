package render

import (
	"github.com/taigrr/prism/pkg/math3d"
)

// MeshRenderer is the geometry a wireframe pass needs: positions and unique
// edges. models.Mesh implements it.
type MeshRenderer interface {
	VertexCount() int
	EdgeCount() int
	Edge(i int) (a, b int)
	Position(i int) math3d.Vec3
}

// BoundedMeshRenderer additionally exposes an axis-aligned bounding box, so
// the whole mesh can be frustum-culled before any edge is projected.
type BoundedMeshRenderer interface {
	MeshRenderer
	GetBounds() (min, max math3d.Vec3)
}

// Wireframe renders 3D wireframe objects.
type Wireframe struct {
	camera *Camera
	fb     *Framebuffer

	// Culled counts meshes skipped by frustum culling since the last
	// ResetStats, for the HUD.
	Culled int
}

// NewWireframe creates a new wireframe renderer.
func NewWireframe(camera *Camera, fb *Framebuffer) *Wireframe {
	return &Wireframe{
		camera: camera,
		fb:     fb,
	}
}

// ResetStats clears the culling counter.
func (w *Wireframe) ResetStats() {
	w.Culled = 0
}

// DrawLine3D draws a line in 3D space. Lines with an endpoint behind the
// camera are dropped; off-screen endpoints are clipped by the framebuffer.
func (w *Wireframe) DrawLine3D(p1, p2 math3d.Vec3, color Color) {
	x1, y1, _, front1 := w.camera.WorldToScreen(p1, w.fb.Width, w.fb.Height)
	x2, y2, _, front2 := w.camera.WorldToScreen(p2, w.fb.Width, w.fb.Height)

	if !front1 || !front2 {
		return
	}

	w.fb.DrawLine(int(x1), int(y1), int(x2), int(y2), color)
}

// DrawMesh draws every unique edge of the mesh under the given model
// transform.
func (w *Wireframe) DrawMesh(mesh MeshRenderer, transform math3d.Mat4, color Color) {
	// Project each vertex once, not once per edge.
	type projected struct {
		x, y  math3d.Scalar
		front bool
	}
	verts := make([]projected, mesh.VertexCount())
	for i := range verts {
		world := transform.TransformVec3(mesh.Position(i))
		x, y, _, front := w.camera.WorldToScreen(world, w.fb.Width, w.fb.Height)
		verts[i] = projected{x, y, front}
	}

	for i := 0; i < mesh.EdgeCount(); i++ {
		a, b := mesh.Edge(i)
		va, vb := verts[a], verts[b]
		if !va.front || !vb.front {
			continue
		}
		w.fb.DrawLine(int(va.x), int(va.y), int(vb.x), int(vb.y), color)
	}
}

// DrawMeshCulled draws the mesh unless its transformed bounds fall entirely
// outside the view frustum.
func (w *Wireframe) DrawMeshCulled(mesh BoundedMeshRenderer, transform math3d.Mat4, color Color) {
	min, max := mesh.GetBounds()
	bounds := NewAABB(min, max).Transform(transform)
	if !w.camera.GetFrustum().IntersectAABB(bounds) {
		w.Culled++
		return
	}
	w.DrawMesh(mesh, transform, color)
}

// DrawAxes draws the coordinate axes at the origin.
func (w *Wireframe) DrawAxes(length math3d.Scalar) {
	origin := math3d.Zero3()
	w.DrawLine3D(origin, math3d.V3(length, 0, 0), ColorRed)   // X axis
	w.DrawLine3D(origin, math3d.V3(0, length, 0), ColorGreen) // Y axis
	w.DrawLine3D(origin, math3d.V3(0, 0, length), ColorBlue)  // Z axis
}

// DrawGrid draws a grid on the XZ plane at y=0.
func (w *Wireframe) DrawGrid(size, step math3d.Scalar, color Color) {
	half := size / 2
	for x := -half; x <= half; x += step {
		w.DrawLine3D(math3d.V3(x, 0, -half), math3d.V3(x, 0, half), color)
	}
	for z := -half; z <= half; z += step {
		w.DrawLine3D(math3d.V3(-half, 0, z), math3d.V3(half, 0, z), color)
	}
}

// DrawPoint draws a point as a small cross.
func (w *Wireframe) DrawPoint(pos math3d.Vec3, size math3d.Scalar, color Color) {
	half := size / 2
	w.DrawLine3D(math3d.V3(pos.X-half, pos.Y, pos.Z), math3d.V3(pos.X+half, pos.Y, pos.Z), color)
	w.DrawLine3D(math3d.V3(pos.X, pos.Y-half, pos.Z), math3d.V3(pos.X, pos.Y+half, pos.Z), color)
	w.DrawLine3D(math3d.V3(pos.X, pos.Y, pos.Z-half), math3d.V3(pos.X, pos.Y, pos.Z+half), color)
}
