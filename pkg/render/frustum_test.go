package render

import (
	"math/rand"
	"testing"

	"github.com/taigrr/prism/pkg/math3d"
)

func TestPlaneDistanceToPoint(t *testing.T) {
	// Plane at Z=0, normal pointing +Z
	plane := Plane{Normal: math3d.V3(0, 0, 1), D: 0}

	tests := []struct {
		name     string
		point    math3d.Vec3
		expected math3d.Scalar
	}{
		{"origin", math3d.V3(0, 0, 0), 0},
		{"in front", math3d.V3(0, 0, 5), 5},
		{"behind", math3d.V3(0, 0, -3), -3},
		{"offset XY", math3d.V3(10, -5, 2), 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dist := plane.DistanceToPoint(tc.point)
			if !math3d.ApproxEqual(dist, tc.expected) {
				t.Errorf("got %v, want %v", dist, tc.expected)
			}
		})
	}
}

func TestPlaneNormalize(t *testing.T) {
	plane := Plane{Normal: math3d.V3(0, 3, 4), D: 10}
	plane.Normalize()

	if !math3d.ApproxEqual(plane.Normal.Len(), 1) {
		t.Errorf("normalized normal length = %v, want 1.0", plane.Normal.Len())
	}

	// Check components (3/5, 4/5)
	if !math3d.ApproxEqual(plane.Normal.Y, 0.6) {
		t.Errorf("normal.Y = %v, want 0.6", plane.Normal.Y)
	}
	if !math3d.ApproxEqual(plane.Normal.Z, 0.8) {
		t.Errorf("normal.Z = %v, want 0.8", plane.Normal.Z)
	}

	// D should be scaled too (10/5 = 2)
	if !math3d.ApproxEqual(plane.D, 2.0) {
		t.Errorf("D = %v, want 2.0", plane.D)
	}
}

func TestAABBBasics(t *testing.T) {
	box := NewAABB(math3d.V3(-1, -2, -3), math3d.V3(1, 2, 3))

	if center := box.Center(); !center.Equals(math3d.Zero3()) {
		t.Errorf("center = %v, want (0, 0, 0)", center)
	}
	if size := box.Size(); !size.Equals(math3d.V3(2, 4, 6)) {
		t.Errorf("size = %v, want (2, 4, 6)", size)
	}
	if halfSize := box.HalfSize(); !halfSize.Equals(math3d.V3(1, 2, 3)) {
		t.Errorf("halfSize = %v, want (1, 2, 3)", halfSize)
	}
}

func TestAABBContainsPoint(t *testing.T) {
	box := NewAABB(math3d.V3(0, 0, 0), math3d.V3(10, 10, 10))

	tests := []struct {
		name     string
		point    math3d.Vec3
		expected bool
	}{
		{"center", math3d.V3(5, 5, 5), true},
		{"corner min", math3d.V3(0, 0, 0), true},
		{"corner max", math3d.V3(10, 10, 10), true},
		{"edge", math3d.V3(5, 0, 5), true},
		{"outside X", math3d.V3(11, 5, 5), false},
		{"outside Y", math3d.V3(5, -1, 5), false},
		{"outside Z", math3d.V3(5, 5, 15), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := box.ContainsPoint(tc.point)
			if result != tc.expected {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tc.point, result, tc.expected)
			}
		})
	}
}

func TestAABBTransform(t *testing.T) {
	box := NewAABB(math3d.V3(-1, -1, -1), math3d.V3(1, 1, 1))

	t.Run("translation", func(t *testing.T) {
		trans := math3d.Translation(math3d.V3(10, 20, 30))
		transformed := box.Transform(trans)

		if !transformed.Min.Equals(math3d.V3(9, 19, 29)) {
			t.Errorf("translated min = %v, want (9, 19, 29)", transformed.Min)
		}
		if !transformed.Max.Equals(math3d.V3(11, 21, 31)) {
			t.Errorf("translated max = %v, want (11, 21, 31)", transformed.Max)
		}
	})

	t.Run("scale", func(t *testing.T) {
		scale := math3d.ScalingUniform(2.0)
		transformed := box.Transform(scale)

		if !transformed.Min.Equals(math3d.V3(-2, -2, -2)) {
			t.Errorf("scaled min = %v, want (-2, -2, -2)", transformed.Min)
		}
		if !transformed.Max.Equals(math3d.V3(2, 2, 2)) {
			t.Errorf("scaled max = %v, want (2, 2, 2)", transformed.Max)
		}
	})

	t.Run("rotation grows bounds", func(t *testing.T) {
		// A 45 degree spin around Y pushes the X/Z extent out to sqrt(2).
		rot := math3d.RotationY(45)
		transformed := box.Transform(rot)
		if transformed.Max.X < 1.4 {
			t.Errorf("rotated max.X = %v, want about sqrt(2)", transformed.Max.X)
		}
	})
}

func TestFrustumFromPerspective(t *testing.T) {
	proj := math3d.Perspective(60, 16.0/9.0, 0.1, 100)
	view := math3d.Identity() // Camera at origin looking down -Z
	frustum := NewFrustumFromMatrix(proj.Mul(view))

	for i, plane := range frustum.Planes {
		if !math3d.ApproxEqual(plane.Normal.Len(), 1) {
			t.Errorf("plane %d normal length = %v, want 1.0", i, plane.Normal.Len())
		}
	}
}

func TestFrustumContainsPoint(t *testing.T) {
	proj := math3d.Perspective(60, 16.0/9.0, 0.1, 100)
	view := math3d.Identity()
	frustum := NewFrustumFromMatrix(proj.Mul(view))

	tests := []struct {
		name     string
		point    math3d.Vec3
		expected bool
	}{
		{"center near", math3d.V3(0, 0, -1), true},
		{"center mid", math3d.V3(0, 0, -50), true},
		{"center far", math3d.V3(0, 0, -99), true},
		{"behind camera", math3d.V3(0, 0, 1), false},
		{"too far", math3d.V3(0, 0, -200), false},
		{"too close", math3d.V3(0, 0, -0.01), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := frustum.ContainsPoint(tc.point)
			if result != tc.expected {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tc.point, result, tc.expected)
			}
		})
	}
}

func TestFrustumIntersectAABB(t *testing.T) {
	proj := math3d.Perspective(60, 16.0/9.0, 1.0, 100)
	view := math3d.Identity()
	frustum := NewFrustumFromMatrix(proj.Mul(view))

	tests := []struct {
		name     string
		box      AABB
		expected bool
	}{
		{
			"fully inside",
			NewAABB(math3d.V3(-1, -1, -10), math3d.V3(1, 1, -5)),
			true,
		},
		{
			"partially visible",
			NewAABB(math3d.V3(-1, -1, -2), math3d.V3(1, 1, 2)), // Crosses near plane and goes behind
			true,
		},
		{
			"behind camera",
			NewAABB(math3d.V3(-1, -1, 5), math3d.V3(1, 1, 10)),
			false,
		},
		{
			"beyond far plane",
			NewAABB(math3d.V3(-1, -1, -150), math3d.V3(1, 1, -120)),
			false,
		},
		{
			"far to the right",
			NewAABB(math3d.V3(100, -1, -10), math3d.V3(110, 1, -5)),
			false,
		},
		{
			"large box containing frustum",
			NewAABB(math3d.V3(-200, -200, -200), math3d.V3(200, 200, 200)),
			true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := frustum.IntersectAABB(tc.box)
			if result != tc.expected {
				t.Errorf("IntersectAABB(%v) = %v, want %v", tc.box, result, tc.expected)
			}
		})
	}
}

func TestFrustumContainsAABB(t *testing.T) {
	proj := math3d.Perspective(60, 1.0, 1.0, 100)
	frustum := NewFrustumFromMatrix(proj)

	inside := NewAABB(math3d.V3(-1, -1, -10), math3d.V3(1, 1, -5))
	if !frustum.ContainsAABB(inside) {
		t.Error("box fully inside should be contained")
	}

	straddling := NewAABB(math3d.V3(-1, -1, -2), math3d.V3(1, 1, 2))
	if frustum.ContainsAABB(straddling) {
		t.Error("box crossing the near plane should not be contained")
	}
	if !frustum.IntersectAABB(straddling) {
		t.Error("box crossing the near plane should still intersect")
	}
}

func TestFrustumIntersectsSphere(t *testing.T) {
	proj := math3d.Perspective(60, 16.0/9.0, 1.0, 100)
	view := math3d.Identity()
	frustum := NewFrustumFromMatrix(proj.Mul(view))

	tests := []struct {
		name     string
		center   math3d.Vec3
		radius   math3d.Scalar
		expected bool
	}{
		{"inside", math3d.V3(0, 0, -10), 1.0, true},
		{"partially visible", math3d.V3(0, 0, -0.5), 1.0, true}, // Near the near plane
		{"behind", math3d.V3(0, 0, 5), 1.0, false},
		{"far behind", math3d.V3(0, 0, 20), 1.0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := frustum.IntersectsSphere(tc.center, tc.radius)
			if result != tc.expected {
				t.Errorf("IntersectsSphere(%v, %v) = %v, want %v", tc.center, tc.radius, result, tc.expected)
			}
		})
	}
}

func TestFrustumWithRotatedCamera(t *testing.T) {
	// Camera at origin looking at a target along +X axis
	proj := math3d.Perspective(60, 1.0, 1.0, 100)
	view := math3d.LookAt(math3d.Zero3(), math3d.V3(10, 0, 0), math3d.Up())
	frustum := NewFrustumFromMatrix(proj.Mul(view))

	if !frustum.ContainsPoint(math3d.V3(10, 0, 0)) {
		t.Error("point in front of rotated camera should be visible")
	}
	if frustum.ContainsPoint(math3d.V3(-10, 0, 0)) {
		t.Error("point behind rotated camera should not be visible")
	}
}

func BenchmarkFrustumIntersectAABB(b *testing.B) {
	proj := math3d.Perspective(60, 16.0/9.0, 0.1, 1000)
	frustum := NewFrustumFromMatrix(proj)
	box := NewAABB(math3d.V3(-1, -1, -10), math3d.V3(1, 1, -5))

	for b.Loop() {
		_ = frustum.IntersectAABB(box)
	}
}

func BenchmarkFrustumIntersectsSphere(b *testing.B) {
	proj := math3d.Perspective(60, 16.0/9.0, 0.1, 1000)
	frustum := NewFrustumFromMatrix(proj)
	center := math3d.V3(0, 0, -10)

	for b.Loop() {
		_ = frustum.IntersectsSphere(center, 2.0)
	}
}

func BenchmarkFrustumExtraction(b *testing.B) {
	proj := math3d.Perspective(60, 16.0/9.0, 0.1, 1000)
	view := math3d.LookAt(math3d.V3(0, 10, 20), math3d.V3(0, 0, 0), math3d.V3(0, 1, 0))
	viewProj := proj.Mul(view)

	for b.Loop() {
		_ = NewFrustumFromMatrix(viewProj)
	}
}

func BenchmarkAABBTransform(b *testing.B) {
	box := NewAABB(math3d.V3(-1, -1, -1), math3d.V3(1, 1, 1))
	trans := math3d.Translation(math3d.V3(10, 0, 0)).Mul(math3d.RotationY(30))

	for b.Loop() {
		_ = box.Transform(trans)
	}
}

// BenchmarkCullingScenario simulates culling N objects, some visible, some not.
func BenchmarkCullingScenario(b *testing.B) {
	cam := NewCamera()
	cam.SetDistance(20)
	frustum := cam.GetFrustum()

	rng := rand.New(rand.NewSource(42))
	objectCount := 100

	bounds := make([]AABB, objectCount)
	local := NewAABB(math3d.V3(-1, -1, -1), math3d.V3(1, 1, 1))
	for i := range objectCount {
		x := math3d.Scalar(rng.Float64()*100 - 50)
		y := math3d.Scalar(rng.Float64() * 10)
		z := math3d.Scalar(rng.Float64()*100 - 50)
		bounds[i] = local.Transform(math3d.Translation(math3d.V3(x, y, z)))
	}

	for b.Loop() {
		visible := 0
		for _, bb := range bounds {
			if frustum.IntersectAABB(bb) {
				visible++
			}
		}
		_ = visible
	}
}
