package math3d

import (
	"testing"
)

func BenchmarkMat4Mul(b *testing.B) {
	m1 := Translation(V3(1, 2, 3))
	m2 := RotationY(30)

	for b.Loop() {
		_ = m1.Mul(m2)
	}
}

func BenchmarkMat4MulVec4(b *testing.B) {
	m := Translation(V3(1, 2, 3)).Mul(RotationY(30))
	v := V4(1, 2, 3, 1)

	for b.Loop() {
		_ = m.MulVec4(v)
	}
}

func BenchmarkMat4MulVec3(b *testing.B) {
	m := Translation(V3(1, 2, 3)).Mul(RotationY(30))
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = m.MulVec3(v)
	}
}

func BenchmarkMat4InverseAffine(b *testing.B) {
	m := Translation(V3(1, 2, 3)).Mul(RotationY(30)).Mul(ScalingUniform(2))

	for b.Loop() {
		_, _ = m.InverseAffine()
	}
}

func BenchmarkMat4InverseGeneral(b *testing.B) {
	m := Perspective(60.0, 1.333, 0.1, 100.0).Mul(Translation(V3(1, 2, 3)))

	for b.Loop() {
		_, _ = m.InverseGeneral()
	}
}

func BenchmarkVec3Normalize(b *testing.B) {
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = v.Normalize()
	}
}

func BenchmarkVec3Cross(b *testing.B) {
	v1 := V3(1, 2, 3)
	v2 := V3(4, 5, 6)

	for b.Loop() {
		_ = v1.Cross(v2)
	}
}

func BenchmarkVec3Dot(b *testing.B) {
	v1 := V3(1, 2, 3)
	v2 := V3(4, 5, 6)

	for b.Loop() {
		_ = v1.Dot(v2)
	}
}

func BenchmarkQuatMul(b *testing.B) {
	q1 := QFromAngleAxis(30, Up())
	q2 := QFromAngleAxis(45, Right())

	for b.Loop() {
		_ = q1.Mul(q2)
	}
}

func BenchmarkQuatRotateVec3(b *testing.B) {
	q := QFromAngleAxis(30, Up())
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = q.RotateVec3(v)
	}
}

func BenchmarkQuatSlerp(b *testing.B) {
	q1 := QFromAngleAxis(0, Up())
	q2 := QFromAngleAxis(120, Up())

	for b.Loop() {
		_ = q1.Slerp(q2, 0.5)
	}
}

func BenchmarkQuatMat3(b *testing.B) {
	q := QFromAngleAxis(30, Up())

	for b.Loop() {
		_ = q.Mat3()
	}
}

func BenchmarkPerspective(b *testing.B) {
	for b.Loop() {
		_ = Perspective(60.0, 1.333, 0.1, 100.0)
	}
}

func BenchmarkLookAt(b *testing.B) {
	eye := V3(0, 0, 10)
	target := V3(0, 0, 0)
	up := V3(0, 1, 0)

	for b.Loop() {
		_ = LookAt(eye, target, up)
	}
}

func BenchmarkViewProjection(b *testing.B) {
	// Simulate building the view-projection matrix like the renderer does
	eye := V3(0, 0, 10)
	target := V3(0, 0, 0)
	up := V3(0, 1, 0)
	view := LookAt(eye, target, up)
	proj := Perspective(60.0, 1.333, 0.1, 100.0)

	for b.Loop() {
		_ = proj.Mul(view)
	}
}
