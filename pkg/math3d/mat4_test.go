package math3d

import (
	"testing"
)

func TestMat4Identity(t *testing.T) {
	m := Identity()
	v := V3(1, 2, 3)
	if got := m.TransformVec3(v); !got.Equals(v) {
		t.Errorf("identity transform = %v, want %v", got, v)
	}
	if got := m.Mul(m); !got.Equals(m) {
		t.Errorf("identity * identity = %v, want identity", got)
	}
	if !ApproxEqual(m.Determinant(), 1) {
		t.Errorf("identity determinant = %v, want 1", m.Determinant())
	}
}

func TestMat4Translation(t *testing.T) {
	m := Translation(V3(10, 20, 30))

	if got, want := m.TransformVec3(V3(1, 2, 3)), V3(11, 22, 33); !got.Equals(want) {
		t.Errorf("translated point = %v, want %v", got, want)
	}

	// Directions (w=0) are unaffected by translation.
	if got, want := m.MulVec4(V4(1, 2, 3, 0)), V4(1, 2, 3, 0); !got.Equals(want) {
		t.Errorf("translated direction = %v, want %v", got, want)
	}
	if got, want := m.RotateVec3(V3(1, 2, 3)), V3(1, 2, 3); !got.Equals(want) {
		t.Errorf("RotateVec3 = %v, want %v", got, want)
	}

	if got, want := m.TranslationVec(), V3(10, 20, 30); !got.Equals(want) {
		t.Errorf("TranslationVec = %v, want %v", got, want)
	}
}

func TestMat4Scaling(t *testing.T) {
	m := Scaling(V3(2, 3, 4))
	if got, want := m.TransformVec3(V3(1, 1, 1)), V3(2, 3, 4); !got.Equals(want) {
		t.Errorf("scaled = %v, want %v", got, want)
	}
	if got := m.Determinant(); !ApproxEqual(got, 24) {
		t.Errorf("determinant = %v, want 24", got)
	}
	if got := ScalingUniform(2).Determinant(); !ApproxEqual(got, 8) {
		t.Errorf("uniform determinant = %v, want 8", got)
	}
}

func TestMat4Rotation(t *testing.T) {
	m := Rotation(90, V3(0, 0, 1))
	if got, want := m.TransformVec3(Right()), Up(); !got.Equals(want) {
		t.Errorf("rotated = %v, want %v", got, want)
	}

	// Axis-specific constructors must agree with the general one.
	cases := []struct {
		name string
		fn   func(Scalar) Mat4
		axis Vec3
	}{
		{"X", RotationX, Right()},
		{"Y", RotationY, Up()},
		{"Z", RotationZ, V3(0, 0, 1)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got, want := c.fn(35), Rotation(35, c.axis); !got.Equals(want) {
				t.Errorf("Rotation%s(35) = %v, want %v", c.name, got, want)
			}
		})
	}

	// Matrix rotation agrees with the quaternion form.
	q := QFromAngleAxis(52, V3(1, 2, 3))
	if got, want := Rotation(52, V3(1, 2, 3)), q.Mat4(); !got.Equals(want) {
		t.Errorf("Rotation = %v, want %v", got, want)
	}
}

func TestMat4MulComposition(t *testing.T) {
	a := Translation(V3(1, 0, 0))
	b := RotationZ(90)
	v := V3(1, 0, 0)

	// (a*b) applied to v equals a applied to (b applied to v): rotate the X
	// axis up to Y, then shift along X.
	got := a.Mul(b).TransformVec3(v)
	if want := V3(1, 1, 0); !got.Equals(want) {
		t.Errorf("composed = %v, want %v", got, want)
	}

	// The other order translates first, so rotation moves the shifted point.
	got = b.Mul(a).TransformVec3(v)
	if want := V3(0, 2, 0); !got.Equals(want) {
		t.Errorf("swapped order = %v, want %v", got, want)
	}
}

func TestMat4MulInPlace(t *testing.T) {
	m := RotationY(45)
	got := m
	got = got.Mul(got)
	if !got.Equals(RotationY(90)) {
		t.Errorf("in-place square = %v, want 90 degree rotation", got)
	}
}

func TestMat4TranslateScaleMethods(t *testing.T) {
	base := RotationZ(90)

	// Post-multiply methods match composing with constructor matrices.
	if got, want := base.Translate(1, 2, 3), base.Mul(Translation(V3(1, 2, 3))); !got.Equals(want) {
		t.Errorf("Translate = %v, want %v", got, want)
	}
	if got, want := base.Scale(2, 3, 4), base.Mul(Scaling(V3(2, 3, 4))); !got.Equals(want) {
		t.Errorf("Scale = %v, want %v", got, want)
	}
}

func TestMat4RowCol(t *testing.T) {
	m := M4FromAxes(V3(1, 2, 3), V3(4, 5, 6), V3(7, 8, 9), V3(10, 11, 12))

	if got, want := m.Col3(1), V3(4, 5, 6); !got.Equals(want) {
		t.Errorf("Col3(1) = %v, want %v", got, want)
	}
	if got, want := m.Col4(3), V4(10, 11, 12, 1); !got.Equals(want) {
		t.Errorf("Col4(3) = %v, want %v", got, want)
	}
	if got, want := m.Row4(0), V4(1, 4, 7, 10); !got.Equals(want) {
		t.Errorf("Row4(0) = %v, want %v", got, want)
	}
	if got, want := m.Row3(2), V3(3, 6, 9); !got.Equals(want) {
		t.Errorf("Row3(2) = %v, want %v", got, want)
	}

	m.SetRow4(3, V4(0, 0, 0, 2))
	if got, want := m.Row4(3), V4(0, 0, 0, 2); !got.Equals(want) {
		t.Errorf("Row4(3) after SetRow4 = %v, want %v", got, want)
	}
	m.SetCol3(0, V3(9, 8, 7))
	if got, want := m.Col3(0), V3(9, 8, 7); !got.Equals(want) {
		t.Errorf("Col3(0) after SetCol3 = %v, want %v", got, want)
	}

	m.Set(2, 3, 42)
	if got := m.Get(2, 3); got != 42 {
		t.Errorf("Get(2,3) = %v, want 42", got)
	}
}

func TestMat4IndexPanics(t *testing.T) {
	m := Identity()
	cases := []struct {
		name string
		fn   func()
	}{
		{"row negative", func() { m.Row4(-1) }},
		{"row too large", func() { m.Row3(4) }},
		{"col too large", func() { m.Col4(4) }},
		{"get col", func() { m.Get(0, 7) }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			c.fn()
		})
	}
}

func TestMat4Transpose(t *testing.T) {
	m := Translation(V3(1, 2, 3)).Mul(RotationY(30))
	tt := m.Transpose()
	for r := range 4 {
		for c := range 4 {
			if got, want := tt.Get(r, c), m.Get(c, r); got != want {
				t.Errorf("transpose (%d,%d) = %v, want %v", r, c, got, want)
			}
		}
	}
	if got := tt.Transpose(); !got.Equals(m) {
		t.Errorf("double transpose = %v, want original", got)
	}
}

func TestMat4InverseOrthogonal(t *testing.T) {
	m := Translation(V3(4, -2, 7)).Mul(Rotation(63, V3(1, 1, 0)))
	inv := m.InverseOrthogonal()
	if got := m.Mul(inv); !got.Equals(Identity()) {
		t.Errorf("m * m^-1 = %v, want identity", got)
	}
	if got := inv.Mul(m); !got.Equals(Identity()) {
		t.Errorf("m^-1 * m = %v, want identity", got)
	}
}

func TestMat4InverseAffine(t *testing.T) {
	m := Translation(V3(1, 2, 3)).Mul(Rotation(30, Up())).Mul(Scaling(V3(2, 3, 4)))

	inv, ok := m.InverseAffine()
	if !ok {
		t.Fatal("InverseAffine reported failure for invertible matrix")
	}
	if got := m.Mul(inv); !got.Equals(Identity()) {
		t.Errorf("m * m^-1 = %v, want identity", got)
	}

	v := V3(5, -1, 2)
	if got := inv.TransformVec3(m.TransformVec3(v)); !got.Equals(v) {
		t.Errorf("round trip = %v, want %v", got, v)
	}
}

func TestMat4InverseAffineSingular(t *testing.T) {
	singular := Scaling(V3(1, 1, 0))
	got, ok := singular.InverseAffine()
	if ok {
		t.Error("InverseAffine reported success for singular matrix")
	}
	if !got.Equals(Identity()) {
		t.Errorf("singular inverse = %v, want identity", got)
	}
}

func TestMat4InverseGeneral(t *testing.T) {
	// A projection matrix is not affine, so only the general inverse works.
	m := Perspective(60, 1.5, 0.1, 100).Mul(Translation(V3(1, 2, 3)))

	inv, ok := m.InverseGeneral()
	if !ok {
		t.Fatal("InverseGeneral reported failure for invertible matrix")
	}
	if got := m.Mul(inv); !got.Equals(Identity()) {
		t.Errorf("m * m^-1 = %v, want identity", got)
	}

	_, ok = Scaling(V3(0, 1, 1)).InverseGeneral()
	if ok {
		t.Error("InverseGeneral reported success for singular matrix")
	}
}

func TestMat4Adjoint(t *testing.T) {
	m := Translation(V3(1, 2, 3)).Mul(Rotation(30, Up())).Mul(Scaling(V3(2, 1, 3)))
	det := m.Determinant()

	// m * adj(m) == det(m) * I.
	got := m.Mul(m.Adjoint())
	want := ScalingUniform(det)
	want[15] = det
	if !got.Equals(want) {
		t.Errorf("m * adj(m) = %v, want det * identity", got)
	}
}

func TestMat4Determinant(t *testing.T) {
	if got := Scaling(V3(2, 3, 4)).Determinant(); !ApproxEqual(got, 24) {
		t.Errorf("scale determinant = %v, want 24", got)
	}
	if got := Rotation(77, V3(1, -2, 1)).Determinant(); !ApproxEqual(got, 1) {
		t.Errorf("rotation determinant = %v, want 1", got)
	}
	// Translation does not change volume.
	if got := Translation(V3(5, 6, 7)).Determinant(); !ApproxEqual(got, 1) {
		t.Errorf("translation determinant = %v, want 1", got)
	}
}

func TestMat4LookAt(t *testing.T) {
	eye := V3(0, 0, 10)
	view := LookAt(eye, Zero3(), Up())

	// The eye maps to the origin of view space.
	if got := view.TransformVec3(eye); !got.Equals(Zero3()) {
		t.Errorf("eye in view space = %v, want origin", got)
	}

	// The target sits straight ahead on the -Z axis.
	if got, want := view.TransformVec3(Zero3()), V3(0, 0, -10); !got.Equals(want) {
		t.Errorf("target in view space = %v, want %v", got, want)
	}

	// World up stays up for this eye position.
	if got, want := view.RotateVec3(Up()), Up(); !got.Equals(want) {
		t.Errorf("up in view space = %v, want %v", got, want)
	}
}

func TestMat4Perspective(t *testing.T) {
	near, far := Scalar(1), Scalar(100)
	m := Perspective(90, 1, near, far)

	// A point on the near plane maps to z = -1, the far plane to z = +1.
	if got := m.MulVec3(V3(0, 0, -near)); !ApproxEqual(got.Z, -1) {
		t.Errorf("near plane z = %v, want -1", got.Z)
	}
	if got := m.MulVec3(V3(0, 0, -far)); !ApproxEqual(got.Z, 1) {
		t.Errorf("far plane z = %v, want 1", got.Z)
	}

	// At 90 degrees fovy the frustum edge on the near plane lands at y = 1.
	if got := m.MulVec3(V3(0, near, -near)); !ApproxEqual(got.Y, 1) {
		t.Errorf("frustum edge y = %v, want 1", got.Y)
	}
}

func TestMat4FrustumMatchesPerspective(t *testing.T) {
	near, far := Scalar(0.5), Scalar(50)
	fovy, aspect := Scalar(60), Scalar(1.25)

	half := near * tan(fovy*0.5*Deg2Rad)
	got := Frustum(-half*aspect, half*aspect, -half, half, near, far)
	want := Perspective(fovy, aspect, near, far)
	if !got.Equals(want) {
		t.Errorf("Frustum = %v, want %v", got, want)
	}
}

func TestMat4Orthographic(t *testing.T) {
	m := Orthographic(-2, 2, -1, 1, 0, 10)

	cases := []struct {
		name string
		in   Vec3
		want Vec3
	}{
		{"center", V3(0, 0, -5), V3(0, 0, 0)},
		{"right edge", V3(2, 0, -5), V3(1, 0, 0)},
		{"top near", V3(0, 1, 0), V3(0, 1, -1)},
		{"bottom far", V3(0, -1, -10), V3(0, -1, 1)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := m.TransformVec3(c.in); !got.Equals(c.want) {
				t.Errorf("Orthographic(%v) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestMat4MulVec3PerspectiveDivide(t *testing.T) {
	m := Perspective(60, 1, 1, 100)

	// MulVec3 divides by w; MulVec4 keeps it. Both agree after dividing.
	p := V3(1, 2, -10)
	h := m.MulVec4(p.Vec4(1))
	if got, want := m.MulVec3(p), h.PerspectiveDivide(); !got.Equals(want) {
		t.Errorf("MulVec3 = %v, want %v", got, want)
	}
}

func TestMat4InvRotateVec3(t *testing.T) {
	m := Rotation(67, V3(3, 1, -2))
	v := V3(1, 2, 3)
	if got := m.InvRotateVec3(m.RotateVec3(v)); !got.Equals(v) {
		t.Errorf("inverse rotate round trip = %v, want %v", got, v)
	}
}

func TestMat4Axes(t *testing.T) {
	x, y, z, tr := V3(1, 0, 0), V3(0, 0, -1), V3(0, 1, 0), V3(5, 6, 7)
	m := M4FromAxes(x, y, z, tr)

	gx, gy, gz, gt := m.Axes()
	if !gx.Equals(x) || !gy.Equals(y) || !gz.Equals(z) || !gt.Equals(tr) {
		t.Errorf("Axes = %v %v %v %v, want %v %v %v %v", gx, gy, gz, gt, x, y, z, tr)
	}

	m.SetTranslation(V3(1, 1, 1))
	if got := m.TranslationVec(); !got.Equals(V3(1, 1, 1)) {
		t.Errorf("TranslationVec after SetTranslation = %v", got)
	}
}
