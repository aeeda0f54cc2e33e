package math3d

// Mat4 is a 4x4 affine transform matrix stored in column-major order. This
// matches OpenGL conventions for easier reasoning about transforms.
//
// Memory layout (indices):
//
//	| 0  4  8  12 |
//	| 1  5  9  13 |
//	| 2  6  10 14 |
//	| 3  7  11 15 |
//
// For a transform matrix:
//
//	| Xx Yx Zx Tx |   X,Y,Z = basis vectors (rotation/scale)
//	| Xy Yy Zy Ty |   T = translation
//	| Xz Yz Zz Tz |
//	| 0  0  0  1  |
type Mat4 [16]Scalar

// Mat4Len is the number of elements in a Mat4.
const Mat4Len = 16

// Mat4Size is the size of a Mat4 in bytes.
const Mat4Size = Mat4Len * ScalarSize

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation creates a translation matrix.
func Translation(v Vec3) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		v.X, v.Y, v.Z, 1,
	}
}

// Scaling creates a scaling matrix.
func Scaling(v Vec3) Mat4 {
	return Mat4{
		v.X, 0, 0, 0,
		0, v.Y, 0, 0,
		0, 0, v.Z, 0,
		0, 0, 0, 1,
	}
}

// ScalingUniform creates a uniform scaling matrix.
func ScalingUniform(s Scalar) Mat4 {
	return Scaling(V3(s, s, s))
}

// Rotation returns the rotation of angle degrees about axis, built with
// Rodrigues' formula. The axis is normalized internally.
func Rotation(degrees Scalar, axis Vec3) Mat4 {
	axis = axis.Normalize()
	x, y, z := axis.X, axis.Y, axis.Z
	c := cos(degrees * Deg2Rad)
	s := sin(degrees * Deg2Rad)
	ic := 1 - c
	xy, yz, xz := x*y*ic, y*z*ic, x*z*ic
	xs, ys, zs := s*x, s*y, s*z

	return Mat4{
		x*x*ic + c, xy + zs, xz - ys, 0,
		xy - zs, y*y*ic + c, yz + xs, 0,
		xz + ys, yz - xs, z*z*ic + c, 0,
		0, 0, 0, 1,
	}
}

// RotationX returns the rotation of angle degrees about the X axis.
func RotationX(degrees Scalar) Mat4 {
	c, s := cos(degrees*Deg2Rad), sin(degrees*Deg2Rad)
	return Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotationY returns the rotation of angle degrees about the Y axis.
func RotationY(degrees Scalar) Mat4 {
	c, s := cos(degrees*Deg2Rad), sin(degrees*Deg2Rad)
	return Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotationZ returns the rotation of angle degrees about the Z axis.
func RotationZ(degrees Scalar) Mat4 {
	c, s := cos(degrees*Deg2Rad), sin(degrees*Deg2Rad)
	return Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// M4FromAxes builds a matrix from three basis column vectors and a
// translation.
func M4FromAxes(x, y, z, t Vec3) Mat4 {
	return Mat4{
		x.X, x.Y, x.Z, 0,
		y.X, y.Y, y.Z, 0,
		z.X, z.Y, z.Z, 0,
		t.X, t.Y, t.Z, 1,
	}
}

// Axes returns the three basis column vectors and the translation.
func (m Mat4) Axes() (x, y, z, t Vec3) {
	return Vec3{m[0], m[1], m[2]},
		Vec3{m[4], m[5], m[6]},
		Vec3{m[8], m[9], m[10]},
		Vec3{m[12], m[13], m[14]}
}

// LookAt creates a view matrix looking from eye towards center.
func LookAt(eye, center, up Vec3) Mat4 {
	f := center.Sub(eye).Normalize() // forward
	s := f.Cross(up).Normalize()     // right
	u := s.Cross(f)                  // up, re-orthogonalized

	return Mat4{
		s.X, u.X, -f.X, 0,
		s.Y, u.Y, -f.Y, 0,
		s.Z, u.Z, -f.Z, 0,
		-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1,
	}
}

// Frustum creates an off-center perspective projection matrix from the
// near-plane bounds and clip distances.
func Frustum(left, right, bottom, top, near, far Scalar) Mat4 {
	rl := 1 / (right - left)
	tb := 1 / (top - bottom)
	fn := 1 / (far - near)
	n2 := 2 * near

	return Mat4{
		n2 * rl, 0, 0, 0,
		0, n2 * tb, 0, 0,
		(right + left) * rl, (top + bottom) * tb, -(far + near) * fn, -1,
		0, 0, -(n2 * far) * fn, 0,
	}
}

// Perspective creates a symmetric perspective projection matrix.
// fovy is the vertical field of view in degrees; aspect is width/height.
func Perspective(fovy, aspect, near, far Scalar) Mat4 {
	f := 1 / tan(fovy*0.5*Deg2Rad)
	fn := 1 / (near - far)

	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * fn, -1,
		0, 0, 2 * far * near * fn, 0,
	}
}

// Orthographic creates an orthographic projection matrix.
func Orthographic(left, right, bottom, top, near, far Scalar) Mat4 {
	rl := 1 / (right - left)
	tb := 1 / (top - bottom)
	fn := 1 / (far - near)

	return Mat4{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(right + left) * rl, -(top + bottom) * tb, -(far + near) * fn, 1,
	}
}

// Get returns the element at (row, col). Panics if either index is outside
// [0, 3].
func (m Mat4) Get(row, col int) Scalar {
	checkIndex4(row)
	checkIndex4(col)
	return m[row+col*4]
}

// Set sets the element at (row, col). Panics if either index is outside
// [0, 3].
func (m *Mat4) Set(row, col int, val Scalar) {
	checkIndex4(row)
	checkIndex4(col)
	m[row+col*4] = val
}

// Row4 returns row i as a vector. Panics if i is outside [0, 3].
func (m Mat4) Row4(i int) Vec4 {
	checkIndex4(i)
	return Vec4{m[i], m[i+4], m[i+8], m[i+12]}
}

// Row3 returns the first three components of row i. Panics if i is outside
// [0, 3].
func (m Mat4) Row3(i int) Vec3 {
	checkIndex4(i)
	return Vec3{m[i], m[i+4], m[i+8]}
}

// Col4 returns column i as a vector. Panics if i is outside [0, 3].
func (m Mat4) Col4(i int) Vec4 {
	checkIndex4(i)
	return Vec4{m[i*4], m[i*4+1], m[i*4+2], m[i*4+3]}
}

// Col3 returns the first three components of column i. Panics if i is
// outside [0, 3].
func (m Mat4) Col3(i int) Vec3 {
	checkIndex4(i)
	return Vec3{m[i*4], m[i*4+1], m[i*4+2]}
}

// SetRow4 replaces row i. Panics if i is outside [0, 3].
func (m *Mat4) SetRow4(i int, v Vec4) {
	checkIndex4(i)
	m[i] = v.X
	m[i+4] = v.Y
	m[i+8] = v.Z
	m[i+12] = v.W
}

// SetRow3 replaces the first three components of row i. Panics if i is
// outside [0, 3].
func (m *Mat4) SetRow3(i int, v Vec3) {
	checkIndex4(i)
	m[i] = v.X
	m[i+4] = v.Y
	m[i+8] = v.Z
}

// SetCol4 replaces column i. Panics if i is outside [0, 3].
func (m *Mat4) SetCol4(i int, v Vec4) {
	checkIndex4(i)
	m[i*4] = v.X
	m[i*4+1] = v.Y
	m[i*4+2] = v.Z
	m[i*4+3] = v.W
}

// SetCol3 replaces the first three components of column i. Panics if i is
// outside [0, 3].
func (m *Mat4) SetCol3(i int, v Vec3) {
	checkIndex4(i)
	m[i*4] = v.X
	m[i*4+1] = v.Y
	m[i*4+2] = v.Z
}

func checkIndex4(i int) {
	if i < 0 || i > 3 {
		panic("math3d: Mat4 index out of range")
	}
}

// TranslationVec returns the translation column.
func (m Mat4) TranslationVec() Vec3 {
	return Vec3{m[12], m[13], m[14]}
}

// SetTranslation replaces the translation column.
func (m *Mat4) SetTranslation(v Vec3) {
	m[12] = v.X
	m[13] = v.Y
	m[14] = v.Z
}

// Transpose returns the transposed matrix.
func (m Mat4) Transpose() Mat4 {
	return Mat4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// Mul multiplies two matrices: a * b. The left operand is transposed into a
// scratch matrix first so both factors are walked sequentially; the result
// is the ordinary matrix product.
func (a Mat4) Mul(b Mat4) Mat4 {
	t := a.Transpose()
	for i := 0; i < 16; i += 4 {
		cx, cy, cz, cw := t[i], t[i+1], t[i+2], t[i+3]
		t[i] = cx*b[0] + cy*b[1] + cz*b[2] + cw*b[3]
		t[i+1] = cx*b[4] + cy*b[5] + cz*b[6] + cw*b[7]
		t[i+2] = cx*b[8] + cy*b[9] + cz*b[10] + cw*b[11]
		t[i+3] = cx*b[12] + cy*b[13] + cz*b[14] + cw*b[15]
	}
	return t.Transpose()
}

// MulVec4 transforms a Vec4.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// MulVec3 transforms a Vec3 as a point (w=1) including the perspective
// divide. Use TransformVec3 for plain affine transforms.
func (m Mat4) MulVec3(v Vec3) Vec3 {
	w := m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]
	if w == 0 {
		w = 1
	}
	return Vec3{
		(m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]) / w,
		(m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]) / w,
		(m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]) / w,
	}
}

// TransformVec3 applies rotation, scale and translation to a point.
func (m Mat4) TransformVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12],
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13],
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14],
	}
}

// RotateVec3 applies only the rotation/scale block, ignoring translation.
func (m Mat4) RotateVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z,
	}
}

// InvRotateVec3 applies the transpose of the rotation block. For an
// orthogonal block this is the inverse rotation without computing an
// inverse.
func (m Mat4) InvRotateVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		m[4]*v.X + m[5]*v.Y + m[6]*v.Z,
		m[8]*v.X + m[9]*v.Y + m[10]*v.Z,
	}
}

// Translate post-multiplies by a translation, computed directly by adding
// the weighted basis columns to the translation column. The result is
// identical to m.Mul(Translation(V3(x, y, z))).
func (m Mat4) Translate(x, y, z Scalar) Mat4 {
	out := m
	out[12] += x*m[0] + y*m[4] + z*m[8]
	out[13] += x*m[1] + y*m[5] + z*m[9]
	out[14] += x*m[2] + y*m[6] + z*m[10]
	out[15] += x*m[3] + y*m[7] + z*m[11]
	return out
}

// Scale scales the three basis columns by x, y and z, equivalent to
// post-multiplying by a scale matrix.
func (m Mat4) Scale(x, y, z Scalar) Mat4 {
	out := m
	out[0] *= x
	out[1] *= x
	out[2] *= x
	out[3] *= x
	out[4] *= y
	out[5] *= y
	out[6] *= y
	out[7] *= y
	out[8] *= z
	out[9] *= z
	out[10] *= z
	out[11] *= z
	return out
}

// InverseOrthogonal returns the fast inverse of a rotation+translation
// matrix: the rotation block is transposed and the translation recomputed as
// -Rᵀt. Only valid when the upper 3x3 block is orthogonal.
func (m Mat4) InverseOrthogonal() Mat4 {
	out := Mat4{
		m[0], m[4], m[8], 0,
		m[1], m[5], m[9], 0,
		m[2], m[6], m[10], 0,
		0, 0, 0, 1,
	}
	out[12] = -(m[12]*m[0] + m[13]*m[1] + m[14]*m[2])
	out[13] = -(m[12]*m[4] + m[13]*m[5] + m[14]*m[6])
	out[14] = -(m[12]*m[8] + m[13]*m[9] + m[14]*m[10])
	return out
}

// InverseAffine returns the inverse of an affine matrix by inverting the
// upper 3x3 block through its cofactors and recomputing the translation.
// When the block's determinant is within Epsilon of zero it reports failure
// and returns the identity.
func (m Mat4) InverseAffine() (Mat4, bool) {
	c00 := m[5]*m[10] - m[6]*m[9]
	c01 := m[2]*m[9] - m[1]*m[10]
	c02 := m[1]*m[6] - m[2]*m[5]

	c10 := m[6]*m[8] - m[4]*m[10]
	c11 := m[0]*m[10] - m[2]*m[8]
	c12 := m[2]*m[4] - m[0]*m[6]

	c20 := m[4]*m[9] - m[5]*m[8]
	c21 := m[1]*m[8] - m[0]*m[9]
	c22 := m[0]*m[5] - m[1]*m[4]

	det := m[0]*c00 + m[1]*c10 + m[2]*c20
	if abs(det) < Epsilon {
		return Identity(), false
	}
	det = 1 / det

	var out Mat4
	out[0] = c00 * det
	out[1] = c01 * det
	out[2] = c02 * det
	out[4] = c10 * det
	out[5] = c11 * det
	out[6] = c12 * det
	out[8] = c20 * det
	out[9] = c21 * det
	out[10] = c22 * det

	out[12] = -((m[12] * c00) + (m[13] * c10) + (m[14] * c20)) * det
	out[13] = -((m[12] * c01) + (m[13] * c11) + (m[14] * c21)) * det
	out[14] = -((m[12] * c02) + (m[13] * c12) + (m[14] * c22)) * det
	out[15] = 1
	return out, true
}

// cofactor returns the 3x3 minor determinant of m for the given rows and
// columns, used by the 4x4 cofactor expansion.
func (m Mat4) cofactor(r0, r1, r2, c0, c1, c2 int) Scalar {
	at := func(r, c int) Scalar { return m[r*4+c] }
	return at(r0, c0)*(at(r1, c1)*at(r2, c2)-at(r2, c1)*at(r1, c2)) -
		at(r0, c1)*(at(r1, c0)*at(r2, c2)-at(r2, c0)*at(r1, c2)) +
		at(r0, c2)*(at(r1, c0)*at(r2, c1)-at(r2, c0)*at(r1, c1))
}

// Determinant returns the determinant by cofactor expansion over 3x3 minors.
func (m Mat4) Determinant() Scalar {
	return m[0]*m.cofactor(1, 2, 3, 1, 2, 3) -
		m[1]*m.cofactor(1, 2, 3, 0, 2, 3) +
		m[2]*m.cofactor(1, 2, 3, 0, 1, 3) -
		m[3]*m.cofactor(1, 2, 3, 0, 1, 2)
}

// Adjoint returns the adjugate matrix (transposed cofactors).
func (m Mat4) Adjoint() Mat4 {
	return Mat4{
		m.cofactor(1, 2, 3, 1, 2, 3),
		-m.cofactor(0, 2, 3, 1, 2, 3),
		m.cofactor(0, 1, 3, 1, 2, 3),
		-m.cofactor(0, 1, 2, 1, 2, 3),

		-m.cofactor(1, 2, 3, 0, 2, 3),
		m.cofactor(0, 2, 3, 0, 2, 3),
		-m.cofactor(0, 1, 3, 0, 2, 3),
		m.cofactor(0, 1, 2, 0, 2, 3),

		m.cofactor(1, 2, 3, 0, 1, 3),
		-m.cofactor(0, 2, 3, 0, 1, 3),
		m.cofactor(0, 1, 3, 0, 1, 3),
		-m.cofactor(0, 1, 2, 0, 1, 3),

		-m.cofactor(1, 2, 3, 0, 1, 2),
		m.cofactor(0, 2, 3, 0, 1, 2),
		-m.cofactor(0, 1, 3, 0, 1, 2),
		m.cofactor(0, 1, 2, 0, 1, 2),
	}
}

// InverseGeneral returns the full inverse via the adjugate and determinant.
// When the determinant is within Epsilon of zero it reports failure and
// returns the identity.
func (m Mat4) InverseGeneral() (Mat4, bool) {
	det := m.Determinant()
	if abs(det) < Epsilon {
		return Identity(), false
	}
	det = 1 / det

	out := m.Adjoint()
	for i := range out {
		out[i] *= det
	}
	return out, true
}

// Mat3 returns the upper-left 3x3 block.
func (m Mat4) Mat3() Mat3 {
	return Mat3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// Equals reports whether every element of a is within Epsilon of b.
func (a Mat4) Equals(b Mat4) bool {
	for i := range a {
		if !ApproxEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}
