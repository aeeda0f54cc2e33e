package math3d

// Mat3 is a 3x3 rotation/scale matrix stored in column-major order, matching
// the Mat4 convention.
//
// Memory layout (indices):
//
//	| 0  3  6 |
//	| 1  4  7 |
//	| 2  5  8 |
//
// The three basis vectors live in columns 0-2, 3-5 and 6-8.
type Mat3 [9]Scalar

// Mat3Len is the number of elements in a Mat3.
const Mat3Len = 9

// Mat3Size is the size of a Mat3 in bytes.
const Mat3Size = Mat3Len * ScalarSize

// Identity3 returns the 3x3 identity matrix.
func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// M3FromAxes builds a matrix from three basis column vectors.
func M3FromAxes(x, y, z Vec3) Mat3 {
	return Mat3{
		x.X, x.Y, x.Z,
		y.X, y.Y, y.Z,
		z.X, z.Y, z.Z,
	}
}

// M3Rotation returns the rotation of angle degrees about axis, built with
// Rodrigues' formula. The axis is normalized internally.
func M3Rotation(degrees Scalar, axis Vec3) Mat3 {
	axis = axis.Normalize()
	x, y, z := axis.X, axis.Y, axis.Z
	c := cos(degrees * Deg2Rad)
	s := sin(degrees * Deg2Rad)
	ic := 1 - c
	xy, yz, xz := x*y*ic, y*z*ic, x*z*ic
	xs, ys, zs := s*x, s*y, s*z

	return Mat3{
		x*x*ic + c, xy + zs, xz - ys,
		xy - zs, y*y*ic + c, yz + xs,
		xz + ys, yz - xs, z*z*ic + c,
	}
}

// Get returns the element at (row, col). Panics if either index is outside
// [0, 2].
func (m Mat3) Get(row, col int) Scalar {
	checkIndex3(row)
	checkIndex3(col)
	return m[row+col*3]
}

// Set sets the element at (row, col). Panics if either index is outside
// [0, 2].
func (m *Mat3) Set(row, col int, val Scalar) {
	checkIndex3(row)
	checkIndex3(col)
	m[row+col*3] = val
}

// Row returns row i as a vector. Panics if i is outside [0, 2].
func (m Mat3) Row(i int) Vec3 {
	checkIndex3(i)
	return Vec3{m[i], m[i+3], m[i+6]}
}

// Col returns column i as a vector. Panics if i is outside [0, 2].
func (m Mat3) Col(i int) Vec3 {
	checkIndex3(i)
	return Vec3{m[i*3], m[i*3+1], m[i*3+2]}
}

// SetRow replaces row i. Panics if i is outside [0, 2].
func (m *Mat3) SetRow(i int, v Vec3) {
	checkIndex3(i)
	m[i] = v.X
	m[i+3] = v.Y
	m[i+6] = v.Z
}

// SetCol replaces column i. Panics if i is outside [0, 2].
func (m *Mat3) SetCol(i int, v Vec3) {
	checkIndex3(i)
	m[i*3] = v.X
	m[i*3+1] = v.Y
	m[i*3+2] = v.Z
}

func checkIndex3(i int) {
	if i < 0 || i > 2 {
		panic("math3d: Mat3 index out of range")
	}
}

// Transpose returns the transposed matrix.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Scale scales the three basis columns by x, y and z, equivalent to
// post-multiplying by a scale matrix.
func (m Mat3) Scale(x, y, z Scalar) Mat3 {
	return Mat3{
		m[0] * x, m[1] * x, m[2] * x,
		m[3] * y, m[4] * y, m[5] * y,
		m[6] * z, m[7] * z, m[8] * z,
	}
}

// Mul multiplies two matrices: a * b. The left operand is transposed into a
// scratch matrix first so both factors are walked sequentially; the result
// is the ordinary matrix product.
func (a Mat3) Mul(b Mat3) Mat3 {
	t := a.Transpose()
	for i := 0; i < 9; i += 3 {
		cx, cy, cz := t[i], t[i+1], t[i+2]
		t[i] = cx*b[0] + cy*b[1] + cz*b[2]
		t[i+1] = cx*b[3] + cy*b[4] + cz*b[5]
		t[i+2] = cx*b[6] + cy*b[7] + cz*b[8]
	}
	return t.Transpose()
}

// RotateVec3 applies the matrix to v.
func (m Mat3) RotateVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}

// InvRotateVec3 applies the transpose of the matrix to v. For an orthogonal
// matrix this is the inverse rotation without computing an inverse.
func (m Mat3) InvRotateVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// Determinant returns the determinant by cofactor expansion.
func (m Mat3) Determinant() Scalar {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) +
		m[1]*(m[5]*m[6]-m[3]*m[8]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Cofactor returns the cofactor matrix.
func (m Mat3) Cofactor() Mat3 {
	return Mat3{
		m[4]*m[8] - m[5]*m[7],
		-(m[3]*m[8] - m[5]*m[6]),
		m[3]*m[7] - m[4]*m[6],

		-(m[1]*m[8] - m[2]*m[7]),
		m[0]*m[8] - m[2]*m[6],
		-(m[0]*m[7] - m[1]*m[6]),

		m[1]*m[5] - m[2]*m[4],
		-(m[0]*m[5] - m[2]*m[3]),
		m[0]*m[4] - m[1]*m[3],
	}
}

// Adjoint returns the transposed cofactor matrix.
func (m Mat3) Adjoint() Mat3 {
	return m.Cofactor().Transpose()
}

// Inverse returns the inverse matrix. When the determinant is within Epsilon
// of zero it reports failure and returns the identity.
func (m Mat3) Inverse() (Mat3, bool) {
	det := m.Determinant()
	if approxZero(det) {
		return Identity3(), false
	}
	det = 1 / det

	out := m.Adjoint()
	for i := range out {
		out[i] *= det
	}
	return out, true
}

// Orthogonal re-orthonormalizes a drifted rotation matrix: the Z basis is
// normalized, X is rebuilt from Y×Z, and Y from Z×X, preserving a
// right-handed frame.
func (m Mat3) Orthogonal() Mat3 {
	z := m.Col(2).Normalize()
	x := m.Col(1).Cross(z).Normalize()
	y := z.Cross(x)
	return M3FromAxes(x, y, z)
}

// Mat4 embeds the matrix in the upper-left block of a 4x4 matrix.
func (m Mat3) Mat4() Mat4 {
	return Mat4{
		m[0], m[1], m[2], 0,
		m[3], m[4], m[5], 0,
		m[6], m[7], m[8], 0,
		0, 0, 0, 1,
	}
}

// Equals reports whether every element of a is within Epsilon of b.
func (a Mat3) Equals(b Mat3) bool {
	for i := range a {
		if !ApproxEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}
