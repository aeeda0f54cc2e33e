package math3d

// Quat is a rotation quaternion. It shares the four-scalar shape of Vec4 but
// has its own multiplication, inverse and interpolation semantics; convert
// explicitly with Vec4 and QFromVec4 when the raw components are needed.
//
// Rotation operations assume (and do not enforce) a unit quaternion.
type Quat struct {
	X, Y, Z, W Scalar
}

// QuatLen is the number of components in a Quat.
const QuatLen = 4

// QuatSize is the size of a Quat in bytes.
const QuatSize = QuatLen * ScalarSize

// Q creates a quaternion from explicit components.
func Q(x, y, z, w Scalar) Quat {
	return Quat{x, y, z, w}
}

// QIdentity returns the identity rotation (0, 0, 0, 1).
func QIdentity() Quat {
	return Quat{0, 0, 0, 1}
}

// QFromVec4 reinterprets a Vec4 as a quaternion.
func QFromVec4(v Vec4) Quat {
	return Quat{v.X, v.Y, v.Z, v.W}
}

// Vec4 returns the raw components as a Vec4.
func (q Quat) Vec4() Vec4 {
	return Vec4{q.X, q.Y, q.Z, q.W}
}

// QFromAngleAxis returns the rotation of angle degrees about axis. The axis
// is normalized internally.
func QFromAngleAxis(degrees Scalar, axis Vec3) Quat {
	axis = axis.Normalize()
	half := degrees * Deg2Rad * 0.5
	s := sin(half)
	return Quat{axis.X * s, axis.Y * s, axis.Z * s, cos(half)}
}

// Mul composes two rotations: a.Mul(b) applies a first, then b. The order
// matters; b.Mul(a) is generally a different rotation.
func (a Quat) Mul(b Quat) Quat {
	av := Vec3{a.X, a.Y, a.Z}
	bv := Vec3{b.X, b.Y, b.Z}
	v := bv.Scale(a.W).Add(av.Scale(b.W)).Add(bv.Cross(av))
	return Quat{v.X, v.Y, v.Z, a.W*b.W - av.Dot(bv)}
}

// RotateVec3 rotates v by q using the double-cross form
//
//	t = 2 * (q.xyz × v);  out = v + q.w*t + q.xyz × t
//
// which avoids building a rotation matrix. The result matches converting q
// to a Mat3 and multiplying.
func (q Quat) RotateVec3(v Vec3) Vec3 {
	qv := Vec3{q.X, q.Y, q.Z}
	t := qv.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(qv.Cross(t))
}

// Inverse returns the conjugate, which inverts the rotation of a unit
// quaternion. This is not the component-wise Vec4 reciprocal.
func (q Quat) Inverse() Quat {
	return Quat{-q.X, -q.Y, -q.Z, q.W}
}

// Negate returns the antipodal quaternion, which represents the same
// rotation.
func (q Quat) Negate() Quat {
	return Quat{-q.X, -q.Y, -q.Z, -q.W}
}

// Dot returns the four-component dot product.
func (a Quat) Dot(b Quat) Scalar {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// LenSq returns the squared magnitude.
func (q Quat) LenSq() Scalar {
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
}

// Len returns the magnitude.
func (q Quat) Len() Scalar {
	return sqrt(q.LenSq())
}

// Normalize returns the unit quaternion. The zero quaternion normalizes to
// itself.
func (q Quat) Normalize() Quat {
	mag := q.Len()
	if mag != 0 {
		mag = 1 / mag
	}
	return Quat{q.X * mag, q.Y * mag, q.Z * mag, q.W * mag}
}

// Lerp returns the component-wise linear interpolation between a and b by t.
// The result is generally not unit length; see Slerp for rotations.
func (a Quat) Lerp(b Quat, t Scalar) Quat {
	return Quat{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
		a.W + (b.W-a.W)*t,
	}
}

// Slerp spherically interpolates from a to b by t, clamped to [0, 1]. When
// the dot product is negative b is negated first so the interpolation takes
// the shorter of the two arcs. Near-identical or near-antipodal inputs, where
// sin(angle) vanishes, fall back to linear interpolation plus
// renormalization.
func (a Quat) Slerp(b Quat, t Scalar) Quat {
	d := a.Dot(b)
	if d < 0 {
		d = -d
		b = b.Negate()
	}
	t = clamp01(t)

	if d > 1 {
		d = 1
	}
	angle := acos(d)
	s := sin(angle)
	if approxZero(s) {
		return a.Lerp(b, t).Normalize()
	}

	scale0 := sin((1-t)*angle) / s
	scale1 := sin(t*angle) / s
	return Quat{
		a.X*scale0 + b.X*scale1,
		a.Y*scale0 + b.Y*scale1,
		a.Z*scale0 + b.Z*scale1,
		a.W*scale0 + b.W*scale1,
	}
}

// Equals reports whether every component of a is within Epsilon of b. Note
// that q and q.Negate() compare unequal even though they rotate identically.
func (a Quat) Equals(b Quat) bool {
	return ApproxEqual(a.X, b.X) && ApproxEqual(a.Y, b.Y) &&
		ApproxEqual(a.Z, b.Z) && ApproxEqual(a.W, b.W)
}

// Mat3 returns the rotation matrix form of q.
func (q Quat) Mat3() Mat3 {
	tx, ty, tz := 2*q.X, 2*q.Y, 2*q.Z
	xx, xy, xz := tx*q.X, tx*q.Y, tx*q.Z
	yy, yz, zz := ty*q.Y, ty*q.Z, tz*q.Z
	wx, wy, wz := tx*q.W, ty*q.W, tz*q.W

	return Mat3{
		1 - (yy + zz), xy + wz, xz - wy,
		xy - wz, 1 - (xx + zz), yz + wx,
		xz + wy, yz - wx, 1 - (xx + yy),
	}
}

// Mat4 returns the rotation matrix form of q with no translation.
func (q Quat) Mat4() Mat4 {
	return q.Mat3().Mat4()
}

// QFromMat3 extracts the rotation quaternion from a rotation matrix using
// trace-based extraction. When the trace is non-positive the dominant
// diagonal element picks the pivot component, which keeps the square roots
// and divisions away from zero.
func QFromMat3(m Mat3) Quat {
	trace := m[0] + m[4] + m[8]
	if trace > 0 {
		r := sqrt(trace + 1)
		w := r * 0.5
		r = 0.5 / r
		return Quat{
			(m[5] - m[7]) * r,
			(m[6] - m[2]) * r,
			(m[1] - m[3]) * r,
			w,
		}
	}

	switch {
	case m[0] >= m[4] && m[0] >= m[8]:
		r := sqrt(m[0] - m[4] - m[8] + 1)
		x := r * 0.5
		if !approxZero(r) {
			r = 0.5 / r
		}
		return Quat{x, (m[1] + m[3]) * r, (m[2] + m[6]) * r, (m[5] - m[7]) * r}
	case m[4] >= m[8]:
		r := sqrt(m[4] - m[8] - m[0] + 1)
		y := r * 0.5
		if !approxZero(r) {
			r = 0.5 / r
		}
		return Quat{(m[1] + m[3]) * r, y, (m[5] + m[7]) * r, (m[6] - m[2]) * r}
	default:
		r := sqrt(m[8] - m[0] - m[4] + 1)
		z := r * 0.5
		if !approxZero(r) {
			r = 0.5 / r
		}
		return Quat{(m[2] + m[6]) * r, (m[5] + m[7]) * r, z, (m[1] - m[3]) * r}
	}
}

// QFromMat4 extracts the rotation quaternion from the upper 3x3 block of m,
// using the same pivot selection as QFromMat3.
func QFromMat4(m Mat4) Quat {
	trace := m[0] + m[5] + m[10]
	if trace > 0 {
		r := sqrt(trace + 1)
		w := r * 0.5
		r = 0.5 / r
		return Quat{
			(m[6] - m[9]) * r,
			(m[8] - m[2]) * r,
			(m[1] - m[4]) * r,
			w,
		}
	}

	switch {
	case m[0] >= m[5] && m[0] >= m[10]:
		r := sqrt(m[0] - m[5] - m[10] + 1)
		x := r * 0.5
		if !approxZero(r) {
			r = 0.5 / r
		}
		return Quat{x, (m[1] + m[4]) * r, (m[2] + m[8]) * r, (m[6] - m[9]) * r}
	case m[5] >= m[10]:
		r := sqrt(m[5] - m[10] - m[0] + 1)
		y := r * 0.5
		if !approxZero(r) {
			r = 0.5 / r
		}
		return Quat{(m[1] + m[4]) * r, y, (m[6] + m[9]) * r, (m[8] - m[2]) * r}
	default:
		r := sqrt(m[10] - m[0] - m[5] + 1)
		z := r * 0.5
		if !approxZero(r) {
			r = 0.5 / r
		}
		return Quat{(m[2] + m[8]) * r, (m[6] + m[9]) * r, z, (m[1] - m[4]) * r}
	}
}
