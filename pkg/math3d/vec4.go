package math3d

// Vec4 represents a 4D vector (or homogeneous 3D point).
type Vec4 struct {
	X, Y, Z, W Scalar
}

// Vec4Len is the number of components in a Vec4.
const Vec4Len = 4

// Vec4Size is the size of a Vec4 in bytes.
const Vec4Size = Vec4Len * ScalarSize

// V4 creates a new Vec4.
func V4(x, y, z, w Scalar) Vec4 {
	return Vec4{x, y, z, w}
}

// V4FromV3 creates a Vec4 from a Vec3 with the specified w.
func V4FromV3(v Vec3, w Scalar) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

// Zero4 returns the zero vector.
func Zero4() Vec4 {
	return Vec4{}
}

// One4 returns the all-ones vector.
func One4() Vec4 {
	return Vec4{1, 1, 1, 1}
}

// V4FromSlice builds a Vec4 from four consecutive elements of s starting at
// offset. Panics if s is too short.
func V4FromSlice(s []Scalar, offset int) Vec4 {
	return Vec4{s[offset], s[offset+1], s[offset+2], s[offset+3]}
}

// Array returns the components as a fixed-size array.
func (a Vec4) Array() [Vec4Len]Scalar {
	return [Vec4Len]Scalar{a.X, a.Y, a.Z, a.W}
}

// Vec3 returns the XYZ portion, dropping w.
func (a Vec4) Vec3() Vec3 {
	return Vec3{a.X, a.Y, a.Z}
}

// PerspectiveDivide returns the XYZ portion divided by w. A zero w returns
// the XYZ portion unchanged.
func (a Vec4) PerspectiveDivide() Vec3 {
	if a.W == 0 {
		return Vec3{a.X, a.Y, a.Z}
	}
	return Vec3{a.X / a.W, a.Y / a.W, a.Z / a.W}
}

// Add returns the vector sum a + b.
func (a Vec4) Add(b Vec4) Vec4 {
	return Vec4{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

// Sub returns the vector difference a - b.
func (a Vec4) Sub(b Vec4) Vec4 {
	return Vec4{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}

// Mul returns the component-wise product a * b.
func (a Vec4) Mul(b Vec4) Vec4 {
	return Vec4{a.X * b.X, a.Y * b.Y, a.Z * b.Z, a.W * b.W}
}

// Negate returns the negated vector.
func (a Vec4) Negate() Vec4 {
	return Vec4{-a.X, -a.Y, -a.Z, -a.W}
}

// Inverse returns the component-wise reciprocal. Components that are exactly
// zero are left at zero instead of becoming infinite.
func (a Vec4) Inverse() Vec4 {
	out := a
	if out.X != 0 {
		out.X = 1 / out.X
	}
	if out.Y != 0 {
		out.Y = 1 / out.Y
	}
	if out.Z != 0 {
		out.Z = 1 / out.Z
	}
	if out.W != 0 {
		out.W = 1 / out.W
	}
	return out
}

// Scale returns the scalar product a * s.
func (a Vec4) Scale(s Scalar) Vec4 {
	return Vec4{a.X * s, a.Y * s, a.Z * s, a.W * s}
}

// Div divides the vector by s via multiplication with the reciprocal. When s
// is exactly zero it reports failure and returns a unchanged.
func (a Vec4) Div(s Scalar) (Vec4, bool) {
	if s == 0 {
		return a, false
	}
	s = 1 / s
	return Vec4{a.X * s, a.Y * s, a.Z * s, a.W * s}, true
}

// LenSq returns the squared length (faster, no sqrt).
func (a Vec4) LenSq() Scalar {
	return a.X*a.X + a.Y*a.Y + a.Z*a.Z + a.W*a.W
}

// Len returns the length (magnitude) of the vector.
func (a Vec4) Len() Scalar {
	return sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z + a.W*a.W)
}

// Normalize returns the unit vector in the same direction. The zero vector
// normalizes to itself.
func (a Vec4) Normalize() Vec4 {
	mag := a.Len()
	if mag != 0 {
		mag = 1 / mag
	}
	return Vec4{a.X * mag, a.Y * mag, a.Z * mag, a.W * mag}
}

// Dot returns the dot product a · b.
func (a Vec4) Dot(b Vec4) Scalar {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Project returns the projection of a onto n, n * (a · n). A true projection
// requires n to be unit length; n is not normalized here.
func (a Vec4) Project(n Vec4) Vec4 {
	return n.Scale(a.Dot(n))
}

// Reflect returns the reflection of a around normal n.
func (a Vec4) Reflect(n Vec4) Vec4 {
	return a.Sub(n.Scale(2 * a.Dot(n)))
}

// Lerp returns the linear interpolation between a and b by t.
func (a Vec4) Lerp(b Vec4, t Scalar) Vec4 {
	return Vec4{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
		a.W + (b.W-a.W)*t,
	}
}

// Equals reports whether every component of a is within Epsilon of b.
func (a Vec4) Equals(b Vec4) bool {
	return ApproxEqual(a.X, b.X) && ApproxEqual(a.Y, b.Y) &&
		ApproxEqual(a.Z, b.Z) && ApproxEqual(a.W, b.W)
}
