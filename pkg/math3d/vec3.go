package math3d

// Vec3 represents a 3D vector.
type Vec3 struct {
	X, Y, Z Scalar
}

// Vec3Len is the number of components in a Vec3.
const Vec3Len = 3

// Vec3Size is the size of a Vec3 in bytes.
const Vec3Size = Vec3Len * ScalarSize

// V3 creates a new Vec3.
func V3(x, y, z Scalar) Vec3 {
	return Vec3{x, y, z}
}

// Zero3 returns the zero vector.
func Zero3() Vec3 {
	return Vec3{}
}

// One3 returns the all-ones vector.
func One3() Vec3 {
	return Vec3{1, 1, 1}
}

// Up returns the world up vector (0, 1, 0).
func Up() Vec3 {
	return Vec3{0, 1, 0}
}

// Forward returns the world forward vector (0, 0, -1).
func Forward() Vec3 {
	return Vec3{0, 0, -1}
}

// Right returns the world right vector (1, 0, 0).
func Right() Vec3 {
	return Vec3{1, 0, 0}
}

// V3FromSlice builds a Vec3 from three consecutive elements of s starting at
// offset. Panics if s is too short.
func V3FromSlice(s []Scalar, offset int) Vec3 {
	return Vec3{s[offset], s[offset+1], s[offset+2]}
}

// Array returns the components as a fixed-size array.
func (a Vec3) Array() [Vec3Len]Scalar {
	return [Vec3Len]Scalar{a.X, a.Y, a.Z}
}

// Vec2 returns the XY portion.
func (a Vec3) Vec2() Vec2 {
	return Vec2{a.X, a.Y}
}

// Vec4 returns a Vec4 with the given w component.
func (a Vec3) Vec4(w Scalar) Vec4 {
	return Vec4{a.X, a.Y, a.Z, w}
}

// Add returns the vector sum a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the vector difference a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Mul returns the component-wise product a * b.
func (a Vec3) Mul(b Vec3) Vec3 {
	return Vec3{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

// Negate returns the negated vector.
func (a Vec3) Negate() Vec3 {
	return Vec3{-a.X, -a.Y, -a.Z}
}

// Inverse returns the component-wise reciprocal. Components that are exactly
// zero are left at zero instead of becoming infinite.
func (a Vec3) Inverse() Vec3 {
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
	return out
}

// Scale returns the scalar product a * s.
func (a Vec3) Scale(s Scalar) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Div divides the vector by s via multiplication with the reciprocal. When s
// is exactly zero it reports failure and returns a unchanged.
func (a Vec3) Div(s Scalar) (Vec3, bool) {
	if s == 0 {
		return a, false
	}
	s = 1 / s
	return Vec3{a.X * s, a.Y * s, a.Z * s}, true
}

// LenSq returns the squared length (faster, no sqrt).
func (a Vec3) LenSq() Scalar {
	return a.X*a.X + a.Y*a.Y + a.Z*a.Z
}

// Len returns the length (magnitude) of the vector.
func (a Vec3) Len() Scalar {
	return sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z)
}

// Normalize returns the unit vector in the same direction. The zero vector
// normalizes to itself.
func (a Vec3) Normalize() Vec3 {
	mag := a.Len()
	if mag != 0 {
		mag = 1 / mag
	}
	return Vec3{a.X * mag, a.Y * mag, a.Z * mag}
}

// Dot returns the dot product a · b.
func (a Vec3) Dot(b Vec3) Scalar {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the right-handed cross product a × b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Project returns the projection of a onto n, n * (a · n). A true projection
// requires n to be unit length; n is not normalized here.
func (a Vec3) Project(n Vec3) Vec3 {
	return n.Scale(a.Dot(n))
}

// Reflect returns the reflection of a around normal n.
func (a Vec3) Reflect(n Vec3) Vec3 {
	return a.Sub(n.Scale(2 * a.Dot(n)))
}

// Lerp returns the linear interpolation between a and b by t.
func (a Vec3) Lerp(b Vec3, t Scalar) Vec3 {
	return Vec3{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
	}
}

// Distance returns the distance between two points.
func (a Vec3) Distance(b Vec3) Scalar {
	return a.Sub(b).Len()
}

// Min returns the component-wise minimum.
func (a Vec3) Min(b Vec3) Vec3 {
	return Vec3{
		min(a.X, b.X),
		min(a.Y, b.Y),
		min(a.Z, b.Z),
	}
}

// Max returns the component-wise maximum.
func (a Vec3) Max(b Vec3) Vec3 {
	return Vec3{
		max(a.X, b.X),
		max(a.Y, b.Y),
		max(a.Z, b.Z),
	}
}

// Equals reports whether every component of a is within Epsilon of b.
func (a Vec3) Equals(b Vec3) bool {
	return ApproxEqual(a.X, b.X) && ApproxEqual(a.Y, b.Y) && ApproxEqual(a.Z, b.Z)
}
