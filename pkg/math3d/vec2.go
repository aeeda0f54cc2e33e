package math3d

// Vec2 represents a 2D vector.
type Vec2 struct {
	X, Y Scalar
}

// Vec2Len is the number of components in a Vec2.
const Vec2Len = 2

// Vec2Size is the size of a Vec2 in bytes.
const Vec2Size = Vec2Len * ScalarSize

// V2 creates a new Vec2.
func V2(x, y Scalar) Vec2 {
	return Vec2{x, y}
}

// Zero2 returns the zero vector.
func Zero2() Vec2 {
	return Vec2{}
}

// One2 returns the all-ones vector.
func One2() Vec2 {
	return Vec2{1, 1}
}

// V2FromSlice builds a Vec2 from two consecutive elements of s starting at
// offset. Panics if s is too short.
func V2FromSlice(s []Scalar, offset int) Vec2 {
	return Vec2{s[offset], s[offset+1]}
}

// Array returns the components as a fixed-size array.
func (a Vec2) Array() [Vec2Len]Scalar {
	return [Vec2Len]Scalar{a.X, a.Y}
}

// Add returns the vector sum a + b.
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// Sub returns the vector difference a - b.
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Mul returns the component-wise product a * b.
func (a Vec2) Mul(b Vec2) Vec2 {
	return Vec2{a.X * b.X, a.Y * b.Y}
}

// Negate returns the negated vector.
func (a Vec2) Negate() Vec2 {
	return Vec2{-a.X, -a.Y}
}

// Inverse returns the component-wise reciprocal. Components that are exactly
// zero are left at zero instead of becoming infinite.
func (a Vec2) Inverse() Vec2 {
	out := a
	if out.X != 0 {
		out.X = 1 / out.X
	}
	if out.Y != 0 {
		out.Y = 1 / out.Y
	}
	return out
}

// Scale returns the scalar product a * s.
func (a Vec2) Scale(s Scalar) Vec2 {
	return Vec2{a.X * s, a.Y * s}
}

// Div divides the vector by s via multiplication with the reciprocal. When s
// is exactly zero it reports failure and returns a unchanged.
func (a Vec2) Div(s Scalar) (Vec2, bool) {
	if s == 0 {
		return a, false
	}
	s = 1 / s
	return Vec2{a.X * s, a.Y * s}, true
}

// LenSq returns the squared length (faster, no sqrt).
func (a Vec2) LenSq() Scalar {
	return a.X*a.X + a.Y*a.Y
}

// Len returns the length (magnitude) of the vector.
func (a Vec2) Len() Scalar {
	return sqrt(a.X*a.X + a.Y*a.Y)
}

// Normalize returns the unit vector in the same direction. The zero vector
// normalizes to itself.
func (a Vec2) Normalize() Vec2 {
	mag := a.Len()
	if mag != 0 {
		mag = 1 / mag
	}
	return Vec2{a.X * mag, a.Y * mag}
}

// Dot returns the dot product a · b.
func (a Vec2) Dot(b Vec2) Scalar {
	return a.X*b.X + a.Y*b.Y
}

// Project returns the projection of a onto n, n * (a · n). A true projection
// requires n to be unit length; n is not normalized here.
func (a Vec2) Project(n Vec2) Vec2 {
	return n.Scale(a.Dot(n))
}

// Reflect returns the reflection of a around normal n.
func (a Vec2) Reflect(n Vec2) Vec2 {
	return a.Sub(n.Scale(2 * a.Dot(n)))
}

// Lerp returns the linear interpolation between a and b by t.
func (a Vec2) Lerp(b Vec2, t Scalar) Vec2 {
	return Vec2{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
	}
}

// Distance returns the distance between two points.
func (a Vec2) Distance(b Vec2) Scalar {
	return a.Sub(b).Len()
}

// Equals reports whether every component of a is within Epsilon of b.
func (a Vec2) Equals(b Vec2) bool {
	return ApproxEqual(a.X, b.X) && ApproxEqual(a.Y, b.Y)
}
