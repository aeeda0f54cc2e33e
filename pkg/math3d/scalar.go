// Package math3d provides fixed-size linear algebra primitives for 3D
// transforms: 2/3/4-component vectors, 3x3 and 4x4 matrices and quaternions.
//
// Every type is a small value; operations take and return values, so
// computing in place (v = v.Add(v), m = m.Mul(m)) is always safe. Angles
// cross the API in degrees and are converted to radians internally.
package math3d

import "math"

// Degree/radian conversion factors.
const (
	Deg2Rad Scalar = math.Pi / 180
	Rad2Deg Scalar = 180 / math.Pi
)

// ApproxEqual reports whether a and b are within Epsilon of each other.
func ApproxEqual(a, b Scalar) bool {
	return approxZero(a - b)
}

func approxZero(x Scalar) bool {
	if x < 0 {
		x = -x
	}
	return x < Epsilon
}

func clamp01(x Scalar) Scalar {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Thin wrappers so the same algorithm source compiles for both scalar widths.

func sqrt(x Scalar) Scalar { return Scalar(math.Sqrt(float64(x))) }
func sin(x Scalar) Scalar  { return Scalar(math.Sin(float64(x))) }
func cos(x Scalar) Scalar  { return Scalar(math.Cos(float64(x))) }
func tan(x Scalar) Scalar  { return Scalar(math.Tan(float64(x))) }
func acos(x Scalar) Scalar { return Scalar(math.Acos(float64(x))) }
func abs(x Scalar) Scalar  { return Scalar(math.Abs(float64(x))) }
