//go:build !math3d32

package math3d

// Scalar is the floating-point type used by every vector, matrix and
// quaternion in this package. Build with the math3d32 tag to get float32.
type Scalar = float64

// ScalarSize is the size of one Scalar in bytes.
const ScalarSize = 8

// Epsilon is the comparison tolerance used by the Equals methods. Two values
// closer than this are treated as the same number.
const Epsilon Scalar = 1e-9
