//go:build math3d32

package math3d

// Scalar is the floating-point type used by every vector, matrix and
// quaternion in this package. This build uses float32.
type Scalar = float32

// ScalarSize is the size of one Scalar in bytes.
const ScalarSize = 4

// Epsilon is the comparison tolerance used by the Equals methods. 1e-9 is
// below float32 resolution, so the 32-bit build widens it.
const Epsilon Scalar = 1e-6
