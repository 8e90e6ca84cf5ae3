//go:build !doubleprecision

package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Scalar is the component type, float32 unless built with the doubleprecision tag
type Scalar = float32

// Tuple is an ordered (x, y, z) triple
type Tuple = mgl32.Vec3

// ScalarBits is the size of Scalar in bits
const ScalarBits = 32

// roundTo rounds c to the nearest multiple of precision, halves away from zero
func roundTo(c, precision Scalar) Scalar {
	return math32.Round(c/precision) * precision
}
