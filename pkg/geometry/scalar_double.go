//go:build doubleprecision

package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Scalar is the component type, float64 when built with the doubleprecision tag
type Scalar = float64

// Tuple is an ordered (x, y, z) triple
type Tuple = mgl64.Vec3

// ScalarBits is the size of Scalar in bits
const ScalarBits = 64

// roundTo rounds c to the nearest multiple of precision, halves away from zero.
// The precision itself is always a float32 value, in both build modes.
func roundTo(c, precision Scalar) Scalar {
	p := float64(float32(precision))
	return math.Round(c/p) * p
}
