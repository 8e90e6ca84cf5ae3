package geometry

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/philipparndt/govec/pkg/floatfmt"
)

// maxComponents is the number of positional components a vector accepts
const maxComponents = 3

// Vector3 represents a 3D vector
type Vector3 struct {
	X, Y, Z Scalar
}

// Default returns the zero vector
func Default() Vector3 {
	return Vector3{}
}

// New creates a new 3D vector
func New(x, y, z Scalar) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Create builds a vector from up to three components; omitted trailing
// components are zero
func Create(components ...Scalar) (Vector3, error) {
	if len(components) > maxComponents {
		return Vector3{}, tooManyArguments(len(components))
	}

	var c [maxComponents]Scalar
	copy(c[:], components)
	return Vector3{X: c[0], Y: c[1], Z: c[2]}, nil
}

// FromValues builds a vector from up to three dynamically-typed values.
// Go numeric types and bool are accepted; anything else is an invalid argument.
func FromValues(values ...any) (Vector3, error) {
	if len(values) > maxComponents {
		return Vector3{}, tooManyArguments(len(values))
	}

	components := make([]Scalar, len(values))
	for i, value := range values {
		c, ok := toScalar(value)
		if !ok {
			return Vector3{}, NewError(CodeInvalidArgument,
				fmt.Sprintf("argument %d must be real number, not %s", i+1, typeName(value)))
		}
		components[i] = c
	}
	return Create(components...)
}

// Parse builds a vector from up to three textual components
func Parse(fields ...string) (Vector3, error) {
	if len(fields) > maxComponents {
		return Vector3{}, tooManyArguments(len(fields))
	}

	components := make([]Scalar, len(fields))
	for i, field := range fields {
		f, err := strconv.ParseFloat(strings.TrimSpace(field), ScalarBits)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return Vector3{}, WrapError(CodeInvalidArgument,
				fmt.Sprintf("could not convert string to float: '%s'", field), err)
		}
		components[i] = Scalar(f)
	}
	return Create(components...)
}

// FromTuple creates a vector from an ordered triple
func FromTuple(t Tuple) Vector3 {
	return Vector3{X: t[0], Y: t[1], Z: t[2]}
}

// Elem returns the three components
func (v Vector3) Elem() (x, y, z Scalar) {
	return v.X, v.Y, v.Z
}

// AsTuple returns the components as an independent ordered triple
func (v Vector3) AsTuple() Tuple {
	return Tuple{v.X, v.Y, v.Z}
}

// String returns the vector as a tuple literal, e.g. (1.0, 2.0, 3.0)
func (v Vector3) String() string {
	return compose(floatfmt.Repr(float64(v.X)), floatfmt.Repr(float64(v.Y)), floatfmt.Repr(float64(v.Z)))
}

// FormatSpec applies a single format specifier to each component independently
func (v Vector3) FormatSpec(spec string) (string, error) {
	s, err := floatfmt.ParseSpec(spec)
	if err != nil {
		return "", WrapError(CodeInvalidArgument, err.Error(), err)
	}
	return compose(s.Apply(float64(v.X)), s.Apply(float64(v.Y)), s.Apply(float64(v.Z))), nil
}

// Round returns a new vector with each component rounded to the nearest
// multiple of precision
func (v Vector3) Round(precision Scalar) Vector3 {
	return Vector3{
		X: roundTo(v.X, precision),
		Y: roundTo(v.Y, precision),
		Z: roundTo(v.Z, precision),
	}
}

func compose(x, y, z string) string {
	return "(" + x + ", " + y + ", " + z + ")"
}

func tooManyArguments(n int) error {
	return NewError(CodeInvalidArgument,
		fmt.Sprintf("function takes at most %d arguments (%d given)", maxComponents, n))
}

func toScalar(value any) (Scalar, bool) {
	switch v := value.(type) {
	case float32:
		return Scalar(v), true
	case float64:
		return Scalar(v), true
	case int:
		return Scalar(v), true
	case int8:
		return Scalar(v), true
	case int16:
		return Scalar(v), true
	case int32:
		return Scalar(v), true
	case int64:
		return Scalar(v), true
	case uint:
		return Scalar(v), true
	case uint8:
		return Scalar(v), true
	case uint16:
		return Scalar(v), true
	case uint32:
		return Scalar(v), true
	case uint64:
		return Scalar(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

// TypeNamer is implemented by values from another type system that want
// their own type name in argument errors
type TypeNamer interface {
	TypeName() string
}

func typeName(value any) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case TypeNamer:
		return v.TypeName()
	}
	return fmt.Sprintf("%T", value)
}
