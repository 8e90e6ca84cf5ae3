// Package floatfmt renders float64 values the way a dynamically-typed
// scripting environment does: a shortest round-trip representation for
// display, and a format specification mini-language for formatting.
package floatfmt

import (
	"math"
	"strconv"
	"strings"
)

// reprExpThreshold is the largest decimal point position still shown in fixed notation
const reprExpThreshold = 16

// Repr returns the shortest text that round-trips to x
func Repr(x float64) string {
	switch {
	case math.IsNaN(x):
		return "nan"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}

	sign := ""
	if math.Signbit(x) {
		sign = "-"
		x = -x
	}
	return sign + reprAbs(x)
}

// reprAbs renders a finite, non-negative value
func reprAbs(x float64) string {
	mant, exp := splitExp(strconv.FormatFloat(x, 'e', -1, 64))
	digits := strings.Replace(mant, ".", "", 1)
	decpt := exponent(exp) + 1

	if decpt <= -4 || decpt > reprExpThreshold {
		return mant + "e" + exp
	}

	switch {
	case decpt <= 0:
		return "0." + strings.Repeat("0", -decpt) + digits
	case decpt >= len(digits):
		return digits + strings.Repeat("0", decpt-len(digits)) + ".0"
	default:
		return digits[:decpt] + "." + digits[decpt:]
	}
}

// splitExp splits "d.ddde+XX" into its mantissa and exponent parts
func splitExp(s string) (mant, exp string) {
	i := strings.IndexByte(s, 'e')
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i+1:]
}

func exponent(exp string) int {
	n, _ := strconv.Atoi(exp)
	return n
}
