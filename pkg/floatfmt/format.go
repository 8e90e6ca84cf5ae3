package floatfmt

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// defaultPrecision applies to every presentation type except the bare one
const defaultPrecision = 6

// Format parses spec and applies it to x
func Format(x float64, spec string) (string, error) {
	s, err := ParseSpec(spec)
	if err != nil {
		return "", err
	}
	return s.Apply(x), nil
}

// Apply renders x according to s
func (s Spec) Apply(x float64) string {
	typ := s.Type
	addDot0 := false
	precision := defaultPrecision
	if typ == 0 {
		// Bare type: repr without a precision, 'g' keeping a fractional digit with one.
		addDot0 = true
		typ = 'r'
		precision = 0
	}
	if typ == 'n' {
		typ = 'g'
	}
	percent := false
	if typ == '%' {
		typ = 'f'
		x *= 100
		percent = true
	}
	if s.Precision >= 0 {
		precision = s.Precision
		if typ == 'r' {
			typ = 'g'
		}
	}

	negative := math.Signbit(x) && !math.IsNaN(x)
	body := formatAbs(math.Abs(x), typ, precision, s.Alternate, addDot0)
	if negative && s.NoNegZero && isZero(body) {
		negative = false
	}

	switch s.Type {
	case 'E', 'F', 'G':
		body = strings.ToUpper(body)
	}
	if percent {
		body += "%"
	}

	sign := ""
	switch {
	case negative:
		sign = "-"
	case s.Sign == '+':
		sign = "+"
	case s.Sign == ' ':
		sign = " "
	}

	intPart, rest := splitInteger(body)
	if s.Grouping != 0 && intPart != "" {
		minWidth := 0
		if s.Fill == '0' && s.Align == '=' {
			minWidth = s.Width - len(sign) - len(rest)
		}
		intPart = group(intPart, s.Grouping, minWidth)
	}

	return s.pad(sign, intPart+rest)
}

// formatAbs renders a non-negative value without sign, padding or grouping
func formatAbs(a float64, typ byte, precision int, alternate, addDot0 bool) string {
	if math.IsInf(a, 0) {
		return "inf"
	}
	if math.IsNaN(a) {
		return "nan"
	}

	switch typ {
	case 'r':
		out := reprAbs(a)
		if alternate {
			out = ensurePoint(out)
		}
		return out
	case 'f', 'F':
		out := strconv.FormatFloat(a, 'f', precision, 64)
		if alternate {
			out = ensurePoint(out)
		}
		return out
	case 'e', 'E':
		out := strconv.FormatFloat(a, 'e', precision, 64)
		if alternate {
			out = ensurePoint(out)
		}
		return out
	default:
		return formatGeneral(a, precision, alternate, addDot0)
	}
}

// formatGeneral implements the 'g' presentation type
//
// With addDot0 the switch to exponent notation happens one digit earlier and
// integral fixed results keep a ".0" suffix.
func formatGeneral(a float64, precision int, alternate, addDot0 bool) string {
	if precision == 0 {
		precision = 1
	}

	mant, exp := splitExp(strconv.FormatFloat(a, 'e', precision-1, 64))
	e := exponent(exp)

	threshold := precision
	if addDot0 {
		threshold = precision - 1
	}

	if e < -4 || e+1 > threshold {
		if alternate {
			mant = ensurePoint(mant)
		} else {
			mant = trimZeros(mant)
		}
		return mant + "e" + exp
	}

	out := strconv.FormatFloat(a, 'f', max(precision-1-e, 0), 64)
	if alternate {
		out = ensurePoint(out)
	} else {
		out = trimZeros(out)
	}
	if addDot0 && !strings.Contains(out, ".") {
		out += ".0"
	}
	return out
}

// trimZeros drops trailing fractional zeros and a dangling decimal point
func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// ensurePoint inserts a decimal point after the integer digits when missing
func ensurePoint(s string) string {
	if strings.Contains(s, ".") {
		return s
	}
	if i := strings.IndexByte(s, 'e'); i >= 0 {
		return s[:i] + "." + s[i:]
	}
	return s + "."
}

// isZero reports whether a rendered body contains no non-zero digit
func isZero(body string) bool {
	mant, _ := splitExp(body)
	for _, c := range mant {
		if c >= '1' && c <= '9' {
			return false
		}
		if c != '0' && c != '.' {
			// inf, nan
			return false
		}
	}
	return true
}

// splitInteger splits the leading integer digits from the rest of the body
func splitInteger(body string) (intPart, rest string) {
	i := 0
	for i < len(body) && body[i] >= '0' && body[i] <= '9' {
		i++
	}
	return body[:i], body[i:]
}

// group inserts sep every three digits, zero-padding the digits until the
// grouped result is at least minWidth characters wide
func group(digits string, sep byte, minWidth int) string {
	out := insertSeparators(digits, sep)
	for len(out) < minWidth {
		digits = "0" + digits
		out = insertSeparators(digits, sep)
	}
	return out
}

func insertSeparators(digits string, sep byte) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// pad applies width, fill and alignment
func (s Spec) pad(sign, body string) string {
	length := utf8.RuneCountInString(sign) + utf8.RuneCountInString(body)
	if s.Width <= length {
		return sign + body
	}

	fill := string(s.Fill)
	n := s.Width - length
	switch s.Align {
	case '<':
		return sign + body + strings.Repeat(fill, n)
	case '^':
		left := n / 2
		return strings.Repeat(fill, left) + sign + body + strings.Repeat(fill, n-left)
	case '=':
		return sign + strings.Repeat(fill, n) + body
	default:
		return strings.Repeat(fill, n) + sign + body
	}
}
