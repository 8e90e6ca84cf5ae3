package floatfmt

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// maxDigits bounds width and precision
const maxDigits = math.MaxInt32

// Spec is a parsed format specification
type Spec struct {
	Fill      rune
	Align     byte // one of '<', '>', '=', '^'
	Sign      byte // one of '+', '-', ' '
	NoNegZero bool
	Alternate bool
	Width     int
	Grouping  byte // ',' or '_', zero when unset
	Precision int  // -1 when unset
	Type      byte // zero when unset
}

// SpecError reports a format specification that cannot be applied to a float
type SpecError struct {
	Spec    string
	Message string
}

func (e *SpecError) Error() string {
	return e.Message
}

func isAlign(r rune) bool {
	return r == '<' || r == '>' || r == '=' || r == '^'
}

// ParseSpec parses spec into a Spec
//
// Grammar: [[fill]align][sign]["z"]["#"]["0"][width][grouping]["." precision][type]
func ParseSpec(spec string) (Spec, error) {
	s := Spec{
		Fill:      ' ',
		Align:     '>',
		Sign:      '-',
		Precision: -1,
	}
	runes := []rune(spec)
	pos := 0

	fillSpecified := false
	alignSpecified := false
	if len(runes) >= 2 && isAlign(runes[1]) {
		s.Fill = runes[0]
		s.Align = byte(runes[1])
		fillSpecified = true
		alignSpecified = true
		pos = 2
	} else if len(runes) >= 1 && isAlign(runes[0]) {
		s.Align = byte(runes[0])
		alignSpecified = true
		pos = 1
	}

	if pos < len(runes) && (runes[pos] == '+' || runes[pos] == '-' || runes[pos] == ' ') {
		s.Sign = byte(runes[pos])
		pos++
	}
	if pos < len(runes) && runes[pos] == 'z' {
		s.NoNegZero = true
		pos++
	}
	if pos < len(runes) && runes[pos] == '#' {
		s.Alternate = true
		pos++
	}
	if !fillSpecified && pos < len(runes) && runes[pos] == '0' {
		s.Fill = '0'
		if !alignSpecified {
			s.Align = '='
		}
		pos++
	}

	width, n, ok := parseDigits(runes[pos:])
	if !ok {
		return Spec{}, &SpecError{Spec: spec, Message: "Too many decimal digits in format string"}
	}
	if n > 0 {
		s.Width = width
	}
	pos += n

	if pos < len(runes) && runes[pos] == ',' {
		s.Grouping = ','
		pos++
	}
	if pos < len(runes) && runes[pos] == '_' {
		if s.Grouping != 0 {
			return Spec{}, &SpecError{Spec: spec, Message: "Cannot specify both ',' and '_'."}
		}
		s.Grouping = '_'
		pos++
	}
	if pos < len(runes) && runes[pos] == ',' {
		return Spec{}, &SpecError{Spec: spec, Message: "Cannot specify both ',' and '_'."}
	}

	if pos < len(runes) && runes[pos] == '.' {
		pos++
		precision, n, ok := parseDigits(runes[pos:])
		if !ok {
			return Spec{}, &SpecError{Spec: spec, Message: "Too many decimal digits in format string"}
		}
		if n == 0 {
			return Spec{}, &SpecError{Spec: spec, Message: "Format specifier missing precision"}
		}
		s.Precision = precision
		pos += n
	}

	switch rest := len(runes) - pos; {
	case rest > 1:
		return Spec{}, &SpecError{
			Spec:    spec,
			Message: fmt.Sprintf("Invalid format specifier '%s' for object of type 'float'", spec),
		}
	case rest == 1:
		if runes[pos] >= utf8.RuneSelf || !isFloatType(byte(runes[pos])) {
			return Spec{}, &SpecError{
				Spec:    spec,
				Message: fmt.Sprintf("Unknown format code '%c' for object of type 'float'", runes[pos]),
			}
		}
		s.Type = byte(runes[pos])
	}

	if s.Grouping != 0 && s.Type == 'n' {
		return Spec{}, &SpecError{
			Spec:    spec,
			Message: fmt.Sprintf("Cannot specify '%c' with 'n'.", s.Grouping),
		}
	}

	return s, nil
}

func isFloatType(c byte) bool {
	switch c {
	case 'e', 'E', 'f', 'F', 'g', 'G', 'n', '%':
		return true
	}
	return false
}

// parseDigits consumes a run of decimal digits, failing once the value exceeds maxDigits
func parseDigits(runes []rune) (value, consumed int, ok bool) {
	for consumed < len(runes) && runes[consumed] >= '0' && runes[consumed] <= '9' {
		d := int(runes[consumed] - '0')
		if value > (maxDigits-d)/10 {
			return 0, 0, false
		}
		value = value*10 + d
		consumed++
	}
	return value, consumed, true
}
