package tracker

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var leadingFloat = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// ParseLeadingInt reads an integer from the start of text the way form
// fields are read: leading whitespace is skipped, an optional sign and a
// 0x prefix are honoured, and anything after the digits is ignored.
// ok is false when no digits were found or the value does not fit an int.
func ParseLeadingInt(text string) (value int, ok bool) {
	s := strings.TrimLeftFunc(text, unicode.IsSpace)
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	base := 10
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}
	end := 0
	for end < len(s) && isDigit(s[end], base) {
		end++
	}
	if end == 0 {
		return 0, false
	}
	digits := s[:end]
	if neg {
		digits = "-" + digits
	}
	v, err := strconv.ParseInt(digits, base, strconv.IntSize)
	if err != nil {
		return 0, false
	}
	return int(v), true
}

// ParseLeadingFloat reads a decimal number from the start of text, ignoring
// trailing characters. "Infinity" with an optional sign is accepted.
// ok is false when text does not start with a number.
func ParseLeadingFloat(text string) (value float64, ok bool) {
	s := strings.TrimLeftFunc(text, unicode.IsSpace)
	for _, inf := range []struct {
		prefix string
		value  float64
	}{
		{"Infinity", math.Inf(1)},
		{"+Infinity", math.Inf(1)},
		{"-Infinity", math.Inf(-1)},
	} {
		if strings.HasPrefix(s, inf.prefix) {
			return inf.value, true
		}
	}
	m := leadingFloat.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		// ParseFloat reports overflow as ±Inf with a range error.
		if errors.Is(err, strconv.ErrRange) {
			return v, true
		}
		return 0, false
	}
	return v, true
}

func isDigit(c byte, base int) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case base == 16 && c >= 'a' && c <= 'f':
		return true
	case base == 16 && c >= 'A' && c <= 'F':
		return true
	}
	return false
}
