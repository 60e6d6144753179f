package sformat

import (
	"math"
	"strconv"
	"strings"
)

// number is the renderer's view of a numeric argument: sign split from
// magnitude so the padding stage can place fill between them.
type number struct {
	isFloat bool
	neg     bool
	abs     uint64 // integer magnitude, valid when !isFloat
	f       float64
}

func toNumber(v any) (number, bool) {
	switch n := v.(type) {
	case int:
		return intNumber(int64(n)), true
	case int8:
		return intNumber(int64(n)), true
	case int16:
		return intNumber(int64(n)), true
	case int32:
		return intNumber(int64(n)), true
	case int64:
		return intNumber(n), true
	case uint:
		return number{abs: uint64(n)}, true
	case uint8:
		return number{abs: uint64(n)}, true
	case uint16:
		return number{abs: uint64(n)}, true
	case uint32:
		return number{abs: uint64(n)}, true
	case uint64:
		return number{abs: n}, true
	case uintptr:
		return number{abs: uint64(n)}, true
	case float32:
		return floatNumber(float64(n)), true
	case float64:
		return floatNumber(n), true
	}
	return number{}, false
}

func intNumber(n int64) number {
	if n < 0 {
		// written this way so math.MinInt64 negates without overflow
		return number{neg: true, abs: uint64(-(n + 1)) + 1}
	}
	return number{abs: uint64(n)}
}

func floatNumber(f float64) number {
	return number{isFloat: true, f: f, neg: math.Signbit(f) && !math.IsNaN(f)}
}

// absFloat returns the magnitude as a float64 regardless of the
// underlying kind.
func (n number) absFloat() float64 {
	if n.isFloat {
		return math.Abs(n.f)
	}
	return float64(n.abs)
}

// isNaN and isInf wrap the math predicates so the renderer's float
// branches read in terms of the argument rather than raw float64s.
func (n number) isNaN() bool { return n.isFloat && math.IsNaN(n.f) }
func (n number) isInf() bool { return n.isFloat && math.IsInf(n.f, 0) }

// ToBinary returns the binary digits of n with no prefix and no sign.
func ToBinary(n uint64) string {
	if n == 0 {
		return "0"
	}
	var buf [64]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = '0' + byte(n&1)
		n >>= 1
	}
	return string(buf[i:])
}

// ToHex returns the hexadecimal digits of n with no prefix and no sign.
func ToHex(n uint64, upper bool) string {
	digits := "0123456789abcdef"
	if upper {
		digits = "0123456789ABCDEF"
	}
	if n == 0 {
		return "0"
	}
	var buf [16]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = digits[n&0xf]
		n >>= 4
	}
	return string(buf[i:])
}

func toOctal(n uint64) string {
	if n == 0 {
		return "0"
	}
	var buf [22]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = '0' + byte(n&7)
		n >>= 3
	}
	return string(buf[i:])
}

// shortestFloat is the generic base-10 form used when no conversion
// letter is given.
func shortestFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// formatFloat renders a non-negative float body for the e/f/g family.
// General uses Go's 'g' rule: scientific when the exponent is < -4 or
// >= the precision.
func formatFloat(f float64, v verb, prec int, upper, alternate bool) string {
	switch {
	case math.IsNaN(f):
		if upper {
			return "NAN"
		}
		return "nan"
	case math.IsInf(f, 0):
		if upper {
			return "INF"
		}
		return "inf"
	}
	var s string
	switch v {
	case verbScientific:
		s = strconv.FormatFloat(f, 'e', prec, 64)
	case verbGeneral:
		if prec == 0 {
			prec = 1
		}
		s = strconv.FormatFloat(f, 'g', prec, 64)
	default:
		s = strconv.FormatFloat(f, 'f', prec, 64)
	}
	if alternate {
		s = forceDecimalPoint(s)
	}
	if upper {
		s = strings.ToUpper(s)
	}
	return s
}

func forceDecimalPoint(s string) string {
	if strings.Contains(s, ".") {
		return s
	}
	if i := strings.IndexByte(s, 'e'); i >= 0 {
		return s[:i] + "." + s[i:]
	}
	return s + "."
}
