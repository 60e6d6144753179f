package sformat

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// compositeArg reports whether the argument is a mapping value, the
// one kind the pretty-printer recurses into.
func compositeArg(v any) (reflect.Value, bool) {
	if v == nil {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Map {
		return rv, true
	}
	return reflect.Value{}, false
}

// render produces the final substring for one replacement field. Width
// and precision have already been resolved to literals by the caller.
func render(sp fieldSpec, width int, hasWidth bool, prec int, hasPrec bool, arg any) (string, error) {
	num, isNum := toNumber(arg)
	str, isStr := arg.(string)
	_, isComp := compositeArg(arg)

	if sp.sign != signDefault && !isNum {
		return "", fmt.Errorf("%w: sign option with non-numeric argument of type %T", ErrInvalidSpec, arg)
	}
	if sp.align == alignAfterSign && !isNum {
		return "", fmt.Errorf("%w: '=' alignment with non-numeric argument of type %T", ErrInvalidSpec, arg)
	}
	if sp.verb != verbNone && !isNum && !isStr && !isComp {
		return "", fmt.Errorf("%w: %q conversion with argument of type %T", ErrTypeMismatch, sp.verb, arg)
	}
	if hasPrec && isNum {
		switch sp.verb {
		case verbScientific, verbFixed, verbGeneral:
		default:
			return "", fmt.Errorf("%w: precision with %q numeric conversion", ErrInvalidSpec, sp.verb)
		}
	}

	switch {
	case isComp:
		switch sp.verb {
		case verbNone, verbDebug:
		default:
			return "", fmt.Errorf("%w: %q conversion with map argument of type %T", ErrTypeMismatch, sp.verb, arg)
		}
		if sp.alternate {
			// '#' repurposes width as the indent size; no padding.
			indent := 4
			if hasWidth {
				indent = width
			}
			return prettyWith(arg, printOptions{indent: indent}), nil
		}
		return pad("", prettyWith(arg, printOptions{}), sp, width, false), nil

	case isStr:
		switch sp.verb {
		case verbNone, verbString:
			body := str
			if hasPrec {
				// Precision for strings is a starting offset, not a
				// maximum length.
				body = skipRunes(str, prec)
			}
			return pad("", body, sp, width, false), nil
		case verbDebug:
			return pad("", strconv.Quote(str), sp, width, false), nil
		default:
			return "", fmt.Errorf("%w: %q conversion with string argument", ErrTypeMismatch, sp.verb)
		}

	case isNum:
		return renderNumber(sp, width, num, arg, prec, hasPrec)
	}

	return pad("", stringify(arg), sp, width, false), nil
}

func renderNumber(sp fieldSpec, width int, n number, arg any, prec int, hasPrec bool) (string, error) {
	var body string
	showSign := true

	switch sp.verb {
	case verbNone, verbDecimal, verbDebug:
		if n.isFloat {
			if sp.verb == verbDecimal {
				return "", fmt.Errorf("%w: %q conversion with non-integer argument of type %T", ErrTypeMismatch, sp.verb, arg)
			}
			body = shortestFloat(n.absFloat())
		} else {
			body = strconv.FormatUint(n.abs, 10)
		}

	case verbBinary, verbOctal, verbHex:
		if n.isFloat {
			return "", fmt.Errorf("%w: %q conversion with non-integer argument of type %T", ErrTypeMismatch, sp.verb, arg)
		}
		var prefix, digits string
		switch sp.verb {
		case verbBinary:
			prefix, digits = "0b", ToBinary(n.abs)
		case verbOctal:
			prefix, digits = "0o", toOctal(n.abs)
		default:
			prefix, digits = "0x", ToHex(n.abs, sp.upper)
		}
		if sp.alternate {
			if sp.upper {
				prefix = strings.ToUpper(prefix)
			}
			body = prefix + digits
		} else {
			body = digits
		}

	case verbScientific, verbFixed, verbGeneral:
		p := 6
		if hasPrec {
			p = prec
		}
		body = formatFloat(n.absFloat(), sp.verb, p, sp.upper, sp.alternate)

	case verbPercent:
		body = formatFloat(n.absFloat()*100, verbFixed, 6, sp.upper, sp.alternate) + "%"
		showSign = false

	case verbChar:
		if n.isFloat {
			return "", fmt.Errorf("%w: %q conversion with non-integer argument of type %T", ErrTypeMismatch, sp.verb, arg)
		}
		if n.neg {
			return "", fmt.Errorf("%w: negative codepoint for %q conversion", ErrRange, sp.verb)
		}
		if n.abs > uint64(unicode.MaxRune) {
			return "", fmt.Errorf("%w: codepoint %d beyond U+10FFFF", ErrRange, n.abs)
		}
		body = string(rune(n.abs))
		showSign = false

	default: // verbString
		return "", fmt.Errorf("%w: %q conversion with numeric argument of type %T", ErrTypeMismatch, sp.verb, arg)
	}

	var sign string
	if showSign {
		sign = signFor(sp.sign, n.neg)
	}
	return pad(sign, body, sp, width, true), nil
}

func signFor(s signMode, neg bool) string {
	switch {
	case neg:
		return "-"
	case s == signPlus:
		return "+"
	case s == signSpace:
		return " "
	}
	return ""
}

// pad applies minimum-width padding around an assembled (sign, body)
// pair. Width is a floor measured in display cells; an oversized body
// is never truncated.
func pad(sign, body string, sp fieldSpec, width int, numeric bool) string {
	al := sp.align
	if al == alignDefault {
		if numeric {
			al = alignRight
		} else {
			al = alignLeft
		}
	}
	deficit := width - runewidth.StringWidth(sign) - runewidth.StringWidth(body)
	if deficit <= 0 {
		return sign + body
	}
	switch al {
	case alignLeft:
		return sign + body + strings.Repeat(string(sp.fill), deficit)
	case alignAfterSign:
		return sign + strings.Repeat(string(sp.fill), deficit) + body
	case alignCenter:
		left := deficit / 2
		right := deficit - left
		return strings.Repeat(string(sp.fill), left) + sign + body + strings.Repeat(string(sp.fill), right)
	default:
		return strings.Repeat(string(sp.fill), deficit) + sign + body
	}
}

// skipRunes drops the first n runes of s.
func skipRunes(s string, n int) string {
	if n <= 0 {
		return s
	}
	for i := range s {
		if n == 0 {
			return s[i:]
		}
		n--
	}
	return ""
}
