package sformat

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

type align int

const (
	alignDefault align = iota // right for numbers, left for everything else
	alignLeft
	alignRight
	alignCenter
	alignAfterSign // fill goes between the sign and the digits
)

type signMode int

const (
	signDefault signMode = iota // minus for negative values only
	signPlus
	signSpace
)

type verb int

const (
	verbNone verb = iota
	verbDecimal
	verbBinary
	verbOctal
	verbHex
	verbScientific
	verbFixed
	verbGeneral
	verbPercent
	verbString
	verbChar
	verbDebug
)

// String returns the conversion letter, for error messages.
func (v verb) String() string {
	switch v {
	case verbDecimal:
		return "d"
	case verbBinary:
		return "b"
	case verbOctal:
		return "o"
	case verbHex:
		return "x"
	case verbScientific:
		return "e"
	case verbFixed:
		return "f"
	case verbGeneral:
		return "g"
	case verbPercent:
		return "%"
	case verbString:
		return "s"
	case verbChar:
		return "c"
	case verbDebug:
		return "?"
	}
	return ""
}

// count is a width or precision: absent, a literal, or a reference to
// another argument resolved at render time.
type count struct {
	present bool
	isRef   bool
	value   int
}

// fieldSpec holds the parsed option block of one replacement field.
type fieldSpec struct {
	fill      rune
	align     align
	sign      signMode
	alternate bool
	zeroPad   bool
	width     count
	precision count
	verb      verb
	upper     bool
}

// field is one parsed replacement field. pos is the explicit argument
// position, or -1 when the field uses the auto-advancing index.
type field struct {
	pos  int
	spec fieldSpec
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlignRune(r rune) bool {
	return r == '<' || r == '>' || r == '^' || r == '='
}

func alignFor(r rune) align {
	switch r {
	case '<':
		return alignLeft
	case '>':
		return alignRight
	case '^':
		return alignCenter
	default:
		return alignAfterSign
	}
}

func verbFor(r rune) (verb, bool) {
	switch r {
	case 'b':
		return verbBinary, false
	case 'c':
		return verbChar, false
	case 'd':
		return verbDecimal, false
	case 'e':
		return verbScientific, false
	case 'E':
		return verbScientific, true
	case 'f':
		return verbFixed, false
	case 'F':
		return verbFixed, true
	case 'g':
		return verbGeneral, false
	case 'G':
		return verbGeneral, true
	case 'o':
		return verbOctal, false
	case 's':
		return verbString, false
	case 'x':
		return verbHex, false
	case 'X':
		return verbHex, true
	case '%':
		return verbPercent, false
	case '?':
		return verbDebug, false
	}
	// Unknown letters mean "no conversion"; the argument falls through
	// to the generic stringifier.
	return verbNone, false
}

// parseField scans one replacement field starting at its opening '{'
// and returns the parsed field plus the number of bytes consumed,
// closing brace included. The consumed length is always positive, so
// the caller's cursor advances even on templates like "{}".
func parseField(s string) (field, int, error) {
	f := field{pos: -1, spec: fieldSpec{fill: ' '}}
	i := 1

	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i > start {
		n, err := strconv.Atoi(s[start:i])
		if err != nil {
			return f, 0, fmt.Errorf("%w: argument position %q out of range", ErrMalformedField, s[start:i])
		}
		f.pos = n
	}

	if i < len(s) && s[i] == ':' {
		i++
		var err error
		i, err = parseSpec(&f.spec, s, i)
		if err != nil {
			return f, 0, err
		}
	}

	if i >= len(s) || s[i] != '}' {
		return f, 0, fmt.Errorf("%w: expected '}', found %s", ErrMalformedField, foundAt(s, i))
	}
	i++

	// The zero-pad shorthand is normalized once, after the whole block
	// is parsed, and only when no explicit fill/align was given.
	if f.spec.zeroPad && f.spec.align == alignDefault {
		f.spec.fill = '0'
		f.spec.align = alignAfterSign
	}
	return f, i, nil
}

// parseSpec consumes the option block after the ':'. Order matters:
// [fill align] [sign] [#] [0] [width] [. precision] [verb].
func parseSpec(sp *fieldSpec, s string, i int) (int, error) {
	// A fill character is only committed when the rune after it is an
	// alignment symbol; otherwise nothing speculative is consumed.
	if i < len(s) {
		r1, sz1 := utf8.DecodeRuneInString(s[i:])
		if r2, _ := utf8.DecodeRuneInString(s[i+sz1:]); isAlignRune(r2) {
			sp.fill = r1
			sp.align = alignFor(r2)
			i += sz1 + 1
		} else if isAlignRune(r1) {
			sp.align = alignFor(r1)
			i += sz1
		}
	}

	if i < len(s) {
		switch s[i] {
		case '+':
			sp.sign = signPlus
			i++
		case '-':
			i++ // explicit form of the default
		case ' ':
			sp.sign = signSpace
			i++
		}
	}
	if i < len(s) && s[i] == '#' {
		sp.alternate = true
		i++
	}
	if i < len(s) && s[i] == '0' {
		sp.zeroPad = true
		i++
	}

	var err error
	sp.width, i, err = parseCount(s, i, "width")
	if err != nil {
		return 0, err
	}

	if i < len(s) && s[i] == '.' {
		i++
		sp.precision, i, err = parseCount(s, i, "precision")
		if err != nil {
			return 0, err
		}
		if !sp.precision.present {
			return 0, fmt.Errorf("%w: precision expected after '.'", ErrMalformedField)
		}
	}

	if i < len(s) && s[i] != '}' {
		r, sz := utf8.DecodeRuneInString(s[i:])
		i += sz
		sp.verb, sp.upper = verbFor(r)
	}
	return i, nil
}

// parseCount reads a digit run or a nested {N} argument reference.
// Absence of both is not an error; the count is simply not present.
func parseCount(s string, i int, what string) (count, int, error) {
	if i < len(s) && isDigit(s[i]) {
		start := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		n, err := strconv.Atoi(s[start:i])
		if err != nil {
			return count{}, 0, fmt.Errorf("%w: %s %q out of range", ErrMalformedField, what, s[start:i])
		}
		return count{present: true, value: n}, i, nil
	}
	if i < len(s) && s[i] == '{' {
		i++
		start := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if i == start {
			return count{}, 0, fmt.Errorf("%w: expected argument position in %s reference, found %s", ErrMalformedField, what, foundAt(s, i))
		}
		n, err := strconv.Atoi(s[start:i])
		if err != nil {
			return count{}, 0, fmt.Errorf("%w: %s reference %q out of range", ErrMalformedField, what, s[start:i])
		}
		if i >= len(s) || s[i] != '}' {
			return count{}, 0, fmt.Errorf("%w: expected '}' after %s reference, found %s", ErrMalformedField, what, foundAt(s, i))
		}
		i++
		return count{present: true, isRef: true, value: n}, i, nil
	}
	return count{}, i, nil
}

func foundAt(s string, i int) string {
	if i >= len(s) {
		return "end of input"
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return strconv.QuoteRune(r)
}
