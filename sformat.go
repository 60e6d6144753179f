package sformat

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrMalformedField = errors.New("malformed replacement field")
	ErrInvalidSpec    = errors.New("invalid format spec")
	ErrTypeMismatch   = errors.New("no conversion for argument type")
	ErrRange          = errors.New("value out of range")
	ErrArgument       = errors.New("bad reference argument")
)

// Format renders a template containing {...} replacement fields
// against args. Literal text is copied verbatim; each field selects an
// argument either by explicit position ({1}) or by the auto-advancing
// index ({}), and renders it according to its format spec. Any error
// aborts the whole call; there is no partial output.
func Format(template string, args ...any) (string, error) {
	var b strings.Builder
	b.Grow(len(template))
	auto := 0
	for i := 0; i < len(template); {
		c := template[i]
		if c != '{' {
			b.WriteByte(c)
			i++
			continue
		}
		fld, n, err := parseField(template[i:])
		if err != nil {
			return "", err
		}
		i += n

		pos := fld.pos
		if pos < 0 {
			pos = auto
			auto++
		}
		arg, err := argAt(args, pos)
		if err != nil {
			return "", err
		}
		width, hasWidth, err := resolveCount(fld.spec.width, args, "width")
		if err != nil {
			return "", err
		}
		if hasWidth && width < 0 {
			return "", fmt.Errorf("%w: negative width %d", ErrRange, width)
		}
		prec, hasPrec, err := resolveCount(fld.spec.precision, args, "precision")
		if err != nil {
			return "", err
		}
		if hasPrec && prec < 0 {
			return "", fmt.Errorf("%w: negative precision %d", ErrRange, prec)
		}

		out, err := render(fld.spec, width, hasWidth, prec, hasPrec, arg)
		if err != nil {
			return "", err
		}
		b.WriteString(out)
	}
	return b.String(), nil
}

// MustFormat is Format but panics on error. Intended for templates
// known correct at compile time.
func MustFormat(template string, args ...any) string {
	s, err := Format(template, args...)
	if err != nil {
		panic(err)
	}
	return s
}

// Write formats the template and writes the result to w.
func Write(w io.Writer, template string, args ...any) error {
	s, err := Format(template, args...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

func argAt(args []any, pos int) (any, error) {
	if pos >= len(args) {
		return nil, fmt.Errorf("%w: argument position %d with %d argument(s)", ErrRange, pos, len(args))
	}
	return args[pos], nil
}

// resolveCount turns a parsed width/precision into a literal int,
// chasing a {N} argument reference if present. References must name a
// numeric argument with an integral value.
func resolveCount(c count, args []any, what string) (int, bool, error) {
	if !c.present {
		return 0, false, nil
	}
	if !c.isRef {
		return c.value, true, nil
	}
	arg, err := argAt(args, c.value)
	if err != nil {
		return 0, false, err
	}
	n, ok := toNumber(arg)
	if !ok {
		return 0, false, fmt.Errorf("%w: %s reference {%d} names a %T, not a number", ErrArgument, what, c.value, arg)
	}
	if n.isFloat {
		if n.isNaN() || n.isInf() || n.f != math.Trunc(n.f) {
			return 0, false, fmt.Errorf("%w: %s reference {%d} must be an integer, got %v", ErrArgument, what, c.value, arg)
		}
		return int(n.f), true, nil
	}
	if n.abs > math.MaxInt32 {
		return 0, false, fmt.Errorf("%w: %s %d too large", ErrRange, what, n.abs)
	}
	v := int(n.abs)
	if n.neg {
		v = -v
	}
	return v, true, nil
}

// stringify is the generic fallback for values with no dedicated
// conversion. A fmt.Stringer wins if implemented.
func stringify(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	switch x := v.(type) {
	case nil:
		return "nil"
	case string:
		return x
	case float64:
		return shortestFloat(x)
	case float32:
		return shortestFloat(float64(x))
	}
	return fmt.Sprintf("%v", v)
}
