package sformat

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"
)

type printOptions struct {
	indent   int // 0 means flat, single-line output
	identity bool
}

// Option configures the pretty-printer.
type Option func(*printOptions)

// WithIndent renders composites one entry per line, nested levels
// indented by n spaces. The default is flat single-line output.
func WithIndent(n int) Option {
	return func(o *printOptions) { o.indent = n }
}

// WithIdentity prepends an address-like identity tag before each
// composite's opening brace.
func WithIdentity() Option {
	return func(o *printOptions) { o.identity = true }
}

// Pretty renders a value for human inspection. Mapping values render
// recursively as brace-delimited key/value entries; a composite that
// contains itself renders the marker "(self)" at the point of
// recursion instead of looping. Entry order follows Go map iteration
// order and is not stable.
func Pretty(v any, opts ...Option) string {
	var o printOptions
	for _, fn := range opts {
		fn(&o)
	}
	return prettyWith(v, o)
}

// Dump writes the Pretty form of each argument, space-separated and
// newline-terminated, to standard output.
func Dump(args ...any) {
	_ = Fdump(os.Stdout, args...)
}

// Fdump is Dump writing to w.
func Fdump(w io.Writer, args ...any) error {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = Pretty(a)
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, " "))
	return err
}

func prettyWith(v any, o printOptions) string {
	p := printer{opts: o, seen: make(map[uintptr]struct{})}
	var b strings.Builder
	p.value(&b, v, 0)
	return b.String()
}

// printer carries the per-call state: options plus the set of
// composites on the current recursion path, keyed by identity.
type printer struct {
	opts printOptions
	seen map[uintptr]struct{}
}

func (p *printer) value(b *strings.Builder, v any, depth int) {
	if mv, ok := compositeArg(v); ok {
		p.composite(b, mv, depth)
		return
	}
	if s, ok := v.(string); ok {
		b.WriteString(strconv.Quote(s))
		return
	}
	b.WriteString(stringify(v))
}

func (p *printer) composite(b *strings.Builder, mv reflect.Value, depth int) {
	ptr := mv.Pointer()
	if _, ok := p.seen[ptr]; ok {
		b.WriteString("(self)")
		return
	}
	p.seen[ptr] = struct{}{}
	defer delete(p.seen, ptr)

	if p.opts.identity {
		fmt.Fprintf(b, "map@0x%x ", ptr)
	}
	if mv.Len() == 0 {
		b.WriteString("{}")
		return
	}

	b.WriteByte('{')
	first := true
	iter := mv.MapRange()
	for iter.Next() {
		if p.opts.indent > 0 {
			b.WriteByte('\n')
			b.WriteString(strings.Repeat(" ", (depth+1)*p.opts.indent))
		} else if !first {
			b.WriteByte(' ')
		}
		first = false
		p.key(b, iter.Key(), depth+1)
		b.WriteString(" = ")
		p.value(b, iter.Value().Interface(), depth+1)
		b.WriteByte(',')
	}
	if p.opts.indent > 0 {
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(" ", depth*p.opts.indent))
	}
	b.WriteByte('}')
}

// key writes a map key: text keys verbatim, anything else bracketed.
func (p *printer) key(b *strings.Builder, k reflect.Value, depth int) {
	if k.Kind() == reflect.Interface {
		k = k.Elem()
	}
	if !k.IsValid() { // nil key in a map[any]V
		b.WriteString("[nil]")
		return
	}
	if k.Kind() == reflect.String {
		b.WriteString(k.String())
		return
	}
	b.WriteByte('[')
	p.value(b, k.Interface(), depth)
	b.WriteByte(']')
}
