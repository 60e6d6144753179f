package sformat_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/sformat"
)

func TestPrettyScalars(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		value any
		want  string
	}{
		"int":    {42, "42"},
		"float":  {1.5, "1.5"},
		"bool":   {false, "false"},
		"nil":    {nil, "nil"},
		"string": {"hi", `"hi"`},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sformat.Pretty(tt.value))
		})
	}
}

func TestPrettyEmptyComposite(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "{}", sformat.Pretty(map[string]int{}))
	assert.Equal(t, "{}", sformat.Pretty(map[string]int(nil)))
}

func TestPrettyFlat(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "{a = 1,}", sformat.Pretty(map[string]int{"a": 1}))
	assert.Equal(t, `{k = "v",}`, sformat.Pretty(map[string]string{"k": "v"}))
}

func TestPrettyNonTextKeys(t *testing.T) {
	t.Parallel()
	assert.Equal(t, `{[1] = "x",}`, sformat.Pretty(map[int]string{1: "x"}))
	assert.Equal(t, "{[true] = 1,}", sformat.Pretty(map[bool]int{true: 1}))
}

// Entry order is map iteration order, so multi-entry assertions check
// pieces rather than the whole string.
func TestPrettyMultipleEntriesUnordered(t *testing.T) {
	t.Parallel()
	got := sformat.Pretty(map[string]int{"a": 1, "b": 2})
	assert.True(t, strings.HasPrefix(got, "{"))
	assert.True(t, strings.HasSuffix(got, ",}"))
	assert.Contains(t, got, "a = 1,")
	assert.Contains(t, got, "b = 2,")
}

func TestPrettyIndented(t *testing.T) {
	t.Parallel()
	m := map[string]any{"outer": map[string]any{"inner": 1}}
	want := "{\n  outer = {\n    inner = 1,\n  },\n}"
	assert.Equal(t, want, sformat.Pretty(m, sformat.WithIndent(2)))
}

func TestPrettyCycle(t *testing.T) {
	t.Parallel()
	m := map[string]any{}
	m["self"] = m
	assert.Equal(t, "{self = (self),}", sformat.Pretty(m))
}

func TestPrettyDeepCycle(t *testing.T) {
	t.Parallel()
	outer := map[string]any{}
	inner := map[string]any{"back": outer}
	outer["in"] = inner
	got := sformat.Pretty(outer)
	assert.Equal(t, "{in = {back = (self),},}", got)
}

// A value appearing twice as a sibling is not a cycle; only ancestors
// trigger the marker.
func TestPrettySharedSibling(t *testing.T) {
	t.Parallel()
	shared := map[string]int{"x": 1}
	m := map[string]any{"a": shared, "b": shared}
	got := sformat.Pretty(m)
	assert.NotContains(t, got, "(self)")
	assert.Contains(t, got, "a = {x = 1,}")
	assert.Contains(t, got, "b = {x = 1,}")
}

func TestPrettyIdentity(t *testing.T) {
	t.Parallel()
	got := sformat.Pretty(map[string]int{"a": 1}, sformat.WithIdentity())
	assert.True(t, strings.HasPrefix(got, "map@0x"), "got %q", got)
	assert.True(t, strings.HasSuffix(got, "{a = 1,}"))
}

func TestFdump(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := sformat.Fdump(&buf, 1, "x", map[string]int{})
	require.NoError(t, err)
	assert.Equal(t, "1 \"x\" {}\n", buf.String())
}

func TestFdumpEmpty(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, sformat.Fdump(&buf))
	assert.Equal(t, "\n", buf.String())
}
