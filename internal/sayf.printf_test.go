package internal

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRenderer() *Renderer {
	return NewRenderer(zap.NewNop())
}

func TestRenderer_Render_Conversions(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		args     []string
		expected string
	}{
		{name: "no specifiers", format: "just text", expected: "just text"},
		{name: "string", format: "hi %s!", args: []string{"bob"}, expected: "hi bob!"},
		{name: "zero padded float", format: "%05.2f", args: []string{"3.14159"}, expected: "03.14"},
		{name: "default float precision", format: "%f", args: []string{"1.5"}, expected: "1.500000"},
		{name: "upper float", format: "%.1F", args: []string{"2.26"}, expected: "2.3"},
		{name: "decimal", format: "%d", args: []string{"42"}, expected: "42"},
		{name: "decimal truncates fraction", format: "%d", args: []string{"3.9"}, expected: "3"},
		{name: "decimal forced sign", format: "%+d", args: []string{"7"}, expected: "+7"},
		{name: "negative zero padded", format: "%05d", args: []string{"-42"}, expected: "-0042"},
		{name: "custom pad", format: "%'*8s", args: []string{"abc"}, expected: "*****abc"},
		{name: "custom pad signed number", format: "%'*5d", args: []string{"-3"}, expected: "***-3"},
		{name: "left aligned by sign slot", format: "[%-6s]", args: []string{"ab"}, expected: "[ab    ]"},
		{name: "left aligned by flag", format: "[%0-5d]", args: []string{"12"}, expected: "[12000]"},
		{name: "space padding", format: "[% 4d]", args: []string{"5"}, expected: "[   5]"},
		{name: "width shorter than value", format: "%2s", args: []string{"abcdef"}, expected: "abcdef"},
		{name: "string precision truncates", format: "%.3s", args: []string{"abcdef"}, expected: "abc"},
		{name: "string precision counts runes", format: "%.2s", args: []string{"héllo"}, expected: "hé"},
		{name: "width counts runes", format: "%4s", args: []string{"é"}, expected: "   é"},
		{name: "binary", format: "%b", args: []string{"5"}, expected: "101"},
		{name: "octal", format: "%o", args: []string{"8"}, expected: "10"},
		{name: "hex lower", format: "%x", args: []string{"255"}, expected: "ff"},
		{name: "hex upper", format: "%X", args: []string{"255"}, expected: "FF"},
		{name: "unsigned of negative", format: "%u", args: []string{"-1"}, expected: "18446744073709551615"},
		{name: "char", format: "%c", args: []string{"65"}, expected: "A"},
		{name: "exponent", format: "%e", args: []string{"1234.5"}, expected: "1.234500e+3"},
		{name: "exponent upper precision", format: "%.2E", args: []string{"0.000123"}, expected: "1.23E-4"},
		{name: "general", format: "%g", args: []string{"0.00001234"}, expected: "1.234e-5"},
		{name: "general plain", format: "%g", args: []string{"100"}, expected: "100"},
		{name: "literal percent", format: "100%% sure", expected: "100% sure"},
		{name: "sequential args", format: "%s-%s", args: []string{"a", "b"}, expected: "a-b"},
		{name: "positional args", format: "%2$s %1$s", args: []string{"a", "b"}, expected: "b a"},
		{name: "positional does not advance sequence", format: "%2$s %s", args: []string{"a", "b"}, expected: "b a"},
		{name: "percent does not consume argument", format: "%%%s", args: []string{"x"}, expected: "%x"},
		{name: "extra args ignored", format: "%s", args: []string{"a", "b"}, expected: "a"},
		{name: "trailing percent kept", format: "100%", expected: "100%"},
		{name: "percent before tab kept", format: "a %\tb", expected: "a %\tb"},
		{name: "numeric with surrounding space", format: "%d", args: []string{" 12 "}, expected: "12"},
	}

	r := newTestRenderer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.Render(tt.format, tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestRenderer_Render_Failures(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		args       []string
		message    string
		offset     int
		argIndex   int
		renderedAs string
	}{
		{name: "missing argument", format: "%s %s", args: []string{"a"}, message: ErrMsgTooFewArgs, offset: 3, argIndex: 1, renderedAs: "%s"},
		{name: "positional out of range", format: "%3$s", args: []string{"a"}, message: ErrMsgTooFewArgs, offset: 0, argIndex: 2, renderedAs: "%3$s"},
		{name: "argument number zero", format: "%0$s", args: []string{"a"}, message: ErrMsgArgNumZero, offset: 0, argIndex: -1, renderedAs: "%0$s"},
	}

	r := newTestRenderer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.Render(tt.format, tt.args)
			require.Error(t, err)
			assert.Empty(t, out)

			var renderErr *RenderError
			require.True(t, errors.As(err, &renderErr))
			assert.Equal(t, tt.message, renderErr.Message)
			assert.Equal(t, tt.offset, renderErr.Offset)
			assert.Equal(t, tt.argIndex, renderErr.ArgIndex)
			assert.Equal(t, tt.renderedAs, renderErr.Spec)
		})
	}
}

func TestRenderer_Render_ConversionFailures(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		args    []string
		message string
	}{
		{name: "non numeric decimal", format: "%d", args: []string{"abc"}, message: ErrMsgNotNumeric},
		{name: "non numeric float", format: "%.2f", args: []string{"pi"}, message: ErrMsgNotNumeric},
		{name: "empty numeric", format: "%x", args: []string{""}, message: ErrMsgNotNumeric},
		{name: "infinity rejected", format: "%f", args: []string{"inf"}, message: ErrMsgNotNumeric},
		{name: "hex float rejected", format: "%f", args: []string{"0x1p-2"}, message: ErrMsgNotNumeric},
		{name: "unknown verb", format: "%k", args: []string{"a"}, message: ErrMsgUnknownVerb},
		{name: "mention verb is not renderable", format: "%p", args: []string{"a"}, message: ErrMsgUnknownVerb},
	}

	r := newTestRenderer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.Render(tt.format, tt.args)
			require.Error(t, err)
			assert.Empty(t, out)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestRenderer_Render_NilLogger(t *testing.T) {
	out, err := NewRenderer(nil).Render("%10s|%.10f", []string{"a", "1"})
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat(" ", 9)+"a|1.0000000000", out)
}

func TestTrimExponent(t *testing.T) {
	tests := map[string]string{
		"1.5e+03":  "1.5e+3",
		"1.5E-10":  "1.5E-10",
		"1e+00":    "1e+0",
		"123.456":  "123.456",
		"2.000e+5": "2.000e+5",
	}
	for input, expected := range tests {
		assert.Equal(t, expected, trimExponent(input), input)
	}
}
