package internal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// RenderError reports why a format string could not be rendered.
type RenderError struct {
	Message  string
	Offset   int    // Byte offset of the offending specifier
	Spec     string // Canonical specifier text
	ArgIndex int    // Zero-based argument index, -1 when no argument was involved
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("%s at offset %d (%s)", e.Message, e.Offset, e.Spec)
}

// Renderer expands printf-style format strings over string arguments.
//
// Arguments are consumed in order by specifiers without an explicit
// position; "%N$" selects argument N without advancing that sequence.
// A '%' that does not start a specifier is copied through unchanged.
// Numeric conversions parse their argument and fail when it is not a number.
type Renderer struct {
	logger *zap.Logger
}

// NewRenderer creates a renderer
func NewRenderer(logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgRendererCreated)
	return &Renderer{logger: logger}
}

// Render formats args according to format. No partial output is returned on error.
func (r *Renderer) Render(format string, args []string) (string, error) {
	r.logger.Debug(LogMsgRenderStart,
		zap.Int(LogFieldSource, len(format)),
		zap.Int(LogFieldArgs, len(args)))

	specs := NewLexer(format, r.logger).Tokenize()

	var sb strings.Builder
	cursor := 0
	nextArg := 0

	for _, spec := range specs {
		sb.WriteString(format[cursor:spec.Offset])
		cursor = spec.End()

		if spec.Verb == VerbPercent {
			sb.WriteByte(CharPercent)
			continue
		}

		argIndex := nextArg
		if spec.HasArgNum {
			if spec.ArgNum == 0 {
				return "", r.fail(newSpecError(ErrMsgArgNumZero, spec, -1))
			}
			argIndex = spec.ArgNum - 1
		} else {
			nextArg++
		}
		if argIndex >= len(args) {
			return "", r.fail(newSpecError(ErrMsgTooFewArgs, spec, argIndex))
		}

		out, err := formatArg(spec, args[argIndex])
		if err != nil {
			return "", r.fail(newSpecError(err.Error(), spec, argIndex))
		}
		sb.WriteString(out)
	}

	sb.WriteString(format[cursor:])

	r.logger.Debug(LogMsgRenderEnd, zap.Int(LogFieldOutput, sb.Len()))
	return sb.String(), nil
}

func (r *Renderer) fail(err *RenderError) error {
	r.logger.Debug(LogMsgRenderFailed,
		zap.Int(LogFieldOffset, err.Offset),
		zap.String(LogFieldError, err.Message))
	return err
}

func newSpecError(msg string, spec Specifier, argIndex int) *RenderError {
	return &RenderError{
		Message:  msg,
		Offset:   spec.Offset,
		Spec:     spec.String(),
		ArgIndex: argIndex,
	}
}

// formatArg applies a single conversion to arg.
func formatArg(spec Specifier, arg string) (string, error) {
	switch spec.Verb {
	case VerbString:
		if spec.HasPrecision {
			arg = truncateRunes(arg, spec.Precision)
		}
		return justify(spec, "", arg, false), nil

	case VerbChar:
		n, err := parseInteger(arg)
		if err != nil {
			return "", err
		}
		return string(rune(n)), nil

	case VerbDecimal:
		n, err := parseInteger(arg)
		if err != nil {
			return "", err
		}
		digits := strconv.FormatInt(n, 10)
		sign := ""
		if n < 0 {
			sign, digits = "-", digits[1:]
		} else if spec.Sign == CharPlus {
			sign = "+"
		}
		return justify(spec, sign, digits, true), nil

	case VerbUnsigned, VerbBinary, VerbOctal, VerbHexLower, VerbHexUpper:
		n, err := parseInteger(arg)
		if err != nil {
			return "", err
		}
		return justify(spec, "", formatUnsigned(spec.Verb, uint64(n)), true), nil

	case VerbExpLower, VerbExpUpper, VerbFloat, VerbFloatUpper, VerbGenLower, VerbGenUpper:
		f, err := parseFloat(arg)
		if err != nil {
			return "", err
		}
		sign := ""
		if f < 0 {
			sign, f = "-", -f
		} else if spec.Sign == CharPlus {
			sign = "+"
		}
		precision := DefaultFloatPrecision
		if spec.HasPrecision {
			precision = spec.Precision
		}
		return justify(spec, sign, formatFloat(spec.Verb, f, precision), true), nil
	}

	return "", fmt.Errorf("%s %q", ErrMsgUnknownVerb, spec.Verb)
}

// justify pads sign+body to the specifier's width. Zero padding of a signed
// number goes between the sign and the digits.
func justify(spec Specifier, sign, body string, numeric bool) string {
	text := sign + body
	if !spec.HasWidth {
		return text
	}
	n := utf8.RuneCountInString(text)
	if n >= spec.Width {
		return text
	}

	padChar := spec.PadChar
	if padChar == 0 {
		padChar = CharSpace
	}
	fill := strings.Repeat(string(padChar), spec.Width-n)

	switch {
	case spec.IsLeftAligned():
		return text + fill
	case numeric && padChar == CharZero && sign != "":
		return sign + fill + body
	default:
		return fill + text
	}
}

func formatUnsigned(verb rune, n uint64) string {
	switch verb {
	case VerbBinary:
		return strconv.FormatUint(n, 2)
	case VerbOctal:
		return strconv.FormatUint(n, 8)
	case VerbHexLower:
		return strconv.FormatUint(n, 16)
	case VerbHexUpper:
		return strings.ToUpper(strconv.FormatUint(n, 16))
	default:
		return strconv.FormatUint(n, 10)
	}
}

// formatFloat formats a non-negative f. Exponents are written without
// zero padding ("1.5e+3").
func formatFloat(verb rune, f float64, precision int) string {
	switch verb {
	case VerbFloat, VerbFloatUpper:
		return strconv.FormatFloat(f, 'f', precision, 64)
	case VerbExpLower:
		return trimExponent(strconv.FormatFloat(f, 'e', precision, 64))
	case VerbExpUpper:
		return trimExponent(strconv.FormatFloat(f, 'E', precision, 64))
	case VerbGenLower:
		return trimExponent(strconv.FormatFloat(f, 'g', significantDigits(precision), 64))
	default:
		return trimExponent(strconv.FormatFloat(f, 'G', significantDigits(precision), 64))
	}
}

func significantDigits(precision int) int {
	if precision == 0 {
		return 1
	}
	return precision
}

// trimExponent strips leading zeros from the exponent of s.
func trimExponent(s string) string {
	i := strings.IndexAny(s, "eE")
	if i < 0 || i+2 >= len(s) {
		return s
	}
	mantissa, sign, exp := s[:i+1], s[i+1:i+2], strings.TrimLeft(s[i+2:], "0")
	if exp == "" {
		exp = "0"
	}
	return mantissa + sign + exp
}

// truncateRunes keeps at most n runes of s.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// parseInteger reads arg as an integer. Decimal fractions are truncated
// toward zero.
func parseInteger(arg string) (int64, error) {
	s := strings.TrimSpace(arg)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := parseFloat(s)
	if err != nil {
		return 0, err
	}
	switch {
	case f >= math.MaxInt64:
		return math.MaxInt64, nil
	case f <= math.MinInt64:
		return math.MinInt64, nil
	}
	return int64(f), nil
}

// parseFloat reads arg as a finite decimal number.
func parseFloat(arg string) (float64, error) {
	s := strings.TrimSpace(arg)
	if !looksDecimal(s) {
		return 0, fmt.Errorf("%s: %q", ErrMsgNotNumeric, arg)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("%s: %q", ErrMsgNotNumeric, arg)
	}
	return f, nil
}

// looksDecimal rejects the non-decimal spellings strconv accepts
// (hex floats, "inf", "nan", digit separators).
func looksDecimal(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; {
		case isDigit(ch), ch == CharDot, ch == CharPlus, ch == CharMinus, ch == 'e', ch == 'E':
		default:
			return false
		}
	}
	return true
}
