package sayf

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// PingStripper neutralizes mentions in text so posting it pings nobody.
type PingStripper interface {
	StripPings(text string) string
}

// PingStripperFunc adapts a function to PingStripper.
type PingStripperFunc func(text string) string

// StripPings calls f(text).
func (f PingStripperFunc) StripPings(text string) string {
	return f(text)
}

// DefaultPingStripper is the PingStripper used when none is configured.
var DefaultPingStripper PingStripper = PingStripperFunc(StripPings)

// StripPings inserts a word joiner after every '@' that is followed by a
// letter or digit. The text still reads "@name" but no longer pings.
// Already neutralized mentions are left alone.
func StripPings(text string) string {
	if !strings.Contains(text, PingSigil) {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text) + len(WordJoiner))
	rest := text
	for {
		i := strings.Index(rest, PingSigil)
		if i < 0 {
			sb.WriteString(rest)
			return sb.String()
		}
		sb.WriteString(rest[:i+len(PingSigil)])
		rest = rest[i+len(PingSigil):]

		r, _ := utf8.DecodeRuneInString(rest)
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			sb.WriteString(WordJoiner)
		}
	}
}

// InterpolateEscapeSequences expands \n, \r, \t, \\, \xHH and \uHHHH.
// Any other backslash sequence is kept as written.
func InterpolateEscapeSequences(text string) string {
	if !strings.Contains(text, "\\") {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text))
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if ch != '\\' || i+1 >= len(text) {
			sb.WriteByte(ch)
			continue
		}

		switch next := text[i+1]; next {
		case 'n':
			sb.WriteByte('\n')
			i++
		case 'r':
			sb.WriteByte('\r')
			i++
		case 't':
			sb.WriteByte('\t')
			i++
		case '\\':
			sb.WriteByte('\\')
			i++
		case 'x', 'u':
			digits := 2
			if next == 'u' {
				digits = 4
			}
			if r, ok := parseHexRune(text, i+2, digits); ok {
				sb.WriteRune(r)
				i += 1 + digits
				continue
			}
			sb.WriteByte(ch)
		default:
			sb.WriteByte(ch)
		}
	}
	return sb.String()
}

func parseHexRune(text string, start, digits int) (rune, bool) {
	if start+digits > len(text) {
		return 0, false
	}
	n, err := strconv.ParseUint(text[start:start+digits], 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(n), true
}

// SplitComponents groups command parameters into the format string and its
// arguments. A parameter that is exactly "/" ends the current component and
// "\/" inside a parameter stands for a literal slash. Parameters within one
// component are joined by single spaces and the result is trimmed.
// Consecutive or leading separators do not start a new component, but a
// component made only of empty parameters is kept as "".
func SplitComponents(params []string) []string {
	var components []string
	var current strings.Builder

	for _, param := range params {
		if param != ComponentSeparator {
			current.WriteString(strings.ReplaceAll(param, EscapedSeparator, ComponentSeparator))
			current.WriteByte(' ')
			continue
		}
		if current.Len() > 0 {
			components = append(components, strings.TrimSpace(current.String()))
			current.Reset()
		}
	}

	if current.Len() > 0 {
		components = append(components, strings.TrimSpace(current.String()))
	}
	return components
}

// JoinParameters joins plain say parameters and expands escape sequences.
func JoinParameters(params []string) string {
	return InterpolateEscapeSequences(strings.Join(params, " "))
}
