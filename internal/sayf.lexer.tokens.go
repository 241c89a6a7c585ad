package internal

import (
	"fmt"
	"strings"
)

// Specifier is one conversion recognized in a format string.
// Offset, Length and VerbOffset are byte positions in the source the
// specifier was scanned from; they go stale once that source is edited.
type Specifier struct {
	Offset int // Byte offset of the introducing '%'
	Length int // Length in bytes of the matched span

	ArgNum    int  // Explicit 1-based argument number
	HasArgNum bool // True when ArgNum was written as "<digits>$"

	Sign      byte // '+', '-' or 0
	PadChar   rune // ' ', '0', a quoted char, or 0 when absent
	LeftAlign bool

	Width    int
	HasWidth bool

	Precision    int
	HasPrecision bool

	Verb       rune // Trailing conversion character
	VerbOffset int  // Byte offset of Verb
	VerbLength int  // Encoded length of Verb
}

// IsMention reports whether the specifier is the %p mention conversion.
func (s Specifier) IsMention() bool {
	return s.Verb == CharMentionVerb
}

// IsLeftAligned reports whether output is padded on the right.
// A leading '-' in the sign slot left-aligns just like the alignment flag.
func (s Specifier) IsLeftAligned() bool {
	return s.LeftAlign || s.Sign == CharMinus
}

// End returns the byte offset just past the specifier.
func (s Specifier) End() int {
	return s.Offset + s.Length
}

// String renders the specifier back into its canonical source form.
func (s Specifier) String() string {
	var sb strings.Builder
	sb.WriteByte(CharPercent)
	if s.HasArgNum {
		fmt.Fprintf(&sb, "%d%c", s.ArgNum, CharDollar)
	}
	if s.Sign != 0 {
		sb.WriteByte(s.Sign)
	}
	switch s.PadChar {
	case 0:
	case CharSpace, CharZero:
		sb.WriteRune(s.PadChar)
	default:
		sb.WriteByte(CharQuote)
		sb.WriteRune(s.PadChar)
	}
	if s.LeftAlign {
		sb.WriteByte(CharMinus)
	}
	if s.HasWidth {
		fmt.Fprintf(&sb, "%d", s.Width)
	}
	if s.HasPrecision {
		fmt.Fprintf(&sb, "%c%d", CharDot, s.Precision)
	}
	sb.WriteRune(s.Verb)
	return sb.String()
}
