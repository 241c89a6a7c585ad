package internal

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"
)

// specField enumerates the optional parts of a specifier in scan order.
type specField int

const (
	fieldArgNum specField = iota
	fieldSign
	fieldPad
	fieldAlign
	fieldWidth
	fieldPrecision
	fieldVerb
)

// Lexer scans a format string for conversion specifiers.
//
// Each specifier follows the fixed field order
//
//	% [digits$] [+|-] [space|0|'char] [-] [digits] [.digits] verb
//
// where every optional field is taken greedily and given back one step at a
// time when the rest of the specifier cannot match, so "%12" at the end of
// input scans as width 1 with verb '2'. Matches are non-overlapping and
// reported left to right.
type Lexer struct {
	source string
	logger *zap.Logger
}

// NewLexer creates a lexer over source
func NewLexer(source string, logger *zap.Logger) *Lexer {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgLexerCreated, zap.Int(LogFieldSource, len(source)))
	return &Lexer{
		source: source,
		logger: logger,
	}
}

// Tokenize returns every specifier in source. It never fails; a '%' that
// does not start a valid specifier is skipped.
func (l *Lexer) Tokenize() []Specifier {
	l.logger.Debug(LogMsgTokenizerStart)
	var specs []Specifier

	pos := 0
	for pos < len(l.source) {
		idx := strings.IndexByte(l.source[pos:], CharPercent)
		if idx < 0 {
			break
		}
		start := pos + idx

		spec, ok := l.match(Specifier{Offset: start}, fieldArgNum, start+1)
		if !ok {
			pos = start + 1
			continue
		}
		spec.Length = spec.VerbOffset + spec.VerbLength - start
		specs = append(specs, spec)
		pos = spec.End()
	}

	l.logger.Debug(LogMsgTokenizerEnd, zap.Int(LogFieldSpecifiers, len(specs)))
	return specs
}

// match tries every alternative of field at pos, longest first, and recurses
// into the next field until the verb is consumed.
func (l *Lexer) match(spec Specifier, field specField, pos int) (Specifier, bool) {
	if field == fieldVerb {
		if pos >= len(l.source) {
			return spec, false
		}
		r, size := utf8.DecodeRuneInString(l.source[pos:])
		if unicode.IsSpace(r) {
			return spec, false
		}
		spec.Verb = r
		spec.VerbOffset = pos
		spec.VerbLength = size
		return spec, true
	}

	for _, size := range l.alternatives(field, pos) {
		next := spec
		if size > 0 {
			assignField(&next, field, l.source[pos:pos+size])
		}
		if out, ok := l.match(next, field+1, pos+size); ok {
			return out, true
		}
	}
	return spec, false
}

// alternatives lists the candidate lengths for field at pos, longest first.
// The zero length (field absent) is always the last candidate.
func (l *Lexer) alternatives(field specField, pos int) []int {
	rest := l.source[pos:]
	if rest == "" {
		return []int{0}
	}

	switch field {
	case fieldArgNum:
		n := digitRun(rest)
		if n > 0 && n < len(rest) && rest[n] == CharDollar {
			return []int{n + 1, 0}
		}
	case fieldSign:
		if rest[0] == CharPlus || rest[0] == CharMinus {
			return []int{1, 0}
		}
	case fieldPad:
		switch rest[0] {
		case CharSpace, CharZero:
			return []int{1, 0}
		case CharQuote:
			if len(rest) > 1 {
				r, size := utf8.DecodeRuneInString(rest[1:])
				if r != CharNewline {
					return []int{1 + size, 0}
				}
			}
		}
	case fieldAlign:
		if rest[0] == CharMinus {
			return []int{1, 0}
		}
	case fieldWidth:
		return descending(digitRun(rest), 0)
	case fieldPrecision:
		if rest[0] == CharDot {
			return append(descending(1+digitRun(rest[1:]), 1), 0)
		}
	}
	return []int{0}
}

// assignField stores the matched text of field into spec.
func assignField(spec *Specifier, field specField, text string) {
	switch field {
	case fieldArgNum:
		spec.ArgNum = parseDigits(text[:len(text)-1])
		spec.HasArgNum = true
	case fieldSign:
		spec.Sign = text[0]
	case fieldPad:
		if text[0] == CharQuote {
			spec.PadChar, _ = utf8.DecodeRuneInString(text[1:])
		} else {
			spec.PadChar = rune(text[0])
		}
	case fieldAlign:
		spec.LeftAlign = true
	case fieldWidth:
		spec.Width = parseDigits(text)
		spec.HasWidth = true
	case fieldPrecision:
		spec.Precision = parseDigits(text[1:])
		spec.HasPrecision = true
	}
}

// descending returns from, from-1, ..., to.
func descending(from, to int) []int {
	out := make([]int, 0, from-to+1)
	for n := from; n >= to; n-- {
		out = append(out, n)
	}
	return out
}

// digitRun returns the number of leading ASCII digits in s.
func digitRun(s string) int {
	n := 0
	for n < len(s) && isDigit(s[n]) {
		n++
	}
	return n
}

// parseDigits converts a run of ASCII digits, saturating at math.MaxInt.
// An empty run is zero.
func parseDigits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		d := int(s[i] - '0')
		if n > (math.MaxInt-d)/10 {
			return math.MaxInt
		}
		n = n*10 + d
	}
	return n
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
