package sayf

import (
	"go.uber.org/zap"

	"github.com/itsatony/go-sayf/internal"
)

// Specifier is one conversion found in a format string.
type Specifier = internal.Specifier

// Tokenize returns the conversion specifiers of template in source order.
// It never fails; text without specifiers yields an empty slice.
func Tokenize(template string) []Specifier {
	return TokenizeWithLogger(template, zap.NewNop())
}

// TokenizeWithLogger is Tokenize with lexer debug events sent to logger.
func TokenizeWithLogger(template string, logger *zap.Logger) []Specifier {
	return internal.NewLexer(template, logger).Tokenize()
}
