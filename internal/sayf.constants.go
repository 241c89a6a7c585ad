package internal

// Specifier grammar characters
const (
	CharPercent     = '%'
	CharDollar      = '$'
	CharPlus        = '+'
	CharMinus       = '-'
	CharSpace       = ' '
	CharZero        = '0'
	CharQuote       = '\''
	CharDot         = '.'
	CharNewline     = '\n'
	CharMentionVerb = 'p'
)

// Conversion verbs understood by the renderer
const (
	VerbPercent    = '%'
	VerbBinary     = 'b'
	VerbChar       = 'c'
	VerbDecimal    = 'd'
	VerbUnsigned   = 'u'
	VerbOctal      = 'o'
	VerbHexLower   = 'x'
	VerbHexUpper   = 'X'
	VerbExpLower   = 'e'
	VerbExpUpper   = 'E'
	VerbFloat      = 'f'
	VerbFloatUpper = 'F'
	VerbGenLower   = 'g'
	VerbGenUpper   = 'G'
	VerbString     = 's'
)

// DefaultFloatPrecision is used by e, f and g conversions without an explicit precision.
const DefaultFloatPrecision = 6

// Log message constants
const (
	LogMsgLexerCreated    = "lexer created"
	LogMsgTokenizerStart  = "starting tokenization"
	LogMsgTokenizerEnd    = "tokenization complete"
	LogMsgRendererCreated = "renderer created"
	LogMsgRenderStart     = "starting render"
	LogMsgRenderEnd       = "render complete"
	LogMsgRenderFailed    = "render failed"
)

// Log field constants
const (
	LogFieldSource     = "source_length"
	LogFieldSpecifiers = "specifiers"
	LogFieldArgs       = "args"
	LogFieldOutput     = "output_length"
	LogFieldOffset     = "offset"
	LogFieldError      = "error"
)

// Renderer error messages
const (
	ErrMsgUnknownVerb = "unknown format specifier"
	ErrMsgArgNumZero  = "argument number must be greater than zero"
	ErrMsgTooFewArgs  = "too few arguments"
	ErrMsgNotNumeric  = "argument is not numeric"
)
