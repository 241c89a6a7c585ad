package sayf

import "time"

// DefaultTruncationLimit is the largest width or precision a specifier may request.
const DefaultTruncationLimit = 500

// Mention and component syntax
const (
	PingSigil          = "@"
	ComponentSeparator = "/"
	EscapedSeparator   = "\\/"
	WordJoiner         = "\u2060"
	StringVerb         = "s"
)

// Command names handled by the say plugin
const (
	CmdNameSay    = "say"
	CmdNameSayf   = "sayf"
	CmdNameReply  = "reply"
	CmdNameReplyf = "replyf"
)

// CommandPrefix introduces a bot command in chat message content.
const CommandPrefix = "!!"

// Plugin descriptions
const (
	PluginDescription = "Mindlessly parrots whatever crap you want"
	DescSayf          = "Same as say with printf-style formatting, separate format string and args with / slashes"
	DescReply         = "Same as say except it replies to the invoking message"
	DescReplyf        = "Same as sayf except it replies to the invoking message"
)

// User-facing replies for format failures
const (
	ReplyLimitExceeded = "Only if you say it first"
	ReplyRenderFailed  = "printf() failed, check your format string and arguments"
)

// Directory driver names
const (
	DirectoryDriverMemory   = "memory"
	DirectoryDriverFile     = "file"
	DirectoryDriverPostgres = "postgres"
)

// Cache defaults
const (
	DefaultCacheTTL           = 5 * time.Minute
	DefaultCacheNegativeTTL   = 30 * time.Second
	DefaultCacheMaxEntries    = 1000
	DefaultCacheLookupTimeout = 10 * time.Second
)

// Postgres directory defaults
const (
	PostgresTablePrefix            = "sayf_"
	PostgresDefaultMaxOpenConns    = 10
	PostgresDefaultMaxIdleConns    = 2
	PostgresDefaultConnMaxLifetime = 5 * time.Minute
	PostgresDefaultQueryTimeout    = 10 * time.Second
)

// Log message constants
const (
	LogMsgComposerCreated  = "composer created"
	LogMsgComposeStart     = "starting compose"
	LogMsgComposeEnd       = "compose complete"
	LogMsgComposeFailed    = "compose failed"
	LogMsgLimitExceeded    = "specifier exceeds truncation limit"
	LogMsgMentionRewritten = "mention specifier rewritten"
	LogMsgMentionNoArg     = "mention specifier has no argument"
	LogMsgMentionStripped  = "mention argument already pinged, stripped"
	LogMsgResolverInvoked  = "resolver invoked"
	LogMsgResolverComplete = "resolver complete"
	LogMsgResolverFailed   = "resolver failed"
	LogMsgCacheHit         = "pingable name cache hit"
	LogMsgCacheMiss        = "pingable name cache miss"
	LogMsgDirectoryOpened  = "directory opened"
	LogMsgPostFallback     = "format failed, posting fallback reply"
	LogMsgCommandIgnored   = "command not handled by plugin"
)

// Log field constants
const (
	LogFieldRoom        = "room"
	LogFieldTemplateLen = "template_length"
	LogFieldArgs        = "args"
	LogFieldSpecifiers  = "specifiers"
	LogFieldArgIndex    = "arg_index"
	LogFieldOffset      = "offset"
	LogFieldName        = "name"
	LogFieldFound       = "found"
	LogFieldKind        = "kind"
	LogFieldCommand     = "command"
	LogFieldDriver      = "driver"
	LogFieldError       = "error"
	LogFieldOutputLen   = "output_length"
	LogFieldLimit       = "truncation_limit"
)

// Metadata keys for cuserr.WithMetadata
const (
	MetaKeyKind      = "kind"
	MetaKeyOffset    = "offset"
	MetaKeySpecifier = "specifier"
	MetaKeyWidth     = "width"
	MetaKeyPrecision = "precision"
	MetaKeyLimit     = "limit"
	MetaKeyArgIndex  = "arg_index"
	MetaKeyRoom      = "room"
	MetaKeyDriver    = "driver"
	MetaKeyPath      = "path"
	MetaKeyField     = "field"
	MetaKeyValue     = "value"
	MetaKeyEventType = "event_type"
)
