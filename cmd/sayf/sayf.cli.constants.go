package main

// Command names
const (
	CmdNameRender  = "render"
	CmdNameTokens  = "tokens"
	CmdNameVersion = "version"
)

// Flag names
const (
	FlagConfig  = "config"
	FlagVerbose = "verbose"
	FlagFormat  = "format"
	FlagRoom    = "room"
	FlagHost    = "host"
	FlagLimit   = "limit"
)

// Flag short forms
const (
	FlagConfigShort  = "c"
	FlagVerboseShort = "v"
	FlagFormatShort  = "F"
	FlagLimitShort   = "l"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Exit codes
const (
	ExitCodeSuccess     = 0
	ExitCodeError       = 1
	ExitCodeUsageError  = 2
	ExitCodeConfigError = 3
	ExitCodeInputError  = 4
)

// Error messages
const (
	ErrMsgCommandFailed   = "command failed"
	ErrMsgInvalidFormat   = "invalid output format"
	ErrMsgLoadConfig      = "failed to load config"
	ErrMsgOpenDirectory   = "failed to open directory"
	ErrMsgReadStdinFailed = "failed to read from stdin"
	ErrMsgNoParameters    = "no parameters given"
	ErrMsgComposeFailed   = "compose failed"
	ErrMsgWriteFailed     = "failed to write output"
)

// CLI metadata
const (
	CLIName        = "sayf"
	CLIDescription = "printf-style chat message composer"
	CLILong        = `Compose chat messages the way the sayf bot command does.

Parameters are split on standalone "/" into a format string and its
arguments. %p arguments are resolved to @mentions through the configured
name directory.`
)

// Help examples
const (
	RenderExample = `  sayf render -- 'Hi %p, build %s is %05.2f%% done' / carol / '#42' / 3.14159
  echo 'hi %p / carol' | sayf render --config sayf.yaml --room 11540`
	TokensExample = `  sayf tokens '%2$p %-8.3s'
  sayf tokens --format json '%05.2f'`
)

// Version output
const (
	VersionTextTemplate = "go-sayf version %s\nCommit: %s\nGo: %s"
	VersionUnknown      = "unknown"
)

// Format strings
const (
	FmtErrorWithCause = "%s: %v\n"
	FmtTokenLine      = "%d\t%d\t%s\t%s\n"
	FmtTokenHeader    = "OFFSET\tLENGTH\tSPEC\tVERB\n"
)
