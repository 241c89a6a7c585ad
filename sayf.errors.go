package sayf

import (
	"errors"
	"strconv"

	"github.com/itsatony/go-cuserr"

	"github.com/itsatony/go-sayf/internal"
)

// Error message constants
const (
	ErrMsgLimitExceeded    = "limit exceeded"
	ErrMsgRenderFailed     = "render failed"
	ErrMsgResolverFailed   = "resolver failed"
	ErrMsgMissingTemplate  = "format string required"
	ErrMsgInvalidLimit     = "truncation limit must not be negative"
	ErrMsgConfigRead       = "failed to read config"
	ErrMsgConfigParse      = "failed to parse config"
	ErrMsgConfigInvalid    = "invalid config value"
	ErrMsgDirectoryClosed  = "directory is closed"
	ErrMsgDirectoryFailed  = "directory query failed"
	ErrMsgDriverNotFound   = "directory driver not found"
	ErrMsgDriverNil        = "directory driver is nil"
	ErrMsgDriverExists     = "directory driver already registered"
	ErrMsgEmptyConnString  = "postgres connection string is empty"
	ErrMsgPostgresConnect  = "failed to connect to postgres"
	ErrMsgPostgresMigrate  = "failed to migrate postgres schema"
	ErrMsgRosterRead       = "failed to read roster"
	ErrMsgEventDecode      = "failed to decode chat event"
	ErrMsgUnexpectedEvent  = "unexpected chat event type"
	ErrMsgInvalidMemberRow = "member requires a name"
)

// Error code constants for categorization
const (
	ErrCodeLimit     = "SAYF_LIMIT"
	ErrCodeRender    = "SAYF_RENDER"
	ErrCodeResolver  = "SAYF_RESOLVER"
	ErrCodeInput     = "SAYF_INPUT"
	ErrCodeConfig    = "SAYF_CONFIG"
	ErrCodeDirectory = "SAYF_DIRECTORY"
	ErrCodeEvent     = "SAYF_EVENT"
)

// ErrorKind classifies a compose failure.
type ErrorKind string

// Error kinds
const (
	KindNone           ErrorKind = ""
	KindLimitExceeded  ErrorKind = "limit_exceeded"
	KindRenderFailed   ErrorKind = "render_failed"
	KindResolverFailed ErrorKind = "resolver_failed"
	KindInvalidInput   ErrorKind = "invalid_input"
)

// KindOf returns the compose failure kind carried by err, or KindNone.
func KindOf(err error) ErrorKind {
	var customErr *cuserr.CustomError
	if !errors.As(err, &customErr) {
		return KindNone
	}
	kind, ok := customErr.GetMetadata(MetaKeyKind)
	if !ok {
		return KindNone
	}
	return ErrorKind(kind)
}

// IsFormatError reports whether err was caused by the format string or its
// arguments rather than by the name resolver.
func IsFormatError(err error) bool {
	switch KindOf(err) {
	case KindLimitExceeded, KindRenderFailed, KindInvalidInput:
		return true
	}
	return false
}

// NewLimitExceededError creates an error for a specifier whose width or
// precision is above the truncation limit.
func NewLimitExceededError(spec Specifier, limit int) error {
	err := cuserr.NewValidationError(ErrCodeLimit, ErrMsgLimitExceeded).
		WithMetadata(MetaKeyKind, string(KindLimitExceeded)).
		WithMetadata(MetaKeyOffset, strconv.Itoa(spec.Offset)).
		WithMetadata(MetaKeySpecifier, spec.String()).
		WithMetadata(MetaKeyLimit, strconv.Itoa(limit))
	if spec.HasWidth {
		err = err.WithMetadata(MetaKeyWidth, strconv.Itoa(spec.Width))
	}
	if spec.HasPrecision {
		err = err.WithMetadata(MetaKeyPrecision, strconv.Itoa(spec.Precision))
	}
	return err
}

// NewRenderFailedError wraps a renderer failure.
func NewRenderFailedError(cause error) error {
	err := cuserr.WrapStdError(cause, ErrCodeRender, ErrMsgRenderFailed).
		WithMetadata(MetaKeyKind, string(KindRenderFailed))

	var renderErr *internal.RenderError
	if errors.As(cause, &renderErr) {
		err = err.
			WithMetadata(MetaKeyOffset, strconv.Itoa(renderErr.Offset)).
			WithMetadata(MetaKeyArgIndex, strconv.Itoa(renderErr.ArgIndex))
		if renderErr.Spec != "" {
			err = err.WithMetadata(MetaKeySpecifier, renderErr.Spec)
		}
	}
	return err
}

// NewResolverFailedError wraps an error returned by a NameResolver.
// The cause stays reachable through errors.Is and errors.As.
func NewResolverFailedError(cause error, room Room, argIndex int) error {
	return cuserr.WrapStdError(cause, ErrCodeResolver, ErrMsgResolverFailed).
		WithMetadata(MetaKeyKind, string(KindResolverFailed)).
		WithMetadata(MetaKeyRoom, room.String()).
		WithMetadata(MetaKeyArgIndex, strconv.Itoa(argIndex))
}

// NewMissingTemplateError creates an error for a compose call without a format string.
func NewMissingTemplateError() error {
	return cuserr.NewValidationError(ErrCodeInput, ErrMsgMissingTemplate).
		WithMetadata(MetaKeyKind, string(KindInvalidInput))
}

// NewInvalidLimitError creates an error for a negative truncation limit.
func NewInvalidLimitError(limit int) error {
	return cuserr.NewValidationError(ErrCodeConfig, ErrMsgInvalidLimit).
		WithMetadata(MetaKeyLimit, strconv.Itoa(limit))
}

// NewConfigError creates a config loading error.
func NewConfigError(msg, path string, cause error) error {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeConfig, msg)
	} else {
		err = cuserr.NewValidationError(ErrCodeConfig, msg)
	}
	if path != "" {
		err = err.WithMetadata(MetaKeyPath, path)
	}
	return err
}

// NewConfigFieldError creates an error for an invalid config field.
func NewConfigFieldError(field, value string) error {
	return cuserr.NewValidationError(ErrCodeConfig, ErrMsgConfigInvalid).
		WithMetadata(MetaKeyField, field).
		WithMetadata(MetaKeyValue, value)
}

// NewDirectoryError creates a directory error, wrapping cause when present.
func NewDirectoryError(msg string, cause error) error {
	if cause != nil {
		return cuserr.WrapStdError(cause, ErrCodeDirectory, msg)
	}
	return cuserr.NewValidationError(ErrCodeDirectory, msg)
}

// NewDirectoryClosedError creates an error for use of a closed directory.
func NewDirectoryClosedError() error {
	return cuserr.NewValidationError(ErrCodeDirectory, ErrMsgDirectoryClosed)
}

// NewDriverNotFoundError creates an error for an unknown directory driver.
func NewDriverNotFoundError(name string) error {
	return cuserr.NewNotFoundError(MetaKeyDriver, ErrMsgDriverNotFound).
		WithMetadata(MetaKeyDriver, name)
}

// NewEventError creates a chat event decoding error.
func NewEventError(msg string, cause error) error {
	if cause != nil {
		return cuserr.WrapStdError(cause, ErrCodeEvent, msg)
	}
	return cuserr.NewValidationError(ErrCodeEvent, msg)
}
