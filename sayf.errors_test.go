package sayf

import (
	"errors"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsatony/go-sayf/internal"
)

func metadata(t *testing.T, err error, key string) string {
	t.Helper()
	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))
	value, ok := customErr.GetMetadata(key)
	require.True(t, ok, "metadata %q missing", key)
	return value
}

func TestNewLimitExceededError(t *testing.T) {
	spec := Tokenize("ab%1000.2f")[0]
	err := NewLimitExceededError(spec, 500)

	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgLimitExceeded)
	assert.Equal(t, KindLimitExceeded, KindOf(err))
	assert.Equal(t, "2", metadata(t, err, MetaKeyOffset))
	assert.Equal(t, "%1000.2f", metadata(t, err, MetaKeySpecifier))
	assert.Equal(t, "1000", metadata(t, err, MetaKeyWidth))
	assert.Equal(t, "2", metadata(t, err, MetaKeyPrecision))
	assert.Equal(t, "500", metadata(t, err, MetaKeyLimit))
}

func TestNewRenderFailedError(t *testing.T) {
	t.Run("render error details", func(t *testing.T) {
		cause := &internal.RenderError{Message: "too few arguments", Offset: 4, Spec: "%s", ArgIndex: 1}
		err := NewRenderFailedError(cause)

		assert.Equal(t, KindRenderFailed, KindOf(err))
		assert.Equal(t, "4", metadata(t, err, MetaKeyOffset))
		assert.Equal(t, "1", metadata(t, err, MetaKeyArgIndex))
		assert.Equal(t, "%s", metadata(t, err, MetaKeySpecifier))
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("plain cause", func(t *testing.T) {
		cause := errors.New("x")
		err := NewRenderFailedError(cause)
		assert.Equal(t, KindRenderFailed, KindOf(err))
		assert.True(t, errors.Is(err, cause))
	})
}

func TestNewResolverFailedError(t *testing.T) {
	cause := errors.New("timeout")
	err := NewResolverFailedError(cause, testRoom, 2)

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, KindResolverFailed, KindOf(err))
	assert.Equal(t, testRoom.String(), metadata(t, err, MetaKeyRoom))
	assert.Equal(t, "2", metadata(t, err, MetaKeyArgIndex))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNone, KindOf(nil))
	assert.Equal(t, KindNone, KindOf(errors.New("plain")))
	assert.Equal(t, KindNone, KindOf(NewDirectoryClosedError()))
	assert.Equal(t, KindInvalidInput, KindOf(NewMissingTemplateError()))
}

func TestIsFormatError(t *testing.T) {
	assert.True(t, IsFormatError(NewMissingTemplateError()))
	assert.True(t, IsFormatError(NewRenderFailedError(errors.New("x"))))
	assert.False(t, IsFormatError(NewResolverFailedError(errors.New("x"), testRoom, 0)))
	assert.False(t, IsFormatError(errors.New("x")))
}

func TestNewConfigError(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewConfigError(ErrMsgConfigRead, "/etc/sayf.yaml", cause)
	assert.Contains(t, err.Error(), ErrMsgConfigRead)
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "/etc/sayf.yaml", metadata(t, err, MetaKeyPath))

	err = NewConfigFieldError("cache.ttl", "-1s")
	assert.Equal(t, "cache.ttl", metadata(t, err, MetaKeyField))
	assert.Equal(t, "-1s", metadata(t, err, MetaKeyValue))
}

func TestNewDriverNotFoundError(t *testing.T) {
	err := NewDriverNotFoundError("redis")
	assert.Contains(t, err.Error(), ErrMsgDriverNotFound)
	assert.Equal(t, "redis", metadata(t, err, MetaKeyDriver))
}
