package sayf

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring a Composer.
type Option func(*composerConfig)

// composerConfig holds the internal configuration for a Composer.
type composerConfig struct {
	truncationLimit int
	resolver        NameResolver
	stripper        PingStripper
	logger          *zap.Logger
}

// defaultComposerConfig returns the default composer configuration.
func defaultComposerConfig() *composerConfig {
	return &composerConfig{
		truncationLimit: DefaultTruncationLimit,
		resolver:        nopResolver{},
		stripper:        DefaultPingStripper,
		logger:          nil,
	}
}

// WithTruncationLimit sets the largest width or precision a specifier may use.
// Default: 500
func WithTruncationLimit(limit int) Option {
	return func(c *composerConfig) {
		c.truncationLimit = limit
	}
}

// WithResolver sets the resolver used for %p arguments.
// Default: a resolver that never finds a name
func WithResolver(resolver NameResolver) Option {
	return func(c *composerConfig) {
		if resolver != nil {
			c.resolver = resolver
		}
	}
}

// WithPingStripper replaces the mention neutralizing policy.
// Default: StripPings
func WithPingStripper(stripper PingStripper) Option {
	return func(c *composerConfig) {
		if stripper != nil {
			c.stripper = stripper
		}
	}
}

// WithLogger sets the logger for the composer.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *composerConfig) {
		c.logger = logger
	}
}
