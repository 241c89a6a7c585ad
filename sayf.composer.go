package sayf

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/itsatony/go-sayf/internal"
)

// Composer compiles a format string and its arguments into a chat message.
//
// %p arguments are turned into mentions: an argument that already starts
// with '@' is neutralized, anything else is looked up through the
// NameResolver and replaced by "@name" when someone matches. All other
// conversions follow printf semantics. A Composer holds no per-call state and
// is safe for concurrent use.
type Composer struct {
	config   *composerConfig
	renderer *internal.Renderer
	logger   *zap.Logger
}

// New creates a Composer with the given options.
func New(opts ...Option) (*Composer, error) {
	config := defaultComposerConfig()
	for _, opt := range opts {
		opt(config)
	}
	if config.truncationLimit < 0 {
		return nil, NewInvalidLimitError(config.truncationLimit)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	logger.Debug(LogMsgComposerCreated, zap.Int(LogFieldLimit, config.truncationLimit))
	return &Composer{
		config:   config,
		renderer: internal.NewRenderer(logger),
		logger:   logger,
	}, nil
}

// MustNew creates a Composer and panics if there's an error.
func MustNew(opts ...Option) *Composer {
	c, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// TruncationLimit returns the configured width and precision limit.
func (c *Composer) TruncationLimit() int {
	return c.config.truncationLimit
}

// Compose formats components, where components[0] is the format string and
// the rest are its arguments. Resolver calls happen one at a time in the
// order the %p specifiers appear. On failure no output is returned.
func (c *Composer) Compose(ctx context.Context, room Room, components []string) (string, error) {
	if len(components) == 0 {
		return "", c.failed(NewMissingTemplateError())
	}

	template := components[0]
	args := append([]string(nil), components[1:]...)

	specs := internal.NewLexer(template, c.logger).Tokenize()
	c.logger.Debug(LogMsgComposeStart,
		zap.Stringer(LogFieldRoom, room),
		zap.Int(LogFieldTemplateLen, len(template)),
		zap.Int(LogFieldArgs, len(args)),
		zap.Int(LogFieldSpecifiers, len(specs)))

	if err := c.validate(specs); err != nil {
		return "", c.failed(err)
	}
	// Escape sequences can spell out new specifiers ("\x25900s").
	if err := c.validate(internal.NewLexer(InterpolateEscapeSequences(template), c.logger).Tokenize()); err != nil {
		return "", c.failed(err)
	}

	template, err := c.resolveMentions(ctx, room, template, args, specs)
	if err != nil {
		return "", c.failed(err)
	}

	template = c.config.stripper.StripPings(template)
	template = InterpolateEscapeSequences(template)

	out, err := c.renderer.Render(template, args)
	if err != nil {
		return "", c.failed(NewRenderFailedError(err))
	}

	c.logger.Debug(LogMsgComposeEnd, zap.Int(LogFieldOutputLen, len(out)))
	return out, nil
}

// ComposeParameters splits raw command parameters with SplitComponents and composes them.
func (c *Composer) ComposeParameters(ctx context.Context, room Room, params []string) (string, error) {
	return c.Compose(ctx, room, SplitComponents(params))
}

// validate rejects any specifier whose width or precision exceeds the limit.
func (c *Composer) validate(specs []Specifier) error {
	limit := c.config.truncationLimit
	for _, spec := range specs {
		if (spec.HasWidth && spec.Width > limit) || (spec.HasPrecision && spec.Precision > limit) {
			c.logger.Debug(LogMsgLimitExceeded,
				zap.Int(LogFieldOffset, spec.Offset),
				zap.Stringer(LogFieldName, spec))
			return NewLimitExceededError(spec, limit)
		}
	}
	return nil
}

// resolveMentions rewrites every %p in template to %s and resolves its
// argument in place. args is modified; the rewritten template is returned.
//
// Offsets in specs refer to the original template. shift tracks how far
// earlier rewrites moved the text that follows them.
func (c *Composer) resolveMentions(ctx context.Context, room Room, template string, args []string, specs []Specifier) (string, error) {
	shift := 0
	for i, spec := range specs {
		if !spec.IsMention() {
			continue
		}

		template, shift = rewriteVerb(template, spec, shift, StringVerb)
		c.logger.Debug(LogMsgMentionRewritten, zap.Int(LogFieldOffset, spec.VerbOffset))

		argIndex := i
		if spec.HasArgNum {
			argIndex = spec.ArgNum - 1
		}
		if argIndex < 0 || argIndex >= len(args) {
			c.logger.Debug(LogMsgMentionNoArg, zap.Int(LogFieldArgIndex, argIndex))
			continue
		}

		arg := args[argIndex]
		if strings.HasPrefix(arg, PingSigil) {
			args[argIndex] = c.config.stripper.StripPings(arg)
			c.logger.Debug(LogMsgMentionStripped, zap.Int(LogFieldArgIndex, argIndex))
			continue
		}

		c.logger.Debug(LogMsgResolverInvoked,
			zap.Stringer(LogFieldRoom, room),
			zap.Int(LogFieldArgIndex, argIndex))
		name, ok, err := c.config.resolver.ResolvePingableName(ctx, room, arg)
		if err != nil {
			c.logger.Warn(LogMsgResolverFailed,
				zap.Stringer(LogFieldRoom, room),
				zap.Int(LogFieldArgIndex, argIndex),
				zap.Error(err))
			return "", NewResolverFailedError(err, room, argIndex)
		}
		c.logger.Debug(LogMsgResolverComplete,
			zap.Int(LogFieldArgIndex, argIndex),
			zap.Bool(LogFieldFound, ok))
		if ok {
			args[argIndex] = PingSigil + name
		}
	}
	return template, nil
}

// rewriteVerb replaces spec's verb in template with verb. shift is the
// accumulated length change of earlier rewrites; the updated shift is returned.
func rewriteVerb(template string, spec Specifier, shift int, verb string) (string, int) {
	start := spec.VerbOffset + shift
	end := start + spec.VerbLength
	return template[:start] + verb + template[end:], shift + len(verb) - spec.VerbLength
}

func (c *Composer) failed(err error) error {
	c.logger.Debug(LogMsgComposeFailed,
		zap.String(LogFieldKind, string(KindOf(err))),
		zap.Error(err))
	return err
}
