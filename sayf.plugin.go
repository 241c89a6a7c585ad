package sayf

import (
	"context"
	"html"
	"strings"

	"go.uber.org/zap"
)

// PostFlags modify how a message is posted.
type PostFlags uint8

// Post flags
const (
	PostFlagNone PostFlags = 0
	// PostFlagAllowPings posts the text without stripping mentions.
	PostFlagAllowPings PostFlags = 1
)

// Has reports whether all bits of flag are set.
func (f PostFlags) Has(flag PostFlags) bool {
	return f&flag == flag
}

// Poster is the chat transport the plugin answers through.
type Poster interface {
	// PostMessage posts text to the room cmd came from.
	PostMessage(ctx context.Context, cmd Command, text string, flags PostFlags) error
	// PostReply posts text as a reply to the message that issued cmd.
	PostReply(ctx context.Context, cmd Command, text string, flags PostFlags) error
}

// Command is a bot command issued in a chat room.
type Command struct {
	Name       string
	Room       Room
	MessageID  int
	Parameters []string
}

// ParseCommand extracts a command from chat message content.
// Content arrives HTML encoded; ok is false when it is not a command.
func ParseCommand(room Room, messageID int, content string) (Command, bool) {
	text := strings.TrimSpace(html.UnescapeString(content))
	if !strings.HasPrefix(text, CommandPrefix) {
		return Command{}, false
	}
	fields := strings.Fields(text[len(CommandPrefix):])
	if len(fields) == 0 {
		return Command{}, false
	}
	return Command{
		Name:       strings.ToLower(fields[0]),
		Room:       room,
		MessageID:  messageID,
		Parameters: fields[1:],
	}, true
}

// HandlerFunc handles one command.
type HandlerFunc func(ctx context.Context, cmd Command) error

// Endpoint describes a command the plugin answers to.
type Endpoint struct {
	Name           string
	DefaultCommand string
	Description    string
	Handler        HandlerFunc
}

// Plugin parrots text back into the room, optionally printf formatted with
// mentions resolved.
type Plugin struct {
	poster   Poster
	composer *Composer
	logger   *zap.Logger
}

// NewPlugin creates a Plugin. A nil logger disables logging.
func NewPlugin(poster Poster, composer *Composer, logger *zap.Logger) *Plugin {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Plugin{
		poster:   poster,
		composer: composer,
		logger:   logger,
	}
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return PluginDescription
}

// Endpoints returns the commands handled by the plugin.
func (p *Plugin) Endpoints() []Endpoint {
	return []Endpoint{
		{Name: CmdNameSay, DefaultCommand: CmdNameSay, Handler: p.Say},
		{Name: CmdNameSayf, DefaultCommand: CmdNameSayf, Description: DescSayf, Handler: p.Sayf},
		{Name: CmdNameReply, DefaultCommand: CmdNameReply, Description: DescReply, Handler: p.Reply},
		{Name: CmdNameReplyf, DefaultCommand: CmdNameReplyf, Description: DescReplyf, Handler: p.Replyf},
	}
}

// Handle dispatches cmd to the matching endpoint. handled is false when the
// plugin has no endpoint named cmd.Name.
func (p *Plugin) Handle(ctx context.Context, cmd Command) (handled bool, err error) {
	for _, ep := range p.Endpoints() {
		if ep.DefaultCommand == cmd.Name {
			return true, ep.Handler(ctx, cmd)
		}
	}
	p.logger.Debug(LogMsgCommandIgnored, zap.String(LogFieldCommand, cmd.Name))
	return false, nil
}

// HandleMention parses a mention event as a command and handles it.
func (p *Plugin) HandleMention(ctx context.Context, host string, ev MentionMessage) (bool, error) {
	cmd, ok := ParseCommand(Room{ID: ev.RoomID, Host: host}, ev.MessageID, ev.Content)
	if !ok {
		return false, nil
	}
	return p.Handle(ctx, cmd)
}

// Say posts the parameters verbatim, escape sequences expanded.
func (p *Plugin) Say(ctx context.Context, cmd Command) error {
	return p.poster.PostMessage(ctx, cmd, plainResponse(cmd), PostFlagNone)
}

// Reply is Say as a reply to the invoking message.
func (p *Plugin) Reply(ctx context.Context, cmd Command) error {
	return p.poster.PostReply(ctx, cmd, plainResponse(cmd), PostFlagNone)
}

// Sayf formats the parameters and posts the result with mentions intact.
func (p *Plugin) Sayf(ctx context.Context, cmd Command) error {
	text, err := p.composer.ComposeParameters(ctx, cmd.Room, cmd.Parameters)
	if err != nil {
		return p.fallback(ctx, cmd, err)
	}
	return p.poster.PostMessage(ctx, cmd, text, PostFlagAllowPings)
}

// Replyf is Sayf as a reply to the invoking message.
func (p *Plugin) Replyf(ctx context.Context, cmd Command) error {
	text, err := p.composer.ComposeParameters(ctx, cmd.Room, cmd.Parameters)
	if err != nil {
		return p.fallback(ctx, cmd, err)
	}
	return p.poster.PostReply(ctx, cmd, text, PostFlagAllowPings)
}

// fallback answers format errors with a reply and returns anything else.
func (p *Plugin) fallback(ctx context.Context, cmd Command, err error) error {
	var text string
	switch KindOf(err) {
	case KindLimitExceeded:
		text = ReplyLimitExceeded
	case KindRenderFailed, KindInvalidInput:
		text = ReplyRenderFailed
	default:
		return err
	}

	p.logger.Info(LogMsgPostFallback,
		zap.String(LogFieldCommand, cmd.Name),
		zap.Stringer(LogFieldRoom, cmd.Room),
		zap.String(LogFieldKind, string(KindOf(err))))
	return p.poster.PostReply(ctx, cmd, text, PostFlagNone)
}

func plainResponse(cmd Command) string {
	return JoinParameters(cmd.Parameters)
}
