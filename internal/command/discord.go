package command

import (
	"context"
	"time"

	"rissy-bot/pkg/cmd"

	"github.com/bwmarrin/discordgo"
)

// Gateway is the slice of the Discord session the commands need. The router
// shares one Gateway read-only across every in-flight handler.
type Gateway interface {
	Guild(guildID string) (*discordgo.Guild, error)
	GuildChannels(guildID string) ([]*discordgo.Channel, error)
	CreateInvite(ctx context.Context, channelID string, invite discordgo.Invite) (*discordgo.Invite, error)
	Send(ctx context.Context, channelID string, msg *discordgo.MessageSend) error
	Latency() time.Duration
}

// VoiceJoiner establishes a voice connection. Its lifecycle is not tracked
// after JoinVoice returns.
type VoiceJoiner interface {
	JoinVoice(ctx context.Context, guildID, channelID string) error
}

// MessageContext is what the runtime hands a command for one text message.
type MessageContext struct {
	Ctx         context.Context
	Gateway     Gateway
	Voice       VoiceJoiner
	Message     *discordgo.Message
	Args        []string
	Registry    *cmd.Registry
	CallTimeout time.Duration
}

// CallContext returns a context bounding one external call by CallTimeout.
func (mc *MessageContext) CallContext() (context.Context, context.CancelFunc) {
	parent := mc.Ctx
	if parent == nil {
		parent = context.Background()
	}
	if mc.CallTimeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, mc.CallTimeout)
}

// DiscordMeta is exposed by the adapter so help and middleware can read the
// category and usage without depending on the concrete command type.
type DiscordMeta interface {
	Category() string
	Usage() string
}

// DiscordCommand is what individual text commands implement.
type DiscordCommand interface {
	Name() string
	Description() string
	Category() string
	Usage() string
	Run(ctx interface{}) error
}

// DiscordAdapter adapts a DiscordCommand to cmd.Command so it can live in the
// universal registry.
type DiscordAdapter struct {
	Cmd DiscordCommand
}

func (a *DiscordAdapter) Name() string        { return a.Cmd.Name() }
func (a *DiscordAdapter) Description() string { return a.Cmd.Description() }
func (a *DiscordAdapter) Category() string    { return a.Cmd.Category() }
func (a *DiscordAdapter) Usage() string       { return a.Cmd.Usage() }

func (a *DiscordAdapter) Aliases() []string {
	if al, ok := a.Cmd.(cmd.Aliased); ok {
		return al.Aliases()
	}
	return nil
}

func (a *DiscordAdapter) Run(ctx context.Context, inv *cmd.Invocation) error {
	return a.Cmd.Run(inv.Data)
}

// RegisterCommand registers a Discord command with reg and applies middlewares.
func RegisterCommand(reg *cmd.Registry, discordCmd DiscordCommand, mws ...cmd.Middleware) {
	reg.Register(cmd.Apply(&DiscordAdapter{Cmd: discordCmd}, mws...))
}

// Meta returns the category/usage view of a registered command, if it has one.
func Meta(c cmd.Command) (DiscordMeta, bool) {
	m, ok := cmd.Root(c).(DiscordMeta)
	return m, ok
}
