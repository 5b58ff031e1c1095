package server

import (
	"rissy-bot/internal/command"
	"rissy-bot/internal/config"
	"rissy-bot/internal/middleware"
	"rissy-bot/pkg/cmd"

	"github.com/bwmarrin/discordgo"
)

const linkFailedText = "❌ Tidak dapat membuat invite link di channel ini."

type LinkCommand struct{}

func (c *LinkCommand) Name() string        { return "link" }
func (c *LinkCommand) Description() string { return "Create a permanent invite to this channel" }
func (c *LinkCommand) Category() string    { return config.CategoryUtilities }
func (c *LinkCommand) Usage() string       { return command.Prefix + "link" }

func (c *LinkCommand) Run(ctx interface{}) error {
	mc, ok := ctx.(*command.MessageContext)
	if !ok {
		return nil
	}

	callCtx, cancel := mc.CallContext()
	defer cancel()

	// MaxAge and MaxUses of zero: never expires, unlimited uses.
	invite, err := mc.Gateway.CreateInvite(callCtx, mc.Message.ChannelID, discordgo.Invite{MaxAge: 0, MaxUses: 0})
	if err != nil || invite == nil {
		return command.Reply(mc, linkFailedText)
	}

	return command.Reply(mc, "🔗 Invite link: "+InviteURL(invite.Code))
}

// InviteURL returns the public URL of an invite code.
func InviteURL(code string) string {
	return "https://discord.gg/" + code
}

func init() {
	command.RegisterCommand(cmd.DefaultRegistry, &LinkCommand{}, middleware.Defaults()...)
}
