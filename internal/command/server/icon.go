package server

import (
	"fmt"

	"rissy-bot/internal/command"
	"rissy-bot/internal/config"
	"rissy-bot/internal/middleware"
	"rissy-bot/pkg/cmd"

	embed "github.com/Clinet/discordgo-embed"
)

const (
	iconSize   = "1024"
	noIconText = "❌ Server ini tidak memiliki ikon."
)

type IconCommand struct{}

func (c *IconCommand) Name() string        { return "icon" }
func (c *IconCommand) Description() string { return "Show this server's icon" }
func (c *IconCommand) Category() string    { return config.CategoryInformation }
func (c *IconCommand) Usage() string       { return command.Prefix + "icon" }

func (c *IconCommand) Run(ctx interface{}) error {
	mc, ok := ctx.(*command.MessageContext)
	if !ok {
		return nil
	}

	guild, err := mc.Gateway.Guild(mc.Message.GuildID)
	if err != nil {
		return fmt.Errorf("failed to fetch guild %s: %w", mc.Message.GuildID, err)
	}

	icon := guild.IconURL(iconSize)
	if icon == "" {
		return command.Reply(mc, noIconText)
	}

	e := embed.NewEmbed().
		SetTitle("Ikon Server - " + guild.Name).
		SetImage(icon).
		SetColor(command.EmbedColor)

	return command.ReplyEmbed(mc, e.MessageEmbed)
}

func init() {
	command.RegisterCommand(cmd.DefaultRegistry, &IconCommand{}, middleware.Defaults(middleware.WithGuildOnly())...)
}
