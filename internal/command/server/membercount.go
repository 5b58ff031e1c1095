package server

import (
	"fmt"
	"strconv"

	"rissy-bot/internal/command"
	"rissy-bot/internal/config"
	"rissy-bot/internal/middleware"
	"rissy-bot/pkg/cmd"

	embed "github.com/Clinet/discordgo-embed"
	"github.com/bwmarrin/discordgo"
)

type MemberCountCommand struct{}

func (c *MemberCountCommand) Name() string        { return "membercount" }
func (c *MemberCountCommand) Description() string { return "Show current member count" }
func (c *MemberCountCommand) Category() string    { return config.CategoryInformation }
func (c *MemberCountCommand) Usage() string       { return command.Prefix + "membercount" }

func (c *MemberCountCommand) Run(ctx interface{}) error {
	mc, ok := ctx.(*command.MessageContext)
	if !ok {
		return nil
	}

	guild, err := mc.Gateway.Guild(mc.Message.GuildID)
	if err != nil {
		return fmt.Errorf("failed to fetch guild %s: %w", mc.Message.GuildID, err)
	}

	return command.ReplyEmbed(mc, buildMemberCount(guild))
}

// buildMemberCount counts bots among the cached members. Without the members
// intent the cache is partial, so humans is an upper bound.
func buildMemberCount(guild *discordgo.Guild) *discordgo.MessageEmbed {
	total := max(guild.MemberCount, len(guild.Members))

	var bots int
	for _, m := range guild.Members {
		if m.User != nil && m.User.Bot {
			bots++
		}
	}

	e := embed.NewEmbed().
		SetTitle("👥 "+guild.Name+" Member Count").
		SetColor(command.EmbedColor).
		AddField("Total Members", strconv.Itoa(total)).
		AddField("Humans", strconv.Itoa(total-bots)).
		AddField("Bots", strconv.Itoa(bots)).
		InlineAllFields()

	if icon := guild.IconURL(""); icon != "" {
		e.SetThumbnail(icon)
	}

	return e.MessageEmbed
}

func init() {
	command.RegisterCommand(cmd.DefaultRegistry, &MemberCountCommand{}, middleware.Defaults(middleware.WithGuildOnly())...)
}
