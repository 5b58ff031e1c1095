package server

import (
	"fmt"

	"rissy-bot/internal/command"
	"rissy-bot/internal/config"
	"rissy-bot/internal/middleware"
	"rissy-bot/pkg/cmd"

	embed "github.com/Clinet/discordgo-embed"
	"github.com/bwmarrin/discordgo"
)

var verificationNames = map[discordgo.VerificationLevel]string{
	discordgo.VerificationLevelNone:     "None",
	discordgo.VerificationLevelLow:      "Low",
	discordgo.VerificationLevelMedium:   "Medium",
	discordgo.VerificationLevelHigh:     "High",
	discordgo.VerificationLevelVeryHigh: "Highest",
}

type ServerInfoCommand struct{}

func (c *ServerInfoCommand) Name() string        { return "serverinfo" }
func (c *ServerInfoCommand) Description() string { return "Display server information" }
func (c *ServerInfoCommand) Category() string    { return config.CategoryInformation }
func (c *ServerInfoCommand) Usage() string       { return command.Prefix + "serverinfo" }

func (c *ServerInfoCommand) Run(ctx interface{}) error {
	mc, ok := ctx.(*command.MessageContext)
	if !ok {
		return nil
	}

	guild, err := mc.Gateway.Guild(mc.Message.GuildID)
	if err != nil {
		return fmt.Errorf("failed to fetch guild %s: %w", mc.Message.GuildID, err)
	}
	channels, err := mc.Gateway.GuildChannels(guild.ID)
	if err != nil {
		return fmt.Errorf("failed to fetch channels of guild %s: %w", guild.ID, err)
	}

	return command.ReplyEmbed(mc, buildServerInfo(guild, channels, mc.Message.Author))
}

func buildServerInfo(guild *discordgo.Guild, channels []*discordgo.Channel, requester *discordgo.User) *discordgo.MessageEmbed {
	created := "Unknown"
	if t, err := discordgo.SnowflakeTimestamp(guild.ID); err == nil {
		created = t.UTC().Format("January 02, 2006")
	}

	owner := "Unknown"
	if guild.OwnerID != "" {
		owner = "<@" + guild.OwnerID + ">"
	}

	var text, voice, categories int
	for _, ch := range channels {
		switch ch.Type {
		case discordgo.ChannelTypeGuildText, discordgo.ChannelTypeGuildNews:
			text++
		case discordgo.ChannelTypeGuildVoice, discordgo.ChannelTypeGuildStageVoice:
			voice++
		case discordgo.ChannelTypeGuildCategory:
			categories++
		}
	}

	var animated int
	for _, e := range guild.Emojis {
		if e.Animated {
			animated++
		}
	}

	// @everyone is part of the role list.
	roles := max(len(guild.Roles)-1, 0)

	mfa := "No"
	if guild.MfaLevel == discordgo.MfaLevelElevated {
		mfa = "Yes"
	}
	verification, ok := verificationNames[guild.VerificationLevel]
	if !ok {
		verification = "Unknown"
	}

	e := embed.NewEmbed().
		SetTitle("🏛️ "+guild.Name+" Server Information").
		SetColor(command.EmbedColor).
		AddField("📊 Basic Info", fmt.Sprintf("**Owner:** %s\n**Created:** %s\n**Server ID:** %s\n**Region:** %s",
			owner, created, guild.ID, guild.PreferredLocale)).
		MakeFieldInline().
		AddField("👥 Members", fmt.Sprintf("**Total:** %d", guild.MemberCount)).
		MakeFieldInline().
		AddField("📝 Channels", fmt.Sprintf("**Text:** %d\n**Voice:** %d\n**Categories:** %d\n**Total:** %d",
			text, voice, categories, text+voice)).
		MakeFieldInline().
		AddField("🚀 Nitro Boost", fmt.Sprintf("**Level:** %d/3\n**Boosts:** %d",
			guild.PremiumTier, guild.PremiumSubscriptionCount)).
		MakeFieldInline().
		AddField("🎭 Roles", fmt.Sprintf("**Total:** %d", roles)).
		MakeFieldInline().
		AddField("😀 Emojis", fmt.Sprintf("**Total:** %d\n**Static:** %d\n**Animated:** %d",
			len(guild.Emojis), len(guild.Emojis)-animated, animated)).
		MakeFieldInline().
		AddField("🔒 Security", fmt.Sprintf("**Verification:** %s\n**2FA Required:** %s", verification, mfa))

	if icon := guild.IconURL(""); icon != "" {
		e.SetThumbnail(icon)
	}
	if banner := guild.BannerURL(""); banner != "" {
		e.SetImage(banner)
	}
	if requester != nil {
		e.SetFooter("Requested by "+requester.DisplayName(), requester.AvatarURL(""))
	}

	return e.MessageEmbed
}

func init() {
	command.RegisterCommand(cmd.DefaultRegistry, &ServerInfoCommand{}, middleware.Defaults(middleware.WithGuildOnly())...)
}
