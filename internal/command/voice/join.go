package voice

import (
	"fmt"
	"log"
	"strings"

	"rissy-bot/internal/command"
	"rissy-bot/internal/config"
	"rissy-bot/internal/middleware"
	"rissy-bot/pkg/cmd"

	"github.com/bwmarrin/discordgo"
)

const (
	joinUsageText  = "❌ Masukkan nama voice channel, contoh: `r!join Rissyrissy`"
	joinFailedText = "❌ Gagal join ke voice channel."
)

type JoinCommand struct{}

func (c *JoinCommand) Name() string        { return "join" }
func (c *JoinCommand) Description() string { return "Join a voice channel by name" }
func (c *JoinCommand) Category() string    { return config.CategoryVoice }
func (c *JoinCommand) Usage() string       { return command.Prefix + "join <channel name>" }

func (c *JoinCommand) Run(ctx interface{}) error {
	mc, ok := ctx.(*command.MessageContext)
	if !ok {
		return nil
	}

	name := strings.Join(mc.Args, " ")
	if name == "" {
		return command.Reply(mc, joinUsageText)
	}

	guildID := mc.Message.GuildID
	channels, err := mc.Gateway.GuildChannels(guildID)
	if err != nil {
		return fmt.Errorf("failed to list channels of guild %s: %w", guildID, err)
	}

	target := FindVoiceChannel(channels, name)
	if target == nil {
		return command.Reply(mc, fmt.Sprintf("❌ Voice channel \"%s\" tidak ditemukan.", name))
	}
	if target.GuildID != "" {
		guildID = target.GuildID
	}

	callCtx, cancel := mc.CallContext()
	defer cancel()

	if err := mc.Voice.JoinVoice(callCtx, guildID, target.ID); err != nil {
		log.Printf("[ERR] Failed to join voice channel %s (%s) in guild %s: %v", target.Name, target.ID, guildID, err)
		return command.Reply(mc, joinFailedText)
	}

	return command.Reply(mc, fmt.Sprintf("🎧 Bot telah join ke voice channel: **%s**", target.Name))
}

// FindVoiceChannel returns the first voice channel whose name equals name,
// ignoring case, or nil.
func FindVoiceChannel(channels []*discordgo.Channel, name string) *discordgo.Channel {
	for _, ch := range channels {
		if ch != nil && ch.Type == discordgo.ChannelTypeGuildVoice && strings.EqualFold(ch.Name, name) {
			return ch
		}
	}
	return nil
}

func init() {
	command.RegisterCommand(cmd.DefaultRegistry, &JoinCommand{}, middleware.Defaults()...)
}
