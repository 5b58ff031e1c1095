package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// EmbedColor is the accent used by informational embeds.
const EmbedColor = 0x3498DB

// Reply sends content as a reply to the originating message.
func Reply(mc *MessageContext, content string) error {
	return send(mc, &discordgo.MessageSend{Content: content})
}

// ReplyEmbed sends embed as a reply to the originating message.
func ReplyEmbed(mc *MessageContext, embed *discordgo.MessageEmbed) error {
	return send(mc, &discordgo.MessageSend{Embeds: []*discordgo.MessageEmbed{embed}})
}

func send(mc *MessageContext, msg *discordgo.MessageSend) error {
	msg.Reference = mc.Message.Reference()

	if err := mc.Gateway.Send(mc.Ctx, mc.Message.ChannelID, msg); err != nil {
		return fmt.Errorf("failed to send reply: %w", err)
	}
	return nil
}
