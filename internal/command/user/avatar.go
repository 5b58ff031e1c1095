package user

import (
	"fmt"
	"math/rand"

	"rissy-bot/internal/command"
	"rissy-bot/internal/config"
	"rissy-bot/internal/middleware"
	"rissy-bot/pkg/cmd"

	embed "github.com/Clinet/discordgo-embed"
	"github.com/bwmarrin/discordgo"
)

const avatarSize = "1024"

// randomColor picks the accent of each avatar embed.
var randomColor = func() int { return rand.Intn(0xFFFFFF + 1) }

type AvatarCommand struct{}

func (c *AvatarCommand) Name() string        { return "avatar" }
func (c *AvatarCommand) Description() string { return "Show the avatar of a mentioned user, or your own" }
func (c *AvatarCommand) Category() string    { return config.CategoryInformation }
func (c *AvatarCommand) Usage() string       { return command.Prefix + "avatar [@mention]" }

func (c *AvatarCommand) Run(ctx interface{}) error {
	mc, ok := ctx.(*command.MessageContext)
	if !ok {
		return nil
	}

	return command.ReplyEmbed(mc, buildAvatar(Target(mc.Message)))
}

// Target is the first mentioned user, or the author when nobody is mentioned.
func Target(m *discordgo.Message) *discordgo.User {
	for _, u := range m.Mentions {
		if u != nil {
			return u
		}
	}
	return m.Author
}

func buildAvatar(u *discordgo.User) *discordgo.MessageEmbed {
	return embed.NewEmbed().
		SetTitle(u.Username + "'s Avatar").
		SetImage(u.AvatarURL(avatarSize)).
		SetDescription(fmt.Sprintf("**Username:** %s\n**User ID:** %s", u.String(), u.ID)).
		SetColor(randomColor()).
		MessageEmbed
}

func init() {
	command.RegisterCommand(cmd.DefaultRegistry, &AvatarCommand{}, middleware.Defaults()...)
}
