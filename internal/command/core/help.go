package core

import (
	"fmt"
	"sort"
	"strings"

	"rissy-bot/internal/command"
	"rissy-bot/internal/config"
	"rissy-bot/internal/middleware"
	"rissy-bot/internal/version"
	"rissy-bot/pkg/cmd"

	embed "github.com/Clinet/discordgo-embed"
	"github.com/bwmarrin/discordgo"
)

type HelpCommand struct{}

func (c *HelpCommand) Name() string        { return "help" }
func (c *HelpCommand) Description() string { return "Get a list of available commands" }
func (c *HelpCommand) Category() string    { return config.CategoryInformation }
func (c *HelpCommand) Usage() string       { return command.Prefix + "help" }

func (c *HelpCommand) Run(ctx interface{}) error {
	mc, ok := ctx.(*command.MessageContext)
	if !ok {
		return nil
	}

	return command.ReplyEmbed(mc, buildHelp(mc.Registry))
}

func buildHelp(reg *cmd.Registry) *discordgo.MessageEmbed {
	byCategory := make(map[string][]cmd.Command)
	for _, c := range reg.GetAll() {
		cat := ""
		if meta, ok := command.Meta(c); ok {
			cat = meta.Category()
		}
		byCategory[cat] = append(byCategory[cat], c)
	}

	cats := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool {
		wi, wj := config.CategoryWeights[cats[i]], config.CategoryWeights[cats[j]]
		if wi != wj {
			return wi < wj
		}
		return cats[i] < cats[j]
	})

	e := embed.NewEmbed().
		SetTitle(version.AppName + " Help").
		SetColor(command.EmbedColor)

	for _, cat := range cats {
		var sb strings.Builder
		for _, c := range byCategory[cat] {
			usage := command.Prefix + c.Name()
			if meta, ok := command.Meta(c); ok && meta.Usage() != "" {
				usage = meta.Usage()
			}
			fmt.Fprintf(&sb, "`%s` - %s\n", usage, c.Description())
		}
		name := cat
		if name == "" {
			name = "Other"
		}
		e.AddField(name, sb.String())
	}

	return e.Truncate().MessageEmbed
}

func init() {
	command.RegisterCommand(cmd.DefaultRegistry, &HelpCommand{}, middleware.Defaults()...)
}
