package core

import (
	"fmt"

	"rissy-bot/internal/command"
	"rissy-bot/internal/config"
	"rissy-bot/internal/middleware"
	"rissy-bot/pkg/cmd"
)

type PingCommand struct{}

func (c *PingCommand) Name() string        { return "ping" }
func (c *PingCommand) Description() string { return "Check bot latency" }
func (c *PingCommand) Category() string    { return config.CategoryMaintenance }
func (c *PingCommand) Usage() string       { return command.Prefix + "ping" }

func (c *PingCommand) Run(ctx interface{}) error {
	mc, ok := ctx.(*command.MessageContext)
	if !ok {
		return nil
	}

	latency := mc.Gateway.Latency().Milliseconds()
	return command.Reply(mc, fmt.Sprintf("🏓 Pong! %dms", latency))
}

func init() {
	command.RegisterCommand(cmd.DefaultRegistry, &PingCommand{}, middleware.Defaults()...)
}
