package middleware

import (
	"context"
	"log"

	"rissy-bot/internal/command"
	"rissy-bot/pkg/cmd"
)

// WithCommandLogger wraps a command to log its execution
func WithCommandLogger() cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
			err := c.Run(ctx, inv)

			if mc, ok := inv.Data.(*command.MessageContext); ok {
				m := mc.Message
				log.Printf("[INFO] %s%s by %s (%s) in guild=%s channel=%s",
					command.Prefix, c.Name(), m.Author.Username, m.Author.ID, m.GuildID, m.ChannelID)
			}
			return err
		})
	}
}
