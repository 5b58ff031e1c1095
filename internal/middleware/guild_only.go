package middleware

import (
	"context"

	"rissy-bot/internal/command"
	"rissy-bot/pkg/cmd"
)

// WithGuildOnly wraps a command to enforce guild-only access
func WithGuildOnly() cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
			mc, ok := inv.Data.(*command.MessageContext)
			if !ok || mc.Message.GuildID == "" {
				return nil
			}
			return c.Run(ctx, inv)
		})
	}
}
