package middleware

import (
	"context"
	"fmt"
	"log"
	"runtime/debug"

	"rissy-bot/pkg/cmd"
)

// WithRecover turns a panic inside a command into an error, so a bad event
// aborts only its own handling.
func WithRecover() cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) (err error) {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("[ERR] Panic in command %s: %v\n%s", c.Name(), r, debug.Stack())
					err = fmt.Errorf("command %s panicked: %v", c.Name(), r)
				}
			}()
			return c.Run(ctx, inv)
		})
	}
}
