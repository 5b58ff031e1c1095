package middleware

import "rissy-bot/pkg/cmd"

// Defaults is the middleware stack every built-in command registers with.
// Commands that need a guild append WithGuildOnly so it runs first.
func Defaults(extra ...cmd.Middleware) []cmd.Middleware {
	return append([]cmd.Middleware{
		WithRecover(),
		WithCommandLogger(),
	}, extra...)
}
