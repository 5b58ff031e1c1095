package cmd

import "context"

// Unwrappable is a command that decorates another one.
type Unwrappable interface {
	Command
	Unwrap() Command
}

// RunFunc is the replacement Run a middleware installs around a command.
type RunFunc func(ctx context.Context, inv *Invocation) error

// layer keeps Name and Description of the command it decorates and swaps Run.
type layer struct {
	Command
	run RunFunc
}

func (l *layer) Run(ctx context.Context, inv *Invocation) error { return l.run(ctx, inv) }

func (l *layer) Unwrap() Command { return l.Command }

// Wrap decorates c so that run executes in place of c.Run. A nil run leaves
// c's own Run in place.
func Wrap(c Command, run RunFunc) Command {
	if run == nil {
		run = c.Run
	}
	return &layer{Command: c, run: run}
}

// Root strips every middleware layer and returns the registered command, so
// optional interfaces such as Aliased can be checked on it.
func Root(c Command) Command {
	for u, ok := c.(Unwrappable); ok; u, ok = c.(Unwrappable) {
		c = u.Unwrap()
	}
	return c
}
