// Package cmd provides a transport-agnostic command core: a command is something
// with a name, description, and Run(ctx, invocation). How it is registered and
// dispatched (Discord text commands, tests) is defined by adapters that wrap this.
package cmd

import (
	"context"
	"strings"
)

// Invocation carries what a runner passes to a command: the lowercased command
// name, its whitespace-split arguments, and an opaque payload. Adapters set Data
// to their context (e.g. the Discord message context).
type Invocation struct {
	Name string
	Args []string
	Data any
}

// Text rejoins the arguments with single spaces, for free-text parameters.
func (inv *Invocation) Text() string {
	return strings.Join(inv.Args, " ")
}

// Parse derives an invocation from raw message content. It reports false when
// content does not start with prefix. The prefix is removed, surrounding
// whitespace trimmed and the rest split on runs of whitespace; the first token,
// lowercased, is the name. Content holding only the prefix yields an empty name.
func Parse(prefix, content string) (*Invocation, bool) {
	if !strings.HasPrefix(content, prefix) {
		return nil, false
	}

	fields := strings.Fields(strings.TrimPrefix(content, prefix))
	if len(fields) == 0 {
		return &Invocation{Args: []string{}}, true
	}

	return &Invocation{
		Name: strings.ToLower(fields[0]),
		Args: fields[1:],
	}, true
}

// Command is the universal contract: identity plus execution.
type Command interface {
	Name() string
	Description() string
	Run(ctx context.Context, inv *Invocation) error
}
