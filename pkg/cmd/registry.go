package cmd

import (
	"sort"
	"strings"
	"sync"
)

// DefaultRegistry is the global registry commands add themselves to from init().
var DefaultRegistry = NewRegistry()

// Aliased is implemented by commands reachable under more than one name.
type Aliased interface {
	Aliases() []string
}

// Registry stores commands by lowercased name. It does not perform dispatch;
// the router looks commands up and invokes them with its own context.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]Command
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds a command under its name and any aliases. A later registration
// under the same name replaces the earlier one.
func (r *Registry) Register(c Command) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.commands[strings.ToLower(c.Name())] = c
	if a, ok := Root(c).(Aliased); ok {
		for _, alias := range a.Aliases() {
			r.commands[strings.ToLower(alias)] = c
		}
	}
}

// Get returns the command with the given name (case-insensitive), or nil.
func (r *Registry) Get(name string) Command {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.commands[strings.ToLower(name)]
}

// GetAll returns all registered commands once each, sorted by name.
func (r *Registry) GetAll() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool, len(r.commands))
	list := make([]Command, 0, len(r.commands))
	for _, c := range r.commands {
		if seen[c.Name()] {
			continue
		}
		seen[c.Name()] = true
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name() < list[j].Name()
	})
	return list
}
