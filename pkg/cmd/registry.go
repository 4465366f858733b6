package cmd

import (
	"fmt"
	"sort"
)

// Registry indexes commands by name. It is filled once at startup and only
// read afterwards, so it carries no lock.
type Registry struct {
	commands map[string]Command
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register validates c and stores it under its name. Names are case-sensitive;
// registering an existing name replaces the previous command.
func (r *Registry) Register(c Command) error {
	if err := Validate(c); err != nil {
		return fmt.Errorf("register command: %w", err)
	}
	r.commands[c.Name()] = c
	return nil
}

// Get returns the command registered under name.
func (r *Registry) Get(name string) (Command, bool) {
	c, ok := r.commands[name]
	return c, ok
}

// GetAll returns all commands sorted by name.
func (r *Registry) GetAll() []Command {
	list := make([]Command, 0, len(r.commands))
	for _, c := range r.commands {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name() < list[j].Name()
	})
	return list
}

// Len returns the number of registered commands.
func (r *Registry) Len() int { return len(r.commands) }
