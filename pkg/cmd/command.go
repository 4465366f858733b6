// Package cmd is the transport-agnostic command core. A command has a name,
// a description and a Run method; adapters (Discord slash commands, the CLI)
// decide how invocations reach it and what Invocation.Data carries.
package cmd

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrNilCommand       = errors.New("command is nil")
	ErrEmptyName        = errors.New("command has no name")
	ErrEmptyDescription = errors.New("command has no description")
)

// Invocation is what an adapter hands to a command. Data is adapter-specific,
// for Discord it is the slash interaction context.
type Invocation struct {
	Args []string
	Data interface{}
}

// Command is identity plus execution.
type Command interface {
	Name() string
	Description() string
	Run(ctx context.Context, inv *Invocation) error
}

// Validate reports why c cannot be registered, or nil.
func Validate(c Command) error {
	if c == nil {
		return ErrNilCommand
	}
	if strings.TrimSpace(c.Name()) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(c.Description()) == "" {
		return ErrEmptyDescription
	}
	return nil
}
