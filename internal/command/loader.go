package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/keshon/mcstatus-bot/internal/i18n"
	"github.com/keshon/mcstatus-bot/internal/mcsrv"
	"github.com/keshon/mcstatus-bot/pkg/cmd"
)

var ErrNoDefinition = errors.New("command has no slash definition")

// StatusLookup fetches Minecraft server status.
type StatusLookup interface {
	Lookup(ctx context.Context, host, port string) (*mcsrv.Status, error)
	IconURL(host, port string) string
}

// Deps are the services command modules may depend on.
type Deps struct {
	Printer     *i18n.Printer
	Status      StatusLookup
	DefaultPort string
}

// Factory builds a command module from its dependencies. Returning nil marks
// the module as unusable with the given deps.
type Factory func(Deps) DiscordCommand

type module struct {
	source  string
	factory Factory
	mws     []cmd.Middleware
}

var modules []module

// Provide announces a command module. Command packages call it from init();
// Load instantiates them once the process has its dependencies.
func Provide(source string, f Factory, mws ...cmd.Middleware) {
	modules = append(modules, module{source: source, factory: f, mws: mws})
}

// LoadResult reports what Load did with each provided module.
type LoadResult struct {
	Loaded  []string
	Skipped map[string]error
}

// Load builds every provided module and registers the valid ones in reg.
// Malformed modules are logged and skipped. Global middlewares wrap outside
// the per-module ones.
func Load(reg *cmd.Registry, deps Deps, mws ...cmd.Middleware) LoadResult {
	return load(reg, modules, deps, mws...)
}

func load(reg *cmd.Registry, mods []module, deps Deps, mws ...cmd.Middleware) LoadResult {
	log := slog.Default().With(slog.String("component", "registry"))
	res := LoadResult{Skipped: make(map[string]error)}

	for _, m := range mods {
		c, err := build(m, deps)
		if err == nil {
			wrapped := cmd.Apply(cmd.Apply(c, m.mws...), mws...)
			err = reg.Register(wrapped)
		}
		if err != nil {
			log.Warn("Skipping command module", "source", m.source, "error", err)
			res.Skipped[m.source] = err
			continue
		}
		log.Debug("Loaded command", "name", c.Name(), "source", m.source)
		res.Loaded = append(res.Loaded, c.Name())
	}
	return res
}

func build(m module, deps Deps) (c cmd.Command, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("module panicked: %v", r)
		}
	}()
	if m.factory == nil {
		return nil, cmd.ErrNilCommand
	}
	dc := m.factory(deps)
	if dc == nil {
		return nil, cmd.ErrNilCommand
	}
	adapter := &DiscordAdapter{Cmd: dc}
	if err := cmd.Validate(adapter); err != nil {
		return nil, err
	}
	def := adapter.SlashDefinition()
	if def == nil {
		return nil, ErrNoDefinition
	}
	if def.Name != dc.Name() {
		return nil, fmt.Errorf("definition name %q does not match command name %q", def.Name, dc.Name())
	}
	return adapter, nil
}
