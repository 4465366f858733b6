package commands

import (
	"context"
	"io"

	_ "github.com/keshon/mcstatus-bot/internal/command/help"
	_ "github.com/keshon/mcstatus-bot/internal/command/mcstatus"
	_ "github.com/keshon/mcstatus-bot/internal/command/ping"

	"github.com/keshon/mcstatus-bot/internal/command"
	"github.com/keshon/mcstatus-bot/internal/i18n"
	"github.com/keshon/mcstatus-bot/internal/mcsrv"
	v "github.com/keshon/mcstatus-bot/internal/version"
	"github.com/keshon/mcstatus-bot/pkg/cmd"
)

// runner dispatches slash commands without a Discord session.
type runner struct {
	reg     *cmd.Registry
	printer *i18n.Printer
}

func newRunner(opts *rootOptions) (*runner, error) {
	printer, err := i18n.New(opts.locale)
	if err != nil {
		return nil, err
	}
	status := mcsrv.NewClient(opts.apiURL,
		mcsrv.WithTimeout(opts.timeout),
		mcsrv.WithUserAgent(v.UserAgent()),
	)

	reg := cmd.NewRegistry()
	command.Load(reg, command.Deps{Printer: printer, Status: status, DefaultPort: opts.port})
	return &runner{reg: reg, printer: printer}, nil
}

func (r *runner) run(ctx context.Context, out io.Writer, name string, options map[string]string) error {
	ic := &command.SlashInteractionContext{
		Event:    command.NewSlashEvent(name, options),
		Reply:    newTerminal(out),
		Registry: r.reg,
	}
	return command.Dispatch(ctx, r.reg, ic, r.printer)
}
