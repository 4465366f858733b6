package command

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/keshon/mcstatus-bot/internal/i18n"
	"github.com/keshon/mcstatus-bot/pkg/cmd"
)

// Dispatch runs the command named in ic.Event. Unknown commands are ignored.
// A handler error or panic results in exactly one ephemeral error message to
// the user; the error is returned for the caller's logs.
func Dispatch(ctx context.Context, reg *cmd.Registry, ic *SlashInteractionContext, p *i18n.Printer) error {
	log := slog.Default().With(slog.String("component", "dispatch"))

	name := CommandName(ic.Event)
	c, ok := reg.Get(name)
	if !ok {
		log.Debug("Ignoring unknown command", "name", name)
		return nil
	}
	if ic.Registry == nil {
		ic.Registry = reg
	}

	err := run(ctx, c, ic)
	if err == nil {
		return nil
	}

	log.Error("Command failed", "name", name, "error", err)
	msg := p.Sprintf(i18n.CommandFailed, err.Error())
	var replyErr error
	if ic.Reply.Acknowledged() {
		replyErr = ic.Reply.Followup(msg, true)
	} else {
		replyErr = ic.Reply.Reply(msg, nil, true)
	}
	if replyErr != nil {
		log.Warn("Failed to send error reply", "name", name, "error", replyErr)
	}
	return err
}

func run(ctx context.Context, c cmd.Command, ic *SlashInteractionContext) (err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Debug("Recovered command panic", "stack", string(debug.Stack()))
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return c.Run(ctx, &cmd.Invocation{Data: ic})
}
