package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/keshon/mcstatus-bot/internal/command"
	"github.com/keshon/mcstatus-bot/pkg/cmd"

	"github.com/google/uuid"
)

type requestIDKey struct{}

// RequestID returns the id WithCommandLogger attached to ctx, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// WithCommandLogger tags each invocation with a request id and logs its
// outcome and duration.
func WithCommandLogger() cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
			id := uuid.NewString()
			ctx = context.WithValue(ctx, requestIDKey{}, id)
			log := slog.Default().With(
				slog.String("component", "dispatch"),
				slog.String("request_id", id),
				slog.String("command", c.Name()),
			)
			if v, ok := inv.Data.(*command.SlashInteractionContext); ok && v.Event != nil && v.Event.Interaction != nil {
				log = log.With(slog.String("user", v.UserID()), slog.String("guild", v.Event.GuildID))
			}

			start := time.Now()
			err := c.Run(ctx, inv)
			elapsed := time.Since(start).Round(time.Millisecond)
			if err != nil {
				log.Warn("Command returned error", "duration", elapsed, "error", err)
				return err
			}
			log.Info("Command executed", "duration", elapsed)
			return nil
		})
	}
}
