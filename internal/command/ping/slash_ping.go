package ping

import (
	"context"
	"time"

	"github.com/keshon/mcstatus-bot/internal/command"
	"github.com/keshon/mcstatus-bot/internal/i18n"

	"github.com/bwmarrin/discordgo"
)

// PingCommand reports the gateway heartbeat latency.
type PingCommand struct {
	printer *i18n.Printer
}

// New returns a ping command rendering its reply with p.
func New(p *i18n.Printer) *PingCommand {
	return &PingCommand{printer: p}
}

func (c *PingCommand) Name() string        { return "ping" }
func (c *PingCommand) Description() string { return "Check bot latency" }

func (c *PingCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *PingCommand) Run(ctx context.Context, ic *command.SlashInteractionContext) error {
	return ic.Reply.Reply(c.message(latency(ic)), nil, false)
}

func (c *PingCommand) message(d time.Duration) string {
	if d <= 0 {
		return c.printer.Sprintf(i18n.PingNoLatency)
	}
	return c.printer.Sprintf(i18n.Ping, d.Milliseconds())
}

// latency is zero outside a gateway session or before the first heartbeat ack.
func latency(ic *command.SlashInteractionContext) time.Duration {
	if ic.Session == nil {
		return 0
	}
	return ic.Session.HeartbeatLatency()
}

func init() {
	command.Provide("ping", func(d command.Deps) command.DiscordCommand {
		if d.Printer == nil {
			return nil
		}
		return New(d.Printer)
	})
}
