package mcstatus

import (
	"context"
	"log/slog"
	"time"

	"github.com/keshon/mcstatus-bot/internal/command"
	"github.com/keshon/mcstatus-bot/internal/i18n"
	"github.com/keshon/mcstatus-bot/internal/mcsrv"

	"github.com/bwmarrin/discordgo"
)

// StatusCommand looks up a Minecraft server and renders its status.
type StatusCommand struct {
	printer     *i18n.Printer
	lookup      command.StatusLookup
	defaultPort string
	now         func() time.Time
}

// New returns a status command. An empty defaultPort means 25565.
func New(p *i18n.Printer, lookup command.StatusLookup, defaultPort string) *StatusCommand {
	if defaultPort == "" {
		defaultPort = mcsrv.DefaultPort
	}
	return &StatusCommand{printer: p, lookup: lookup, defaultPort: defaultPort, now: time.Now}
}

func (c *StatusCommand) Name() string        { return "mcstatus" }
func (c *StatusCommand) Description() string { return "Check the status of a Minecraft server" }

func (c *StatusCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "ip",
				Description: "IP or domain of the Minecraft server",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "port",
				Description: "Server port (default: " + c.defaultPort + ")",
				Required:    false,
			},
		},
	}
}

// Run defers, looks the server up and edits the deferred reply. Lookup
// failures are shown to the user and not returned.
func (c *StatusCommand) Run(ctx context.Context, ic *command.SlashInteractionContext) error {
	if err := ic.Reply.Defer(); err != nil {
		return err
	}

	host, _ := ic.StringOption("ip")
	port, ok := ic.StringOption("port")
	if !ok {
		port = c.defaultPort
	}
	target := Target{Host: host, Port: port}

	st, err := c.lookup.Lookup(ctx, target.Host, target.Port)
	if err != nil {
		slog.Default().With(slog.String("component", "status")).
			Warn("Status lookup failed", "address", target.Address(), "error", err)
		return ic.Reply.EditReply(c.printer.Sprintf(i18n.StatusError, err.Error()), nil)
	}

	content, embed := Render(c.printer, target, st, c.lookup.IconURL(target.Host, target.Port), c.now())
	if embed == nil {
		return ic.Reply.EditReply(content, nil)
	}
	return ic.Reply.EditReply("", []*discordgo.MessageEmbed{embed})
}

func init() {
	command.Provide("mcstatus", func(d command.Deps) command.DiscordCommand {
		if d.Printer == nil || d.Status == nil {
			return nil
		}
		return New(d.Printer, d.Status, d.DefaultPort)
	})
}
