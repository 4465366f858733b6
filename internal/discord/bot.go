package discord

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/keshon/mcstatus-bot/internal/command"
	"github.com/keshon/mcstatus-bot/internal/config"
	"github.com/keshon/mcstatus-bot/internal/i18n"
	"github.com/keshon/mcstatus-bot/internal/logging"
	"github.com/keshon/mcstatus-bot/pkg/cmd"

	"github.com/bwmarrin/discordgo"
)

// maxCachedMessages bounds the state message cache that lets deletion logs
// show what was deleted.
const maxCachedMessages = 200

// Bot is a Discord bot
type Bot struct {
	dg       *discordgo.Session
	cfg      *config.Config
	registry *cmd.Registry
	printer  *i18n.Printer
	guilds   *guildSet
	log      *slog.Logger

	// runCtx is the context passed to Run; handlers derive from it.
	runCtx context.Context
	// syncedDigest is the hash of the last command set pushed to Discord.
	syncedDigest string
	// startedAt separates guilds joined while running from gateway replays.
	startedAt time.Time
}

// NewBot creates a bot serving the commands in reg.
func NewBot(cfg *config.Config, reg *cmd.Registry, p *i18n.Printer) *Bot {
	return &Bot{
		cfg:       cfg,
		registry:  reg,
		printer:   p,
		guilds:    newGuildSet(),
		log:       logging.Component("bot"),
		runCtx:    context.Background(),
		startedAt: time.Now(),
	}
}

// Run connects to Discord and blocks until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	b.dg = dg
	b.runCtx = ctx
	b.startedAt = time.Now()

	b.configureIntents()
	dg.State.MaxMessageCount = maxCachedMessages

	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onInteractionCreate)
	dg.AddHandler(b.onGuildCreate)
	dg.AddHandler(b.onGuildDelete)
	dg.AddHandler(b.onGuildMemberAdd)
	dg.AddHandler(b.onMessageDelete)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	b.log.Info("Shutdown signal received, closing session")
	return nil
}

// configureIntents requests what the hooks need: guilds, members, and
// message content for deletion logs.
func (b *Bot) configureIntents() {
	b.dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsMessageContent |
		discordgo.IntentsGuildMembers
}

// onReady is called when the bot is ready
func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.log.Info("Logged in", "user", r.User.String(), "guilds", len(r.Guilds))

	if err := b.registerCommands(s); err != nil {
		b.log.Error("Failed to register application commands", "error", err)
	}
	b.updateActivity(s)
}

// onInteractionCreate is called when an interaction is created
func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	if i.ApplicationCommandData().CommandType != discordgo.ChatApplicationCommand {
		return
	}

	ic := &command.SlashInteractionContext{
		Session:  s,
		Event:    i,
		Reply:    newInteractionReplier(s, i),
		Registry: b.registry,
	}
	_ = command.Dispatch(b.runCtx, b.registry, ic, b.printer)
}
