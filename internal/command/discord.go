package command

import (
	"context"
	"fmt"

	"github.com/keshon/mcstatus-bot/pkg/cmd"

	"github.com/bwmarrin/discordgo"
)

// SlashInteractionContext is what the runtime hands a slash command.
// Session is nil when the command runs outside Discord (CLI, tests).
type SlashInteractionContext struct {
	Session  *discordgo.Session
	Event    *discordgo.InteractionCreate
	Reply    Replier
	Registry *cmd.Registry
}

// Replier answers one interaction. Implementations track whether the
// interaction was already acknowledged.
type Replier interface {
	Reply(content string, embeds []*discordgo.MessageEmbed, ephemeral bool) error
	Defer() error
	EditReply(content string, embeds []*discordgo.MessageEmbed) error
	Followup(content string, ephemeral bool) error
	Acknowledged() bool
}

// SlashProvider declares how a command is registered with Discord.
type SlashProvider interface {
	SlashDefinition() *discordgo.ApplicationCommand
}

// DiscordCommand is what individual slash commands implement.
type DiscordCommand interface {
	Name() string
	Description() string
	SlashProvider
	Run(ctx context.Context, ic *SlashInteractionContext) error
}

// DiscordAdapter lets a DiscordCommand live in the transport-agnostic registry.
type DiscordAdapter struct {
	Cmd DiscordCommand
}

func (a *DiscordAdapter) Name() string        { return a.Cmd.Name() }
func (a *DiscordAdapter) Description() string { return a.Cmd.Description() }

func (a *DiscordAdapter) Run(ctx context.Context, inv *cmd.Invocation) error {
	ic, ok := inv.Data.(*SlashInteractionContext)
	if !ok {
		return fmt.Errorf("command %s: unsupported invocation data %T", a.Cmd.Name(), inv.Data)
	}
	return a.Cmd.Run(ctx, ic)
}

func (a *DiscordAdapter) SlashDefinition() *discordgo.ApplicationCommand {
	return a.Cmd.SlashDefinition()
}

// Definition extracts the slash declaration of a registered command, walking
// through middleware wrappers.
func Definition(c cmd.Command) *discordgo.ApplicationCommand {
	sp, ok := cmd.Root(c).(SlashProvider)
	if !ok {
		return nil
	}
	def := sp.SlashDefinition()
	if def == nil {
		return nil
	}
	if def.Type == 0 {
		def.Type = discordgo.ChatApplicationCommand
	}
	return def
}

// Definitions returns the declarations of every registered command.
func Definitions(reg *cmd.Registry) []*discordgo.ApplicationCommand {
	var defs []*discordgo.ApplicationCommand
	for _, c := range reg.GetAll() {
		if def := Definition(c); def != nil {
			defs = append(defs, def)
		}
	}
	return defs
}
