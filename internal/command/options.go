package command

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// CommandName returns the invoked command name, or "" when the event is not
// an application command.
func CommandName(e *discordgo.InteractionCreate) string {
	if e == nil || e.Interaction == nil || e.Type != discordgo.InteractionApplicationCommand {
		return ""
	}
	data, ok := e.Data.(discordgo.ApplicationCommandInteractionData)
	if !ok {
		return ""
	}
	return data.Name
}

// StringOption returns the trimmed value of a top-level string option.
func (ic *SlashInteractionContext) StringOption(name string) (string, bool) {
	if ic.Event == nil || ic.Event.Interaction == nil {
		return "", false
	}
	data, ok := ic.Event.Data.(discordgo.ApplicationCommandInteractionData)
	if !ok {
		return "", false
	}
	for _, o := range data.Options {
		if o.Name != name || o.Type != discordgo.ApplicationCommandOptionString {
			continue
		}
		s, ok := o.Value.(string)
		if !ok {
			return "", false
		}
		s = strings.TrimSpace(s)
		return s, s != ""
	}
	return "", false
}

// UserID returns the invoking user, whether the command ran in a guild or a DM.
func (ic *SlashInteractionContext) UserID() string {
	if ic.Event == nil || ic.Event.Interaction == nil {
		return ""
	}
	if ic.Event.Member != nil && ic.Event.Member.User != nil {
		return ic.Event.Member.User.ID
	}
	if ic.Event.User != nil {
		return ic.Event.User.ID
	}
	return ""
}

// NewSlashEvent builds an application command interaction without a gateway.
// Adapters outside Discord (the CLI) use it to drive the same dispatcher.
func NewSlashEvent(name string, options map[string]string) *discordgo.InteractionCreate {
	var opts []*discordgo.ApplicationCommandInteractionDataOption
	for k, v := range options {
		opts = append(opts, &discordgo.ApplicationCommandInteractionDataOption{
			Name:  k,
			Type:  discordgo.ApplicationCommandOptionString,
			Value: v,
		})
	}
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type: discordgo.InteractionApplicationCommand,
		Data: discordgo.ApplicationCommandInteractionData{
			Name:        name,
			CommandType: discordgo.ChatApplicationCommand,
			Options:     opts,
		},
	}}
}
