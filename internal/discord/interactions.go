package discord

import (
	"sync"

	"github.com/bwmarrin/discordgo"
)

// interactionReplier answers a single interaction and remembers whether it
// was acknowledged, so later messages become edits or followups.
type interactionReplier struct {
	s     *discordgo.Session
	i     *discordgo.InteractionCreate
	mu    sync.Mutex
	acked bool
}

func newInteractionReplier(s *discordgo.Session, i *discordgo.InteractionCreate) *interactionReplier {
	return &interactionReplier{s: s, i: i}
}

func (r *interactionReplier) Reply(content string, embeds []*discordgo.MessageEmbed, ephemeral bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := respond(r.s, r.i, responseData(content, embeds, ephemeral)); err != nil {
		return err
	}
	r.acked = true
	return nil
}

func (r *interactionReplier) Defer() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := RespondDeferred(r.s, r.i); err != nil {
		return err
	}
	r.acked = true
	return nil
}

func (r *interactionReplier) EditReply(content string, embeds []*discordgo.MessageEmbed) error {
	return EditResponse(r.s, r.i, content, embeds)
}

func (r *interactionReplier) Followup(content string, ephemeral bool) error {
	_, err := r.s.FollowupMessageCreate(r.i.Interaction, true, followupParams(content, ephemeral))
	return err
}

func (r *interactionReplier) Acknowledged() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.acked
}

func responseData(content string, embeds []*discordgo.MessageEmbed, ephemeral bool) *discordgo.InteractionResponseData {
	data := &discordgo.InteractionResponseData{Content: content, Embeds: embeds}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return data
}

func followupParams(content string, ephemeral bool) *discordgo.WebhookParams {
	params := &discordgo.WebhookParams{Content: content}
	if ephemeral {
		params.Flags = discordgo.MessageFlagsEphemeral
	}
	return params
}

// --- Interaction responses ---

func respond(s *discordgo.Session, i *discordgo.InteractionCreate, data *discordgo.InteractionResponseData) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

// RespondDeferred acknowledges an interaction publicly without an immediate reply.
func RespondDeferred(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
}

// EditResponse replaces the content and embeds of the original response.
func EditResponse(s *discordgo.Session, i *discordgo.InteractionCreate, content string, embeds []*discordgo.MessageEmbed) error {
	if embeds == nil {
		embeds = []*discordgo.MessageEmbed{}
	}
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &content,
		Embeds:  &embeds,
	})
	return err
}

// --- Channel messages (non-interaction) ---

// messageSender is the part of *discordgo.Session the event hooks post with.
type messageSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// MessageEmbed sends an embed to a channel.
func MessageEmbed(s messageSender, channelID string, embed *discordgo.MessageEmbed) error {
	_, err := s.ChannelMessageSendEmbed(channelID, embed)
	return err
}
