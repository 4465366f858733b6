package discord

import (
	"sort"
	"time"

	"github.com/keshon/mcstatus-bot/internal/i18n"

	"github.com/bwmarrin/discordgo"
)

const (
	colorGreen = 0x00FF00
	colorRed   = 0xFF0000
)

func guildWelcomeEmbed(p *i18n.Printer, welcomeChannel, logChannel string, guildCount int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       p.Sprintf(i18n.GuildWelcomeTitle),
		Description: p.Sprintf(i18n.GuildWelcomeDescription),
		Color:       colorGreen,
		Fields: []*discordgo.MessageEmbedField{{
			Name:  p.Sprintf(i18n.GuildSetupTitle),
			Value: p.Sprintf(i18n.GuildSetupValue, welcomeChannel, logChannel),
		}},
		Footer: &discordgo.MessageEmbedFooter{Text: p.Sprintf(i18n.GuildFooter, guildCount)},
	}
}

func memberWelcomeEmbed(p *i18n.Printer, u *discordgo.User, memberCount int, now time.Time) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       p.Sprintf(i18n.MemberTitle),
		Description: p.Sprintf(i18n.MemberDescription, u.Mention()),
		Color:       colorGreen,
		Thumbnail:   &discordgo.MessageEmbedThumbnail{URL: u.AvatarURL("")},
		Timestamp:   now.Format(time.RFC3339),
		Footer:      &discordgo.MessageEmbedFooter{Text: p.Sprintf(i18n.MemberFooter, memberCount)},
	}
}

func messageDeletedEmbed(p *i18n.Printer, msg *discordgo.Message, now time.Time) *discordgo.MessageEmbed {
	content := msg.Content
	if content == "" {
		content = p.Sprintf(i18n.DeleteNoContent)
	}
	return &discordgo.MessageEmbed{
		Title:       p.Sprintf(i18n.DeleteTitle),
		Description: p.Sprintf(i18n.DeleteDescription, msg.Author.Mention(), "<#"+msg.ChannelID+">"),
		Color:       colorRed,
		Fields: []*discordgo.MessageEmbedField{{
			Name:  p.Sprintf(i18n.DeleteContent),
			Value: truncate(content, 1024),
		}},
		Timestamp: now.Format(time.RFC3339),
	}
}

// truncate cuts s to at most n runes, the limit Discord puts on field values.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// findTextChannel returns the first text channel named exactly name.
func findTextChannel(channels []*discordgo.Channel, name string) *discordgo.Channel {
	for _, ch := range channels {
		if ch != nil && ch.Type == discordgo.ChannelTypeGuildText && ch.Name == name {
			return ch
		}
	}
	return nil
}

// firstWritableChannel returns the top-most text channel for which perms
// grants SendMessages.
func firstWritableChannel(channels []*discordgo.Channel, perms func(channelID string) (int64, error)) *discordgo.Channel {
	text := make([]*discordgo.Channel, 0, len(channels))
	for _, ch := range channels {
		if ch != nil && ch.Type == discordgo.ChannelTypeGuildText {
			text = append(text, ch)
		}
	}
	sort.SliceStable(text, func(i, j int) bool { return text[i].Position < text[j].Position })

	for _, ch := range text {
		p, err := perms(ch.ID)
		if err != nil {
			continue
		}
		if p&discordgo.PermissionSendMessages != 0 {
			return ch
		}
	}
	return nil
}
