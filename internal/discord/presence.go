package discord

import (
	"github.com/keshon/mcstatus-bot/internal/i18n"

	"github.com/bwmarrin/discordgo"
)

// updateActivity shows the guild count as a "Watching" status.
func (b *Bot) updateActivity(s *discordgo.Session) {
	text := b.printer.Sprintf(i18n.Activity, guildCount(s))
	if err := s.UpdateWatchStatus(0, text); err != nil {
		b.log.Warn("Failed to update activity", "error", err)
		return
	}
	b.log.Debug("Activity updated", "text", text)
}
