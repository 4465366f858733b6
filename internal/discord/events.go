package discord

import (
	"log/slog"
	"time"

	"github.com/keshon/mcstatus-bot/internal/logging"

	"github.com/bwmarrin/discordgo"
)

func (b *Bot) eventLog() *slog.Logger {
	return logging.Component("events")
}

// onGuildCreate greets a guild the bot was just added to.
func (b *Bot) onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	if !b.welcomeDue(g.Guild) {
		return
	}
	b.eventLog().Info("Joined guild", "guild", g.ID, "name", g.Name)

	b.updateActivity(s)
	b.welcomeGuild(s, g.Guild, guildCount(s), func(channelID string) (int64, error) {
		return s.State.UserChannelPermissions(s.State.User.ID, channelID)
	})
}

func (b *Bot) onGuildDelete(s *discordgo.Session, g *discordgo.GuildDelete) {
	if g.Guild == nil || g.Unavailable {
		return
	}
	b.guilds.remove(g.ID)
	b.eventLog().Info("Left guild", "guild", g.ID)
	b.updateActivity(s)
}

// onGuildMemberAdd announces a new member in the welcome channel, if the guild has one.
func (b *Bot) onGuildMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	if m.Member == nil || m.User == nil {
		return
	}
	b.greetMember(s, b.guildChannels(s, m.GuildID), m.User, func() int {
		return b.memberCount(s, m.GuildID)
	})
}

// onMessageDelete reports deleted messages in the log channel.
func (b *Bot) onMessageDelete(s *discordgo.Session, m *discordgo.MessageDelete) {
	msg := loggableDeletion(m)
	if msg == nil {
		return
	}
	b.logDeletion(s, b.guildChannels(s, m.GuildID), msg)
}

// welcomeGuild posts the setup embed to the system channel, or else the
// top-most text channel the bot can write to.
func (b *Bot) welcomeGuild(send messageSender, g *discordgo.Guild, guildCount int, perms func(channelID string) (int64, error)) bool {
	log := b.eventLog().With("guild", g.ID)

	channelID := g.SystemChannelID
	if channelID == "" {
		ch := firstWritableChannel(g.Channels, perms)
		if ch == nil {
			log.Warn("No channel to send the welcome message to")
			return false
		}
		channelID = ch.ID
	}

	embed := guildWelcomeEmbed(b.printer, b.cfg.WelcomeChannel, b.cfg.LogChannel, guildCount)
	if err := MessageEmbed(send, channelID, embed); err != nil {
		log.Error("Failed to send guild welcome", "channel", channelID, "error", err)
		return false
	}
	return true
}

// greetMember posts to the welcome channel. Without one it does nothing,
// and memberCount is not consulted.
func (b *Bot) greetMember(send messageSender, channels []*discordgo.Channel, u *discordgo.User, memberCount func() int) bool {
	ch := findTextChannel(channels, b.cfg.WelcomeChannel)
	if ch == nil {
		return false
	}
	embed := memberWelcomeEmbed(b.printer, u, memberCount(), time.Now())
	if err := MessageEmbed(send, ch.ID, embed); err != nil {
		b.eventLog().Error("Failed to send member welcome", "channel", ch.ID, "error", err)
		return false
	}
	return true
}

// loggableDeletion returns the deleted message when it should be reported:
// it was cached, sent in a guild, and not written by a bot.
func loggableDeletion(m *discordgo.MessageDelete) *discordgo.Message {
	if m == nil || m.Message == nil || m.GuildID == "" {
		return nil
	}
	msg := m.BeforeDelete
	if msg == nil || msg.Author == nil || msg.Author.Bot {
		return nil
	}
	return msg
}

func (b *Bot) logDeletion(send messageSender, channels []*discordgo.Channel, msg *discordgo.Message) bool {
	ch := findTextChannel(channels, b.cfg.LogChannel)
	if ch == nil {
		return false
	}
	embed := messageDeletedEmbed(b.printer, msg, time.Now())
	if err := MessageEmbed(send, ch.ID, embed); err != nil {
		b.eventLog().Error("Failed to log deleted message", "channel", ch.ID, "error", err)
		return false
	}
	return true
}

func (b *Bot) guildChannels(s *discordgo.Session, guildID string) []*discordgo.Channel {
	if g, err := s.State.Guild(guildID); err == nil {
		return g.Channels
	}
	channels, err := s.GuildChannels(guildID)
	if err != nil {
		b.eventLog().Warn("Failed to fetch channels", "guild", guildID, "error", err)
		return nil
	}
	return channels
}

func (b *Bot) memberCount(s *discordgo.Session, guildID string) int {
	if g, err := s.State.Guild(guildID); err == nil && g.MemberCount > 0 {
		return g.MemberCount
	}
	g, err := s.GuildWithCounts(guildID)
	if err != nil {
		b.eventLog().Warn("Failed to fetch member count", "guild", guildID, "error", err)
		return 0
	}
	return g.ApproximateMemberCount
}
