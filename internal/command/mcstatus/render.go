package mcstatus

import (
	"strings"
	"time"

	"github.com/keshon/mcstatus-bot/internal/i18n"
	"github.com/keshon/mcstatus-bot/internal/mcsrv"

	"github.com/bwmarrin/discordgo"
)

const (
	embedColor = 0x5cb85c

	maxPlayers = 15
	maxNames   = 10
)

// Target is the server the user asked about.
type Target struct {
	Host string
	Port string
}

func (t Target) Address() string { return mcsrv.Address(t.Host, t.Port) }

// Render turns a status response into either plain content (offline) or an
// embed (online). Exactly one of the results is non-empty.
func Render(p *i18n.Printer, t Target, st *mcsrv.Status, iconURL string, now time.Time) (string, *discordgo.MessageEmbed) {
	if st == nil || !st.Online {
		return p.Sprintf(i18n.StatusOffline, t.Address()), nil
	}

	title := st.Hostname
	if title == "" {
		title = t.Host
	}
	version := st.Version
	if version == "" {
		version = p.Sprintf(i18n.StatusUnknown)
	}
	motd := p.Sprintf(i18n.StatusNoMOTD)
	if st.MOTD != nil {
		if joined := strings.Join(st.MOTD.Clean, "\n"); strings.TrimSpace(joined) != "" {
			motd = joined
		}
	}

	embed := &discordgo.MessageEmbed{
		Title:       p.Sprintf(i18n.StatusTitle, title),
		Description: p.Sprintf(i18n.StatusOnline, st.Players.Online, st.Players.Max),
		Color:       embedColor,
		Timestamp:   now.Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{Name: p.Sprintf(i18n.StatusVersion), Value: version, Inline: true},
			{Name: p.Sprintf(i18n.StatusAddress), Value: "`" + t.Address() + "`", Inline: true},
			{Name: p.Sprintf(i18n.StatusMOTD), Value: motd},
		},
	}
	if iconURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: iconURL}
	}

	if f := playersField(p, st.Players); f != nil {
		embed.Fields = append(embed.Fields, f)
	}
	if st.Mods != nil {
		if f := namesField(p, st.Mods.Names, i18n.StatusMods, i18n.StatusMoreMods); f != nil {
			embed.Fields = append(embed.Fields, f)
		}
	}
	if st.Plugins != nil {
		if f := namesField(p, st.Plugins.Names, i18n.StatusPlugins, i18n.StatusMorePlugins); f != nil {
			embed.Fields = append(embed.Fields, f)
		}
	}
	return "", embed
}

// playersField lists at most maxPlayers names. The overflow count uses the
// larger of the reported online count and the list length.
func playersField(p *i18n.Printer, pl mcsrv.Players) *discordgo.MessageEmbedField {
	if pl.Online <= 0 || len(pl.List) == 0 {
		return nil
	}
	shown, _ := truncate(pl.List, maxPlayers)
	value := strings.Join(shown, ", ")
	total := max(pl.Online, len(pl.List))
	if total > maxPlayers {
		value += "\n" + p.Sprintf(i18n.StatusMorePlayers, total-maxPlayers)
	}
	return &discordgo.MessageEmbedField{
		Name:  p.Sprintf(i18n.StatusPlayers, pl.Online),
		Value: value,
	}
}

func namesField(p *i18n.Printer, names []string, title, more i18n.Key) *discordgo.MessageEmbedField {
	if len(names) == 0 {
		return nil
	}
	shown, rest := truncate(names, maxNames)
	value := strings.Join(shown, ", ")
	if rest > 0 {
		value += " " + p.Sprintf(more, rest)
	}
	return &discordgo.MessageEmbedField{
		Name:  p.Sprintf(title, len(names)),
		Value: value,
	}
}

func truncate(list []string, limit int) ([]string, int) {
	if len(list) <= limit {
		return list, 0
	}
	return list[:limit], len(list) - limit
}
