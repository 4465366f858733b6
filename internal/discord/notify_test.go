package discord

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/keshon/mcstatus-bot/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuildWelcomeEmbed(t *testing.T) {
	e := guildWelcomeEmbed(i18n.MustNew("en"), "welcome", "logs", 7)

	assert.Equal(t, "Thanks for adding me!", e.Title)
	assert.Contains(t, e.Description, "/help")
	assert.Equal(t, colorGreen, e.Color)
	require.Len(t, e.Fields, 1)
	assert.Equal(t, "Initial Setup", e.Fields[0].Name)
	assert.Contains(t, e.Fields[0].Value, "`welcome`")
	assert.Contains(t, e.Fields[0].Value, "`logs`")
	require.NotNil(t, e.Footer)
	assert.Equal(t, "This bot is running on 7 servers", e.Footer.Text)
}

func TestMemberWelcomeEmbed(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	u := &discordgo.User{ID: "42", Username: "steve"}

	e := memberWelcomeEmbed(i18n.MustNew("en"), u, 128, now)

	assert.Equal(t, "New Member!", e.Title)
	assert.Contains(t, e.Description, "<@42>")
	require.NotNil(t, e.Thumbnail)
	assert.NotEmpty(t, e.Thumbnail.URL)
	assert.Equal(t, "2024-05-01T12:00:00Z", e.Timestamp)
	assert.Equal(t, "Member #128", e.Footer.Text)
}

func TestMessageDeletedEmbed(t *testing.T) {
	now := time.Now()
	msg := &discordgo.Message{
		ChannelID: "c1",
		Content:   "hello there",
		Author:    &discordgo.User{ID: "7"},
	}

	e := messageDeletedEmbed(i18n.MustNew("en"), msg, now)

	assert.Equal(t, "Message Deleted", e.Title)
	assert.Equal(t, colorRed, e.Color)
	assert.Contains(t, e.Description, "<@7>")
	assert.Contains(t, e.Description, "<#c1>")
	require.Len(t, e.Fields, 1)
	assert.Equal(t, "Content", e.Fields[0].Name)
	assert.Equal(t, "hello there", e.Fields[0].Value)
}

func TestMessageDeletedEmbed_NoContent(t *testing.T) {
	msg := &discordgo.Message{ChannelID: "c1", Author: &discordgo.User{ID: "7"}}

	e := messageDeletedEmbed(i18n.MustNew("en"), msg, time.Now())
	assert.Equal(t, "No text content", e.Fields[0].Value)
}

func TestMessageDeletedEmbed_LongContentTruncated(t *testing.T) {
	msg := &discordgo.Message{
		ChannelID: "c1",
		Content:   strings.Repeat("a", 2000),
		Author:    &discordgo.User{ID: "7"},
	}

	e := messageDeletedEmbed(i18n.MustNew("en"), msg, time.Now())
	assert.Len(t, []rune(e.Fields[0].Value), 1024)
}

func TestFindTextChannel(t *testing.T) {
	channels := []*discordgo.Channel{
		{ID: "v", Name: "welcome", Type: discordgo.ChannelTypeGuildVoice},
		{ID: "u", Name: "Welcome", Type: discordgo.ChannelTypeGuildText},
		{ID: "t", Name: "welcome", Type: discordgo.ChannelTypeGuildText},
	}

	ch := findTextChannel(channels, "welcome")
	require.NotNil(t, ch)
	assert.Equal(t, "t", ch.ID)
	assert.Nil(t, findTextChannel(channels, "logs"))
}

func TestFirstWritableChannel(t *testing.T) {
	channels := []*discordgo.Channel{
		{ID: "c3", Type: discordgo.ChannelTypeGuildText, Position: 3},
		{ID: "c1", Type: discordgo.ChannelTypeGuildText, Position: 1},
		{ID: "v0", Type: discordgo.ChannelTypeGuildVoice, Position: 0},
		{ID: "c2", Type: discordgo.ChannelTypeGuildText, Position: 2},
	}
	perms := map[string]int64{
		"c1": discordgo.PermissionViewChannel,
		"c2": discordgo.PermissionSendMessages,
		"c3": discordgo.PermissionSendMessages,
		"v0": discordgo.PermissionSendMessages,
	}

	ch := firstWritableChannel(channels, func(id string) (int64, error) { return perms[id], nil })
	require.NotNil(t, ch)
	assert.Equal(t, "c2", ch.ID)
}

func TestFirstWritableChannel_None(t *testing.T) {
	channels := []*discordgo.Channel{{ID: "c1", Type: discordgo.ChannelTypeGuildText}}

	ch := firstWritableChannel(channels, func(string) (int64, error) { return 0, errors.New("no state") })
	assert.Nil(t, ch)
}
