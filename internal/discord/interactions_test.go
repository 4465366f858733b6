package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestResponseData(t *testing.T) {
	embeds := []*discordgo.MessageEmbed{{Title: "x"}}

	d := responseData("hi", embeds, true)
	assert.Equal(t, "hi", d.Content)
	assert.Equal(t, embeds, d.Embeds)
	assert.Equal(t, discordgo.MessageFlagsEphemeral, d.Flags)

	d = responseData("hi", nil, false)
	assert.Zero(t, d.Flags)
}

func TestInteractionReplier_StartsUnacknowledged(t *testing.T) {
	r := newInteractionReplier(nil, &discordgo.InteractionCreate{})
	assert.False(t, r.Acknowledged())
}

func TestFollowupParams(t *testing.T) {
	p := followupParams("oops", true)
	assert.Equal(t, "oops", p.Content)
	assert.Equal(t, discordgo.MessageFlagsEphemeral, p.Flags)

	assert.Zero(t, followupParams("done", false).Flags)
}
