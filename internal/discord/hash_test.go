package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func statusDef() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		ID:          "123",
		Name:        "mcstatus",
		Description: "Check server status",
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{Name: "port", Description: "Port", Type: discordgo.ApplicationCommandOptionString},
			{Name: "ip", Description: "Address", Type: discordgo.ApplicationCommandOptionString, Required: true},
		},
	}
}

func TestHashDefinitions_IgnoresOrderAndIDs(t *testing.T) {
	help := &discordgo.ApplicationCommand{Name: "help", Description: "Help", Type: discordgo.ChatApplicationCommand}

	a := statusDef()
	b := statusDef()
	b.ID = "999"
	b.Version = "2"
	b.Options[0], b.Options[1] = b.Options[1], b.Options[0]

	assert.Equal(t,
		hashDefinitions([]*discordgo.ApplicationCommand{help, a}),
		hashDefinitions([]*discordgo.ApplicationCommand{b, help}),
	)
}

func TestHashDefinitions_DetectsChanges(t *testing.T) {
	a := statusDef()
	b := statusDef()
	b.Options[1].Required = false

	assert.NotEqual(t,
		hashDefinitions([]*discordgo.ApplicationCommand{a}),
		hashDefinitions([]*discordgo.ApplicationCommand{b}),
	)
}
