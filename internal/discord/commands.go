package discord

import (
	"fmt"
	"strings"

	"github.com/keshon/mcstatus-bot/internal/command"

	"github.com/bwmarrin/discordgo"
)

// registerCommands replaces the global application commands with the local
// definitions. An unchanged definition set is not pushed again on reconnect.
func (b *Bot) registerCommands(s *discordgo.Session) error {
	appID, err := b.appID(s)
	if err != nil {
		return err
	}

	defs := command.Definitions(b.registry)
	digest := hashDefinitions(defs)
	if digest == b.syncedDigest {
		b.log.Debug("Application commands unchanged, skipping sync", "count", len(defs))
		return nil
	}

	created, err := s.ApplicationCommandBulkOverwrite(appID, "", defs)
	if err != nil {
		return fmt.Errorf("bulk overwrite: %w", err)
	}
	b.syncedDigest = digest

	names := make([]string, 0, len(created))
	for _, c := range created {
		names = append(names, c.Name)
	}
	b.log.Info("Registered application commands", "count", len(created), "names", strings.Join(names, ","))
	return nil
}

func (b *Bot) appID(s *discordgo.Session) (string, error) {
	if s.State != nil && s.State.User != nil && s.State.User.ID != "" {
		return s.State.User.ID, nil
	}
	u, err := s.User("@me")
	if err != nil {
		return "", fmt.Errorf("resolve application id: %w", err)
	}
	return u.ID, nil
}
