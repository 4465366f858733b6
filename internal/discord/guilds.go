package discord

import (
	"sync"

	"github.com/bwmarrin/discordgo"
)

// guildSet holds the guilds already greeted in this process.
type guildSet struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

func newGuildSet() *guildSet {
	return &guildSet{ids: make(map[string]struct{})}
}

// add reports whether id was not in the set before.
func (g *guildSet) add(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.ids[id]; ok {
		return false
	}
	g.ids[id] = struct{}{}
	return true
}

func (g *guildSet) remove(id string) {
	g.mu.Lock()
	delete(g.ids, id)
	g.mu.Unlock()
}

// welcomeDue reports whether a GuildCreate is a join to greet. The gateway
// replays a GuildCreate for every guild after Ready and after reconnects;
// those carry a JoinedAt from before the bot started. The decision does not
// depend on the order in which event handlers run.
func (b *Bot) welcomeDue(g *discordgo.Guild) bool {
	if g == nil || g.Unavailable {
		return false
	}
	if g.JoinedAt.Before(b.startedAt) {
		return false
	}
	return b.guilds.add(g.ID)
}

// guildCount is the number of guilds in the session state.
func guildCount(s *discordgo.Session) int {
	if s == nil || s.State == nil {
		return 0
	}
	s.State.RLock()
	defer s.State.RUnlock()
	return len(s.State.Guilds)
}
