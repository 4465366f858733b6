// Package commandtest provides a recording Replier for command tests.
package commandtest

import (
	"errors"
	"sync"

	"github.com/bwmarrin/discordgo"
)

var ErrAlreadyAcknowledged = errors.New("interaction already acknowledged")

// Message is one response recorded by Replier.
type Message struct {
	Kind      string // reply, defer, edit or followup
	Content   string
	Embeds    []*discordgo.MessageEmbed
	Ephemeral bool
}

// Replier records responses and enforces that an interaction is answered
// with at most one initial response, like Discord does.
type Replier struct {
	mu       sync.Mutex
	acked    bool
	Messages []Message
	Err      error
}

func (r *Replier) record(m Message) error {
	r.Messages = append(r.Messages, m)
	return r.Err
}

func (r *Replier) Reply(content string, embeds []*discordgo.MessageEmbed, ephemeral bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.acked {
		return ErrAlreadyAcknowledged
	}
	r.acked = true
	return r.record(Message{Kind: "reply", Content: content, Embeds: embeds, Ephemeral: ephemeral})
}

func (r *Replier) Defer() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.acked {
		return ErrAlreadyAcknowledged
	}
	r.acked = true
	return r.record(Message{Kind: "defer"})
}

func (r *Replier) EditReply(content string, embeds []*discordgo.MessageEmbed) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.record(Message{Kind: "edit", Content: content, Embeds: embeds})
}

func (r *Replier) Followup(content string, ephemeral bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.record(Message{Kind: "followup", Content: content, Ephemeral: ephemeral})
}

func (r *Replier) Acknowledged() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.acked
}

// Last returns the most recent message, or the zero Message.
func (r *Replier) Last() Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Messages) == 0 {
		return Message{}
	}
	return r.Messages[len(r.Messages)-1]
}

// Count returns how many messages of kind were recorded.
func (r *Replier) Count(kind string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, m := range r.Messages {
		if m.Kind == kind {
			n++
		}
	}
	return n
}
