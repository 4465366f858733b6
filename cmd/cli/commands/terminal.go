package commands

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/fatih/color"
)

var (
	titleColor  = color.New(color.FgHiCyan, color.Bold)
	fieldColor  = color.New(color.Bold)
	footerColor = color.New(color.FgHiBlack)
	noticeColor = color.New(color.FgHiYellow)
)

// terminal prints interaction replies. Ephemeral replies are marked, since
// everything printed is private anyway.
type terminal struct {
	mu    sync.Mutex
	out   io.Writer
	acked bool
}

func newTerminal(out io.Writer) *terminal {
	return &terminal{out: out}
}

func (t *terminal) Reply(content string, embeds []*discordgo.MessageEmbed, ephemeral bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.acked = true
	t.print(content, embeds, ephemeral)
	return nil
}

func (t *terminal) Defer() error {
	t.mu.Lock()
	t.acked = true
	t.mu.Unlock()
	return nil
}

func (t *terminal) EditReply(content string, embeds []*discordgo.MessageEmbed) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.print(content, embeds, false)
	return nil
}

func (t *terminal) Followup(content string, ephemeral bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.print(content, nil, ephemeral)
	return nil
}

func (t *terminal) Acknowledged() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.acked
}

func (t *terminal) print(content string, embeds []*discordgo.MessageEmbed, ephemeral bool) {
	if content != "" {
		if ephemeral {
			noticeColor.Fprintln(t.out, content)
		} else {
			fmt.Fprintln(t.out, content)
		}
	}
	for _, e := range embeds {
		writeEmbed(t.out, e)
	}
}

func writeEmbed(w io.Writer, e *discordgo.MessageEmbed) {
	if e == nil {
		return
	}
	if e.Title != "" {
		titleColor.Fprintln(w, e.Title)
	}
	if e.Description != "" {
		fmt.Fprintln(w, e.Description)
	}
	for _, f := range e.Fields {
		fmt.Fprintln(w)
		fieldColor.Fprintln(w, f.Name)
		for _, line := range strings.Split(f.Value, "\n") {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}
	if e.Footer != nil && e.Footer.Text != "" {
		fmt.Fprintln(w)
		footerColor.Fprintln(w, e.Footer.Text)
	}
}
