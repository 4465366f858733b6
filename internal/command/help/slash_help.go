package help

import (
	"context"
	"fmt"
	"strings"

	"github.com/keshon/mcstatus-bot/internal/command"
	"github.com/keshon/mcstatus-bot/internal/i18n"
	"github.com/keshon/mcstatus-bot/pkg/cmd"

	"github.com/bwmarrin/discordgo"
)

const embedColor = 0x0099ff

// HelpCommand lists the registered commands, or describes one of them.
type HelpCommand struct {
	printer *i18n.Printer
}

// New returns a help command rendering its text with p.
func New(p *i18n.Printer) *HelpCommand {
	return &HelpCommand{printer: p}
}

func (c *HelpCommand) Name() string { return "help" }
func (c *HelpCommand) Description() string {
	return "Displays a list of all commands or info about a specific command"
}

func (c *HelpCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "command",
				Description: "The name of the command to get information about",
				Required:    false,
			},
		},
	}
}

func (c *HelpCommand) Run(ctx context.Context, ic *command.SlashInteractionContext) error {
	all := ic.Registry.GetAll()

	name, ok := ic.StringOption("command")
	if !ok {
		return ic.Reply.Reply("", []*discordgo.MessageEmbed{BuildList(c.printer, all)}, false)
	}

	target, found := ic.Registry.Get(name)
	if !found {
		return ic.Reply.Reply(c.printer.Sprintf(i18n.HelpNotFound, name), nil, true)
	}
	return ic.Reply.Reply("", []*discordgo.MessageEmbed{BuildDetail(c.printer, target)}, false)
}

// Category is one of the three fixed help sections.
type Category int

const (
	General Category = iota
	Moderation
	Utility
)

var utilityNames = map[string]bool{"userinfo": true, "ping": true, "help": true}

// Categorize places a command name in exactly one category.
func Categorize(name string) Category {
	switch {
	case name == "mod":
		return Moderation
	case utilityNames[name]:
		return Utility
	default:
		return General
	}
}

// Partition splits cmds into categories, keeping input order within each.
func Partition(cmds []cmd.Command) map[Category][]cmd.Command {
	out := make(map[Category][]cmd.Command, 3)
	for _, c := range cmds {
		cat := Categorize(c.Name())
		out[cat] = append(out[cat], c)
	}
	return out
}

// BuildList renders the categorized command overview.
func BuildList(p *i18n.Printer, cmds []cmd.Command) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       p.Sprintf(i18n.HelpListTitle),
		Description: p.Sprintf(i18n.HelpListDescription),
		Color:       embedColor,
		Footer:      &discordgo.MessageEmbedFooter{Text: p.Sprintf(i18n.HelpListFooter)},
	}

	parts := Partition(cmds)
	for _, section := range []struct {
		cat   Category
		title i18n.Key
	}{
		{General, i18n.HelpGeneral},
		{Moderation, i18n.HelpModeration},
		{Utility, i18n.HelpUtility},
	} {
		list := parts[section.cat]
		if len(list) == 0 {
			continue
		}
		lines := make([]string, 0, len(list))
		for _, c := range list {
			lines = append(lines, fmt.Sprintf("`%s`: %s", c.Name(), c.Description()))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  p.Sprintf(section.title),
			Value: strings.Join(lines, "\n"),
		})
	}
	return embed
}

// BuildDetail renders one command with its subcommands and options.
func BuildDetail(p *i18n.Printer, c cmd.Command) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       p.Sprintf(i18n.HelpDetailTitle, c.Name()),
		Description: c.Description(),
		Color:       embedColor,
	}

	def := command.Definition(c)
	if def == nil {
		return embed
	}

	var subs, opts []string
	for _, o := range def.Options {
		if o.Type == discordgo.ApplicationCommandOptionSubCommand {
			subs = append(subs, fmt.Sprintf("`%s`: %s", o.Name, o.Description))
			continue
		}
		marker := p.Sprintf(i18n.HelpOptional)
		if o.Required {
			marker = p.Sprintf(i18n.HelpRequired)
		}
		opts = append(opts, fmt.Sprintf("`%s`: %s %s", o.Name, o.Description, marker))
	}

	if len(subs) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  p.Sprintf(i18n.HelpSubcommands),
			Value: strings.Join(subs, "\n"),
		})
	}
	if len(opts) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  p.Sprintf(i18n.HelpOptions),
			Value: strings.Join(opts, "\n"),
		})
	}
	return embed
}

func init() {
	command.Provide("help", func(d command.Deps) command.DiscordCommand {
		if d.Printer == nil {
			return nil
		}
		return New(d.Printer)
	})
}
