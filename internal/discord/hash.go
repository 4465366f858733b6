package discord

import (
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/bwmarrin/discordgo"
)

type optionShape struct {
	Name        string                                 `json:"name"`
	Description string                                 `json:"description"`
	Type        discordgo.ApplicationCommandOptionType `json:"type"`
	Required    bool                                   `json:"required"`
	Choices     []choiceShape                          `json:"choices,omitempty"`
	Options     []optionShape                          `json:"options,omitempty"`
}

type choiceShape struct {
	Name  string      `json:"name"`
	Value interface{} `json:"value"`
}

type commandShape struct {
	Name        string                           `json:"name"`
	Description string                           `json:"description"`
	Type        discordgo.ApplicationCommandType `json:"type"`
	Options     []optionShape                    `json:"options,omitempty"`
}

// hashDefinitions returns a digest of the user-visible parts of defs.
// IDs and versions are ignored, and command and option order does not matter.
func hashDefinitions(defs []*discordgo.ApplicationCommand) string {
	shapes := make([]commandShape, 0, len(defs))
	for _, d := range defs {
		if d == nil {
			continue
		}
		shapes = append(shapes, commandShape{
			Name:        d.Name,
			Description: d.Description,
			Type:        d.Type,
			Options:     shapeOptions(d.Options),
		})
	}
	sort.Slice(shapes, func(i, j int) bool { return shapes[i].Name < shapes[j].Name })

	data, _ := json.Marshal(shapes)
	return fmt.Sprintf("%x", sha1.Sum(data))
}

func shapeOptions(opts []*discordgo.ApplicationCommandOption) []optionShape {
	if len(opts) == 0 {
		return nil
	}
	out := make([]optionShape, 0, len(opts))
	for _, o := range opts {
		if o == nil {
			continue
		}
		s := optionShape{
			Name:        o.Name,
			Description: o.Description,
			Type:        o.Type,
			Required:    o.Required,
			Options:     shapeOptions(o.Options),
		}
		for _, c := range o.Choices {
			s.Choices = append(s.Choices, choiceShape{Name: c.Name, Value: c.Value})
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
