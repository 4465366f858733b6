// cmd/build-readme regenerates README.md from README.md.tmpl and the
// registered slash commands.
package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/template"

	_ "github.com/keshon/mcstatus-bot/internal/command/help"
	_ "github.com/keshon/mcstatus-bot/internal/command/mcstatus"
	_ "github.com/keshon/mcstatus-bot/internal/command/ping"

	"github.com/keshon/mcstatus-bot/internal/command"
	"github.com/keshon/mcstatus-bot/internal/command/help"
	"github.com/keshon/mcstatus-bot/internal/i18n"
	"github.com/keshon/mcstatus-bot/internal/mcsrv"
	"github.com/keshon/mcstatus-bot/pkg/cmd"
)

const (
	tmplPath = "README.md.tmpl"
	outPath  = "README.md"
)

func main() {
	if err := run(tmplPath, outPath); err != nil {
		slog.Error("Failed to build README", "error", err)
		os.Exit(1)
	}
	slog.Info("README updated with current commands", "path", outPath)
}

func run(src, dst string) error {
	tmplData, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	tmpl, err := template.New("readme").Parse(string(tmplData))
	if err != nil {
		return fmt.Errorf("parse template: %w", err)
	}

	p := i18n.MustNew("en")
	reg := cmd.NewRegistry()
	command.Load(reg, command.Deps{
		Printer:     p,
		Status:      mcsrv.NewClient(mcsrv.DefaultBaseURL),
		DefaultPort: mcsrv.DefaultPort,
	})

	var sections bytes.Buffer
	writeSections(&sections, p, reg.GetAll())

	var out bytes.Buffer
	if err := tmpl.Execute(&out, map[string]any{"CommandSections": sections.String()}); err != nil {
		return fmt.Errorf("render template: %w", err)
	}
	return os.WriteFile(dst, out.Bytes(), 0644)
}

// writeSections lists commands under the same categories /help uses.
func writeSections(w io.Writer, p *i18n.Printer, cmds []cmd.Command) {
	parts := help.Partition(cmds)
	for _, section := range []struct {
		cat   help.Category
		title i18n.Key
	}{
		{help.General, i18n.HelpGeneral},
		{help.Moderation, i18n.HelpModeration},
		{help.Utility, i18n.HelpUtility},
	} {
		list := parts[section.cat]
		if len(list) == 0 {
			continue
		}
		fmt.Fprintf(w, "### %s\n\n", p.Sprintf(section.title))
		for _, c := range list {
			fmt.Fprintf(w, "* **`/%s`**\n  %s\n", c.Name(), c.Description())
			if def := command.Definition(c); def != nil {
				for _, o := range def.Options {
					req := p.Sprintf(i18n.HelpOptional)
					if o.Required {
						req = p.Sprintf(i18n.HelpRequired)
					}
					fmt.Fprintf(w, "  * `%s` %s: %s\n", o.Name, req, o.Description)
				}
			}
			fmt.Fprintln(w)
		}
	}
}
