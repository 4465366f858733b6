package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/keshon/mcstatus-bot/internal/command"
	"github.com/keshon/mcstatus-bot/internal/command/help"
	"github.com/keshon/mcstatus-bot/internal/command/mcstatus"
	"github.com/keshon/mcstatus-bot/internal/i18n"
	"github.com/keshon/mcstatus-bot/internal/mcsrv"
	"github.com/keshon/mcstatus-bot/pkg/cmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSections(t *testing.T) {
	p := i18n.MustNew("en")
	cmds := []cmd.Command{
		&command.DiscordAdapter{Cmd: mcstatus.New(p, mcsrv.NewClient(mcsrv.DefaultBaseURL), "25565")},
		&command.DiscordAdapter{Cmd: help.New(p)},
	}

	var buf bytes.Buffer
	writeSections(&buf, p, cmds)
	out := buf.String()

	general := bytes.Index(buf.Bytes(), []byte("### 📌 General"))
	utility := bytes.Index(buf.Bytes(), []byte("### 🔧 Utility"))
	require.GreaterOrEqual(t, general, 0)
	require.Greater(t, utility, general)
	assert.NotContains(t, out, "Moderation")

	assert.Contains(t, out, "* **`/mcstatus`**")
	assert.Contains(t, out, "* `ip` (required):")
	assert.Contains(t, out, "* `port` (optional):")
	assert.Contains(t, out, "* **`/help`**")
}

func TestRun_WritesReadme(t *testing.T) {
	dir := t.TempDir()
	tmpl := filepath.Join(dir, "README.md.tmpl")
	out := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(tmpl, []byte("# Bot\n\n{{ .CommandSections }}"), 0644))

	require.NoError(t, run(tmpl, out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Bot")
	assert.Contains(t, string(data), "`/mcstatus`")
}
