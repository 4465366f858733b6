package commands

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRe.ReplaceAllString(s, "")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--no-color", "--log-level", "error"))
	err := root.Execute()
	return stripANSI(out.String()), err
}

func TestCommandsCmd_ListsBotCommands(t *testing.T) {
	out, err := execute(t, "commands")
	require.NoError(t, err)

	assert.Contains(t, out, "Command List")
	assert.Contains(t, out, "`mcstatus`")
	assert.Contains(t, out, "`help`")
	assert.Contains(t, out, "`ping`")
	assert.Contains(t, out, "Use /help [command name] for more details")
}

func TestCommandsCmd_Detail(t *testing.T) {
	out, err := execute(t, "commands", "mcstatus")
	require.NoError(t, err)

	assert.Contains(t, out, "Command: /mcstatus")
	assert.Contains(t, out, "(required)")
}

func TestCommandsCmd_Unknown(t *testing.T) {
	out, err := execute(t, "commands", "nope")
	require.NoError(t, err)
	assert.Contains(t, out, "There is no command with the name `nope`!")
}

func TestCommandsCmd_Indonesian(t *testing.T) {
	out, err := execute(t, "commands", "--locale", "id")
	require.NoError(t, err)
	assert.Contains(t, out, "Daftar Perintah")
}

func TestStatusCmd_Offline(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"online":false}`))
	}))
	defer srv.Close()

	out, err := execute(t, "status", "mc.example.org", "--api-url", srv.URL)
	require.NoError(t, err)

	assert.Equal(t, "/2/mc.example.org:25565", gotPath)
	assert.Contains(t, out, "`mc.example.org:25565` is offline")
}

func TestStatusCmd_Online(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"online": true,
			"hostname": "play.example.org",
			"version": "1.20.4",
			"motd": {"clean": ["Welcome", "Have fun"]},
			"players": {"online": 2, "max": 20, "list": ["alex", "steve"]}
		}`))
	}))
	defer srv.Close()

	out, err := execute(t, "status", "mc.example.org", "25570", "--api-url", srv.URL)
	require.NoError(t, err)

	assert.Contains(t, out, "Server Status: play.example.org")
	assert.Contains(t, out, "1.20.4")
	assert.Contains(t, out, "mc.example.org:25570")
	assert.Contains(t, out, "Welcome")
	assert.Contains(t, out, "alex, steve")
}

func TestStatusCmd_RequiresHost(t *testing.T) {
	_, err := execute(t, "status")
	require.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "mcstatus-bot dev"))
}

func TestTerminal_PrintsEmbed(t *testing.T) {
	var buf bytes.Buffer
	term := newTerminal(&buf)

	require.False(t, term.Acknowledged())
	require.NoError(t, term.Defer())
	require.True(t, term.Acknowledged())

	require.NoError(t, term.EditReply("", []*discordgo.MessageEmbed{{
		Title:       "Title",
		Description: "Body",
		Fields:      []*discordgo.MessageEmbedField{{Name: "Field", Value: "a\nb"}},
		Footer:      &discordgo.MessageEmbedFooter{Text: "Foot"},
	}}))

	out := stripANSI(buf.String())
	assert.Equal(t, "Title\nBody\n\nField\n  a\n  b\n\nFoot\n", out)
}
