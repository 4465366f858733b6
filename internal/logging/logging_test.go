package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(buf *bytes.Buffer, level slog.Level) *ConsoleHandler {
	color.NoColor = true
	h := NewConsoleHandler(buf, level)
	h.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
	return h
}

func TestConsoleHandler_Layout(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newTestHandler(&buf, slog.LevelInfo))

	logger.Info("Bot ready", "guilds", 3)
	assert.Equal(t, "03:04:05 [INFO] Bot ready guilds=3\n", buf.String())
}

func TestConsoleHandler_Component(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newTestHandler(&buf, slog.LevelInfo)).With(slog.String("component", "dispatch"))

	logger.Warn("Unknown command", "name", "foo")
	assert.Equal(t, "03:04:05 [WARN] [DISPATCH] Unknown command name=foo\n", buf.String())
}

func TestConsoleHandler_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newTestHandler(&buf, slog.LevelWarn))

	logger.Info("hidden")
	logger.Debug("hidden")
	logger.Error("shown")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "[ERROR] shown")
}

func TestFanout_WritesToAll(t *testing.T) {
	var a, b bytes.Buffer
	logger := slog.New(fanout{
		newTestHandler(&a, slog.LevelInfo),
		slog.NewTextHandler(&b, &slog.HandlerOptions{Level: slog.LevelInfo}),
	})

	logger.Info("hello", "k", "v")
	assert.Contains(t, a.String(), "[INFO] hello k=v")
	assert.Contains(t, b.String(), "msg=hello")
	assert.Contains(t, b.String(), "k=v")
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"":        slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}
