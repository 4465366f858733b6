// Package logging sets up the process-wide slog logger: a colored console
// handler plus an optional rotating file sink.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"gopkg.in/natefinch/lumberjack.v2"
)

const componentKey = "component"

var (
	debugColor = color.New(color.FgHiBlack)
	infoColor  = color.New(color.FgWhite)
	warnColor  = color.New(color.FgHiYellow)
	errorColor = color.New(color.FgHiRed)

	componentColors = map[string]*color.Color{
		"BOT":      color.New(color.FgHiMagenta),
		"REGISTRY": color.New(color.FgHiBlue),
		"DISPATCH": color.New(color.FgHiCyan),
		"STATUS":   color.New(color.FgHiGreen),
		"EVENTS":   color.New(color.FgMagenta),
	}
)

type Options struct {
	Level      slog.Level
	File       string
	MaxSizeMB  int
	MaxBackups int
	NoColor    bool
}

// Setup installs the default logger. The returned closer flushes the file
// sink, if any.
func Setup(opts Options) (*slog.Logger, io.Closer) {
	color.NoColor = opts.NoColor || !isTerminal(os.Stdout)

	var handler slog.Handler = NewConsoleHandler(os.Stdout, opts.Level)
	var closer io.Closer = nopCloser{}

	if opts.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			Compress:   true,
		}
		fileHandler := slog.NewTextHandler(rotator, &slog.HandlerOptions{Level: opts.Level})
		handler = fanout{handler, fileHandler}
		closer = rotator
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger, closer
}

// Component returns the default logger tagged with a component name.
func Component(name string) *slog.Logger {
	return slog.Default().With(slog.String(componentKey, name))
}

// ParseLevel maps a config string to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s", s)
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// ConsoleHandler prints "15:04:05 [LEVEL] [COMPONENT] message key=value".
type ConsoleHandler struct {
	w         io.Writer
	level     slog.Leveler
	mu        *sync.Mutex
	component string
	attrs     []slog.Attr
	now       func() time.Time
}

func NewConsoleHandler(w io.Writer, level slog.Leveler) *ConsoleHandler {
	return &ConsoleHandler{
		w:     w,
		level: level,
		mu:    &sync.Mutex{},
		now:   time.Now,
	}
}

func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	levelStr, levelColor := levelStyle(r.Level)

	component := h.component
	var sb strings.Builder
	writeAttr := func(a slog.Attr) {
		if a.Key == componentKey {
			component = strings.ToUpper(a.Value.String())
			return
		}
		fmt.Fprintf(&sb, " %s=%v", a.Key, a.Value.Any())
	}
	for _, a := range h.attrs {
		writeAttr(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(a)
		return true
	})

	line := fmt.Sprintf("[%s] %s%s", levelStr, r.Message, sb.String())
	if component != "" {
		compColor, ok := componentColors[component]
		if !ok {
			compColor = color.New(color.FgCyan)
		}
		line = fmt.Sprintf("%s %s", levelColor.Sprintf("[%s]", levelStr), compColor.Sprintf("[%s] %s%s", component, r.Message, sb.String()))
	} else {
		line = levelColor.Sprint(line)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintf(h.w, "%s %s\n", h.now().Format("15:04:05"), line)
	return err
}

func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

// WithGroup is a no-op; the console layout is flat.
func (h *ConsoleHandler) WithGroup(string) slog.Handler { return h }

func levelStyle(l slog.Level) (string, *color.Color) {
	switch {
	case l >= slog.LevelError:
		return "ERROR", errorColor
	case l >= slog.LevelWarn:
		return "WARN", warnColor
	case l >= slog.LevelInfo:
		return "INFO", infoColor
	default:
		return "DEBUG", debugColor
	}
}

type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, l slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, l) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error
	for _, h := range f {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}
