// cmd/discord/main.go
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/keshon/mcstatus-bot/internal/command/help"
	_ "github.com/keshon/mcstatus-bot/internal/command/mcstatus"
	_ "github.com/keshon/mcstatus-bot/internal/command/ping"

	"github.com/keshon/mcstatus-bot/internal/command"
	"github.com/keshon/mcstatus-bot/internal/config"
	"github.com/keshon/mcstatus-bot/internal/discord"
	"github.com/keshon/mcstatus-bot/internal/i18n"
	"github.com/keshon/mcstatus-bot/internal/logging"
	"github.com/keshon/mcstatus-bot/internal/mcsrv"
	"github.com/keshon/mcstatus-bot/internal/middleware"
	v "github.com/keshon/mcstatus-bot/internal/version"
	"github.com/keshon/mcstatus-bot/pkg/cmd"
)

func main() {
	config.LoadDotEnv()

	cfg, err := config.New()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	level, _ := logging.ParseLevel(cfg.LogLevel)
	_, closer := logging.Setup(logging.Options{
		Level:      level,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
	})
	defer closer.Close()

	log := logging.Component("bot")
	log.Info("Starting bot", "app", v.AppName, "version", v.Version, "locale", cfg.Locale)

	printer, err := i18n.New(cfg.Locale)
	if err != nil {
		log.Error("Failed to set up messages", "error", err)
		os.Exit(1)
	}

	status := mcsrv.NewClient(cfg.StatusAPIURL,
		mcsrv.WithTimeout(cfg.StatusAPITimeout),
		mcsrv.WithRateLimit(cfg.StatusAPIRPS, cfg.StatusAPIBurst),
		mcsrv.WithUserAgent(v.UserAgent()),
	)

	reg := cmd.NewRegistry()
	res := command.Load(reg, command.Deps{
		Printer:     printer,
		Status:      status,
		DefaultPort: cfg.DefaultMCPort,
	}, middleware.WithCommandLogger())
	log.Info("Commands loaded", "loaded", len(res.Loaded), "skipped", len(res.Skipped))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bot := discord.NewBot(cfg, reg, printer)

	errCh := make(chan error, 1)
	go func() {
		if err := bot.Run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	exitCode := 0
	select {
	case s := <-sig:
		log.Info("Received signal, shutting down", "signal", s.String())
		cancel()
		<-errCh
	case err, ok := <-errCh:
		if ok && err != nil {
			log.Error("Discord bot error", "error", err)
			exitCode = 1
		}
		cancel()
	}

	log.Info("Discord bot exited cleanly")
	if exitCode != 0 {
		closer.Close()
		os.Exit(exitCode)
	}
}
