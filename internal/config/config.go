// /internal/config/config.go
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN,required,notEmpty"`

	StatusAPIURL     string        `env:"STATUS_API_URL" envDefault:"https://api.mcsrvstat.us"`
	StatusAPITimeout time.Duration `env:"STATUS_API_TIMEOUT" envDefault:"10s"`
	StatusAPIRPS     float64       `env:"STATUS_API_RPS" envDefault:"2"`
	StatusAPIBurst   int           `env:"STATUS_API_BURST" envDefault:"4"`
	DefaultMCPort    string        `env:"DEFAULT_MC_PORT" envDefault:"25565"`

	WelcomeChannel string `env:"WELCOME_CHANNEL" envDefault:"welcome"`
	LogChannel     string `env:"LOG_CHANNEL" envDefault:"logs"`
	Locale         string `env:"BOT_LOCALE" envDefault:"en"`

	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile       string `env:"LOG_FILE"`
	LogMaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" envDefault:"10"`
	LogMaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"3"`
}

var supportedLocales = []string{"en", "id"}

// LoadDotEnv loads .env from the working directory when present.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Failed to load .env file", "error", err)
	}
}

// New reads the configuration from the process environment.
func New() (*Config, error) {
	return parse(env.Options{})
}

// FromMap reads the configuration from vars instead of the process environment.
func FromMap(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that the env tags cannot express.
func (c *Config) Validate() error {
	c.Locale = strings.ToLower(strings.TrimSpace(c.Locale))
	if !isSupportedLocale(c.Locale) {
		return fmt.Errorf("unsupported BOT_LOCALE %q (want one of %s)", c.Locale, strings.Join(supportedLocales, ", "))
	}
	if c.StatusAPIRPS <= 0 {
		return fmt.Errorf("STATUS_API_RPS must be positive, got %v", c.StatusAPIRPS)
	}
	if c.StatusAPIBurst < 1 {
		return fmt.Errorf("STATUS_API_BURST must be at least 1, got %d", c.StatusAPIBurst)
	}
	if strings.TrimSpace(c.DefaultMCPort) == "" {
		return fmt.Errorf("DEFAULT_MC_PORT is empty")
	}
	if strings.TrimSpace(c.StatusAPIURL) == "" {
		return fmt.Errorf("STATUS_API_URL is empty")
	}
	c.StatusAPIURL = strings.TrimRight(c.StatusAPIURL, "/")
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid LOG_LEVEL %q", c.LogLevel)
	}
	return nil
}

func isSupportedLocale(locale string) bool {
	for _, l := range supportedLocales {
		if l == locale {
			return true
		}
	}
	return false
}
