package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration read from the environment (and an optional .env file).
type Config struct {
	BotToken      string   `envconfig:"BOT_TOKEN" required:"true"`
	DBPath        string   `envconfig:"VIPBOT_DB_PATH" default:"vip_data.db"`
	CommandPrefix string   `envconfig:"VIPBOT_COMMAND_PREFIX" default:"!"`
	Language      string   `envconfig:"VIPBOT_LANGUAGE" default:"es"`
	Timezone      Location `envconfig:"VIPBOT_TIMEZONE" default:"Local"`
	LogFile       string   `envconfig:"VIPBOT_LOG_FILE" default:"vipbot.log"`
	LogLevel      string   `envconfig:"VIPBOT_LOG_LEVEL" default:"info"`
	Debug         bool     `envconfig:"VIPBOT_DEBUG" default:"false"`
	Reset         ResetConfig
}

// ResetConfig controls the weekly discount reset.
type ResetConfig struct {
	Weekday  Weekday       `envconfig:"VIPBOT_RESET_WEEKDAY" default:"monday"`
	Hour     int           `envconfig:"VIPBOT_RESET_HOUR" default:"20"`
	Interval time.Duration `envconfig:"VIPBOT_RESET_INTERVAL" default:"10m"`
}

// Weekday decodes English weekday names ("monday") for envconfig.
type Weekday time.Weekday

func (w *Weekday) Decode(value string) error {
	name := strings.ToLower(strings.TrimSpace(value))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == name {
			*w = Weekday(d)
			return nil
		}
	}
	return fmt.Errorf("unknown weekday %q", value)
}

// Location decodes an IANA zone name ("Local", "America/Santiago") for envconfig.
type Location struct {
	*time.Location
}

func (l *Location) Decode(value string) error {
	loc, err := time.LoadLocation(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", value, err)
	}
	l.Location = loc
	return nil
}

// loadConfig reads .env (if present) and decodes the environment.
func loadConfig() (*Config, error) {
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded environment from .env")
	}
	return parseConfig()
}

func parseConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.BotToken) == "" {
		return fmt.Errorf("BOT_TOKEN is empty")
	}
	if c.CommandPrefix == "" || strings.ContainsAny(c.CommandPrefix, " \t\n") {
		return fmt.Errorf("VIPBOT_COMMAND_PREFIX must be non-empty and contain no whitespace")
	}
	if c.Reset.Hour < 0 || c.Reset.Hour > 23 {
		return fmt.Errorf("VIPBOT_RESET_HOUR must be between 0 and 23, got %d", c.Reset.Hour)
	}
	if c.Reset.Interval <= 0 {
		return fmt.Errorf("VIPBOT_RESET_INTERVAL must be positive")
	}
	if _, ok := translations[c.Language]; !ok {
		slog.Warn("Unknown language, falling back to es", "language", c.Language)
		c.Language = "es"
	}
	if c.Timezone.Location == nil {
		c.Timezone.Location = time.Local
	}
	return nil
}
