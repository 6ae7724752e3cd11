// Package config loads the assistant's environment-driven configuration.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config captures the process configuration. Only the bot token is
// required; everything else defaults to values suitable for a single-host
// deployment.
type Config struct {
	DiscordBotToken string        `env:"DISCORD_BOT_TOKEN,required"`
	DataDir         string        `env:"ASSISTANT_DATA_DIR" envDefault:"./data"`
	CommandTimeout  time.Duration `env:"ASSISTANT_COMMAND_TIMEOUT" envDefault:"3s"`
	DocumentTimeout time.Duration `env:"ASSISTANT_DOCUMENT_TIMEOUT" envDefault:"30s"`
	SheetHour       int           `env:"ASSISTANT_SHEET_HOUR" envDefault:"12"`
}

// Load parses configuration from the current process environment and
// validates the value ranges.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.SheetHour < 0 || cfg.SheetHour > 23 {
		return Config{}, fmt.Errorf("ASSISTANT_SHEET_HOUR must be in 0..23, got %d", cfg.SheetHour)
	}
	if cfg.CommandTimeout <= 0 || cfg.DocumentTimeout <= 0 {
		return Config{}, fmt.Errorf("command and document timeouts must be positive")
	}
	return cfg, nil
}
