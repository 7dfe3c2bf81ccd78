// Package config reads process settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings that are not part of level data.
type Config struct {
	ScoreURL      string        `env:"MIDDLECHAMBER_SCORE_URL"`
	GameSlug      string        `env:"MIDDLECHAMBER_GAME_SLUG" envDefault:"middle-chamber"`
	Secret        string        `env:"MIDDLECHAMBER_SECRET"`
	DBPath        string        `env:"MIDDLECHAMBER_DB" envDefault:"~/.middlechamber/scores.db"`
	SubmitTimeout time.Duration `env:"MIDDLECHAMBER_SUBMIT_TIMEOUT" envDefault:"10s"`
	SentryDSN     string        `env:"SENTRY_DSN"`
	Debug         bool          `env:"MIDDLECHAMBER_DEBUG"`
}

// Load parses Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// RemoteEnabled reports whether remote score submission has everything it needs.
func (c Config) RemoteEnabled() bool {
	return c.ScoreURL != "" && c.GameSlug != "" && c.Secret != ""
}
