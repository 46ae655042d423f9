// config.go
//
// Process configuration for the jumble server.
// Values are read once at startup from the environment (after godotenv has
// loaded any .env file) and never change for the process lifetime.
//
// SEED handling: the variable is free-form text. Anything that is not a
// non-negative integer — unset, garbage, or a negative number — means
// "use entropy"; the parse happens exactly once, here, never per request.

package main

import (
	"fmt"
	"strconv"

	"github.com/caarlos0/env/v11"
)

// Config holds all process-wide settings.
type Config struct {
	Host           string `env:"HOST" envDefault:"0.0.0.0"`
	Port           string `env:"PORT" envDefault:"5000"`
	Debug          bool   `env:"DEBUG" envDefault:"false"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	SecretKey      string `env:"SECRET_KEY" envDefault:"dev_secret_change_me"`
	VocabFile      string `env:"VOCAB_FILE"`        // empty = embedded default list
	SuccessAtCount int    `env:"SUCCESS_AT_COUNT" envDefault:"3"`
	RawSeed        string `env:"SEED"`              // parsed into Seed below
	DBPath         string `env:"DB_PATH"`           // empty = in-memory round history
	ClientOrigin   string `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
	SecureCookies  bool   `env:"SECURE_COOKIES" envDefault:"false"`

	// Seed is the normalized jumble seed: nil means non-deterministic.
	Seed *int64 `env:"-"`
}

// loadConfig parses and validates the environment.
func loadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	cfg.Seed = parseSeed(cfg.RawSeed)
	if cfg.SuccessAtCount < 1 {
		return cfg, fmt.Errorf("config: SUCCESS_AT_COUNT must be >= 1, got %d", cfg.SuccessAtCount)
	}
	return cfg, nil
}

// parseSeed maps the raw SEED string to an optional seed. Non-integer and
// negative values both disable determinism.
func parseSeed(raw string) *int64 {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}
