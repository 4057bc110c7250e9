// Package config loads runtime settings from the environment, after reading
// an optional .env file from the working directory.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"pitchbuild/internal/engine"
	"pitchbuild/internal/storage"
)

type Config struct {
	DBPath     string `env:"PB_DB_PATH"`
	Ruleset    string `env:"PB_RULESET" envDefault:"fc26"`
	MaxLevel   int    `env:"PB_MAX_LEVEL"`
	Awards     []int  `env:"PB_AP_AWARDS" envSeparator:","`
	StoreQuota int    `env:"PB_STORE_QUOTA" envDefault:"0"`
	LogLevel   string `env:"PB_LOG_LEVEL" envDefault:"warn"`
}

// Load reads .env (if present) and parses the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse reads the environment without touching .env.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DBPath == "" {
		p, err := storage.DefaultDBPath()
		if err != nil {
			return Config{}, err
		}
		cfg.DBPath = p
	}
	if cfg.StoreQuota < 0 {
		return Config{}, fmt.Errorf("PB_STORE_QUOTA must be >= 0 (got %d)", cfg.StoreQuota)
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}
	if _, err := cfg.Rules(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Rules resolves the ruleset preset and applies overrides.
func (c Config) Rules() (engine.Ruleset, error) {
	rules, err := engine.RulesetByName(c.Ruleset)
	if err != nil {
		return engine.Ruleset{}, err
	}
	if len(c.Awards) > 0 {
		rules.Awards = append(engine.AwardTable(nil), c.Awards...)
		rules.MaxLevel = len(c.Awards)
	}
	if c.MaxLevel > 0 {
		rules.MaxLevel = c.MaxLevel
	}
	if err := rules.Validate(); err != nil {
		return engine.Ruleset{}, err
	}
	return rules, nil
}

// Logger builds a text logger on w at the configured level.
func (c Config) Logger(w io.Writer) *slog.Logger {
	lvl, err := parseLevel(c.LogLevel)
	if err != nil {
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid PB_LOG_LEVEL: %q", s)
	}
}
