package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// UI selects the front-end
type UI string

const (
	UIPlain UI = "plain" // line-oriented prompts on stdin/stdout
	UITUI   UI = "tui"   // full-screen Bubble Tea program
)

// Config represents the user's configuration. Every field is optional.
type Config struct {
	UI       UI     `env:"BUCKETS_UI" envDefault:"plain"`
	LogLevel string `env:"BUCKETS_LOG_LEVEL" envDefault:"warn"`
	LogFile  string `env:"BUCKETS_LOG_FILE"`
	Debug    bool   `env:"BUCKETS_DEBUG"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		UI:       UIPlain,
		LogLevel: "warn",
	}
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads the config from the environment and validates it
func Load() (*Config, error) {
	cfg := DefaultConfig()
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	c.UI = UI(strings.ToLower(strings.TrimSpace(string(c.UI))))
	if c.UI != UIPlain && c.UI != UITUI {
		return fmt.Errorf("BUCKETS_UI must be %q or %q, got %q", UIPlain, UITUI, c.UI)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("BUCKETS_LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// NewLogger builds the JSON logger described by the config. Logs go to
// LogFile when set, otherwise to fallback. The returned close function
// releases the log file.
func (c *Config) NewLogger(fallback io.Writer) (*slog.Logger, func() error, error) {
	level, err := c.Level()
	if err != nil {
		return nil, nil, err
	}

	w := fallback
	closeFn := func() error { return nil }
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}
	if w == nil {
		w = io.Discard
	}

	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	return logger, closeFn, nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
