// Package config loads GlossWalk settings from the environment and .env files.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix, e.g. GLOSSWALK_SEARCH_URL.
const Prefix = "GLOSSWALK"

var ErrMissingRequired = errors.New("missing required configuration")

type Config struct {
	// Site
	SearchURL    string `envconfig:"SEARCH_URL" default:"https://www.alleydog.com/search-results.php?q="`
	ResultsClass string `envconfig:"RESULTS_CLASS" default:"results"`

	// Transport; zero timeout waits forever.
	FetchTimeout time.Duration `envconfig:"FETCH_TIMEOUT" default:"0s"`
	UserAgent    string        `envconfig:"USER_AGENT"`

	// Console and logs
	LogLevel  string `envconfig:"LOG_LEVEL" default:"warn"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
	NoColor   bool   `envconfig:"NO_COLOR" default:"false"`

	// Transcript
	OutputDir string `envconfig:"OUTPUT_DIR"`
}

// Load reads the environment. It does not validate, so callers can apply
// overrides (e.g. CLI flags) first and then call Validate.
func Load() (*Config, error) {
	// Ignore errors, as env vars might be set in the shell
	_ = godotenv.Load(".env")

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.SearchURL == "" {
		return fmt.Errorf("%w: %s_SEARCH_URL", ErrMissingRequired, Prefix)
	}
	if strings.TrimSpace(c.ResultsClass) == "" {
		return fmt.Errorf("%w: %s_RESULTS_CLASS", ErrMissingRequired, Prefix)
	}
	if c.FetchTimeout < 0 {
		return fmt.Errorf("negative fetch timeout %s", c.FetchTimeout)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q (want text or json)", c.LogFormat)
	}
	return nil
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}
