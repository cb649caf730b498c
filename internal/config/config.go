package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/knaranjo357/icfes/internal/api"
)

// Config holds all client configuration.
type Config struct {
	// BaseURL is the backend endpoint.
	BaseURL string

	// HTTPTimeout is the per-request timeout for gateway calls.
	HTTPTimeout time.Duration

	// SessionFile is where the persisted session lives.
	SessionFile string
}

// Default returns a Config with production defaults.
func Default() Config {
	return Config{
		BaseURL:     api.DefaultBaseURL,
		HTTPTimeout: 30 * time.Second,
	}
}

// Load builds a Config from the environment, reading a .env file first if
// one exists in the working directory.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if u := os.Getenv("ICFES_API_URL"); u != "" {
		cfg.BaseURL = u
	}
	if t := os.Getenv("ICFES_HTTP_TIMEOUT"); t != "" {
		d, err := time.ParseDuration(t)
		if err != nil {
			return Config{}, fmt.Errorf("ICFES_HTTP_TIMEOUT: %w", err)
		}
		cfg.HTTPTimeout = d
	}
	if p := os.Getenv("ICFES_SESSION_FILE"); p != "" {
		cfg.SessionFile = p
	} else {
		p, err := DefaultSessionPath()
		if err != nil {
			return Config{}, err
		}
		cfg.SessionFile = p
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the Config for obvious misconfiguration.
func (c Config) Validate() error {
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("ICFES_API_URL must be an http(s) URL, got %q", c.BaseURL)
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("ICFES_HTTP_TIMEOUT must not be negative")
	}
	if c.SessionFile == "" {
		return fmt.Errorf("session file path is empty")
	}
	return nil
}

// DefaultSessionPath resolves the session file location under the user
// config directory.
func DefaultSessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "icfes", "session.json"), nil
}
