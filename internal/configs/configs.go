/*
Package configs is responsible for loading and parsing the application's configuration settings.

The configuration is read once from environment variables at process start and is treated
as immutable afterwards. It covers the listen port, the optional platform session cookie,
the upstream API endpoints, and CORS allowed origins.
*/
package configs

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// AppConfig contains all configuration parameters required for the application to run.
type AppConfig struct {
	// General Server Settings
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Port        int    `env:"PORT" envDefault:"3000"`

	// SessionCookie is the platform session credential. When set, it is attached to
	// presence lookups so the upstream also reports the server instance id.
	SessionCookie string `env:"ROBLOX_COOKIE"`

	// Upstream Settings
	PresenceAPIURL  string        `env:"PRESENCE_API_URL" envDefault:"https://presence.roproxy.com"`
	GamesAPIURL     string        `env:"GAMES_API_URL" envDefault:"https://games.roproxy.com"`
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"10s"`

	// Security Settings
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// LoadConfig reads and parses the application configuration from environment variables.
// It applies defaults for every optional item and validates the values that can be wrong.
func LoadConfig() (*AppConfig, error) {
	cfg := &AppConfig{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("port number %d is outside the valid range (1-65535)", cfg.Port)
	}

	if cfg.UpstreamTimeout <= 0 {
		return nil, fmt.Errorf("UPSTREAM_TIMEOUT must be positive, got %s", cfg.UpstreamTimeout)
	}

	cfg.SessionCookie = strings.TrimSpace(cfg.SessionCookie)
	cfg.PresenceAPIURL = strings.TrimRight(cfg.PresenceAPIURL, "/")
	cfg.GamesAPIURL = strings.TrimRight(cfg.GamesAPIURL, "/")

	origins := make([]string, 0, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	cfg.AllowedOrigins = origins

	return cfg, nil
}

// IsDevelopment reports whether the server runs in the development environment.
func (c *AppConfig) IsDevelopment() bool {
	return c.Environment == "development"
}

// HasSessionCredential reports whether a session cookie is configured. It gates the
// server instance field of presence records.
func (c *AppConfig) HasSessionCredential() bool {
	return c.SessionCookie != ""
}
