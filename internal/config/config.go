package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Mode string

// DevSessionSecret is the offline default; online mode refuses it.
const DevSessionSecret = "supersecret-dev-key"

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// Config is loaded from the environment. SessionTTL is the idle expiry of a
// form session; SessionTokenTTL is the lifetime of the cookie naming it.
type Config struct {
	Mode      Mode   `env:"MODE" envDefault:"offline"`
	HTTPAddr  string `env:"HTTP_ADDR" envDefault:":8080"`
	PublicURL string `env:"PUBLIC_URL"`

	SessionSecret   string        `env:"SESSION_SECRET" envDefault:"supersecret-dev-key"`
	SessionTTL      time.Duration `env:"SESSION_TTL" envDefault:"2h"`
	SessionTokenTTL time.Duration `env:"SESSION_TOKEN_TTL" envDefault:"12h"`
	SweepInterval   time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"5m"`
	SecureCookies   bool          `env:"SECURE_COOKIES"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`

	CORSOriginsOnline  []string `env:"CORS_ORIGINS_ONLINE" envSeparator:"," envDefault:"https://grades.mindengage.ai"`
	CORSOriginsOffline []string `env:"CORS_ORIGINS_OFFLINE" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:3010"`
}

// FromEnv loads the configuration from environment variables.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Mode {
	case ModeOffline, ModeOnline:
	default:
		return fmt.Errorf("unsupported mode: %s", c.Mode)
	}
	if c.SessionSecret == "" {
		return errors.New("SESSION_SECRET is required")
	}
	if c.Mode == ModeOnline && c.SessionSecret == DevSessionSecret {
		return errors.New("SESSION_SECRET must be set in online mode")
	}
	if c.SessionTokenTTL <= 0 {
		return errors.New("SESSION_TOKEN_TTL must be positive")
	}
	return nil
}

// CORSOrigins returns the allowed origins for the current mode.
func (c Config) CORSOrigins() []string {
	if c.Mode == ModeOnline {
		return c.CORSOriginsOnline
	}
	return c.CORSOriginsOffline
}
