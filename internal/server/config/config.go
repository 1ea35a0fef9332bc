// Package config handles configuration for the server component, including
// defaults, environment overlay, and command-line flags.
package config

import (
	"errors"
	"time"
)

// Config holds runtime settings for the streamhub server.
//
// Fields:
//   - Addr: bind address for the public HTTP endpoint.
//   - DatabaseURI / DatabaseName: MongoDB connection string and database.
//   - SecretKey: HMAC secret for signing JWTs (HS256). It has NO default;
//     startup fails when it is unset rather than running with a known key.
//   - TokenValidity: bearer token lifetime.
type Config struct {
	Addr          string        `env:"ADDRESS"`
	DatabaseURI   string        `env:"DATABASE_URI"`
	DatabaseName  string        `env:"DATABASE_NAME"`
	SecretKey     string        `env:"SECRET_KEY"`
	TokenValidity time.Duration `env:"TOKEN_VALIDITY"`
}

// ErrSecretKeyRequired is returned by Validate when no signing secret is
// configured.
var ErrSecretKeyRequired = errors.New("config: secret key is required")

// LoadDefaults populates Config with development defaults. SecretKey is left
// empty on purpose.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.DatabaseURI = "mongodb://localhost:27017"
	c.DatabaseName = "streamhub"
	c.TokenValidity = 24 * time.Hour
}

// Validate checks the invariants the rest of the server relies on.
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return ErrSecretKeyRequired
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from environment variables and finally from command-line flags.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
