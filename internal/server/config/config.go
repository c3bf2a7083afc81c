// Package config handles configuration for the server: defaults, environment
// overlay, optional JSON file, and command-line flags, applied in that order.
package config

import (
	"errors"
	"fmt"

	"github.com/pingreng/pingr-server/internal/cryptox"
)

// Config holds runtime settings for the Pingr server.
//
// Fields:
//   - Addr: bind address for the HTTP endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx).
//   - JWTSecret: HMAC secret for signing session tokens (HS256).
//   - Origin: the single origin allowed by CORS.
//   - Algorithm / EncryptionKey: message-body cipher name and hex key.
//   - VersionID: id of the stored version document served by /api/version.
//   - Environment: "development" or "production"; production turns on
//     Secure cookies.
type Config struct {
	Addr          string
	DatabaseDSN   string
	JWTSecret     string
	Origin        string
	Algorithm     string
	EncryptionKey string
	VersionID     string
	Environment   string
}

// LoadDefaults populates Config with development defaults. Secrets have no
// defaults and must be supplied via environment, JSON file, or flags.
func (c *Config) LoadDefaults() {
	c.Addr = ":3001"
	c.Algorithm = cryptox.AlgorithmAES256GCM
	c.VersionID = "current"
	c.Environment = "development"
}

// Production reports whether the server runs with production hardening.
func (c *Config) Production() bool {
	return c.Environment == "production"
}

// Validate checks that every required setting is present. The process must
// abort at startup when any of them is missing.
func (c *Config) Validate() error {
	var errs []error

	if c.JWTSecret == "" {
		errs = append(errs, errors.New("jwt secret is not defined"))
	}
	if c.DatabaseDSN == "" {
		errs = append(errs, errors.New("database is not defined"))
	}
	if c.Origin == "" {
		errs = append(errs, errors.New("request origin is not defined"))
	}
	if c.Algorithm == "" || c.EncryptionKey == "" {
		errs = append(errs, errors.New("encryption algorithm or key is not defined"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("FATAL: %w", errors.Join(errs...))
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment, an optional JSON file, and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
