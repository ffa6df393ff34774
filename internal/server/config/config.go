// Package config handles configuration for the auth server,
// including defaults, JSON overlay, and command-line flags.
package config

import (
	"os"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/common"
)

// Config holds runtime settings for the auth server. It is loaded once at
// startup and treated as immutable afterwards.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the public gRPC endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects the in-memory user store.
//   - SecretKey: HMAC secret for signing session JWTs (HS256).
//   - Issuer / Audience: written into every session token, not checked on resolve.
//   - SessionTokenValidityDuration: session token lifetime.
//   - AuthHeader / AuthMarker: metadata key carrying "<marker><token>".
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointAddrGRPC             string
	DatabaseDSN                  string
	SecretKey                    string
	Issuer                       string
	Audience                     string
	SessionTokenValidityDuration time.Duration
	AuthHeader                   string
	AuthMarker                   string
	LogLevel                     string
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secret key is insecure and must be overridden in production.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.DatabaseDSN = ""
	c.SecretKey = "secretKey"
	c.Issuer = "authkeeper"
	c.Audience = "authkeeper-clients"
	c.SessionTokenValidityDuration = 60 * time.Minute
	c.AuthHeader = common.DefaultAuthHeader
	c.AuthMarker = common.DefaultAuthMarker
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, os.Args[1:])
	parseFlags(cfg, os.Args[1:])
	return cfg
}
