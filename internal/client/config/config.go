// Package config loads runtime settings for the VaultHub client.
//
// Sources, later ones winning: built-in defaults, a .env file and the
// process environment, a JSON config file (-c/-config), command-line
// flags.
package config

import "time"

// Config holds runtime settings for the VaultHub client.
//
// Fields:
//   - ServerBaseURL: base URL of the VaultHub API server.
//   - RequestTimeout: per-request HTTP timeout.
//   - DatabasePath: SQLite file holding durable client state (the token).
//   - CallbackAddr: listen address for the OIDC/magic-link callback capture.
//   - APIKey: optional API key for the CLI vault surface.
//   - Debug: verbose logging.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	DatabasePath   string
	CallbackAddr   string
	APIKey         string
	Debug          bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:3000"
	c.RequestTimeout = 30 * time.Second
	c.DatabasePath = "vaulthub.db"
	c.CallbackAddr = "127.0.0.1:53682"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, JSON (if present), and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
