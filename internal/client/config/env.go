package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from a .env file (if one exists in
// the working directory) and the process environment. A missing .env is
// not an error; explicit environment variables win over the file because
// godotenv never overrides existing ones.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("VAULT_HUB_BASE_URL"); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := os.Getenv("VAULT_HUB_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("VAULT_HUB_DB_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("VAULT_HUB_CALLBACK_ADDR"); v != "" {
		cfg.CallbackAddr = v
	}
	if v := os.Getenv("VAULT_HUB_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("VAULT_HUB_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = b
		}
	}
}
