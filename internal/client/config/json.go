package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/vaulthub/vaulthub-cli/internal/flagx"
	"github.com/vaulthub/vaulthub-cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies
// on timex.Duration so JSON can specify the timeout either as a string
// like "30s" or as integer nanoseconds.
type JsonConfig struct {
	ServerBaseURL  string         `json:"server_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	DatabasePath   string         `json:"database_path"`
	CallbackAddr   string         `json:"callback_addr"`
	APIKey         string         `json:"api_key"`
	Debug          *bool          `json:"debug"`
}

// parseJson overlays Config with values loaded from a JSON file named via
// the -c/-config flags. If no file is named, nothing happens. Read or
// unmarshal errors panic; configuration is a boot-time concern.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.CallbackAddr != "" {
		cfg.CallbackAddr = jc.CallbackAddr
	}
	if jc.APIKey != "" {
		cfg.APIKey = jc.APIKey
	}
	if jc.Debug != nil {
		cfg.Debug = *jc.Debug
	}
}
