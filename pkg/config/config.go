// Package config provides unified configuration for the weiche translation core.
//
// Configuration is loaded with a layered approach:
//  1. Built-in defaults
//  2. YAML config file (discovered or explicitly specified)
//  3. Environment variable overrides (WEICHE_ prefix)
//  4. File reference resolution (_file suffix fields)
//  5. Validation
//
// Provider API keys are deliberately NOT required here: the per-call
// credential resolver consults the vendor environment variable (e.g.
// NVIDIA_API_KEY) when neither an explicit key nor a configured key exists.
package config

import "time"

// Config holds all configuration for the weiche router.
type Config struct {
	Client    ClientConfig              `yaml:"client"`
	Providers map[string]ProviderConfig `yaml:"providers"`
	Debug     DebugConfig               `yaml:"debug"`
}

// ClientConfig holds settings shared by all provider adapters.
type ClientConfig struct {
	// Timeout bounds each outbound HTTP request. Default: 120s.
	Timeout time.Duration `yaml:"timeout"`
}

// ProviderConfig holds per-provider overrides, keyed by provider name.
type ProviderConfig struct {
	BaseURL    string        `yaml:"base_url"`     // override the registry default
	APIKey     string        `yaml:"api_key"`      // default credential (optional)
	APIKeyFile string        `yaml:"api_key_file"` // _file variant for api_key
	Timeout    time.Duration `yaml:"timeout"`      // override client.timeout
}

// DebugConfig holds logging settings, overridable via WEICHE_DEBUG and
// WEICHE_LOG_LEVEL.
type DebugConfig struct {
	Categories string `yaml:"categories"` // e.g. "providers,router"
	LogLevel   string `yaml:"log_level"`  // ERROR, WARN, INFO, DEBUG, TRACE
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Client: ClientConfig{
			Timeout: 120 * time.Second,
		},
		Providers: make(map[string]ProviderConfig),
	}
}
