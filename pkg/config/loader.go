package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Load loads configuration from a layered set of sources.
//
// The loading order is:
//  1. Built-in defaults
//  2. YAML config file (explicit path, WEICHE_CONFIG env, ./weiche.yaml, /etc/weiche/config.yaml)
//  3. Environment variable overrides
//  4. File reference resolution (_file suffix)
//  5. Validation
func Load(configPath string) (*Config, error) {
	// Start with defaults.
	cfg := Defaults()

	// Discover and load YAML config file.
	filePath := discoverConfigFile(configPath)
	if filePath != "" {
		if err := loadYAMLFile(filePath, &cfg); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", filePath, err)
		}
	}

	// Apply environment variable overrides.
	applyEnvOverrides(&cfg)

	// Resolve _file references.
	if err := resolveFileReferences(&cfg); err != nil {
		return nil, fmt.Errorf("resolving file references: %w", err)
	}

	// Validate.
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &cfg, nil
}

// discoverConfigFile finds the config file path using the discovery order:
// 1. Explicit configPath argument
// 2. WEICHE_CONFIG environment variable
// 3. ./weiche.yaml in the current directory
// 4. /etc/weiche/config.yaml
//
// Returns empty string if no config file is found.
func discoverConfigFile(configPath string) string {
	// Explicit path takes priority.
	if configPath != "" {
		return configPath
	}

	// Check WEICHE_CONFIG env var.
	if envPath := os.Getenv("WEICHE_CONFIG"); envPath != "" {
		return envPath
	}

	// Check common locations.
	candidates := []string{
		"weiche.yaml",
		"/etc/weiche/config.yaml",
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// loadYAMLFile reads and parses a YAML file into the Config struct.
// Fields not present in the YAML retain their current (default) values.
func loadYAMLFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// applyEnvOverrides maps environment variables to config fields.
//
// WEICHE_TIMEOUT sets the shared client timeout. Per-provider overrides
// follow the pattern WEICHE_<PROVIDER>_BASE_URL and WEICHE_<PROVIDER>_API_KEY;
// provider entries referenced only by environment are created on the fly.
// (The vendor's own credential variable, e.g. NVIDIA_API_KEY, is consulted
// by the credential resolver at call time, not here.)
func applyEnvOverrides(cfg *Config) {
	// An empty "providers:" key in the YAML decodes as null and replaces
	// the default map.
	if cfg.Providers == nil {
		cfg.Providers = make(map[string]ProviderConfig)
	}

	if v := os.Getenv("WEICHE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Client.Timeout = d
		}
	}
	if v := os.Getenv("WEICHE_DEBUG"); v != "" {
		cfg.Debug.Categories = v
	}
	if v := os.Getenv("WEICHE_LOG_LEVEL"); v != "" {
		cfg.Debug.LogLevel = v
	}

	for _, kv := range os.Environ() {
		key, val, ok := strings.Cut(kv, "=")
		if !ok || val == "" || !strings.HasPrefix(key, "WEICHE_") {
			continue
		}
		switch {
		case strings.HasSuffix(key, "_BASE_URL"):
			name := providerFromEnvKey(key, "_BASE_URL")
			if name == "" {
				continue
			}
			p := cfg.Providers[name]
			p.BaseURL = val
			cfg.Providers[name] = p

		case strings.HasSuffix(key, "_API_KEY"):
			name := providerFromEnvKey(key, "_API_KEY")
			if name == "" {
				continue
			}
			p := cfg.Providers[name]
			p.APIKey = val
			cfg.Providers[name] = p
		}
	}
}

// providerFromEnvKey extracts the lowercase provider name from an env var
// like WEICHE_NVIDIA_BASE_URL.
func providerFromEnvKey(key, suffix string) string {
	name := strings.TrimSuffix(strings.TrimPrefix(key, "WEICHE_"), suffix)
	return strings.ToLower(name)
}

// resolveFileReferences reads _file fields and populates the corresponding
// value fields. The file's content is read with surrounding whitespace
// trimmed; an already-populated value field wins over its _file variant.
func resolveFileReferences(cfg *Config) error {
	for name, p := range cfg.Providers {
		if p.APIKeyFile != "" && p.APIKey == "" {
			val, err := readSecretFile(p.APIKeyFile)
			if err != nil {
				return fmt.Errorf("providers.%s.api_key_file: %w", name, err)
			}
			p.APIKey = val
			cfg.Providers[name] = p
		}
	}
	return nil
}

// readSecretFile reads a file and returns its content with surrounding whitespace trimmed.
func readSecretFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
