package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate checks the configuration for valid values. Returns an error with
// a descriptive field path on failure.
func (c *Config) Validate() error {
	var errs []error

	// client.timeout must not be negative.
	if c.Client.Timeout < 0 {
		errs = append(errs, fmt.Errorf("client.timeout must be >= 0, got %s", c.Client.Timeout))
	}

	for name, p := range c.Providers {
		if name == "" {
			errs = append(errs, fmt.Errorf("providers: provider name must not be empty"))
			continue
		}
		if p.BaseURL != "" {
			u, err := url.Parse(p.BaseURL)
			if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
				errs = append(errs, fmt.Errorf("providers.%s.base_url must be an http(s) URL, got %q", name, p.BaseURL))
			}
		}
		if p.Timeout < 0 {
			errs = append(errs, fmt.Errorf("providers.%s.timeout must be >= 0, got %s", name, p.Timeout))
		}
	}

	return errors.Join(errs...)
}
