package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		return fmt.Errorf("api.base_url must be an http(s) URL, got %q", c.API.BaseURL)
	}
	if c.API.RequestedBy == "" {
		return errors.New("api.requested_by is required")
	}
	if c.API.MaxRetries < 0 {
		return errors.New("api.max_retries must be >= 0")
	}

	if c.Cache.TTLMatches > c.Cache.TTLRankings {
		return errors.New("cache.ttl_matches must not exceed cache.ttl_rankings")
	}

	if c.Live.PollInterval <= 0 {
		return errors.New("live.poll_interval must be positive")
	}
	if c.Live.RefreshMinInterval < c.Live.PollInterval {
		return fmt.Errorf("live.refresh_min_interval (%s) must be >= live.poll_interval (%s)",
			c.Live.RefreshMinInterval, c.Live.PollInterval)
	}
	if c.Live.PreStartWindow <= 0 {
		return errors.New("live.pre_start_window must be positive")
	}

	if c.Data.Season < 0 {
		return errors.New("data.season must be >= 0")
	}

	return nil
}
