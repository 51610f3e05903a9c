package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultBaseURL     = "https://api.snooker.org/"
	DefaultRequestedBy = "MaxBreakApp"
	DefaultAPITimeout  = 30 * time.Second
	DefaultMaxRetries  = 3

	DefaultCleanupInterval = 5 * time.Minute
	DefaultTTLEventDetails = 45 * time.Second
	DefaultTTLMatches      = 10 * time.Second
	DefaultTTLRankings     = 5 * time.Minute
	DefaultTTLDefault      = 30 * time.Second

	DefaultPollInterval       = 60 * time.Second
	DefaultPreStartWindow     = 5 * time.Minute
	DefaultRefreshMinInterval = 2 * time.Minute
	DefaultLiveTolerance      = 2 * time.Minute

	DefaultTour = "main"
)

func (c *Config) applyDefaults() {
	// API defaults
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.RequestedBy == "" {
		c.API.RequestedBy = DefaultRequestedBy
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}
	if c.API.MaxRetries == 0 {
		c.API.MaxRetries = DefaultMaxRetries
	}

	// Cache defaults
	if c.Cache.CleanupInterval == 0 {
		c.Cache.CleanupInterval = DefaultCleanupInterval
	}
	if c.Cache.TTLEventDetails == 0 {
		c.Cache.TTLEventDetails = DefaultTTLEventDetails
	}
	if c.Cache.TTLMatches == 0 {
		c.Cache.TTLMatches = DefaultTTLMatches
	}
	if c.Cache.TTLRankings == 0 {
		c.Cache.TTLRankings = DefaultTTLRankings
	}
	if c.Cache.TTLDefault == 0 {
		c.Cache.TTLDefault = DefaultTTLDefault
	}

	// Live detector defaults
	if c.Live.PollInterval == 0 {
		c.Live.PollInterval = DefaultPollInterval
	}
	if c.Live.PreStartWindow == 0 {
		c.Live.PreStartWindow = DefaultPreStartWindow
	}
	if c.Live.RefreshMinInterval == 0 {
		c.Live.RefreshMinInterval = DefaultRefreshMinInterval
	}
	if c.Live.LiveTolerance == 0 {
		c.Live.LiveTolerance = DefaultLiveTolerance
	}

	// Data defaults
	if c.Data.Tour == "" {
		c.Data.Tour = DefaultTour
	}
}
