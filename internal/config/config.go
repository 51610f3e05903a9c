package config

import "time"

// Config is the root configuration for the scoreboard client core.
type Config struct {
	API   APIConfig   `yaml:"api"`
	Cache CacheConfig `yaml:"cache"`
	Live  LiveConfig  `yaml:"live"`
	Data  DataConfig  `yaml:"data"`
}

// APIConfig holds snooker.org API settings.
type APIConfig struct {
	BaseURL     string        `yaml:"base_url"`
	RequestedBy string        `yaml:"requested_by"` // X-Requested-By application id
	Timeout     time.Duration `yaml:"timeout"`
	MaxRetries  int           `yaml:"max_retries"`
}

// CacheConfig holds response cache settings.
type CacheConfig struct {
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
	TTLEventDetails time.Duration `yaml:"ttl_event_details"`
	TTLMatches      time.Duration `yaml:"ttl_matches"`
	TTLRankings     time.Duration `yaml:"ttl_rankings"`
	TTLDefault      time.Duration `yaml:"ttl_default"`
}

// LiveConfig holds live detector settings.
type LiveConfig struct {
	PollInterval       time.Duration `yaml:"poll_interval"`
	PreStartWindow     time.Duration `yaml:"pre_start_window"`
	RefreshMinInterval time.Duration `yaml:"refresh_min_interval"`
	LiveTolerance      time.Duration `yaml:"live_tolerance"`
}

// DataConfig selects what to load.
type DataConfig struct {
	Season int    `yaml:"season"` // 0 = discover via the API
	Tour   string `yaml:"tour"`
}
