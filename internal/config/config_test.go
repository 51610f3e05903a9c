package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.API.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.API.BaseURL, DefaultBaseURL)
	}
	if cfg.Cache.TTLMatches != DefaultTTLMatches {
		t.Errorf("TTLMatches = %v, want %v", cfg.Cache.TTLMatches, DefaultTTLMatches)
	}
	if cfg.Live.RefreshMinInterval != DefaultRefreshMinInterval {
		t.Errorf("RefreshMinInterval = %v, want %v", cfg.Live.RefreshMinInterval, DefaultRefreshMinInterval)
	}
	if cfg.Data.Tour != DefaultTour {
		t.Errorf("Tour = %q, want %q", cfg.Data.Tour, DefaultTour)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config fails validation: %v", err)
	}
}

func TestLoadAndValidate(t *testing.T) {
	path := writeConfig(t, `
api:
  base_url: "https://api.snooker.org/"
  requested_by: "TestApp"
  timeout: 10s
cache:
  ttl_matches: 5s
live:
  poll_interval: 30s
data:
  season: 2025
  tour: main
`)

	cfg, err := LoadAndValidate(path)
	if err != nil {
		t.Fatalf("LoadAndValidate failed: %v", err)
	}

	if cfg.API.RequestedBy != "TestApp" {
		t.Errorf("RequestedBy = %q, want %q", cfg.API.RequestedBy, "TestApp")
	}
	if cfg.API.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", cfg.API.Timeout)
	}
	if cfg.Cache.TTLMatches != 5*time.Second {
		t.Errorf("TTLMatches = %v, want 5s", cfg.Cache.TTLMatches)
	}
	if cfg.Data.Season != 2025 {
		t.Errorf("Season = %d, want 2025", cfg.Data.Season)
	}

	// Unspecified fields still pick up defaults.
	if cfg.API.MaxRetries != DefaultMaxRetries {
		t.Errorf("MaxRetries = %d, want default %d", cfg.API.MaxRetries, DefaultMaxRetries)
	}
	if cfg.Cache.CleanupInterval != DefaultCleanupInterval {
		t.Errorf("CleanupInterval = %v, want default %v", cfg.Cache.CleanupInterval, DefaultCleanupInterval)
	}
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("SNOOKER_APP_ID", "EnvApp")

	path := writeConfig(t, `
api:
  requested_by: "${SNOOKER_APP_ID}"
`)

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}
	if cfg.API.RequestedBy != "EnvApp" {
		t.Errorf("RequestedBy = %q, want %q", cfg.API.RequestedBy, "EnvApp")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "api: [not: a: map")
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid yaml")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		wantOK bool
	}{
		{"defaults pass", func(c *Config) {}, true},
		{"bad scheme", func(c *Config) { c.API.BaseURL = "ftp://api.snooker.org/" }, false},
		{"missing requested_by", func(c *Config) { c.API.RequestedBy = "" }, false},
		{"negative retries", func(c *Config) { c.API.MaxRetries = -1 }, false},
		{"matches ttl above rankings", func(c *Config) { c.Cache.TTLMatches = 10 * time.Minute }, false},
		{"zero poll interval", func(c *Config) { c.Live.PollInterval = 0 }, false},
		{"throttle below poll interval", func(c *Config) { c.Live.RefreshMinInterval = time.Second }, false},
		{"zero pre-start window", func(c *Config) { c.Live.PreStartWindow = 0 }, false},
		{"negative season", func(c *Config) { c.Data.Season = -1 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantOK && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.wantOK && err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}
