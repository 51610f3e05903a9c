package cache

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// Config holds cache configuration.
type Config struct {
	CleanupInterval time.Duration // Expired-entry sweep interval (default: 5m)
	TTL             TTLPolicy     // Per-family TTLs
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		CleanupInterval: 5 * time.Minute,
		TTL:             DefaultTTLPolicy(),
	}
}

type entry struct {
	data      any
	timestamp time.Time
	ttl       time.Duration
}

func (e *entry) expired(now time.Time) bool {
	return now.Sub(e.timestamp) > e.ttl
}

// Cache is an in-memory response cache with per-entry TTLs. The zero value
// is not usable; construct with New. Memory-only: nothing survives a
// process restart.
type Cache struct {
	cfg    Config
	logger *slog.Logger

	mu      sync.RWMutex
	entries map[string]*entry

	now func() time.Time

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Option configures a Cache.
type Option func(*Cache)

// WithClock replaces the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) {
		c.logger = logger
	}
}

// New creates a response cache.
func New(cfg Config, opts ...Option) *Cache {
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = DefaultConfig().CleanupInterval
	}
	cfg.TTL.applyDefaults()

	c := &Cache{
		cfg:     cfg,
		logger:  slog.Default(),
		entries: make(map[string]*entry),
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get returns the cached payload for key, or false if absent or expired.
// Expired entries are evicted on the way out.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if e.expired(c.now()) {
		c.mu.Lock()
		// Re-check: a Set may have raced the eviction.
		if cur, ok := c.entries[key]; ok && cur.expired(c.now()) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}

	return e.data, true
}

// Set stores data under key with an explicit TTL, stamped with the current
// time. Overwrites any existing entry.
func (c *Cache) Set(key string, data any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = &entry{
		data:      data,
		timestamp: c.now(),
		ttl:       ttl,
	}
}

// SetForKey stores data with the TTL of the key's endpoint family.
func (c *Cache) SetForKey(key string, data any) {
	c.Set(key, data, c.cfg.TTL.For(key))
}

// Invalidate removes every entry whose key contains pattern as a substring
// and returns the number of entries removed.
func (c *Cache) Invalidate(pattern string) int {
	if pattern == "" {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key := range c.entries {
		if strings.Contains(key, pattern) {
			delete(c.entries, key)
			removed++
		}
	}

	if removed > 0 {
		c.logger.Debug("cache invalidated", "pattern", pattern, "removed", removed)
	}
	return removed
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*entry)
}

// Size returns the number of entries, expired ones included.
func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Start begins the periodic cleanup sweep in the background.
func (c *Cache) Start(ctx context.Context) error {
	c.ctx, c.cancel = context.WithCancel(ctx)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.cleanupLoop(c.ctx)
	}()

	c.logger.Info("cache started", "cleanup_interval", c.cfg.CleanupInterval)
	return nil
}

// Stop cancels the cleanup sweep and waits for it to exit.
func (c *Cache) Stop(ctx context.Context) error {
	if c.cancel != nil {
		c.cancel()
	}

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		c.logger.Info("cache stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Cache) cleanupLoop(ctx context.Context) {
	ticker := time.NewTicker(c.cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.cleanup()
		}
	}
}

// cleanup removes all expired entries. Deleting an expired entry is
// idempotent, so the sweep is safe to run concurrently with Get and Set.
func (c *Cache) cleanup() {
	now := c.now()

	c.mu.Lock()
	removed := 0
	for key, e := range c.entries {
		if e.expired(now) {
			delete(c.entries, key)
			removed++
		}
	}
	remaining := len(c.entries)
	c.mu.Unlock()

	if removed > 0 {
		c.logger.Debug("cache cleanup", "removed", removed, "remaining", remaining)
	}
}
