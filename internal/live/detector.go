package live

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/maxbreak/snooker-data/internal/model"
)

// Config holds detector configuration.
type Config struct {
	PollInterval       time.Duration // Evaluation interval (default: 60s)
	PreStartWindow     time.Duration // Starting-soon alert window (default: 5m)
	RefreshMinInterval time.Duration // Minimum gap between refresh signals (default: 2m)
	LiveTolerance      time.Duration // Grace past the scheduled slot that still counts as live (default: 2m)
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		PollInterval:       60 * time.Second,
		PreStartWindow:     5 * time.Minute,
		RefreshMinInterval: 2 * time.Minute,
		LiveTolerance:      2 * time.Minute,
	}
}

func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.PollInterval <= 0 {
		c.PollInterval = def.PollInterval
	}
	if c.PreStartWindow <= 0 {
		c.PreStartWindow = def.PreStartWindow
	}
	if c.RefreshMinInterval <= 0 {
		c.RefreshMinInterval = def.RefreshMinInterval
	}
	if c.LiveTolerance <= 0 {
		c.LiveTolerance = def.LiveTolerance
	}
}

// SignalHandler receives detector signals. Both signals for one tick are
// computed before either is delivered.
type SignalHandler interface {
	// HandleLiveDetected fires, throttled, when any match in the set is in play.
	HandleLiveDetected()
	// HandleStartingSoon fires exactly once per match per collection
	// generation, shortly before its scheduled start.
	HandleStartingSoon(m model.Match, minutesUntilStart int)
}

// HandlerFuncs is a function adapter for SignalHandler. Nil fields no-op.
type HandlerFuncs struct {
	LiveDetected func()
	StartingSoon func(m model.Match, minutesUntilStart int)
}

func (h HandlerFuncs) HandleLiveDetected() {
	if h.LiveDetected != nil {
		h.LiveDetected()
	}
}

func (h HandlerFuncs) HandleStartingSoon(m model.Match, minutesUntilStart int) {
	if h.StartingSoon != nil {
		h.StartingSoon(m, minutesUntilStart)
	}
}

// NextMatchInfo describes the closest upcoming match inside the alert
// window, for display.
type NextMatchInfo struct {
	Match             model.Match
	MinutesUntilStart int
}

// Detector is the stateful live-match poller.
type Detector struct {
	cfg     Config
	handler SignalHandler
	logger  *slog.Logger

	mu         sync.Mutex
	eventID    int64
	matches    []model.Match
	notified   map[int64]bool
	generation uuid.UUID
	monitoring bool
	foreground bool
	next       *NextMatchInfo

	// Throttle state lives here, not in the tick loop, so it survives the
	// host view re-rendering and timer restarts.
	limiter *rate.Limiter

	now func() time.Time

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Option configures a Detector.
type Option func(*Detector)

// WithClock replaces the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(d *Detector) {
		d.now = now
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Detector) {
		d.logger = logger
	}
}

// New creates a detector. handler may be nil, in which case signals are
// computed but dropped.
func New(cfg Config, handler SignalHandler, opts ...Option) *Detector {
	cfg.applyDefaults()
	if handler == nil {
		handler = HandlerFuncs{}
	}

	d := &Detector{
		cfg:        cfg,
		handler:    handler,
		logger:     slog.Default(),
		notified:   make(map[int64]bool),
		foreground: true,
		limiter:    rate.NewLimiter(rate.Every(cfg.RefreshMinInterval), 1),
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Start begins the polling loop.
func (d *Detector) Start(ctx context.Context) error {
	d.ctx, d.cancel = context.WithCancel(ctx)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.run(d.ctx)
	}()

	d.logger.Info("live detector started",
		"poll_interval", d.cfg.PollInterval,
		"pre_start_window", d.cfg.PreStartWindow,
		"refresh_min_interval", d.cfg.RefreshMinInterval,
	)

	return nil
}

// Stop cancels the pending timer and waits for the loop to exit. No
// in-flight tick needs cleanup; ticks hold no external resources.
func (d *Detector) Stop(ctx context.Context) error {
	if d.cancel != nil {
		d.cancel()
	}

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.logger.Info("live detector stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Detector) run(ctx context.Context) {
	ticker := time.NewTicker(d.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.tick()
		}
	}
}

// SetMatches replaces the watched match collection. A different event id is
// a new generation: the notified set resets so the same match can alert
// again in the new context. An empty collection drops the detector to idle.
func (d *Detector) SetMatches(eventID int64, matches []model.Match) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if eventID != d.eventID {
		d.eventID = eventID
		d.notified = make(map[int64]bool)
		d.generation = uuid.New()
		d.next = nil
		d.logger.Debug("match collection replaced",
			"event_id", eventID,
			"generation", d.generation,
			"matches", len(matches),
		)
	}

	d.matches = matches
	d.updateMonitoringLocked()
}

// Foreground resumes detection when the host application returns to the
// foreground.
func (d *Detector) Foreground() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.foreground = true
	d.updateMonitoringLocked()
}

// Background pauses detection while the host application is backgrounded.
func (d *Detector) Background() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.foreground = false
	d.updateMonitoringLocked()
}

func (d *Detector) updateMonitoringLocked() {
	was := d.monitoring
	d.monitoring = d.foreground && len(d.matches) > 0
	if was != d.monitoring {
		d.logger.Debug("monitoring state changed", "monitoring", d.monitoring, "event_id", d.eventID)
	}
}

// IsMonitoring reports whether the detector is actively evaluating ticks.
func (d *Detector) IsMonitoring() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.monitoring
}

// NextMatch returns the closest upcoming match inside the alert window as
// of the last tick, if any.
func (d *Detector) NextMatch() (NextMatchInfo, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.next == nil {
		return NextMatchInfo{}, false
	}
	return *d.next, true
}

type soonSignal struct {
	match   model.Match
	minutes int
}

// tick evaluates the current match set once. All signals are computed
// before any handler runs, so a consumer never observes a partial tick.
func (d *Detector) tick() {
	d.mu.Lock()

	if !d.monitoring {
		d.mu.Unlock()
		return
	}

	now := d.now()
	toleranceMin := int(d.cfg.LiveTolerance / time.Minute)
	windowMin := int(d.cfg.PreStartWindow / time.Minute)

	liveFound := false
	var soon []soonSignal
	var next *NextMatchInfo

	for _, m := range d.matches {
		switch m.StatusCode {
		case model.StatusLive, model.StatusOnBreak:
			liveFound = true

		case model.StatusScheduled:
			if m.ScheduledAt == 0 {
				continue
			}
			until := time.UnixMicro(m.ScheduledAt).Sub(now)
			minutes := int(math.Round(until.Minutes()))

			if minutes > 0 && minutes <= windowMin && !d.notified[m.ID] {
				d.notified[m.ID] = true
				soon = append(soon, soonSignal{match: m, minutes: minutes})
			}

			// Scheduling drift tolerance: shortly past the slot the match
			// is treated as live even before the feed flips its status.
			if minutes >= -toleranceMin && minutes <= 0 {
				liveFound = true
			}

			if minutes >= 0 && minutes <= windowMin && (next == nil || minutes < next.MinutesUntilStart) {
				next = &NextMatchInfo{Match: m, MinutesUntilStart: minutes}
			}
		}
	}

	d.next = next

	refresh := false
	if liveFound {
		refresh = d.limiter.AllowN(now, 1)
	}

	generation := d.generation
	eventID := d.eventID
	handler := d.handler
	d.mu.Unlock()

	for _, s := range soon {
		d.logger.Info("match starting soon",
			"match_id", s.match.ID,
			"minutes", s.minutes,
			"generation", generation,
		)
		handler.HandleStartingSoon(s.match, s.minutes)
	}

	if refresh {
		d.logger.Debug("live match detected, requesting refresh", "event_id", eventID)
		handler.HandleLiveDetected()
	}
}
