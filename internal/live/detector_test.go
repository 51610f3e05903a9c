package live

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/maxbreak/snooker-data/internal/model"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type recordingHandler struct {
	refreshes atomic.Int32
	soon      []struct {
		matchID int64
		minutes int
	}
}

func (h *recordingHandler) HandleLiveDetected() {
	h.refreshes.Add(1)
}

func (h *recordingHandler) HandleStartingSoon(m model.Match, minutes int) {
	h.soon = append(h.soon, struct {
		matchID int64
		minutes int
	}{m.ID, minutes})
}

func newTestDetector(clock *fakeClock, handler SignalHandler) *Detector {
	return New(DefaultConfig(), handler, WithClock(clock.Now))
}

func TestDetector_RefreshThrottle(t *testing.T) {
	clock := newFakeClock()
	handler := &recordingHandler{}
	d := newTestDetector(clock, handler)

	d.SetMatches(1, []model.Match{
		{ID: 10, StatusCode: model.StatusLive},
	})

	// Ten ticks 10 seconds apart, all seeing a live match: the 2-minute
	// throttle lets exactly one refresh through.
	for i := 0; i < 10; i++ {
		d.tick()
		clock.Advance(10 * time.Second)
	}

	if got := handler.refreshes.Load(); got != 1 {
		t.Errorf("refreshes = %d, want 1", got)
	}
}

func TestDetector_RefreshAfterThrottleWindow(t *testing.T) {
	clock := newFakeClock()
	handler := &recordingHandler{}
	d := newTestDetector(clock, handler)

	d.SetMatches(1, []model.Match{
		{ID: 10, StatusCode: model.StatusOnBreak},
	})

	d.tick()
	clock.Advance(2*time.Minute + time.Second)
	d.tick()

	if got := handler.refreshes.Load(); got != 2 {
		t.Errorf("refreshes = %d, want 2 after the throttle window elapsed", got)
	}
}

func TestDetector_StartingSoonFiresOnce(t *testing.T) {
	clock := newFakeClock()
	handler := &recordingHandler{}
	d := newTestDetector(clock, handler)

	// Scheduled 4 minutes out with a 5-minute window: one alert across ten
	// 30-second ticks, not one per tick.
	d.SetMatches(1, []model.Match{
		{ID: 10, StatusCode: model.StatusScheduled, ScheduledAt: clock.Now().Add(4 * time.Minute).UnixMicro()},
	})

	for i := 0; i < 10; i++ {
		d.tick()
		clock.Advance(30 * time.Second)
	}

	if len(handler.soon) != 1 {
		t.Fatalf("starting-soon signals = %d, want 1", len(handler.soon))
	}
	if handler.soon[0].minutes != 4 {
		t.Errorf("minutes = %d, want 4", handler.soon[0].minutes)
	}
	if handler.soon[0].matchID != 10 {
		t.Errorf("matchID = %d, want 10", handler.soon[0].matchID)
	}
}

func TestDetector_StartingSoonOutsideWindow(t *testing.T) {
	clock := newFakeClock()
	handler := &recordingHandler{}
	d := newTestDetector(clock, handler)

	d.SetMatches(1, []model.Match{
		{ID: 10, StatusCode: model.StatusScheduled, ScheduledAt: clock.Now().Add(30 * time.Minute).UnixMicro()},
	})

	d.tick()

	if len(handler.soon) != 0 {
		t.Errorf("starting-soon fired %d times for a match 30 minutes out", len(handler.soon))
	}
	if _, ok := d.NextMatch(); ok {
		t.Error("NextMatch set for a match outside the window")
	}
}

func TestDetector_NotifiedResetsOnNewGeneration(t *testing.T) {
	clock := newFakeClock()
	handler := &recordingHandler{}
	d := newTestDetector(clock, handler)

	match := model.Match{ID: 10, StatusCode: model.StatusScheduled, ScheduledAt: clock.Now().Add(3 * time.Minute).UnixMicro()}

	d.SetMatches(1, []model.Match{match})
	d.tick()

	// Same event: re-setting the collection must not re-alert.
	d.SetMatches(1, []model.Match{match})
	d.tick()

	if len(handler.soon) != 1 {
		t.Fatalf("starting-soon signals = %d after same-event reload, want 1", len(handler.soon))
	}

	// Different event: new generation, same match id alerts again.
	d.SetMatches(2, []model.Match{match})
	d.tick()

	if len(handler.soon) != 2 {
		t.Errorf("starting-soon signals = %d after new generation, want 2", len(handler.soon))
	}
}

func TestDetector_DriftToleranceCountsAsLive(t *testing.T) {
	clock := newFakeClock()
	handler := &recordingHandler{}
	d := newTestDetector(clock, handler)

	// Scheduled slot one minute in the past, status still scheduled: the
	// feed is slow to flip, treat it as live.
	d.SetMatches(1, []model.Match{
		{ID: 10, StatusCode: model.StatusScheduled, ScheduledAt: clock.Now().Add(-time.Minute).UnixMicro()},
	})

	d.tick()

	if got := handler.refreshes.Load(); got != 1 {
		t.Errorf("refreshes = %d, want 1 within the drift tolerance", got)
	}
}

func TestDetector_PastToleranceIsNotLive(t *testing.T) {
	clock := newFakeClock()
	handler := &recordingHandler{}
	d := newTestDetector(clock, handler)

	d.SetMatches(1, []model.Match{
		{ID: 10, StatusCode: model.StatusScheduled, ScheduledAt: clock.Now().Add(-30 * time.Minute).UnixMicro()},
	})

	d.tick()

	if got := handler.refreshes.Load(); got != 0 {
		t.Errorf("refreshes = %d for a long-overdue match, want 0", got)
	}
}

func TestDetector_NextMatchTracksClosest(t *testing.T) {
	clock := newFakeClock()
	d := newTestDetector(clock, nil)

	d.SetMatches(1, []model.Match{
		{ID: 10, StatusCode: model.StatusScheduled, ScheduledAt: clock.Now().Add(4 * time.Minute).UnixMicro()},
		{ID: 11, StatusCode: model.StatusScheduled, ScheduledAt: clock.Now().Add(2 * time.Minute).UnixMicro()},
		{ID: 12, StatusCode: model.StatusScheduled, ScheduledAt: clock.Now().Add(20 * time.Minute).UnixMicro()},
	})

	d.tick()

	next, ok := d.NextMatch()
	if !ok {
		t.Fatal("NextMatch not set")
	}
	if next.Match.ID != 11 {
		t.Errorf("next match = %d, want 11", next.Match.ID)
	}
	if next.MinutesUntilStart != 2 {
		t.Errorf("minutes = %d, want 2", next.MinutesUntilStart)
	}
}

func TestDetector_MonitoringTransitions(t *testing.T) {
	clock := newFakeClock()
	d := newTestDetector(clock, nil)

	if d.IsMonitoring() {
		t.Error("monitoring before any matches arrived")
	}

	d.SetMatches(1, []model.Match{{ID: 10, StatusCode: model.StatusLive}})
	if !d.IsMonitoring() {
		t.Error("not monitoring with a non-empty collection")
	}

	d.Background()
	if d.IsMonitoring() {
		t.Error("still monitoring after backgrounding")
	}

	d.Foreground()
	if !d.IsMonitoring() {
		t.Error("not monitoring after returning to foreground")
	}

	d.SetMatches(1, nil)
	if d.IsMonitoring() {
		t.Error("still monitoring with an empty collection")
	}
}

func TestDetector_IdleTickEmitsNothing(t *testing.T) {
	clock := newFakeClock()
	handler := &recordingHandler{}
	d := newTestDetector(clock, handler)

	d.SetMatches(1, []model.Match{{ID: 10, StatusCode: model.StatusLive}})
	d.Background()

	d.tick()

	if got := handler.refreshes.Load(); got != 0 {
		t.Errorf("refreshes = %d while idle, want 0", got)
	}
}

func TestDetector_StartStop(t *testing.T) {
	clock := newFakeClock()
	handler := &recordingHandler{}

	cfg := DefaultConfig()
	cfg.PollInterval = 10 * time.Millisecond
	d := New(cfg, handler, WithClock(clock.Now))

	d.SetMatches(1, []model.Match{{ID: 10, StatusCode: model.StatusLive}})

	ctx := context.Background()
	if err := d.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	time.Sleep(50 * time.Millisecond)

	stopCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	if err := d.Stop(stopCtx); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}

	if got := handler.refreshes.Load(); got != 1 {
		t.Errorf("refreshes = %d, want exactly 1 (throttled) while running", got)
	}
}
