package orchestrator

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/maxbreak/snooker-data/internal/api"
	"github.com/maxbreak/snooker-data/internal/cache"
	"github.com/maxbreak/snooker-data/internal/config"
	"github.com/maxbreak/snooker-data/internal/live"
	"github.com/maxbreak/snooker-data/internal/model"
	"github.com/maxbreak/snooker-data/internal/reconcile"
)

// refreshTimeout bounds the background refetch a detector signal triggers.
const refreshTimeout = 30 * time.Second

// Orchestrator is the data orchestrator: the single owner of the cache and
// the detector, and the component the presentation layer reads from.
type Orchestrator struct {
	client   *api.Client
	cache    *cache.Cache
	detector *live.Detector
	logger   *slog.Logger

	season int
	tour   string

	// Collapses concurrent fetches of the same cache key into one request.
	sf singleflight.Group

	mu             sync.RWMutex
	currentEventID int64
	renderList     []model.RenderItem
	tournament     *model.Tournament
	players        map[int64]model.Player
	playersSeason  int

	// Optional host callbacks. OnUpdate runs after every successful load or
	// refresh with the new render list; OnStartingSoon forwards the
	// detector's alert. Both may be nil.
	OnUpdate       func([]model.RenderItem)
	OnStartingSoon func(m model.Match, minutesUntilStart int)
}

// New creates an orchestrator and its detector. The caller keeps ownership
// of the cache and client so tests can substitute clocks and transports.
func New(cfg *config.Config, client *api.Client, c *cache.Cache, logger *slog.Logger, detectorOpts ...live.Option) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}

	o := &Orchestrator{
		client: client,
		cache:  c,
		logger: logger,
		season: cfg.Data.Season,
		tour:   cfg.Data.Tour,
	}

	liveCfg := live.Config{
		PollInterval:       cfg.Live.PollInterval,
		PreStartWindow:     cfg.Live.PreStartWindow,
		RefreshMinInterval: cfg.Live.RefreshMinInterval,
		LiveTolerance:      cfg.Live.LiveTolerance,
	}
	opts := append([]live.Option{live.WithLogger(logger)}, detectorOpts...)
	o.detector = live.New(liveCfg, o, opts...)

	return o
}

// Detector exposes the live detector for lifecycle and display queries
// (IsMonitoring, NextMatch, Foreground/Background).
func (o *Orchestrator) Detector() *live.Detector {
	return o.detector
}

// Start starts the cache sweep and the detector loop.
func (o *Orchestrator) Start(ctx context.Context) error {
	if err := o.cache.Start(ctx); err != nil {
		return err
	}
	return o.detector.Start(ctx)
}

// Stop stops the detector and the cache sweep.
func (o *Orchestrator) Stop(ctx context.Context) error {
	if err := o.detector.Stop(ctx); err != nil {
		return err
	}
	return o.cache.Stop(ctx)
}

// RenderList returns the current render list. The slice is shared and
// read-only by contract.
func (o *Orchestrator) RenderList() []model.RenderItem {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.renderList
}

// Tournament returns the current tournament detail, if loaded.
func (o *Orchestrator) Tournament() (model.Tournament, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if o.tournament == nil {
		return model.Tournament{}, false
	}
	return *o.tournament, true
}

// Season resolves the active season, discovering it from the API on first
// use when the config leaves it unset.
func (o *Orchestrator) Season(ctx context.Context) (int, error) {
	o.mu.RLock()
	season := o.season
	o.mu.RUnlock()
	if season != 0 {
		return season, nil
	}

	discovered, err := o.client.GetCurrentSeason(ctx)
	if err != nil {
		return 0, err
	}

	o.mu.Lock()
	o.season = discovered
	o.mu.Unlock()
	o.logger.Info("discovered current season", "season", discovered)
	return discovered, nil
}

// LoadTournament fetches an event's detail and matches (cache-first),
// reconciles the matches into a render list, and hands the match set to the
// live detector. Zero matches is a valid outcome and produces an empty
// list, not an error.
func (o *Orchestrator) LoadTournament(ctx context.Context, eventID int64) ([]model.RenderItem, error) {
	var (
		tournament *model.Tournament
		matches    []model.Match
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := o.fetchEventDetails(gctx, eventID)
		if err != nil {
			return err
		}
		tournament = t
		return nil
	})
	g.Go(func() error {
		m, err := o.fetchEventMatches(gctx, eventID)
		if err != nil {
			return err
		}
		matches = m
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Annotate a private copy. The cached list is final at store time and
	// shared with other readers; it is never written after the fetch.
	matches = slices.Clone(matches)

	// Best effort: missing names degrade the display, not the data flow.
	if err := o.annotateNames(ctx, matches); err != nil {
		o.logger.Warn("player name annotation failed", "error", err)
	}

	list := reconcile.Build(matches)

	o.mu.Lock()
	o.currentEventID = eventID
	o.tournament = tournament
	o.renderList = list
	o.mu.Unlock()

	o.detector.SetMatches(eventID, matches)

	o.logger.Info("tournament loaded",
		"event_id", eventID,
		"matches", len(matches),
		"render_items", len(list),
	)

	if o.OnUpdate != nil {
		o.OnUpdate(list)
	}
	return list, nil
}

// LoadMatchDetail fetches a single match record. The detail write path is
// authoritative: it stores the record under its own key and drops the
// event's cached list rather than patching it.
func (o *Orchestrator) LoadMatchDetail(ctx context.Context, m model.Match) (model.Match, error) {
	key := cache.MatchKey(m.EventID, m.ID)
	if cached, ok := o.cache.Get(key); ok {
		return cached.(model.Match), nil
	}

	v, err, _ := o.sf.Do(key, func() (any, error) {
		raw, err := o.client.GetMatch(ctx, m.EventID, m.Round, m.Number)
		if err != nil {
			return model.Match{}, err
		}
		detail := raw.ToModel()
		o.cache.StoreMatchDetail(detail.EventID, detail.ID, detail)
		return detail, nil
	})
	if err != nil {
		return model.Match{}, err
	}
	return v.(model.Match), nil
}

// LoadRankings fetches a ranking list for the active season, name-annotated
// and cached with the long rankings TTL.
func (o *Orchestrator) LoadRankings(ctx context.Context, rankingType string) ([]model.RankingEntry, error) {
	season, err := o.Season(ctx)
	if err != nil {
		return nil, err
	}

	key := cache.RankingsKey(season, rankingType)
	if cached, ok := o.cache.Get(key); ok {
		return cached.([]model.RankingEntry), nil
	}

	v, err, _ := o.sf.Do(key, func() (any, error) {
		raw, err := o.client.GetRankings(ctx, season, rankingType)
		if err != nil {
			return nil, err
		}

		entries := make([]model.RankingEntry, 0, len(raw))
		for i := range raw {
			entries = append(entries, raw[i].ToModel())
		}

		if dir, err := o.playerDirectory(ctx, season); err == nil {
			for i := range entries {
				if p, ok := dir[entries[i].PlayerID]; ok {
					entries[i].PlayerName = p.DisplayName()
				}
			}
		}

		o.cache.SetForKey(key, entries)
		return entries, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]model.RankingEntry), nil
}

// ForceRefresh drops every cache entry for an event and reloads it. This is
// the pull-to-refresh and returning-from-detail path.
func (o *Orchestrator) ForceRefresh(ctx context.Context, eventID int64) ([]model.RenderItem, error) {
	removed := o.cache.Invalidate(cache.EventPattern(eventID))
	o.logger.Debug("force refresh", "event_id", eventID, "invalidated", removed)
	return o.LoadTournament(ctx, eventID)
}

// InvalidateMatch drops every cache entry referencing a match, for UI
// actions that know a match's scoreboard changed.
func (o *Orchestrator) InvalidateMatch(matchID int64) {
	o.cache.Invalidate(cache.MatchPattern(matchID))
}

// HandleLiveDetected implements live.SignalHandler: a live match means the
// visible data may be stale, so refetch the current event. Failure keeps
// the previous render list.
func (o *Orchestrator) HandleLiveDetected() {
	o.mu.RLock()
	eventID := o.currentEventID
	o.mu.RUnlock()
	if eventID == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	if _, err := o.ForceRefresh(ctx, eventID); err != nil {
		o.logger.Warn("live refresh failed, keeping previous data",
			"event_id", eventID,
			"error", err,
		)
	}
}

// HandleStartingSoon implements live.SignalHandler.
func (o *Orchestrator) HandleStartingSoon(m model.Match, minutesUntilStart int) {
	if o.OnStartingSoon != nil {
		o.OnStartingSoon(m, minutesUntilStart)
	}
}
