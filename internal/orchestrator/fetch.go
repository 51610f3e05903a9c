package orchestrator

import (
	"context"

	"github.com/maxbreak/snooker-data/internal/api"
	"github.com/maxbreak/snooker-data/internal/cache"
	"github.com/maxbreak/snooker-data/internal/model"
)

// fetchEventDetails returns the event's detail record, cache-first.
func (o *Orchestrator) fetchEventDetails(ctx context.Context, eventID int64) (*model.Tournament, error) {
	key := cache.EventDetailsKey(eventID)
	if cached, ok := o.cache.Get(key); ok {
		t := cached.(model.Tournament)
		return &t, nil
	}

	v, err, _ := o.sf.Do(key, func() (any, error) {
		raw, err := o.client.GetEventDetails(ctx, eventID)
		if err != nil {
			return nil, err
		}
		t := raw.ToModel()
		o.cache.SetForKey(key, t)
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	t := v.(model.Tournament)
	return &t, nil
}

// fetchEventMatches returns the event's match list, cache-first. The short
// match TTL keeps this fresh during live play without hammering the API.
func (o *Orchestrator) fetchEventMatches(ctx context.Context, eventID int64) ([]model.Match, error) {
	key := cache.EventMatchesKey(eventID)
	if cached, ok := o.cache.Get(key); ok {
		return cached.([]model.Match), nil
	}

	v, err, _ := o.sf.Do(key, func() (any, error) {
		raw, err := o.client.GetEventMatches(ctx, eventID)
		if err != nil {
			return nil, err
		}

		matches := make([]model.Match, 0, len(raw))
		for i := range raw {
			matches = append(matches, raw[i].ToModel())
		}

		o.cache.SetForKey(key, matches)
		return matches, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]model.Match), nil
}

// ListSeasonEvents returns the active season's events, cache-first, for
// tournament pickers.
func (o *Orchestrator) ListSeasonEvents(ctx context.Context) ([]model.Tournament, error) {
	season, err := o.Season(ctx)
	if err != nil {
		return nil, err
	}

	key := cache.SeasonEventsKey(season, o.tour)
	if cached, ok := o.cache.Get(key); ok {
		return cached.([]model.Tournament), nil
	}

	v, err, _ := o.sf.Do(key, func() (any, error) {
		raw, err := o.client.GetSeasonEvents(ctx, season, o.tour)
		if err != nil {
			return nil, err
		}

		events := make([]model.Tournament, 0, len(raw))
		for i := range raw {
			events = append(events, raw[i].ToModel())
		}

		o.cache.SetForKey(key, events)
		return events, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]model.Tournament), nil
}

// playerDirectory returns the season's players keyed by id, fetched once
// per rankings TTL and memoized on the orchestrator.
func (o *Orchestrator) playerDirectory(ctx context.Context, season int) (map[int64]model.Player, error) {
	o.mu.RLock()
	if o.players != nil && o.playersSeason == season {
		dir := o.players
		o.mu.RUnlock()
		return dir, nil
	}
	o.mu.RUnlock()

	key := cache.PlayersKey(season)
	var raw []api.APIPlayer
	if cached, ok := o.cache.Get(key); ok {
		raw = cached.([]api.APIPlayer)
	} else {
		v, err, _ := o.sf.Do(key, func() (any, error) {
			players, err := o.client.GetPlayers(ctx, season, api.PlayerStatusPro, "m")
			if err != nil {
				return nil, err
			}
			o.cache.SetForKey(key, players)
			return players, nil
		})
		if err != nil {
			return nil, err
		}
		raw = v.([]api.APIPlayer)
	}

	dir := make(map[int64]model.Player, len(raw))
	for i := range raw {
		p := raw[i].ToModel()
		dir[p.ID] = p
	}

	o.mu.Lock()
	o.players = dir
	o.playersSeason = season
	o.mu.Unlock()

	return dir, nil
}

// annotateNames fills player display names on match records from the
// season's player directory.
func (o *Orchestrator) annotateNames(ctx context.Context, matches []model.Match) error {
	if len(matches) == 0 {
		return nil
	}

	season, err := o.Season(ctx)
	if err != nil {
		return err
	}

	dir, err := o.playerDirectory(ctx, season)
	if err != nil {
		return err
	}

	for i := range matches {
		if p, ok := dir[matches[i].Player1ID]; ok {
			matches[i].Player1Name = p.DisplayName()
		}
		if p, ok := dir[matches[i].Player2ID]; ok {
			matches[i].Player2Name = p.DisplayName()
		}
	}
	return nil
}
