package cache

import (
	"fmt"
	"strings"
	"time"
)

// Key prefixes per endpoint family. Invalidation matches on substrings of
// these keys, so every key embeds the ids it depends on.
const (
	prefixEventMatches = "event-matches"
	prefixMatch        = "match"
	prefixEventDetails = "event-details"
	prefixSeasonEvents = "season-events"
	prefixRankings     = "rankings"
	prefixPlayers      = "players"
)

// TTLPolicy holds the per-family TTLs. Live match data goes stale in
// seconds; rankings barely move between tournaments.
type TTLPolicy struct {
	EventDetails time.Duration // Tournament/event detail (default: 45s)
	Matches      time.Duration // Match list and detail (default: 10s)
	Rankings     time.Duration // Ranking lists (default: 5m)
	Default      time.Duration // Everything else (default: 30s)
}

// DefaultTTLPolicy returns the default freshness/request-volume trade-off.
func DefaultTTLPolicy() TTLPolicy {
	return TTLPolicy{
		EventDetails: 45 * time.Second,
		Matches:      10 * time.Second,
		Rankings:     5 * time.Minute,
		Default:      30 * time.Second,
	}
}

func (p *TTLPolicy) applyDefaults() {
	def := DefaultTTLPolicy()
	if p.EventDetails <= 0 {
		p.EventDetails = def.EventDetails
	}
	if p.Matches <= 0 {
		p.Matches = def.Matches
	}
	if p.Rankings <= 0 {
		p.Rankings = def.Rankings
	}
	if p.Default <= 0 {
		p.Default = def.Default
	}
}

// For returns the TTL for a key based on its endpoint family prefix.
func (p TTLPolicy) For(key string) time.Duration {
	switch {
	case strings.HasPrefix(key, prefixEventMatches), strings.HasPrefix(key, prefixMatch):
		return p.Matches
	case strings.HasPrefix(key, prefixEventDetails), strings.HasPrefix(key, prefixSeasonEvents):
		return p.EventDetails
	case strings.HasPrefix(key, prefixRankings), strings.HasPrefix(key, prefixPlayers):
		return p.Rankings
	default:
		return p.Default
	}
}

// Id segments are colon-terminated so that substring invalidation for
// event 5 cannot also hit event 55.

// EventMatchesKey is the cache key for an event's match list.
func EventMatchesKey(eventID int64) string {
	return fmt.Sprintf("%s:e%d:", prefixEventMatches, eventID)
}

// MatchKey is the cache key for a single match detail.
func MatchKey(eventID, matchID int64) string {
	return fmt.Sprintf("%s:e%d:m%d:", prefixMatch, eventID, matchID)
}

// EventDetailsKey is the cache key for an event's detail record.
func EventDetailsKey(eventID int64) string {
	return fmt.Sprintf("%s:e%d:", prefixEventDetails, eventID)
}

// SeasonEventsKey is the cache key for a season's event list.
func SeasonEventsKey(season int, tour string) string {
	return fmt.Sprintf("%s:s%d:%s:", prefixSeasonEvents, season, tour)
}

// RankingsKey is the cache key for a ranking list.
func RankingsKey(season int, rankingType string) string {
	return fmt.Sprintf("%s:s%d:%s:", prefixRankings, season, rankingType)
}

// PlayersKey is the cache key for a season's player directory.
func PlayersKey(season int) string {
	return fmt.Sprintf("%s:s%d:", prefixPlayers, season)
}

// EventPattern matches every key referencing an event, for invalidation.
func EventPattern(eventID int64) string {
	return fmt.Sprintf(":e%d:", eventID)
}

// MatchPattern matches every key referencing a match, for invalidation.
func MatchPattern(matchID int64) string {
	return fmt.Sprintf(":m%d:", matchID)
}

// StoreMatchDetail caches a single match detail and marks the event's list
// entries stale. The single-match record is authoritative; cached lists are
// never patched in place, only dropped, so a partial write can't corrupt
// them.
func (c *Cache) StoreMatchDetail(eventID, matchID int64, data any) {
	c.SetForKey(MatchKey(eventID, matchID), data)
	c.Invalidate(EventMatchesKey(eventID))
}
