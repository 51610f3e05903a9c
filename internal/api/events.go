package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// GetEventDetails fetches a single event's detail record (t=3).
func (c *Client) GetEventDetails(ctx context.Context, eventID int64) (*APIEvent, error) {
	query := url.Values{}
	query.Set("t", tEventDetails)
	query.Set("e", strconv.FormatInt(eventID, 10))

	// The API returns a one-element array for detail lookups.
	var events []APIEvent
	if err := c.get(ctx, query, &events); err != nil {
		return nil, fmt.Errorf("get event details %d: %w", eventID, err)
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("%w: event %d not in response", ErrNotFound, eventID)
	}

	return &events[0], nil
}

// GetSeasonEvents fetches all events of a season and tour (t=5).
func (c *Client) GetSeasonEvents(ctx context.Context, season int, tour string) ([]APIEvent, error) {
	query := url.Values{}
	query.Set("t", tSeasonEvents)
	query.Set("s", strconv.Itoa(season))
	query.Set("tr", tour)

	var events []APIEvent
	if err := c.get(ctx, query, &events); err != nil {
		return nil, fmt.Errorf("get season events %d/%s: %w", season, tour, err)
	}

	return events, nil
}

// GetCurrentSeason fetches the current season year (t=20).
func (c *Client) GetCurrentSeason(ctx context.Context) (int, error) {
	query := url.Values{}
	query.Set("t", tCurrentSeason)

	var seasons []APISeason
	if err := c.get(ctx, query, &seasons); err != nil {
		return 0, fmt.Errorf("get current season: %w", err)
	}
	if len(seasons) == 0 || seasons[0].CurrentSeason == 0 {
		return 0, fmt.Errorf("%w: no current season in response", ErrMalformed)
	}

	return seasons[0].CurrentSeason, nil
}
