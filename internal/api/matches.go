package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// GetEventMatches fetches all matches of an event (t=6).
func (c *Client) GetEventMatches(ctx context.Context, eventID int64) ([]APIMatch, error) {
	query := url.Values{}
	query.Set("t", tEventMatches)
	query.Set("e", strconv.FormatInt(eventID, 10))

	var matches []APIMatch
	if err := c.get(ctx, query, &matches); err != nil {
		return nil, fmt.Errorf("get event matches %d: %w", eventID, err)
	}

	return matches, nil
}

// GetMatch fetches a single match of an event by round and number. The API
// has no dedicated single-match endpoint; this filters the event's matches,
// which keeps the match-detail result byte-identical to the list entry.
func (c *Client) GetMatch(ctx context.Context, eventID int64, round, number int) (*APIMatch, error) {
	matches, err := c.GetEventMatches(ctx, eventID)
	if err != nil {
		return nil, err
	}

	for i := range matches {
		if matches[i].Round == round && matches[i].Number == number {
			return &matches[i], nil
		}
	}

	return nil, fmt.Errorf("%w: match r%d n%d not in event %d", ErrNotFound, round, number, eventID)
}
