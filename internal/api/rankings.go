package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// GetRankings fetches a ranking list for a season (t=11).
func (c *Client) GetRankings(ctx context.Context, season int, rankingType string) ([]APIRanking, error) {
	query := url.Values{}
	query.Set("t", tRanking)
	query.Set("s", strconv.Itoa(season))
	query.Set("rt", rankingType)

	var rankings []APIRanking
	if err := c.get(ctx, query, &rankings); err != nil {
		return nil, fmt.Errorf("get rankings %d/%s: %w", season, rankingType, err)
	}

	return rankings, nil
}

// GetPlayers fetches the player list for a season (t=10). status is one of
// the PlayerStatus* constants, sex "m" or "f".
func (c *Client) GetPlayers(ctx context.Context, season int, status, sex string) ([]APIPlayer, error) {
	query := url.Values{}
	query.Set("t", tPlayers)
	query.Set("s", strconv.Itoa(season))
	query.Set("st", status)
	query.Set("se", sex)

	var players []APIPlayer
	if err := c.get(ctx, query, &players); err != nil {
		return nil, fmt.Errorf("get players %d: %w", season, err)
	}

	return players, nil
}
