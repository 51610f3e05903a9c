package api

import (
	"time"

	"github.com/maxbreak/snooker-data/internal/model"
)

// ParseTimestamp parses an ISO 8601 timestamp to microseconds since epoch.
// Accepts full RFC 3339, naive datetimes, and date-only strings.
// Returns 0 for empty or invalid input.
func ParseTimestamp(iso string) int64 {
	if iso == "" {
		return 0
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.UnixMicro()
		}
	}
	return 0
}

// NowMicro returns the current time in microseconds since epoch.
func NowMicro() int64 {
	return time.Now().UnixMicro()
}

// toStatusCode maps the wire status plus the OnBreak flag to the model's
// status codes. Unknown wire codes degrade to scheduled, which categorizes
// as upcoming downstream.
func toStatusCode(wireStatus int, onBreak bool) int {
	switch wireStatus {
	case wireStatusRunning:
		if onBreak {
			return model.StatusOnBreak
		}
		return model.StatusLive
	case wireStatusFinished:
		return model.StatusFinished
	default:
		return model.StatusScheduled
	}
}

// ToModel converts an APIMatch to model.Match.
//
// Scores and winner become optional: the wire zero-fills them for matches
// that have not started, so they are surfaced only once the match has.
func (m *APIMatch) ToModel() model.Match {
	status := toStatusCode(m.Status, m.OnBreak)
	started := status != model.StatusScheduled

	out := model.Match{
		ID:         m.ID,
		APIMatchID: m.ID,
		EventID:    m.EventID,
		LiveURL:    m.LiveURL,
		DetailsURL: m.DetailsURL,

		Player1ID: m.Player1ID,
		Player2ID: m.Player2ID,

		StatusCode: status,
		Round:      m.Round,
		Number:     m.Number,
		Unfinished: m.Unfinished,

		ScheduledAt: ParseTimestamp(m.ScheduledDate),
		StartedAt:   ParseTimestamp(m.StartDate),
		EndedAt:     ParseTimestamp(m.EndDate),
	}

	if started {
		s1, s2 := m.Score1, m.Score2
		out.Score1 = &s1
		out.Score2 = &s2
	}
	if m.WinnerID > 0 {
		w := int(m.WinnerID)
		out.WinnerID = &w
	}

	return out
}

// ToModel converts an APIEvent to model.Tournament.
func (e *APIEvent) ToModel() model.Tournament {
	return model.Tournament{
		ID:        e.ID,
		Name:      e.Name,
		Season:    e.Season,
		Type:      e.Type,
		Venue:     e.Venue,
		City:      e.City,
		Country:   e.Country,
		StartDate: ParseTimestamp(e.StartDate),
		EndDate:   ParseTimestamp(e.EndDate),
		UpdatedAt: NowMicro(),
	}
}

// ToModel converts an APIRanking to model.RankingEntry. Player names are
// annotated later from the player directory.
func (r *APIRanking) ToModel() model.RankingEntry {
	return model.RankingEntry{
		Position: r.Position,
		PlayerID: r.PlayerID,
		Season:   r.Season,
		Sum:      r.Sum,
		Type:     r.Type,
	}
}

// ToModel converts an APIPlayer to model.Player.
func (p *APIPlayer) ToModel() model.Player {
	return model.Player{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		ShortName: p.ShortName,
	}
}
