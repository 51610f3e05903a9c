package model

// -----------------------------------------------------------------------------
// Status Codes & Categories
// -----------------------------------------------------------------------------

// Match status codes as exposed to the presentation layer.
const (
	StatusScheduled = 0
	StatusLive      = 1
	StatusOnBreak   = 2
	StatusFinished  = 3
)

// Category groups matches for display.
type Category int

const (
	CategoryLive Category = iota
	CategoryOnBreak
	CategoryUpcoming
	CategoryFinished
)

// String returns the display title used for the category's section header.
func (c Category) String() string {
	switch c {
	case CategoryLive:
		return "Live"
	case CategoryOnBreak:
		return "On Break"
	case CategoryUpcoming:
		return "Upcoming"
	case CategoryFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// CategoryOf maps a status code to its display category.
// Unrecognized or missing codes fall back to Upcoming.
func CategoryOf(statusCode int) Category {
	switch statusCode {
	case StatusLive:
		return CategoryLive
	case StatusOnBreak:
		return CategoryOnBreak
	case StatusFinished:
		return CategoryFinished
	default:
		return CategoryUpcoming
	}
}

// -----------------------------------------------------------------------------
// Domain Types
// -----------------------------------------------------------------------------

// Match represents a single match within a tournament. Records come from the
// remote API and are read-only to the core: everything downstream derives
// views and never mutates a Match.
type Match struct {
	ID         int64  // Internal id (stable within one fetch)
	APIMatchID int64  // Match id from snooker.org, 0 if not provided
	EventID    int64  // Tournament this match belongs to
	LiveURL    string // Live-scoring URL, also an identity hint
	DetailsURL string // Details URL, also an identity hint

	Player1ID   int64
	Player2ID   int64
	Player1Name string
	Player2Name string

	// Advisory scoring fields. Score1/Score2 and WinnerID may disagree with
	// each other; arbitration happens in ResolvedWinner, not here.
	Score1   *int
	Score2   *int
	WinnerID *int

	StatusCode int   // See Status* constants
	Round      int   // Round within the event, 0 = unknown
	Number     int   // Match number within the round, 0 = unknown
	Unfinished bool  // Carried over from the API, advisory

	ScheduledAt int64 // µs since epoch, 0 = unknown
	StartedAt   int64
	EndedAt     int64
}

// Category returns the display category derived from the match status code.
func (m Match) Category() Category {
	return CategoryOf(m.StatusCode)
}

// ResolvedWinner arbitrates between the score pair and the WinnerID field,
// which the backend occasionally reports inconsistently. Scores win: the
// player ahead on frames is the winner. WinnerID is consulted only when
// scores are absent or level. Returns 0 when no winner can be determined.
func (m Match) ResolvedWinner() int64 {
	if m.Score1 != nil && m.Score2 != nil && *m.Score1 != *m.Score2 {
		if *m.Score1 > *m.Score2 {
			return m.Player1ID
		}
		return m.Player2ID
	}
	if m.WinnerID != nil {
		return int64(*m.WinnerID)
	}
	return 0
}

// Tournament represents an event's detail record.
type Tournament struct {
	ID      int64
	Name    string
	Season  int
	Type    string // e.g. "Ranking", "Qualifying", "Invitational"
	Venue   string
	City    string
	Country string

	StartDate int64 // µs since epoch, date precision
	EndDate   int64
	UpdatedAt int64 // Fetch time
}

// RankingEntry is one row of a ranking list.
type RankingEntry struct {
	Position   int
	PlayerID   int64
	PlayerName string
	Season     int
	Sum        int64  // Prize money / points, unit depends on Type
	Type       string // e.g. "MoneyRankings"
}

// Player is a minimal player record used for name annotation.
type Player struct {
	ID        int64
	FirstName string
	LastName  string
	ShortName string
}

// DisplayName returns the preferred display form of the player's name.
func (p Player) DisplayName() string {
	if p.ShortName != "" {
		return p.ShortName
	}
	if p.FirstName == "" {
		return p.LastName
	}
	return p.FirstName + " " + p.LastName
}
