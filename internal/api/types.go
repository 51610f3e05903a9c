package api

// Endpoint selectors for the "t" query parameter.
const (
	tEventDetails  = "3"
	tSeasonEvents  = "5"
	tEventMatches  = "6"
	tPlayers       = "10"
	tRanking       = "11"
	tCurrentSeason = "20"
)

// Player status values for the "st" parameter.
const (
	PlayerStatusPro     = "p"
	PlayerStatusAmateur = "a"
)

// Tour values for the "tr" parameter.
const (
	TourMain    = "main"
	TourSeniors = "seniors"
	TourWomens  = "womens"
)

// Ranking type values for the "rt" parameter.
const (
	RankingMoney        = "MoneyRankings"
	RankingMoneySeeding = "MoneySeedings"
	RankingOneYearMoney = "OneYearMoneyRankings"
)

// Wire-level match status codes. These differ from the model's codes: the
// wire has no on-break status, it flags OnBreak separately.
const (
	wireStatusScheduled = 0
	wireStatusRunning   = 1
	wireStatusFinished  = 2
	wireStatusUnknown   = 3
)

// APIMatch represents a match record from t=6 (matches of an event).
type APIMatch struct {
	ID         int64 `json:"ID"`
	EventID    int64 `json:"EventID"`
	Round      int   `json:"Round"`
	Number     int   `json:"Number"`

	Player1ID int64 `json:"Player1ID"`
	Score1    int   `json:"Score1"`
	Player2ID int64 `json:"Player2ID"`
	Score2    int   `json:"Score2"`
	WinnerID  int64 `json:"WinnerID"`

	Status     int  `json:"Status"`
	Unfinished bool `json:"Unfinished"`
	OnBreak    bool `json:"OnBreak"`

	// ISO 8601 timestamps
	ScheduledDate string `json:"ScheduledDate"`
	StartDate     string `json:"StartDate"`
	EndDate       string `json:"EndDate"`

	FrameScores string `json:"FrameScores"`
	Sessions    string `json:"Sessions"`
	Note        string `json:"Note"`
	LiveURL     string `json:"LiveUrl"`
	DetailsURL  string `json:"DetailsUrl"`
}

// APIEvent represents an event record from t=3 / t=5.
type APIEvent struct {
	ID      int64  `json:"ID"`
	Name    string `json:"Name"`
	Season  int    `json:"Season"`
	Type    string `json:"Type"`
	Venue   string `json:"Venue"`
	City    string `json:"City"`
	Country string `json:"Country"`

	// Date-only ISO strings ("2006-01-02")
	StartDate string `json:"StartDate"`
	EndDate   string `json:"EndDate"`
}

// APIRanking represents one ranking row from t=11.
type APIRanking struct {
	ID       int64  `json:"ID"`
	Position int    `json:"Position"`
	PlayerID int64  `json:"PlayerID"`
	Season   int    `json:"Season"`
	Sum      int64  `json:"Sum"`
	Type     string `json:"Type"`
}

// APIPlayer represents a player record from t=10.
type APIPlayer struct {
	ID        int64  `json:"ID"`
	FirstName string `json:"FirstName"`
	LastName  string `json:"LastName"`
	ShortName string `json:"ShortName"`
}

// APISeason is the single record returned by t=20.
type APISeason struct {
	CurrentSeason int `json:"CurrentSeason"`
}
