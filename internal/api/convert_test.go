package api

import (
	"testing"
	"time"

	"github.com/maxbreak/snooker-data/internal/model"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{"rfc3339", "2025-05-01T13:00:00Z", time.Date(2025, 5, 1, 13, 0, 0, 0, time.UTC).UnixMicro()},
		{"naive datetime", "2025-05-01T13:00:00", time.Date(2025, 5, 1, 13, 0, 0, 0, time.UTC).UnixMicro()},
		{"date only", "2025-05-01", time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC).UnixMicro()},
		{"empty", "", 0},
		{"garbage", "not-a-date", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseTimestamp(tt.input); got != tt.want {
				t.Errorf("ParseTimestamp(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestToStatusCode(t *testing.T) {
	tests := []struct {
		name       string
		wireStatus int
		onBreak    bool
		want       int
	}{
		{"scheduled", wireStatusScheduled, false, model.StatusScheduled},
		{"running", wireStatusRunning, false, model.StatusLive},
		{"running on break", wireStatusRunning, true, model.StatusOnBreak},
		{"finished", wireStatusFinished, false, model.StatusFinished},
		{"unknown degrades to scheduled", wireStatusUnknown, false, model.StatusScheduled},
		{"out of range", 42, false, model.StatusScheduled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toStatusCode(tt.wireStatus, tt.onBreak); got != tt.want {
				t.Errorf("toStatusCode(%d, %v) = %d, want %d", tt.wireStatus, tt.onBreak, got, tt.want)
			}
		})
	}
}

func TestAPIMatch_ToModel(t *testing.T) {
	am := APIMatch{
		ID:            3579777,
		EventID:       1456,
		Round:         15,
		Number:        1,
		Player1ID:     5,
		Score1:        18,
		Player2ID:     1,
		Score2:        9,
		WinnerID:      5,
		Status:        wireStatusFinished,
		ScheduledDate: "2025-05-01T13:00:00Z",
		StartDate:     "2025-05-01T13:05:00Z",
		EndDate:       "2025-05-01T18:00:00Z",
		LiveURL:       "https://live/1",
		DetailsURL:    "https://details/1",
	}

	m := am.ToModel()

	if m.StatusCode != model.StatusFinished {
		t.Errorf("StatusCode = %d, want finished", m.StatusCode)
	}
	if m.Score1 == nil || *m.Score1 != 18 {
		t.Errorf("Score1 = %v, want 18", m.Score1)
	}
	if m.WinnerID == nil || *m.WinnerID != 5 {
		t.Errorf("WinnerID = %v, want 5", m.WinnerID)
	}
	if m.ScheduledAt != time.Date(2025, 5, 1, 13, 0, 0, 0, time.UTC).UnixMicro() {
		t.Errorf("ScheduledAt = %d", m.ScheduledAt)
	}
	if m.ResolvedWinner() != 5 {
		t.Errorf("ResolvedWinner = %d, want 5", m.ResolvedWinner())
	}
}

func TestAPIMatch_ToModel_ScheduledHidesZeroScores(t *testing.T) {
	// The wire zero-fills scores for matches that have not started; they
	// must not surface as a real 0-0.
	am := APIMatch{ID: 1, Status: wireStatusScheduled}

	m := am.ToModel()

	if m.Score1 != nil || m.Score2 != nil {
		t.Errorf("scheduled match surfaced scores %v/%v, want nil/nil", m.Score1, m.Score2)
	}
	if m.WinnerID != nil {
		t.Errorf("scheduled match surfaced winner %v, want nil", m.WinnerID)
	}
}

func TestAPIMatch_ToModel_LiveKeepsScores(t *testing.T) {
	am := APIMatch{ID: 1, Status: wireStatusRunning, OnBreak: true, Score1: 4, Score2: 4}

	m := am.ToModel()

	if m.StatusCode != model.StatusOnBreak {
		t.Errorf("StatusCode = %d, want on-break", m.StatusCode)
	}
	if m.Score1 == nil || *m.Score1 != 4 || m.Score2 == nil || *m.Score2 != 4 {
		t.Errorf("scores = %v/%v, want 4/4", m.Score1, m.Score2)
	}
}

func TestAPIEvent_ToModel(t *testing.T) {
	ae := APIEvent{ID: 1456, Name: "UK Championship", Season: 2025, StartDate: "2025-11-22"}

	ev := ae.ToModel()

	if ev.ID != 1456 || ev.Name != "UK Championship" {
		t.Errorf("unexpected tournament %+v", ev)
	}
	if ev.StartDate != time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC).UnixMicro() {
		t.Errorf("StartDate = %d", ev.StartDate)
	}
	if ev.UpdatedAt == 0 {
		t.Error("UpdatedAt not stamped")
	}
}
