package reconcile

import (
	"math"
	"sort"

	"github.com/maxbreak/snooker-data/internal/model"
)

// Sentinels for missing values so they sort after everything real.
const (
	unknownRound  = 999
	unknownNumber = 999
	unknownDate   = math.MaxInt64
)

func roundOrUnknown(r int) int {
	if r <= 0 {
		return unknownRound
	}
	return r
}

func numberOrUnknown(n int) int {
	if n <= 0 {
		return unknownNumber
	}
	return n
}

func dateOrUnknown(ts int64) int64 {
	if ts <= 0 {
		return unknownDate
	}
	return ts
}

// finishDate is the timestamp a finished match is ranked by: end time,
// falling back to start, then to the scheduled slot.
func finishDate(m model.Match) int64 {
	if m.EndedAt > 0 {
		return m.EndedAt
	}
	if m.StartedAt > 0 {
		return m.StartedAt
	}
	return m.ScheduledAt
}

// sortCategory orders a category's matches in place.
//
// Live, on-break and upcoming sections read top-to-bottom in play order:
// ascending round, then scheduled time, then match number. Finished reads
// most-recent-first: descending round, then descending finish date, with
// match number ascending as the final tiebreak.
func sortCategory(cat model.Category, section []model.Match) {
	if cat == model.CategoryFinished {
		sort.SliceStable(section, func(i, j int) bool {
			a, b := section[i], section[j]
			ar, br := roundOrUnknown(a.Round), roundOrUnknown(b.Round)
			if ar != br {
				// Unknown rounds still sort last.
				if ar == unknownRound || br == unknownRound {
					return br == unknownRound
				}
				return ar > br
			}
			ad, bd := finishDate(a), finishDate(b)
			if ad != bd {
				// Missing dates (0) naturally sort last under descending.
				return ad > bd
			}
			an, bn := numberOrUnknown(a.Number), numberOrUnknown(b.Number)
			if an != bn {
				return an < bn
			}
			return a.ID < b.ID
		})
		return
	}

	sort.SliceStable(section, func(i, j int) bool {
		a, b := section[i], section[j]
		ar, br := roundOrUnknown(a.Round), roundOrUnknown(b.Round)
		if ar != br {
			return ar < br
		}
		ad, bd := dateOrUnknown(a.ScheduledAt), dateOrUnknown(b.ScheduledAt)
		if ad != bd {
			return ad < bd
		}
		an, bn := numberOrUnknown(a.Number), numberOrUnknown(b.Number)
		if an != bn {
			return an < bn
		}
		return a.ID < b.ID
	})
}
