package reconcile

import (
	"strconv"

	"github.com/maxbreak/snooker-data/internal/model"
)

// Build reconciles an unordered collection of match records into the
// ordered render list: dedupe, categorize, sort, interleave headers.
// Empty input yields an empty (non-nil) list.
func Build(matches []model.Match) []model.RenderItem {
	deduped := dedupe(matches)

	byCategory := make(map[model.Category][]model.Match, 4)
	for _, m := range deduped {
		cat := m.Category()
		byCategory[cat] = append(byCategory[cat], m)
	}

	// Fixed section order: live first, finished last.
	order := []model.Category{
		model.CategoryLive,
		model.CategoryOnBreak,
		model.CategoryUpcoming,
		model.CategoryFinished,
	}

	items := make([]model.RenderItem, 0, len(deduped)+8)
	for _, cat := range order {
		section := byCategory[cat]
		if len(section) == 0 {
			continue
		}
		sortCategory(cat, section)
		items = appendSection(items, cat, section)
	}

	return items
}

// identityKey computes the string under which duplicate records collide.
// Priority: live URL, details URL, API match id, internal id. Duplicate ids
// typically appear when a match is re-issued after a session break.
func identityKey(m model.Match) string {
	if m.LiveURL != "" {
		return "live:" + m.LiveURL
	}
	if m.DetailsURL != "" {
		return "details:" + m.DetailsURL
	}
	if m.APIMatchID != 0 {
		return "api:" + strconv.FormatInt(m.APIMatchID, 10)
	}
	return "id:" + strconv.FormatInt(m.ID, 10)
}

// statusPriority ranks how "current" a record's status is. Live beats
// on-break beats scheduled beats finished: on a collision we keep the
// record that represents the match's present state.
func statusPriority(statusCode int) int {
	switch statusCode {
	case model.StatusLive:
		return 4
	case model.StatusOnBreak:
		return 3
	case model.StatusScheduled:
		return 2
	case model.StatusFinished:
		return 1
	default:
		return 0
	}
}

// prefer reports whether candidate should replace kept when both share an
// identity key: higher round wins, then higher status priority.
func prefer(candidate, kept model.Match) bool {
	if candidate.Round != kept.Round {
		return candidate.Round > kept.Round
	}
	return statusPriority(candidate.StatusCode) > statusPriority(kept.StatusCode)
}

// dedupe collapses records sharing an identity key, keeping the preferred
// record. First-seen order of surviving keys is preserved so the output is
// stable for a given input order; the per-category sort downstream makes
// the final list independent of input order entirely.
func dedupe(matches []model.Match) []model.Match {
	kept := make(map[string]int, len(matches))
	out := make([]model.Match, 0, len(matches))

	for _, m := range matches {
		key := identityKey(m)
		if idx, ok := kept[key]; ok {
			if prefer(m, out[idx]) {
				out[idx] = m
			}
			continue
		}
		kept[key] = len(out)
		out = append(out, m)
	}

	return out
}
