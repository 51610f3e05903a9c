package reconcile

import (
	"fmt"
	"strconv"

	"github.com/maxbreak/snooker-data/internal/model"
)

// RoundName maps a snooker.org round number to its display name. Rounds
// count up toward the final: 15+ is the final, 13/14 the quarter- and
// semi-finals, 8-12 the "Last N" main-draw rounds (N halves each round:
// 12 is the last 16, 11 the last 32, and so on), 7 the final qualifying
// round. Unknown rounds get no name.
func RoundName(round int) string {
	switch {
	case round <= 0:
		return ""
	case round >= 15:
		return "Final"
	case round == 14:
		return "Semi-Finals"
	case round == 13:
		return "Quarter-Finals"
	case round >= 8:
		return "Last " + strconv.Itoa(1<<(16-round))
	case round == 7:
		return "Qualifying Round"
	default:
		return "Round " + strconv.Itoa(round)
	}
}

// appendSection emits one category section: a status header, then the
// sorted matches with a round header wherever the round value changes.
// A run of matches in the same round shares one header; an unknown round
// is its own run with an untitled header.
func appendSection(items []model.RenderItem, cat model.Category, section []model.Match) []model.RenderItem {
	items = append(items, model.RenderItem{
		Kind:     model.KindStatusHeader,
		ID:       "hdr:" + cat.String(),
		Title:    cat.String(),
		Category: cat,
	})

	haveRound := false
	lastRound := 0
	for i := range section {
		m := section[i]
		if !haveRound || m.Round != lastRound {
			items = append(items, model.RenderItem{
				Kind:     model.KindRoundHeader,
				ID:       fmt.Sprintf("hdr:%s:r%d", cat.String(), m.Round),
				Title:    RoundName(m.Round),
				Category: cat,
				Round:    m.Round,
			})
			haveRound = true
			lastRound = m.Round
		}

		items = append(items, model.RenderItem{
			Kind:     model.KindMatch,
			ID:       strconv.FormatInt(m.ID, 10),
			Category: cat,
			Match:    &section[i],
		})
	}

	return items
}
