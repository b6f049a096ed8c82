package scheduler

import (
	"fmt"
	"sort"

	"calendxr/models"
)

// maxRankedOptions bounds the ranked output: one best time plus up to two
// alternatives.
const maxRankedOptions = 3

// RankSlots orders candidates by conflict count ascending with ties broken
// chronologically, and returns at most maxRankedOptions of them. The sort is
// stable and the comparator total, so identical inputs always produce
// identical output.
func RankSlots(slots []models.CandidateSlot) []models.CandidateSlot {
	ranked := make([]models.CandidateSlot, len(slots))
	copy(ranked, slots)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Conflicts != ranked[j].Conflicts {
			return ranked[i].Conflicts < ranked[j].Conflicts
		}
		return ranked[i].Start.Before(ranked[j].Start)
	})

	if len(ranked) > maxRankedOptions {
		ranked = ranked[:maxRankedOptions]
	}
	return ranked
}

// FormatOption renders one ranked slot for display, e.g.
// "Monday, March 2, 2026 at 10:00 AM - 11:00 AM".
func FormatOption(slot models.CandidateSlot) models.MeetingOption {
	return models.MeetingOption{
		Formatted: fmt.Sprintf("%s - %s",
			slot.Start.Format("Monday, January 2, 2006 at 3:04 PM"),
			slot.End.Format("3:04 PM")),
		Start:     slot.Start,
		End:       slot.End,
		Conflicts: slot.Conflicts,
	}
}
