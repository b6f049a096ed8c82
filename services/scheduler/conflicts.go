package scheduler

import (
	"time"

	"calendxr/models"
)

// ScoreConflicts increments each candidate's conflict count once per busy
// interval overlapping it, across all users. Busy intervals are never
// mutated.
func ScoreConflicts(slots []models.CandidateSlot, schedules []models.UserSchedule) {
	for _, schedule := range schedules {
		for _, busy := range schedule.Busy {
			for i := range slots {
				if overlaps(busy.Start, busy.End, slots[i].Start, slots[i].End) {
					slots[i].Conflicts++
				}
			}
		}
	}
}

// overlaps reports whether [s1,e1) and [s2,e2) share any time. Exactly
// coincident intervals satisfy the same condition, so they need no separate
// check.
func overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && e1.After(s2)
}
