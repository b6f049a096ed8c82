package scheduler

import (
	"time"

	"calendxr/models"
)

const (
	businessDayStartHour = 9
	businessDayEndHour   = 17
	slotDuration         = time.Hour
)

// GenerateCandidateSlots enumerates one-hour business-hour slots over the
// next lookAheadDays calendar days, in the location of now. Saturdays and
// Sundays are skipped, as are slots starting at or before now. The result
// may be empty; callers treat that as "no available time found".
func GenerateCandidateSlots(now time.Time, lookAheadDays int) []models.CandidateSlot {
	var slots []models.CandidateSlot

	for day := 0; day < lookAheadDays; day++ {
		date := now.AddDate(0, 0, day)
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}

		// The last slot of the day starts one hour before close.
		for hour := businessDayStartHour; hour < businessDayEndHour; hour++ {
			start := time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, now.Location())
			if !start.After(now) {
				continue
			}
			slots = append(slots, models.CandidateSlot{
				Start: start,
				End:   start.Add(slotDuration),
			})
		}
	}
	return slots
}
