package scheduler

import (
	"sort"
	"time"

	"calendxr/models"
)

// ExtractFreeGaps computes the maximal free gaps for one user between now
// and horizon. The busy intervals need not arrive sorted. The emitted gaps
// are disjoint, ordered, and together with the busy intervals tile
// [now, horizon] exactly. Unlike candidate generation this runs over the
// full continuous timeline: nights and weekends count as free time.
func ExtractFreeGaps(schedule models.UserSchedule, now, horizon time.Time) []models.FreeGap {
	busy := make([]models.BusyInterval, len(schedule.Busy))
	copy(busy, schedule.Busy)
	sort.Slice(busy, func(i, j int) bool { return busy[i].Start.Before(busy[j].Start) })

	var gaps []models.FreeGap
	cursor := now

	for _, interval := range busy {
		if cursor.Before(interval.Start) {
			gaps = append(gaps, models.FreeGap{
				User:  schedule.Name(),
				Start: cursor,
				End:   interval.Start,
			})
		}
		if interval.End.After(cursor) {
			cursor = interval.End
		}
	}

	if cursor.Before(horizon) {
		gaps = append(gaps, models.FreeGap{
			User:  schedule.Name(),
			Start: cursor,
			End:   horizon,
		})
	}
	return gaps
}

// CommonWindows intersects every user's free gaps into windows where all of
// them are free at once. The gap lists must each be sorted and disjoint,
// which ExtractFreeGaps guarantees. With zero users there is nothing to
// intersect and the result is empty.
func CommonWindows(gapsByUser [][]models.FreeGap) []models.CommonWindow {
	if len(gapsByUser) == 0 {
		return nil
	}

	windows := make([]models.CommonWindow, 0, len(gapsByUser[0]))
	for _, gap := range gapsByUser[0] {
		windows = append(windows, models.CommonWindow{Start: gap.Start, End: gap.End})
	}

	for _, gaps := range gapsByUser[1:] {
		windows = intersectWindows(windows, gaps)
		if len(windows) == 0 {
			return windows
		}
	}
	return windows
}

// intersectWindows merges two sorted disjoint interval lists, keeping only
// the spans present in both.
func intersectWindows(windows []models.CommonWindow, gaps []models.FreeGap) []models.CommonWindow {
	var out []models.CommonWindow
	i, j := 0, 0
	for i < len(windows) && j < len(gaps) {
		start := maxTime(windows[i].Start, gaps[j].Start)
		end := minTime(windows[i].End, gaps[j].End)
		if start.Before(end) {
			out = append(out, models.CommonWindow{Start: start, End: end})
		}
		// Advance whichever interval closes first.
		if windows[i].End.Before(gaps[j].End) {
			i++
		} else {
			j++
		}
	}
	return out
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
