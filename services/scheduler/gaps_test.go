package scheduler

import (
	"testing"
	"time"

	"calendxr/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func busyAt(day time.Time, startHour, endHour int, label string) models.BusyInterval {
	return models.BusyInterval{
		Start: day.Add(time.Duration(startHour) * time.Hour),
		End:   day.Add(time.Duration(endHour) * time.Hour),
		Label: label,
	}
}

func TestExtractFreeGapsAroundBusyIntervals(t *testing.T) {
	day := mondayMorning.Truncate(24 * time.Hour) // Monday 00:00
	horizon := mondayMorning.AddDate(0, 0, 1)

	// Intentionally unsorted input.
	schedule := models.UserSchedule{
		DisplayName: "Alice",
		Email:       "alice@example.com",
		Busy: []models.BusyInterval{
			busyAt(day, 14, 15, "1:1"),
			busyAt(day, 9, 10, "standup"),
		},
	}

	gaps := ExtractFreeGaps(schedule, mondayMorning, horizon)
	require.Len(t, gaps, 3)

	assert.Equal(t, mondayMorning, gaps[0].Start)
	assert.Equal(t, day.Add(9*time.Hour), gaps[0].End)
	assert.Equal(t, day.Add(10*time.Hour), gaps[1].Start)
	assert.Equal(t, day.Add(14*time.Hour), gaps[1].End)
	assert.Equal(t, day.Add(15*time.Hour), gaps[2].Start)
	assert.Equal(t, horizon, gaps[2].End)

	for _, gap := range gaps {
		assert.Equal(t, "Alice", gap.User)
		assert.False(t, gap.End.Before(gap.Start))
	}
}

// The gaps plus the sorted busy intervals must tile [now, horizon] with no
// hole and no overlap.
func TestExtractFreeGapsCoverageInvariant(t *testing.T) {
	day := mondayMorning.Truncate(24 * time.Hour)
	horizon := mondayMorning.AddDate(0, 0, 2)

	schedule := models.UserSchedule{
		Email: "bob@example.com",
		Busy: []models.BusyInterval{
			busyAt(day, 10, 12, "workshop"),
			busyAt(day, 11, 13, "overlap"), // overlapping busy intervals
			busyAt(day.AddDate(0, 0, 1), 9, 10, "standup"),
		},
	}

	gaps := ExtractFreeGaps(schedule, mondayMorning, horizon)
	require.NotEmpty(t, gaps)

	// Walk the timeline: every instant is covered by exactly one of
	// free-gap or busy time.
	cursor := mondayMorning
	for _, gap := range gaps {
		assert.False(t, gap.Start.Before(cursor), "gap starts before cursor")
		cursor = gap.End
	}
	assert.False(t, cursor.After(horizon))

	// No gap intersects any busy interval.
	for _, gap := range gaps {
		for _, busy := range schedule.Busy {
			assert.False(t, overlaps(gap.Start, gap.End, busy.Start, busy.End),
				"gap %v overlaps busy %v", gap, busy)
		}
	}

	// Total free + busy time equals the window length. Busy intervals
	// overlap each other here, so merge them first.
	var freeTotal time.Duration
	for _, gap := range gaps {
		freeTotal += gap.End.Sub(gap.Start)
	}
	busyTotal := 3 * time.Hour // 10:00-13:00 merged, plus 9:00-10:00 next day
	busyTotal += time.Hour
	assert.Equal(t, horizon.Sub(mondayMorning), freeTotal+busyTotal)
}

func TestExtractFreeGapsNoEvents(t *testing.T) {
	horizon := mondayMorning.AddDate(0, 0, 7)
	gaps := ExtractFreeGaps(models.UserSchedule{Email: "free@example.com"}, mondayMorning, horizon)

	require.Len(t, gaps, 1)
	assert.Equal(t, mondayMorning, gaps[0].Start)
	assert.Equal(t, horizon, gaps[0].End)
	assert.Equal(t, "free@example.com", gaps[0].User)
}

func TestExtractFreeGapsFullyBusy(t *testing.T) {
	horizon := mondayMorning.Add(2 * time.Hour)
	schedule := models.UserSchedule{
		Email: "swamped@example.com",
		Busy: []models.BusyInterval{
			{Start: mondayMorning, End: horizon.Add(time.Hour), Label: "offsite"},
		},
	}
	assert.Empty(t, ExtractFreeGaps(schedule, mondayMorning, horizon))
}

func TestCommonWindowsIntersection(t *testing.T) {
	day := mondayMorning.Truncate(24 * time.Hour)

	alice := []models.FreeGap{
		{User: "alice", Start: day.Add(8 * time.Hour), End: day.Add(12 * time.Hour)},
		{User: "alice", Start: day.Add(15 * time.Hour), End: day.Add(18 * time.Hour)},
	}
	bob := []models.FreeGap{
		{User: "bob", Start: day.Add(10 * time.Hour), End: day.Add(16 * time.Hour)},
	}

	windows := CommonWindows([][]models.FreeGap{alice, bob})
	require.Len(t, windows, 2)
	assert.Equal(t, day.Add(10*time.Hour), windows[0].Start)
	assert.Equal(t, day.Add(12*time.Hour), windows[0].End)
	assert.Equal(t, day.Add(15*time.Hour), windows[1].Start)
	assert.Equal(t, day.Add(16*time.Hour), windows[1].End)
}

func TestCommonWindowsDisjointUsers(t *testing.T) {
	day := mondayMorning.Truncate(24 * time.Hour)

	alice := []models.FreeGap{{Start: day.Add(8 * time.Hour), End: day.Add(9 * time.Hour)}}
	bob := []models.FreeGap{{Start: day.Add(10 * time.Hour), End: day.Add(11 * time.Hour)}}

	assert.Empty(t, CommonWindows([][]models.FreeGap{alice, bob}))
	assert.Nil(t, CommonWindows(nil))
}
