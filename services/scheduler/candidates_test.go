package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mondayMorning is a fixed reference clock: Monday 2026-03-02 08:00 UTC.
var mondayMorning = time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC)

func TestGenerateCandidateSlotsBusinessWeek(t *testing.T) {
	slots := GenerateCandidateSlots(mondayMorning, 7)

	// Five weekdays, eight one-hour slots each.
	require.Len(t, slots, 40)

	for _, slot := range slots {
		wd := slot.Start.Weekday()
		assert.NotEqual(t, time.Saturday, wd)
		assert.NotEqual(t, time.Sunday, wd)
		assert.GreaterOrEqual(t, slot.Start.Hour(), 9)
		assert.LessOrEqual(t, slot.End.Hour(), 17)
		assert.Equal(t, time.Hour, slot.End.Sub(slot.Start))
		assert.True(t, slot.Start.After(mondayMorning))
		assert.Zero(t, slot.Conflicts)
	}
}

func TestGenerateCandidateSlotsSkipsPast(t *testing.T) {
	// Midday clock: the morning slots of the same day are gone.
	midday := time.Date(2026, time.March, 2, 12, 30, 0, 0, time.UTC)
	slots := GenerateCandidateSlots(midday, 1)

	require.Len(t, slots, 4) // 13:00 through 16:00 starts
	assert.Equal(t, 13, slots[0].Start.Hour())
}

func TestGenerateCandidateSlotsMayBeEmpty(t *testing.T) {
	// 23:00 with a one-day window: no business-hour slot remains.
	lateNight := time.Date(2026, time.March, 2, 23, 0, 0, 0, time.UTC)
	assert.Empty(t, GenerateCandidateSlots(lateNight, 1))

	// A window covering only the weekend is just as empty.
	saturday := time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC)
	assert.Empty(t, GenerateCandidateSlots(saturday, 2))
}

func TestGenerateCandidateSlotsDeterministic(t *testing.T) {
	first := GenerateCandidateSlots(mondayMorning, 7)
	second := GenerateCandidateSlots(mondayMorning, 7)
	assert.Equal(t, first, second)
}
