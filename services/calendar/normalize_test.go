package calendar

import (
	"testing"
	"time"

	"calendxr/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	calendarapi "google.golang.org/api/calendar/v3"
)

func TestNormalizeEventTimed(t *testing.T) {
	item := &calendarapi.Event{
		Id:      "ev1",
		Summary: "Standup",
		Start:   &calendarapi.EventDateTime{DateTime: "2026-03-02T10:00:00+09:00"},
		End:     &calendarapi.EventDateTime{DateTime: "2026-03-02T10:30:00+09:00"},
		Attendees: []*calendarapi.EventAttendee{
			{Email: "a@example.com"},
			{Email: "b@example.com"},
		},
	}

	ev, err := normalizeEvent(item)
	require.NoError(t, err)
	assert.Equal(t, "Standup", ev.Title)
	assert.False(t, ev.AllDay)
	assert.Equal(t, 30*time.Minute, ev.End.Sub(ev.Start))
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, ev.Attendees)
}

func TestNormalizeEventAllDay(t *testing.T) {
	item := &calendarapi.Event{
		Id:    "ev2",
		Start: &calendarapi.EventDateTime{Date: "2026-03-02"},
		End:   &calendarapi.EventDateTime{Date: "2026-03-03"},
	}

	ev, err := normalizeEvent(item)
	require.NoError(t, err)
	assert.True(t, ev.AllDay)
	assert.Equal(t, "No Title", ev.Title)
	assert.Equal(t, 24*time.Hour, ev.End.Sub(ev.Start))
}

func TestNormalizeEventRejectsMissingOrInvertedTimes(t *testing.T) {
	_, err := normalizeEvent(&calendarapi.Event{Id: "ev3"})
	assert.Error(t, err)

	_, err = normalizeEvent(&calendarapi.Event{
		Id:    "ev4",
		Start: &calendarapi.EventDateTime{DateTime: "2026-03-02T11:00:00Z"},
		End:   &calendarapi.EventDateTime{DateTime: "2026-03-02T10:00:00Z"},
	})
	assert.Error(t, err)
}

func TestBusyIntervalsLabelsFromTitles(t *testing.T) {
	item := &calendarapi.Event{
		Id:      "ev5",
		Summary: "Lunch",
		Start:   &calendarapi.EventDateTime{DateTime: "2026-03-02T12:00:00Z"},
		End:     &calendarapi.EventDateTime{DateTime: "2026-03-02T13:00:00Z"},
	}
	ev, err := normalizeEvent(item)
	require.NoError(t, err)

	intervals := BusyIntervals([]models.CalendarEvent{ev})
	require.Len(t, intervals, 1)
	assert.Equal(t, "Lunch", intervals[0].Label)
	assert.True(t, intervals[0].Start.Before(intervals[0].End))
}
