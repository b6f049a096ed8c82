package calendar

import (
	"fmt"
	"time"

	"calendxr/models"

	calendarapi "google.golang.org/api/calendar/v3"
)

const allDayLayout = "2006-01-02"

// normalizeEvent converts a Google Calendar event into the strict internal
// shape. Upstream payloads carry either a dateTime (timed event) or a date
// (all-day event); both collapse to concrete timestamps here so nothing
// downstream has to care about the distinction.
func normalizeEvent(item *calendarapi.Event) (models.CalendarEvent, error) {
	start, allDay, err := normalizeEdge(item.Start)
	if err != nil {
		return models.CalendarEvent{}, fmt.Errorf("event %s start: %w", item.Id, err)
	}
	end, _, err := normalizeEdge(item.End)
	if err != nil {
		return models.CalendarEvent{}, fmt.Errorf("event %s end: %w", item.Id, err)
	}
	if !start.Before(end) {
		return models.CalendarEvent{}, fmt.Errorf("event %s has start %v not before end %v", item.Id, start, end)
	}

	title := item.Summary
	if title == "" {
		title = "No Title"
	}

	ev := models.CalendarEvent{
		ID:          item.Id,
		Title:       title,
		Description: item.Description,
		Location:    item.Location,
		Start:       start,
		End:         end,
		AllDay:      allDay,
	}
	for _, a := range item.Attendees {
		ev.Attendees = append(ev.Attendees, a.Email)
	}
	return ev, nil
}

// normalizeEdge resolves one EventDateTime into a timestamp. The bool result
// reports whether the edge came from an all-day date field.
func normalizeEdge(edge *calendarapi.EventDateTime) (time.Time, bool, error) {
	if edge == nil {
		return time.Time{}, false, fmt.Errorf("missing date field")
	}
	if edge.DateTime != "" {
		t, err := time.Parse(time.RFC3339, edge.DateTime)
		if err != nil {
			return time.Time{}, false, fmt.Errorf("bad dateTime %q: %w", edge.DateTime, err)
		}
		return t, false, nil
	}
	if edge.Date != "" {
		t, err := time.ParseInLocation(allDayLayout, edge.Date, time.Local)
		if err != nil {
			return time.Time{}, false, fmt.Errorf("bad date %q: %w", edge.Date, err)
		}
		return t, true, nil
	}
	return time.Time{}, false, fmt.Errorf("missing date field")
}

// BusyIntervals maps calendar events onto busy intervals. Every event counts
// as busy regardless of type; all-day events span their full days.
func BusyIntervals(events []models.CalendarEvent) []models.BusyInterval {
	intervals := make([]models.BusyInterval, 0, len(events))
	for _, ev := range events {
		intervals = append(intervals, models.BusyInterval{
			Start: ev.Start,
			End:   ev.End,
			Label: ev.Title,
		})
	}
	return intervals
}
