package models

import "time"

// CalendarEvent is the normalized shape of one Google Calendar event.
// All-day events are normalized at the boundary: Start/End always carry
// concrete timestamps regardless of whether the upstream payload used a
// date or a dateTime field.
type CalendarEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	AllDay      bool      `json:"allDay,omitempty"`
	Attendees   []string  `json:"attendees,omitempty"`
}

// EventInput carries the fields a client may set when creating or updating
// an event.
type EventInput struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Start       time.Time `json:"start" binding:"required"`
	End         time.Time `json:"end" binding:"required"`
	Attendees   []string  `json:"attendees"`
}

// EventDraft is an event proposal extracted from a photographed flyer.
// It is returned to the client for confirmation, never written to the
// calendar directly.
type EventDraft struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Location    string    `json:"location,omitempty"`
	SourceText  string    `json:"sourceText,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
}
