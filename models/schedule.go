package models

import "time"

// BusyInterval is one occupied time span, derived from a calendar event.
// Start is always strictly before End.
type BusyInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}

// UserSchedule groups one user's busy intervals for a scheduling request.
// Busy is not necessarily sorted; the scheduler sorts before gap extraction.
type UserSchedule struct {
	UserID      string         `json:"userId"`
	DisplayName string         `json:"displayName"`
	Email       string         `json:"email"`
	Busy        []BusyInterval `json:"busy"`
}

// Name returns the display name, falling back to the email address.
func (s UserSchedule) Name() string {
	if s.DisplayName != "" {
		return s.DisplayName
	}
	return s.Email
}

// CandidateSlot is a fixed-duration business-hour window under consideration
// as a meeting time. Conflicts counts how many busy intervals overlap it.
type CandidateSlot struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Conflicts int       `json:"conflicts"`
}

// FreeGap is a maximal span during which one user has no busy interval.
type FreeGap struct {
	User  string    `json:"user"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// DurationHours reports the gap length in whole hours, rounded.
func (g FreeGap) DurationHours() int {
	return int(g.End.Sub(g.Start).Round(time.Hour) / time.Hour)
}

// CommonWindow is a span during which every resolved user is free.
type CommonWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// SchedulingRequest is the top-level input for both scheduling strategies.
type SchedulingRequest struct {
	Emails        []string `json:"emails" binding:"required"`
	LookAheadDays int      `json:"lookAheadDays"`
}

// MeetingOption is one ranked candidate formatted for display.
type MeetingOption struct {
	Formatted string    `json:"formatted"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Conflicts int       `json:"conflicts"`
}

// MeetingTimesResult is the response of the conflict-ranked strategy.
// Best is nil when no candidate slot exists in the look-ahead window.
type MeetingTimesResult struct {
	Best            *MeetingOption  `json:"best,omitempty"`
	Alternatives    []MeetingOption `json:"alternatives,omitempty"`
	TotalUsersFound int             `json:"totalUsersFound"`
	Warning         string          `json:"warning,omitempty"`
	Message         string          `json:"message,omitempty"`
}

// FreeSlotView is one free gap shaped for display and for the AI analysis
// payload.
type FreeSlotView struct {
	User          string    `json:"user"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	DurationHours int       `json:"durationHours"`
}

// FreeTimeResult is the response of the gap-extraction strategy.
type FreeTimeResult struct {
	FreeSlots           []FreeSlotView `json:"freeSlots"`
	CommonWindows       []CommonWindow `json:"commonWindows"`
	TotalUsersFound     int            `json:"totalUsersFound"`
	Warning             string         `json:"warning,omitempty"`
	Message             string         `json:"message,omitempty"`
	Analysis            string         `json:"analysis,omitempty"`
	AnalysisUnavailable bool           `json:"analysisUnavailable,omitempty"`
}
