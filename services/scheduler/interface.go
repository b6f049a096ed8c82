package scheduler

import (
	"context"
	"errors"
	"time"

	"calendxr/models"
)

// ErrInvalidRequest is returned when a scheduling request carries no usable
// user identifiers. It is the only fatal request error; every other
// condition degrades to a warning inside the result.
var ErrInvalidRequest = errors.New("no valid email addresses provided")

// ErrUserNotFound is returned by an EventSource when an email does not
// resolve to a known user.
var ErrUserNotFound = errors.New("user not found")

// EventSource supplies one user's busy schedule over a date range. The
// production implementation resolves the email against the user store and
// pulls events from Google Calendar.
type EventSource interface {
	Schedule(ctx context.Context, email string, from, to time.Time) (*models.UserSchedule, error)
}

// ScheduleAnalyzer produces prose meeting recommendations from structured
// schedule data. It is optional; the engine degrades gracefully when the
// analyzer is unset or fails.
type ScheduleAnalyzer interface {
	AnalyzeSchedules(ctx context.Context, payload models.AnalysisPayload) (string, error)
}

// SchedulerService exposes the two scheduling strategies.
type SchedulerService interface {
	// FindMeetingTimes ranks fixed business-hour candidate slots by how many
	// busy intervals conflict with them and returns the best option plus up
	// to two alternatives.
	FindMeetingTimes(ctx context.Context, req models.SchedulingRequest) (*models.MeetingTimesResult, error)
	// FreeTimeReport extracts every user's free gaps over the look-ahead
	// window, intersects them into common windows, and optionally attaches
	// an AI analysis.
	FreeTimeReport(ctx context.Context, req models.SchedulingRequest) (*models.FreeTimeResult, error)
}

// DefaultSchedulerService is the concrete scheduling engine. It is stateless
// per request; Now is injectable for deterministic tests and defaults to
// time.Now.
type DefaultSchedulerService struct {
	Events   EventSource
	Analyzer ScheduleAnalyzer
	Now      func() time.Time
}

func (s *DefaultSchedulerService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
