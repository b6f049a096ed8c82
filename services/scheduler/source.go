package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	userRepo "calendxr/database/repository/user"
	"calendxr/models"
	"calendxr/services/calendar"
)

// CalendarEventSource resolves emails against the user store and pulls busy
// intervals from each user's Google Calendar.
type CalendarEventSource struct {
	Users userRepo.UserRepository
}

// Schedule fetches one user's busy schedule over [from, to).
func (s *CalendarEventSource) Schedule(ctx context.Context, email string, from, to time.Time) (*models.UserSchedule, error) {
	user, err := s.Users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("resolve user %s: %w", email, err)
	}

	client, err := calendar.NewClient(ctx, user.GoogleToken)
	if err != nil {
		return nil, fmt.Errorf("calendar client for %s: %w", email, err)
	}
	events, err := client.ListEvents(ctx, from, to, 0)
	if err != nil {
		return nil, fmt.Errorf("list events for %s: %w", email, err)
	}

	return &models.UserSchedule{
		UserID:      user.ID,
		DisplayName: user.Name,
		Email:       user.Email,
		Busy:        calendar.BusyIntervals(events),
	}, nil
}
