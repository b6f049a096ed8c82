package scheduler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"calendxr/models"
	"calendxr/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultLookAheadDays applies when a request leaves the window unset.
const DefaultLookAheadDays = 7

// FindMeetingTimes runs the conflict-ranked strategy: generate business-hour
// candidates, score them against every resolved user's busy intervals, and
// return the top-ranked options.
func (s *DefaultSchedulerService) FindMeetingTimes(ctx context.Context, req models.SchedulingRequest) (*models.MeetingTimesResult, error) {
	emails, err := validEmails(req.Emails)
	if err != nil {
		return nil, err
	}
	days := lookAheadOrDefault(req.LookAheadDays)
	now := s.now()
	horizon := now.AddDate(0, 0, days)

	schedules, notFound, failed := s.fetchSchedules(ctx, emails, now, horizon)

	result := &models.MeetingTimesResult{
		TotalUsersFound: len(schedules),
		Warning:         resolutionWarning(len(emails), notFound, failed),
	}

	slots := GenerateCandidateSlots(now, days)
	if len(slots) == 0 {
		result.Message = "No available time found in the look-ahead window"
		return result, nil
	}

	ScoreConflicts(slots, schedules)
	ranked := RankSlots(slots)

	best := FormatOption(ranked[0])
	result.Best = &best
	for _, slot := range ranked[1:] {
		result.Alternatives = append(result.Alternatives, FormatOption(slot))
	}
	return result, nil
}

// FreeTimeReport runs the gap-extraction strategy: every resolved user's
// free gaps over the full timeline, their deterministic intersection, and an
// optional prose analysis from the summarization collaborator.
func (s *DefaultSchedulerService) FreeTimeReport(ctx context.Context, req models.SchedulingRequest) (*models.FreeTimeResult, error) {
	emails, err := validEmails(req.Emails)
	if err != nil {
		return nil, err
	}
	days := lookAheadOrDefault(req.LookAheadDays)
	now := s.now()
	horizon := now.AddDate(0, 0, days)

	schedules, notFound, failed := s.fetchSchedules(ctx, emails, now, horizon)

	result := &models.FreeTimeResult{
		TotalUsersFound: len(schedules),
		Warning:         resolutionWarning(len(emails), notFound, failed),
	}

	gapsByUser := make([][]models.FreeGap, 0, len(schedules))
	for _, schedule := range schedules {
		gaps := ExtractFreeGaps(schedule, now, horizon)
		gapsByUser = append(gapsByUser, gaps)
		for _, gap := range gaps {
			result.FreeSlots = append(result.FreeSlots, models.FreeSlotView{
				User:          gap.User,
				Start:         gap.Start,
				End:           gap.End,
				DurationHours: gap.DurationHours(),
			})
		}
	}
	result.CommonWindows = CommonWindows(gapsByUser)

	if len(result.FreeSlots) == 0 {
		result.Message = "No free time slots found for the selected users"
		return result, nil
	}

	if s.Analyzer != nil {
		analysis, err := s.Analyzer.AnalyzeSchedules(ctx, analysisPayload(schedules, result.FreeSlots, days))
		if err != nil {
			utils.GetLogger().Warn("Schedule analysis unavailable", zap.Error(err))
			result.AnalysisUnavailable = true
		} else {
			result.Analysis = analysis
		}
	}
	return result, nil
}

// fetchSchedules resolves every email concurrently. A missing user or a
// failed fetch never aborts the sibling lookups; the counts come back so the
// caller can surface a warning.
func (s *DefaultSchedulerService) fetchSchedules(ctx context.Context, emails []string, from, to time.Time) (schedules []models.UserSchedule, notFound, failed int) {
	logger := utils.GetLogger()
	results := make([]*models.UserSchedule, len(emails))
	errs := make([]error, len(emails))

	var g errgroup.Group
	for i, email := range emails {
		g.Go(func() error {
			results[i], errs[i] = s.Events.Schedule(ctx, email, from, to)
			return nil
		})
	}
	g.Wait()

	for i, email := range emails {
		switch {
		case errs[i] == nil:
			schedules = append(schedules, *results[i])
		case errors.Is(errs[i], ErrUserNotFound):
			logger.Info("Scheduling request references unknown user", zap.String("email", email))
			notFound++
		default:
			logger.Error("Failed to fetch events for user",
				zap.String("email", email), zap.Error(errs[i]))
			failed++
		}
	}
	return schedules, notFound, failed
}

// validEmails trims the identifier list and rejects requests that leave
// nothing usable.
func validEmails(emails []string) ([]string, error) {
	valid := make([]string, 0, len(emails))
	for _, email := range emails {
		if trimmed := strings.TrimSpace(email); trimmed != "" {
			valid = append(valid, trimmed)
		}
	}
	if len(valid) == 0 {
		return nil, ErrInvalidRequest
	}
	return valid, nil
}

func lookAheadOrDefault(days int) int {
	if days <= 0 {
		return DefaultLookAheadDays
	}
	return days
}

// resolutionWarning describes partial resolution; it is informational, never
// fatal.
func resolutionWarning(requested, notFound, failed int) string {
	var parts []string
	if notFound > 0 {
		parts = append(parts, fmt.Sprintf("%d of %d users were not found in the system", notFound, requested))
	}
	if failed > 0 {
		parts = append(parts, fmt.Sprintf("events could not be fetched for %d user(s)", failed))
	}
	return strings.Join(parts, "; ")
}

// analysisPayload shapes the schedule data for the summarization
// collaborator.
func analysisPayload(schedules []models.UserSchedule, freeSlots []models.FreeSlotView, days int) models.AnalysisPayload {
	payload := models.AnalysisPayload{
		FreeSlots:     freeSlots,
		LookAheadDays: days,
	}
	for _, schedule := range schedules {
		payload.Users = append(payload.Users, models.UserScheduleSummary{
			Name:       schedule.Name(),
			Email:      schedule.Email,
			EventCount: len(schedule.Busy),
			BusyTimes:  schedule.Busy,
		})
	}
	return payload
}
