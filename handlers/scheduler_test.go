package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"calendxr/models"
	"calendxr/services/scheduler"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSchedulerService struct {
	meetingResult *models.MeetingTimesResult
	freeResult    *models.FreeTimeResult
	err           error
	lastRequest   models.SchedulingRequest
}

func (s *stubSchedulerService) FindMeetingTimes(ctx context.Context, req models.SchedulingRequest) (*models.MeetingTimesResult, error) {
	s.lastRequest = req
	return s.meetingResult, s.err
}

func (s *stubSchedulerService) FreeTimeReport(ctx context.Context, req models.SchedulingRequest) (*models.FreeTimeResult, error) {
	s.lastRequest = req
	return s.freeResult, s.err
}

func newSchedulerRouter(svc scheduler.SchedulerService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewSchedulerHandler(svc, nil, zap.NewNop())
	r := gin.New()
	r.POST("/api/scheduler/meeting-times", h.FindMeetingTimes)
	r.POST("/api/scheduler/free-time", h.FreeTimeReport)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestFindMeetingTimesEndpoint(t *testing.T) {
	start := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	svc := &stubSchedulerService{
		meetingResult: &models.MeetingTimesResult{
			Best: &models.MeetingOption{
				Formatted: "Monday, March 2, 2026 at 9:00 AM - 10:00 AM",
				Start:     start,
				End:       start.Add(time.Hour),
			},
			TotalUsersFound: 2,
		},
	}
	r := newSchedulerRouter(svc)

	w := postJSON(t, r, "/api/scheduler/meeting-times", models.SchedulingRequest{
		Emails:        []string{"alice@example.com", "bob@example.com"},
		LookAheadDays: 7,
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"alice@example.com", "bob@example.com"}, svc.lastRequest.Emails)

	var result models.MeetingTimesResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.NotNil(t, result.Best)
	assert.Equal(t, 2, result.TotalUsersFound)
	assert.Contains(t, result.Best.Formatted, "March 2, 2026")
}

func TestFindMeetingTimesEndpointRejectsMissingEmails(t *testing.T) {
	svc := &stubSchedulerService{}
	r := newSchedulerRouter(svc)

	w := postJSON(t, r, "/api/scheduler/meeting-times", map[string]any{"lookAheadDays": 7})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFindMeetingTimesEndpointInvalidRequest(t *testing.T) {
	svc := &stubSchedulerService{err: scheduler.ErrInvalidRequest}
	r := newSchedulerRouter(svc)

	w := postJSON(t, r, "/api/scheduler/meeting-times", models.SchedulingRequest{
		Emails: []string{"   "},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No valid email addresses provided")
}

func TestFreeTimeEndpoint(t *testing.T) {
	svc := &stubSchedulerService{
		freeResult: &models.FreeTimeResult{
			FreeSlots: []models.FreeSlotView{
				{
					User:          "Alice",
					Start:         time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC),
					End:           time.Date(2026, time.March, 2, 12, 0, 0, 0, time.UTC),
					DurationHours: 2,
				},
			},
			TotalUsersFound: 1,
		},
	}
	r := newSchedulerRouter(svc)

	w := postJSON(t, r, "/api/scheduler/free-time", models.SchedulingRequest{
		Emails: []string{"alice@example.com"},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var result models.FreeTimeResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Len(t, result.FreeSlots, 1)
	assert.Equal(t, "Alice", result.FreeSlots[0].User)
}
