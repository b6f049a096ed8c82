package handlers

import (
	"context"
	"net/http"
	"time"

	userRepo "calendxr/database/repository/user"
	"calendxr/models"
	"calendxr/services/calendar"
	"calendxr/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// defaultListWindowDays bounds the default upcoming-events view.
const defaultListWindowDays = 30

// CalendarHandler serves calendar CRUD for the signed-in user.
type CalendarHandler struct {
	users  userRepo.UserRepository
	logger *zap.Logger
}

func NewCalendarHandler(users userRepo.UserRepository, logger *zap.Logger) *CalendarHandler {
	return &CalendarHandler{users: users, logger: logger}
}

// clientForSession builds a calendar client from the session user's stored
// OAuth token.
func (h *CalendarHandler) clientForSession(c *gin.Context) (*calendar.Client, bool) {
	userID := c.GetString("userID")
	user, err := h.users.GetByID(userID)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Unknown user session", "")
		return nil, false
	}
	client, err := calendar.NewClient(c.Request.Context(), user.GoogleToken)
	if err != nil {
		h.logger.Error("Failed to build calendar client", zap.String("userID", userID), zap.Error(err))
		utils.JSONError(c, http.StatusUnauthorized, "Calendar access is not authorized for this account", "")
		return nil, false
	}
	return client, true
}

// ListEvents handles GET /api/calendar/events.
func (h *CalendarHandler) ListEvents(c *gin.Context) {
	client, ok := h.clientForSession(c)
	if !ok {
		return
	}

	now := time.Now()
	events, err := client.ListEvents(c.Request.Context(), now, now.AddDate(0, 0, defaultListWindowDays), 250)
	if err != nil {
		h.logger.Error("Failed to list calendar events", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to fetch calendar events", err.Error())
		return
	}
	c.JSON(http.StatusOK, events)
}

// CreateEvent handles POST /api/calendar/events.
func (h *CalendarHandler) CreateEvent(c *gin.Context) {
	var in models.EventInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid event payload", err.Error())
		return
	}
	if !in.Start.Before(in.End) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid event payload", "start must be before end")
		return
	}

	client, ok := h.clientForSession(c)
	if !ok {
		return
	}

	created, err := client.CreateEvent(c.Request.Context(), in)
	if err != nil {
		h.logger.Error("Failed to create calendar event", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to create event", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateEvent handles PATCH /api/calendar/events/:id.
func (h *CalendarHandler) UpdateEvent(c *gin.Context) {
	eventID := c.Param("id")
	var in models.EventInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid event payload", err.Error())
		return
	}

	client, ok := h.clientForSession(c)
	if !ok {
		return
	}

	updated, err := client.UpdateEvent(c.Request.Context(), eventID, in)
	if err != nil {
		h.logger.Error("Failed to update calendar event", zap.String("eventID", eventID), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to update event", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteEvent handles DELETE /api/calendar/events/:id.
func (h *CalendarHandler) DeleteEvent(c *gin.Context) {
	eventID := c.Param("id")

	client, ok := h.clientForSession(c)
	if !ok {
		return
	}

	if err := client.DeleteEvent(c.Request.Context(), eventID); err != nil {
		h.logger.Error("Failed to delete calendar event", zap.String("eventID", eventID), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to delete event", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

// sessionEvents fetches the signed-in user's upcoming events for the chat
// grounding; failures degrade to an empty slate rather than blocking chat.
func (h *CalendarHandler) sessionEvents(ctx context.Context, userID string, days int) []models.CalendarEvent {
	user, err := h.users.GetByID(userID)
	if err != nil {
		return nil
	}
	client, err := calendar.NewClient(ctx, user.GoogleToken)
	if err != nil {
		return nil
	}
	now := time.Now()
	events, err := client.ListEvents(ctx, now, now.AddDate(0, 0, days), 250)
	if err != nil {
		h.logger.Warn("Chat grounding fetch failed", zap.String("userID", userID), zap.Error(err))
		return nil
	}
	return events
}
