package handlers

import (
	"net/http"

	"calendxr/models"
	ai "calendxr/services/intelligence"
	"calendxr/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler answers schedule questions grounded on the caller's calendar.
type ChatHandler struct {
	aiSvc    ai.AIService
	calendar *CalendarHandler
	logger   *zap.Logger
}

func NewChatHandler(aiSvc ai.AIService, calendarHandler *CalendarHandler, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{aiSvc: aiSvc, calendar: calendarHandler, logger: logger}
}

// HandleChat handles POST /api/chat.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid chat request", err.Error())
		return
	}

	userID := c.GetString("userID")
	events := h.calendar.sessionEvents(c.Request.Context(), userID, defaultListWindowDays)

	resp, err := h.aiSvc.Chat(c.Request.Context(), req, events)
	if err != nil {
		h.logger.Error("Chat generation failed", zap.String("userID", userID), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "The assistant is unavailable right now", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}
