package handlers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"calendxr/models"
	"calendxr/services/scheduler"
	"calendxr/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// freeTimeCacheTTL keeps repeated group lookups from re-fetching every
// member's calendar within a short window.
const freeTimeCacheTTL = 5 * time.Minute

// SchedulerHandler exposes the two scheduling strategies over HTTP.
type SchedulerHandler struct {
	service scheduler.SchedulerService
	cache   *redis.Client
	logger  *zap.Logger
}

func NewSchedulerHandler(service scheduler.SchedulerService, cache *redis.Client, logger *zap.Logger) *SchedulerHandler {
	return &SchedulerHandler{service: service, cache: cache, logger: logger}
}

// FindMeetingTimes handles POST /api/scheduler/meeting-times.
func (h *SchedulerHandler) FindMeetingTimes(c *gin.Context) {
	var req models.SchedulingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid scheduling request", err.Error())
		return
	}

	result, err := h.service.FindMeetingTimes(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, scheduler.ErrInvalidRequest) {
			utils.JSONError(c, http.StatusBadRequest, "No valid email addresses provided", "")
			return
		}
		h.logger.Error("Meeting time search failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to find meeting times", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// FreeTimeReport handles POST /api/scheduler/free-time.
func (h *SchedulerHandler) FreeTimeReport(c *gin.Context) {
	var req models.SchedulingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid scheduling request", err.Error())
		return
	}

	ctx := c.Request.Context()
	cacheKey := freeTimeCacheKey(req)
	if cached := h.cachedReport(ctx, cacheKey); cached != nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	result, err := h.service.FreeTimeReport(ctx, req)
	if err != nil {
		if errors.Is(err, scheduler.ErrInvalidRequest) {
			utils.JSONError(c, http.StatusBadRequest, "No valid email addresses provided", "")
			return
		}
		h.logger.Error("Free time report failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute free time", err.Error())
		return
	}

	h.storeReport(ctx, cacheKey, result)
	c.JSON(http.StatusOK, result)
}

func freeTimeCacheKey(req models.SchedulingRequest) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%d", strings.Join(req.Emails, ","), req.LookAheadDays)))
	return "scheduler:freetime:" + hex.EncodeToString(sum[:])
}

func (h *SchedulerHandler) cachedReport(ctx context.Context, key string) *models.FreeTimeResult {
	if h.cache == nil {
		return nil
	}
	data, err := h.cache.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			h.logger.Warn("Free time cache read failed", zap.Error(err))
		}
		return nil
	}
	var result models.FreeTimeResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil
	}
	return &result
}

func (h *SchedulerHandler) storeReport(ctx context.Context, key string, result *models.FreeTimeResult) {
	if h.cache == nil {
		return
	}
	b, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := h.cache.Set(ctx, key, b, freeTimeCacheTTL).Err(); err != nil {
		h.logger.Warn("Free time cache write failed", zap.Error(err))
	}
}
