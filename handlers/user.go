package handlers

import (
	"net/http"

	userRepo "calendxr/database/repository/user"
	"calendxr/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves the signed-in user's own account.
type UserHandler struct {
	users  userRepo.UserRepository
	logger *zap.Logger
}

func NewUserHandler(users userRepo.UserRepository, logger *zap.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

// GetCurrentUser handles GET /api/users/me.
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	user, err := h.users.GetByID(c.GetString("userID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "User not found", "")
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteCurrentUser handles DELETE /api/users/me. Removing the record also
// discards the stored OAuth token.
func (h *UserHandler) DeleteCurrentUser(c *gin.Context) {
	userID := c.GetString("userID")
	if err := h.users.Delete(userID); err != nil {
		h.logger.Error("Failed to delete user", zap.String("userID", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete account", "")
		return
	}
	c.Status(http.StatusNoContent)
}
