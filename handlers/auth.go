package handlers

import (
	"net/http"
	"time"

	userRepo "calendxr/database/repository/user"
	"calendxr/models"
	"calendxr/services/calendar"
	"calendxr/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// sessionDuration is how long an issued session token stays valid.
const sessionDuration = 7 * 24 * time.Hour

// GoogleSignInRequest carries the authorization code from the OAuth consent
// flow performed by the web client.
type GoogleSignInRequest struct {
	Code string `json:"code" binding:"required"`
}

// GoogleSignInResponse returns the session token and the synced profile.
type GoogleSignInResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// AuthHandler exchanges Google OAuth codes for Calendxr sessions.
type AuthHandler struct {
	users  userRepo.UserRepository
	logger *zap.Logger
}

func NewAuthHandler(users userRepo.UserRepository, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{users: users, logger: logger}
}

// GoogleSignIn handles POST /api/auth/google.
func (h *AuthHandler) GoogleSignIn(c *gin.Context) {
	var req GoogleSignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid sign-in request", err.Error())
		return
	}

	ctx := c.Request.Context()
	conf := calendar.OAuthConfig()

	token, err := conf.Exchange(ctx, req.Code)
	if err != nil {
		h.logger.Warn("OAuth code exchange failed", zap.Error(err))
		utils.JSONError(c, http.StatusUnauthorized, "Google sign-in failed", err.Error())
		return
	}

	svc, err := oauth2api.NewService(ctx, option.WithTokenSource(conf.TokenSource(ctx, token)))
	if err != nil {
		h.logger.Error("Failed to build userinfo service", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Google sign-in failed", "")
		return
	}
	info, err := svc.Userinfo.Get().Do()
	if err != nil || info.Email == "" {
		h.logger.Error("Failed to fetch Google profile", zap.Error(err))
		utils.JSONError(c, http.StatusUnauthorized, "Google sign-in failed", "could not resolve account profile")
		return
	}

	user, err := h.users.Upsert(&models.User{
		Email:       info.Email,
		Name:        info.Name,
		Picture:     info.Picture,
		GoogleToken: token,
	})
	if err != nil {
		h.logger.Error("Failed to persist user", zap.String("email", info.Email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to sync account", "")
		return
	}

	sessionToken, err := utils.GenerateSessionToken(user.ID, user.Email, sessionDuration)
	if err != nil {
		h.logger.Error("Failed to issue session token", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create session", "")
		return
	}

	c.JSON(http.StatusOK, GoogleSignInResponse{Token: sessionToken, User: *user})
}
