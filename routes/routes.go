package routes

import (
	"net/http"
	"time"

	"calendxr/handlers"
	"calendxr/middleware"
	"calendxr/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterAuthRoutes registers the public sign-in endpoint.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/google", hb.Auth.GoogleSignIn)
	}
}

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.SessionAuthMiddleware())
		api.GET("/me", hb.Users.GetCurrentUser)
		api.DELETE("/me", hb.Users.DeleteCurrentUser)
	}
}

// RegisterCalendarRoutes registers calendar CRUD endpoints.
func RegisterCalendarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/calendar")
	{
		api.Use(middleware.SessionAuthMiddleware())
		api.GET("/events", hb.Calendar.ListEvents)
		api.POST("/events", hb.Calendar.CreateEvent)
		api.PATCH("/events/:id", hb.Calendar.UpdateEvent)
		api.DELETE("/events/:id", hb.Calendar.DeleteEvent)
	}
}

// RegisterSchedulerRoutes registers the group scheduling endpoints.
func RegisterSchedulerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/scheduler")
	{
		api.Use(middleware.SessionAuthMiddleware())
		api.POST("/meeting-times", hb.Scheduler.FindMeetingTimes)
		api.POST("/free-time", hb.Scheduler.FreeTimeReport)
	}
}

// RegisterAIRoutes registers the chatbot and flyer extraction endpoints.
func RegisterAIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.Use(middleware.SessionAuthMiddleware())
		api.POST("/chat", hb.Chat.HandleChat)
		api.POST("/vision/extract-event", hb.Vision.ExtractEvent)
	}
}

// RegisterRoutes wires CORS and every route group onto the engine.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterCalendarRoutes(r, hb)
	RegisterSchedulerRoutes(r, hb)
	RegisterAIRoutes(r, hb)
}
