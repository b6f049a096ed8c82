package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"calendxr/config"
	"calendxr/database"
	userRepoPkg "calendxr/database/repository/user"
	"calendxr/handlers"
	"calendxr/middleware"
	"calendxr/routes"
	ai "calendxr/services/intelligence"
	"calendxr/services/scheduler"
	"calendxr/services/vision"
	"calendxr/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitChatContextCache()

	ctx := context.Background()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	geminiClient, err := ai.NewGeminiClient(ctx, config.AppConfig.GeminiAPIKey)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
	}
	ctxStore := ai.NewRedisContextStore(utils.GetChatContextClient(), 30*time.Minute)
	aiSvc := ai.NewDefaultAIService(geminiClient, ctxStore)

	ocrSvc, err := vision.NewGoogleOCRService(ctx)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Vision OCR service: %v", err)
	}
	defer ocrSvc.Close()

	storageSvc, err := utils.Cloudinary()
	if err != nil {
		// Flyer archiving is optional; the extraction flow works without it.
		logger.Sugar().Warnf("main: flyer storage disabled: %v", err)
		storageSvc = nil
	}

	schedulerSvc := &scheduler.DefaultSchedulerService{
		Events:   &scheduler.CalendarEventSource{Users: userRepo},
		Analyzer: aiSvc,
	}

	// handlers.
	calendarHandler := handlers.NewCalendarHandler(userRepo, logger)
	handlerBundle := &handlers.HandlerBundle{
		Auth:      handlers.NewAuthHandler(userRepo, logger),
		Users:     handlers.NewUserHandler(userRepo, logger),
		Calendar:  calendarHandler,
		Scheduler: handlers.NewSchedulerHandler(schedulerSvc, utils.GetCacheClient(), logger),
		Chat:      handlers.NewChatHandler(aiSvc, calendarHandler, logger),
		Vision:    handlers.NewVisionHandler(ocrSvc, aiSvc, storageSvc, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetChatContextClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
