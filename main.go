package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gymdesk/config"
	"gymdesk/gymapi"
	"gymdesk/handlers"
	"gymdesk/middleware"
	"gymdesk/routes"
	"gymdesk/schedule"
	"gymdesk/session"
	"gymdesk/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionCache()
	utils.StartHealthMonitor(utils.GetSessionCacheClient())

	api := gymapi.NewClient(config.AppConfig.APIBaseURL)
	tokens := session.NewRedisTokenStore(utils.GetSessionCacheClient())
	sessions := session.NewManager(api, tokens, logger)

	// Restore a persisted login before serving; a rejected token just means
	// the process starts logged out.
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 10*time.Second)
	if err := sessions.CheckAuth(startupCtx); err != nil {
		logger.Sugar().Warnf("main: no session restored: %v", err)
	}
	cancelStartup()

	weeks := schedule.NewCalculator(nil)
	viewSet := handlers.NewViewSet(api, sessions, weeks)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.RateLimitMiddleware())

	routes.RegisterRoutes(router, viewSet, sessions)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "3000"
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	sessions.Dispose()
	logger.Sugar().Info("main: server stopped gracefully")
}
