//go:build !lambda
// +build !lambda

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cofipei/chart-api/internal/config"
	"github.com/cofipei/chart-api/internal/logger"
	"github.com/cofipei/chart-api/internal/server"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// @title           COFIPEI Chart API
// @version         1.0
// @description     Chart generation and financial report service for COFIPEI.

// @host      localhost:8000
// @BasePath  /

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-KEY
func main() {
	if err := godotenv.Load(); err != nil {
		// The .env file is optional; the environment may be set directly.
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg := config.Load()
	logger.InitLogger(cfg.Stage)
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}
	gin.SetMode(cfg.GinMode)

	ctx := context.Background()
	router := gin.New()
	router.Use(gin.Recovery())
	server.InitializeHandlers(ctx, cfg)
	server.InitializeRoutes(router)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", zap.String("port", cfg.Port), zap.String("stage", cfg.Stage))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Error starting server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exiting")
}
