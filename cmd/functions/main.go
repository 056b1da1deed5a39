package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/localnerve/articles-api/internal/config"
	"github.com/localnerve/articles-api/internal/database"
	"github.com/localnerve/articles-api/internal/logger"
	"github.com/localnerve/articles-api/internal/server"
	"go.uber.org/zap"
)

// The function host forwards HTTP requests to FUNCTIONS_CUSTOMHANDLER_PORT
func main() {
	bootLog := logger.New(logger.Config{Env: os.Getenv("LOG_ENV"), Level: os.Getenv("LOG_LEVEL")})

	cfg, err := config.Load()
	if err != nil {
		bootLog.Fatal("Failed to load configuration", zap.Error(err))
	}

	log := logger.New(logger.Config{Env: cfg.LogEnv, Level: cfg.LogLevel, ServiceName: server.ServiceName + "-functions"})
	defer func() { _ = log.Sync() }()

	store, err := database.OpenStore(context.Background(), cfg, log)
	if err != nil {
		log.Fatal("Failed to open store", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = store.Close(ctx)
	}()

	app := server.NewFunctions(cfg, store, log)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		log.Info("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	log.Info("Starting function handler", zap.String("port", cfg.FunctionsPort))
	if err := app.Listen(":" + cfg.FunctionsPort); err != nil {
		log.Error("Function handler stopped", zap.Error(err))
	}
}
