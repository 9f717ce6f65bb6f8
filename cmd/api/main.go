// Package main provides the main entry point for the Vitabox API
// server: the supplement recommendation and subscription engine.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/vitabox/v1/internal/application/engine"
	"github.com/vitabox/v1/internal/application/goals"
	"github.com/vitabox/v1/internal/infrastructure/ai/ollama"
	"github.com/vitabox/v1/internal/infrastructure/ai/openai"
	"github.com/vitabox/v1/internal/infrastructure/config"
	"github.com/vitabox/v1/internal/infrastructure/http/apiserver"
	"github.com/vitabox/v1/internal/infrastructure/persistence/catalogfile"
	gormstore "github.com/vitabox/v1/internal/infrastructure/persistence/gorm"
	redisstore "github.com/vitabox/v1/internal/infrastructure/persistence/redis"
	"github.com/vitabox/v1/internal/ports/outbound"
	"github.com/vitabox/v1/pkg/healthcheck"
	"github.com/vitabox/v1/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:       cfg.App.LogLevel,
		Format:      cfg.App.LogFormat,
		Development: cfg.IsDevelopment(),
	})
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer zapLogger.Sync()

	if err := run(cfg, zapLogger); err != nil {
		zapLogger.Fatal("Application failed", zap.Error(err))
	}
}

func run(cfg *config.Config, zapLogger *zap.Logger) error {
	// Catalog is loaded once and shared by reference.
	cat, err := catalogfile.Load(cfg.Catalog.Path)
	if err != nil {
		return err
	}
	zapLogger.Info("Catalog loaded", zap.Int("entries", cat.Len()))

	db, err := gormstore.Connect(cfg)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	redisClient := redisstore.NewClient(cfg)
	defer redisClient.Close()

	subscriptionRepo := gormstore.NewSubscriptionRepository(db)
	sessionCache := redisstore.NewSessionCache(redisClient, zapLogger)

	var advisor outbound.AdvisorService
	if cfg.AI.Provider == "ollama" {
		advisor = ollama.NewClient(cfg, zapLogger)
	} else {
		advisor = openai.NewClient(cfg, zapLogger)
	}

	engineService := engine.NewService(cat, subscriptionRepo, sessionCache, advisor, zapLogger)
	goalStore := goals.NewStore()

	checker := healthcheck.New(cfg.App.Version, 0)
	checker.Register("database", func(ctx context.Context) error {
		return sqlDB.PingContext(ctx)
	})
	checker.Register("redis", func(ctx context.Context) error {
		return redisClient.Ping(ctx).Err()
	})

	server := apiserver.New(cfg, zapLogger, engineService, goalStore, checker)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(ctx)
}
