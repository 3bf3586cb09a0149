package main

// @title SportOps Analytics API
// @version 1.0.0
// @description Сервис операционной аналитики спортивных событий. Строит сводку активности за день: почасовые интервалы, пиковую нагрузку, отклонение от исторической нормы, разбивки по видам спорта и регионам, таймлайн событий.
// @description
// @description Основные возможности:
// @description - Сводка активности дня с фильтрами по часу и области карты
// @description - Таймлайн событий, отсортированный по статусу времени (LIVE, SOON, UPCOMING, ENDED)
// @description - Приём событий поштучно и пакетами
// @description - Выборка событий дня в пределах bounding box

// @contact.name API Support
// @contact.email support@sportops-analytics.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/sportops-analytics/docs"
	"github.com/sportops-analytics/internal/analytics"
	"github.com/sportops-analytics/internal/config"
	httpDelivery "github.com/sportops-analytics/internal/delivery/http"
	"github.com/sportops-analytics/internal/delivery/http/handler"
	"github.com/sportops-analytics/internal/pkg/logger"
	"github.com/sportops-analytics/internal/repository/cache"
	"github.com/sportops-analytics/internal/repository/postgres"
	redisRepo "github.com/sportops-analytics/internal/repository/redis"
	"github.com/sportops-analytics/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting SportOps Analytics")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks and schema
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := db.EnsureSchema(ctx); err != nil {
		log.Fatal("Failed to ensure database schema", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories
	eventRepo := postgres.NewEventRepository(db, log)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	log.Info("Repositories initialized")

	// 7. Initialize analytics engine and use cases
	engine := analytics.NewEngine(nil, nil)

	summaryUC := usecase.NewSummaryUseCase(
		eventRepo,
		cacheRepo,
		engine,
		cfg.Analytics.HistoryWindowDays,
		cfg.Cache.SummaryCacheTTL,
		log,
	)

	eventUC := usecase.NewEventUseCase(
		eventRepo,
		streamRepo,
		log,
	)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers and server
	summaryHandler := handler.NewSummaryHandler(summaryUC, log)
	eventHandler := handler.NewEventHandler(eventUC, log)

	server := httpDelivery.NewServer(cfg, log, summaryHandler, eventHandler)

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
