package main

// @title Catalog Service API
// @version 1.0.0
// @description API каталога товаров: листинг, поиск, пагинация и создание записей, а также агрегированная статистика (количество, средняя/минимальная/максимальная цена, разбивка по категориям) с локальным кешем снапшота.

// @contact.name API Support
// @contact.email support@catalog-service.com

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

	_ "github.com/catalog-service/docs/swagger"
	"github.com/catalog-service/internal/config"
	httpDelivery "github.com/catalog-service/internal/delivery/http"
	"github.com/catalog-service/internal/delivery/http/handler"
	"github.com/catalog-service/internal/pkg/logger"
	"github.com/catalog-service/internal/repository/cache"
	"github.com/catalog-service/internal/repository/postgres"
	"github.com/catalog-service/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Catalog Service")
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

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	itemRepo := postgres.NewItemRepository(db)
	statsSource := postgres.NewStatsSource(db)
	cacheRepo := cache.NewCacheRepository(redisClient)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	itemUC := usecase.NewItemUseCase(
		itemRepo,
		cacheRepo,
		log,
		cfg.Cache.ListCacheTTL,
		cfg.Pagination.DefaultLimit,
		cfg.Pagination.MaxLimit,
	)

	statsUC := usecase.NewStatsUseCase(
		statsSource,
		log,
		cfg.Cache.StatsCacheTTL,
	)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	itemHandler := handler.NewItemHandler(itemUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		itemHandler,
		statsHandler,
	)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
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
