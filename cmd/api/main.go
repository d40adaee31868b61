package main

// @title Service Directory API
// @version 1.0.0
// @description Сервис каталога локальных услуг. Предоставляет API для радиусного поиска сервисов по координатам, справочника административных делений, форматирования адресов по схеме страны и управления избранным пользователя.
// @description
// @description Основные возможности:
// @description - Регистрация и вход пользователей (JWT)
// @description - Поиск сервисов в радиусе с сортировкой по дистанции
// @description - Популярные сервисы и фильтрация по типу
// @description - Страны, административные деления и форматирование адресов
// @description - Избранные сервисы пользователя

// @contact.name API Support
// @contact.email support@service-directory.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey api_key
// @in header
// @name Authorization

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/service-directory/docs/swagger"
	"github.com/service-directory/internal/config"
	httpDelivery "github.com/service-directory/internal/delivery/http"
	"github.com/service-directory/internal/delivery/http/handler"
	"github.com/service-directory/internal/pkg/logger"
	"github.com/service-directory/internal/pkg/token"
	"github.com/service-directory/internal/repository/cache"
	"github.com/service-directory/internal/repository/postgres"
	"github.com/service-directory/internal/usecase"
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

	log.Info("Starting Service Directory")
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
	serviceRepo := postgres.NewServiceRepository(db)
	divisionRepo := postgres.NewDivisionRepository(db)
	userRepo := postgres.NewUserRepository(db)
	favoriteRepo := postgres.NewFavoriteRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	tokenManager := token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	enricher := usecase.NewEnricher(divisionRepo, favoriteRepo, log)

	authUC := usecase.NewAuthUseCase(userRepo, tokenManager, log)

	searchUC := usecase.NewSearchUseCase(
		serviceRepo,
		favoriteRepo,
		cacheRepo,
		enricher,
		log,
		cfg.Search,
		cfg.Cache.PopularCacheTTL,
	)

	addressUC := usecase.NewAddressUseCase(
		divisionRepo,
		cacheRepo,
		log,
		cfg.Cache.DivisionsCacheTTL,
	)

	favoriteUC := usecase.NewFavoriteUseCase(
		favoriteRepo,
		serviceRepo,
		enricher,
		log,
	)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	authHandler := handler.NewAuthHandler(authUC, log)
	serviceHandler := handler.NewServiceHandler(searchUC, log)
	addressHandler := handler.NewAddressHandler(addressUC, log)
	favoriteHandler := handler.NewFavoriteHandler(favoriteUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		db,
		redisClient,
		tokenManager,
		authHandler,
		serviceHandler,
		addressHandler,
		favoriteHandler,
	)

	log.Info("HTTP server initialized")

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
