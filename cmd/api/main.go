package main

// @title Map Annotator API
// @version 1.0.0
// @description Сессия карты: загрузка, маркеры по клику, окно выбранного маркера и поиск адреса с подсказками.

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

	"go.uber.org/zap"

	_ "github.com/map-annotator/docs/swagger"
	"github.com/map-annotator/internal/config"
	httpDelivery "github.com/map-annotator/internal/delivery/http"
	"github.com/map-annotator/internal/delivery/http/handler"
	"github.com/map-annotator/internal/domain"
	"github.com/map-annotator/internal/domain/repository"
	"github.com/map-annotator/internal/infrastructure/mapbox"
	"github.com/map-annotator/internal/infrastructure/surface"
	"github.com/map-annotator/internal/pkg/logger"
	"github.com/map-annotator/internal/repository/cache"
	"github.com/map-annotator/internal/usecase"
	"github.com/map-annotator/internal/worker"
	"github.com/map-annotator/internal/worker/loader"
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

	log.Info("Starting Map Annotator")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("redis_addr", cfg.GetRedisAddr()),
		zap.Strings("map_libraries", cfg.Map.Libraries),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
	)

	// 3. Redis (опционально: без него подсказки не кешируются)
	var (
		redisClient *cache.Redis
		cacheRepo   repository.CacheRepository
		cacheHealth handler.HealthChecker
	)
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Warn("Redis unavailable, suggestion cache disabled", zap.Error(err))
		} else {
			cacheRepo = cache.NewCacheRepository(redisClient)
			cacheHealth = redisClient
		}
	}

	// 4. Infrastructure
	mapboxClient := mapbox.NewMapboxClient(&cfg.Mapbox, log)
	mapLoader := mapbox.NewLoader(mapboxClient, cfg.Map.Libraries, log)

	center := domain.Coordinate{Lat: cfg.Map.DefaultLat, Lng: cfg.Map.DefaultLng}
	viewState := surface.NewViewState(domain.ViewCenter{Center: center, Zoom: cfg.Map.DefaultZoom}, log)

	// 5. Use cases
	readiness := usecase.NewReadiness()
	viewportUC := usecase.NewMapViewportUseCase(readiness, log)
	searchUC := usecase.NewAddressSearchUseCase(
		mapboxClient,
		mapboxClient,
		cacheRepo,
		readiness,
		viewportUC.PanTo,
		domain.BiasRegion{Center: center, RadiusMeters: cfg.Search.BiasRadius},
		cfg.Cache.SuggestionsTTL,
		log,
	)

	log.Info("Use cases initialized")

	// 6. Workers: загрузка карты идёт в фоне, HTTP отвечает "loading" до её завершения
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	workerManager := worker.NewWorkerManager(worker.DefaultShutdownTimeout, log)
	workerManager.Register(loader.NewMapLoadWorker(
		mapLoader,
		readiness,
		viewportUC,
		viewState,
		cfg.Map.LoadTimeout,
		log,
	))
	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// 7. HTTP
	server := httpDelivery.NewServer(
		cfg,
		log,
		handler.NewHealthHandler(readiness, cacheHealth, log),
		handler.NewConfigHandler(cfg),
		handler.NewViewportHandler(viewportUC, viewState, log),
		handler.NewSearchHandler(searchUC, log),
	)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 8. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	searchUC.Close()

	if err := workerManager.Stop(); err != nil {
		log.Error("Workers shutdown error", zap.Error(err))
	}
	cancel()

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
