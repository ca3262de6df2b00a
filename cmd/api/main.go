package main

// @title Flight POI Service API
// @version 1.0.0
// @description Сервис поиска точек интереса (POI) вдоль маршрута полёта.
// @description По ICAO24 борта строится полигон поиска вокруг его позиции,
// @description после чего Overpass API (данные OpenStreetMap) возвращает POI
// @description в минимальном или подробном представлении. Дополнительно
// @description доступны метаданные сущностей Wikidata через SPARQL.

// @contact.name API Support
// @contact.email support@flight-poi-service.com

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

	_ "github.com/flight-poi-service/docs"
	"github.com/flight-poi-service/internal/config"
	httpDelivery "github.com/flight-poi-service/internal/delivery/http"
	"github.com/flight-poi-service/internal/delivery/http/handler"
	"github.com/flight-poi-service/internal/infrastructure/opensky"
	"github.com/flight-poi-service/internal/infrastructure/overpass"
	"github.com/flight-poi-service/internal/infrastructure/wikidata"
	"github.com/flight-poi-service/internal/pkg/logger"
	"github.com/flight-poi-service/internal/repository/cache"
	"github.com/flight-poi-service/internal/usecase"
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

	log.Info("Starting Flight POI Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("overpass_url", cfg.Overpass.URL),
	)

	// 3. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 4. Health check
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 5. Initialize Repositories
	// Клиенты внешних API создаются один раз и передаются обработчикам
	overpassRepo := overpass.NewOverpassClient(&cfg.Overpass, log)
	flightRepo := opensky.NewOpenSkyClient(&cfg.OpenSky, log)
	wikidataRepo := wikidata.NewWikidataClient(&cfg.Wikidata, log)
	cacheRepo := cache.NewCacheRepository(redisClient)

	log.Info("Repositories initialized")

	// 6. Initialize Use Cases
	poiUC := usecase.NewPOIUseCase(
		flightRepo,
		overpassRepo,
		cacheRepo,
		log,
		cfg.Cache.FlightCacheTTL,
		cfg.Cache.OverpassCacheTTL,
	)

	entityUC := usecase.NewEntityUseCase(
		wikidataRepo,
		log,
	)

	log.Info("Use cases initialized")

	// 7. Initialize HTTP Handlers
	poiHandler := handler.NewPOIHandler(poiUC, log)
	entityHandler := handler.NewEntityHandler(entityUC, log)

	log.Info("HTTP handlers initialized")

	// 8. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		poiHandler,
		entityHandler,
	)

	log.Info("HTTP server initialized")

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

	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
