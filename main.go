package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/config"
	"storefront/controllers"
	"storefront/database"
	"storefront/kafka"
	"storefront/logger"
	"storefront/repository"
	"storefront/routes"
	"storefront/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Initialize(cfg.Env)
	defer zap.L().Sync()

	// Redis backs the session carts and, optionally, the snapshot store.
	redisClient, err := database.NewRedisClient(cfg.RedisURL)
	if err != nil {
		zap.L().Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// In-memory state, seeded with the demo data and overwritten from the
	// snapshot store when one is configured.
	catalogRepo := repository.NewCatalogRepository(repository.SeedProducts())
	salesRepo := repository.NewSalesRepository(repository.SeedSales())
	userRepo := repository.NewUserRepository(repository.SeedUsers())
	cartRepo := repository.NewCartRepository(redisClient, cfg.CartTTL)

	snapshots := newSnapshotStore(cfg, redisClient)
	if snapshots != nil {
		if err := repository.LoadState(context.Background(), snapshots, catalogRepo, salesRepo); err != nil {
			zap.L().Fatal("Failed to restore snapshot state", zap.Error(err))
		}
	}

	producer := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
	defer producer.Close()

	var generator services.TextGenerator
	if cfg.GeminiAPIKey != "" {
		g, err := services.NewGeminiGenerator(context.Background(), cfg.GeminiAPIKey)
		if err != nil {
			zap.L().Warn("Gemini client unavailable, AI copy will use fallbacks", zap.Error(err))
		} else {
			generator = g
		}
	}

	tokenService := services.NewTokenService(cfg.JWTSecret)
	cartEngine := services.NewCartService(catalogRepo, salesRepo)
	catalogService := services.NewCatalogService(catalogRepo)
	reportingService := services.NewReportingService(salesRepo)
	insightService := services.NewInsightService(generator)
	persister := controllers.NewPersister(snapshots, catalogRepo, salesRepo)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.RequestLogger())

	routes.Register(router, routes.Deps{
		Auth:     controllers.NewAuthController(userRepo, tokenService, cartRepo),
		Cart:     controllers.NewCartController(cartRepo, catalogRepo, userRepo, cartEngine, producer, persister),
		Products: controllers.NewProductController(catalogService, insightService, persister),
		Admin:    controllers.NewAdminController(reportingService, insightService, userRepo),
		Tokens:   tokenService,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		zap.L().Info("Storefront is running", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	zap.L().Info("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Fatal("Shutdown error", zap.Error(err))
	}
	zap.L().Info("Server shutdown complete")
}
