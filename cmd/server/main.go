package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/routemark/service-routes/internal/application"
	"github.com/routemark/service-routes/internal/config"
	"github.com/routemark/service-routes/internal/database"
	"github.com/routemark/service-routes/internal/events"
	"github.com/routemark/service-routes/internal/handler"
	"github.com/routemark/service-routes/internal/health"
	"github.com/routemark/service-routes/internal/logger"
	"github.com/routemark/service-routes/internal/middleware"
	"github.com/routemark/service-routes/internal/repository"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, "service-routes")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting service-routes",
		zap.String("port", cfg.Port),
	)

	// Connect to database
	db, err := database.Connect(cfg.DBConfig, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run database migrations
	if cfg.AppEnv == "development" {
		if err := db.AutoMigrate(&repository.RouteModel{}); err != nil {
			log.Fatal("failed to run auto-migration", zap.Error(err))
		}
		log.Info("database migration completed (dev auto-migrate)")
	} else {
		if err := database.RunMigrations(cfg.DBConfig.DatabaseURL(), "migrations", log); err != nil {
			log.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	// Initialize Kafka producer (nil when no brokers configured)
	producer := events.NewProducer(cfg.KafkaBrokers, log)
	defer func() { _ = producer.Close() }()

	// Initialize repository and application services
	routeRepo := repository.NewGormRouteRepository(db)
	routeService := application.NewRouteService(routeRepo, producer, log)
	identityService := application.NewIdentityService()

	// Initialize HTTP handlers
	routeHandler := handler.NewRouteHandler(routeService)
	metaHandler := handler.NewMetaHandler(identityService, cfg.GoogleMapsAPIKey)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))
	router.Use(middleware.SecurityHeadersMiddleware())

	// Register health check routes
	healthHandler := health.NewHandler(db, "service-routes")
	healthHandler.RegisterRoutes(router)

	// Register routes
	routeHandler.RegisterRoutes(router)
	metaHandler.RegisterRoutes(router)

	// Static pages for the map client
	router.StaticFile("/", "web/index.html")
	router.StaticFile("/saved-routes.html", "web/saved-routes.html")

	router.NoRoute(handler.NotFound)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down service-routes...")

	// Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("service-routes stopped")
}
