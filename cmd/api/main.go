package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/stepsyncdev/stepsync/pkg/validator"

	"github.com/stepsyncdev/stepsync/internal/adapter/handler"
	"github.com/stepsyncdev/stepsync/internal/adapter/repository"
	"github.com/stepsyncdev/stepsync/internal/infrastructure/cache"
	"github.com/stepsyncdev/stepsync/internal/infrastructure/database"
	"github.com/stepsyncdev/stepsync/internal/infrastructure/storage"
	"github.com/stepsyncdev/stepsync/internal/usecase/preview"
	projectuse "github.com/stepsyncdev/stepsync/internal/usecase/project"
	renderuse "github.com/stepsyncdev/stepsync/internal/usecase/render"
	"github.com/stepsyncdev/stepsync/pkg/config"
	"github.com/stepsyncdev/stepsync/pkg/render"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run migrations only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate in CI/CD.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
		}
		log.Println("🔄 Applying migrations (development only) ...")
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; use sql-migrate for schema migrations in CI/CD/production")
	}

	// Initialize Redis
	log.Println("📦 Connecting to Redis...")
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize media storage
	log.Println("📦 Connecting to media storage...")
	mediaStore, err := storage.NewMediaStore(&cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to initialize media storage: %v", err)
	}

	// Initialize render service client
	log.Println("🎬 Initializing render service client...")
	renderClient := render.NewClient(&cfg.Render)

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	projectRepo := repository.NewProjectRepository(db)
	renderJobRepo := repository.NewRenderJobRepository(db)

	// Initialize services
	log.Println("⚙️  Initializing services...")
	projectService := projectuse.NewProjectService(projectRepo, redisClient, logger)
	previewService := preview.NewPreviewService(projectRepo, logger)
	renderService := renderuse.NewRenderService(projectRepo, renderJobRepo, mediaStore, renderClient, logger)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	projectHandler := handler.NewProjectHandler(projectService, logger)
	configHandler := handler.NewConfigHandler(projectService, logger)
	mediaHandler := handler.NewMediaHandler(projectService, mediaStore, logger)
	sessionHandler := handler.NewSessionHandler(previewService, logger)
	renderHandler := handler.NewRenderHandler(renderService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, projectHandler, configHandler, mediaHandler, sessionHandler, renderHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
