package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/johnquangdev/meeting-manager/pkg/validator"

	"github.com/johnquangdev/meeting-manager/internal/adapter/handler"
	"github.com/johnquangdev/meeting-manager/internal/adapter/repository"
	"github.com/johnquangdev/meeting-manager/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-manager/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-manager/internal/infrastructure/storage"
	"github.com/johnquangdev/meeting-manager/internal/usecase/pipeline"
	pkgai "github.com/johnquangdev/meeting-manager/pkg/ai"
	"github.com/johnquangdev/meeting-manager/pkg/config"
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
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
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
	// Production deployments should manage schema via sql-migrate.
	if cfg.Database.AutoMigrate {
		if cfg.IsProduction() {
			log.Fatalf("AutoMigrate is enabled in production. Disable DATABASE_AUTO_MIGRATE or manage schema with sql-migrate.")
		}
		log.Println("🔄 Applying schema migrations (development only) ...")
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; use sql-migrate for schema migrations in CI/CD/production")
	}

	// Initialize status cache. Redis is preferred; without it the cache
	// degrades to in-process memory and polling still works.
	log.Println("📦 Connecting to Redis...")
	var statusStore cache.Store
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		logger.Warn("⚠️ Redis unavailable, falling back to in-memory status cache", zap.Error(err))
		statusStore = cache.NewMemoryStore()
	} else {
		defer redisClient.Close()
		statusStore = cache.NewRedisStore(redisClient)
	}
	statusCache := cache.NewStatusCache(statusStore, cfg.Pipeline.CacheTTL)

	// Initialize artifact storage
	log.Println("🗄️  Initializing artifact storage...")
	artifactStore, err := storage.New(&cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	recordRepo := repository.NewMeetingRecordRepository(db)
	participantRepo := repository.NewParticipantRepository(db)
	topicRepo := repository.NewTopicRepository(db)
	decisionRepo := repository.NewDecisionRepository(db)
	actionItemRepo := repository.NewActionItemRepository(db)
	followUpRepo := repository.NewFollowUpRepository(db)

	// Initialize AI clients
	log.Println("🤖 Initializing AI clients...")
	bailianClient := pkgai.NewBailianClient(&cfg.Bailian)
	qwenClient := pkgai.NewQwenClient(&cfg.Qwen)

	// Initialize the processing pipeline
	log.Println("🔬 Initializing processing pipeline...")
	tracker := pipeline.NewStatusTracker(recordRepo, statusCache, logger)
	svc, err := pipeline.NewService(pipeline.Deps{
		Records:      recordRepo,
		Participants: participantRepo,
		Topics:       topicRepo,
		Decisions:    decisionRepo,
		Actions:      actionItemRepo,
		FollowUps:    followUpRepo,
		Transcriber:  pipeline.NewTranscriber(artifactStore, bailianClient, logger),
		Extractor:    pipeline.NewExtractor(qwenClient, logger),
		Tracker:      tracker,
	}, cfg.Pipeline.WorkerCount, cfg.Pipeline.TaskTimeout, logger)
	if err != nil {
		log.Fatalf("Failed to initialize pipeline: %v", err)
	}
	defer svc.Release()

	// Initialize meeting handler
	log.Println("🚀 Initializing meeting handler...")
	meetingHandler := handler.NewMeeting(handler.MeetingDeps{
		Records:      recordRepo,
		Participants: participantRepo,
		Topics:       topicRepo,
		Decisions:    decisionRepo,
		Actions:      actionItemRepo,
		FollowUps:    followUpRepo,
		Store:        artifactStore,
		Pipeline:     svc,
	}, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, meetingHandler)
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

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
