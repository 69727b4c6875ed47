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
	"vestiaKiosk/app/echo-server/metrics"
	"vestiaKiosk/app/echo-server/router"
	"vestiaKiosk/business/analytics"
	"vestiaKiosk/business/catalog"
	"vestiaKiosk/business/feedback"
	"vestiaKiosk/business/outfit"
	"vestiaKiosk/business/request"
	"vestiaKiosk/business/session"
	"vestiaKiosk/domain"
	"vestiaKiosk/internal/middleware"
	"vestiaKiosk/internal/repository/breaker"
	"vestiaKiosk/internal/repository/memory"
	psqlRepo "vestiaKiosk/internal/repository/postgres"
	redisRepo "vestiaKiosk/internal/repository/redis"
	"vestiaKiosk/internal/rest"
	"vestiaKiosk/pkg/config"
	"vestiaKiosk/pkg/database"
	redisClient "vestiaKiosk/pkg/database/redis"
	"vestiaKiosk/pkg/logger"
	pkgmetrics "vestiaKiosk/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// repositories is the storage wiring chosen by STORAGE_DRIVER.
type repositories struct {
	catalog  outfit.CatalogRepository
	profiles outfit.ProfileRepository
	sessions breaker.Backend
	requests requestStore
	feedback feedbackStore
	closers  []func() error
}

type requestStore interface {
	request.RequestRepository
	analytics.RequestRepository
}

type feedbackStore interface {
	feedback.FeedbackRepository
	analytics.FeedbackRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.InitWithLevel(cfg.App.Environment, cfg.App.LogLevel)
	logger.Info("Starting Vestia Kiosk", "version", cfg.App.Version, "storage", cfg.Storage.Driver)

	pkgmetrics.Init()

	scoring := outfit.DefaultConfig()
	if cfg.Seed.ScoringFile != "" {
		scoring, err = outfit.LoadConfigFile(cfg.Seed.ScoringFile)
		if err != nil {
			logger.Fatal("Failed to load scoring config", "file", cfg.Seed.ScoringFile, "error", err)
		}
		logger.Info("Scoring config loaded", "file", cfg.Seed.ScoringFile)
	}

	items, err := memory.LoadCatalogFile(cfg.Seed.CatalogFile)
	if err != nil {
		logger.Fatal("Failed to load catalog seed", "file", cfg.Seed.CatalogFile, "error", err)
	}
	profiles, err := loadProfiles(cfg.Seed.ProfilesFile)
	if err != nil {
		logger.Fatal("Failed to load profile seed", "file", cfg.Seed.ProfilesFile, "error", err)
	}

	repos, err := initRepositories(cfg, items, profiles)
	if err != nil {
		logger.Fatal("Failed to init storage", "driver", cfg.Storage.Driver, "error", err)
	}

	// logger.Fatal exits without running deferred calls, so storage is
	// closed here first.
	fatal := func(msg string, args ...any) {
		repos.close()
		logger.Fatal(msg, args...)
	}

	sessionRepo := breaker.NewSessionRepository(repos.sessions, breaker.Settings{
		Name:        "session-store",
		MaxFailures: cfg.Breaker.MaxFailures,
		OpenTimeout: cfg.Breaker.OpenTimeout,
	})

	// Init service
	outfitService, err := outfit.NewOutfitService(repos.catalog, sessionRepo, repos.profiles, scoring)
	if err != nil {
		fatal("Failed to init outfit service", "error", err)
	}
	sessionService := session.NewSessionService(sessionRepo, repos.catalog)
	catalogService := catalog.NewCatalogService(repos.catalog)
	requestService := request.NewRequestService(repos.requests, sessionService)
	feedbackService := feedback.NewFeedbackService(repos.feedback)
	analyticsService := analytics.NewAnalyticsService(sessionRepo, repos.requests, repos.feedback)

	// Init handler
	outfitHandler := rest.NewOutfitHandler(outfitService, cfg.Server.RequestTimeout)
	sessionHandler := rest.NewSessionHandler(sessionService)
	catalogHandler := rest.NewCatalogHandler(catalogService)
	requestHandler := rest.NewRequestHandler(requestService)
	feedbackHandler := rest.NewFeedbackHandler(feedbackService)
	analyticsHandler := rest.NewAnalyticsHandler(analyticsService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = rest.JSONSerializer{}

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))
	e.Use(middleware.TraceID())
	e.Use(middleware.RequestLogger())
	e.Use(metrics.Middleware())

	e.GET("/metrics", metrics.Handler())
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Setup routes
	api := e.Group("/api/v1")
	router.SetOutfitRoutes(api, outfitHandler)
	router.SetSessionRoutes(api, sessionHandler)
	router.SetCatalogRoutes(api, catalogHandler)
	router.SetRequestRoutes(api, requestHandler)
	router.SetFeedbackRoutes(api, feedbackHandler)
	router.SetAnalyticsRoutes(api, analyticsHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	repos.close()
	logger.Info("Server stopped")
}

// loadProfiles treats a missing profile seed as no registered customers.
func loadProfiles(path string) ([]domain.CustomerProfile, error) {
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Warn("Profile seed not found, continuing without registered profiles", "file", path)
		return nil, nil
	}
	return memory.LoadProfilesFile(path)
}

func initRepositories(cfg *config.Config, items []domain.CatalogItem, profiles []domain.CustomerProfile) (*repositories, error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		db, err := database.InitPostgres(cfg)
		if err != nil {
			return nil, err
		}
		logger.Info("Database connected successfully")

		closeDB := func() error { return database.ClosePostgres(db) }

		if err := psqlRepo.Migrate(db); err != nil {
			_ = closeDB()
			return nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := psqlRepo.Seed(ctx, db, items, profiles); err != nil {
			_ = closeDB()
			return nil, err
		}

		return &repositories{
			catalog:  psqlRepo.NewCatalogRepository(db),
			profiles: psqlRepo.NewProfileRepository(db),
			sessions: psqlRepo.NewScanEventRepository(db),
			requests: psqlRepo.NewRequestRepository(db),
			feedback: psqlRepo.NewFeedbackRepository(db),
			closers:  []func() error{closeDB},
		}, nil

	case config.DriverRedis:
		client, err := redisClient.NewRedisClient(cfg)
		if err != nil {
			return nil, err
		}
		logger.Info("Redis connected successfully")

		return &repositories{
			catalog:  memory.NewCatalogRepository(items),
			profiles: memory.NewProfileRepository(profiles),
			sessions: redisRepo.NewSessionRepository(client),
			requests: memory.NewRequestRepository(),
			feedback: memory.NewFeedbackRepository(),
			closers:  []func() error{func() error { return redisClient.CloseRedisClient(client) }},
		}, nil

	default:
		return &repositories{
			catalog:  memory.NewCatalogRepository(items),
			profiles: memory.NewProfileRepository(profiles),
			sessions: memory.NewSessionRepository(),
			requests: memory.NewRequestRepository(),
			feedback: memory.NewFeedbackRepository(),
		}, nil
	}
}

// close is safe to call more than once.
func (r *repositories) close() {
	closers := r.closers
	r.closers = nil
	for _, fn := range closers {
		if err := fn(); err != nil {
			logger.Error("Failed to close storage", "error", err)
		}
	}
}
