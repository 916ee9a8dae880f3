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

	httpMetrics "runGuard/app/echo-server/metrics"
	"runGuard/app/echo-server/router"
	"runGuard/business/catalog"
	"runGuard/business/recommend"
	"runGuard/internal/middleware"
	psqlRepo "runGuard/internal/repository/postgres"
	"runGuard/internal/rest"
	"runGuard/pkg/config"
	"runGuard/pkg/database"
	"runGuard/pkg/logger"
	"runGuard/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting runGuard", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	if cfg.Database.AutoMigrate {
		if err := psqlRepo.RunMigrations(db); err != nil {
			logger.Fatal("Failed to run migrations", "error", err)
		}
	}

	scoring, err := recommend.LoadConfig(cfg.Recommend.ScoringConfigPath)
	if err != nil {
		logger.Fatal("Failed to load scoring config", "path", cfg.Recommend.ScoringConfigPath, "error", err)
	}
	scoring = scoring.WithLimits(cfg.Recommend.DefaultLimit, cfg.Recommend.MaxLimit)
	if err := scoring.Validate(); err != nil {
		logger.Fatal("Invalid scoring config", "error", err)
	}

	metrics.Init()
	httpMetrics.Init()

	// Init validate
	validate := validator.New()

	// Init repo
	routeRepo := psqlRepo.NewRouteRepository(db)
	profileRepo := psqlRepo.NewProfileRepository(db)
	historyRepo := psqlRepo.NewHistoryRepository(db)
	feedbackRepo := psqlRepo.NewFeedbackRepository(db)

	// Init service
	candidates := recommend.NewCandidateSource(routeRepo, recommend.BreakerSettings{
		MaxFailures: cfg.Recommend.BreakerFailures,
		OpenTimeout: cfg.Recommend.BreakerTimeout,
	})
	recommendService := recommend.NewService(profileRepo, historyRepo, candidates, validate, scoring)
	learner := recommend.NewFeedbackLearner(profileRepo, feedbackRepo, validate)
	catalogService := catalog.NewService(candidates)

	// Init handler
	recommendationHandler := rest.NewRecommendationHandler(recommendService, learner, cfg.Server.RequestTimeout)
	routeHandler := rest.NewRouteHandler(catalogService)

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Failed to get sql.DB", "error", err)
	}
	healthHandler := rest.NewHealthHandler(sqlDB, cfg.App.Version)

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
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.TraceMiddleware())
	e.Use(httpMetrics.Middleware())

	// Auth middleware
	authRequired := middleware.AuthMiddleware(cfg.JWT.SecretKey)

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupRecommendationRoutes(api, recommendationHandler, authRequired)
	router.SetupRouteRoutes(api, routeHandler, authRequired)
	router.SetupOpsRoutes(e, healthHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
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

	if err := sqlDB.Close(); err != nil {
		logger.Error("Database close error", "error", err)
	}

	logger.Info("Server stopped")
}
