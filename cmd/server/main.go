// Package main is the entry point for the DevTrack API server.
//
// It wires configuration, logging, persistence, the dashboard cache and the
// HTTP layer together, then runs the server until an interrupt signal.
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

	appproject "github.com/devtrack/backend/internal/application/project"
	"github.com/devtrack/backend/internal/domain/shared"
	"github.com/devtrack/backend/internal/infrastructure/auth"
	"github.com/devtrack/backend/internal/infrastructure/cache"
	"github.com/devtrack/backend/internal/infrastructure/config"
	"github.com/devtrack/backend/internal/infrastructure/logger"
	"github.com/devtrack/backend/internal/infrastructure/persistence"
	"github.com/devtrack/backend/internal/interfaces/http/handler"
	"github.com/devtrack/backend/internal/interfaces/http/middleware"
	"github.com/devtrack/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting DevTrack backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Connect to database with a GORM logger bridged to zap
	gormLogger := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLogger)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()

	// Repositories
	projectRepo := persistence.NewGormProjectRepository(db.DB)
	taskRepo := persistence.NewGormTaskRepository(db.DB)
	panelRepo := persistence.NewGormPanelConfigRepository(db.DB)
	noteRepo := persistence.NewGormNoteRepository(db.DB)
	tenderRepo := persistence.NewGormTenderOfferRepository(db.DB)

	// Dashboard cache; Redis with in-memory fallback
	var dashboardCache appproject.DashboardCache
	if cfg.Dashboard.CacheEnabled {
		dashboardCache, err = cache.NewDashboardCacheFactory(cfg.Redis, cache.WithLogger(log)).CreateCache()
		if err != nil {
			log.Fatal("Failed to create dashboard cache", zap.Error(err))
		}
	}

	// Application services
	clock := shared.SystemClock{}
	projectService := appproject.NewProjectService(projectRepo, noteRepo, tenderRepo, clock, cfg.Dashboard.StaleThreshold)
	sectionService := appproject.NewSectionUpdateService(projectRepo, clock)
	taskService := appproject.NewTaskService(projectRepo, taskRepo, clock)
	panelService := appproject.NewPanelConfigService(projectRepo, panelRepo, clock)
	dashboardService := appproject.NewDashboardService(
		projectRepo,
		taskRepo,
		dashboardCache,
		clock,
		cfg.Dashboard.StaleThreshold,
		cfg.Dashboard.CacheTTL,
		log,
	)

	// Auth
	jwtService := auth.NewJWTService(cfg.JWT)

	// HTTP handlers
	projectHandler := handler.NewProjectHandler(projectService, sectionService)
	taskHandler := handler.NewTaskHandler(taskService)
	panelHandler := handler.NewPanelHandler(panelService)
	noteHandler := handler.NewNoteHandler(projectService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	systemHandler := handler.NewSystemHandler()

	// Gin engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()
	engine := gin.New()

	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Failed to set trusted proxies", zap.Error(err))
	}

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}

	engine.Use(
		middleware.RequestID(),
		logger.Recovery(log),
		logger.GinMiddleware(log),
		middleware.Secure(),
		middleware.CORSWithConfig(corsConfig),
	)

	// Authentication applies to everything except health and ping paths
	jwtConfig := middleware.DefaultJWTConfig(jwtService)
	jwtConfig.Logger = log
	engine.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Health endpoints outside the versioned API
	engine.GET("/health", healthHandler(db))
	engine.GET("/healthz", healthHandler(db))

	// Versioned API routes
	router.NewRouter(engine, router.WithAPIVersion("v1")).
		Register(projectHandler).
		Register(taskHandler).
		Register(panelHandler).
		Register(noteHandler).
		Register(dashboardHandler).
		Register(systemHandler).
		Setup()

	// HTTP server
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler reports process and database health
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
