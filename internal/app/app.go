package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/barrazadevis/evaluacion-dashboard-backend/internal/api"
	"github.com/barrazadevis/evaluacion-dashboard-backend/internal/config"
	"github.com/barrazadevis/evaluacion-dashboard-backend/internal/ingest"
	"github.com/barrazadevis/evaluacion-dashboard-backend/internal/report"
	"github.com/barrazadevis/evaluacion-dashboard-backend/internal/repository"
	"github.com/barrazadevis/evaluacion-dashboard-backend/internal/service"
	"github.com/barrazadevis/evaluacion-dashboard-backend/pkg/cache"
	"github.com/barrazadevis/evaluacion-dashboard-backend/pkg/httpserver"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type App struct {
	logger     *zap.Logger
	cache      api.Cacher
	httpServer *httpserver.Server
}

// NewApp runs the single cold-start ingestion pass and wires the immutable
// engine behind the HTTP API.
func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	loader := ingest.NewLoader(cfg.DataDir, cfg.CatalogPath, logger)
	catalog, records, stats, err := loader.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("data load failed: %w", err)
	}
	logger.Info("ingestion complete",
		zap.Int("files", stats.Files),
		zap.Strings("failed_files", stats.FailedFiles),
		zap.Int("rows", stats.Rows),
		zap.Int("records", stats.Records),
		zap.Int("skipped_rows", stats.SkippedRows),
		zap.Int("skipped_answers", stats.SkippedAnswers))

	store := repository.New(records)
	logger.Info("record store indexed",
		zap.Int("records", store.Len()),
		zap.Int("professors", len(store.Professors())),
		zap.Int("periods", len(store.Periods())))

	analytics := service.NewAnalyticsService(store, catalog, logger)
	suggester := service.NewSuggestionService(store, catalog)
	renderer := report.NewGenerator()

	var cacher api.Cacher = cache.Noop{}
	if cfg.CacheEnabled {
		redisCache, err := cache.New(ctx, cache.WithAddress(cfg.RedisAddr))
		if err != nil {
			// Queries are in-memory anyway; a dead cache degrades, not fails.
			logger.Warn("cache unavailable, continuing without it",
				zap.String("addr", cfg.RedisAddr), zap.Error(err))
		} else {
			cacher = redisCache
			logger.Info("cache client initialized", zap.String("addr", cfg.RedisAddr))
		}
	}

	handlers := api.NewHandlers(analytics, suggester, renderer, cacher, logger, cfg.CacheTTL)

	mode := gin.ReleaseMode
	if cfg.AppEnv != "production" {
		mode = gin.DebugMode
	}
	srv, err := httpserver.New(
		httpserver.WithPort(cfg.HTTPPort),
		httpserver.WithMode(mode),
		httpserver.WithLogger(logger),
		httpserver.WithLogging(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create http server: %w", err)
	}
	srv.RegisterRoutes(func(e *gin.Engine) {
		api.RegisterRoutes(e, handlers)
	})

	return &App{
		logger:     logger,
		cache:      cacher,
		httpServer: srv,
	}, nil
}

// Run starts the application and blocks until a shutdown signal is received.
func (a *App) Run() error {
	a.logger.Info("application starting")

	a.httpServer.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.logger.Info("application shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.logger.Error("http shutdown error", zap.Error(err))
	}
	if err := a.cache.Close(); err != nil {
		a.logger.Error("cache shutdown error", zap.Error(err))
	}

	a.logger.Info("graceful shutdown completed")
	_ = a.logger.Sync()
	return nil
}
