package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/iyabazu/pc-search/config"
	"github.com/iyabazu/pc-search/internal/catalog"
	"github.com/iyabazu/pc-search/internal/handlers"
	"github.com/iyabazu/pc-search/internal/middleware"
	"github.com/iyabazu/pc-search/internal/options"
	"github.com/iyabazu/pc-search/internal/telemetry"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := initLogger(cfg.Logging)

	logger.Info().Msg("Starting search service")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	telCfg := telemetry.Config{
		Enabled:  cfg.Telemetry.Enabled,
		Endpoint: cfg.Telemetry.Endpoint,
	}
	if !telCfg.Enabled {
		// OTEL_EXPORTER_OTLP_ENDPOINT alone turns telemetry on.
		telCfg = telemetry.GetConfigFromEnv()
	}
	cleanup := telemetry.MustInit(ctx, telCfg)
	defer cleanup(context.Background())

	store := connectStore(ctx, cfg, logger)
	cache := catalog.NewCache(store, cfg.Catalog.FetchLimit, *logger)

	var filterOpts *options.FilterOptions
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cache.Refresh(gctx)
		return nil
	})
	g.Go(func() error {
		opts, err := options.LoadOrDefaults(cfg.Options.Path)
		if err != nil {
			logger.Warn().Err(err).Str("path", cfg.Options.Path).Msg("Filter options file unavailable, using defaults")
		}
		filterOpts = opts
		return nil
	})
	g.Wait()

	go cache.StartRefreshLoop(ctx, cfg.Catalog.RefreshInterval)

	handlers.Init(cache, store, filterOpts, *logger)

	if cfg.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	setupMiddleware(router, logger)
	router.Use(middleware.CORSMiddleware(cfg.Server.CORSOrigins...))

	router.GET("/health", handlers.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	api.Use(middleware.RateLimitMiddleware(middleware.RateLimiterConfig{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		BurstSize:         cfg.RateLimit.BurstSize,
	}))
	{
		api.GET("/search", handlers.Search)
		api.GET("/products", handlers.ListProducts)
		api.GET("/products/:id", handlers.GetProduct)
		api.GET("/filter-options", handlers.FilterOptionsHandler)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info().Str("addr", addr).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	if mongoStore, ok := store.(*catalog.MongoStore); ok {
		if err := mongoStore.Close(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("Failed to disconnect mongodb")
		}
	}

	logger.Info().Msg("Server exited")
}

// connectStore connects to the product database. A missing or unreachable
// database is not fatal; the cache serves the fallback dataset until the
// next successful refresh.
func connectStore(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) catalog.Store {
	uri := config.GetMongoURI()
	if uri == "" {
		logger.Warn().Msg("MONGODB_URI not set, serving fallback dataset")
		return catalog.NewMemoryStore(nil)
	}

	store, err := catalog.ConnectMongo(ctx, uri, cfg.Catalog.Database, cfg.Catalog.Collection)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to connect to mongodb, serving fallback dataset")
		return catalog.NewMemoryStore(nil)
	}

	logger.Info().Str("database", cfg.Catalog.Database).Msg("Database connected")
	return store
}

func initLogger(cfg config.LoggingConfig) *zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var output io.Writer
	if cfg.Format == "json" {
		output = os.Stdout
	} else {
		output = zerolog.ConsoleWriter{Out: os.Stdout, NoColor: cfg.NoColor}
	}

	logger := zerolog.New(output).Level(level).With().Timestamp().Str("service", "pc-search").Logger()
	return &logger
}

func setupMiddleware(router *gin.Engine, logger *zerolog.Logger) {
	router.Use(func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		end := time.Now()
		latency := end.Sub(start)

		logger.Info().
			Str("method", c.Request.Method).
			Str("path", path).
			Str("query", query).
			Int("status", c.Writer.Status()).
			Dur("latency", latency).
			Str("ip", c.ClientIP()).
			Msg("HTTP request")
	})
}
