package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/time/rate"
	"gopkg.in/natefinch/lumberjack.v2"

	v1 "github.com/vmunix/frameflux/internal/api/v1"
	"github.com/vmunix/frameflux/internal/catalog"
	"github.com/vmunix/frameflux/internal/config"
	"github.com/vmunix/frameflux/internal/content"
	"github.com/vmunix/frameflux/internal/database"
	"github.com/vmunix/frameflux/internal/metadata"
	"github.com/vmunix/frameflux/internal/playback"
	"github.com/vmunix/frameflux/internal/server"
	"github.com/vmunix/frameflux/internal/tmdb"
	"github.com/vmunix/frameflux/pkg/omdb"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newLogger writes to stdout and, when logFile is set, to a rotated file.
// The returned func closes the file.
func newLogger(level, logFile string) (*slog.Logger, func()) {
	var out io.Writer = os.Stdout
	closeFn := func() {}
	if logFile != "" {
		lj := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    50, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		out = io.MultiWriter(os.Stdout, lj)
		closeFn = func() { _ = lj.Close() }
	}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: parseLogLevel(level),
	})), closeFn
}

func runServer(configPath string) error {
	if configPath == "" {
		p, err := config.Discover()
		if err != nil {
			return err
		}
		configPath = p
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, closeLog := newLogger(cfg.Server.LogLevel, cfg.Server.LogFile)
	defer closeLog()

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	// === Clients ===
	omdbOpts := []omdb.Option{omdb.WithLogger(logger)}
	if cfg.OMDb.BaseURL != "" {
		omdbOpts = append(omdbOpts, omdb.WithBaseURL(cfg.OMDb.BaseURL))
	}
	if cfg.OMDb.RequestsPerSecond > 0 {
		omdbOpts = append(omdbOpts, omdb.WithLimiter(rate.NewLimiter(rate.Limit(cfg.OMDb.RequestsPerSecond), 1)))
	}
	omdbClient := omdb.New(cfg.OMDb.APIKey, omdbOpts...)

	tmdbOpts := []tmdb.Option{tmdb.WithCacheTTL(cfg.TMDB.FindCacheTTL)}
	if cfg.TMDB.BaseURL != "" {
		tmdbOpts = append(tmdbOpts, tmdb.WithBaseURL(cfg.TMDB.BaseURL))
	}
	tmdbClient := tmdb.NewClient(cfg.TMDB.APIKey, tmdbOpts...)

	// === Services ===
	resolver := content.NewResolver(omdbClient, tmdbClient, logger.With("component", "resolver"))
	cache := metadata.NewCache(db)
	cached := metadata.NewCachedResolver(resolver, cache, metadata.TTLs{
		Content: cfg.Cache.ContentTTL,
		Search:  cfg.Cache.SearchTTL,
	}, logger.With("component", "cache"))

	ids := cfg.Catalog.IDs
	if len(ids) == 0 {
		ids = catalog.DefaultIDs
	}
	svc := catalog.NewService(cached, catalog.Config{
		IDs:          ids,
		Fallback:     cfg.Catalog.Fallback,
		RelatedCount: cfg.Catalog.RelatedCount,
		Concurrency:  cfg.Catalog.Concurrency,
	}, logger.With("component", "catalog"))

	deps := v1.ServerDeps{
		Catalog:   svc,
		Positions: playback.NewSQLiteStore(db),
	}
	if omdbClient.Configured() {
		deps.Searcher = cached
	}

	apiOpts := []v1.Option{v1.WithLogger(logger.With("component", "api")), v1.WithVersion(version)}
	if cfg.RateLimit.Enabled {
		apiOpts = append(apiOpts, v1.WithRateLimit(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
	}
	api, err := v1.New(deps, apiOpts...)
	if err != nil {
		return err
	}

	if !omdbClient.Configured() {
		logger.Warn("OMDb API key is missing, serving the fallback catalog")
	}
	logger.Info("server starting",
		"addr", cfg.Addr(),
		"config", configPath,
		"database", cfg.Database.Path,
		"omdb", omdbClient.Configured(),
		"tmdb", tmdbClient.Configured(),
		"titles", len(ids),
		"log_level", cfg.Server.LogLevel,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := server.NewRunner(server.Config{
		Addr:          cfg.Addr(),
		PruneInterval: cfg.Cache.PruneInterval,
	}, api.Handler(), cache, logger)
	return runner.Run(ctx)
}
