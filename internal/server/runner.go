// Package server runs the API server and its background jobs.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

const defaultShutdownTimeout = 30 * time.Second

// Pruner evicts expired cache entries until ctx is done.
type Pruner interface {
	RunPruner(ctx context.Context, interval time.Duration, log *slog.Logger) error
}

// Config for the runner.
type Config struct {
	Addr            string
	PruneInterval   time.Duration // 0 disables pruning
	ShutdownTimeout time.Duration
}

// Runner manages the HTTP server and background components.
type Runner struct {
	config  Config
	handler http.Handler
	pruner  Pruner
	logger  *slog.Logger
}

// NewRunner creates a new runner. pruner may be nil.
func NewRunner(cfg Config, handler http.Handler, pruner Pruner, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}
	return &Runner{
		config:  cfg,
		handler: handler,
		pruner:  pruner,
		logger:  logger,
	}
}

// Run listens on the configured address and serves until ctx is canceled
// or a component fails.
func (r *Runner) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", r.config.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", r.config.Addr, err)
	}
	return r.Serve(ctx, ln)
}

// Serve is Run on an existing listener. It takes ownership of ln.
func (r *Runner) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           r.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		r.logger.Info("server listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), r.config.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		r.logger.Info("server stopped")
		return nil
	})

	if r.pruner != nil && r.config.PruneInterval > 0 {
		g.Go(func() error {
			return r.pruner.RunPruner(ctx, r.config.PruneInterval, r.logger.With("component", "pruner"))
		})
	}

	return g.Wait()
}
