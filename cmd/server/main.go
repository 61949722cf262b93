package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"sentsplit/internal/cache/noop"
	rediscache "sentsplit/internal/cache/redis"
	"sentsplit/internal/config"
	"sentsplit/internal/handler"
	"sentsplit/internal/logger"
	"sentsplit/internal/metrics"
	"sentsplit/internal/port"
	"sentsplit/internal/router"
	"sentsplit/internal/service"
	"sentsplit/internal/splitter"
	noopstorage "sentsplit/internal/storage/noop"
	s3storage "sentsplit/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger.Setup(cfg.Log.Level, cfg.Log.Format)
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize splitter; a missing tokenizer model is fatal at startup.
	sentenceSplitter, err := splitter.New(&cfg.Splitter)
	if err != nil {
		return fmt.Errorf("failed to create splitter: %w", err)
	}
	if err := sentenceSplitter.Ready(ctx); err != nil {
		return fmt.Errorf("splitter %s not ready: %w", sentenceSplitter.Name(), err)
	}

	// Initialize cache
	var cache port.SentenceCache = noop.NewNoopCache()
	if cfg.Cache.Enabled {
		cache, err = rediscache.NewSentenceCache(&cfg.Cache)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
	}

	// Initialize archive storage
	var storage port.ObjectStorage = noopstorage.NewNoopStorage()
	if cfg.Archive.Enabled {
		storage, err = s3storage.NewS3Client(ctx, &cfg.Archive)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	}

	m := metrics.New()
	sentenceSvc := service.NewSentenceService(sentenceSplitter, cache, storage, &cfg.Archive, m)

	// Initialize handlers
	uploadH := handler.NewUploadHandler(sentenceSvc, &cfg.Upload)
	checks := []handler.ReadinessCheck{{Name: "splitter", Check: sentenceSvc.Ready}}
	if cfg.Cache.Enabled {
		checks = append(checks, handler.ReadinessCheck{Name: "cache", Check: cache.Ping})
	}
	healthH := handler.NewHealthHandler(checks...)

	// Setup router
	r := router.Setup(cfg, m, uploadH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting",
			"addr", cfg.Server.Port,
			"engine", sentenceSplitter.Name(),
			"cache", cfg.Cache.Enabled,
			"archive", cfg.Archive.Enabled,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down", "timeout", cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
