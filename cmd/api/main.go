package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GoSim-25-26J-441/c4model-api/config"
	httpapi "github.com/GoSim-25-26J-441/c4model-api/internal/api/http"
	"github.com/GoSim-25-26J-441/c4model-api/internal/bootstrap"
	cronjob "github.com/GoSim-25-26J-441/c4model-api/internal/c4model/cron"
	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/ingest/validator"
	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/service"
)

const serviceName = "c4model-api"

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := bootstrap.NewLogger(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	bootstrap.SetGinMode(cfg.App.Environment, logger)

	diagrams, ws, err := bootstrap.LoadWorkspace(bootstrap.WorkspaceOptions{
		Path:          cfg.Workspace.Path,
		ViewURLPrefix: cfg.Workspace.ViewURLPrefix,
		CacheSize:     cfg.Workspace.CacheSize,
	})
	if err != nil {
		logger.Errorw("failed to load workspace", "error", err)
		return err
	}
	stats := diagrams.Stats()
	logger.Infow("workspace loaded",
		"name", ws.Name,
		"path", cfg.Workspace.Path,
		"elements", stats.Elements,
		"relationships", stats.Relationships,
		"views", stats.Views,
		"dynamicViews", stats.DynamicViews,
	)
	for _, problem := range validator.CheckReferences(ws) {
		logger.Warnw("view will fail to project", "error", problem)
	}

	var (
		checks    map[string]httpapi.Pinger
		scheduler *cronjob.Scheduler
	)
	if cfg.SnapshotsEnabled() {
		stores, err := bootstrap.OpenSnapshotStores(context.Background(), cfg)
		if err != nil {
			logger.Errorw("failed to open snapshot stores", "error", err)
			return err
		}
		defer stores.Close()
		checks = stores.Checks

		publisher := service.NewPublisher(diagrams, stores.Store, logger)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if _, err := publisher.PublishAll(ctx); err != nil {
			logger.Warnw("initial snapshot publish failed", "error", err)
		}
		cancel()

		// SNAPSHOT_CRON was checked by config.Validate
		scheduler = cronjob.NewScheduler(publisher, logger)
		if err := scheduler.Start(cfg.Snapshot.Cron); err != nil {
			return fmt.Errorf("invalid SNAPSHOT_CRON %q: %w", cfg.Snapshot.Cron, err)
		}
	}

	router, err := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:      serviceName,
		Version:          cfg.App.Version,
		Diagrams:         diagrams,
		Dependencies:     checks,
		Logger:           logger,
		CORSAllowOrigins: cfg.Server.CORSAllowOrigins,
		TrustedProxies:   cfg.Server.TrustedProxies,
		RateLimitRPS:     cfg.Server.RateLimitRPS,
		RateLimitBurst:   cfg.Server.RateLimitBurst,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Infow("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case <-quit:
		logger.Info("shutting down server")
	case err := <-serveErr:
		logger.Errorw("server error", "error", err)
		runErr = err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if scheduler != nil {
		select {
		case <-scheduler.Stop().Done():
		case <-ctx.Done():
		}
	}
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorw("server forced to shutdown", "error", err)
	}
	logger.Info("server exiting")
	return runErr
}
