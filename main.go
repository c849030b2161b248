package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dorm-finder/config"
	"dorm-finder/di"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	container, err := di.NewContainer(ctx, config.Load())
	if err != nil {
		log.Fatalf("[MAIN] Failed to initialize: %v", err)
	}
	logger := container.Logger

	// Results cached by a previous deployment may predate the bundled dataset.
	if _, err := container.FilterService.InvalidateCache(); err != nil {
		logger.Warn("[MAIN] Could not invalidate filter cache", "err", err)
	}
	if _, err := container.BuildingService.IndexBuildings(); err != nil {
		logger.Warn("[MAIN] Could not index buildings, nearby search is unavailable", "err", err)
	}

	container.CacheWarmerService.WarmCache()
	container.CacheWarmerService.StartPeriodicJob(ctx, container.Config.WarmerInterval)
	container.SessionStore.StartEvictionJob(ctx, config.SESSION_EVICTION_SCHEDULE_MINUTES*time.Minute)

	errCh := make(chan error, 1)
	go func() {
		errCh <- container.DormFinderHttpServer.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("[MAIN] Server stopped", "err", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.SHUTDOWN_TIMEOUT_SECONDS*time.Second)
		defer cancel()
		if err := container.DormFinderHttpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("[MAIN] Shutdown failed", "err", err)
		}
	}
}
