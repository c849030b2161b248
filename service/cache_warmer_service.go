package services

import (
	"context"
	"log/slog"
	"time"
)

// CacheWarmer is the part of the filter service the warmer drives.
type CacheWarmer interface {
	Warm() int
}

// CacheWarmerService periodically refills the filter result cache so common
// queries stay warm after their entries expire.
type CacheWarmerService struct {
	warmer CacheWarmer
	logger *slog.Logger
}

// NewCacheWarmerService constructs a new warmer with dependencies.
func NewCacheWarmerService(warmer CacheWarmer, logger *slog.Logger) *CacheWarmerService {
	return &CacheWarmerService{warmer: warmer, logger: logger}
}

// StartPeriodicJob launches the background loop at the given interval. It
// stops when ctx is done.
func (cw *CacheWarmerService) StartPeriodicJob(ctx context.Context, interval time.Duration) {
	go cw.startPeriodicJob(ctx, interval)
}

func (cw *CacheWarmerService) startPeriodicJob(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			cw.logger.Info("[CacheWarmerService] Stopping periodic cache warmer job.")
			return
		case <-ticker.C:
			cw.logger.Info("[CacheWarmerService] Running periodic cache warmer job.")
			cw.WarmCache()
		}
	}
}

// WarmCache runs one warming pass and returns how many queries it touched.
func (cw *CacheWarmerService) WarmCache() int {
	start := time.Now()
	n := cw.warmer.Warm()
	cw.logger.Info("[CacheWarmerService] Filter cache warmed", "queries", n, "took", time.Since(start))
	return n
}
