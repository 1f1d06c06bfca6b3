package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/eventhive/eventhive_api/internal/service"
)

// CacheRefreshWorker periodically re-primes the events read cache so the
// public listing stays warm between invalidations.
type CacheRefreshWorker struct {
	eventService *service.EventService
	interval     time.Duration
}

// NewCacheRefreshWorker constructs a CacheRefreshWorker.
func NewCacheRefreshWorker(eventService *service.EventService, interval time.Duration) *CacheRefreshWorker {
	return &CacheRefreshWorker{
		eventService: eventService,
		interval:     interval,
	}
}

// Start begins the periodic refresh loop and listens for context cancellation.
func (w *CacheRefreshWorker) Start(ctx context.Context) {
	log.Info().Dur("interval", w.interval).Msg("Starting cache refresh worker")

	// Run immediately on start
	w.run(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.run(ctx)
		case <-ctx.Done():
			log.Info().Msg("Cache refresh worker stopped")
			return
		}
	}
}

func (w *CacheRefreshWorker) run(ctx context.Context) {
	start := time.Now()
	if err := w.eventService.RefreshCache(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to refresh events cache")
		return
	}
	log.Debug().Dur("duration", time.Since(start)).Msg("Events cache refreshed")
}
