package jobs

import (
	"context"
	"time"

	"github.com/DaBenjle/aonapi/internal/logger"
	"github.com/DaBenjle/aonapi/internal/services"
)

// Scheduler drives the periodic uuid-index synchronization: one pass at
// startup, then one per interval. A failed pass logs and waits for the next
// tick; the loop only stops with the context.
type Scheduler struct {
	log        *logger.Logger
	indexCache *services.UUIDIndexCache
	registrar  services.RegistrarService
	interval   time.Duration
}

func NewScheduler(baseLog *logger.Logger, indexCache *services.UUIDIndexCache, registrar services.RegistrarService, interval time.Duration) *Scheduler {
	return &Scheduler{
		log:        baseLog.With("component", "Scheduler"),
		indexCache: indexCache,
		registrar:  registrar,
		interval:   interval,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	go func() {
		s.runOnce(ctx)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.runOnce(ctx)
			}
		}
	}()
}

func (s *Scheduler) runOnce(ctx context.Context) {
	s.log.Info("Updating database with UUIDs and categories...")
	index, err := s.indexCache.Get(ctx)
	if err != nil {
		s.log.Warn("Could not fetch uuid index, skipping pass", "error", err)
		return
	}
	if err := s.registrar.RegisterAll(ctx, index); err != nil {
		s.log.Warn("Registrar pass aborted", "error", err)
		return
	}
	s.log.Info("Database updated with UUIDs and categories")
}
