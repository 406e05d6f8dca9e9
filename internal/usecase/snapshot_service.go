package usecase

import (
	"context"
	"time"

	"ApexDesk/internal/domain/models"
	"ApexDesk/internal/registry"
	svccache "ApexDesk/internal/service/cache"
	"ApexDesk/internal/service/metrics"
	applogger "ApexDesk/pkg/logger"
)

// Builder builds one snapshot from upstream data.
type Builder interface {
	Build(ctx context.Context, symbol string) (*models.AssetSnapshot, error)
}

// SnapshotService resolves watchlist snapshots through a per-symbol TTL
// cache. Upstream fetches are sequential with a pacing delay after every
// cache miss so the provider never sees a burst.
type SnapshotService struct {
	builder Builder
	cache   *svccache.TTLCache
	ttl     time.Duration
	pace    time.Duration
	logger  *applogger.Logger
}

func NewSnapshotService(builder Builder, c *svccache.TTLCache, ttl, pace time.Duration, logger *applogger.Logger) *SnapshotService {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &SnapshotService{
		builder: builder,
		cache:   c,
		ttl:     ttl,
		pace:    pace,
		logger:  logger,
	}
}

// FetchAll resolves snapshots for the given symbols, full registry when
// empty. Failed symbols are skipped; request order is preserved for the
// rest.
func (s *SnapshotService) FetchAll(ctx context.Context, symbols []string) []models.AssetSnapshot {
	if len(symbols) == 0 {
		symbols = registry.All()
	}

	snapshots := make([]models.AssetSnapshot, 0, len(symbols))
	for _, sym := range symbols {
		if snap, ok := s.cached(sym); ok {
			metrics.SnapshotFetches.WithLabelValues("hit").Inc()
			snapshots = append(snapshots, *snap)
			continue
		}

		start := time.Now()
		snap, err := s.builder.Build(ctx, sym)
		if err != nil {
			metrics.SnapshotFetches.WithLabelValues("failed").Inc()
			if s.logger != nil {
				s.logger.Warn("snapshot build failed",
					applogger.String("symbol", sym),
					applogger.Error(err),
				)
			}
			s.paceSleep(ctx)
			continue
		}

		metrics.SnapshotFetches.WithLabelValues("built").Inc()
		metrics.SnapshotBuildLatency.Observe(time.Since(start).Seconds())
		s.cache.Set(snapshotKey(sym), snap, s.ttl)
		snapshots = append(snapshots, *snap)

		s.paceSleep(ctx)
	}
	return snapshots
}

func (s *SnapshotService) cached(symbol string) (*models.AssetSnapshot, bool) {
	v, ok := s.cache.Get(snapshotKey(symbol))
	if !ok {
		return nil, false
	}
	snap, ok := v.(*models.AssetSnapshot)
	return snap, ok
}

// paceSleep waits the configured delay, or returns early on ctx cancel.
func (s *SnapshotService) paceSleep(ctx context.Context) {
	if s.pace <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(s.pace):
	}
}

func snapshotKey(symbol string) string {
	return "snapshot:" + symbol
}
