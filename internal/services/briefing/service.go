package briefing

import (
	"context"

	"ApexDesk/internal/domain/models"
	"ApexDesk/internal/registry"
	"ApexDesk/internal/service/metrics"
	pkgcache "ApexDesk/pkg/cache"
	applogger "ApexDesk/pkg/logger"
	"ApexDesk/pkg/util"
)

// SnapshotFetcher supplies live market data for the prompt. Failures are
// tolerated: an empty list switches the prompt to estimate mode.
type SnapshotFetcher interface {
	FetchAll(ctx context.Context, symbols []string) []models.AssetSnapshot
}

// GenerateParams is one briefing request after HTTP validation.
type GenerateParams struct {
	APIKey         string
	ForceRefresh   bool
	Assets         []string
	Slot           string // "8h" or "14h"
	MorningContext string
}

// Service generates and caches the daily briefings.
type Service struct {
	llm       LLMClient
	snapshots SnapshotFetcher
	cache     *DayCache
	maxAssets int
	logger    *applogger.Logger
}

func NewService(llm LLMClient, snapshots SnapshotFetcher, store pkgcache.Store, maxAssets int, logger *applogger.Logger) *Service {
	if store == nil {
		store = pkgcache.NewMemoryCache()
	}
	if maxAssets <= 0 {
		maxAssets = 20
	}
	return &Service{
		llm:       llm,
		snapshots: snapshots,
		cache:     NewDayCache(store),
		maxAssets: maxAssets,
		logger:    logger,
	}
}

// Generate returns the briefing for today's (slot, asset selection), from
// cache when available. The bool result reports a cache hit.
func (s *Service) Generate(ctx context.Context, p GenerateParams) (models.Briefing, bool, error) {
	assets := registry.Filter(p.Assets)
	if len(assets) > s.maxAssets {
		assets = assets[:s.maxAssets]
	}

	key := CacheKey(util.TodayISO(), p.Slot, assets)
	if !p.ForceRefresh {
		if cached, ok := s.cache.Get(ctx, key); ok {
			metrics.BriefingGenerations.WithLabelValues("cached").Inc()
			return cached, true, nil
		}
	}

	fetchAssets := assets
	if len(fetchAssets) == 0 {
		fetchAssets = DefaultAssets()
	}
	snapshots := s.snapshots.FetchAll(ctx, fetchAssets)

	prompt := BuildPrompt(snapshots, fetchAssets, p.Slot, p.MorningContext)

	raw, err := s.llm.Complete(ctx, p.APIKey, prompt)
	if err != nil {
		metrics.BriefingGenerations.WithLabelValues("failed").Inc()
		if s.logger != nil {
			s.logger.Error("briefing generation failed", applogger.Error(err))
		}
		return nil, false, err
	}

	out, err := ParseBriefing(raw)
	if err != nil {
		metrics.BriefingGenerations.WithLabelValues("failed").Inc()
		return nil, false, err
	}

	if _, ok := out["generated_at"]; !ok {
		out["generated_at"] = util.TimeHHMM(util.ParisNow())
	}
	out["slot"] = p.Slot

	metrics.BriefingGenerations.WithLabelValues("generated").Inc()
	s.cache.Set(ctx, key, out)
	return out, false, nil
}
