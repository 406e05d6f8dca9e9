package di

import (
	"fmt"

	"ApexDesk/internal/handler/api"
	svccache "ApexDesk/internal/service/cache"
	"ApexDesk/internal/service/calendar"
	"ApexDesk/internal/service/news"
	"ApexDesk/internal/service/yahoo"
	"ApexDesk/internal/services/briefing"
	"ApexDesk/internal/usecase"
	pkgcache "ApexDesk/pkg/cache"
	"ApexDesk/pkg/config"
	applogger "ApexDesk/pkg/logger"
	"ApexDesk/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideCacheStore creates the byte-level store backing the briefing
// cache: in-memory by default, layered over Redis when configured so
// briefings survive restarts.
func ProvideCacheStore(cfg *config.Config) (pkgcache.Store, error) {
	if !cfg.Redis.Enabled {
		return pkgcache.NewMemoryCache(), nil
	}

	rc, err := pkgcache.NewRedisCache(
		pkgcache.WithRedisAddr(cfg.Redis.Addr),
		pkgcache.WithRedisPassword(cfg.Redis.Password),
		pkgcache.WithRedisDB(cfg.Redis.DB),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	return pkgcache.NewLayeredCache(rc), nil
}

// ProvideYahooClient creates the chart/quote upstream client.
func ProvideYahooClient(cfg *config.Config) *yahoo.Client {
	return yahoo.NewClient(cfg.Market.RequestTimeout, yahoo.WithBaseURL(cfg.Market.BaseURL))
}

// ProvideSnapshotBuilder creates the per-symbol snapshot builder.
func ProvideSnapshotBuilder(yc *yahoo.Client, cfg *config.Config) *usecase.SnapshotBuilder {
	return usecase.NewSnapshotBuilder(yc, cfg.Market.DailyWindowDays, cfg.Market.HourlyWindowDays)
}

// ProvideSnapshotService creates the cached, paced snapshot orchestrator.
func ProvideSnapshotService(b *usecase.SnapshotBuilder, cfg *config.Config, l *applogger.Logger) *usecase.SnapshotService {
	return usecase.NewSnapshotService(b, svccache.NewTTLCache(), cfg.Market.CacheTTL, cfg.Market.PaceDelay, l)
}

// ProvideMacroAssembler creates the macro snapshot assembler.
func ProvideMacroAssembler(s *usecase.SnapshotService) *usecase.MacroAssembler {
	return usecase.NewMacroAssembler(s)
}

// ProvideLLMClient creates the Anthropic messages client.
func ProvideLLMClient(cfg *config.Config) briefing.LLMClient {
	return briefing.NewAnthropicClient(
		cfg.Briefing.APIURL,
		cfg.Briefing.Model,
		cfg.Briefing.MaxTokens,
		cfg.Briefing.Timeout,
	)
}

// ProvideBriefingService creates the briefing generation service.
func ProvideBriefingService(
	llm briefing.LLMClient,
	snapshots *usecase.SnapshotService,
	store pkgcache.Store,
	cfg *config.Config,
	l *applogger.Logger,
) *briefing.Service {
	return briefing.NewService(llm, snapshots, store, cfg.Briefing.MaxAssets, l)
}

// ProvideCalendarService creates the economic calendar service.
func ProvideCalendarService(cfg *config.Config, l *applogger.Logger) *calendar.Service {
	return calendar.NewService(cfg.Calendar.URL, cfg.Calendar.Countries,
		cfg.Calendar.Timeout, cfg.Calendar.CacheTTL, l)
}

// ProvideNewsService creates the per-symbol news service.
func ProvideNewsService(cfg *config.Config, l *applogger.Logger) *news.Service {
	return news.NewService(cfg.News.BaseURL, cfg.News.Timeout, cfg.News.CacheTTL, l)
}

// ProvideDashboardHandler creates the HTTP handler over all services.
func ProvideDashboardHandler(
	l *applogger.Logger,
	snapshots *usecase.SnapshotService,
	macro *usecase.MacroAssembler,
	briefingSvc *briefing.Service,
	calendarSvc *calendar.Service,
	newsSvc *news.Service,
	cfg *config.Config,
) *api.DashboardHandler {
	return api.NewDashboardHandler(l, snapshots, macro, briefingSvc, calendarSvc, newsSvc, cfg.Briefing.APIKey)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	l *applogger.Logger,
	handler *api.DashboardHandler,
	store pkgcache.Store,
) *server.App {
	return server.New(cfg, l, handler, store)
}
