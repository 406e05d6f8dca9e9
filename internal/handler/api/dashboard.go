// Package api exposes the dashboard endpoints over Echo.
package api

import (
	"strings"

	"ApexDesk/internal/registry"
	"ApexDesk/internal/service/calendar"
	"ApexDesk/internal/service/news"
	"ApexDesk/internal/service/ratelimit"
	"ApexDesk/internal/services/briefing"
	"ApexDesk/internal/usecase"
	applogger "ApexDesk/pkg/logger"

	"github.com/labstack/echo/v4"
)

// DashboardHandler implements the Echo handlers for the pre-market
// dashboard: market data, bias scoring, briefing, calendar and news.
type DashboardHandler struct {
	logger    *applogger.Logger
	snapshots *usecase.SnapshotService
	macro     *usecase.MacroAssembler
	briefing  *briefing.Service
	calendar  *calendar.Service
	news      *news.Service
	limiter   *ratelimit.Limiter
	envAPIKey string
}

func NewDashboardHandler(
	logger *applogger.Logger,
	snapshots *usecase.SnapshotService,
	macro *usecase.MacroAssembler,
	briefingSvc *briefing.Service,
	calendarSvc *calendar.Service,
	newsSvc *news.Service,
	envAPIKey string,
) *DashboardHandler {
	return &DashboardHandler{
		logger:    logger,
		snapshots: snapshots,
		macro:     macro,
		briefing:  briefingSvc,
		calendar:  calendarSvc,
		news:      newsSvc,
		limiter:   ratelimit.New(),
		envAPIKey: envAPIKey,
	}
}

func (h *DashboardHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/market-data", h.MarketData)
	g.GET("/bias", h.Bias)
	g.POST("/briefing", h.Briefing)
	g.GET("/calendar", h.Calendar)
	g.GET("/news", h.News)
	g.GET("/session", h.Session)
}

// splitSymbols turns a CSV query value into registry-known symbols,
// preserving request order.
func splitSymbols(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	return registry.Filter(strings.Split(csv, ","))
}
