package api

import (
	"net/http"
	"strings"

	models "ApexDesk/internal/domain/models"
	xhttp "ApexDesk/pkg/http"
	"ApexDesk/pkg/util"

	"github.com/labstack/echo/v4"
)

// Calendar serves GET /api/calendar: today's economic events, mock on
// upstream failure.
func (h *DashboardHandler) Calendar(c echo.Context) error {
	return xhttp.OK(c, h.calendar.Today(c.Request().Context()))
}

// Session serves GET /api/session: the Paris clock and the active trading
// session shown in the dashboard header.
func (h *DashboardHandler) Session(c echo.Context) error {
	now := util.ParisNow()
	return xhttp.OK(c, map[string]interface{}{
		"time":    util.TimeHHMM(now),
		"date":    util.DayFR(now),
		"session": util.CurrentSession(now),
		"weekday": util.IsWeekday(now),
	})
}

// News serves GET /api/news?symbol=S: latest headlines for one symbol.
func (h *DashboardHandler) News(c echo.Context) error {
	req := &models.NewsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil || strings.TrimSpace(req.Symbol) == "" {
		return xhttp.ErrorResponse(c, http.StatusBadRequest, "symbol requis")
	}
	return xhttp.OK(c, h.news.ForSymbol(c.Request().Context(), req.Symbol))
}
