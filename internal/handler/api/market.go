package api

import (
	"net/http"

	models "ApexDesk/internal/domain/models"
	xhttp "ApexDesk/pkg/http"
	applogger "ApexDesk/pkg/logger"

	"github.com/labstack/echo/v4"
)

// MarketData serves GET /api/market-data?symbols=CSV. Unknown symbols are
// dropped; an empty selection resolves the whole watchlist. Snapshots that
// fail upstream are skipped, a fully empty result is a 500.
func (h *DashboardHandler) MarketData(c echo.Context) error {
	req := &models.MarketDataRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	symbols := splitSymbols(req.Symbols)
	snapshots := h.snapshots.FetchAll(c.Request().Context(), symbols)

	if len(snapshots) == 0 {
		h.logger.Error("market data fetch returned nothing",
			applogger.Strings("symbols", symbols))
		return xhttp.ErrorResponseDetails(c, http.StatusInternalServerError,
			"aucune donnée de marché disponible",
			map[string]interface{}{"snapshots": []models.AssetSnapshot{}})
	}

	return xhttp.OK(c, map[string]interface{}{
		"snapshots": snapshots,
		"fetched":   len(snapshots),
		"fromCache": false,
	})
}
