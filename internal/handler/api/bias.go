package api

import (
	models "ApexDesk/internal/domain/models"
	"ApexDesk/internal/registry"
	"ApexDesk/internal/services/scoring"
	xhttp "ApexDesk/pkg/http"
	"ApexDesk/pkg/util"

	"github.com/labstack/echo/v4"
)

// Bias serves GET /api/bias?symbols=CSV. The macro snapshot is assembled
// from live reference quotes (mock per slot on failure), then the requested
// watchlist, or the full default one, is scored in order.
func (h *DashboardHandler) Bias(c echo.Context) error {
	req := &models.BiasRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	symbols := splitSymbols(req.Symbols)
	if len(symbols) == 0 {
		symbols = registry.All()
	}

	items := make([]models.WatchlistItem, 0, len(symbols))
	for _, sym := range symbols {
		entry, ok := registry.Resolve(sym)
		if !ok {
			continue
		}
		items = append(items, models.WatchlistItem{Symbol: entry.Symbol, AssetType: entry.AssetType})
	}

	macro := h.macro.Assemble(c.Request().Context())
	results := scoring.ComputeAll(items, macro)

	return xhttp.OK(c, map[string]interface{}{
		"macro":         macro,
		"macro_summary": util.GenerateMacroSummary(macro),
		"results":       results,
	})
}
