package api

import (
	"errors"
	"net/http"
	"strings"

	models "ApexDesk/internal/domain/models"
	"ApexDesk/internal/services/briefing"
	xhttp "ApexDesk/pkg/http"
	applogger "ApexDesk/pkg/logger"

	"github.com/labstack/echo/v4"
)

// One generation per ~30 s per client, short burst allowed. Keeps a
// misconfigured frontend from burning the LLM quota.
const (
	briefingBurst  = 3
	briefingRefill = 1.0 / 30.0
)

// Briefing serves POST /api/briefing. The request key falls back to the
// server-side ANTHROPIC_API_KEY; either way it must look like an Anthropic
// key before anything is fetched.
func (h *DashboardHandler) Briefing(c echo.Context) error {
	req := &models.BriefingRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	apiKey := strings.TrimSpace(req.APIKey)
	if apiKey == "" {
		apiKey = h.envAPIKey
	}
	if !strings.HasPrefix(apiKey, "sk-") {
		return xhttp.ErrorResponse(c, http.StatusBadRequest,
			"Clé API Anthropic manquante ou invalide. Entrez votre clé sk-ant-… dans le champ en haut, ou ajoutez ANTHROPIC_API_KEY dans .env.local")
	}

	if !h.limiter.Allow(c.RealIP(), briefingBurst, briefingRefill) {
		return xhttp.ErrorResponse(c, http.StatusTooManyRequests,
			"Trop de requêtes de briefing. Réessayez dans quelques instants.")
	}

	out, fromCache, err := h.briefing.Generate(c.Request().Context(), briefing.GenerateParams{
		APIKey:         apiKey,
		ForceRefresh:   req.ForceRefresh,
		Assets:         req.Assets,
		Slot:           req.Slot,
		MorningContext: req.MorningContext,
	})
	if err != nil {
		var ue *briefing.UpstreamError
		if errors.As(err, &ue) {
			return xhttp.ErrorResponse(c, http.StatusBadGateway, ue.Message)
		}
		if errors.Is(err, briefing.ErrInvalidJSON) {
			return xhttp.ErrorResponse(c, http.StatusInternalServerError,
				"Réponse JSON invalide de Claude. Réessayez.")
		}
		h.logger.Error("briefing handler error", applogger.Error(err))
		return xhttp.ErrorResponse(c, http.StatusInternalServerError, "internal error")
	}

	body := make(map[string]interface{}, len(out)+1)
	for k, v := range out {
		body[k] = v
	}
	body["fromCache"] = fromCache
	return xhttp.OK(c, body)
}
