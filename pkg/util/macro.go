package util

import (
	"fmt"

	"ApexDesk/internal/domain/models"
)

// GenerateMacroSummary renders the macro snapshot as the French one-liner
// shown above the watchlist: global sentiment, DXY/US10Y direction, VIX
// regime, then NAS100/Gold/BTC moves.
func GenerateMacroSummary(m models.MacroSnapshot) string {
	riskOff := m.DXY.ChangePct > 0.2 && m.VIX.Price > 18
	riskOn := m.DXY.ChangePct < -0.2 && m.VIX.Price < 16

	sentiment := "Neutre"
	if riskOff {
		sentiment = "Risk-Off"
	} else if riskOn {
		sentiment = "Risk-On"
	}

	dxyDir := "baissier"
	if m.DXY.ChangePct > 0 {
		dxyDir = "haussier"
	}

	yieldDir := "en baisse"
	if m.US10Y.ChangePct > 0 {
		yieldDir = "en hausse"
	}

	equityDir := "neutre"
	switch {
	case m.NAS100.ChangePct > 0.3:
		equityDir = "bullish"
	case m.NAS100.ChangePct < -0.3:
		equityDir = "bearish"
	}

	vixNote := "volatilité modérée"
	switch {
	case m.VIX.Price > 20:
		vixNote = "volatilité élevée, prudence sur les indices"
	case m.VIX.Price < 15:
		vixNote = "marché complaisant, favorise le risk-on"
	}

	return fmt.Sprintf(
		"Sentiment global : %s. DXY %s (%s), US10Y %s à %.2f%%. VIX à %.1f — %s. NAS100 %s (%s). Gold %s. BTC %s.",
		sentiment,
		dxyDir, FormatPct(m.DXY.ChangePct),
		yieldDir, m.US10Y.Price,
		m.VIX.Price, vixNote,
		equityDir, FormatPct(m.NAS100.ChangePct),
		FormatPct(m.Gold.ChangePct),
		FormatPct(m.BTC.ChangePct),
	)
}
