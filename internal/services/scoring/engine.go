// Package scoring derives a transparent directional bias per symbol from the
// macro snapshot. Score starts at 50, an ordered rule cascade moves it, and
// the final value maps to bullish (≥65), bearish (≤35) or range/volatile.
// No black box: every point of score comes with a human-readable reason.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"ApexDesk/internal/domain/models"
	"ApexDesk/pkg/util"
)

const maxReasons = 3

// ComputeBias evaluates one symbol against the macro regime. Pure and
// deterministic: same input, same verdict.
func ComputeBias(in models.ScoringInput) models.ScoringResult {
	macro := in.Macro
	symbol := in.Symbol
	assetType := in.AssetType

	score := 50.0
	var reasons []string
	add := func(delta float64, reason string) {
		score += delta
		reasons = append(reasons, reason)
	}
	roomLeft := func() bool { return len(reasons) < maxReasons }

	dxyUp := macro.DXY.ChangePct > 0.2
	dxyDown := macro.DXY.ChangePct < -0.2
	vixHigh := macro.VIX.Price > 20
	vixLow := macro.VIX.Price < 15
	vixSpike := macro.VIX.ChangePct > 5
	yieldUp := macro.US10Y.ChangePct > 0.5
	yieldDown := macro.US10Y.ChangePct < -0.5
	riskOff := dxyUp && vixHigh && yieldUp
	riskOn := dxyDown && vixLow && !yieldUp

	// Règle 1 : régime risk-off
	if riskOff {
		if assetType == models.AssetIndex {
			add(-20, fmt.Sprintf("Risk-off confirmé : DXY %s, VIX %.1f, US10Y ↑ — indices sous pression",
				util.FormatPct(macro.DXY.ChangePct), macro.VIX.Price))
		}
		if assetType == models.AssetStock {
			add(-15, "Environnement risk-off défavorable aux actions cycliques et tech")
		}
		if symbol == "XAUUSD" {
			add(8, "Risk-off → demande refuge sur l'or (corrélation historique positive)")
		}
		if assetType == models.AssetFX && (strings.HasPrefix(symbol, "EUR") || strings.HasPrefix(symbol, "GBP")) {
			add(-15, "Risk-off + DXY fort → pression sur EUR/USD et GBP/USD")
		}
	}

	// Règle 2 : régime risk-on
	if riskOn {
		if assetType == models.AssetIndex {
			add(15, "Risk-on : DXY faible, VIX bas — contexte favorable aux indices")
		}
		if assetType == models.AssetStock {
			add(12, "Appétit pour le risque élevé → rotation vers les actions tech et growth")
		}
	}

	// Règle 3 : direction DXY
	if dxyUp && roomLeft() {
		if symbol == "EURUSD" {
			add(-12, fmt.Sprintf("DXY haussier (%s) → pression directe sur EUR/USD", util.FormatPct(macro.DXY.ChangePct)))
		}
		if symbol == "XAUUSD" {
			add(-8, "DXY fort → corrélation négative avec l'or (libellé en USD)")
		}
	}
	if dxyDown && roomLeft() {
		if symbol == "EURUSD" {
			add(12, fmt.Sprintf("DXY baissier (%s) → support pour EUR/USD", util.FormatPct(macro.DXY.ChangePct)))
		}
		if symbol == "XAUUSD" {
			add(10, "DXY faible → corrélation positive, or favorisé")
		}
	}

	// Règle 4 : régime VIX
	if vixHigh && roomLeft() {
		if assetType == models.AssetIndex || assetType == models.AssetStock {
			add(-8, fmt.Sprintf("VIX élevé (%.1f) → volatilité accrue, couvertures actives", macro.VIX.Price))
		}
	}
	if vixLow && roomLeft() {
		if assetType == models.AssetIndex {
			add(8, fmt.Sprintf("VIX faible (%.1f) → marché complaisant, tendance haussière favorisée", macro.VIX.Price))
		}
	}
	if vixSpike && roomLeft() {
		add(0, fmt.Sprintf("Spike VIX (+%s) → attention aux mouvements brusques intraday", util.FormatPct(macro.VIX.ChangePct)))
	}

	// Règle 5 : momentum NAS100 pour les actions tech
	if assetType == models.AssetStock && roomLeft() {
		if macro.NAS100.ChangePct > 0.5 {
			add(10, fmt.Sprintf("NAS100 en hausse (%s) → momentum sectoriel favorable tech", util.FormatPct(macro.NAS100.ChangePct)))
		} else if macro.NAS100.ChangePct < -0.5 {
			add(-10, fmt.Sprintf("NAS100 en baisse (%s) → pression sur les actions tech", util.FormatPct(macro.NAS100.ChangePct)))
		}
	}

	// Règle 6 : taux US10Y
	if yieldUp && roomLeft() {
		if assetType == models.AssetIndex || assetType == models.AssetStock {
			add(-7, fmt.Sprintf("US10Y en hausse (%.2f%%) → valorisations compressées, pression sur les multiples", macro.US10Y.Price))
		}
		if symbol == "XAUUSD" {
			add(-5, "Yields en hausse → coût d'opportunité de l'or augmente")
		}
	}
	if yieldDown && roomLeft() {
		if assetType == models.AssetIndex {
			add(7, "US10Y en baisse → conditions financières plus accommodantes")
		}
		if symbol == "XAUUSD" {
			add(7, "Yields en baisse → or attractif vs obligations")
		}
	}

	// Règle 7 : momentum or pour XAUUSD
	if symbol == "XAUUSD" && roomLeft() {
		if macro.Gold.ChangePct > 0.3 {
			add(5, fmt.Sprintf("Momentum or intraday positif (%s) — structure haussière", util.FormatPct(macro.Gold.ChangePct)))
		}
	}

	if len(reasons) == 0 {
		reasons = append(reasons, fmt.Sprintf("Contexte macro neutre — DXY %s, VIX %.1f",
			util.FormatPct(macro.DXY.ChangePct), macro.VIX.Price))
	}

	var bias models.BiasType
	switch {
	case score >= 65:
		bias = models.BiasBullish
	case score <= 35:
		bias = models.BiasBearish
	case vixSpike:
		bias = models.BiasVolatile
	default:
		bias = models.BiasRange
	}

	confidence := math.Min(100, math.Max(30, math.Abs(score-50)*2.5+30))

	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}

	return models.ScoringResult{
		Symbol:      symbol,
		Bias:        bias,
		Confidence:  int(math.Round(confidence)),
		Reasons:     reasons,
		FocusDuJour: buildFocus(symbol, bias),
	}
}

// ComputeAll scores every watchlist item against the same macro snapshot.
func ComputeAll(watchlist []models.WatchlistItem, macro models.MacroSnapshot) []models.ScoringResult {
	results := make([]models.ScoringResult, 0, len(watchlist))
	for _, item := range watchlist {
		results = append(results, ComputeBias(models.ScoringInput{
			Symbol:    item.Symbol,
			AssetType: item.AssetType,
			Macro:     macro,
		}))
	}
	return results
}
