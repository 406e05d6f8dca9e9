package briefing

import (
	"strings"
	"testing"

	"ApexDesk/internal/domain/models"
)

func sampleSnapshot() models.AssetSnapshot {
	ema20 := 1.0832
	rsi := 56.2
	trend := models.TrendUp
	return models.AssetSnapshot{
		Symbol:    "EURUSD",
		Ticker:    "EURUSD=X",
		Price:     1.0845,
		PrevClose: 1.0821,
		ChangePct: 0.22,
		Low52W:    1.02,
		High52W:   1.12,
		BarsD1: []models.OHLCVBar{
			{Date: "2026-08-27", Open: 1.081, High: 1.085, Low: 1.080, Close: 1.083},
			{Date: "2026-08-28", Open: 1.083, High: 1.086, Low: 1.082, Close: 1.084},
			{Date: "2026-08-31", Open: 1.084, High: 1.087, Low: 1.083, Close: 1.0845},
		},
		BarsH1:  make([]models.OHLCVBar, 48),
		EMA20:   &ema20,
		RSI14:   &rsi,
		H1Trend: &trend,
	}
}

func TestBuildPromptLiveMode(t *testing.T) {
	p := BuildPrompt([]models.AssetSnapshot{sampleSnapshot()}, []string{"EURUSD", "XAUUSD"}, "8h", "")

	if !strings.Contains(p, "DONNÉES DE MARCHÉ EN TEMPS RÉEL") {
		t.Fatal("expected live data section")
	}
	if !strings.Contains(p, "EXCLUSIVEMENT ces chiffres") {
		t.Fatal("expected live data instruction")
	}
	if !strings.Contains(p, "EURUSD: prix=1.0845") {
		t.Fatal("expected formatted asset line")
	}
	if !strings.Contains(p, "H1(48 barres)") {
		t.Fatal("expected H1 context in asset line")
	}
	if !strings.Contains(p, "trend=up") {
		t.Fatal("expected H1 trend in asset line")
	}
	// symbol with no snapshot is marked unavailable, not dropped
	if !strings.Contains(p, "### XAUUSD\n- Données indisponibles") {
		t.Fatal("expected unavailable marker for XAUUSD")
	}
	if !strings.Contains(p, "BRIEFING PRÉ-MARCHÉ 8H") {
		t.Fatal("expected 8h slot instruction")
	}
	if !strings.Contains(p, `"data_source":"live"`) {
		t.Fatal("expected live data_source in format template")
	}
}

func TestBuildPromptEstimateMode(t *testing.T) {
	p := BuildPrompt(nil, nil, "14h", "")

	if strings.Contains(p, "DONNÉES DE MARCHÉ EN TEMPS RÉEL") {
		t.Fatal("estimate mode must not include a data section")
	}
	if !strings.Contains(p, "Pas de données temps réel") {
		t.Fatal("expected estimate instruction")
	}
	if !strings.Contains(p, `"data_source":"estimate"`) {
		t.Fatal("expected estimate data_source")
	}
	if !strings.Contains(p, "13 actifs dans cet ordre") {
		t.Fatal("expected default asset list")
	}
	if !strings.Contains(p, "MISE À JOUR MI-SESSION 14H") {
		t.Fatal("expected 14h slot instruction")
	}
}

func TestBuildPromptMorningContext(t *testing.T) {
	p := BuildPrompt(nil, nil, "14h", "Le DXY était haussier ce matin.")
	if !strings.Contains(p, "ANALYSE DU BRIEFING DU MATIN (8H)") {
		t.Fatal("expected morning context section")
	}
	if !strings.Contains(p, "Le DXY était haussier ce matin.") {
		t.Fatal("expected morning context body")
	}

	// absent for the 8h slot even when provided
	p8 := BuildPrompt(nil, nil, "8h", "contexte")
	if strings.Contains(p8, "ANALYSE DU BRIEFING DU MATIN") {
		t.Fatal("8h slot must not embed morning context")
	}
}

func TestFormatIndicatorNil(t *testing.T) {
	snap := sampleSnapshot()
	snap.EMA50 = nil
	line := formatAssetLine(snap)
	if !strings.Contains(line, "EMA50=?") {
		t.Fatalf("expected ? for missing indicator: %s", line)
	}
}
