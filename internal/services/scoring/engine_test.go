package scoring

import (
	"reflect"
	"strings"
	"testing"

	"ApexDesk/internal/domain/models"
)

func neutralMacro() models.MacroSnapshot {
	return models.MacroSnapshot{
		DXY:    models.MarketQuote{Symbol: "DXY", Price: 104.0, ChangePct: 0.0},
		US10Y:  models.MarketQuote{Symbol: "US10Y", Price: 4.40, ChangePct: 0.0},
		VIX:    models.MarketQuote{Symbol: "VIX", Price: 17.0, ChangePct: 0.0},
		SPX:    models.MarketQuote{Symbol: "SPX", Price: 5048.0, ChangePct: 0.1},
		NAS100: models.MarketQuote{Symbol: "NAS100", Price: 17842.0, ChangePct: 0.1},
		Gold:   models.MarketQuote{Symbol: "GOLD", Price: 2318.5, ChangePct: 0.0},
		BTC:    models.MarketQuote{Symbol: "BTC", Price: 67240.0, ChangePct: 0.0},
	}
}

func TestRiskOffIndexBearish(t *testing.T) {
	macro := neutralMacro()
	macro.DXY.ChangePct = 0.5
	macro.VIX.Price = 22
	macro.VIX.ChangePct = 6
	macro.US10Y.ChangePct = 0.8
	macro.NAS100.ChangePct = -0.4

	got := ComputeBias(models.ScoringInput{Symbol: "NAS100", AssetType: models.AssetIndex, Macro: macro})

	if got.Bias != models.BiasBearish {
		t.Fatalf("expected bearish, got %s", got.Bias)
	}
	if len(got.Reasons) == 0 || !strings.Contains(got.Reasons[0], "Risk-off") {
		t.Fatalf("expected first reason to mention risk-off, got %v", got.Reasons)
	}
	if got.Confidence < 80 {
		t.Fatalf("expected confidence >= 80, got %d", got.Confidence)
	}
}

func TestDXYDownSupportsEURUSD(t *testing.T) {
	macro := neutralMacro()
	macro.DXY.ChangePct = -0.6
	macro.VIX.Price = 14

	got := ComputeBias(models.ScoringInput{Symbol: "EURUSD", AssetType: models.AssetFX, Macro: macro})

	// +12 from the DXY rule is the only FX-positive delta, landing at 62:
	// below the bullish cut but with the supportive reason emitted.
	if got.Bias != models.BiasRange {
		t.Fatalf("expected range, got %s", got.Bias)
	}
	found := false
	for _, r := range got.Reasons {
		if strings.Contains(r, "DXY baissier") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a DXY baissier reason, got %v", got.Reasons)
	}
	if got.Confidence != 60 {
		t.Fatalf("expected confidence 60, got %d", got.Confidence)
	}
}

func TestVIXSpikeVolatile(t *testing.T) {
	macro := neutralMacro()
	macro.VIX.Price = 19
	macro.VIX.ChangePct = 8.5

	got := ComputeBias(models.ScoringInput{Symbol: "US500", AssetType: models.AssetIndex, Macro: macro})

	if got.Bias != models.BiasVolatile {
		t.Fatalf("expected volatile, got %s", got.Bias)
	}
	if got.Confidence < 30 || got.Confidence > 50 {
		t.Fatalf("expected confidence in [30,50], got %d", got.Confidence)
	}
	if !strings.Contains(got.FocusDuJour, "Volatilité") {
		t.Fatalf("expected volatile focus line, got %q", got.FocusDuJour)
	}
}

func TestRiskOnIndexBullish(t *testing.T) {
	macro := neutralMacro()
	macro.DXY.ChangePct = -0.4
	macro.VIX.Price = 13.5

	got := ComputeBias(models.ScoringInput{Symbol: "US500", AssetType: models.AssetIndex, Macro: macro})

	// risk-on +15 plus vixLow +8 = 73
	if got.Bias != models.BiasBullish {
		t.Fatalf("expected bullish, got %s", got.Bias)
	}
	if got.FocusDuJour != bullFocus["US500"] {
		t.Fatalf("expected US500 bull focus, got %q", got.FocusDuJour)
	}
}

func TestNeutralFallbackReason(t *testing.T) {
	got := ComputeBias(models.ScoringInput{Symbol: "USDJPY", AssetType: models.AssetFX, Macro: neutralMacro()})

	if got.Bias != models.BiasRange {
		t.Fatalf("expected range, got %s", got.Bias)
	}
	if len(got.Reasons) != 1 || !strings.Contains(got.Reasons[0], "Contexte macro neutre") {
		t.Fatalf("expected single neutral reason, got %v", got.Reasons)
	}
	if got.Confidence != 30 {
		t.Fatalf("expected floor confidence 30, got %d", got.Confidence)
	}
}

func TestReasonsCappedAtThree(t *testing.T) {
	macro := neutralMacro()
	macro.DXY.ChangePct = 0.6
	macro.VIX.Price = 23
	macro.VIX.ChangePct = 7
	macro.US10Y.ChangePct = 0.9
	macro.NAS100.ChangePct = -1.2

	got := ComputeBias(models.ScoringInput{Symbol: "NVDA", AssetType: models.AssetStock, Macro: macro})
	if len(got.Reasons) > 3 {
		t.Fatalf("expected at most 3 reasons, got %d", len(got.Reasons))
	}
}

func TestComputeBiasPure(t *testing.T) {
	in := models.ScoringInput{Symbol: "XAUUSD", AssetType: models.AssetCommodity, Macro: neutralMacro()}
	a := ComputeBias(in)
	b := ComputeBias(in)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected identical results, got %+v vs %+v", a, b)
	}
}

func TestComputeAllPreservesOrder(t *testing.T) {
	watchlist := []models.WatchlistItem{
		{Symbol: "EURUSD", AssetType: models.AssetFX},
		{Symbol: "NAS100", AssetType: models.AssetIndex},
		{Symbol: "XAUUSD", AssetType: models.AssetCommodity},
	}
	results := ComputeAll(watchlist, neutralMacro())
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i, item := range watchlist {
		if results[i].Symbol != item.Symbol {
			t.Fatalf("order not preserved at %d: %s", i, results[i].Symbol)
		}
	}
}
