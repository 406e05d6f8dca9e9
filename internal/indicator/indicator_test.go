package indicator

import (
	"math"
	"testing"

	"ApexDesk/internal/domain/models"
)

func TestEMAShortSeries(t *testing.T) {
	if got := EMA([]float64{1, 2, 3}, 5); got != nil {
		t.Fatalf("expected nil for short series, got %v", *got)
	}
}

func TestEMASeedIsMean(t *testing.T) {
	got := EMA([]float64{1, 2, 3, 4, 5}, 5)
	if got == nil {
		t.Fatal("expected value")
	}
	if *got != 3 {
		t.Fatalf("expected seed mean 3, got %v", *got)
	}
}

func TestEMAOneStep(t *testing.T) {
	// seed 3, then 3 + (6-3)*(2/6) = 4
	got := EMA([]float64{1, 2, 3, 4, 5, 6}, 5)
	if got == nil || *got != 4 {
		t.Fatalf("expected 4, got %v", got)
	}
}

func TestEMAPure(t *testing.T) {
	closes := []float64{10, 11, 12, 11.5, 12.5, 13, 12.8}
	a := EMA(closes, 5)
	b := EMA(closes, 5)
	if *a != *b {
		t.Fatalf("EMA not deterministic: %v vs %v", *a, *b)
	}
	if closes[0] != 10 || closes[6] != 12.8 {
		t.Fatal("input mutated")
	}
}

func TestRSIShortSeries(t *testing.T) {
	closes := make([]float64, 14)
	for i := range closes {
		closes[i] = float64(i)
	}
	if got := RSI(closes, 14); got != nil {
		t.Fatalf("expected nil for 14 closes, got %v", *got)
	}
}

func TestRSIAllGains(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	got := RSI(closes, 14)
	if got == nil || *got != 100 {
		t.Fatalf("expected 100 with zero losses, got %v", got)
	}
}

func TestRSIMixed(t *testing.T) {
	closes := []float64{44.34, 44.09, 44.15, 43.61, 44.33, 44.83, 45.10, 45.42,
		45.84, 46.08, 45.89, 46.03, 45.61, 46.28, 46.28}
	got := RSI(closes, 14)
	if got == nil {
		t.Fatal("expected value")
	}
	if *got < 50 || *got > 90 {
		t.Fatalf("RSI out of plausible band: %v", *got)
	}
	if *got != math.Round(*got*10)/10 {
		t.Fatalf("expected 1-decimal rounding, got %v", *got)
	}
}

func barsFrom(vals [][4]float64) []models.OHLCVBar {
	bars := make([]models.OHLCVBar, len(vals))
	for i, v := range vals {
		bars[i] = models.OHLCVBar{Open: v[0], High: v[1], Low: v[2], Close: v[3]}
	}
	return bars
}

func TestATRShortSeries(t *testing.T) {
	bars := barsFrom(make([][4]float64, 14))
	if got := ATR(bars, 14); got != nil {
		t.Fatalf("expected nil for 14 bars, got %v", *got)
	}
}

func TestATRConstantRange(t *testing.T) {
	vals := make([][4]float64, 20)
	for i := range vals {
		// high-low = 2 every bar, closes flat at 10
		vals[i] = [4]float64{10, 11, 9, 10}
	}
	got := ATR(barsFrom(vals), 14)
	if got == nil || *got != 2 {
		t.Fatalf("expected ATR 2, got %v", got)
	}
}

func TestATRGapDominates(t *testing.T) {
	// A gap up makes |high - prevClose| the true range.
	vals := [][4]float64{
		{10, 11, 9, 10},
		{15, 16, 14, 15},
		{15, 16, 14, 15},
	}
	got := ATR(barsFrom(vals), 2)
	if got == nil {
		t.Fatal("expected value")
	}
	// TR1 = max(2, |16-10|, |14-10|) = 6, TR2 = 2 -> mean 4
	if *got != 4 {
		t.Fatalf("expected 4, got %v", *got)
	}
}

func TestTrendDeadband(t *testing.T) {
	f := func(v float64) *float64 { return &v }
	cases := []struct {
		name string
		fast *float64
		slow *float64
		want *models.TrendDirection
	}{
		{"nil fast", nil, f(100), nil},
		{"nil slow", f(100), nil, nil},
		{"flat inside band", f(100.04), f(100), dir(models.TrendFlat)},
		{"up above band", f(100.06), f(100), dir(models.TrendUp)},
		{"down below band", f(99.94), f(100), dir(models.TrendDown)},
	}
	for _, tc := range cases {
		got := Trend(tc.fast, tc.slow)
		if (got == nil) != (tc.want == nil) {
			t.Fatalf("%s: nil mismatch", tc.name)
		}
		if got != nil && *got != *tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.name, *tc.want, *got)
		}
	}
}

func dir(d models.TrendDirection) *models.TrendDirection { return &d }
