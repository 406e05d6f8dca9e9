// Package indicator holds the pure technical-indicator kernel. Inputs are
// never mutated; insufficient input length yields nil, never a sentinel.
package indicator

import (
	"math"

	"ApexDesk/internal/domain/models"
)

// TrendDeadband is the relative EMA9/EMA21 gap below which the hourly trend
// is considered flat (±0.05%).
const TrendDeadband = 0.0005

// EMA computes the exponential moving average of closes, seeded with the
// arithmetic mean of the first period values. Result is rounded to 4
// decimals; nil when fewer than period closes are given.
func EMA(closes []float64, period int) *float64 {
	if period <= 0 || len(closes) < period {
		return nil
	}
	sum := 0.0
	for _, c := range closes[:period] {
		sum += c
	}
	ema := sum / float64(period)
	k := 2.0 / float64(period+1)
	for _, c := range closes[period:] {
		ema = c*k + ema*(1-k)
	}
	return ptr(round(ema, 4))
}

// RSI computes Wilder's relative strength index. The seed averages are
// simple means over the first period deltas; the remainder is
// Wilder-smoothed. Returns 100 when the average loss is zero, rounded to 1
// decimal otherwise; nil when fewer than period+1 closes are given.
func RSI(closes []float64, period int) *float64 {
	if period <= 0 || len(closes) < period+1 {
		return nil
	}
	var gains, losses float64
	for i := 1; i <= period; i++ {
		diff := closes[i] - closes[i-1]
		if diff > 0 {
			gains += diff
		} else {
			losses -= diff
		}
	}
	avgGain := gains / float64(period)
	avgLoss := losses / float64(period)
	for i := period + 1; i < len(closes); i++ {
		diff := closes[i] - closes[i-1]
		avgGain = (avgGain*float64(period-1) + math.Max(diff, 0)) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + math.Max(-diff, 0)) / float64(period)
	}
	if avgLoss == 0 {
		return ptr(100.0)
	}
	rs := avgGain / avgLoss
	return ptr(round(100-100/(1+rs), 1))
}

// ATR computes the average true range as the arithmetic mean of the last
// period true ranges. Rounded to 4 decimals; nil when fewer than period+1
// bars are given.
func ATR(bars []models.OHLCVBar, period int) *float64 {
	if period <= 0 || len(bars) < period+1 {
		return nil
	}
	trs := make([]float64, 0, len(bars)-1)
	for i := 1; i < len(bars); i++ {
		hl := bars[i].High - bars[i].Low
		hpc := math.Abs(bars[i].High - bars[i-1].Close)
		lpc := math.Abs(bars[i].Low - bars[i-1].Close)
		trs = append(trs, math.Max(hl, math.Max(hpc, lpc)))
	}
	sum := 0.0
	for _, tr := range trs[len(trs)-period:] {
		sum += tr
	}
	return ptr(round(sum/float64(period), 4))
}

// Trend labels the fast/slow EMA relationship with a ±0.05% deadband.
// Nil when either EMA is unavailable.
func Trend(emaFast, emaSlow *float64) *models.TrendDirection {
	if emaFast == nil || emaSlow == nil || *emaSlow == 0 {
		return nil
	}
	diff := (*emaFast - *emaSlow) / *emaSlow
	t := models.TrendFlat
	switch {
	case diff > TrendDeadband:
		t = models.TrendUp
	case diff < -TrendDeadband:
		t = models.TrendDown
	}
	return &t
}

// Closes extracts the close series from bars.
func Closes(bars []models.OHLCVBar) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}

func round(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(v*p) / p
}

func ptr(v float64) *float64 { return &v }
