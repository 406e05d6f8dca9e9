package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"ApexDesk/internal/domain/models"
	"ApexDesk/internal/indicator"
	"ApexDesk/internal/registry"
	"ApexDesk/internal/service/yahoo"
	"ApexDesk/pkg/util"
)

const (
	dailyBarsForIndicators = 60
	dailyBarsExposed       = 10
	hourlyBarsKept         = 48
)

// MarketData is the upstream surface the builder needs. Satisfied by the
// yahoo client; tests plug in a fake.
type MarketData interface {
	Quote(ctx context.Context, ticker string) (*yahoo.Quote, error)
	Chart(ctx context.Context, ticker string, period1 time.Time, interval string) (*yahoo.Chart, error)
}

// SnapshotBuilder assembles one AssetSnapshot from the quote and the daily
// and hourly chart series.
type SnapshotBuilder struct {
	market           MarketData
	dailyWindowDays  int
	hourlyWindowDays int
}

func NewSnapshotBuilder(market MarketData, dailyWindowDays, hourlyWindowDays int) *SnapshotBuilder {
	if dailyWindowDays <= 0 {
		dailyWindowDays = 92
	}
	if hourlyWindowDays <= 0 {
		hourlyWindowDays = 7
	}
	return &SnapshotBuilder{
		market:           market,
		dailyWindowDays:  dailyWindowDays,
		hourlyWindowDays: hourlyWindowDays,
	}
}

// Build fetches quote + both charts concurrently and derives the snapshot.
// A failed hourly fetch degrades to an empty H1 series; a failed quote or
// daily fetch fails the whole build.
func (b *SnapshotBuilder) Build(ctx context.Context, symbol string) (*models.AssetSnapshot, error) {
	entry, ok := registry.Resolve(symbol)
	if !ok {
		return nil, fmt.Errorf("unknown symbol %q", symbol)
	}

	var (
		wg      sync.WaitGroup
		quote   *yahoo.Quote
		chartD1 *yahoo.Chart
		chartH1 *yahoo.Chart
		errQ    error
		errD1   error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		quote, errQ = b.market.Quote(ctx, entry.Yahoo)
	}()
	go func() {
		defer wg.Done()
		period1 := time.Now().AddDate(0, 0, -b.dailyWindowDays)
		chartD1, errD1 = b.market.Chart(ctx, entry.Yahoo, period1, yahoo.IntervalDaily)
	}()
	go func() {
		defer wg.Done()
		period1 := time.Now().AddDate(0, 0, -b.hourlyWindowDays)
		// hourly data is best-effort; some tickers have none
		if c, err := b.market.Chart(ctx, entry.Yahoo, period1, yahoo.IntervalHourly); err == nil {
			chartH1 = c
		}
	}()
	wg.Wait()

	if errQ != nil {
		return nil, fmt.Errorf("quote %s: %w", symbol, errQ)
	}
	if errD1 != nil {
		return nil, fmt.Errorf("daily chart %s: %w", symbol, errD1)
	}

	barsD1All := parseBars(chartD1, "2006-01-02")
	barsD1 := tail(barsD1All, dailyBarsForIndicators)
	last10 := tail(barsD1, dailyBarsExposed)
	closesD1 := indicator.Closes(barsD1)

	var barsH1 []models.OHLCVBar
	if chartH1 != nil {
		barsH1 = tail(parseBars(chartH1, "2006-01-02 15:04"), hourlyBarsKept)
	}
	closesH1 := indicator.Closes(barsH1)

	h1Ema9 := indicator.EMA(closesH1, 9)
	h1Ema21 := indicator.EMA(closesH1, 21)

	var meta yahoo.ChartMeta
	if chartD1 != nil {
		meta = chartD1.Meta
	}

	lastClose := nthFromEnd(closesD1, 1)
	secondLastClose := nthFromEnd(closesD1, 2)

	price := coalesce(quote.RegularMarketPrice, meta.RegularMarketPrice, lastClose)
	prevClose := coalesce(quote.RegularMarketPreviousClose, meta.ChartPreviousClose, secondLastClose)

	var lastOpen *float64
	if len(last10) > 0 {
		lastOpen = &last10[len(last10)-1].Open
	}
	open := coalesce(quote.RegularMarketOpen, lastOpen)

	high52 := coalesce(quote.FiftyTwoWeekHigh, meta.FiftyTwoWeekHigh, maxOf(closesD1))
	low52 := coalesce(quote.FiftyTwoWeekLow, meta.FiftyTwoWeekLow, minOf(closesD1))

	changePct := 0.0
	if prevClose > 0 {
		changePct = util.Round((price-prevClose)/prevClose*100, 2)
	}

	return &models.AssetSnapshot{
		Symbol:    entry.Symbol,
		Ticker:    entry.Yahoo,
		Price:     util.Round(price, 4),
		Open:      util.Round(open, 4),
		PrevClose: util.Round(prevClose, 4),
		High52W:   util.Round(high52, 2),
		Low52W:    util.Round(low52, 2),
		ChangePct: changePct,
		BarsD1:    last10,
		BarsH1:    barsH1,
		EMA20:     indicator.EMA(closesD1, 20),
		EMA50:     indicator.EMA(closesD1, 50),
		RSI14:     indicator.RSI(closesD1, 14),
		ATR14:     indicator.ATR(barsD1, 14),
		H1EMA9:    h1Ema9,
		H1EMA21:   h1Ema21,
		H1RSI14:   indicator.RSI(closesH1, 14),
		H1ATR14:   indicator.ATR(barsH1, 14),
		H1Trend:   indicator.Trend(h1Ema9, h1Ema21),
	}, nil
}

// parseBars converts raw candles into domain bars: null or non-positive
// closes are dropped, open/high/low fall back to close, prices round to 4
// decimals. Bars come back in the upstream (ascending) order.
func parseBars(chart *yahoo.Chart, dateLayout string) []models.OHLCVBar {
	if chart == nil {
		return nil
	}
	bars := make([]models.OHLCVBar, 0, len(chart.Bars))
	for _, raw := range chart.Bars {
		if raw.Close == nil || *raw.Close <= 0 {
			continue
		}
		close := *raw.Close
		pick := func(v *float64) float64 {
			if v != nil {
				return util.Round(*v, 4)
			}
			return util.Round(close, 4)
		}
		volume := 0.0
		if raw.Volume != nil {
			volume = *raw.Volume
		}
		bars = append(bars, models.OHLCVBar{
			Date:   raw.Time.In(util.ParisLocation()).Format(dateLayout),
			Open:   pick(raw.Open),
			High:   pick(raw.High),
			Low:    pick(raw.Low),
			Close:  util.Round(close, 4),
			Volume: volume,
		})
	}
	return bars
}

func tail(bars []models.OHLCVBar, n int) []models.OHLCVBar {
	if len(bars) > n {
		return bars[len(bars)-n:]
	}
	return bars
}

// coalesce returns the first non-nil pointer's value, else 0.
func coalesce(vals ...*float64) float64 {
	for _, v := range vals {
		if v != nil {
			return *v
		}
	}
	return 0
}

func nthFromEnd(vals []float64, n int) *float64 {
	if len(vals) < n {
		return nil
	}
	v := vals[len(vals)-n]
	return &v
}

func maxOf(vals []float64) *float64 {
	if len(vals) == 0 {
		return nil
	}
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return &m
}

func minOf(vals []float64) *float64 {
	if len(vals) == 0 {
		return nil
	}
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return &m
}
