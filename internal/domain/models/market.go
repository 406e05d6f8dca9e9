package models

// OHLCVBar is a single completed candle. Date is a calendar date for daily
// bars and a minute-resolution instant for intraday bars. Prices are rounded
// to 4 decimals at parse time; Volume is 0 when the upstream omits it.
type OHLCVBar struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// TrendDirection labels the H1 EMA9/EMA21 relationship.
type TrendDirection string

const (
	TrendUp   TrendDirection = "up"
	TrendDown TrendDirection = "down"
	TrendFlat TrendDirection = "flat"
)

// AssetSnapshot is the canonical per-symbol value produced by the snapshot
// builder. Indicator fields are nil when the input series is too short;
// consumers must not substitute sentinel numbers.
type AssetSnapshot struct {
	Symbol    string `json:"symbol"`
	Ticker    string `json:"ticker"`

	Price     float64 `json:"price"`
	Open      float64 `json:"open"`
	PrevClose float64 `json:"prevClose"`
	High52W   float64 `json:"high52w"`
	Low52W    float64 `json:"low52w"`
	ChangePct float64 `json:"changePct"`

	BarsD1 []OHLCVBar `json:"barsD1"`
	BarsH1 []OHLCVBar `json:"barsH1"`

	// Daily track indicators.
	EMA20 *float64 `json:"ema20"`
	EMA50 *float64 `json:"ema50"`
	RSI14 *float64 `json:"rsi14"`
	ATR14 *float64 `json:"atr14"`

	// Hourly track indicators.
	H1EMA9  *float64        `json:"h1Ema9"`
	H1EMA21 *float64        `json:"h1Ema21"`
	H1RSI14 *float64        `json:"h1Rsi14"`
	H1ATR14 *float64        `json:"h1Atr14"`
	H1Trend *TrendDirection `json:"h1Trend"`
}

// MarketQuote is one macro reference reading.
type MarketQuote struct {
	Symbol    string    `json:"symbol"`
	Price     float64   `json:"price"`
	Change    float64   `json:"change"`
	ChangePct float64   `json:"changePct"`
	Sparkline []float64 `json:"sparkline"`
}

// MacroSnapshot aggregates the seven macro reference quotes consumed by the
// scoring engine. Slots are always populated, never nil.
type MacroSnapshot struct {
	DXY    MarketQuote `json:"dxy"`
	US10Y  MarketQuote `json:"us10y"`
	VIX    MarketQuote `json:"vix"`
	SPX    MarketQuote `json:"spx"`
	NAS100 MarketQuote `json:"nas100"`
	Gold   MarketQuote `json:"gold"`
	BTC    MarketQuote `json:"btc"`
}
