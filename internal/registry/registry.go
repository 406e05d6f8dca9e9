// Package registry maps application-level symbols to upstream tickers and
// chart-widget identifiers, with per-provider availability flags.
package registry

import (
	"strings"

	"ApexDesk/internal/domain/models"
)

// Entry describes one tradable symbol known to the application.
type Entry struct {
	Symbol    string
	Yahoo     string // upstream provider ticker
	TV        string // TradingView widget symbol
	AssetType models.AssetType
	Category  string
	HasYahoo  bool
	HasTV     bool
}

type def struct {
	symbol, yahoo, tv string
	assetType         models.AssetType
	category          string
}

// watchlist is the full symbol table in display order. Crypto pairs are
// typed commodity: the scorer only branches on stock/index/fx and XAUUSD.
var watchlist = []def{
	// Forex
	{"EURUSD", "EURUSD=X", "FX:EURUSD", models.AssetFX, "Forex"},
	{"GBPUSD", "GBPUSD=X", "FX:GBPUSD", models.AssetFX, "Forex"},
	{"USDJPY", "JPY=X", "FX:USDJPY", models.AssetFX, "Forex"},
	{"USDCHF", "CHF=X", "FX:USDCHF", models.AssetFX, "Forex"},
	{"AUDUSD", "AUDUSD=X", "FX:AUDUSD", models.AssetFX, "Forex"},
	{"USDCAD", "CAD=X", "FX:USDCAD", models.AssetFX, "Forex"},
	{"NZDUSD", "NZDUSD=X", "FX:NZDUSD", models.AssetFX, "Forex"},
	{"EURGBP", "EURGBP=X", "FX:EURGBP", models.AssetFX, "Forex"},
	{"EURJPY", "EURJPY=X", "FX:EURJPY", models.AssetFX, "Forex"},
	{"GBPJPY", "GBPJPY=X", "FX:GBPJPY", models.AssetFX, "Forex"},

	// Indices
	{"NAS100", "^NDX", "CAPITALCOM:US100", models.AssetIndex, "Indices"},
	{"US500", "^GSPC", "CAPITALCOM:US500", models.AssetIndex, "Indices"},
	{"US30", "^DJI", "CAPITALCOM:US30", models.AssetIndex, "Indices"},
	{"UK100", "^FTSE", "CAPITALCOM:UK100", models.AssetIndex, "Indices"},
	{"GER40", "^GDAXI", "CAPITALCOM:GERMANY40", models.AssetIndex, "Indices"},
	{"FRA40", "^FCHI", "EURONEXT:FCE1!", models.AssetIndex, "Indices"},
	{"JP225", "^N225", "CAPITALCOM:JAPAN225", models.AssetIndex, "Indices"},

	// Commodities
	{"XAUUSD", "GC=F", "TVC:GOLD", models.AssetCommodity, "Commodities"},
	{"XAGUSD", "SI=F", "TVC:SILVER", models.AssetCommodity, "Commodities"},
	{"USOIL", "CL=F", "NYMEX:CL1!", models.AssetCommodity, "Commodities"},
	{"UKOIL", "BZ=F", "NYMEX:BB1!", models.AssetCommodity, "Commodities"},
	{"NATGAS", "NG=F", "NYMEX:NG1!", models.AssetCommodity, "Commodities"},

	// Crypto
	{"BTCUSD", "BTC-USD", "BITSTAMP:BTCUSD", models.AssetCommodity, "Crypto"},
	{"ETHUSD", "ETH-USD", "BITSTAMP:ETHUSD", models.AssetCommodity, "Crypto"},

	// Tech stocks
	{"NVDA", "NVDA", "NASDAQ:NVDA", models.AssetStock, "Tech"},
	{"TSLA", "TSLA", "NASDAQ:TSLA", models.AssetStock, "Tech"},
	{"AAPL", "AAPL", "NASDAQ:AAPL", models.AssetStock, "Tech"},
	{"MSFT", "MSFT", "NASDAQ:MSFT", models.AssetStock, "Tech"},
	{"META", "META", "NASDAQ:META", models.AssetStock, "Tech"},
	{"AMZN", "AMZN", "NASDAQ:AMZN", models.AssetStock, "Tech"},
	{"GOOGL", "GOOGL", "NASDAQ:GOOGL", models.AssetStock, "Tech"},
	{"AMD", "AMD", "NASDAQ:AMD", models.AssetStock, "Tech"},
	{"MU", "MU", "NASDAQ:MU", models.AssetStock, "Tech"},
	{"INTC", "INTC", "NASDAQ:INTC", models.AssetStock, "Tech"},
	{"CRM", "CRM", "NYSE:CRM", models.AssetStock, "Tech"},
	{"ORCL", "ORCL", "NYSE:ORCL", models.AssetStock, "Tech"},
	{"NFLX", "NFLX", "NASDAQ:NFLX", models.AssetStock, "Tech"},
	{"UBER", "UBER", "NYSE:UBER", models.AssetStock, "Tech"},
	{"COIN", "COIN", "NASDAQ:COIN", models.AssetStock, "Tech"},

	// Finance
	{"JPM", "JPM", "NYSE:JPM", models.AssetStock, "Finance"},
	{"GS", "GS", "NYSE:GS", models.AssetStock, "Finance"},
	{"BAC", "BAC", "NYSE:BAC", models.AssetStock, "Finance"},
	{"V", "V", "NYSE:V", models.AssetStock, "Finance"},

	// Health
	{"JNJ", "JNJ", "NYSE:JNJ", models.AssetStock, "Health"},
	{"UNH", "UNH", "NYSE:UNH", models.AssetStock, "Health"},

	// Energy
	{"XOM", "XOM", "NYSE:XOM", models.AssetStock, "Energy"},
	{"CVX", "CVX", "NYSE:CVX", models.AssetStock, "Energy"},
}

// macroRefs are the seven scoring references. They are resolvable but not
// part of the default watchlist (no TradingView preset, never charted).
var macroRefs = []def{
	{"DXY", "DX-Y.NYB", "", models.AssetIndex, "Macro"},
	{"US10Y", "^TNX", "", models.AssetIndex, "Macro"},
	{"VIX", "^VIX", "", models.AssetIndex, "Macro"},
	{"US500", "^GSPC", "", models.AssetIndex, "Macro"},
	{"NAS100", "^NDX", "", models.AssetIndex, "Macro"},
	{"XAUUSD", "GC=F", "", models.AssetCommodity, "Macro"},
	{"BTCUSD", "BTC-USD", "", models.AssetCommodity, "Macro"},
}

var (
	entries   map[string]Entry
	allOrder  []string
	refsOrder []string
)

func init() {
	entries = make(map[string]Entry, len(watchlist)+len(macroRefs))
	for _, d := range macroRefs {
		entries[d.symbol] = Entry{
			Symbol:    d.symbol,
			Yahoo:     d.yahoo,
			AssetType: d.assetType,
			Category:  d.category,
			HasYahoo:  true,
		}
		refsOrder = append(refsOrder, d.symbol)
	}
	for _, d := range watchlist {
		entries[d.symbol] = Entry{
			Symbol:    d.symbol,
			Yahoo:     d.yahoo,
			TV:        d.tv,
			AssetType: d.assetType,
			Category:  d.category,
			HasYahoo:  true,
			HasTV:     d.tv != "",
		}
		allOrder = append(allOrder, d.symbol)
	}
}

// Resolve returns the registry entry for an application symbol.
func Resolve(symbol string) (Entry, bool) {
	e, ok := entries[strings.ToUpper(strings.TrimSpace(symbol))]
	return e, ok
}

// All returns the watchlist symbols in stable display order.
func All() []string {
	out := make([]string, len(allOrder))
	copy(out, allOrder)
	return out
}

// MacroRefs returns the seven macro reference symbols in slot order.
func MacroRefs() []string {
	out := make([]string, len(refsOrder))
	copy(out, refsOrder)
	return out
}

// Filter uppercases, trims and drops symbols unknown to the registry,
// preserving request order.
func Filter(symbols []string) []string {
	var out []string
	for _, s := range symbols {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, ok := entries[s]; ok {
			out = append(out, s)
		}
	}
	return out
}
