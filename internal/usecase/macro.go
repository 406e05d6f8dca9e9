package usecase

import (
	"context"

	"ApexDesk/internal/domain/models"
	"ApexDesk/internal/registry"
	"ApexDesk/pkg/util"
)

// slotNames maps each macro reference symbol to its snapshot slot name.
// The symbols themselves come from registry.MacroRefs so the fetch list
// cannot drift from the registry.
var slotNames = map[string]string{
	"DXY":    "DXY",
	"US10Y":  "US10Y",
	"VIX":    "VIX",
	"US500":  "SPX",
	"NAS100": "NAS100",
	"XAUUSD": "GOLD",
	"BTCUSD": "BTC",
}

// mockMacro is the canonical static snapshot served when nothing live is
// available for a slot. Values mirror the dashboard's historical defaults so
// the scorer always has plausible inputs.
var mockMacro = models.MacroSnapshot{
	DXY:    models.MarketQuote{Symbol: "DXY", Price: 104.23, Change: 0.31, ChangePct: 0.30, Sparkline: []float64{103.8, 103.9, 104.0, 104.1, 104.0, 104.2, 104.23}},
	US10Y:  models.MarketQuote{Symbol: "US10Y", Price: 4.42, Change: 0.03, ChangePct: 0.68, Sparkline: []float64{4.38, 4.39, 4.40, 4.41, 4.40, 4.42, 4.42}},
	VIX:    models.MarketQuote{Symbol: "VIX", Price: 18.42, Change: 0.87, ChangePct: 4.96, Sparkline: []float64{17.5, 17.8, 18.0, 17.9, 18.2, 18.4, 18.42}},
	SPX:    models.MarketQuote{Symbol: "SPX", Price: 5048.0, Change: 12.4, ChangePct: 0.25, Sparkline: []float64{5030, 5035, 5040, 5038, 5044, 5046, 5048}},
	NAS100: models.MarketQuote{Symbol: "NAS100", Price: 17842.0, Change: 95.2, ChangePct: 0.54, Sparkline: []float64{17720, 17750, 17780, 17760, 17800, 17830, 17842}},
	Gold:   models.MarketQuote{Symbol: "GOLD", Price: 2318.5, Change: -1.5, ChangePct: -0.06, Sparkline: []float64{2322, 2320, 2319, 2320, 2318, 2319, 2318.5}},
	BTC:    models.MarketQuote{Symbol: "BTC", Price: 67240.0, Change: 1521.0, ChangePct: 2.31, Sparkline: []float64{65500, 65800, 66200, 66700, 67000, 67100, 67240}},
}

// MockMacro returns a copy of the static fallback snapshot.
func MockMacro() models.MacroSnapshot {
	return mockMacro
}

// MacroAssembler builds the seven-slot macro snapshot from live reference
// snapshots, falling back per slot to the mock values.
type MacroAssembler struct {
	snapshots *SnapshotService
}

func NewMacroAssembler(snapshots *SnapshotService) *MacroAssembler {
	return &MacroAssembler{snapshots: snapshots}
}

// Assemble fetches the reference symbols and fills every slot. Slots whose
// fetch failed keep their mock quote; the result never has an empty slot.
func (a *MacroAssembler) Assemble(ctx context.Context) models.MacroSnapshot {
	refs := registry.MacroRefs()

	live := a.snapshots.FetchAll(ctx, refs)
	bySymbol := make(map[string]models.AssetSnapshot, len(live))
	for _, snap := range live {
		bySymbol[snap.Symbol] = snap
	}

	out := mockMacro
	for _, sym := range refs {
		snap, ok := bySymbol[sym]
		if !ok {
			continue
		}
		name := slotNames[sym]
		*macroSlotRef(&out, name) = quoteFromSnapshot(name, snap)
	}
	return out
}

func macroSlotRef(m *models.MacroSnapshot, name string) *models.MarketQuote {
	switch name {
	case "DXY":
		return &m.DXY
	case "US10Y":
		return &m.US10Y
	case "VIX":
		return &m.VIX
	case "SPX":
		return &m.SPX
	case "NAS100":
		return &m.NAS100
	case "GOLD":
		return &m.Gold
	default:
		return &m.BTC
	}
}

// quoteFromSnapshot condenses an asset snapshot into a macro reference
// reading. Sparkline = up to the last 7 daily closes.
func quoteFromSnapshot(name string, snap models.AssetSnapshot) models.MarketQuote {
	spark := make([]float64, 0, 7)
	bars := snap.BarsD1
	if len(bars) > 7 {
		bars = bars[len(bars)-7:]
	}
	for _, b := range bars {
		spark = append(spark, b.Close)
	}

	return models.MarketQuote{
		Symbol:    name,
		Price:     snap.Price,
		Change:    util.Round(snap.Price-snap.PrevClose, 4),
		ChangePct: snap.ChangePct,
		Sparkline: spark,
	}
}
