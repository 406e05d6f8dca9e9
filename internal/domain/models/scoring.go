package models

// AssetType classifies registry entries for the scoring rules.
type AssetType string

const (
	AssetStock     AssetType = "stock"
	AssetIndex     AssetType = "index"
	AssetFX        AssetType = "fx"
	AssetCommodity AssetType = "commodity"
)

// BiasType is the discrete directional label emitted by the scoring engine.
type BiasType string

const (
	BiasBullish  BiasType = "bullish"
	BiasBearish  BiasType = "bearish"
	BiasRange    BiasType = "range"
	BiasVolatile BiasType = "volatile"
)

// ScoringInput feeds one ComputeBias evaluation.
type ScoringInput struct {
	Symbol    string
	AssetType AssetType
	Macro     MacroSnapshot
}

// ScoringResult is the transparent rule-cascade verdict for one symbol.
// Confidence is in [30,100]; Reasons holds at most 3 ordered entries.
type ScoringResult struct {
	Symbol      string   `json:"symbol"`
	Bias        BiasType `json:"bias"`
	Confidence  int      `json:"confidence"`
	Reasons     []string `json:"reasons"`
	FocusDuJour string   `json:"focusDuJour"`
}

// WatchlistItem is one scored entry of the default watchlist.
type WatchlistItem struct {
	Symbol    string    `json:"symbol"`
	AssetType AssetType `json:"assetType"`
}
