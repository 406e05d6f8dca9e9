package models

// Requests for the HTTP edges. Defined in domain for consistency and reuse.

type MarketDataRequest struct {
	Symbols string `query:"symbols" json:"symbols"`
}

type BriefingRequest struct {
	APIKey         string   `json:"apiKey"`
	ForceRefresh   bool     `json:"forceRefresh"`
	Assets         []string `json:"assets" validate:"omitempty,max=50,dive,min=1,max=12"`
	Slot           string   `json:"slot" default:"14h" validate:"oneof=8h 14h"`
	MorningContext string   `json:"morningContext"`
}

type NewsRequest struct {
	Symbol string `query:"symbol" json:"symbol" validate:"required"`
}

type BiasRequest struct {
	Symbols string `query:"symbols" json:"symbols"`
}
