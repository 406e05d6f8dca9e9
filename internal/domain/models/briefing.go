package models

// Briefing is the parsed LLM answer. The model output is schema-loose, so it
// is kept as a generic object and only augmented with the keys the service
// guarantees (slot, generated_at, fromCache).
type Briefing map[string]interface{}

// Importance ranks an economic calendar event.
type Importance string

const (
	ImportanceHigh   Importance = "high"
	ImportanceMedium Importance = "medium"
	ImportanceLow    Importance = "low"
)

// CalendarEvent is one economic calendar entry, times rendered in
// Europe/Paris.
type CalendarEvent struct {
	ID             string     `json:"id"`
	Time           string     `json:"time"`
	Currency       string     `json:"currency"`
	Importance     Importance `json:"importance"`
	Title          string     `json:"title"`
	Forecast       *string    `json:"forecast"`
	Previous       *string    `json:"previous"`
	Actual         *string    `json:"actual"`
	ImpactsSymbols []string   `json:"impactsSymbols"`
}

// NewsItem is one headline from the per-symbol news feed.
type NewsItem struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	PubDate string `json:"pubDate"`
	Source  string `json:"source"`
}
