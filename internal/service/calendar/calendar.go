package calendar

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"ApexDesk/internal/domain/models"
	svccache "ApexDesk/internal/service/cache"
	"ApexDesk/internal/service/metrics"
	xhttp "ApexDesk/pkg/http"
	applogger "ApexDesk/pkg/logger"
	"ApexDesk/pkg/util"

	"github.com/tidwall/gjson"
)

const cacheKey = "calendar:today"

// countryCurrency maps calendar country codes to the ISO currency shown to
// the user.
var countryCurrency = map[string]string{
	"US": "USD", "EU": "EUR", "GB": "GBP", "JP": "JPY",
	"CA": "CAD", "CH": "CHF", "AU": "AUD", "NZ": "NZD",
	"CN": "CNY", "DE": "EUR", "FR": "EUR", "IT": "EUR",
}

// currencySymbols lists the watchlist symbols a currency's events impact.
var currencySymbols = map[string][]string{
	"USD": {"EURUSD", "XAUUSD", "NAS100", "US500", "TSLA", "NVDA", "AMD", "MU", "AAPL", "META", "AMZN", "MSFT", "GOOGL"},
	"EUR": {"EURUSD"},
	"GBP": {"GBPUSD"},
	"JPY": {"USDJPY"},
	"CAD": {"USDCAD"},
	"CHF": {"USDCHF"},
	"AUD": {"AUDUSD"},
}

// Result is what the calendar endpoint serves.
type Result struct {
	Events    []models.CalendarEvent `json:"events"`
	Source    string                 `json:"source"` // live or mock
	UpdatedAt string                 `json:"updated_at"`
	FromCache bool                   `json:"fromCache"`
}

// Service fetches today's economic calendar with a mock fallback.
type Service struct {
	url       string
	countries string
	ttl       time.Duration
	http      *xhttp.Client
	cache     *svccache.TTLCache
	logger    *applogger.Logger
}

func NewService(url, countries string, timeout, ttl time.Duration, logger *applogger.Logger) *Service {
	return &Service{
		url:       url,
		countries: countries,
		ttl:       ttl,
		http: xhttp.NewClient(
			xhttp.WithTimeout(timeout),
			xhttp.WithUserAgent("Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"),
		),
		cache:  svccache.NewTTLCache(),
		logger: logger,
	}
}

// Today returns today's events, cached for the configured TTL. Upstream
// failure or an empty day falls back to the mock dataset.
func (s *Service) Today(ctx context.Context) Result {
	if v, ok := s.cache.Get(cacheKey); ok {
		res := v.(Result)
		res.FromCache = true
		return res
	}

	events, err := s.fetchLive(ctx)
	source := "live"
	if err != nil || len(events) == 0 {
		if err != nil && s.logger != nil {
			s.logger.Warn("calendar fetch failed, serving mock", applogger.Error(err))
		}
		metrics.UpstreamFallbacks.WithLabelValues("calendar").Inc()
		events = mockEvents()
		source = "mock"
	}

	res := Result{
		Events:    events,
		Source:    source,
		UpdatedAt: util.ParisNow().Format(time.RFC3339),
	}
	s.cache.Set(cacheKey, res, s.ttl)
	return res
}

// fetchLive queries the public calendar endpoint for today's window. The
// upstream answers either a bare array or {result: [...]}, so parsing goes
// through gjson instead of a fixed schema.
func (s *Service) fetchLive(ctx context.Context) ([]models.CalendarEvent, error) {
	today := util.TodayISO()

	var raw []byte
	err := s.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    s.url,
		Headers: map[string]string{
			"Accept":  "application/json, text/plain, */*",
			"Referer": "https://www.tradingview.com/",
		},
		QueryParams: map[string][]string{
			"from":      {today + "T00:00:00.000Z"},
			"to":        {today + "T23:59:59.000Z"},
			"countries": {s.countries},
		},
	}, &raw)
	if err != nil {
		return nil, fmt.Errorf("calendar fetch: %w", err)
	}

	doc := gjson.ParseBytes(raw)
	list := doc
	if !doc.IsArray() {
		list = doc.Get("result")
	}

	var events []models.CalendarEvent
	idx := 0
	list.ForEach(func(_, e gjson.Result) bool {
		if !e.IsObject() {
			return true
		}

		country := e.Get("country").String()
		currency, ok := countryCurrency[country]
		if !ok {
			currency = country
		}

		impact := e.Get("importance")
		if !impact.Exists() {
			impact = e.Get("impact")
		}
		impactN := impact.Float()
		if !impact.Exists() {
			impactN = 1
		}

		eventTime := "--:--"
		if d := e.Get("date"); d.Exists() {
			if t, err := time.Parse(time.RFC3339, d.String()); err == nil {
				eventTime = util.TimeHHMM(t)
			}
		}

		id := e.Get("id").String()
		if id == "" {
			id = strconv.Itoa(idx)
		}

		title := e.Get("title").String()
		if title == "" {
			title = e.Get("event_name").String()
		}
		if title == "" {
			title = "Événement"
		}

		impacts := currencySymbols[currency]
		if impacts == nil {
			impacts = []string{}
		}

		events = append(events, models.CalendarEvent{
			ID:             id,
			Time:           eventTime,
			Currency:       currency,
			Importance:     impactToImportance(impactN),
			Title:          title,
			Forecast:       optString(e.Get("forecast")),
			Previous:       optString(e.Get("previous")),
			Actual:         optString(e.Get("actual")),
			ImpactsSymbols: impacts,
		})
		idx++
		return true
	})

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Time < events[j].Time
	})
	return events, nil
}

func impactToImportance(impact float64) models.Importance {
	switch {
	case impact >= 3:
		return models.ImportanceHigh
	case impact >= 2:
		return models.ImportanceMedium
	default:
		return models.ImportanceLow
	}
}

func optString(v gjson.Result) *string {
	if !v.Exists() || v.Type == gjson.Null {
		return nil
	}
	s := v.String()
	return &s
}
