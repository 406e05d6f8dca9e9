// Package news serves per-symbol headlines from the upstream RSS feed,
// cached briefly and backed by a deterministic mock dataset.
package news

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"ApexDesk/internal/domain/models"
	"ApexDesk/internal/registry"
	svccache "ApexDesk/internal/service/cache"
	"ApexDesk/internal/service/metrics"
	xhttp "ApexDesk/pkg/http"
	applogger "ApexDesk/pkg/logger"
)

const maxItems = 6

// Result is what the news endpoint serves for one symbol.
type Result struct {
	Items     []models.NewsItem `json:"items"`
	Source    string            `json:"source"` // live or mock
	FromCache bool              `json:"fromCache"`
}

// Service fetches headlines for one watchlist symbol at a time.
type Service struct {
	baseURL string
	ttl     time.Duration
	http    *xhttp.Client
	cache   *svccache.TTLCache
	logger  *applogger.Logger
}

func NewService(baseURL string, timeout, ttl time.Duration, logger *applogger.Logger) *Service {
	return &Service{
		baseURL: baseURL,
		ttl:     ttl,
		http: xhttp.NewClient(
			xhttp.WithTimeout(timeout),
			xhttp.WithUserAgent("Mozilla/5.0 (compatible; TradingBot/1.0)"),
		),
		cache:  svccache.NewTTLCache(),
		logger: logger,
	}
}

// ForSymbol returns the latest headlines for symbol. Unknown symbols and
// upstream failures serve the mock set rather than an error.
func (s *Service) ForSymbol(ctx context.Context, symbol string) Result {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	if v, ok := s.cache.Get(symbol); ok {
		res := v.(Result)
		res.FromCache = true
		return res
	}

	entry, known := registry.Resolve(symbol)
	var (
		items  []models.NewsItem
		source = "live"
	)
	if known {
		var err error
		items, err = s.fetchFeed(ctx, entry.Yahoo)
		if err != nil || len(items) == 0 {
			if err != nil && s.logger != nil {
				s.logger.Warn("news feed failed, serving mock",
					applogger.String("symbol", symbol), applogger.Error(err))
			}
			items = nil
		}
	}
	if len(items) == 0 {
		metrics.UpstreamFallbacks.WithLabelValues("news").Inc()
		items = mockNews(symbol)
		source = "mock"
	}

	res := Result{Items: items, Source: source}
	s.cache.Set(symbol, res, s.ttl)
	return res
}

type rssItem struct {
	Title   string `xml:"title"`
	Link    string `xml:"link"`
	GUID    string `xml:"guid"`
	PubDate string `xml:"pubDate"`
	Source  string `xml:"source"`
}

type rssDoc struct {
	Items []rssItem `xml:"channel>item"`
}

func (s *Service) fetchFeed(ctx context.Context, ticker string) ([]models.NewsItem, error) {
	var raw []byte
	err := s.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    s.baseURL,
		Headers: map[string]string{
			"Accept": "application/rss+xml, application/xml, text/xml",
		},
		QueryParams: map[string][]string{
			"s":      {ticker},
			"lang":   {"fr-FR"},
			"region": {"FR"},
		},
	}, &raw)
	if err != nil {
		return nil, fmt.Errorf("news fetch: %w", err)
	}

	var doc rssDoc
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("news parse: %w", err)
	}

	items := make([]models.NewsItem, 0, maxItems)
	for _, it := range doc.Items {
		if len(items) == maxItems {
			break
		}
		title := strings.TrimSpace(it.Title)
		if title == "" {
			continue
		}
		link := strings.TrimSpace(it.Link)
		if link == "" {
			link = strings.TrimSpace(it.GUID)
		}
		if link == "" {
			link = "#"
		}
		src := strings.TrimSpace(it.Source)
		if src == "" {
			src = "Yahoo Finance"
		}
		items = append(items, models.NewsItem{
			Title:   title,
			Link:    link,
			PubDate: strings.TrimSpace(it.PubDate),
			Source:  src,
		})
	}
	return items, nil
}
