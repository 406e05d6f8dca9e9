package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	xhttp "ApexDesk/pkg/http"

	"github.com/tidwall/gjson"
)

// Default intervals for the two timeframes the dashboard works on.
const (
	IntervalDaily  = "1d"
	IntervalHourly = "1h"
)

// Bar is one raw candle from the chart API. Yahoo pads holiday slots with
// nulls, so every field except the timestamp is nullable; the snapshot
// builder decides what to keep.
type Bar struct {
	Time   time.Time
	Open   *float64
	High   *float64
	Low    *float64
	Close  *float64
	Volume *float64
}

// ChartMeta carries the spot fields the chart endpoint reports beside the
// candles. Used as fallback when the quote endpoint fails.
type ChartMeta struct {
	RegularMarketPrice *float64 `json:"regularMarketPrice"`
	ChartPreviousClose *float64 `json:"chartPreviousClose"`
	FiftyTwoWeekHigh   *float64 `json:"fiftyTwoWeekHigh"`
	FiftyTwoWeekLow    *float64 `json:"fiftyTwoWeekLow"`
}

// Chart is a parsed chart response: meta plus time-ascending bars.
type Chart struct {
	Meta ChartMeta
	Bars []Bar
}

// Quote holds the spot fields of the quote endpoint. All nullable: Yahoo
// omits fields freely depending on asset class and market phase.
type Quote struct {
	RegularMarketPrice         *float64
	RegularMarketPreviousClose *float64
	RegularMarketOpen          *float64
	FiftyTwoWeekHigh           *float64
	FiftyTwoWeekLow            *float64
}

// Client fetches quotes and charts from the Yahoo Finance public API.
type Client struct {
	baseURL string
	http    *xhttp.Client
}

// Option configures Client.
type Option func(*Client)

// WithBaseURL overrides the upstream base URL, mainly for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// NewClient creates a Yahoo Finance client.
func NewClient(timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: "https://query1.finance.yahoo.com",
		http: xhttp.NewClient(
			xhttp.WithTimeout(timeout),
			xhttp.WithUserAgent("Mozilla/5.0"),
		),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// chartResponse mirrors the v8 chart payload. Candle arrays use pointer
// slices so null slots survive decoding.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta       ChartMeta `json:"meta"`
			Timestamp  []int64   `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// Chart fetches candles for ticker from period1 to now at the given
// interval.
func (c *Client) Chart(ctx context.Context, ticker string, period1 time.Time, interval string) (*Chart, error) {
	var resp chartResponse
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    fmt.Sprintf("%s/v8/finance/chart/%s", c.baseURL, url.PathEscape(ticker)),
		QueryParams: map[string][]string{
			"period1":        {strconv.FormatInt(period1.Unix(), 10)},
			"period2":        {strconv.FormatInt(time.Now().Unix(), 10)},
			"interval":       {interval},
			"includePrePost": {"false"},
		},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("chart %s: %w", ticker, err)
	}

	if resp.Chart.Error != nil {
		return nil, fmt.Errorf("chart %s: upstream error %s: %s",
			ticker, resp.Chart.Error.Code, resp.Chart.Error.Description)
	}
	if len(resp.Chart.Result) == 0 {
		return nil, fmt.Errorf("chart %s: empty result", ticker)
	}

	result := resp.Chart.Result[0]
	chart := &Chart{Meta: result.Meta}
	if len(result.Indicators.Quote) == 0 {
		return chart, nil
	}

	quote := result.Indicators.Quote[0]
	at := func(vals []*float64, i int) *float64 {
		if i < len(vals) {
			return vals[i]
		}
		return nil
	}

	chart.Bars = make([]Bar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		chart.Bars = append(chart.Bars, Bar{
			Time:   time.Unix(ts, 0),
			Open:   at(quote.Open, i),
			High:   at(quote.High, i),
			Low:    at(quote.Low, i),
			Close:  at(quote.Close, i),
			Volume: at(quote.Volume, i),
		})
	}
	return chart, nil
}

// Quote fetches the spot quote for ticker. Parsed leniently: missing fields
// come back nil instead of failing the whole snapshot.
func (c *Client) Quote(ctx context.Context, ticker string) (*Quote, error) {
	var raw []byte
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + "/v7/finance/quote",
		QueryParams: map[string][]string{
			"symbols": {ticker},
		},
	}, &raw)
	if err != nil {
		return nil, fmt.Errorf("quote %s: %w", ticker, err)
	}

	if e := gjson.GetBytes(raw, "quoteResponse.error"); e.Exists() && e.Type != gjson.Null {
		return nil, fmt.Errorf("quote %s: upstream error: %s", ticker, e.Raw)
	}

	first := gjson.GetBytes(raw, "quoteResponse.result.0")
	if !first.Exists() {
		return nil, fmt.Errorf("quote %s: empty result", ticker)
	}

	num := func(path string) *float64 {
		v := first.Get(path)
		if !v.Exists() || v.Type == gjson.Null {
			return nil
		}
		f := v.Float()
		return &f
	}

	return &Quote{
		RegularMarketPrice:         num("regularMarketPrice"),
		RegularMarketPreviousClose: num("regularMarketPreviousClose"),
		RegularMarketOpen:          num("regularMarketOpen"),
		FiftyTwoWeekHigh:           num("fiftyTwoWeekHigh"),
		FiftyTwoWeekLow:            num("fiftyTwoWeekLow"),
	}, nil
}
