package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"StockPulse/internal/model"
)

// Client issues quote, time-series and symbol-search requests against a
// Twelve-Data-shaped REST API. Every request goes through the shared rate
// limiter, so provider calls are strictly sequential system-wide.
type Client struct {
	BaseURL  string
	APIKey   string
	HTTP     *http.Client
	Limiter  *RateLimiter
	Fallback *FallbackGenerator
}

// NewClient creates a client with optional proxy support.
func NewClient(baseURL, apiKey, proxyURL string, limiter *RateLimiter, fallback *FallbackGenerator) *Client {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		HTTP: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		Limiter:  limiter,
		Fallback: fallback,
	}
}

// quotePayload mirrors the /quote response. The provider sends numeric
// fields as JSON strings.
type quotePayload struct {
	Symbol        string `json:"symbol"`
	Close         string `json:"close"`
	Change        string `json:"change"`
	PercentChange string `json:"percent_change"`
	High          string `json:"high"`
	Low           string `json:"low"`
	Open          string `json:"open"`
	PreviousClose string `json:"previous_close"`
	Volume        string `json:"volume"`
	Datetime      string `json:"datetime"`
	Exchange      string `json:"exchange"`
	Currency      string `json:"currency"`

	Status  string `json:"status"`
	Message string `json:"message"`
}

type seriesPayload struct {
	Values []struct {
		Datetime string `json:"datetime"`
		Open     string `json:"open"`
		High     string `json:"high"`
		Low      string `json:"low"`
		Close    string `json:"close"`
		Volume   string `json:"volume"`
	} `json:"values"`

	Status  string `json:"status"`
	Message string `json:"message"`
}

type searchPayload struct {
	Data []struct {
		Symbol         string `json:"symbol"`
		InstrumentName string `json:"instrument_name"`
		InstrumentType string `json:"instrument_type"`
		Exchange       string `json:"exchange"`
		Country        string `json:"country"`
	} `json:"data"`

	Status  string `json:"status"`
	Message string `json:"message"`
}

// GetQuote fetches the latest quote for a symbol. Provider failures never
// escape: the result degrades to synthetic data with IsRealTime=false.
func (c *Client) GetQuote(ctx context.Context, symbol string) model.Quote {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	quote, err := c.fetchQuote(ctx, symbol)
	if err != nil {
		log.Printf("[WARN] quote fetch for %s: %v, using fallback data", symbol, err)
		return c.Fallback.Quote(symbol)
	}
	return quote
}

// GetSeries fetches count candles at the given interval. Provider failures
// never escape: the result degrades to a synthetic series with
// IsRealTime=false candles.
func (c *Client) GetSeries(ctx context.Context, symbol, interval string, count int) model.TimeSeries {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	series, err := c.fetchSeries(ctx, symbol, interval, count)
	if err != nil {
		log.Printf("[WARN] series fetch for %s: %v, using fallback data", symbol, err)
		return c.Fallback.Series(symbol, count)
	}
	return series
}

// Search queries the provider for symbols matching query and merges the
// static popular set, popular matches first, deduplicated by symbol and
// capped at ten entries. On provider failure only the popular matches are
// returned; no entries are fabricated.
func (c *Client) Search(ctx context.Context, query string) []model.SearchResult {
	query = strings.TrimSpace(query)
	results, err := c.fetchSearch(ctx, query)
	if err != nil {
		log.Printf("[WARN] symbol search %q: %v, using popular-symbol matches", query, err)
		return matchPopular(query)
	}
	return results
}

func (c *Client) fetchQuote(ctx context.Context, symbol string) (model.Quote, error) {
	var p quotePayload
	if err := c.get(ctx, "quote", "/quote", url.Values{"symbol": {symbol}}, &p); err != nil {
		return model.Quote{}, err
	}
	if p.Status == "error" {
		return model.Quote{}, &APIError{Op: "quote", Reason: ReasonErrorPayload, Err: errors.New(p.Message)}
	}
	if p.Symbol == "" {
		return model.Quote{}, &APIError{Op: "quote", Reason: ReasonBadPayload, Err: errors.New("payload missing symbol")}
	}

	closePrice := parseFloat(p.Close, 0)
	timestamp := p.Datetime
	if timestamp == "" {
		timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	exchange := p.Exchange
	if exchange == "" {
		exchange = "Unknown"
	}

	return model.Quote{
		Symbol:        p.Symbol,
		Price:         closePrice,
		Change:        parseFloat(p.Change, 0),
		ChangePercent: parseFloat(p.PercentChange, 0),
		High:          parseFloat(p.High, closePrice),
		Low:           parseFloat(p.Low, closePrice),
		Open:          parseFloat(p.Open, closePrice),
		PreviousClose: parseFloat(p.PreviousClose, closePrice),
		Volume:        parseInt(p.Volume),
		Timestamp:     timestamp,
		Exchange:      exchange,
		IsRealTime:    true,
	}, nil
}

func (c *Client) fetchSeries(ctx context.Context, symbol, interval string, count int) (model.TimeSeries, error) {
	var p seriesPayload
	params := url.Values{
		"symbol":     {symbol},
		"interval":   {interval},
		"outputsize": {strconv.Itoa(count)},
	}
	if err := c.get(ctx, "series", "/time_series", params, &p); err != nil {
		return nil, err
	}
	if p.Status == "error" {
		return nil, &APIError{Op: "series", Reason: ReasonErrorPayload, Err: errors.New(p.Message)}
	}
	if len(p.Values) == 0 {
		return nil, &APIError{Op: "series", Reason: ReasonBadPayload, Err: errors.New("payload has no values")}
	}

	series := make(model.TimeSeries, 0, len(p.Values))
	for i, v := range p.Values {
		t, err := parseCandleTime(v.Datetime)
		if err != nil {
			return nil, &APIError{Op: "series", Reason: ReasonBadPayload,
				Err: fmt.Errorf("value %d: %w", i, err)}
		}
		open, err1 := strconv.ParseFloat(v.Open, 64)
		high, err2 := strconv.ParseFloat(v.High, 64)
		low, err3 := strconv.ParseFloat(v.Low, 64)
		closePrice, err4 := strconv.ParseFloat(v.Close, 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			return nil, &APIError{Op: "series", Reason: ReasonBadPayload,
				Err: fmt.Errorf("value %d: malformed OHLC", i)}
		}
		series = append(series, model.Candle{
			Time:       t.UnixMilli(),
			Open:       open,
			High:       high,
			Low:        low,
			Close:      closePrice,
			Volume:     parseInt(v.Volume),
			IsRealTime: true,
		})
	}
	// Providers return newest-first; store oldest-first regardless.
	return series.Normalize(), nil
}

func (c *Client) fetchSearch(ctx context.Context, query string) ([]model.SearchResult, error) {
	var p searchPayload
	if err := c.get(ctx, "search", "/symbol_search", url.Values{"symbol": {query}}, &p); err != nil {
		return nil, err
	}
	if p.Status == "error" {
		return nil, &APIError{Op: "search", Reason: ReasonErrorPayload, Err: errors.New(p.Message)}
	}

	var fromProvider []model.SearchResult
	for _, d := range p.Data {
		if d.InstrumentType != "" && d.InstrumentType != "Common Stock" {
			continue
		}
		name := d.InstrumentName
		if name == "" {
			name = d.Symbol
		}
		fromProvider = append(fromProvider, model.SearchResult{
			Symbol:   d.Symbol,
			Name:     name,
			Exchange: d.Exchange,
			Country:  d.Country,
		})
		if len(fromProvider) == 10 {
			break
		}
	}

	merged := append(matchPopular(query), fromProvider...)
	seen := make(map[string]bool, len(merged))
	results := merged[:0]
	for _, r := range merged {
		if seen[r.Symbol] {
			continue
		}
		seen[r.Symbol] = true
		results = append(results, r)
		if len(results) == 10 {
			break
		}
	}
	return results, nil
}

// get acquires the rate limiter, issues one GET and decodes the body.
// Every failure is classified as an *APIError.
func (c *Client) get(ctx context.Context, op, path string, params url.Values, out any) error {
	if err := c.Limiter.Acquire(ctx); err != nil {
		reason := ReasonTransport
		if errors.Is(err, ErrQuotaExceeded) {
			reason = ReasonQuota
		}
		return &APIError{Op: op, Reason: reason, Err: err}
	}

	params.Set("apikey", c.APIKey)
	endpoint := c.BaseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &APIError{Op: op, Reason: ReasonTransport, Err: err}
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return &APIError{Op: op, Reason: ReasonTransport, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Op: op, Reason: ReasonTransport, Err: fmt.Errorf("read body: %w", err)}
	}
	if resp.StatusCode != http.StatusOK {
		return &APIError{Op: op, Reason: ReasonHTTPStatus,
			Err: fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &APIError{Op: op, Reason: ReasonBadPayload, Err: fmt.Errorf("decode: %w", err)}
	}
	return nil
}

// parseFloat parses a provider numeric string, returning fallback when the
// field is absent or malformed.
func parseFloat(s string, fallback float64) float64 {
	if s == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return f
}

func parseInt(s string) int64 {
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

var candleTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC3339,
}

func parseCandleTime(s string) (time.Time, error) {
	for _, layout := range candleTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable datetime %q", s)
}
