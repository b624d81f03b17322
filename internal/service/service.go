// Package service ties the provider, stores and engines together behind the
// operations a front end would call.
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/sync/singleflight"

	"StockPulse/internal/indicator"
	"StockPulse/internal/model"
	"StockPulse/internal/predictor"
	"StockPulse/internal/provider"
	"StockPulse/internal/recorder"
	"StockPulse/internal/store"
)

var (
	ErrNoSymbolSelected = errors.New("no symbol selected")
	ErrSymbolNotLoaded  = errors.New("symbol has no loaded data")
	ErrFallbackData     = errors.New("predictions require real provider data")
)

// RefreshControl is the pause/resume surface of the refresh scheduler,
// attached after construction.
type RefreshControl interface {
	Pause()
	Resume()
	Paused() bool
}

// Service is the application facade. Concurrent identical requests are
// collapsed through a singleflight group so a burst of refreshes costs a
// single provider call.
type Service struct {
	client *provider.Client
	store  *store.SymbolStore
	cache  *store.SearchCache
	rec    recorder.Recorder
	group  singleflight.Group

	interval   string
	outputSize int

	mu     sync.Mutex
	active string

	control RefreshControl
}

func New(client *provider.Client, st *store.SymbolStore, cache *store.SearchCache, rec recorder.Recorder, interval string, outputSize int) *Service {
	return &Service{
		client:     client,
		store:      st,
		cache:      cache,
		rec:        rec,
		interval:   interval,
		outputSize: outputSize,
	}
}

// AttachScheduler wires the refresh scheduler in. Pause/Resume are no-ops
// until this is called.
func (s *Service) AttachScheduler(rc RefreshControl) {
	s.control = rc
}

// SelectSymbol loads the full quote and series for a symbol, stores them and
// makes the symbol the active one. Provider failures degrade to synthetic
// data inside the client, so selection itself cannot fail once the symbol is
// non-empty.
func (s *Service) SelectSymbol(ctx context.Context, symbol string) (model.SymbolRecord, error) {
	sym := canonical(symbol)
	if sym == "" {
		return model.SymbolRecord{}, errors.New("empty symbol")
	}

	v, _, _ := s.group.Do("select:"+sym, func() (any, error) {
		quote := s.client.GetQuote(ctx, sym)
		series := s.client.GetSeries(ctx, sym, s.interval, s.outputSize)
		rec := s.store.Upsert(sym, quote, series)
		if err := s.rec.RecordQuote(sym, &quote); err != nil {
			log.Printf("[ERROR] record quote for %s: %v", sym, err)
		}
		return rec, nil
	})

	s.mu.Lock()
	s.active = sym
	s.mu.Unlock()

	return v.(model.SymbolRecord), nil
}

// ActiveSymbol returns the currently selected symbol, or "".
func (s *Service) ActiveSymbol() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// RefreshActive refetches only the quote for the active symbol, leaving the
// cached series untouched, and returns the fresh quote.
func (s *Service) RefreshActive(ctx context.Context) (model.Quote, error) {
	sym := s.ActiveSymbol()
	if sym == "" {
		return model.Quote{}, ErrNoSymbolSelected
	}

	v, _, _ := s.group.Do("quote:"+sym, func() (any, error) {
		quote := s.client.GetQuote(ctx, sym)
		s.store.UpsertQuote(sym, quote)
		if err := s.rec.RecordQuote(sym, &quote); err != nil {
			log.Printf("[ERROR] record quote for %s: %v", sym, err)
		}
		return quote, nil
	})
	return v.(model.Quote), nil
}

// Search returns symbol matches for a query, served from the TTL cache when
// possible. Queries shorter than two characters return nothing.
func (s *Service) Search(ctx context.Context, query string) []model.SearchResult {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < 2 {
		return nil
	}

	if results, ok := s.cache.Get(query); ok {
		return results
	}

	v, _, _ := s.group.Do("search:"+strings.ToLower(query), func() (any, error) {
		results := s.client.Search(ctx, query)
		s.cache.Put(query, results)
		return results, nil
	})
	return v.([]model.SearchResult)
}

// Indicators computes the technical-indicator set from a symbol's cached
// series and current price.
func (s *Service) Indicators(symbol string) (model.IndicatorSet, error) {
	rec, ok := s.store.Get(symbol)
	if !ok {
		return model.IndicatorSet{}, fmt.Errorf("%s: %w", canonical(symbol), ErrSymbolNotLoaded)
	}

	prices := rec.Series.Closes()
	current := rec.Quote.Price

	score, label := indicator.Sentiment(prices)
	support, resistance, target := indicator.Levels(prices, current)

	recent := prices
	if len(recent) > 20 {
		recent = recent[len(recent)-20:]
	}

	return model.IndicatorSet{
		RSI:            indicator.RSI(prices, 14),
		SMA20:          indicator.SMA(prices, 20),
		SMA50:          indicator.SMA(prices, 50),
		Volatility:     indicator.Volatility(recent),
		SentimentScore: score,
		Sentiment:      label,
		Support:        support,
		Resistance:     resistance,
		Target:         target,
	}, nil
}

// Predict runs a prediction model over a symbol's cached series. Predictions
// are refused when nothing is selected, the symbol has no data, or its data
// is synthetic.
func (s *Service) Predict(symbol, modelKey string, days int) (model.PredictionResult, error) {
	sym := canonical(symbol)
	if sym == "" {
		sym = s.ActiveSymbol()
	}
	if sym == "" {
		return model.PredictionResult{}, ErrNoSymbolSelected
	}

	rec, ok := s.store.Get(sym)
	if !ok {
		return model.PredictionResult{}, fmt.Errorf("%s: %w", sym, ErrSymbolNotLoaded)
	}
	if !rec.IsRealTimeData {
		return model.PredictionResult{}, fmt.Errorf("%s: %w", sym, ErrFallbackData)
	}

	result, err := predictor.Predict(rec.Series.Closes(), modelKey, days)
	if err != nil {
		return model.PredictionResult{}, fmt.Errorf("predict %s: %w", sym, err)
	}
	if err := s.rec.RecordPrediction(sym, &result); err != nil {
		log.Printf("[ERROR] record prediction for %s: %v", sym, err)
	}
	return result, nil
}

// PauseRefresh suspends the auto-refresh ticks.
func (s *Service) PauseRefresh() {
	if s.control != nil {
		s.control.Pause()
	}
}

// ResumeRefresh restarts the auto-refresh ticks.
func (s *Service) ResumeRefresh() {
	if s.control != nil {
		s.control.Resume()
	}
}

// QuotaExhausted reports whether the daily provider call budget is used up.
func (s *Service) QuotaExhausted() bool {
	return s.client.Limiter.Exhausted()
}

// QuotaUsed returns how many provider calls have been made today.
func (s *Service) QuotaUsed() int {
	return s.client.Limiter.CallsUsed()
}

func canonical(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
