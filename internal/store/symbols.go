package store

import (
	"strings"
	"sync"
	"time"

	"StockPulse/internal/model"
)

// SymbolStore is the in-memory source of truth for fetched symbol data.
// A record is created on first upsert and retained for the process lifetime;
// there is no eviction. All mutation goes through the upsert methods, and
// reads return defensive copies, so records never change shape under a
// caller. Writes are last-write-wins.
type SymbolStore struct {
	mu      sync.RWMutex
	records map[string]*model.SymbolRecord
}

func NewSymbolStore() *SymbolStore {
	return &SymbolStore{records: make(map[string]*model.SymbolRecord)}
}

// Upsert replaces both the quote and the series for a symbol. This is the
// full selection path.
func (s *SymbolStore) Upsert(symbol string, quote model.Quote, series model.TimeSeries) model.SymbolRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.record(symbol)
	rec.Quote = quote
	rec.Series = make(model.TimeSeries, len(series))
	copy(rec.Series, series)
	rec.LastUpdate = time.Now().UnixMilli()
	rec.IsRealTimeData = quote.IsRealTime && rec.Series.IsRealTime()
	return copyRecord(rec)
}

// UpsertQuote replaces only the quote and lastUpdate, leaving any cached
// series untouched. This is the periodic refresh path.
func (s *SymbolStore) UpsertQuote(symbol string, quote model.Quote) model.SymbolRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.record(symbol)
	rec.Quote = quote
	rec.LastUpdate = time.Now().UnixMilli()
	rec.IsRealTimeData = quote.IsRealTime && rec.Series.IsRealTime()
	return copyRecord(rec)
}

// Get returns a copy of the record for a symbol.
func (s *SymbolStore) Get(symbol string) (model.SymbolRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[canonical(symbol)]
	if !ok {
		return model.SymbolRecord{}, false
	}
	return copyRecord(rec), true
}

// Len returns how many distinct symbols have been stored.
func (s *SymbolStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// record returns the existing record or creates an empty one. Caller holds
// the write lock.
func (s *SymbolStore) record(symbol string) *model.SymbolRecord {
	key := canonical(symbol)
	rec, ok := s.records[key]
	if !ok {
		rec = &model.SymbolRecord{Symbol: key}
		s.records[key] = rec
	}
	return rec
}

func copyRecord(rec *model.SymbolRecord) model.SymbolRecord {
	out := *rec
	out.Series = make(model.TimeSeries, len(rec.Series))
	copy(out.Series, rec.Series)
	return out
}

func canonical(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
