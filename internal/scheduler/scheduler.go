package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"StockPulse/internal/marketclock"
	"StockPulse/internal/model"
)

// Refresher is the slice of the quote service the scheduler drives.
type Refresher interface {
	ActiveSymbol() string
	RefreshActive(ctx context.Context) (model.Quote, error)
	QuotaExhausted() bool
}

// RefreshScheduler periodically refreshes the active symbol's quote and
// tracks market open state. It starts active and can be paused and resumed;
// resuming triggers an immediate refresh so the display never waits a full
// tick for fresh data.
type RefreshScheduler struct {
	cron  *cron.Cron
	svc   Refresher
	clock *marketclock.Clock
	ctx   context.Context

	mu         sync.Mutex
	paused     bool
	marketOpen bool
}

// New creates a scheduler. Register must be called before Start.
func New(ctx context.Context, svc Refresher, clock *marketclock.Clock) *RefreshScheduler {
	return &RefreshScheduler{
		cron:  cron.New(cron.WithSeconds()),
		svc:   svc,
		clock: clock,
		ctx:   ctx,
	}
}

// Register adds the quote-refresh and market-state ticks using cron specs
// such as "@every 30s".
func (s *RefreshScheduler) Register(quoteSpec, marketSpec string) error {
	if _, err := s.cron.AddFunc(quoteSpec, s.QuoteTick); err != nil {
		return fmt.Errorf("register quote tick: %w", err)
	}
	if _, err := s.cron.AddFunc(marketSpec, s.MarketTick); err != nil {
		return fmt.Errorf("register market tick: %w", err)
	}
	return nil
}

// Start begins ticking. The market state is sampled immediately so it is
// valid before the first tick fires.
func (s *RefreshScheduler) Start() {
	s.MarketTick()
	s.cron.Start()
	log.Println("[INFO] refresh scheduler started")
}

// Stop halts ticking for shutdown.
func (s *RefreshScheduler) Stop() {
	s.cron.Stop()
	log.Println("[INFO] refresh scheduler stopped")
}

// Pause suspends refresh ticks. Pausing an already paused scheduler is a
// no-op.
func (s *RefreshScheduler) Pause() {
	s.mu.Lock()
	if s.paused {
		s.mu.Unlock()
		return
	}
	s.paused = true
	s.mu.Unlock()

	s.cron.Stop()
	log.Println("[INFO] auto-refresh paused")
}

// Resume restarts refresh ticks and, when a symbol is selected, refreshes it
// immediately in the background.
func (s *RefreshScheduler) Resume() {
	s.mu.Lock()
	if !s.paused {
		s.mu.Unlock()
		return
	}
	s.paused = false
	s.mu.Unlock()

	s.cron.Start()
	log.Println("[INFO] auto-refresh resumed")

	if s.svc.ActiveSymbol() != "" {
		go s.QuoteTick()
	}
}

// Paused reports whether refresh ticks are suspended.
func (s *RefreshScheduler) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

// MarketOpen reports the market state observed by the last market tick.
func (s *RefreshScheduler) MarketOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.marketOpen
}

// QuoteTick refreshes the active symbol's quote. It is a no-op when no
// symbol is selected, and skips the provider entirely once the daily quota
// is exhausted.
func (s *RefreshScheduler) QuoteTick() {
	if s.svc.ActiveSymbol() == "" {
		return
	}
	if s.svc.QuotaExhausted() {
		log.Println("[WARN] daily quota exhausted, skipping quote refresh")
		return
	}
	if _, err := s.svc.RefreshActive(s.ctx); err != nil {
		log.Printf("[ERROR] quote refresh: %v", err)
	}
}

// MarketTick samples the market clock and logs transitions.
func (s *RefreshScheduler) MarketTick() {
	open := s.clock.IsOpen(time.Now())

	s.mu.Lock()
	changed := open != s.marketOpen
	s.marketOpen = open
	s.mu.Unlock()

	if changed {
		state := "closed"
		if open {
			state = "open"
		}
		log.Printf("[INFO] market is now %s", state)
	}
}
