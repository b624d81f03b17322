package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"StockPulse/internal/marketclock"
	"StockPulse/internal/model"
)

type fakeRefresher struct {
	mu        sync.Mutex
	active    string
	exhausted bool
	refreshes int
}

func (f *fakeRefresher) ActiveSymbol() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.active
}

func (f *fakeRefresher) RefreshActive(ctx context.Context) (model.Quote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refreshes++
	return model.Quote{Symbol: f.active}, nil
}

func (f *fakeRefresher) QuotaExhausted() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.exhausted
}

func (f *fakeRefresher) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.refreshes
}

func newTestScheduler(t *testing.T, svc Refresher) *RefreshScheduler {
	t.Helper()
	s := New(context.Background(), svc, marketclock.NewClock())
	if err := s.Register("@every 1h", "@every 1h"); err != nil {
		t.Fatalf("register: %v", err)
	}
	return s
}

func TestQuoteTick_NoSymbolIsNoop(t *testing.T) {
	svc := &fakeRefresher{}
	s := newTestScheduler(t, svc)

	s.QuoteTick()
	if svc.count() != 0 {
		t.Errorf("refreshes = %d, want 0 with no symbol selected", svc.count())
	}
}

func TestQuoteTick_SkipsWhenQuotaExhausted(t *testing.T) {
	svc := &fakeRefresher{active: "AAPL", exhausted: true}
	s := newTestScheduler(t, svc)

	s.QuoteTick()
	if svc.count() != 0 {
		t.Errorf("refreshes = %d, want 0 when quota exhausted", svc.count())
	}
}

func TestQuoteTick_RefreshesActiveSymbol(t *testing.T) {
	svc := &fakeRefresher{active: "AAPL"}
	s := newTestScheduler(t, svc)

	s.QuoteTick()
	if svc.count() != 1 {
		t.Errorf("refreshes = %d, want 1", svc.count())
	}
}

func TestPauseResume(t *testing.T) {
	svc := &fakeRefresher{active: "AAPL"}
	s := newTestScheduler(t, svc)
	s.Start()
	defer s.Stop()

	if s.Paused() {
		t.Fatal("scheduler starts paused")
	}

	s.Pause()
	if !s.Paused() {
		t.Fatal("Paused = false after Pause")
	}
	// Pausing twice stays paused.
	s.Pause()
	if !s.Paused() {
		t.Fatal("second Pause flipped state")
	}

	before := svc.count()
	s.Resume()
	if s.Paused() {
		t.Fatal("Paused = true after Resume")
	}

	// Resume triggers an immediate background refresh.
	deadline := time.Now().Add(time.Second)
	for svc.count() == before {
		if time.Now().After(deadline) {
			t.Fatal("no refresh observed after Resume")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestResume_WhenNotPausedIsNoop(t *testing.T) {
	svc := &fakeRefresher{active: "AAPL"}
	s := newTestScheduler(t, svc)
	s.Start()
	defer s.Stop()

	s.Resume()
	time.Sleep(20 * time.Millisecond)
	if svc.count() != 0 {
		t.Errorf("refreshes = %d, want 0 from a redundant Resume", svc.count())
	}
}

func TestMarketTick_TracksClock(t *testing.T) {
	clock := marketclock.NewClock()
	s := New(context.Background(), &fakeRefresher{}, clock)

	s.MarketTick()
	if s.MarketOpen() != clock.IsOpen(time.Now()) {
		t.Error("MarketOpen disagrees with the clock")
	}
}
