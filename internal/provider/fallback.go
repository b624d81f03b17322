package provider

import (
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"StockPulse/internal/model"
)

// basePrices anchors synthetic data near a plausible level per symbol.
var basePrices = map[string]float64{
	"AAPL": 190, "MSFT": 420, "GOOGL": 165, "TSLA": 240,
	"NVDA": 120, "AMZN": 145, "META": 320, "NFLX": 450,
	"AMD": 140, "INTC": 25,
}

const defaultBasePrice = 100

// FallbackGenerator produces synthetic quote and series data when the
// provider is unreachable or returns garbage, so downstream consumers always
// receive a well-formed result. Everything it emits carries IsRealTime=false.
type FallbackGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewFallbackGenerator creates a generator seeded deterministically so
// fallback-path tests are reproducible.
func NewFallbackGenerator(seed int64) *FallbackGenerator {
	return &FallbackGenerator{
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now,
	}
}

// Quote fabricates a quote around the symbol's base price with a bounded
// perturbation of at most ±2%.
func (g *FallbackGenerator) Quote(symbol string) model.Quote {
	g.mu.Lock()
	defer g.mu.Unlock()

	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	base := basePriceFor(symbol)
	move := (g.rng.Float64() - 0.5) * 0.04
	price := base * (1 + move)

	return model.Quote{
		Symbol:        symbol,
		Price:         price,
		Change:        base * move,
		ChangePercent: move * 100,
		High:          math.Max(price, base) * 1.02,
		Low:           math.Min(price, base) * 0.98,
		Open:          base,
		PreviousClose: base,
		Volume:        10_000_000 + g.rng.Int63n(100_000_000),
		Timestamp:     g.now().UTC().Format(time.RFC3339),
		IsRealTime:    false,
	}
}

// Series synthesizes count consecutive daily candles ending now. Each candle
// opens at the previous close and moves with a random 2-5% daily volatility;
// High >= max(Open, Close) and Low <= min(Open, Close) always hold.
func (g *FallbackGenerator) Series(symbol string, count int) model.TimeSeries {
	g.mu.Lock()
	defer g.mu.Unlock()

	base := basePriceFor(strings.ToUpper(strings.TrimSpace(symbol)))
	now := g.now()
	series := make(model.TimeSeries, 0, count)

	prevClose := base
	for i := count - 1; i >= 0; i-- {
		t := now.Add(-time.Duration(i) * 24 * time.Hour)
		dayVol := 0.02 + g.rng.Float64()*0.03

		open := prevClose
		close := open * (1 + (g.rng.Float64()-0.5)*dayVol)
		high := math.Max(open, close) * (1 + g.rng.Float64()*dayVol*0.5)
		low := math.Min(open, close) * (1 - g.rng.Float64()*dayVol*0.5)

		series = append(series, model.Candle{
			Time:       t.UnixMilli(),
			Open:       open,
			High:       high,
			Low:        low,
			Close:      close,
			Volume:     10_000_000 + g.rng.Int63n(100_000_000),
			IsRealTime: false,
		})
		prevClose = close
	}
	return series
}

func basePriceFor(symbol string) float64 {
	if p, ok := basePrices[symbol]; ok {
		return p
	}
	return defaultBasePrice
}
