package indicator

import (
	"math"
	"testing"
)

func TestRSI_ShortHistoryIsNeutral(t *testing.T) {
	if got := RSI([]float64{1, 2, 3}, 14); got != 50 {
		t.Errorf("RSI = %.1f, want neutral 50", got)
	}
}

func TestRSI_AllGains(t *testing.T) {
	prices := make([]float64, 15)
	for i := range prices {
		prices[i] = 100 + float64(i)
	}
	if got := RSI(prices, 14); got != 100 {
		t.Errorf("RSI = %.1f, want 100 with no losses", got)
	}
}

func TestRSI_AllLosses(t *testing.T) {
	prices := make([]float64, 15)
	for i := range prices {
		prices[i] = 100 - float64(i)
	}
	if got := RSI(prices, 14); got != 0 {
		t.Errorf("RSI = %.1f, want 0 with no gains", got)
	}
}

func TestRSI_BalancedMoves(t *testing.T) {
	// Seven +1 moves then seven -1 moves: equal average gain and loss.
	prices := []float64{100, 101, 102, 103, 104, 105, 106, 107, 106, 105, 104, 103, 102, 101, 100}
	if got := RSI(prices, 14); math.Abs(got-50) > 1e-9 {
		t.Errorf("RSI = %.4f, want 50", got)
	}
}

func TestSMA(t *testing.T) {
	tests := []struct {
		name   string
		prices []float64
		period int
		want   float64
	}{
		{"empty", nil, 20, 0},
		{"shorter than period returns last", []float64{10, 20, 30}, 20, 30},
		{"exact window", []float64{1, 2, 3, 4}, 4, 2.5},
		{"trailing window", []float64{100, 1, 2, 3}, 3, 2},
	}
	for _, tt := range tests {
		if got := SMA(tt.prices, tt.period); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: SMA = %.4f, want %.4f", tt.name, got, tt.want)
		}
	}
}

func TestVolatility_ConstantSeriesIsZero(t *testing.T) {
	if got := Volatility([]float64{5, 5, 5, 5, 5}); got != 0 {
		t.Errorf("volatility = %.4f, want 0", got)
	}
}

func TestVolatility_TooShortIsZero(t *testing.T) {
	if got := Volatility([]float64{5}); got != 0 {
		t.Errorf("volatility = %.4f, want 0", got)
	}
}

func TestVolatility_PositiveForMovingSeries(t *testing.T) {
	got := Volatility([]float64{100, 105, 95, 110, 90})
	if got <= 0 {
		t.Errorf("volatility = %.4f, want > 0", got)
	}
}

func TestSentiment_Buckets(t *testing.T) {
	up := []float64{100, 101, 102, 103, 104, 105, 106, 107, 108, 110}
	score, label := Sentiment(up)
	if label != SentimentBullish {
		t.Errorf("rising series: label = %q, want Bullish (score %.1f)", label, score)
	}
	if score != 100 {
		t.Errorf("strong rise should clamp to 100, got %.1f", score)
	}

	down := []float64{110, 108, 107, 106, 105, 104, 103, 102, 101, 100}
	score, label = Sentiment(down)
	if label != SentimentBearish {
		t.Errorf("falling series: label = %q, want Bearish (score %.1f)", label, score)
	}

	flat := []float64{100, 100, 100, 100}
	score, label = Sentiment(flat)
	if label != SentimentNeutral || score != 50 {
		t.Errorf("flat series: score %.1f label %q, want 50 Neutral", score, label)
	}
}

func TestSentiment_ShortHistoryIsNeutral(t *testing.T) {
	score, label := Sentiment([]float64{100})
	if score != 50 || label != SentimentNeutral {
		t.Errorf("got %.1f %q, want 50 Neutral", score, label)
	}
}

func TestLevels(t *testing.T) {
	prices := []float64{90, 110, 100, 95, 105}
	support, resistance, target := Levels(prices, 105)

	if support != 90 {
		t.Errorf("support = %.1f, want 90", support)
	}
	if resistance != 110 {
		t.Errorf("resistance = %.1f, want 110", resistance)
	}
	if target <= 105 {
		t.Errorf("target = %.1f, want above current for a volatile series", target)
	}
}

func TestLevels_EmptyHistoryCollapses(t *testing.T) {
	support, resistance, target := Levels(nil, 42)
	if support != 42 || resistance != 42 || target != 42 {
		t.Errorf("got %v/%v/%v, want all 42", support, resistance, target)
	}
}
