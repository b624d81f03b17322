package predictor

import "StockPulse/internal/indicator"

// Momentum extrapolates the mean recent day-over-day return over the
// horizon, damped to avoid runaway compounding.
type Momentum struct{}

func (Momentum) Name() string { return "Momentum Analysis" }

// Estimate averages the returns among the last ten points and applies them
// multiplicatively, scaled by days and a 0.6 damping factor. Confidence
// falls twice as fast with volatility as the moving-average model, clamped
// into [60,75].
func (Momentum) Estimate(prices []float64, days int) Estimate {
	recent := lastN(prices, 10)
	var momentum float64
	if len(recent) >= 2 {
		for i := 1; i < len(recent); i++ {
			momentum += (recent[i] - recent[i-1]) / recent[i-1]
		}
		momentum /= float64(len(recent) - 1)
	}

	current := prices[len(prices)-1]
	predicted := current * (1 + momentum*float64(days)*0.6)
	if predicted < 0 {
		predicted = 0
	}

	vol := indicator.Volatility(lastN(prices, 20))
	return Estimate{
		PredictedPrice: predicted,
		Confidence:     clamp((1-2*vol)*100, 60, 75),
		AccuracyBand:   "60-75%",
	}
}
