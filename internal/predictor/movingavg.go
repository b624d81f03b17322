package predictor

import "StockPulse/internal/indicator"

// MovingAverage predicts from the recent average, nudged by the spread
// between the short and long moving averages.
type MovingAverage struct{}

func (MovingAverage) Name() string { return "Moving Average Crossover" }

// Estimate averages the last min(20,n) prices and adjusts by
// (SMA5 - SMA20) scaled by the horizon. Confidence falls with recent
// volatility, clamped into [65,80].
func (MovingAverage) Estimate(prices []float64, days int) Estimate {
	recent := lastN(prices, 20)
	var avg float64
	for _, p := range recent {
		avg += p
	}
	avg /= float64(len(recent))

	trend := indicator.SMA(prices, 5) - indicator.SMA(prices, 20)
	predicted := avg + trend*float64(days)*0.15
	if predicted < 0 {
		predicted = 0
	}

	vol := indicator.Volatility(recent)
	return Estimate{
		PredictedPrice: predicted,
		Confidence:     clamp((1-vol)*100, 65, 80),
		AccuracyBand:   "65-80%",
	}
}
