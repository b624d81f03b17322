package indicator

// RSI computes the Relative Strength Index over the most recent period
// transitions. Returns the neutral 50 when fewer than period+1 prices are
// available; 100 when there are no losses. The result is clamped to [0,100].
func RSI(prices []float64, period int) float64 {
	if period <= 0 || len(prices) < period+1 {
		return 50
	}

	var gains, losses float64
	for i := 1; i <= period; i++ {
		change := prices[len(prices)-i] - prices[len(prices)-i-1]
		if change > 0 {
			gains += change
		} else {
			losses -= change
		}
	}

	avgGain := gains / float64(period)
	avgLoss := losses / float64(period)
	if avgLoss == 0 {
		return 100
	}
	rs := avgGain / avgLoss
	return clamp(100-100/(1+rs), 0, 100)
}
