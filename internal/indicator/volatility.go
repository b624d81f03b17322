package indicator

import "math"

// tradingDaysPerYear annualizes daily return volatility.
const tradingDaysPerYear = 252

// Volatility returns the annualized population standard deviation of simple
// day-over-day returns. Returns 0 for fewer than two prices.
func Volatility(prices []float64) float64 {
	if len(prices) < 2 {
		return 0
	}

	returns := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		returns = append(returns, (prices[i]-prices[i-1])/prices[i-1])
	}

	var mean float64
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))

	var variance float64
	for _, r := range returns {
		variance += (r - mean) * (r - mean)
	}
	variance /= float64(len(returns))

	return math.Sqrt(variance) * math.Sqrt(tradingDaysPerYear)
}
