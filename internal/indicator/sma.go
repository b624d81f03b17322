package indicator

// SMA returns the arithmetic mean of the last period prices. When the series
// is shorter than the period it returns the last price; 0 for an empty
// series.
func SMA(prices []float64, period int) float64 {
	if len(prices) == 0 {
		return 0
	}
	if period <= 0 || len(prices) < period {
		return prices[len(prices)-1]
	}
	sum := 0.0
	for _, p := range prices[len(prices)-period:] {
		sum += p
	}
	return sum / float64(period)
}
