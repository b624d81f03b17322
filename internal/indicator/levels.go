package indicator

// Levels computes support and resistance as the extremes of the last twenty
// prices, and a price target scaled by recent volatility. With no price
// history all three collapse to the current price.
func Levels(prices []float64, currentPrice float64) (support, resistance, target float64) {
	recent := lastN(prices, 20)
	if len(recent) == 0 {
		return currentPrice, currentPrice, currentPrice
	}

	support, resistance = recent[0], recent[0]
	for _, p := range recent[1:] {
		if p < support {
			support = p
		}
		if p > resistance {
			resistance = p
		}
	}
	target = currentPrice * (1 + Volatility(recent)*0.6)
	return support, resistance, target
}
