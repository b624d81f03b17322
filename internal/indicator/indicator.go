// Package indicator provides pure, stateless technical-indicator functions
// over an ordered close-price sequence.
package indicator

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// lastN returns the trailing n elements, or the whole slice when shorter.
func lastN(prices []float64, n int) []float64 {
	if len(prices) <= n {
		return prices
	}
	return prices[len(prices)-n:]
}
