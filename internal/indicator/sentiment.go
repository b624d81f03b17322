package indicator

// Sentiment buckets.
const (
	SentimentBullish = "Bullish"
	SentimentBearish = "Bearish"
	SentimentNeutral = "Neutral"
)

// Sentiment scores the trend over the last ten prices on a 0-100 scale:
// the relative move is scaled by 1000 around a neutral 50, then clamped.
// Scores above 65 are Bullish, below 35 Bearish, Neutral in between.
func Sentiment(prices []float64) (float64, string) {
	recent := lastN(prices, 10)
	if len(recent) < 2 {
		return 50, SentimentNeutral
	}

	trend := (recent[len(recent)-1] - recent[0]) / recent[0]
	score := clamp(50+trend*1000, 0, 100)

	switch {
	case score > 65:
		return score, SentimentBullish
	case score < 35:
		return score, SentimentBearish
	default:
		return score, SentimentNeutral
	}
}
