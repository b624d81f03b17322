package model

// IndicatorSet holds all technical indicators derived from a symbol's series.
type IndicatorSet struct {
	RSI            float64 `json:"rsi"`
	SMA20          float64 `json:"sma20"`
	SMA50          float64 `json:"sma50"`
	Volatility     float64 `json:"volatility"`
	SentimentScore float64 `json:"sentimentScore"` // 0-100
	Sentiment      string  `json:"sentiment"`      // Bullish / Bearish / Neutral
	Support        float64 `json:"support"`
	Resistance     float64 `json:"resistance"`
	Target         float64 `json:"target"`
}
