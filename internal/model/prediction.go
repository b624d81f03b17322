package model

// PredictionResult is the output of one prediction run. Derived on demand,
// never stored.
type PredictionResult struct {
	CurrentPrice   float64 `json:"currentPrice"`
	PredictedPrice float64 `json:"predictedPrice"`
	Change         float64 `json:"change"`
	ChangePercent  float64 `json:"changePercent"`
	Confidence     float64 `json:"confidence"` // 0-100
	AccuracyBand   string  `json:"accuracyBand"`
	Model          string  `json:"model"`
	HorizonDays    int     `json:"horizonDays"`
}
