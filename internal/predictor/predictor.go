// Package predictor derives short-horizon price estimates from a close-price
// history. The estimates are heuristic curve-fits, not a trained model.
package predictor

import (
	"errors"

	"StockPulse/internal/model"
)

// Estimate is a single model's raw output before the wrapper derives the
// change metrics.
type Estimate struct {
	PredictedPrice float64
	Confidence     float64
	AccuracyBand   string
}

// Model is one interchangeable prediction strategy.
type Model interface {
	Name() string
	Estimate(prices []float64, days int) Estimate
}

// models maps external model keys to implementations.
var models = map[string]Model{
	"linear":         LinearRegression{},
	"moving_average": MovingAverage{},
	"momentum":       Momentum{},
}

const (
	// realDataBoost is added to a model's confidence because predictions
	// only ever run on provider-sourced history.
	realDataBoost = 10
	maxConfidence = 95
)

// Predict runs the named model (linear regression when the key is unknown)
// over the price history and derives change and confidence metrics.
func Predict(prices []float64, modelKey string, days int) (model.PredictionResult, error) {
	if len(prices) == 0 {
		return model.PredictionResult{}, errors.New("empty price history")
	}
	if days < 1 {
		days = 1
	}

	m, ok := models[modelKey]
	if !ok {
		m = models["linear"]
	}

	current := prices[len(prices)-1]
	est := m.Estimate(prices, days)

	change := est.PredictedPrice - current
	var changePercent float64
	if current != 0 {
		changePercent = change / current * 100
	}

	confidence := est.Confidence + realDataBoost
	if confidence > maxConfidence {
		confidence = maxConfidence
	}

	return model.PredictionResult{
		CurrentPrice:   current,
		PredictedPrice: est.PredictedPrice,
		Change:         change,
		ChangePercent:  changePercent,
		Confidence:     confidence,
		AccuracyBand:   est.AccuracyBand,
		Model:          m.Name(),
		HorizonDays:    days,
	}, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func lastN(prices []float64, n int) []float64 {
	if len(prices) <= n {
		return prices
	}
	return prices[len(prices)-n:]
}
