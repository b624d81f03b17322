package recorder

import "StockPulse/internal/model"

// Recorder persists fetched quotes and issued predictions for later
// analysis.
type Recorder interface {
	RecordQuote(symbol string, q *model.Quote) error
	RecordPrediction(symbol string, p *model.PredictionResult) error
	Close() error
}
