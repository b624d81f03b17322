package recorder

import "StockPulse/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordQuote(_ string, _ *model.Quote) error                { return nil }
func (n *NoopRecorder) RecordPrediction(_ string, _ *model.PredictionResult) error { return nil }
func (n *NoopRecorder) Close() error                                              { return nil }
