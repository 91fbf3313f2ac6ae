package recorder

import "PriceProphet/internal/model"

// NoopRecorder is a no-op implementation used when no database is configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordForecast(_ *model.ForecastReport) error { return nil }
func (n *NoopRecorder) Close() error                                 { return nil }
