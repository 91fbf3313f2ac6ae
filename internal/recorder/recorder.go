package recorder

import (
	"math"

	"PriceProphet/internal/model"
)

// Recorder persists the derived summaries of forecast runs. The full
// ensemble is never stored, only the much smaller report.
type Recorder interface {
	RecordForecast(rep *model.ForecastReport) error
	Close() error
}

// finiteOrNil maps NaN/Inf to SQL NULL so an undefined ratio (e.g. a
// risk/reward with zero downside) never poisons an insert.
func finiteOrNil(f float64) interface{} {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return f
}
