package model

// Ensemble is a simulated price grid indexed by (day, path). Values are
// stored day-major in one contiguous buffer, so each day's cross-path slice
// is contiguous and cheap to hand to the analyzer.
type Ensemble struct {
	ForecastDays int
	NumPaths     int

	data []float64
}

// NewEnsemble allocates a zeroed grid of days x paths values.
func NewEnsemble(forecastDays, numPaths int) *Ensemble {
	return &Ensemble{
		ForecastDays: forecastDays,
		NumPaths:     numPaths,
		data:         make([]float64, forecastDays*numPaths),
	}
}

// Day returns the mutable cross-path slice for one day.
func (e *Ensemble) Day(day int) []float64 {
	return e.data[day*e.NumPaths : (day+1)*e.NumPaths]
}

// FinalDay returns the cross-path slice for the last forecast day.
func (e *Ensemble) FinalDay() []float64 {
	return e.Day(e.ForecastDays - 1)
}

// At returns the price of one path on one day.
func (e *Ensemble) At(day, path int) float64 {
	return e.data[day*e.NumPaths+path]
}
