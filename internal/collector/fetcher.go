package collector

import "PriceProphet/internal/model"

// Fetcher defines the interface for fetching market data. The core treats an
// empty or short result as a calibration input failure, never as its own bug.
type Fetcher interface {
	FetchDailyCloses(ticker string, days int) ([]model.PricePoint, error)
	FetchCurrentPrice(ticker string) (float64, error)
	Name() string
}
