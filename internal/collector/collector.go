package collector

import (
	"fmt"
	"time"

	"PriceProphet/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Points []model.PricePoint
	Price  float64
	Err    error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyCloses(_ string, days int) ([]model.PricePoint, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Points != nil {
		if len(m.Points) > days {
			return m.Points[len(m.Points)-days:], nil
		}
		return m.Points, nil
	}
	return GenerateMockCloses(m.Price, days), nil
}

func (m *MockFetcher) FetchCurrentPrice(_ string) (float64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	if len(m.Points) > 0 {
		return m.Points[len(m.Points)-1].Close, nil
	}
	return m.Price, nil
}

// GenerateMockCloses builds a gently trending synthetic close series.
func GenerateMockCloses(basePrice float64, count int) []model.PricePoint {
	points := make([]model.PricePoint, count)
	for i := 0; i < count; i++ {
		points[i] = model.PricePoint{
			Date:  time.Now().AddDate(0, 0, -(count - i)),
			Close: basePrice * (1 + float64(i-count/2)*0.001),
		}
	}
	return points
}

// Collector fetches the historical window one forecast is calibrated from.
type Collector struct {
	Fetcher Fetcher
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher}
}

// Collect fetches up to `days` daily closes for the ticker. An empty result
// is reported here; too-short-but-nonempty data is left for the calibrator
// to reject.
func (c *Collector) Collect(ticker string, days int) (*model.HistoricalSeries, error) {
	points, err := c.Fetcher.FetchDailyCloses(ticker, days)
	if err != nil {
		return nil, fmt.Errorf("fetch daily closes: %w", err)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("no historical data for %s", ticker)
	}
	return &model.HistoricalSeries{
		Ticker:    ticker,
		Points:    points,
		FetchedAt: time.Now(),
	}, nil
}
