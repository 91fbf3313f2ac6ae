package model

import (
	"math"
	"time"
)

// PricePoint is a single closing price on one trading day.
type PricePoint struct {
	Date  time.Time
	Close float64
}

// HistoricalSeries holds fetched closing prices for one ticker, ordered by
// date. Non-trading days are simply absent.
type HistoricalSeries struct {
	Ticker    string
	Points    []PricePoint
	FetchedAt time.Time
}

// Len returns the number of trading days in the series.
func (s *HistoricalSeries) Len() int { return len(s.Points) }

// Closes extracts the closing prices in date order.
func (s *HistoricalSeries) Closes() []float64 {
	closes := make([]float64, len(s.Points))
	for i, p := range s.Points {
		closes[i] = p.Close
	}
	return closes
}

// CurrentPrice returns the most recent closing price, or 0 for an empty series.
func (s *HistoricalSeries) CurrentPrice() float64 {
	if len(s.Points) == 0 {
		return 0
	}
	return s.Points[len(s.Points)-1].Close
}

// SeriesSummary describes the historical window the forecast was built from.
type SeriesSummary struct {
	CurrentPrice float64   `json:"current_price"`
	Mean         float64   `json:"historical_mean"`
	Std          float64   `json:"historical_std"`
	Min          float64   `json:"historical_min"`
	Max          float64   `json:"historical_max"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	TotalDays    int       `json:"total_days"`
	ChangePct    float64   `json:"price_change_pct"`
}

// Summary computes descriptive statistics over the whole window.
func (s *HistoricalSeries) Summary() SeriesSummary {
	sum := SeriesSummary{TotalDays: len(s.Points)}
	if len(s.Points) == 0 {
		return sum
	}

	first := s.Points[0].Close
	last := s.Points[len(s.Points)-1].Close
	sum.CurrentPrice = last
	sum.StartDate = s.Points[0].Date
	sum.EndDate = s.Points[len(s.Points)-1].Date
	if first != 0 {
		sum.ChangePct = (last/first - 1) * 100
	}

	total := 0.0
	sum.Min = s.Points[0].Close
	sum.Max = s.Points[0].Close
	for _, p := range s.Points {
		total += p.Close
		if p.Close < sum.Min {
			sum.Min = p.Close
		}
		if p.Close > sum.Max {
			sum.Max = p.Close
		}
	}
	sum.Mean = total / float64(len(s.Points))

	varSum := 0.0
	for _, p := range s.Points {
		d := p.Close - sum.Mean
		varSum += d * d
	}
	sum.Std = math.Sqrt(varSum / float64(len(s.Points)))

	return sum
}
