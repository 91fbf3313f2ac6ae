package calibrate

import (
	"errors"
	"fmt"
	"math"

	"PriceProphet/internal/model"
	"PriceProphet/internal/stats"
)

var (
	// ErrInsufficientData means the series cannot produce a single usable
	// log return.
	ErrInsufficientData = errors.New("insufficient historical data")

	// ErrInvalidPrice means the series contains a negative price.
	ErrInvalidPrice = errors.New("invalid historical price")
)

// DefaultTradingDays is the trading-year length used for annualization when
// the caller passes 0.
const DefaultTradingDays = 252

// FromSeries calibrates annualized GBM drift and volatility from a closing
// price series.
//
// Returns are computed as r_i = ln(P_i / P_{i-1}). Pairs with a non-positive
// price are skipped rather than failing the whole calibration, so a stray
// zero close cannot push NaN into downstream statistics. The standard
// deviation uses the population convention (divide by N), matching the
// denominator of the mean.
func FromSeries(series *model.HistoricalSeries, tradingDaysPerYear int) (model.GBMParams, error) {
	if tradingDaysPerYear <= 0 {
		tradingDaysPerYear = DefaultTradingDays
	}

	closes := series.Closes()
	if len(closes) < 2 {
		return model.GBMParams{}, fmt.Errorf("%w: need at least 2 prices, got %d", ErrInsufficientData, len(closes))
	}
	for i, p := range closes {
		if p < 0 {
			return model.GBMParams{}, fmt.Errorf("%w: negative price %.4f at index %d", ErrInvalidPrice, p, i)
		}
	}

	returns := LogReturns(closes)
	if len(returns) == 0 {
		return model.GBMParams{}, fmt.Errorf("%w: no usable returns in %d prices", ErrInsufficientData, len(closes))
	}

	meanR, stdR := stats.MeanStd(returns)
	year := float64(tradingDaysPerYear)

	return model.GBMParams{
		Mu:    meanR * year,
		Sigma: stdR * math.Sqrt(year),
	}, nil
}

// LogReturns computes ln(P_i / P_{i-1}) for consecutive closes, skipping any
// pair where either price is non-positive.
func LogReturns(closes []float64) []float64 {
	if len(closes) < 2 {
		return nil
	}
	returns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i] <= 0 || closes[i-1] <= 0 {
			continue
		}
		returns = append(returns, math.Log(closes[i]/closes[i-1]))
	}
	return returns
}
