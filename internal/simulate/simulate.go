package simulate

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"PriceProphet/internal/model"
)

// ErrInvalidParameter means a simulation input is outside its domain.
var ErrInvalidParameter = errors.New("invalid simulation parameter")

// Request describes one simulation run.
type Request struct {
	CurrentPrice       float64
	NumPaths           int
	ForecastDays       int
	TradingDaysPerYear int   // 0 means 252
	Workers            int   // 0 means GOMAXPROCS
	Seed               int64 // 0 means time-based
}

// Run simulates a geometric Brownian motion ensemble:
//
//	S[t] = S[t-1] * exp((mu - 0.5*sigma^2)*dt + sigma*sqrt(dt)*Z)
//
// with dt of one trading day and an independent standard-normal Z per
// (day, path) cell. Day 0 of every path is fixed at the current price.
//
// Paths carry no data dependency on each other, so the path axis is split
// across workers; each worker walks its own paths day by day with a private
// random source. The multiplicative update keeps every value strictly
// positive for a positive starting price.
func Run(params model.GBMParams, req Request) (*model.Ensemble, error) {
	if req.CurrentPrice <= 0 {
		return nil, fmt.Errorf("%w: current price must be positive, got %.4f", ErrInvalidParameter, req.CurrentPrice)
	}
	if req.NumPaths < 1 {
		return nil, fmt.Errorf("%w: num paths must be >= 1, got %d", ErrInvalidParameter, req.NumPaths)
	}
	if req.ForecastDays < 1 {
		return nil, fmt.Errorf("%w: forecast days must be >= 1, got %d", ErrInvalidParameter, req.ForecastDays)
	}
	if params.Sigma < 0 {
		return nil, fmt.Errorf("%w: volatility must be >= 0, got %.4f", ErrInvalidParameter, params.Sigma)
	}

	tradingDays := req.TradingDaysPerYear
	if tradingDays <= 0 {
		tradingDays = 252
	}
	dt := 1.0 / float64(tradingDays)
	drift := (params.Mu - 0.5*params.Sigma*params.Sigma) * dt
	vol := params.Sigma * math.Sqrt(dt)

	ens := model.NewEnsemble(req.ForecastDays, req.NumPaths)
	day0 := ens.Day(0)
	for p := range day0 {
		day0[p] = req.CurrentPrice
	}
	if req.ForecastDays == 1 {
		return ens, nil
	}

	workers := req.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > req.NumPaths {
		workers = req.NumPaths
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var wg sync.WaitGroup
	chunk := (req.NumPaths + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > req.NumPaths {
			hi = req.NumPaths
		}
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(lo, hi int, rng *rand.Rand) {
			defer wg.Done()
			for t := 1; t < req.ForecastDays; t++ {
				prev := ens.Day(t - 1)
				row := ens.Day(t)
				for p := lo; p < hi; p++ {
					row[p] = prev[p] * math.Exp(drift+vol*rng.NormFloat64())
				}
			}
		}(lo, hi, rand.New(rand.NewSource(seed+int64(w))))
	}
	wg.Wait()

	return ens, nil
}
