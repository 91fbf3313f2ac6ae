package forecast

import (
	"fmt"
	"log"

	"PriceProphet/internal/analyze"
	"PriceProphet/internal/calibrate"
	"PriceProphet/internal/collector"
	"PriceProphet/internal/config"
	"PriceProphet/internal/model"
	"PriceProphet/internal/recorder"
	"PriceProphet/internal/simulate"
)

// TickerResolver maps a free-text company name to a validated ticker.
type TickerResolver interface {
	Resolve(company string) (string, error)
}

// Pipeline composes the stateless stages of one forecast run:
// resolve -> collect -> calibrate -> simulate -> analyze -> record.
// Each stage is a pure function; the pipeline owns no state between runs and
// the ensemble buffer is dropped as soon as the report exists.
type Pipeline struct {
	Resolver  TickerResolver
	Collector *collector.Collector
	Recorder  recorder.Recorder
	Config    *config.Config
}

// NewPipeline wires the pipeline from its collaborators.
func NewPipeline(res TickerResolver, col *collector.Collector, rec recorder.Recorder, cfg *config.Config) *Pipeline {
	return &Pipeline{Resolver: res, Collector: col, Recorder: rec, Config: cfg}
}

// Run executes a full forecast for a company name using the configured path
// and horizon defaults.
func (p *Pipeline) Run(company string) (*model.ForecastReport, error) {
	return p.RunWith(company, p.Config.Simulation.NumPaths, p.Config.Simulation.ForecastDays)
}

// RunWith executes a full forecast with explicit path and horizon counts.
func (p *Pipeline) RunWith(company string, numPaths, forecastDays int) (*model.ForecastReport, error) {
	ticker, err := p.Resolver.Resolve(company)
	if err != nil {
		return nil, fmt.Errorf("resolve ticker: %w", err)
	}
	log.Printf("[INFO] resolved %q to %s", company, ticker)

	series, err := p.Collector.Collect(ticker, p.Config.Simulation.HistoricalDays)
	if err != nil {
		return nil, fmt.Errorf("collect history: %w", err)
	}
	log.Printf("[INFO] fetched %d days of history for %s", series.Len(), ticker)

	params, err := calibrate.FromSeries(series, p.Config.Simulation.TradingDaysPerYear)
	if err != nil {
		return nil, fmt.Errorf("calibrate: %w", err)
	}
	log.Printf("[INFO] calibrated mu=%.4f sigma=%.4f", params.Mu, params.Sigma)

	ens, err := simulate.Run(params, simulate.Request{
		CurrentPrice:       series.CurrentPrice(),
		NumPaths:           numPaths,
		ForecastDays:       forecastDays,
		TradingDaysPerYear: p.Config.Simulation.TradingDaysPerYear,
		Workers:            p.Config.Simulation.Workers,
		Seed:               p.Config.Simulation.Seed,
	})
	if err != nil {
		return nil, fmt.Errorf("simulate: %w", err)
	}

	rep, err := analyze.Run(ens, series.CurrentPrice())
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	rep.Ticker = ticker
	rep.CompanyName = company
	rep.Params = params
	rep.History = series.Summary()

	if p.Recorder != nil {
		if err := p.Recorder.RecordForecast(rep); err != nil {
			log.Printf("[ERROR] record forecast: %v", err)
		}
	}

	return rep, nil
}
