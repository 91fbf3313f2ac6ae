package model

import "time"

// SummaryStatistics describes the final-day price distribution.
type SummaryStatistics struct {
	CurrentPrice float64 `json:"current_price"`
	Mean         float64 `json:"mean_price"`
	Median       float64 `json:"median_price"`
	StdDev       float64 `json:"std_dev"`
	Min          float64 `json:"min_price"`
	Max          float64 `json:"max_price"`
	Percentile5  float64 `json:"percentile_5"`
	Percentile25 float64 `json:"percentile_25"`
	Percentile75 float64 `json:"percentile_75"`
	Percentile95 float64 `json:"percentile_95"`
}

// ExpectedReturnPct is the percentage change from the current price to the
// mean predicted price.
func (s SummaryStatistics) ExpectedReturnPct() float64 {
	if s.CurrentPrice == 0 {
		return 0
	}
	return (s.Mean/s.CurrentPrice - 1) * 100
}

// Band holds the per-day confidence interval across all paths.
type Band struct {
	Day  int     `json:"day"`
	Mean float64 `json:"mean"`
	P5   float64 `json:"p5"`
	P25  float64 `json:"p25"`
	P75  float64 `json:"p75"`
	P95  float64 `json:"p95"`
}

// DistributionShape holds normal-referenced shape measures of the final-day
// distribution.
type DistributionShape struct {
	Skewness       float64 `json:"skewness"`
	ExcessKurtosis float64 `json:"excess_kurtosis"`
}

// ProbabilityMasses holds path fractions (0..1) for the outcome comparisons.
type ProbabilityMasses struct {
	AboveCurrent float64 `json:"above_current"`
	AboveMean    float64 `json:"above_mean"`
	WithinOneStd float64 `json:"within_one_std"`
}

// PriceBin is the modal bin of the final-day price histogram.
type PriceBin struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

// HorizonSnapshot captures the forecast at one specific day.
type HorizonSnapshot struct {
	Day  int     `json:"day"`
	Mean float64 `json:"mean"`
	P5   float64 `json:"p5"`
	P95  float64 `json:"p95"`
}

// RiskReward compares the 95th-percentile gain against the 5th-percentile
// loss, both as percentage moves from the current price. Ratio is +Inf when
// the downside is exactly zero.
type RiskReward struct {
	UpsidePct   float64 `json:"upside_pct"`
	DownsidePct float64 `json:"downside_pct"`
	Ratio       float64 `json:"ratio"`
}

// ForecastReport is the full structured output of one forecast run. It holds
// every figure the narrative and persistence layers quote, so those layers
// never compute statistics themselves.
type ForecastReport struct {
	Ticker      string    `json:"ticker"`
	CompanyName string    `json:"company_name,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`

	Params       GBMParams `json:"params"`
	NumPaths     int       `json:"num_paths"`
	ForecastDays int       `json:"forecast_days"`

	Summary       SummaryStatistics `json:"summary"`
	Shape         DistributionShape `json:"shape"`
	Probabilities ProbabilityMasses `json:"probabilities"`
	ModalBin      PriceBin          `json:"modal_bin"`
	Bands         []Band            `json:"bands"`
	MidHorizon    HorizonSnapshot   `json:"mid_horizon"`
	RiskReward    RiskReward        `json:"risk_reward"`

	// Per-day cross-path standard deviation and its aggregates, showing how
	// uncertainty widens over the horizon.
	DailyVolatility []float64 `json:"daily_volatility"`
	AvgVolatility   float64   `json:"avg_volatility"`
	FinalVolatility float64   `json:"final_volatility"`

	History SeriesSummary `json:"history"`
}
