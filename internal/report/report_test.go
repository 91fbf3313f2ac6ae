package report

import (
	"math"
	"strings"
	"testing"
	"time"

	"PriceProphet/internal/model"
)

func sampleReport() *model.ForecastReport {
	return &model.ForecastReport{
		Ticker:       "RELIANCE.NS",
		CompanyName:  "Reliance Industries",
		GeneratedAt:  time.Date(2026, 8, 31, 18, 0, 0, 0, time.UTC),
		Params:       model.GBMParams{Mu: 0.12, Sigma: 0.25},
		NumPaths:     100000,
		ForecastDays: 63,
		Summary: model.SummaryStatistics{
			CurrentPrice: 2500,
			Mean:         2575,
			Median:       2560,
			StdDev:       180,
			Min:          1900,
			Max:          3400,
			Percentile5:  2290,
			Percentile25: 2450,
			Percentile75: 2690,
			Percentile95: 2890,
		},
		Shape:         model.DistributionShape{Skewness: 0.35, ExcessKurtosis: 0.2},
		Probabilities: model.ProbabilityMasses{AboveCurrent: 0.64, AboveMean: 0.49, WithinOneStd: 0.68},
		ModalBin:      model.PriceBin{Lower: 2540, Upper: 2555, Count: 4100},
		Bands:         []model.Band{{Day: 0, Mean: 2500, P5: 2500, P25: 2500, P75: 2500, P95: 2500}},
		MidHorizon:    model.HorizonSnapshot{Day: 31, Mean: 2538, P5: 2360, P95: 2720},
		RiskReward:    model.RiskReward{UpsidePct: 15.6, DownsidePct: -8.4, Ratio: 1.86},
		History: model.SeriesSummary{
			StartDate: time.Date(2025, 8, 29, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
			TotalDays: 248,
			Mean:      2380,
			Std:       140,
			Min:       2100,
			Max:       2610,
			ChangePct: 11.2,
		},
	}
}

func TestFormatFull_ContainsAllSections(t *testing.T) {
	out := FormatFull(sampleReport())
	for _, want := range []string{
		"PREDICTION RESULTS FOR RELIANCE.NS",
		"SIMULATION PATHS",
		"PRICE FORECAST WITH CONFIDENCE INTERVALS",
		"DISTRIBUTION OF PREDICTED PRICES",
		"HISTORICAL PRICES",
		"₹2500.00",
		"right-skewed",
		"Expected Return: +3.00%",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("full report missing %q", want)
		}
	}
}

func TestFormatDistribution_UnboundedRatio(t *testing.T) {
	rep := sampleReport()
	rep.RiskReward = model.RiskReward{UpsidePct: 5, DownsidePct: 0, Ratio: math.Inf(1)}
	out := FormatDistribution(rep)
	if !strings.Contains(out, "unbounded") {
		t.Errorf("expected unbounded ratio wording, got:\n%s", out)
	}
	if strings.Contains(out, "+Inf") {
		t.Error("raw +Inf leaked into the report text")
	}
}

func TestFormatTelegram(t *testing.T) {
	out := FormatTelegram(sampleReport())
	for _, want := range []string{"<b>RELIANCE.NS forecast</b>", "2026-08-31", "100000 paths"} {
		if !strings.Contains(out, want) {
			t.Errorf("telegram message missing %q", want)
		}
	}
}
