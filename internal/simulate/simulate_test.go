package simulate

import (
	"errors"
	"math"
	"testing"

	"PriceProphet/internal/model"
)

func TestRun_DayZeroFixed(t *testing.T) {
	ens, err := Run(model.GBMParams{Mu: 0.1, Sigma: 0.2}, Request{
		CurrentPrice: 100, NumPaths: 500, ForecastDays: 10, Seed: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for p, v := range ens.Day(0) {
		if v != 100 {
			t.Fatalf("path %d day 0: expected 100, got %v", p, v)
		}
	}
}

func TestRun_AllValuesPositiveFinite(t *testing.T) {
	ens, err := Run(model.GBMParams{Mu: 0.1, Sigma: 0.4}, Request{
		CurrentPrice: 50, NumPaths: 2000, ForecastDays: 30, Seed: 7,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for day := 0; day < ens.ForecastDays; day++ {
		for p, v := range ens.Day(day) {
			if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
				t.Fatalf("day %d path %d: expected positive finite value, got %v", day, p, v)
			}
		}
	}
}

func TestRun_ZeroVolatilityDeterministic(t *testing.T) {
	mu := 0.1
	ens, err := Run(model.GBMParams{Mu: mu, Sigma: 0}, Request{
		CurrentPrice: 100, NumPaths: 50, ForecastDays: 20, Seed: 3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dt := 1.0 / 252
	for day := 0; day < ens.ForecastDays; day++ {
		want := 100 * math.Exp(mu*dt*float64(day))
		for p, v := range ens.Day(day) {
			if math.Abs(v-want) > 1e-6 {
				t.Fatalf("day %d path %d: expected %v on the drift curve, got %v", day, p, want, v)
			}
		}
	}
}

func TestRun_SingleDay(t *testing.T) {
	ens, err := Run(model.GBMParams{Mu: 0.1, Sigma: 0.2}, Request{
		CurrentPrice: 100, NumPaths: 10, ForecastDays: 1, Seed: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ens.ForecastDays != 1 {
		t.Fatalf("expected 1 day, got %d", ens.ForecastDays)
	}
	for p, v := range ens.Day(0) {
		if v != 100 {
			t.Errorf("path %d: expected 100, got %v", p, v)
		}
	}
}

func TestRun_SinglePath(t *testing.T) {
	ens, err := Run(model.GBMParams{Mu: 0.1, Sigma: 0.2}, Request{
		CurrentPrice: 100, NumPaths: 1, ForecastDays: 5, Seed: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ens.NumPaths != 1 {
		t.Fatalf("expected 1 path, got %d", ens.NumPaths)
	}
}

func TestRun_InvalidParameters(t *testing.T) {
	tests := []struct {
		name   string
		params model.GBMParams
		req    Request
	}{
		{"zero price", model.GBMParams{}, Request{CurrentPrice: 0, NumPaths: 10, ForecastDays: 5}},
		{"negative price", model.GBMParams{}, Request{CurrentPrice: -5, NumPaths: 10, ForecastDays: 5}},
		{"zero paths", model.GBMParams{}, Request{CurrentPrice: 100, NumPaths: 0, ForecastDays: 5}},
		{"zero days", model.GBMParams{}, Request{CurrentPrice: 100, NumPaths: 10, ForecastDays: 0}},
		{"negative sigma", model.GBMParams{Sigma: -0.1}, Request{CurrentPrice: 100, NumPaths: 10, ForecastDays: 5}},
	}
	for _, tt := range tests {
		if _, err := Run(tt.params, tt.req); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("%s: expected ErrInvalidParameter, got %v", tt.name, err)
		}
	}
}

func TestRun_DriftConvergence(t *testing.T) {
	// Law-of-large-numbers check: under GBM the expected final price is
	// current * exp(mu*T), independent of sigma.
	mu, sigma := 0.10, 0.20
	days := 63
	ens, err := Run(model.GBMParams{Mu: mu, Sigma: sigma}, Request{
		CurrentPrice: 100, NumPaths: 100000, ForecastDays: days, Seed: 42,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sum := 0.0
	for _, v := range ens.FinalDay() {
		sum += v
	}
	mean := sum / float64(ens.NumPaths)

	want := 100 * math.Exp(mu*float64(days-1)/252)
	if math.Abs(mean-want)/want > 0.02 {
		t.Errorf("mean final price %v deviates more than 2%% from drift expectation %v", mean, want)
	}
}

func TestRun_WorkerCountInvariant(t *testing.T) {
	// The ensemble statistics should not depend on how paths were split
	// across workers; day 0 and determinism of chunk-local seeding are the
	// only per-worker differences.
	for _, workers := range []int{1, 3, 16} {
		ens, err := Run(model.GBMParams{Mu: 0.05, Sigma: 0.1}, Request{
			CurrentPrice: 100, NumPaths: 11, ForecastDays: 4, Workers: workers, Seed: 9,
		})
		if err != nil {
			t.Fatalf("workers=%d: unexpected error: %v", workers, err)
		}
		if ens.NumPaths != 11 || ens.ForecastDays != 4 {
			t.Fatalf("workers=%d: wrong ensemble shape %dx%d", workers, ens.ForecastDays, ens.NumPaths)
		}
		for day := 0; day < 4; day++ {
			for p, v := range ens.Day(day) {
				if v <= 0 {
					t.Fatalf("workers=%d day %d path %d: non-positive value %v", workers, day, p, v)
				}
			}
		}
	}
}
