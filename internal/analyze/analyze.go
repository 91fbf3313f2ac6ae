package analyze

import (
	"errors"
	"math"
	"time"

	"PriceProphet/internal/model"
	"PriceProphet/internal/stats"
)

// ErrNoEnsemble means statistics were requested before any simulation ran.
var ErrNoEnsemble = errors.New("no simulation results to analyze")

// histogramBins is the bin count of the final-day price histogram used for
// the modal price range.
const histogramBins = 100

// Run derives the full set of distributional statistics from a completed
// ensemble: final-day summary and shape, probability masses, the modal
// histogram bin, per-day confidence bands, the mid-horizon snapshot and the
// per-day cross-path volatility sequence.
//
// The returned report carries every figure as plain structured data; nothing
// here is pre-formatted. The ensemble itself is not retained.
func Run(ens *model.Ensemble, currentPrice float64) (*model.ForecastReport, error) {
	if ens == nil || ens.ForecastDays < 1 || ens.NumPaths < 1 {
		return nil, ErrNoEnsemble
	}

	final := ens.FinalDay()
	sorted := stats.Sorted(final)
	mean, std := stats.MeanStd(final)
	min, max := sorted[0], sorted[len(sorted)-1]

	rep := &model.ForecastReport{
		GeneratedAt:  time.Now(),
		NumPaths:     ens.NumPaths,
		ForecastDays: ens.ForecastDays,
		Summary: model.SummaryStatistics{
			CurrentPrice: currentPrice,
			Mean:         mean,
			Median:       stats.Percentile(sorted, 50),
			StdDev:       std,
			Min:          min,
			Max:          max,
			Percentile5:  stats.Percentile(sorted, 5),
			Percentile25: stats.Percentile(sorted, 25),
			Percentile75: stats.Percentile(sorted, 75),
			Percentile95: stats.Percentile(sorted, 95),
		},
		Shape: model.DistributionShape{
			Skewness:       stats.Skewness(final, mean, std),
			ExcessKurtosis: stats.ExcessKurtosis(final, mean, std),
		},
	}

	rep.Probabilities = probabilityMasses(final, currentPrice, mean, std)
	rep.ModalBin = modalBin(final, min, max)
	rep.Bands, rep.DailyVolatility = bands(ens)
	rep.AvgVolatility = stats.Mean(rep.DailyVolatility)
	rep.FinalVolatility = rep.DailyVolatility[len(rep.DailyVolatility)-1]

	mid := ens.ForecastDays / 2
	rep.MidHorizon = model.HorizonSnapshot{
		Day:  mid,
		Mean: rep.Bands[mid].Mean,
		P5:   rep.Bands[mid].P5,
		P95:  rep.Bands[mid].P95,
	}

	rep.RiskReward = riskReward(rep.Summary)

	return rep, nil
}

// probabilityMasses computes the fraction of paths ending above the current
// price, above the ensemble mean and within one standard deviation of it.
func probabilityMasses(final []float64, currentPrice, mean, std float64) model.ProbabilityMasses {
	var aboveCurrent, aboveMean, withinStd int
	lower, upper := mean-std, mean+std
	for _, v := range final {
		if v > currentPrice {
			aboveCurrent++
		}
		if v > mean {
			aboveMean++
		}
		if v >= lower && v <= upper {
			withinStd++
		}
	}
	n := float64(len(final))
	return model.ProbabilityMasses{
		AboveCurrent: float64(aboveCurrent) / n,
		AboveMean:    float64(aboveMean) / n,
		WithinOneStd: float64(withinStd) / n,
	}
}

// modalBin finds the highest-count bin of an equal-width histogram over the
// final prices. A zero-width range degenerates to a single bin holding every
// path.
func modalBin(final []float64, min, max float64) model.PriceBin {
	if max == min {
		return model.PriceBin{Lower: min, Upper: max, Count: len(final)}
	}

	width := (max - min) / histogramBins
	counts := make([]int, histogramBins)
	for _, v := range final {
		idx := int((v - min) / width)
		if idx >= histogramBins {
			idx = histogramBins - 1
		}
		counts[idx]++
	}

	best := 0
	for i, c := range counts {
		if c > counts[best] {
			best = i
		}
	}
	return model.PriceBin{
		Lower: min + float64(best)*width,
		Upper: min + float64(best+1)*width,
		Count: counts[best],
	}
}

// bands computes the per-day mean and percentile envelope plus the per-day
// cross-path standard deviation.
func bands(ens *model.Ensemble) ([]model.Band, []float64) {
	out := make([]model.Band, ens.ForecastDays)
	vols := make([]float64, ens.ForecastDays)
	for t := 0; t < ens.ForecastDays; t++ {
		day := ens.Day(t)
		sorted := stats.Sorted(day)
		mean, std := stats.MeanStd(day)
		out[t] = model.Band{
			Day:  t,
			Mean: mean,
			P5:   stats.Percentile(sorted, 5),
			P25:  stats.Percentile(sorted, 25),
			P75:  stats.Percentile(sorted, 75),
			P95:  stats.Percentile(sorted, 95),
		}
		vols[t] = std
	}
	return out, vols
}

// riskReward compares the 95th-percentile gain to the 5th-percentile loss.
// When the downside is exactly zero the ratio is defined as +Inf rather than
// failing on the division.
func riskReward(s model.SummaryStatistics) model.RiskReward {
	if s.CurrentPrice == 0 {
		return model.RiskReward{}
	}
	upside := (s.Percentile95/s.CurrentPrice - 1) * 100
	downside := (s.Percentile5/s.CurrentPrice - 1) * 100

	rr := model.RiskReward{UpsidePct: upside, DownsidePct: downside}
	if downside == 0 {
		rr.Ratio = math.Inf(1)
	} else {
		rr.Ratio = math.Abs(upside / downside)
	}
	return rr
}
