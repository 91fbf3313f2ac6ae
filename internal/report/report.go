package report

import (
	"fmt"
	"math"
	"strings"

	"PriceProphet/internal/model"
)

// FormatSummary renders the prediction results block: the final-day summary
// statistics and confidence intervals.
func FormatSummary(rep *model.ForecastReport) string {
	var b strings.Builder
	s := rep.Summary

	b.WriteString(fmt.Sprintf("PREDICTION RESULTS FOR %s\n\n", rep.Ticker))
	b.WriteString(fmt.Sprintf("Current Price: ₹%.2f\n", s.CurrentPrice))
	b.WriteString(fmt.Sprintf("\nPredicted Price (%d trading days):\n", rep.ForecastDays))
	b.WriteString(fmt.Sprintf("  Mean:           ₹%.2f\n", s.Mean))
	b.WriteString(fmt.Sprintf("  Median:         ₹%.2f\n", s.Median))
	b.WriteString(fmt.Sprintf("  Std Dev:        ₹%.2f\n", s.StdDev))
	b.WriteString("\nPrice Range:\n")
	b.WriteString(fmt.Sprintf("  Min:            ₹%.2f\n", s.Min))
	b.WriteString(fmt.Sprintf("  Max:            ₹%.2f\n", s.Max))
	b.WriteString("\nConfidence Intervals:\n")
	b.WriteString(fmt.Sprintf("  5th Percentile:  ₹%.2f\n", s.Percentile5))
	b.WriteString(fmt.Sprintf("  25th Percentile: ₹%.2f\n", s.Percentile25))
	b.WriteString(fmt.Sprintf("  75th Percentile: ₹%.2f\n", s.Percentile75))
	b.WriteString(fmt.Sprintf("  95th Percentile: ₹%.2f\n", s.Percentile95))
	b.WriteString(fmt.Sprintf("\nExpected Return: %+.2f%%\n", s.ExpectedReturnPct()))

	return b.String()
}

// FormatPaths explains the path-fan view: how many trajectories end above
// and below the current price, and how uncertainty grows over the horizon.
func FormatPaths(rep *model.ForecastReport) string {
	var b strings.Builder

	pctAbove := rep.Probabilities.AboveCurrent * 100
	pctBelow := 100 - pctAbove
	outlook := "bearish"
	if pctAbove > 50 {
		outlook = "bullish"
	}

	b.WriteString("SIMULATION PATHS\n\n")
	b.WriteString(fmt.Sprintf("Simulations run: %d over %d trading days\n", rep.NumPaths, rep.ForecastDays))
	b.WriteString(fmt.Sprintf("Starting price: ₹%.2f | Mean final price: ₹%.2f\n\n", rep.Summary.CurrentPrice, rep.Summary.Mean))
	b.WriteString(fmt.Sprintf("Paths ending above current price: %.1f%%\n", pctAbove))
	b.WriteString(fmt.Sprintf("Paths ending below current price: %.1f%%\n\n", pctBelow))
	b.WriteString(fmt.Sprintf("Average cross-path volatility: ₹%.2f\n", rep.AvgVolatility))
	b.WriteString(fmt.Sprintf("Final-day volatility: ₹%.2f\n\n", rep.FinalVolatility))
	b.WriteString(fmt.Sprintf("The spread of the paths illustrates forecast uncertainty. With %.1f%% of simulations ending above the current price, the outlook for the horizon is %s.\n", pctAbove, outlook))

	return b.String()
}

// FormatConfidence explains the per-day confidence bands and the mid-horizon
// snapshot.
func FormatConfidence(rep *model.ForecastReport) string {
	var b strings.Builder
	s := rep.Summary

	ci50 := s.Percentile75 - s.Percentile25
	ci90 := s.Percentile95 - s.Percentile5
	ci50Pct, ci90Pct := 0.0, 0.0
	if s.CurrentPrice != 0 {
		ci50Pct = ci50 / s.CurrentPrice * 100
		ci90Pct = ci90 / s.CurrentPrice * 100
	}

	b.WriteString("PRICE FORECAST WITH CONFIDENCE INTERVALS\n\n")
	b.WriteString(fmt.Sprintf("Final day (day %d):\n", rep.ForecastDays))
	b.WriteString(fmt.Sprintf("  90%% interval: ₹%.2f to ₹%.2f (width ₹%.2f, %.1f%% of current price)\n",
		s.Percentile5, s.Percentile95, ci90, ci90Pct))
	b.WriteString(fmt.Sprintf("  50%% interval: ₹%.2f to ₹%.2f (width ₹%.2f, %.1f%% of current price)\n\n",
		s.Percentile25, s.Percentile75, ci50, ci50Pct))
	b.WriteString(fmt.Sprintf("Mid-horizon (day %d):\n", rep.MidHorizon.Day))
	b.WriteString(fmt.Sprintf("  Expected price: ₹%.2f\n", rep.MidHorizon.Mean))
	b.WriteString(fmt.Sprintf("  90%% interval: ₹%.2f to ₹%.2f\n\n", rep.MidHorizon.P5, rep.MidHorizon.P95))

	if ci90Pct > 50 {
		b.WriteString("The wide confidence interval indicates HIGH volatility/risk.\n")
	} else {
		b.WriteString("The relatively narrow confidence interval suggests MODERATE volatility/risk.\n")
	}
	b.WriteString("Interval widening over time reflects increasing uncertainty in longer-term forecasts.\n")

	return b.String()
}

// FormatDistribution explains the final-day histogram: shape, probability
// masses, modal range and the risk/reward comparison.
func FormatDistribution(rep *model.ForecastReport) string {
	var b strings.Builder
	s := rep.Summary

	b.WriteString("DISTRIBUTION OF PREDICTED PRICES\n\n")
	b.WriteString(fmt.Sprintf("Mean: ₹%.2f | Median: ₹%.2f | Std Dev: ₹%.2f\n", s.Mean, s.Median, s.StdDev))
	b.WriteString(fmt.Sprintf("Skewness: %.3f %s\n", rep.Shape.Skewness, skewLabel(rep.Shape.Skewness)))
	b.WriteString(fmt.Sprintf("Excess Kurtosis: %.3f %s\n\n", rep.Shape.ExcessKurtosis, kurtosisLabel(rep.Shape.ExcessKurtosis)))

	b.WriteString(fmt.Sprintf("Probability of price > current price: %.1f%%\n", rep.Probabilities.AboveCurrent*100))
	b.WriteString(fmt.Sprintf("Probability of price > mean: %.1f%%\n", rep.Probabilities.AboveMean*100))
	b.WriteString(fmt.Sprintf("Probability within 1 std dev of mean: %.1f%%\n\n", rep.Probabilities.WithinOneStd*100))

	b.WriteString(fmt.Sprintf("Most likely price range: ₹%.2f to ₹%.2f (%d paths)\n\n",
		rep.ModalBin.Lower, rep.ModalBin.Upper, rep.ModalBin.Count))

	rr := rep.RiskReward
	b.WriteString(fmt.Sprintf("Upside potential (95th percentile): %+.2f%%\n", rr.UpsidePct))
	b.WriteString(fmt.Sprintf("Downside risk (5th percentile): %+.2f%%\n", rr.DownsidePct))
	if math.IsInf(rr.Ratio, 1) {
		b.WriteString("Risk-Reward Ratio: unbounded (zero downside)\n")
	} else {
		b.WriteString(fmt.Sprintf("Risk-Reward Ratio: %.2f:1\n", rr.Ratio))
	}
	if rr.UpsidePct > math.Abs(rr.DownsidePct) {
		b.WriteString("Favorable risk-reward profile.\n")
	} else {
		b.WriteString("Unfavorable risk-reward profile: potential losses exceed potential gains.\n")
	}

	return b.String()
}

// FormatHistory explains the historical window the calibration came from.
func FormatHistory(rep *model.ForecastReport) string {
	var b strings.Builder
	h := rep.History

	b.WriteString("HISTORICAL PRICES\n\n")
	b.WriteString(fmt.Sprintf("Analysis period: %s to %s (%d trading days)\n",
		h.StartDate.Format("2006-01-02"), h.EndDate.Format("2006-01-02"), h.TotalDays))
	b.WriteString(fmt.Sprintf("Mean: ₹%.2f | Std Dev: ₹%.2f | Range: ₹%.2f to ₹%.2f\n", h.Mean, h.Std, h.Min, h.Max))
	b.WriteString(fmt.Sprintf("Period performance: %+.2f%%\n\n", h.ChangePct))
	b.WriteString(fmt.Sprintf("Calibrated from this window: drift μ = %.4f (%.2f%%/year), volatility σ = %.4f (%.2f%%/year)\n",
		rep.Params.Mu, rep.Params.Mu*100, rep.Params.Sigma, rep.Params.Sigma*100))
	b.WriteString(fmt.Sprintf("Projected change from current price: %+.2f%%\n", rep.Summary.ExpectedReturnPct()))

	return b.String()
}

// FormatFull concatenates the summary and all four narrative sections.
func FormatFull(rep *model.ForecastReport) string {
	sections := []string{
		FormatSummary(rep),
		FormatPaths(rep),
		FormatConfidence(rep),
		FormatDistribution(rep),
		FormatHistory(rep),
	}
	return strings.Join(sections, "\n"+strings.Repeat("-", 60)+"\n\n")
}

// FormatTelegram renders a compact HTML message for notification delivery.
func FormatTelegram(rep *model.ForecastReport) string {
	var b strings.Builder
	s := rep.Summary

	b.WriteString(fmt.Sprintf("📈 <b>%s forecast</b> | %s\n\n", rep.Ticker, rep.GeneratedAt.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Current: ₹%.2f\n", s.CurrentPrice))
	b.WriteString(fmt.Sprintf("Mean in %d days: ₹%.2f (%+.2f%%)\n", rep.ForecastDays, s.Mean, s.ExpectedReturnPct()))
	b.WriteString(fmt.Sprintf("90%% interval: ₹%.2f to ₹%.2f\n", s.Percentile5, s.Percentile95))
	b.WriteString(fmt.Sprintf("P(above current): %.1f%%\n", rep.Probabilities.AboveCurrent*100))
	b.WriteString(fmt.Sprintf("μ=%.4f σ=%.4f | %d paths\n", rep.Params.Mu, rep.Params.Sigma, rep.NumPaths))

	return b.String()
}

func skewLabel(skew float64) string {
	switch {
	case skew > 0.1:
		return "(right-skewed: tail extends toward higher prices)"
	case skew < -0.1:
		return "(left-skewed: tail extends toward lower prices)"
	default:
		return "(symmetric distribution)"
	}
}

func kurtosisLabel(kurt float64) string {
	switch {
	case kurt > 0.5:
		return "(fat tails: higher probability of extreme outcomes)"
	case kurt < -0.5:
		return "(thin tails: lower probability of extreme outcomes)"
	default:
		return "(normal tail behavior)"
	}
}
