package stats

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func close(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestMean(t *testing.T) {
	if got := Mean(nil); got != 0 {
		t.Errorf("empty mean = %v, want 0", got)
	}
	if got := Mean([]float64{2, 4, 6}); !close(got, 4) {
		t.Errorf("mean = %v, want 4", got)
	}
}

func TestMeanStd(t *testing.T) {
	mean, std := MeanStd([]float64{42})
	if mean != 42 || std != 0 {
		t.Errorf("single element: mean=%v std=%v, want 42, 0", mean, std)
	}

	// Population convention: variance of {2, 4} is 1, not 2.
	mean, std = MeanStd([]float64{2, 4})
	if !close(mean, 3) || !close(std, 1) {
		t.Errorf("mean=%v std=%v, want 3, 1", mean, std)
	}

	mean, std = MeanStd([]float64{5, 5, 5, 5})
	if !close(mean, 5) || std != 0 {
		t.Errorf("constant data: mean=%v std=%v, want 5, 0", mean, std)
	}
}

func TestMinMax(t *testing.T) {
	min, max := MinMax([]float64{3, -1, 7, 2})
	if min != -1 || max != 7 {
		t.Errorf("min=%v max=%v, want -1, 7", min, max)
	}
	min, max = MinMax(nil)
	if min != 0 || max != 0 {
		t.Errorf("empty: min=%v max=%v, want 0, 0", min, max)
	}
}

func TestSorted_DoesNotMutate(t *testing.T) {
	in := []float64{3, 1, 2}
	out := Sorted(in)
	if in[0] != 3 || in[1] != 1 || in[2] != 2 {
		t.Errorf("input mutated: %v", in)
	}
	if out[0] != 1 || out[1] != 2 || out[2] != 3 {
		t.Errorf("output not sorted: %v", out)
	}
}

func TestPercentile(t *testing.T) {
	sorted := []float64{10, 20, 30, 40, 50}
	cases := []struct {
		q    float64
		want float64
	}{
		{0, 10},
		{25, 20},
		{50, 30},
		{75, 40},
		{100, 50},
		{10, 14}, // rank 0.4 between 10 and 20
		{90, 46}, // rank 3.6 between 40 and 50
	}
	for _, c := range cases {
		if got := Percentile(sorted, c.q); !close(got, c.want) {
			t.Errorf("percentile(%v) = %v, want %v", c.q, got, c.want)
		}
	}

	if got := Percentile([]float64{7}, 95); got != 7 {
		t.Errorf("single element percentile = %v, want 7", got)
	}
	if got := Percentile(nil, 50); got != 0 {
		t.Errorf("empty percentile = %v, want 0", got)
	}
}

func TestSkewness(t *testing.T) {
	symmetric := []float64{1, 2, 3, 4, 5}
	mean, std := MeanStd(symmetric)
	if got := Skewness(symmetric, mean, std); !close(got, 0) {
		t.Errorf("symmetric skewness = %v, want 0", got)
	}

	rightTail := []float64{1, 1, 1, 1, 10}
	mean, std = MeanStd(rightTail)
	if got := Skewness(rightTail, mean, std); got <= 0 {
		t.Errorf("right-tailed skewness = %v, want > 0", got)
	}

	if got := Skewness([]float64{5, 5, 5}, 5, 0); got != 0 {
		t.Errorf("point mass skewness = %v, want 0", got)
	}
}

func TestExcessKurtosis(t *testing.T) {
	// Symmetric two-point mass {-1, 1}: fourth moment equals variance
	// squared, so kurtosis is 1 and excess kurtosis is -2.
	data := []float64{-1, 1}
	mean, std := MeanStd(data)
	if got := ExcessKurtosis(data, mean, std); !close(got, -2) {
		t.Errorf("two-point excess kurtosis = %v, want -2", got)
	}

	if got := ExcessKurtosis([]float64{5, 5}, 5, 0); got != 0 {
		t.Errorf("point mass excess kurtosis = %v, want 0", got)
	}
}
