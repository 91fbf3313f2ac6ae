package model

import "testing"

func TestEnsemble_DayLayout(t *testing.T) {
	ens := NewEnsemble(3, 4)
	if ens.ForecastDays != 3 || ens.NumPaths != 4 {
		t.Fatalf("dims = %d x %d, want 3 x 4", ens.ForecastDays, ens.NumPaths)
	}

	for d := 0; d < 3; d++ {
		row := ens.Day(d)
		if len(row) != 4 {
			t.Fatalf("day %d length = %d, want 4", d, len(row))
		}
		for p := range row {
			row[p] = float64(d*10 + p)
		}
	}

	// Day returns a view into the shared buffer, so writes must be visible
	// through At.
	if got := ens.At(1, 2); got != 12 {
		t.Errorf("At(1, 2) = %v, want 12", got)
	}
	if got := ens.At(2, 0); got != 20 {
		t.Errorf("At(2, 0) = %v, want 20", got)
	}

	final := ens.FinalDay()
	if final[3] != 23 {
		t.Errorf("final day path 3 = %v, want 23", final[3])
	}
}
