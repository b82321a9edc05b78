package scoring

import (
	"testing"
)

func TestRangeOf(t *testing.T) {
	r := RangeOf([]float64{4, -1, 7, 3})
	if r.Min != -1 || r.Max != 7 {
		t.Errorf("expected [-1,7], got [%v,%v]", r.Min, r.Max)
	}
	if (RangeOf(nil) != Range{}) {
		t.Error("expected zero range for empty population")
	}
}

func TestNormalize(t *testing.T) {
	pop := []float64{10, 20, 30, 50}
	r := RangeOf(pop)

	tests := []struct {
		v    float64
		want float64
	}{
		{10, 0},
		{50, 1},
		{30, 0.5},
		{20, 0.25},
	}
	for _, tt := range tests {
		if got := Normalize(tt.v, r); got != tt.want {
			t.Errorf("Normalize(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}

	for _, v := range pop {
		got := Normalize(v, r)
		if got < 0 || got > 1 {
			t.Errorf("Normalize(%v) = %v out of [0,1]", v, got)
		}
	}

	if got := Normalize(100, r); got != 1 {
		t.Errorf("value above range should clamp to 1, got %v", got)
	}
}

func TestNormalizeDegenerate(t *testing.T) {
	r := RangeOf([]float64{7, 7, 7})
	if !r.Degenerate() {
		t.Fatal("expected degenerate range")
	}
	if got := Normalize(7, r); got != DegenerateValue {
		t.Errorf("expected %v for degenerate population, got %v", DegenerateValue, got)
	}
	if DegenerateValue != 1.0 {
		t.Errorf("degenerate value changed to %v; ranking semantics depend on it", DegenerateValue)
	}
}

func TestParetoFrontier(t *testing.T) {
	points := []paretoPoint{
		{cost: 10, co2: 2, suitability: 0.5},
		{cost: 20, co2: 3, suitability: 0.4}, // dominated by 0
		{cost: 30, co2: 1, suitability: 0.9},
		{cost: 10, co2: 2, suitability: 0.5}, // equal to 0, not dominated
	}
	got := paretoFrontier(points)
	want := []bool{true, false, true, true}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d: got %v, want %v", i, got[i], want[i])
		}
	}
}
