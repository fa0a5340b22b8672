package rocket

import (
	"math"
	"math/rand"
	"testing"
)

func TestGenerator_TierFrequencies(t *testing.T) {
	const draws = 100000

	g := NewGenerator(rand.New(rand.NewSource(42)))

	var counts [4]int
	for i := 0; i < draws; i++ {
		v := g.Generate()

		if v < 1.00 || v > 10.00 {
			t.Fatalf("draw %d = %v, out of [1.00, 10.00]", i, v)
		}
		if math.Abs(v*100-math.Round(v*100)) > 1e-6 {
			t.Fatalf("draw %d = %v, not rounded to 2 decimals", i, v)
		}

		switch {
		case v < 2.50:
			counts[0]++
		case v < 5.00:
			counts[1]++
		case v < 8.00:
			counts[2]++
		default:
			counts[3]++
		}
	}

	want := [4]float64{0.50, 0.30, 0.15, 0.05}
	for i, c := range counts {
		got := float64(c) / draws
		if math.Abs(got-want[i]) > 0.01 {
			t.Errorf("tier %d frequency = %.4f, want %.2f ± 0.01", i, got, want[i])
		}
	}
}

func TestTierFor(t *testing.T) {
	cases := []struct {
		r       float64
		wantMin float64
	}{
		{0, 1.00},
		{0.4999, 1.00},
		{0.50, 2.50},
		{0.79, 2.50},
		{0.80, 5.00},
		{0.95, 8.00},
		{0.9999, 8.00},
	}

	for _, tc := range cases {
		if got := tierFor(tc.r); got.min != tc.wantMin {
			t.Errorf("tierFor(%v).min = %v, want %v", tc.r, got.min, tc.wantMin)
		}
	}
}
