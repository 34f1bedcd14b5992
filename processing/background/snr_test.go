package background

import (
	"math"
	"testing"
)

func TestCleanSubtractsNoiseInPowerDomain(t *testing.T) {
	sv := [][]float64{{-60}}
	bgn := [][]float64{{-70}}

	got, low, err := Clean(sv, bgn, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := 10 * math.Log10(math.Pow(10, -6)-math.Pow(10, -7))
	if math.Abs(got[0][0]-want) > 1e-12 {
		t.Fatalf("corrected value mismatch: got %v want %v", got[0][0], want)
	}
	if low[0][0] {
		t.Fatalf("unexpected low-SNR mask for 9.5 dB SNR sample")
	}
}

func TestCleanMasksLowSNR(t *testing.T) {
	sv := [][]float64{{-69}}
	bgn := [][]float64{{-70}}

	got, low, err := Clean(sv, bgn, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.IsNaN(got[0][0]) {
		t.Fatalf("marginal sample should keep its corrected value")
	}
	if !low[0][0] {
		t.Fatalf("expected low-SNR mask for near-noise sample")
	}
}

func TestCleanMasksSamplesAtOrBelowNoise(t *testing.T) {
	nan := math.NaN()
	sv := [][]float64{{-70, -80, nan, -60}}
	bgn := [][]float64{{-70, -70, -70, nan}}

	got, low, err := Clean(sv, bgn, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for j := 0; j < 4; j++ {
		if !math.IsNaN(got[0][j]) {
			t.Fatalf("expected NaN at j=%d, got %v", j, got[0][j])
		}
		if !low[0][j] {
			t.Fatalf("expected mask at j=%d", j)
		}
	}
}

func TestCleanShapeValidation(t *testing.T) {
	if _, _, err := Clean([][]float64{{1, 2}}, [][]float64{{1}}, 3); err == nil {
		t.Fatalf("expected shape mismatch error")
	}
	if _, _, err := Clean(nil, nil, 3); err == nil {
		t.Fatalf("expected empty grid error")
	}
	if _, _, err := Clean([][]float64{{1, 2}, {3}}, [][]float64{{1, 2}, {3, 4}}, 3); err == nil {
		t.Fatalf("expected ragged grid error")
	}
}
