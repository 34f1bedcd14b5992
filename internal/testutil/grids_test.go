package testutil

import (
	"math"
	"testing"
)

func TestConstGrid(t *testing.T) {
	g := ConstGrid(3, 4, -70)
	if len(g) != 3 || len(g[0]) != 4 {
		t.Fatalf("shape mismatch: %dx%d", len(g), len(g[0]))
	}
	for i := range g {
		for j := range g[i] {
			if g[i][j] != -70 {
				t.Fatalf("cell (%d,%d) mismatch: %v", i, j, g[i][j])
			}
		}
	}
}

func TestSineGridDeterministic(t *testing.T) {
	a := SineGrid(4, 5, -70, 10)
	b := SineGrid(4, 5, -70, 10)
	RequireGridNearlyEqual(t, a, b, 0)

	if a[0][0] != -70 {
		t.Fatalf("first cell should be base: got %v", a[0][0])
	}
}

func TestIndexAxis(t *testing.T) {
	ax := IndexAxis(3)
	if len(ax) != 3 || ax[0] != 0 || ax[1] != 1 || ax[2] != 2 {
		t.Fatalf("axis mismatch: %v", ax)
	}
}

func TestRequireGridNearlyEqualTreatsNaNEqual(t *testing.T) {
	nan := math.NaN()
	a := [][]float64{{1, nan}}
	b := [][]float64{{1 + 1e-12, nan}}
	RequireGridNearlyEqual(t, a, b, 1e-9)
}
