// Package testutil provides deterministic echogram grid generators and
// NaN-aware comparison helpers shared by the package tests.
package testutil

import (
	"math"
	"testing"
)

// ConstGrid returns a rows-by-cols grid with every cell set to v.
func ConstGrid(rows, cols int, v float64) [][]float64 {
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
		for j := range out[i] {
			out[i][j] = v
		}
	}
	return out
}

// SineGrid returns a rows-by-cols grid of base + amp*sin(k) with k the
// linear cell index. Deterministic and roughly echogram-shaped.
func SineGrid(rows, cols int, base, amp float64) [][]float64 {
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
		for j := range out[i] {
			out[i][j] = base + amp*math.Sin(float64(i*cols+j))
		}
	}
	return out
}

// IndexAxis returns the axis 0, 1, ..., n-1.
func IndexAxis(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

// RequireGridNearlyEqual fails t if got and want differ in shape or if
// any cell pair exceeds eps (absolute tolerance). NaN cells are equal
// to NaN cells.
func RequireGridNearlyEqual(t *testing.T, got, want [][]float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("row count mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if len(got[i]) != len(want[i]) {
			t.Fatalf("row %d length mismatch: got %d, want %d", i, len(got[i]), len(want[i]))
		}
		for j := range got[i] {
			g, w := got[i][j], want[i][j]
			if math.IsNaN(g) && math.IsNaN(w) {
				continue
			}
			if diff := math.Abs(g - w); math.IsNaN(diff) || diff > eps {
				t.Fatalf("cell (%d,%d): got %v, want %v (eps %v)", i, j, g, w, eps)
			}
		}
	}
}

// RequireAllNaN fails t if any cell of the grid is not NaN.
func RequireAllNaN(t *testing.T, grid [][]float64) {
	t.Helper()
	for i := range grid {
		for j, v := range grid[i] {
			if !math.IsNaN(v) {
				t.Fatalf("cell (%d,%d): expected NaN, got %v", i, j, v)
			}
		}
	}
}
