// Package gridmath provides shared helpers for 2D echogram grids:
// allocation, shape checks, NaN-aware reductions, and decibel/power
// conversions. Grids are [][]float64 with row index i (range sample)
// and column index j (ping/observation); masks are [][]bool with the
// same shape, true marking invalid cells.
package gridmath

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// New returns a rows-by-cols grid with every cell set to fill.
func New(rows, cols int, fill float64) [][]float64 {
	g := make([][]float64, rows)
	for i := range g {
		row := make([]float64, cols)
		for j := range row {
			row[j] = fill
		}
		g[i] = row
	}

	return g
}

// NewBool returns a rows-by-cols mask with every cell set to fill.
func NewBool(rows, cols int, fill bool) [][]bool {
	m := make([][]bool, rows)
	for i := range m {
		row := make([]bool, cols)
		if fill {
			for j := range row {
				row[j] = true
			}
		}
		m[i] = row
	}

	return m
}

// Clone returns a deep copy of the grid.
func Clone(g [][]float64) [][]float64 {
	out := make([][]float64, len(g))
	for i, row := range g {
		out[i] = append([]float64(nil), row...)
	}

	return out
}

// Dims returns the row and column counts of the grid. ok is false for
// an empty grid, a grid with empty rows, or a ragged grid.
func Dims(g [][]float64) (rows, cols int, ok bool) {
	if len(g) == 0 || len(g[0]) == 0 {
		return 0, 0, false
	}

	cols = len(g[0])
	for _, row := range g[1:] {
		if len(row) != cols {
			return 0, 0, false
		}
	}

	return len(g), cols, true
}

// StrictlyIncreasing reports whether every element of ax is greater
// than its predecessor.
func StrictlyIncreasing(ax []float64) bool {
	for i := 1; i < len(ax); i++ {
		if !(ax[i] > ax[i-1]) {
			return false
		}
	}

	return true
}

// Steps returns the arithmetic sequence start, start+step, ... strictly
// below stop. The result is empty when stop <= start or step <= 0.
func Steps(start, stop, step float64) []float64 {
	if step <= 0 || stop <= start {
		return nil
	}

	n := int(math.Ceil((stop - start) / step))
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{start}
	}

	return floats.Span(make([]float64, n), start, start+float64(n-1)*step)
}

// Min returns the smallest non-NaN element of xs. ok is false when xs
// contains no non-NaN element.
func Min(xs []float64) (min float64, ok bool) {
	min = math.NaN()
	for _, x := range xs {
		if math.IsNaN(x) {
			continue
		}

		if !ok || x < min {
			min = x
			ok = true
		}
	}

	return min, ok
}

// DBToPower converts a decibel value to linear power: 10^(v/10).
func DBToPower(v float64) float64 {
	return math.Pow(10, v/10)
}

// PowerToDB converts a linear power value to decibels: 10 * log10(p).
// Non-positive powers follow math.Log10 (zero gives -Inf, negative
// gives NaN).
func PowerToDB(p float64) float64 {
	return 10 * math.Log10(p)
}
