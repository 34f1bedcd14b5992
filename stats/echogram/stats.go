// Package echogram provides NaN-aware summary statistics for 2D
// echogram grids in dB. Invalid samples (IEEE-754 NaN) are counted but
// excluded from every statistic.
package echogram

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Stats holds echogram grid statistics. Levels are in dB; Mean_dB is
// the power-domain (energy) mean of the valid samples, not the
// arithmetic mean of dB values.
//
//nolint:revive
type Stats struct {
	Rows    int
	Cols    int
	Samples int
	Valid   int

	Min  float64
	MinI int
	MinJ int
	Max  float64
	MaxI int
	MaxJ int

	Mean_dB float64
	Median  float64
	P05     float64
	P95     float64
}

// emptyStats returns a Stats with NaN for all level fields.
func emptyStats() Stats {
	return Stats{
		Min:     math.NaN(),
		Max:     math.NaN(),
		Mean_dB: math.NaN(),
		Median:  math.NaN(),
		P05:     math.NaN(),
		P95:     math.NaN(),
	}
}

// Calculate computes summary statistics over the grid. A nil, ragged,
// or all-NaN grid yields NaN level fields with the counts still set.
func Calculate(grid [][]float64) Stats {
	s := emptyStats()
	s.Rows = len(grid)
	if s.Rows == 0 {
		return s
	}
	s.Cols = len(grid[0])

	var (
		valid    []float64
		powerSum float64
	)

	for i, row := range grid {
		s.Samples += len(row)
		for j, v := range row {
			if math.IsNaN(v) {
				continue
			}

			if len(valid) == 0 || v < s.Min {
				s.Min = v
				s.MinI = i
				s.MinJ = j
			}
			if len(valid) == 0 || v > s.Max {
				s.Max = v
				s.MaxI = i
				s.MaxJ = j
			}

			powerSum += math.Pow(10, v/10)
			valid = append(valid, v)
		}
	}

	s.Valid = len(valid)
	if s.Valid == 0 {
		return s
	}

	s.Mean_dB = 10 * math.Log10(powerSum/float64(s.Valid))

	sort.Float64s(valid)
	s.Median = stat.Quantile(0.5, stat.Empirical, valid, nil)
	s.P05 = stat.Quantile(0.05, stat.Empirical, valid, nil)
	s.P95 = stat.Quantile(0.95, stat.Empirical, valid, nil)

	return s
}
