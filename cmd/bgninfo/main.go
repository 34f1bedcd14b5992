// Command bgninfo estimates echosounder background noise for an Sv
// grid and prints summary statistics.
//
// Usage:
//
//	bgninfo [flags] [sv.csv]
//
// The optional argument is a CSV file with one row per range sample
// and one column per ping; empty cells and "nan" are treated as
// invalid samples. Without an argument a flat synthetic grid is used.
//
// Examples:
//
//	bgninfo -m 10 -n 20 -alpha 0.0024 sv.csv
//	bgninfo -rows 200 -cols 500 -level -70
package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-echo/processing/background"
	"github.com/cwbudde/algo-echo/stats/echogram"
)

func main() {
	m := flag.Float64("m", 10, "range bin size in metres")
	n := flag.Float64("n", 20, "ping bin size in pings")
	alpha := flag.Float64("alpha", 0.0024, "absorption coefficient in dB/m")
	maxNoise := flag.Float64("max", -125, "background noise ceiling in dB")
	minSNR := flag.Float64("minsnr", 12, "minimum SNR in dB for the cleaned grid")
	r0 := flag.Float64("r0", 1, "range of the first sample in metres")
	dr := flag.Float64("dr", 0.5, "range step per sample in metres")
	rows := flag.Int("rows", 100, "rows of the synthetic grid (no CSV input)")
	cols := flag.Int("cols", 200, "columns of the synthetic grid (no CSV input)")
	level := flag.Float64("level", -70, "level of the synthetic grid in dB")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: bgninfo [flags] [sv.csv]\n\n")
		fmt.Fprintf(os.Stderr, "Estimates echosounder background noise and prints grid statistics.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	var (
		sv  [][]float64
		err error
	)
	if flag.NArg() > 0 {
		sv, err = readCSVGrid(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	} else {
		sv = make([][]float64, *rows)
		for i := range sv {
			sv[i] = make([]float64, *cols)
			for j := range sv[i] {
				sv[i][j] = *level
			}
		}
	}

	r := make([]float64, len(sv))
	jax := make([]float64, len(sv[0]))
	for i := range r {
		r[i] = *r0 + *dr*float64(i)
	}
	for j := range jax {
		jax[j] = float64(j)
	}

	bgn, _, err := background.Estimate(sv, r, jax, r, background.Config{
		StrideI:  *m,
		StrideJ:  *n,
		Alpha:    *alpha,
		MaxNoise: *maxNoise,
	})
	if err != nil {
		if !errors.Is(err, background.ErrDegenerateAxes) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	svClean, _, err := background.Clean(sv, bgn, *minSNR)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printStats(map[string]echogram.Stats{
		"Sv":       echogram.Calculate(sv),
		"noise":    echogram.Calculate(bgn),
		"Sv clean": echogram.Calculate(svClean),
	})
}

func readCSVGrid(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rd := csv.NewReader(f)
	records, err := rd.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	grid := make([][]float64, len(records))
	for i, rec := range records {
		row := make([]float64, len(rec))
		for j, field := range rec {
			field = strings.TrimSpace(field)
			if field == "" || strings.EqualFold(field, "nan") {
				row[j] = math.NaN()
				continue
			}

			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("parse %s row %d column %d: %w", path, i+1, j+1, err)
			}
			row[j] = v
		}
		grid[i] = row
	}

	return grid, nil
}

func printStats(grids map[string]echogram.Stats) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Grid\tShape\tValid\tMin [dB]\tMax [dB]\tMean [dB]\tMedian [dB]\tP05 [dB]\tP95 [dB]\n")
	fmt.Fprintf(tw, "----\t-----\t-----\t--------\t--------\t---------\t-----------\t--------\t--------\n")

	for _, name := range []string{"Sv", "noise", "Sv clean"} {
		s := grids[name]
		fmt.Fprintf(tw, "%s\t%dx%d\t%d/%d\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\n",
			name,
			s.Rows, s.Cols,
			s.Valid, s.Samples,
			s.Min,
			s.Max,
			s.Mean_dB,
			s.Median,
			s.P05,
			s.P95,
		)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
