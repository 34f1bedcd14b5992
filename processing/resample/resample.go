package resample

import (
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-echo/internal/gridmath"
)

// Bin2D aggregates grid into coarse bins along both axes.
//
// srcI and srcJ give the coordinate of each row and column of grid and
// must be strictly increasing. dstI and dstJ are the left bin edges of
// the coarse grid; bin k spans [dst[k], dst[k+1]) and the last bin is
// unbounded above. When logDomain is true, samples are converted from
// dB to linear power, averaged, and converted back; otherwise the
// arithmetic mean is used. NaN samples never contribute.
//
// The returned grid has shape len(dstI) by len(dstJ). The mask is true
// for bins with no valid contributing samples; those bins are NaN.
func Bin2D(grid [][]float64, srcI, srcJ, dstI, dstJ []float64, logDomain bool) ([][]float64, [][]bool, error) {
	rows, cols, err := checkAxes(grid, srcI, srcJ, dstI, dstJ)
	if err != nil {
		return nil, nil, err
	}

	binI := binIndices(srcI, dstI)
	binJ := binIndices(srcJ, dstJ)

	ci := len(dstI)
	cj := len(dstJ)
	sum := gridmath.New(ci, cj, 0)
	count := make([][]int, ci)
	for i := range count {
		count[i] = make([]int, cj)
	}

	for i := 0; i < rows; i++ {
		bi := binI[i]
		if bi < 0 {
			continue
		}

		for j := 0; j < cols; j++ {
			bj := binJ[j]
			if bj < 0 {
				continue
			}

			v := grid[i][j]
			if math.IsNaN(v) {
				continue
			}

			if logDomain {
				v = gridmath.DBToPower(v)
			}

			sum[bi][bj] += v
			count[bi][bj]++
		}
	}

	out := gridmath.New(ci, cj, math.NaN())
	mask := gridmath.NewBool(ci, cj, false)

	for bi := 0; bi < ci; bi++ {
		for bj := 0; bj < cj; bj++ {
			n := count[bi][bj]
			if n == 0 {
				mask[bi][bj] = true
				continue
			}

			mean := sum[bi][bj] / float64(n)
			if logDomain {
				mean = gridmath.PowerToDB(mean)
			}

			out[bi][bj] = mean
		}
	}

	return out, mask, nil
}

// Upsample2D projects a coarse grid back onto a fine grid.
//
// srcI and srcJ are the left bin edges of the coarse grid, dstI and
// dstJ the coordinates of the fine grid; all must be strictly
// increasing. Each fine cell receives the value of its enclosing
// coarse bin. The mask is true where no enclosing bin exists (the fine
// coordinate precedes the first coarse edge); those cells are NaN.
func Upsample2D(grid [][]float64, srcI, srcJ, dstI, dstJ []float64) ([][]float64, [][]bool, error) {
	_, _, err := checkAxes(grid, srcI, srcJ, dstI, dstJ)
	if err != nil {
		return nil, nil, err
	}

	binI := binIndices(dstI, srcI)
	binJ := binIndices(dstJ, srcJ)

	out := gridmath.New(len(dstI), len(dstJ), math.NaN())
	mask := gridmath.NewBool(len(dstI), len(dstJ), false)

	for i := range dstI {
		bi := binI[i]
		for j := range dstJ {
			bj := binJ[j]
			if bi < 0 || bj < 0 {
				mask[i][j] = true
				continue
			}

			out[i][j] = grid[bi][bj]
		}
	}

	return out, mask, nil
}

// binIndices maps each coordinate to the index of its enclosing bin,
// where edges[k] is the left edge of bin k and the last bin is
// unbounded above. Coordinates before edges[0] map to -1.
func binIndices(coords, edges []float64) []int {
	out := make([]int, len(coords))
	for i, v := range coords {
		k := sort.SearchFloat64s(edges, v)
		if k == len(edges) || edges[k] != v {
			k--
		}
		out[i] = k
	}

	return out
}

func checkAxes(grid [][]float64, srcI, srcJ, dstI, dstJ []float64) (rows, cols int, err error) {
	rows, cols, ok := gridmath.Dims(grid)
	if !ok {
		return 0, 0, fmt.Errorf("resample: grid must be non-empty and rectangular")
	}

	if len(srcI) != rows {
		return 0, 0, fmt.Errorf("resample: source i axis length %d does not match %d grid rows", len(srcI), rows)
	}
	if len(srcJ) != cols {
		return 0, 0, fmt.Errorf("resample: source j axis length %d does not match %d grid columns", len(srcJ), cols)
	}
	if len(dstI) == 0 || len(dstJ) == 0 {
		return 0, 0, fmt.Errorf("resample: destination axes must be non-empty")
	}

	for _, ax := range [][]float64{srcI, srcJ, dstI, dstJ} {
		if !gridmath.StrictlyIncreasing(ax) {
			return 0, 0, fmt.Errorf("resample: axes must be strictly increasing")
		}
	}

	return rows, cols, nil
}
