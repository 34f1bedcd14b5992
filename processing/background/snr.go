package background

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-echo/internal/gridmath"
)

// Clean subtracts an estimated background-noise grid from sv in the
// linear power domain and masks samples too close to the noise floor.
//
// sv and bgn are dB grids of equal shape, bgn typically coming from
// [Estimator.Estimate]. For each sample the noise-corrected value is
// 10*log10(10^(Sv/10) - 10^(bgn/10)) and the signal-to-noise ratio is
// the corrected value minus the noise. The mask is true where the SNR
// falls below minSNR or where the sample is indistinguishable from
// noise (Sv at or below bgn, or either input NaN); indistinguishable
// samples are NaN in the output.
func Clean(sv, bgn [][]float64, minSNR float64) ([][]float64, [][]bool, error) {
	rows, cols, ok := gridmath.Dims(sv)
	if !ok {
		return nil, nil, fmt.Errorf("background: Sv grid must be non-empty and rectangular")
	}

	brows, bcols, ok := gridmath.Dims(bgn)
	if !ok || brows != rows || bcols != cols {
		return nil, nil, fmt.Errorf("background: noise grid shape %dx%d does not match Sv shape %dx%d", brows, bcols, rows, cols)
	}

	out := gridmath.New(rows, cols, math.NaN())
	low := gridmath.NewBool(rows, cols, false)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			p := gridmath.DBToPower(sv[i][j]) - gridmath.DBToPower(bgn[i][j])
			if math.IsNaN(p) || p <= 0 {
				low[i][j] = true
				continue
			}

			v := gridmath.PowerToDB(p)
			out[i][j] = v
			if v-bgn[i][j] < minSNR {
				low[i][j] = true
			}
		}
	}

	return out, low, nil
}
