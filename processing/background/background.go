package background

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-echo/internal/gridmath"
	"github.com/cwbudde/algo-echo/processing/resample"
)

const defaultMaxNoise = -125.0

// ErrDegenerateAxes reports that the resampling strides leave fewer
// than two coarse bins on an axis, so no noise estimate is possible.
// The accompanying outputs are still valid: an all-NaN grid and an
// all-true mask of the input shape.
var ErrDegenerateAxes = errors.New("degenerate resampling axes")

// Resampler maps grids between the recorded and the coarse resolution.
// The package resampler is used by default; alternate strategies (for
// example nearest-neighbour or dB-domain averaging) can be substituted
// through [Config].
type Resampler interface {
	// Bin aggregates grid into bins whose left edges are dstI/dstJ,
	// averaging in the linear power domain when logDomain is true.
	Bin(grid [][]float64, srcI, srcJ, dstI, dstJ []float64, logDomain bool) ([][]float64, [][]bool, error)
	// Upsample copies each coarse bin value onto the fine cells it
	// encloses, with a mask marking cells outside coarse coverage.
	Upsample(grid [][]float64, srcI, srcJ, dstI, dstJ []float64) ([][]float64, [][]bool, error)
}

// Config holds background-noise estimation parameters.
type Config struct {
	StrideI float64 // bin size along the range axis, in iax units
	StrideJ float64 // bin size along the observation axis, in jax units
	Alpha   float64 // absorption coefficient, dB per metre

	// MaxNoise is the ceiling on the TVG-corrected noise floor, in dB.
	// Estimates above it are clipped down. The zero value selects the
	// default of -125 dB.
	MaxNoise float64

	// Resampler overrides the grid resampling strategy. Nil selects
	// the processing/resample implementation.
	Resampler Resampler
}

// Estimator computes background-noise estimates for Sv grids.
type Estimator struct {
	cfg Config
}

// New creates an Estimator with the given configuration.
func New(cfg Config) *Estimator {
	return &Estimator{cfg: normalizeConfig(cfg)}
}

// Estimate is a one-shot background-noise estimation. See
// [Estimator.Estimate].
func Estimate(sv [][]float64, iax, jax, r []float64, cfg Config) ([][]float64, [][]bool, error) {
	return New(cfg).Estimate(sv, iax, jax, r)
}

// Estimate returns the background-noise estimate for sv and a mask of
// cells where the estimate is not to be trusted.
//
// sv is a rows-by-cols dB grid; iax and jax are strictly increasing
// coordinates for its rows and columns; r holds the range in metres
// per row. Ranges at or below zero are invalid for the TVG term and
// make the corresponding output row NaN. The outputs always have the
// shape of sv; inputs are never modified.
//
// When the configured strides leave fewer than two coarse bins on
// either axis the estimate is all NaN with an all-true mask, and the
// returned error wraps [ErrDegenerateAxes]. All other errors indicate
// invalid input and come with nil outputs.
func (e *Estimator) Estimate(sv [][]float64, iax, jax, r []float64) ([][]float64, [][]bool, error) {
	rows, cols, err := e.validate(sv, iax, jax, r)
	if err != nil {
		return nil, nil, err
	}

	// TVG per range sample; non-positive ranges have no defined gain.
	tvg := make([]float64, rows)
	for i, ri := range r {
		if ri <= 0 {
			tvg[i] = math.NaN()
			continue
		}

		tvg[i] = 20*math.Log10(ri) + 2*e.cfg.Alpha*ri
	}

	svNoTVG := gridmath.Clone(sv)
	for i, row := range svNoTVG {
		floats.AddConst(-tvg[i], row)
	}

	iaxrs := gridmath.Steps(iax[0], iax[rows-1], e.cfg.StrideI)
	jaxrs := gridmath.Steps(jax[0], jax[cols-1], e.cfg.StrideJ)

	if len(iaxrs) < 2 || len(jaxrs) < 2 {
		bgn := gridmath.New(rows, cols, math.NaN())
		mask := gridmath.NewBool(rows, cols, true)
		return bgn, mask, fmt.Errorf("background: %w: %d i bins, %d j bins", ErrDegenerateAxes, len(iaxrs), len(jaxrs))
	}

	coarse, _, err := e.cfg.Resampler.Bin(svNoTVG, iax, jax, iaxrs, jaxrs, true)
	if err != nil {
		return nil, nil, fmt.Errorf("background: bin: %w", err)
	}

	// Noise floor per ping bin: the minimum over the range axis,
	// ignoring NaN. A bin column with no valid samples stays NaN.
	floor := make([]float64, len(jaxrs))
	col := make([]float64, len(iaxrs))
	for j := range floor {
		for i := range col {
			col[i] = coarse[i][j]
		}

		v, ok := gridmath.Min(col)
		if !ok {
			floor[j] = math.NaN()
			continue
		}

		if v > e.cfg.MaxNoise {
			v = e.cfg.MaxNoise
		}
		floor[j] = v
	}

	// The noise is taken constant with range within a bin: tile the
	// floor over all coarse rows before projecting back.
	coarseBgn := make([][]float64, len(iaxrs))
	for i := range coarseBgn {
		coarseBgn[i] = append([]float64(nil), floor...)
	}

	bgn, mask, err := e.cfg.Resampler.Upsample(coarseBgn, iaxrs, jaxrs, iax, jax)
	if err != nil {
		return nil, nil, fmt.Errorf("background: upsample: %w", err)
	}

	for i, row := range bgn {
		floats.AddConst(tvg[i], row)
	}

	return bgn, mask, nil
}

func (e *Estimator) validate(sv [][]float64, iax, jax, r []float64) (rows, cols int, err error) {
	rows, cols, ok := gridmath.Dims(sv)
	if !ok {
		return 0, 0, fmt.Errorf("background: Sv grid must be non-empty and rectangular")
	}

	if len(iax) != rows {
		return 0, 0, fmt.Errorf("background: i axis length %d does not match %d grid rows", len(iax), rows)
	}
	if len(jax) != cols {
		return 0, 0, fmt.Errorf("background: j axis length %d does not match %d grid columns", len(jax), cols)
	}
	if len(r) != rows {
		return 0, 0, fmt.Errorf("background: range vector length %d does not match %d grid rows", len(r), rows)
	}
	if !gridmath.StrictlyIncreasing(iax) || !gridmath.StrictlyIncreasing(jax) {
		return 0, 0, fmt.Errorf("background: axes must be strictly increasing")
	}
	if e.cfg.StrideI <= 0 || e.cfg.StrideJ <= 0 {
		return 0, 0, fmt.Errorf("background: strides must be positive: %g, %g", e.cfg.StrideI, e.cfg.StrideJ)
	}

	return rows, cols, nil
}

func normalizeConfig(cfg Config) Config {
	if cfg.MaxNoise == 0 {
		cfg.MaxNoise = defaultMaxNoise
	}

	if cfg.Resampler == nil {
		cfg.Resampler = gridResampler{}
	}

	return cfg
}

// gridResampler adapts the processing/resample package to [Resampler].
type gridResampler struct{}

func (gridResampler) Bin(grid [][]float64, srcI, srcJ, dstI, dstJ []float64, logDomain bool) ([][]float64, [][]bool, error) {
	return resample.Bin2D(grid, srcI, srcJ, dstI, dstJ, logDomain)
}

func (gridResampler) Upsample(grid [][]float64, srcI, srcJ, dstI, dstJ []float64) ([][]float64, [][]bool, error) {
	return resample.Upsample2D(grid, srcI, srcJ, dstI, dstJ)
}
