// Package background estimates echosounder background noise as in:
//
//	De Robertis and Higginbottom (2007) 'A post-processing technique to
//	estimate the signal-to-noise ratio and remove echosounder
//	background noise', ICES Journal of Marine Science, 64: 1282-1291.
//
// The estimate works on a calibrated volume-backscattering-strength
// (Sv) grid in dB, with rows indexed by range sample and columns by
// ping. The range-dependent two-way travel gain (TVG) is removed, the
// corrected grid is averaged into coarse bins in the linear power
// domain, the minimum over the range axis per ping bin is taken as the
// noise floor, the floor is clipped to a configurable ceiling, and the
// result is projected back onto the original grid with TVG restored.
//
// # Usage
//
// Estimate the noise for a grid and remove it from the signal:
//
//	bgn, mask, err := background.Estimate(sv, iax, jax, r, background.Config{
//	    StrideI: 10, // metres
//	    StrideJ: 20, // pings
//	    Alpha:   0.0024,
//	})
//	// ...
//	svClean, low, err := background.Clean(sv, bgn, 12)
//
// Invalid values are IEEE-754 NaN throughout: ranges at or below zero
// make the whole row NaN, and bins with no valid samples produce NaN
// noise estimates. Degenerate resampling geometry (fewer than two
// coarse bins on either axis) is non-fatal: the estimate is all NaN
// with an all-true mask, and the returned error wraps
// [ErrDegenerateAxes] so pipeline callers can log it and move on.
package background
