// Package resample provides 2D bin-aggregation and its inverse for
// echogram grids.
//
// Echosounder processing algorithms often operate on a coarser grid
// than the recorded one: samples are grouped into bins along the range
// and observation axes, a statistic is computed per bin, and the
// result is projected back onto the original resolution. This package
// implements both directions:
//
//   - [Bin2D] aggregates a fine grid into coarse bins, averaging in
//     the linear power domain (physically correct for decibel data) or
//     arithmetically in the dB domain.
//   - [Upsample2D] broadcasts each coarse bin value back onto every
//     fine cell the bin encloses.
//
// Destination axis values act as left bin edges: bin k spans
// [dst[k], dst[k+1]), and the last bin extends to the end of the
// source axis. Cells with no enclosing bin, and bins with no valid
// contributing samples, are reported through the returned mask.
//
// Invalid samples are IEEE-754 NaN and are excluded from bin averages;
// a bin with no valid samples yields NaN.
package resample
