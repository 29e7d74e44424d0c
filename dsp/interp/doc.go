// Package interp provides interpolation primitives for sampled curves.
//
//   - [Linear2]:         2-point linear interpolation at a fractional position
//   - [PiecewiseLinear]: linear interpolation over non-uniform sample points,
//     with constant fill values outside the sampled range
//
// [PiecewiseLinear] behaves like a lookup table: queries at a sample point
// return that sample exactly, queries between samples blend the two
// neighbours, and queries outside [x0, xn-1] return the configured fill
// value rather than an extrapolated trend.
package interp
