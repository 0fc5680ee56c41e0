// Package kernel builds normalized discrete Gaussian kernels for resolution
// matching.
//
// A kernel for sigma s (in samples) has 6*s+1 taps, covering +/-3 sigma around
// the centre tap, and sums to 1 so that convolution preserves total flux:
//
//	k, err := kernel.Gaussian(3) // 19 taps
//
// Kernels depend only on s, so repeated builds can be served from a [Cache]:
//
//	c, err := kernel.NewCache(64)
//	k, err := c.Get(3)
//
// Kernels returned by a Cache are shared between callers and must not be
// modified.
package kernel
