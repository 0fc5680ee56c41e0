// Package resolution degrades a spectrum to a coarser instrumental resolution
// by convolving it with a Gaussian line-spread function.
//
// The target width is given as a FWHM in axis units. A [Plan] measures the
// sample spacing of the axis (median of consecutive differences) and turns the
// FWHM into a kernel width in samples:
//
//	sigma_units   = fwhm / (2*sqrt(2*ln 2))
//	sigma_samples = max(1, round(sigma_units / dx))
//
// Uncertainties are convolved with the same kernel as the intensities. This
// is a linear blend of neighbouring sigmas rather than a quadrature
// propagation and understates the smoothed uncertainty.
package resolution
