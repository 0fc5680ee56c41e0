// Package axis implements Doppler shifts and reference-frame conversions of a
// wavelength axis.
//
// Shifts use the non-relativistic factor f = 1 + v/c for a source with radial
// velocity v (positive when receding). Moving an axis into the observer frame
// multiplies by f and moving it into the rest frame divides by f, so a round
// trip restores the original values to floating precision:
//
//	axis.ToRest(rest, observed, rv)
//	axis.ToObserver(back, rest, rv) // back == observed within 1e-9
//
// The relativistic correction is not applied.
package axis
