package testutil

import (
	"math"
	"math/rand"
)

// Grid returns n evenly spaced axis values starting at start.
func Grid(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// Spike returns a signal of length n that is zero except for height at pos.
func Spike(length, pos int, height float64) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = height
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// AbsorptionLine returns a unit continuum with a Gaussian dip of the given
// depth and sigma centred at centre, evaluated on x.
func AbsorptionLine(x []float64, centre, sigma, depth float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		d := (v - centre) / sigma
		out[i] = 1 - depth*math.Exp(-0.5*d*d)
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Clone returns a copy of s.
func Clone(s []float64) []float64 {
	if s == nil {
		return nil
	}
	out := make([]float64, len(s))
	copy(out, s)
	return out
}
