package kernel

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// ErrInvalidSigma is returned for kernel widths below one sample.
var ErrInvalidSigma = errors.New("kernel: invalid sigma")

// fwhmPerSigma is 2*sqrt(2*ln 2), the FWHM of a unit-sigma Gaussian.
var fwhmPerSigma = 2 * math.Sqrt(2*math.Ln2)

// FWHMToSigma converts a full width at half maximum into a standard deviation
// in the same units.
func FWHMToSigma(fwhm float64) float64 {
	return fwhm / fwhmPerSigma
}

// SigmaToFWHM converts a standard deviation into a full width at half maximum.
func SigmaToFWHM(sigma float64) float64 {
	return sigma * fwhmPerSigma
}

// MaxSigmaSamples is the widest sigma whose kernel length fits in an int.
const MaxSigmaSamples = (math.MaxInt - 1) / 6

// Len returns the number of taps of a kernel with the given sigma in samples.
// Widths above MaxSigmaSamples saturate at math.MaxInt.
func Len(sigmaSamples int) int {
	if sigmaSamples > MaxSigmaSamples {
		return math.MaxInt
	}
	return 6*sigmaSamples + 1
}

// Gaussian returns a normalized Gaussian kernel of Len(sigmaSamples) taps.
func Gaussian(sigmaSamples int) ([]float64, error) {
	if sigmaSamples < 1 {
		return nil, fmt.Errorf("%w: must be >= 1: %d", ErrInvalidSigma, sigmaSamples)
	}
	if sigmaSamples > MaxSigmaSamples {
		return nil, fmt.Errorf("%w: too wide: %d", ErrInvalidSigma, sigmaSamples)
	}

	n := Len(sigmaSamples)
	out := make([]float64, n)
	GaussianTo(out, sigmaSamples)
	return out, nil
}

// GaussianTo fills dst with a normalized Gaussian of the given sigma.
// dst must have length Len(sigmaSamples) and sigmaSamples must be >= 1.
func GaussianTo(dst []float64, sigmaSamples int) {
	i0 := len(dst) / 2
	twoVar := 2 * float64(sigmaSamples) * float64(sigmaSamples)

	sum := 0.0
	for i := range dst {
		d := float64(i - i0)
		dst[i] = math.Exp(-d * d / twoVar)
		sum += dst[i]
	}

	// Guard against underflow for pathological widths.
	if sum == 0 {
		sum = 1
	}
	vecmath.ScaleBlock(dst, dst, 1/sum)
}
