package resolution

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectro/spectro/axis"
	"github.com/cwbudde/algo-spectro/spectro/kernel"
	"github.com/cwbudde/algo-spectro/spectro/numeric"
)

// Errors returned by NewPlan.
var (
	ErrDegenerateGrid = errors.New("resolution: degenerate grid")
	ErrInvalidFWHM    = errors.New("resolution: invalid fwhm")
	ErrKernelTooWide  = errors.New("resolution: kernel width out of range")
)

// maxRatio is the largest rounded sigma/dx ratio accepted by NewPlan. It sits
// one ulp below float64(kernel.MaxSigmaSamples) so int(ratio) stays in range.
var maxRatio = math.Nextafter(float64(kernel.MaxSigmaSamples), 0)

// Plan describes the kernel that matches a target FWHM on a given axis.
type Plan struct {
	FWHM         float64
	Spacing      float64
	SigmaUnits   float64
	SigmaSamples int
	KernelLen    int
}

// NewPlan measures x and derives the kernel width for fwhm.
// It returns ErrDegenerateGrid when x has fewer than two samples or its
// median spacing is not positive, and ErrKernelTooWide when the width in
// samples is not finite or exceeds kernel.MaxSigmaSamples. In the latter case
// the returned Plan still carries FWHM, Spacing and SigmaUnits.
func NewPlan(x []float64, fwhm float64) (Plan, error) {
	if !(fwhm > 0) || math.IsInf(fwhm, 0) {
		return Plan{}, fmt.Errorf("%w: %v", ErrInvalidFWHM, fwhm)
	}

	dx, ok := axis.MedianSpacing(x)
	if !ok {
		return Plan{}, fmt.Errorf("%w: %d samples", ErrDegenerateGrid, len(x))
	}
	if !axis.Regular(dx) {
		return Plan{}, fmt.Errorf("%w: median spacing %v", ErrDegenerateGrid, dx)
	}

	p := Plan{
		FWHM:       fwhm,
		Spacing:    dx,
		SigmaUnits: kernel.FWHMToSigma(fwhm),
	}

	ratio := math.Round(p.SigmaUnits / dx)
	if math.IsNaN(ratio) || ratio > maxRatio {
		return p, fmt.Errorf("%w: sigma %v over spacing %v", ErrKernelTooWide, p.SigmaUnits, dx)
	}

	s := int(ratio)
	if s < 1 {
		s = 1
	}
	p.SigmaSamples = s
	p.KernelLen = kernel.Len(s)
	return p, nil
}

// Match convolves y, and sigma when it is non-nil, with kern and returns new
// slices of the same lengths. The inputs are not modified.
func Match(b numeric.Backend, kern, y, sigma []float64) (yOut, sigmaOut []float64, err error) {
	yOut = make([]float64, len(y))
	if err := b.ConvolveSame(yOut, y, kern); err != nil {
		return nil, nil, fmt.Errorf("resolution: intensity: %w", err)
	}

	if sigma == nil {
		return yOut, nil, nil
	}

	sigmaOut = make([]float64, len(sigma))
	if err := b.ConvolveSame(sigmaOut, sigma, kern); err != nil {
		return nil, nil, fmt.Errorf("resolution: uncertainty: %w", err)
	}
	return yOut, sigmaOut, nil
}
