package numeric

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// DefaultFFTThreshold is the kernel length from which Vector convolves via FFT.
const DefaultFFTThreshold = 64

// Vector is the default backend built on algo-vecmath block kernels and
// algo-fft. The zero value is ready to use.
type Vector struct {
	// FFTThreshold is the kernel length from which FFT convolution is used.
	// Zero selects DefaultFFTThreshold; a negative value disables FFT.
	FFTThreshold int

	name string
}

// Name implements Backend.
func (v *Vector) Name() string {
	if v.name == "" {
		return "vector"
	}
	return v.name
}

// Scale implements Backend.
func (v *Vector) Scale(dst, src []float64, factor float64) {
	vecmath.ScaleBlock(dst, src, factor)
}

// ConvolveSame implements Backend.
func (v *Vector) ConvolveSame(dst, src, kernel []float64) error {
	if err := validateConvolve(dst, src, kernel); err != nil {
		return err
	}

	threshold := v.FFTThreshold
	if threshold == 0 {
		threshold = DefaultFFTThreshold
	}

	if threshold > 0 && len(kernel) >= threshold {
		return convolveSameFFT(dst, src, kernel)
	}
	convolveSameDirect(dst, src, kernel)
	return nil
}

// convolveSameDirect evaluates each output sample as a dot product of the
// reversed kernel with the padded input window.
func convolveSameDirect(dst, src, kernel []float64) {
	m := len(kernel)
	h := m / 2
	padded := padEdges(src, h)

	rev := make([]float64, m)
	for j := range kernel {
		rev[j] = kernel[m-1-j]
	}

	temp := make([]float64, m)
	for i := range dst {
		vecmath.MulBlock(temp, padded[i:i+m], rev)

		acc := 0.0
		for _, p := range temp {
			acc += p
		}
		dst[i] = acc
	}
}

// convolveSameFFT computes the full linear convolution of the padded input
// with the kernel in the frequency domain and keeps the centred part.
func convolveSameFFT(dst, src, kernel []float64) error {
	m := len(kernel)
	h := m / 2
	padded := padEdges(src, h)

	fullLen := len(padded) + m - 1
	fftSize := nextPowerOf2(fullLen)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return fmt.Errorf("numeric: failed to create FFT plan: %w", err)
	}

	a := make([]complex128, fftSize)
	for i, x := range padded {
		a[i] = complex(x, 0)
	}
	b := make([]complex128, fftSize)
	for i, k := range kernel {
		b[i] = complex(k, 0)
	}

	if err := plan.Forward(a, a); err != nil {
		return fmt.Errorf("numeric: forward FFT failed: %w", err)
	}
	if err := plan.Forward(b, b); err != nil {
		return fmt.Errorf("numeric: forward FFT failed: %w", err)
	}
	for i := range a {
		a[i] *= b[i]
	}
	if err := plan.Inverse(a, a); err != nil {
		return fmt.Errorf("numeric: inverse FFT failed: %w", err)
	}

	// Output sample i sits at index i+2h of the full convolution.
	for i := range dst {
		dst[i] = real(a[i+2*h])
	}
	return nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
