package numeric

import "errors"

// Errors returned by backend operations.
var (
	ErrEmptyInput     = errors.New("numeric: empty input")
	ErrEmptyKernel    = errors.New("numeric: empty kernel")
	ErrEvenKernel     = errors.New("numeric: kernel length must be odd")
	ErrLengthMismatch = errors.New("numeric: buffer length mismatch")
)

// Backend performs the array operations of the calibration transforms.
// Implementations must be safe for concurrent use.
type Backend interface {
	// Name identifies the backend in provenance metadata.
	Name() string

	// Scale writes src*factor into dst. dst and src may alias.
	Scale(dst, src []float64, factor float64)

	// ConvolveSame convolves src with an odd-length kernel centred on its
	// middle tap and writes len(src) samples into dst. Samples beyond either
	// end of src are taken to equal the nearest edge sample. dst must not
	// alias src.
	ConvolveSame(dst, src, kernel []float64) error
}

func validateConvolve(dst, src, kernel []float64) error {
	if len(src) == 0 {
		return ErrEmptyInput
	}
	if len(kernel) == 0 {
		return ErrEmptyKernel
	}
	if len(kernel)%2 == 0 {
		return ErrEvenKernel
	}
	if len(dst) != len(src) {
		return ErrLengthMismatch
	}
	return nil
}

// padEdges returns src extended by h copies of its first and last sample.
func padEdges(src []float64, h int) []float64 {
	n := len(src)
	out := make([]float64, n+2*h)
	for j := 0; j < h; j++ {
		out[j] = src[0]
		out[h+n+j] = src[n-1]
	}
	copy(out[h:h+n], src)
	return out
}
