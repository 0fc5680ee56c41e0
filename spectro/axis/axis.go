package axis

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// SpeedOfLight is the speed of light in km/s.
const SpeedOfLight = 299792.458

// ErrInvalidFrame is returned when parsing an unknown frame name.
var ErrInvalidFrame = errors.New("axis: invalid frame")

// Frame identifies the reference frame of a wavelength axis.
type Frame int

const (
	// Observer is the frame in which the data was recorded.
	Observer Frame = iota
	// Rest is the frame co-moving with the source.
	Rest
)

// String returns the frame name.
func (f Frame) String() string {
	switch f {
	case Observer:
		return "observer"
	case Rest:
		return "rest"
	default:
		return fmt.Sprintf("Frame(%d)", int(f))
	}
}

// Valid reports whether f is a known frame.
func (f Frame) Valid() bool {
	return f == Observer || f == Rest
}

// ParseFrame parses a frame name. Matching ignores case and surrounding space.
func ParseFrame(name string) (Frame, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "observer":
		return Observer, nil
	case "rest":
		return Rest, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidFrame, name)
	}
}

// DopplerFactor returns 1 + rvKms/c.
func DopplerFactor(rvKms float64) float64 {
	return 1 + rvKms/SpeedOfLight
}

// FrameFactor returns the multiplier that moves an axis into frame f from the
// other frame, for a source moving at rvKms.
func FrameFactor(rvKms float64, f Frame) float64 {
	if f == Rest {
		return 1 / DopplerFactor(rvKms)
	}
	return DopplerFactor(rvKms)
}

// Scale writes src*factor into dst. dst and src may alias.
func Scale(dst, src []float64, factor float64) {
	vecmath.ScaleBlock(dst, src, factor)
}

// Convert moves src from frame from to frame to and writes the result into dst.
func Convert(dst, src []float64, rvKms float64, from, to Frame) {
	if from == to {
		copy(dst, src)
		return
	}
	Scale(dst, src, FrameFactor(rvKms, to))
}

// ToRest moves an observer-frame axis into the rest frame.
func ToRest(dst, src []float64, rvKms float64) {
	Convert(dst, src, rvKms, Observer, Rest)
}

// ToObserver moves a rest-frame axis into the observer frame.
func ToObserver(dst, src []float64, rvKms float64) {
	Convert(dst, src, rvKms, Rest, Observer)
}

// MedianSpacing returns the median of consecutive differences of x.
// ok is false when x has fewer than two samples.
func MedianSpacing(x []float64) (dx float64, ok bool) {
	if len(x) < 2 {
		return 0, false
	}

	diffs := make([]float64, len(x)-1)
	for i := range diffs {
		diffs[i] = x[i+1] - x[i]
	}
	slices.Sort(diffs)

	m := len(diffs) / 2
	if len(diffs)%2 == 1 {
		return diffs[m], true
	}
	return (diffs[m-1] + diffs[m]) / 2, true
}

// Regular reports whether dx is a usable sample spacing.
func Regular(dx float64) bool {
	return dx > 0 && !math.IsInf(dx, 0) && !math.IsNaN(dx)
}
