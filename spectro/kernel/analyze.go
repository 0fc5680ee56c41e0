package kernel

// Analysis holds numerically measured properties of a kernel.
type Analysis struct {
	// Len is the number of taps.
	Len int
	// Sum is the sum of all taps; 1 for a normalized kernel.
	Sum float64
	// Peak is the largest tap value.
	Peak float64
	// FWHM is the full width at half of Peak in samples, found by linear
	// interpolation between taps.
	FWHM float64
}

// Analyze measures the properties of a single-peaked kernel.
func Analyze(k []float64) Analysis {
	if len(k) == 0 {
		return Analysis{}
	}

	a := Analysis{Len: len(k)}
	peakIdx := 0
	for i, v := range k {
		a.Sum += v
		if v > a.Peak {
			a.Peak = v
			peakIdx = i
		}
	}
	if a.Peak <= 0 {
		return a
	}

	half := a.Peak / 2

	left := 0.0
	for i := peakIdx; i > 0; i-- {
		if k[i-1] < half {
			left = float64(i) - (k[i]-half)/(k[i]-k[i-1])
			break
		}
	}

	right := float64(len(k) - 1)
	for i := peakIdx; i < len(k)-1; i++ {
		if k[i+1] < half {
			right = float64(i) + (k[i]-half)/(k[i]-k[i+1])
			break
		}
	}

	a.FWHM = right - left
	return a
}
