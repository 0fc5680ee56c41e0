// Package numeric provides the numeric backends used by the calibration
// transforms.
//
// A [Backend] supplies the two array operations the transforms need: scaling
// an axis by a constant and same-length convolution with edge replication.
// Backends are selected from a [Registry] against the detected CPU features,
// once, when a pipeline is constructed:
//
//	b := numeric.Resolve() // nil when no compatible backend is registered
//
// A nil Backend is a valid outcome; callers treat it as "no numeric
// capability" and leave their data unchanged.
//
// # Convolution
//
// [Vector] evaluates short kernels directly with vectorized block products and
// switches to FFT convolution (algo-fft) from 64 taps on, where the direct
// O(N*M) cost starts to dominate.
package numeric
