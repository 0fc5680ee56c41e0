// Package cpu detects the SIMD extensions used to pick a numeric backend.
//
// Detection runs once on first use and is cached. Tests may override the
// result with SetForcedFeatures.
package cpu

import "sync"

// SIMDLevel is an instruction set a backend variant may require.
type SIMDLevel int

const (
	// SIMDNone requires nothing beyond pure Go.
	SIMDNone SIMDLevel = iota
	// SIMDSSE2 is the x86-64 baseline.
	SIMDSSE2
	// SIMDAVX2 is x86-64 AVX2.
	SIMDAVX2
	// SIMDNEON is ARM Advanced SIMD.
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX2:
		return "AVX2"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Features describes the CPU capabilities relevant to backend selection.
type Features struct {
	HasSSE2 bool
	HasAVX2 bool
	HasNEON bool

	// ForceGeneric restricts selection to SIMDNone variants.
	ForceGeneric bool

	// Architecture is runtime.GOARCH.
	Architecture string
}

var (
	detectOnce       sync.Once
	detectedFeatures Features

	forcedMu       sync.RWMutex
	forcedFeatures *Features
)

// DetectFeatures returns the features of the current CPU.
// It is safe for concurrent use.
func DetectFeatures() Features {
	forcedMu.RLock()
	forced := forcedFeatures
	forcedMu.RUnlock()

	if forced != nil {
		return *forced
	}

	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})
	return detectedFeatures
}

// SetForcedFeatures overrides detection. Intended for tests.
func SetForcedFeatures(f Features) {
	forcedMu.Lock()
	defer forcedMu.Unlock()
	forcedFeatures = &f
}

// ResetForcedFeatures restores hardware detection.
func ResetForcedFeatures() {
	forcedMu.Lock()
	defer forcedMu.Unlock()
	forcedFeatures = nil
}

// Supports reports whether features satisfy level.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}
