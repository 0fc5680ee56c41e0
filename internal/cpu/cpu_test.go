package cpu

import (
	"runtime"
	"testing"
)

func TestDetectFeaturesArchitecture(t *testing.T) {
	ResetForcedFeatures()
	if got := DetectFeatures().Architecture; got != runtime.GOARCH {
		t.Fatalf("Architecture = %q, want %q", got, runtime.GOARCH)
	}
}

func TestForcedFeatures(t *testing.T) {
	defer ResetForcedFeatures()

	SetForcedFeatures(Features{HasAVX2: true, Architecture: "test"})
	f := DetectFeatures()
	if !f.HasAVX2 || f.Architecture != "test" {
		t.Fatalf("forced features not returned: %+v", f)
	}

	ResetForcedFeatures()
	if DetectFeatures().Architecture != runtime.GOARCH {
		t.Fatal("reset did not restore detection")
	}
}

func TestSupports(t *testing.T) {
	tests := []struct {
		name     string
		features Features
		level    SIMDLevel
		want     bool
	}{
		{name: "none always", features: Features{}, level: SIMDNone, want: true},
		{name: "avx2 present", features: Features{HasAVX2: true}, level: SIMDAVX2, want: true},
		{name: "avx2 missing", features: Features{HasSSE2: true}, level: SIMDAVX2, want: false},
		{name: "neon", features: Features{HasNEON: true}, level: SIMDNEON, want: true},
		{name: "forced generic", features: Features{HasAVX2: true, ForceGeneric: true}, level: SIMDAVX2, want: false},
		{name: "forced generic none", features: Features{ForceGeneric: true}, level: SIMDNone, want: true},
		{name: "unknown", features: Features{HasAVX2: true}, level: SIMDLevel(99), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Supports(tt.features, tt.level); got != tt.want {
				t.Fatalf("Supports = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSIMDLevelString(t *testing.T) {
	if SIMDAVX2.String() != "AVX2" || SIMDLevel(42).String() != "Unknown" {
		t.Fatal("unexpected SIMDLevel names")
	}
}
