package numeric

import (
	"sync"

	"github.com/cwbudde/algo-spectro/internal/cpu"
)

// Entry describes a registered backend variant.
type Entry struct {
	// Name is a human-readable identifier for this variant.
	Name string

	// SIMDLevel is the instruction set the variant requires.
	SIMDLevel cpu.SIMDLevel

	// Priority determines selection order when several variants are
	// compatible. Higher wins.
	Priority int

	// New constructs the backend.
	New func() Backend
}

// Registry holds backend variants and selects the best one for a CPU.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
}

// Global is the registry consulted by Resolve.
var Global = &Registry{}

// FFT crossover points for the SIMD variants. Wider block products keep the
// direct path ahead of the FFT for longer kernels.
const (
	avx2FFTThreshold = 128
	neonFFTThreshold = 96
)

func init() {
	Global.Register(Entry{
		Name:      "vector-avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,
		New:       func() Backend { return &Vector{FFTThreshold: avx2FFTThreshold, name: "vector-avx2"} },
	})
	Global.Register(Entry{
		Name:      "vector-neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  20,
		New:       func() Backend { return &Vector{FFTThreshold: neonFFTThreshold, name: "vector-neon"} },
	})
	Global.Register(Entry{
		Name:      "vector",
		SIMDLevel: cpu.SIMDNone,
		Priority:  10,
		New:       func() Backend { return &Vector{} },
	})
	Global.Register(Entry{
		Name:      "direct",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		New:       func() Backend { return &Vector{FFTThreshold: -1, name: "direct"} },
	})
}

// Register adds a variant. Entries without a constructor are ignored.
func (r *Registry) Register(e Entry) {
	if e.New == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, e)
	// Insertion sort by descending priority; the registry stays small.
	for i := len(r.entries) - 1; i > 0 && r.entries[i].Priority > r.entries[i-1].Priority; i-- {
		r.entries[i], r.entries[i-1] = r.entries[i-1], r.entries[i]
	}
}

// Lookup returns the highest-priority variant supported by features,
// or nil if none is.
func (r *Registry) Lookup(features cpu.Features) *Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if cpu.Supports(features, r.entries[i].SIMDLevel) {
			e := r.entries[i]
			return &e
		}
	}
	return nil
}

// Find returns the variant registered under name, or nil.
func (r *Registry) Find(name string) *Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].Name == name {
			e := r.entries[i]
			return &e
		}
	}
	return nil
}

// Entries returns a copy of the registered variants in selection order.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Resolve constructs the best backend for this CPU from r.
// It returns nil when no compatible variant is registered.
func (r *Registry) Resolve() Backend {
	e := r.Lookup(cpu.DetectFeatures())
	if e == nil {
		return nil
	}
	return e.New()
}

// Resolve constructs the best backend from the Global registry.
func Resolve() Backend {
	return Global.Resolve()
}
