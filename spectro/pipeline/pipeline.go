package pipeline

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-spectro/spectro/axis"
	"github.com/cwbudde/algo-spectro/spectro/calib"
	"github.com/cwbudde/algo-spectro/spectro/kernel"
	"github.com/cwbudde/algo-spectro/spectro/numeric"
	"github.com/cwbudde/algo-spectro/spectro/resolution"
)

// Conditions reported as metadata warnings.
var (
	ErrBackendUnavailable = errors.New("pipeline: numeric backend unavailable")
	ErrLengthMismatch     = errors.New("pipeline: sample length mismatch")
	ErrKernelTooLong      = errors.New("pipeline: kernel too long")
	ErrInvalidShift       = errors.New("pipeline: invalid doppler factor")
)

// DefaultMaxKernelLen bounds the kernel built for resolution matching.
const DefaultMaxKernelLen = 1 << 22

// Pipeline applies calibration transforms. It is safe for concurrent use.
type Pipeline struct {
	backend      numeric.Backend
	kernels      *kernel.Cache
	maxKernelLen int
}

type config struct {
	backend      numeric.Backend
	backendSet   bool
	registry     *numeric.Registry
	kernels      *kernel.Cache
	maxKernelLen int
}

// Option configures a Pipeline.
type Option func(*config)

// WithBackend injects a backend instead of resolving one. A nil backend
// makes every Apply an identity no-op with a warning.
func WithBackend(b numeric.Backend) Option {
	return func(c *config) {
		c.backend = b
		c.backendSet = true
	}
}

// WithRegistry resolves the backend from r instead of numeric.Global.
func WithRegistry(r *numeric.Registry) Option {
	return func(c *config) {
		if r != nil {
			c.registry = r
		}
	}
}

// WithKernelCache shares a kernel cache between pipelines.
func WithKernelCache(kc *kernel.Cache) Option {
	return func(c *config) {
		if kc != nil {
			c.kernels = kc
		}
	}
}

// WithMaxKernelLen bounds the resolution-matching kernel length. Wider
// kernels skip the step with a warning.
func WithMaxKernelLen(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxKernelLen = n
		}
	}
}

// New builds a Pipeline. The backend is resolved once, here.
func New(opts ...Option) *Pipeline {
	cfg := config{
		registry:     numeric.Global,
		maxKernelLen: DefaultMaxKernelLen,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if !cfg.backendSet {
		cfg.backend = cfg.registry.Resolve()
	}

	if cfg.kernels == nil {
		if kc, err := kernel.NewCache(0); err == nil {
			cfg.kernels = kc
		}
	}

	return &Pipeline{
		backend:      cfg.backend,
		kernels:      cfg.kernels,
		maxKernelLen: cfg.maxKernelLen,
	}
}

// Backend returns the name of the resolved backend, or "" if there is none.
func (p *Pipeline) Backend() string {
	if p.backend == nil {
		return ""
	}
	return p.backend.Name()
}

// Apply transforms s according to cfg. The returned arrays are new slices of
// the same lengths as the input; s is not modified.
func (p *Pipeline) Apply(s Sample, cfg calib.Settings) Result {
	out := s.clone()
	res := Result{
		X:     out.X,
		Y:     out.Y,
		Sigma: out.Sigma,
		Meta:  Metadata{Config: cfg, Steps: []Step{}},
	}

	if p.backend == nil {
		res.Meta.warn(ErrBackendUnavailable)
		return res
	}
	res.Meta.Backend = p.backend.Name()

	if err := s.validate(); err != nil {
		res.Meta.warn(err)
		return res
	}
	if err := cfg.Validate(); err != nil {
		res.Meta.warn(err)
		return res
	}

	if cfg.RVKms != 0 {
		p.shift(&res, cfg)
	}
	if cfg.HasTargetFWHM() {
		p.matchResolution(&res, cfg.TargetFWHM)
	}

	return res
}

func (p *Pipeline) shift(res *Result, cfg calib.Settings) {
	factor := axis.FrameFactor(cfg.RVKms, cfg.Frame)
	if !(factor > 0) || math.IsInf(factor, 0) {
		res.Meta.warn(fmt.Errorf("%w: %v for rv %v km/s in %s frame", ErrInvalidShift, factor, cfg.RVKms, cfg.Frame))
		return
	}
	p.backend.Scale(res.X, res.X, factor)

	res.Meta.record(KindRVShift, map[string]float64{
		"rv_kms": cfg.RVKms,
		"factor": factor,
	})
}

func (p *Pipeline) matchResolution(res *Result, fwhm float64) {
	plan, err := resolution.NewPlan(res.X, fwhm)
	switch {
	case errors.Is(err, resolution.ErrKernelTooWide):
		res.Meta.warn(fmt.Errorf("%w: %w", ErrKernelTooLong, err))
		return
	case err != nil:
		// Degenerate grids skip the step silently.
		return
	}

	if plan.KernelLen > p.maxKernelLen {
		res.Meta.warn(fmt.Errorf("%w: %d taps for sigma %d samples", ErrKernelTooLong, plan.KernelLen, plan.SigmaSamples))
		return
	}

	kern, err := p.kernel(plan.SigmaSamples)
	if err != nil {
		res.Meta.warn(err)
		return
	}

	y, sigma, err := resolution.Match(p.backend, kern, res.Y, res.Sigma)
	if err != nil {
		res.Meta.warn(err)
		return
	}
	res.Y, res.Sigma = y, sigma

	res.Meta.record(KindResolutionMatch, map[string]float64{
		"fwhm":          fwhm,
		"sigma_samples": float64(plan.SigmaSamples),
	})
}

func (p *Pipeline) kernel(sigmaSamples int) ([]float64, error) {
	if p.kernels == nil {
		return kernel.Gaussian(sigmaSamples)
	}
	return p.kernels.Get(sigmaSamples)
}

var (
	defaultPipeline     *Pipeline
	defaultPipelineOnce sync.Once
)

// Apply runs s through a shared Pipeline built with default options.
func Apply(s Sample, cfg calib.Settings) Result {
	defaultPipelineOnce.Do(func() {
		defaultPipeline = New()
	})
	return defaultPipeline.Apply(s, cfg)
}
