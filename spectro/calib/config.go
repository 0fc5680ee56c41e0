package calib

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-spectro/spectro/axis"
)

// Config is the mutable calibration state of a session.
// It is safe for concurrent use; each setter changes exactly one field.
type Config struct {
	mu sync.RWMutex
	s  Settings
}

// Option configures a Config at construction.
type Option func(*Config) error

// WithTargetFWHM sets the target FWHM.
func WithTargetFWHM(v float64) Option {
	return func(c *Config) error { return c.SetTargetFWHM(v) }
}

// WithRadialVelocity sets the radial velocity in km/s.
func WithRadialVelocity(kms float64) Option {
	return func(c *Config) error { return c.SetRadialVelocity(kms) }
}

// WithFrame sets the target frame by name.
func WithFrame(name string) Option {
	return func(c *Config) error { return c.SetFrame(name) }
}

// New returns a Config with no resolution matching, zero radial velocity and
// the observer frame, then applies opts in order.
func New(opts ...Option) (*Config, error) {
	c := &Config{s: Settings{Frame: axis.Observer}}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// SetTargetFWHM sets the target FWHM. v must be positive and finite.
func (c *Config) SetTargetFWHM(v float64) error {
	if err := validateFWHM(v); err != nil {
		return err
	}

	c.mu.Lock()
	c.s.TargetFWHM = v
	c.mu.Unlock()
	return nil
}

// ClearTargetFWHM turns resolution matching off.
func (c *Config) ClearTargetFWHM() {
	c.mu.Lock()
	c.s.TargetFWHM = 0
	c.mu.Unlock()
}

// SetRadialVelocity sets the radial velocity in km/s. kms must be finite.
func (c *Config) SetRadialVelocity(kms float64) error {
	if err := validateRV(kms); err != nil {
		return err
	}

	c.mu.Lock()
	c.s.RVKms = kms
	c.mu.Unlock()
	return nil
}

// SetFrame sets the target frame. Only "observer" and "rest" are accepted.
func (c *Config) SetFrame(name string) error {
	f, err := axis.ParseFrame(name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}

	c.mu.Lock()
	c.s.Frame = f
	c.mu.Unlock()
	return nil
}

// Snapshot returns the current settings by value.
func (c *Config) Snapshot() Settings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.s
}
