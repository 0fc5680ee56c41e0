package calib

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/cwbudde/algo-spectro/spectro/axis"
)

func newConfig(t *testing.T, opts ...Option) *Config {
	t.Helper()
	c, err := New(opts...)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	return c
}

func TestNewDefaults(t *testing.T) {
	s := newConfig(t).Snapshot()
	if s != (Settings{Frame: axis.Observer}) {
		t.Fatalf("defaults = %+v", s)
	}
	if s.HasTargetFWHM() {
		t.Fatal("target fwhm should be unset")
	}
}

func TestNewOptions(t *testing.T) {
	c := newConfig(t, WithTargetFWHM(0.5), WithRadialVelocity(-12), WithFrame("rest"), nil)
	want := Settings{TargetFWHM: 0.5, RVKms: -12, Frame: axis.Rest}
	if got := c.Snapshot(); got != want {
		t.Fatalf("Snapshot = %+v, want %+v", got, want)
	}

	if _, err := New(WithTargetFWHM(-1)); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("New(WithTargetFWHM(-1)) error = %v, want ErrInvalidParameter", err)
	}
}

func TestSetTargetFWHM(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{name: "positive", value: 2},
		{name: "tiny", value: 1e-12},
		{name: "zero", value: 0, wantErr: true},
		{name: "negative", value: -1, wantErr: true},
		{name: "nan", value: math.NaN(), wantErr: true},
		{name: "inf", value: math.Inf(1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newConfig(t, WithTargetFWHM(1))
			err := c.SetTargetFWHM(tt.value)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidParameter) {
					t.Fatalf("error = %v, want ErrInvalidParameter", err)
				}
				if c.Snapshot().TargetFWHM != 1 {
					t.Fatal("rejected value changed the config")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.Snapshot().TargetFWHM != tt.value {
				t.Fatalf("TargetFWHM = %v, want %v", c.Snapshot().TargetFWHM, tt.value)
			}
		})
	}
}

func TestClearTargetFWHM(t *testing.T) {
	c := newConfig(t, WithTargetFWHM(3))
	c.ClearTargetFWHM()
	if c.Snapshot().HasTargetFWHM() {
		t.Fatal("target fwhm still set")
	}
}

func TestSetRadialVelocity(t *testing.T) {
	c := newConfig(t)
	for _, v := range []float64{0, 300, -300, 1e6} {
		if err := c.SetRadialVelocity(v); err != nil {
			t.Fatalf("SetRadialVelocity(%v) error: %v", v, err)
		}
		if c.Snapshot().RVKms != v {
			t.Fatalf("RVKms = %v, want %v", c.Snapshot().RVKms, v)
		}
	}
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if err := c.SetRadialVelocity(v); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("SetRadialVelocity(%v) error = %v, want ErrInvalidParameter", v, err)
		}
	}
}

func TestSetFrame(t *testing.T) {
	c := newConfig(t)

	if err := c.SetFrame("rest"); err != nil {
		t.Fatal(err)
	}
	if c.Snapshot().Frame != axis.Rest {
		t.Fatal("frame not set to rest")
	}
	if err := c.SetFrame("observer"); err != nil {
		t.Fatal(err)
	}

	err := c.SetFrame("oblique")
	if !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("SetFrame(oblique) error = %v, want ErrInvalidParameter", err)
	}
	if !errors.Is(err, axis.ErrInvalidFrame) {
		t.Fatalf("SetFrame(oblique) error = %v, want wrapped ErrInvalidFrame", err)
	}
	if c.Snapshot().Frame != axis.Observer {
		t.Fatal("rejected frame changed the config")
	}
}

func TestSnapshotIsolation(t *testing.T) {
	c := newConfig(t, WithRadialVelocity(10))
	s := c.Snapshot()
	if err := c.SetRadialVelocity(20); err != nil {
		t.Fatal(err)
	}
	if s.RVKms != 10 {
		t.Fatal("snapshot changed after setter")
	}
}

func TestConcurrentSettersAndSnapshots(t *testing.T) {
	c := newConfig(t)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				_ = c.SetRadialVelocity(float64(i*j + 1))
				_ = c.SetTargetFWHM(float64(j + 1))
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if err := c.Snapshot().Validate(); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
