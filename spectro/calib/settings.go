package calib

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectro/spectro/axis"
)

// ErrInvalidParameter is returned for out-of-range or non-finite parameters.
var ErrInvalidParameter = errors.New("calib: invalid parameter")

// Settings is an immutable snapshot of calibration parameters.
type Settings struct {
	// TargetFWHM is the instrumental FWHM to match in axis units.
	// Zero means resolution matching is off.
	TargetFWHM float64
	// RVKms is the radial velocity in km/s.
	RVKms float64
	// Frame is the frame the axis is moved into when RVKms is non-zero.
	Frame axis.Frame
}

// HasTargetFWHM reports whether resolution matching is requested.
func (s Settings) HasTargetFWHM() bool {
	return s.TargetFWHM > 0
}

// Validate checks the ranges enforced by the Config setters.
func (s Settings) Validate() error {
	if s.TargetFWHM != 0 {
		if err := validateFWHM(s.TargetFWHM); err != nil {
			return err
		}
	}
	if err := validateRV(s.RVKms); err != nil {
		return err
	}
	if !s.Frame.Valid() {
		return fmt.Errorf("%w: frame %v", ErrInvalidParameter, s.Frame)
	}
	return nil
}

type settingsJSON struct {
	TargetFWHM *float64 `json:"target_fwhm"`
	RVKms      float64  `json:"rv_kms"`
	Frame      string   `json:"frame"`
}

// MarshalJSON encodes an unset TargetFWHM as null.
func (s Settings) MarshalJSON() ([]byte, error) {
	out := settingsJSON{RVKms: s.RVKms, Frame: s.Frame.String()}
	if s.HasTargetFWHM() {
		fwhm := s.TargetFWHM
		out.TargetFWHM = &fwhm
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes and validates settings.
func (s *Settings) UnmarshalJSON(data []byte) error {
	var in settingsJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	out := Settings{RVKms: in.RVKms}
	if in.TargetFWHM != nil {
		out.TargetFWHM = *in.TargetFWHM
	}
	if in.Frame != "" {
		f, err := axis.ParseFrame(in.Frame)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidParameter, err)
		}
		out.Frame = f
	}
	if err := out.Validate(); err != nil {
		return err
	}

	*s = out
	return nil
}

func validateFWHM(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: target fwhm must be finite: %v", ErrInvalidParameter, v)
	}
	if v <= 0 {
		return fmt.Errorf("%w: target fwhm must be > 0: %v", ErrInvalidParameter, v)
	}
	return nil
}

func validateRV(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: radial velocity must be finite: %v", ErrInvalidParameter, v)
	}
	return nil
}
