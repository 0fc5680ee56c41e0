// Package calib holds the calibration parameters applied to a spectrum:
// target instrumental FWHM, radial velocity and reference frame.
//
// A [Config] is owned by one session and changed only through validated
// setters, which reject bad values immediately with [ErrInvalidParameter].
// Transforms never read a Config directly; they take a [Settings] value from
// Config.Snapshot, so a running transform is unaffected by later changes.
//
//	cfg, err := calib.New(calib.WithTargetFWHM(0.2))
//	if err := cfg.SetRadialVelocity(30); err != nil { ... }
//	if err := cfg.SetFrame("rest"); err != nil { ... }
//	res := p.Apply(sample, cfg.Snapshot())
package calib
