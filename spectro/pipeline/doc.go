// Package pipeline applies calibration transforms to a spectral sample and
// records what was applied.
//
// Transforms run in a fixed order against a [calib.Settings] snapshot:
//
//  1. Radial-velocity/frame shift of the wavelength axis, when RVKms != 0.
//  2. Resolution matching, when TargetFWHM > 0. The kernel width is measured
//     on the shifted axis, since that is the grid the data ends up on.
//
// Each transform that changes the data appends one [Step] to the result's
// metadata. Apply never fails: an axis too short or irregular to measure
// skips resolution matching without a step, and a pipeline without a numeric
// backend returns its input unchanged with a warning.
//
//	p := pipeline.New()
//	res := p.Apply(pipeline.Sample{X: x, Y: y, Sigma: sigma}, cfg.Snapshot())
//	if res.Meta.Applied {
//		...
//	}
//
// The input slices are never modified and never shared with the result.
package pipeline
