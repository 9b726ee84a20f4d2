// Package scale standardizes dataset columns to zero mean and unit
// standard deviation (z-scores).
//
// Standardize fits and applies in one call and additionally returns the
// fitted Scaler, so the same affine transform can be re-applied to new rows
// (Transform) or undone (Inverse).
//
// Zero-variance columns cannot be standardized; by default they surface as
// ErrZeroVariance. WithKeepDegenerate opts into mapping such columns to
// all-zeros instead — defined but degenerate, and any clustering driven by
// that column alone collapses to a single group.
package scale
