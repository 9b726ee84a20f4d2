package scale

import "errors"

var (
	// ErrZeroVariance is returned when a column's standard deviation is zero
	// (within the configured epsilon) and degenerate columns were not
	// explicitly allowed via WithKeepDegenerate.
	ErrZeroVariance = errors.New("scale: zero-variance column")

	// ErrDimensionMismatch is returned by Transform/Inverse when the input
	// width differs from the fitted width.
	ErrDimensionMismatch = errors.New("scale: dimension mismatch")
)

// Scaler holds the per-column statistics fitted by Standardize.
// A fitted Scaler is immutable; Transform and Inverse do not modify it.
type Scaler struct {
	// Mean holds the fitted column means, in column order.
	Mean []float64

	// Std holds the fitted column standard deviations (sample, n−1).
	// Degenerate columns (see Degenerate) store Std=0.
	Std []float64

	// Degenerate flags columns whose variance was ~0 at fit time.
	// Such columns map to 0 under Transform and back to Mean under Inverse.
	Degenerate []bool
}
