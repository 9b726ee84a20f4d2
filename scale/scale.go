package scale

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/klust/dataset"
)

// DefaultEpsilon is the tolerance under which a column's standard deviation
// is treated as zero.
const DefaultEpsilon = 1e-12

// Option mutates standardization policy. Constructors panic only on
// nonsensical values (programmer error); user data never panics.
type Option func(*options)

type options struct {
	eps            float64
	keepDegenerate bool
}

// WithEpsilon sets the zero-variance tolerance.
// Panics when eps is negative or non-finite.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic("scale: WithEpsilon: eps must be finite, non-negative")
	}

	return func(o *options) { o.eps = eps }
}

// WithKeepDegenerate maps zero-variance columns to all-zeros instead of
// returning ErrZeroVariance.
func WithKeepDegenerate() Option {
	return func(o *options) { o.keepDegenerate = true }
}

func gatherOptions(opts ...Option) options {
	o := options{eps: DefaultEpsilon}
	for _, set := range opts {
		set(&o)
	}

	return o
}

// Standardize z-scores every column of ds independently:
//
//	z[i][j] = (x[i][j] − mean(col j)) / std(col j)
//
// It returns the scaled dataset (same shape, same column names, same row
// order) and the fitted Scaler. The input is never mutated.
//
// Errors:
//   - dataset validation errors (empty, ragged, non-finite);
//   - ErrZeroVariance for a constant column, unless WithKeepDegenerate.
//
// Complexity: O(n·d) time, O(n·d) space.
func Standardize(ds *dataset.Dataset, opts ...Option) (*dataset.Dataset, *Scaler, error) {
	if err := ds.Validate(); err != nil {
		return nil, nil, err
	}
	o := gatherOptions(opts...)

	var (
		n = ds.Rows()
		p = ds.Cols()
		s = &Scaler{
			Mean:       make([]float64, p),
			Std:        make([]float64, p),
			Degenerate: make([]bool, p),
		}
	)

	// Fit: one stat pass per column.
	for j := 0; j < p; j++ {
		col, err := ds.ColumnAt(j)
		if err != nil {
			return nil, nil, err
		}
		mean, std := stat.MeanStdDev(col, nil)
		s.Mean[j] = mean
		if std <= o.eps || math.IsNaN(std) {
			if !o.keepDegenerate {
				return nil, nil, ErrZeroVariance
			}
			s.Std[j] = 0
			s.Degenerate[j] = true
			continue
		}
		s.Std[j] = std
	}

	// Apply: fresh rows, never touching the input.
	src := ds.Raw()
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i] = make([]float64, p)
		for j := 0; j < p; j++ {
			if s.Degenerate[j] {
				out[i][j] = 0
				continue
			}
			out[i][j] = (src[i][j] - s.Mean[j]) / s.Std[j]
		}
	}

	return dataset.Wrap(ds.Columns(), out), s, nil
}

// Transform applies the fitted standardization to a new row.
// Errors: ErrDimensionMismatch when len(row) differs from the fitted width.
//
// Complexity: O(d).
func (s *Scaler) Transform(row []float64) ([]float64, error) {
	if len(row) != len(s.Mean) {
		return nil, ErrDimensionMismatch
	}
	out := make([]float64, len(row))
	for j, v := range row {
		if s.Degenerate[j] {
			out[j] = 0
			continue
		}
		out[j] = (v - s.Mean[j]) / s.Std[j]
	}

	return out, nil
}

// Inverse maps a standardized row back to the original units.
// Degenerate columns recover their fitted mean.
// Errors: ErrDimensionMismatch when len(row) differs from the fitted width.
//
// Complexity: O(d).
func (s *Scaler) Inverse(row []float64) ([]float64, error) {
	if len(row) != len(s.Mean) {
		return nil, ErrDimensionMismatch
	}
	out := make([]float64, len(row))
	for j, v := range row {
		if s.Degenerate[j] {
			out[j] = s.Mean[j]
			continue
		}
		out[j] = v*s.Std[j] + s.Mean[j]
	}

	return out, nil
}
