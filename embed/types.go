package embed

import (
	"errors"

	"github.com/katalvlaran/klust/dataset"
)

// Output column names shared by every Reducer.
const (
	// Dim1 names the first embedded coordinate.
	Dim1 = "dim1"

	// Dim2 names the second embedded coordinate.
	Dim2 = "dim2"
)

var (
	// ErrTooFewRows is returned when the input has fewer than three rows —
	// a 2-D configuration needs at least a triangle.
	ErrTooFewRows = errors.New("embed: need at least three rows")

	// ErrEigenFailed is returned when the eigendecomposition of the
	// double-centered Gram matrix does not converge.
	ErrEigenFailed = errors.New("embed: eigen decomposition failed")

	// ErrDegenerateGram is returned when fewer than two positive
	// eigenvalues exist (all points coincide, or lie on a single line up
	// to numerical noise), so no 2-D configuration is recoverable.
	ErrDegenerateGram = errors.New("embed: degenerate distance structure")

	// ErrBadNeighbors is returned when Manifold.Neighbors is negative.
	ErrBadNeighbors = errors.New("embed: neighbors must be positive")
)

// Reducer maps a dataset into a 2-column dataset with the same row count
// and row order. Implementations must not mutate the input.
type Reducer interface {
	Reduce(ds *dataset.Dataset) (*dataset.Dataset, error)
}
