package kmeans

import "errors"

var (
	// ErrBadK is returned when k < 1 or k exceeds the number of rows.
	ErrBadK = errors.New("kmeans: k out of range")

	// ErrBadOptions is returned when Options hold nonsensical values
	// (MaxIterations < 1 or Restarts < 1).
	ErrBadOptions = errors.New("kmeans: invalid options")
)

// Result holds the outcome of a single Partition call.
type Result struct {
	// Labels maps row index → cluster label in [1, k]; len(Labels) equals
	// the input row count.
	Labels []int

	// Centroids holds the k cluster centers, each of input width.
	// Centroids[c] corresponds to label c+1.
	Centroids [][]float64

	// Inertia is the sum of squared Euclidean distances from every row to
	// its assigned centroid (lower is tighter).
	Inertia float64

	// Iterations is the Lloyd iteration count of the winning restart.
	Iterations int
}
