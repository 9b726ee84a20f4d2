package silhouette

import (
	"errors"

	"github.com/katalvlaran/klust/kmeans"
)

var (
	// ErrLabelMismatch is returned when labels do not fit the dataset:
	// wrong length, or a label outside [1, max].
	ErrLabelMismatch = errors.New("silhouette: labels do not match dataset")

	// ErrSingleCluster is returned by Score/Widths when fewer than two
	// distinct clusters are present — the silhouette is undefined.
	ErrSingleCluster = errors.New("silhouette: need at least two clusters")

	// ErrBadRange is returned by Select for an unusable k range
	// (kmin < 2, kmax < kmin, or kmax ≥ number of rows).
	ErrBadRange = errors.New("silhouette: invalid k range")
)

// Selection is the outcome of a cluster-count scan.
type Selection struct {
	// K is the selected cluster count: the smallest k at the first local
	// maximum of the silhouette curve.
	K int

	// Score is the mean silhouette width at K.
	Score float64

	// Curve holds the mean silhouette per candidate k; Curve[0] belongs to
	// kmin, Curve[len-1] to kmax.
	Curve []float64

	// Adequate reports Score > threshold (default 0.5). Advisory only:
	// an inadequate selection suggests trying a 2-D embedding first.
	Adequate bool

	// Result is the k-means partition behind the selected K.
	Result kmeans.Result
}
