package silhouette

import (
	"github.com/katalvlaran/klust/dataset"
	"github.com/katalvlaran/klust/kmeans"
)

// DefaultThreshold is the advisory adequacy bar: a selection scoring above
// it is considered an adequate clustering of the space it was computed in.
const DefaultThreshold = 0.5

// Options configures Select. The zero value is NOT valid; start from
// DefaultOptions and override fields as needed.
type Options struct {
	// KMeans configures every per-k partition run (seed, restarts, cap).
	// The same seed is reused for each k, so the whole scan is
	// reproducible.
	KMeans kmeans.Options

	// Threshold is the advisory adequacy bar (Selection.Adequate =
	// Score > Threshold).
	Threshold float64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		KMeans:    kmeans.DefaultOptions(),
		Threshold: DefaultThreshold,
	}
}

// Select scans k = kmin..kmax, scoring a seeded k-means partition per k,
// and picks the smallest k at the FIRST local maximum of the silhouette
// curve. Later, possibly higher peaks are deliberately ignored: simpler
// groupings carry more statistical weight per cluster.
//
// A boundary k counts as a local maximum against its single neighbor; a
// monotonically rising curve therefore selects kmax.
//
// Contracts:
//   - ds must pass dataset.Validate;
//   - 2 ≤ kmin ≤ kmax < ds.Rows();
//   - opts==nil means DefaultOptions().
//
// Adequacy (Selection.Adequate) is advisory and never an error; an
// inadequate score signals the caller to try a 2-D embedding (see
// package embed) before accepting the partition.
//
// Errors: dataset validation errors, ErrBadRange, plus k-means errors.
//
// Complexity: O((kmax−kmin+1) · (kmeans + n²·d)).
func Select(ds *dataset.Dataset, kmin, kmax int, opts *Options) (Selection, error) {
	if err := ds.Validate(); err != nil {
		return Selection{}, err
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if kmin < 2 || kmax < kmin || kmax >= ds.Rows() {
		return Selection{}, ErrBadRange
	}

	var (
		span    = kmax - kmin + 1
		curve   = make([]float64, span)
		results = make([]kmeans.Result, span)
	)

	var (
		idx int
		k   int
	)
	for idx, k = 0, kmin; k <= kmax; idx, k = idx+1, k+1 {
		res, err := kmeans.Partition(ds, k, &o.KMeans)
		if err != nil {
			return Selection{}, err
		}
		score, err := Score(ds, res.Labels)
		if err != nil {
			return Selection{}, err
		}
		results[idx] = res
		curve[idx] = score
	}

	pick := firstLocalMax(curve)
	sel := Selection{
		K:        kmin + pick,
		Score:    curve[pick],
		Curve:    curve,
		Adequate: curve[pick] > o.Threshold,
		Result:   results[pick],
	}

	return sel, nil
}

// firstLocalMax returns the smallest index that is not below its left
// neighbor and strictly above its right neighbor (boundaries count with
// their single neighbor). Falls back to the last index for a curve that
// never turns down.
func firstLocalMax(curve []float64) int {
	last := len(curve) - 1
	for i := 0; i <= last; i++ {
		leftOK := i == 0 || curve[i] >= curve[i-1]
		rightOK := i == last || curve[i] > curve[i+1]
		if leftOK && rightOK {
			return i
		}
	}

	return last
}
