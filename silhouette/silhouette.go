package silhouette

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/klust/dataset"
)

// Widths computes the per-point silhouette width for an existing labeling.
//
// Contracts:
//   - ds must pass dataset.Validate;
//   - len(labels) == ds.Rows(), every label in [1, max(labels)];
//   - at least two non-empty clusters.
//
// Behavior highlights:
//   - a point alone in its cluster gets width 0 (the usual convention);
//   - empty intermediate labels are allowed and simply never matched.
//
// Errors: dataset validation errors, ErrLabelMismatch, ErrSingleCluster.
//
// Complexity: O(n²·d) time, O(n·k) space.
func Widths(ds *dataset.Dataset, labels []int) ([]float64, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	n := ds.Rows()
	if len(labels) != n {
		return nil, ErrLabelMismatch
	}

	// k = highest label; counts confirm at least two non-empty clusters.
	k := 0
	for _, l := range labels {
		if l < 1 {
			return nil, ErrLabelMismatch
		}
		if l > k {
			k = l
		}
	}
	counts := make([]int, k+1)
	for _, l := range labels {
		counts[l]++
	}
	nonEmpty := 0
	for c := 1; c <= k; c++ {
		if counts[c] > 0 {
			nonEmpty++
		}
	}
	if nonEmpty < 2 {
		return nil, ErrSingleCluster
	}

	var (
		rows = ds.Raw()
		out  = make([]float64, n)
		// sums[c] accumulates the distance from the current point to every
		// member of cluster c; reused across points.
		sums = make([]float64, k+1)
	)

	for i := 0; i < n; i++ {
		for c := range sums {
			sums[c] = 0
		}
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			sums[labels[j]] += floats.Distance(rows[i], rows[j], 2)
		}

		own := labels[i]
		if counts[own] <= 1 {
			// Singleton cluster: silhouette is defined as 0.
			out[i] = 0
			continue
		}

		a := sums[own] / float64(counts[own]-1)
		b := 0.0
		haveB := false
		for c := 1; c <= k; c++ {
			if c == own || counts[c] == 0 {
				continue
			}
			mean := sums[c] / float64(counts[c])
			if !haveB || mean < b {
				b, haveB = mean, true
			}
		}

		max := a
		if b > max {
			max = b
		}
		if max == 0 {
			// Both distances vanish (duplicate points): treat as perfectly
			// placed rather than dividing by zero.
			out[i] = 0
			continue
		}
		out[i] = (b - a) / max
	}

	return out, nil
}

// Score returns the mean silhouette width of a labeling — a single number
// in [−1, 1] summarizing cluster separation.
//
// Errors: those of Widths.
//
// Complexity: O(n²·d).
func Score(ds *dataset.Dataset, labels []int) (float64, error) {
	w, err := Widths(ds, labels)
	if err != nil {
		return 0, err
	}

	return stat.Mean(w, nil), nil
}
