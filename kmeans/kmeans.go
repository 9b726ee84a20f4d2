package kmeans

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/klust/dataset"
)

// Partition clusters ds into k groups and returns the best result over
// opts.Restarts independent seeded runs (lowest inertia wins).
//
// Contracts:
//   - ds must pass dataset.Validate (non-empty, rectangular, finite);
//   - 1 ≤ k ≤ ds.Rows();
//   - opts==nil means DefaultOptions().
//
// Behavior highlights:
//   - k=1 assigns every row label 1 (the trivial partition);
//   - labels are 1-based: Labels[i] ∈ [1, k];
//   - same seed ⇒ identical Result on every call.
//
// Errors: dataset validation errors, ErrBadK, ErrBadOptions.
//
// Complexity: O(restarts · iter · n · k · d) time, O(n + k·d) space.
func Partition(ds *dataset.Dataset, k int, opts *Options) (Result, error) {
	if err := ds.Validate(); err != nil {
		return Result{}, err
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return Result{}, err
	}

	n := ds.Rows()
	if k < 1 || k > n {
		return Result{}, ErrBadK
	}

	rows := ds.Raw()
	best := Result{Inertia: math.Inf(1)}
	var r int
	for r = 0; r < o.Restarts; r++ {
		res := runLloyd(rows, k, o.MaxIterations, deriveRNG(o.Seed, uint64(r)))
		if res.Inertia < best.Inertia {
			best = res
		}
	}

	// Convert internal 0-based assignments to the public 1-based labels.
	for i := range best.Labels {
		best.Labels[i]++
	}

	return best, nil
}

// runLloyd performs one seeded k-means run: k-means++ init, then
// assign/update iterations until assignments stabilize or maxIter hits.
// Labels in the returned Result are 0-based; Partition shifts them.
func runLloyd(rows [][]float64, k, maxIter int, rng *rand.Rand) Result {
	var (
		n      = len(rows)
		d      = len(rows[0])
		labels = make([]int, n)
		cents  = seedCentroids(rows, k, rng)
		iters  int
	)

	var it int
	for it = 1; it <= maxIter; it++ {
		iters = it
		changed := assignNearest(rows, cents, labels)
		// it==1 always runs an update: the initial all-zero labels may
		// coincide with the first assignment without being converged.
		if changed == 0 && it > 1 {
			break
		}
		updateCentroids(rows, labels, cents, d)
	}

	return Result{
		Labels:     labels,
		Centroids:  cents,
		Inertia:    totalInertia(rows, labels, cents),
		Iterations: iters,
	}
}

// seedCentroids implements k-means++: the first center is uniform, each
// subsequent center is sampled proportionally to the squared distance from
// the nearest already-chosen center.
//
// Complexity: O(k · n · d).
func seedCentroids(rows [][]float64, k int, rng *rand.Rand) [][]float64 {
	var (
		n     = len(rows)
		cents = make([][]float64, 0, k)
		d2    = make([]float64, n)
	)

	first := make([]float64, len(rows[0]))
	copy(first, rows[rng.Intn(n)])
	cents = append(cents, first)

	for len(cents) < k {
		// d2[i] = squared distance to the nearest chosen center.
		var total float64
		last := cents[len(cents)-1]
		for i, row := range rows {
			dist := floats.Distance(row, last, 2)
			sq := dist * dist
			if len(cents) == 1 || sq < d2[i] {
				d2[i] = sq
			}
			total += d2[i]
		}

		var pick int
		if total <= 0 {
			// All remaining mass sits on chosen centers (duplicate-heavy
			// data); fall back to a uniform pick.
			pick = rng.Intn(n)
		} else {
			target := rng.Float64() * total
			for i := 0; i < n; i++ {
				target -= d2[i]
				if target <= 0 {
					pick = i
					break
				}
			}
		}

		next := make([]float64, len(rows[0]))
		copy(next, rows[pick])
		cents = append(cents, next)
	}

	return cents
}

// assignNearest writes the nearest-centroid index for every row into labels
// and returns how many assignments changed.
//
// Complexity: O(n · k · d).
func assignNearest(rows [][]float64, cents [][]float64, labels []int) int {
	changed := 0
	for i, row := range rows {
		best, bestSq := 0, math.Inf(1)
		for c, cent := range cents {
			sq := sqDist(row, cent)
			if sq < bestSq {
				best, bestSq = c, sq
			}
		}
		if labels[i] != best {
			labels[i] = best
			changed++
		}
	}

	return changed
}

// updateCentroids recomputes each centroid as the mean of its rows.
// An empty cluster is repaired by re-seeding its centroid on the row
// farthest from its current centroid, which keeps k effective clusters.
//
// Complexity: O(n · d) (+ O(n · d) per repaired cluster).
func updateCentroids(rows [][]float64, labels []int, cents [][]float64, d int) {
	var (
		k      = len(cents)
		sums   = make([][]float64, k)
		counts = make([]int, k)
	)
	for c := 0; c < k; c++ {
		sums[c] = make([]float64, d)
	}
	for i, row := range rows {
		c := labels[i]
		counts[c]++
		for j, v := range row {
			sums[c][j] += v
		}
	}

	for c := 0; c < k; c++ {
		if counts[c] == 0 {
			copy(cents[c], rows[farthestRow(rows, labels, cents)])
			continue
		}
		for j := 0; j < d; j++ {
			cents[c][j] = sums[c][j] / float64(counts[c])
		}
	}
}

// farthestRow returns the index of the row with the largest squared distance
// to its assigned centroid — the natural re-seed for an empty cluster.
func farthestRow(rows [][]float64, labels []int, cents [][]float64) int {
	best, bestSq := 0, -1.0
	for i, row := range rows {
		sq := sqDist(row, cents[labels[i]])
		if sq > bestSq {
			best, bestSq = i, sq
		}
	}

	return best
}

// totalInertia sums squared distances from every row to its centroid.
//
// Complexity: O(n · d).
func totalInertia(rows [][]float64, labels []int, cents [][]float64) float64 {
	var total float64
	for i, row := range rows {
		total += sqDist(row, cents[labels[i]])
	}

	return total
}

// sqDist is the squared Euclidean distance between equal-length vectors.
// Kept sqrt-free for the hot assignment loop.
func sqDist(a, b []float64) float64 {
	var s, t float64
	for i := range a {
		t = a[i] - b[i]
		s += t * t
	}

	return s
}
